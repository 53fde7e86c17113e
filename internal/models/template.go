package models

type (
	// CommitTemplate is a reusable message skeleton loaded from the user's
	// template file. Type/Scope prefill the conventional header; Body is a
	// free-form skeleton appended below it.
	CommitTemplate struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description,omitempty"`
		Type        string `yaml:"type,omitempty"`
		Scope       string `yaml:"scope,omitempty"`
		Subject     string `yaml:"subject,omitempty"`
		Body        string `yaml:"body,omitempty"`
		Breaking    bool   `yaml:"breaking,omitempty"`
	}
)
