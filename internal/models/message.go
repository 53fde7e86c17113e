package models

type (
	// ConventionalCommit is the parsed form of a `type(scope)!: description`
	// message header plus its trailing sections. It is rebuilt from scratch on
	// every parse; nothing mutates it in place.
	ConventionalCommit struct {
		Type             string
		Scope            string
		Description      string
		Body             string
		Footer           string
		IsBreakingChange bool
		IsValid          bool
	}

	// ValidationOptions controls a single validation pass.
	ValidationOptions struct {
		ConventionalCommit bool
		SubjectLengthLimit int
		ProvideSuggestions bool
	}

	// ValidationResult is the read-only outcome of validating one raw message.
	ValidationResult struct {
		IsValid     bool
		Errors      []string
		Warnings    []string
		Suggestions []string
		// QualityScore is a composite in [0,1]. IsValid and QualityScore are
		// independent signals: an invalid message can still score above zero.
		QualityScore         float64
		Subject              string
		Body                 string
		SubjectLength        int
		BodyLength           int
		HasBody              bool
		IsSubjectTooLong     bool
		IsConventionalCommit bool
		ConventionalParts    *ConventionalCommit
	}
)

const (
	defaultSubjectLengthLimit = 50
)

// DefaultValidationOptions returns the options used when the caller does not
// supply any: 50-column subject limit, plain (non-conventional) mode, no
// suggestion text.
func DefaultValidationOptions() ValidationOptions {
	return ValidationOptions{
		ConventionalCommit: false,
		SubjectLengthLimit: defaultSubjectLengthLimit,
		ProvideSuggestions: false,
	}
}
