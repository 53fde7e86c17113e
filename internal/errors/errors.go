package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeGit           ErrorType = "GIT"
	TypeRules         ErrorType = "RULES"
	TypeTemplate      ErrorType = "TEMPLATE"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if stderr, ok := e.Context["stderr"].(string); ok && stderr != "" {
			msg += fmt.Sprintf(" - %s", stderr)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Git errors
var (
	ErrNoStagedChanges = NewAppError(TypeGit, "No staged changes detected", nil).
				WithSuggestion("Stage your changes first with: git add <files>")

	ErrCreateCommit = NewAppError(TypeGit, "Failed to create commit", nil).
			WithSuggestion("Check `git status` for conflicts or hook failures")

	ErrGetBranch = NewAppError(TypeGit, "Failed to get current branch", nil).
			WithSuggestion("Make sure you are in a git repository: git status")

	ErrGetRepoRoot = NewAppError(TypeGit, "Failed to get repository root", nil).
			WithSuggestion("Make sure you are inside a git repository")

	ErrGetLastCommit = NewAppError(TypeGit, "Failed to read the last commit message", nil).
				WithSuggestion("Verify the repository has commits: git log --oneline")
)

// Rule file errors
var (
	ErrRulesFileNotFound = NewAppError(TypeRules, "Rules file not found", nil).
				WithSuggestion("Point rules_file in the config at an existing YAML file, or remove the setting")

	ErrRulesFileInvalid = NewAppError(TypeRules, "Rules file could not be parsed", nil).
				WithSuggestion("Check the YAML syntax of your rules file")
)

// Template errors
var (
	ErrTemplateNotFound = NewAppError(TypeTemplate, "Template not found", nil).
				WithSuggestion("Check the template names in your templates file")
)
