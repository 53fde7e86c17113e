// Package validation turns a raw commit message into a structured
// ValidationResult: subject/body split, conventional commit analysis, error
// and warning lists and a composite quality score.
package validation

import (
	"strings"

	"github.com/thomas-vilte/commitsmith/internal/conventional"
	"github.com/thomas-vilte/commitsmith/internal/i18n"
	"github.com/thomas-vilte/commitsmith/internal/models"
	"github.com/thomas-vilte/commitsmith/internal/regex"
)

// Score weights. Errors weigh more than warnings; the bonuses reward a body,
// conventional format and a subject comfortably under the limit. Adding a
// finding can only lower the score, which keeps the score monotonic in the
// number of findings.
const (
	errorPenalty      = 0.25
	warningPenalty    = 0.10
	bodyBonus         = 0.10
	conventionalBonus = 0.10
	shortSubjectBonus = 0.05

	// Subjects within this margin of the limit trigger an advisory warning.
	nearLimitMargin = 5
	// Subjects at least this far under the limit earn the short-subject bonus.
	comfortableMargin = 10
	// Below this subject length a missing body is considered fine.
	trivialSubjectLength = 25
)

// MessageValidator validates raw commit messages. The translator supplies
// every human-readable string so the presentation layer stays
// locale-agnostic.
type MessageValidator struct {
	t *i18n.Translations
}

func NewMessageValidator(t *i18n.Translations) *MessageValidator {
	return &MessageValidator{t: t}
}

// ValidateMessage runs one full validation pass over raw. It never fails:
// every problem is encoded in the returned result.
func (v *MessageValidator) ValidateMessage(raw string, opts models.ValidationOptions) models.ValidationResult {
	if opts.SubjectLengthLimit <= 0 {
		opts.SubjectLengthLimit = models.DefaultValidationOptions().SubjectLengthLimit
	}

	subject, body := splitMessage(raw)

	result := models.ValidationResult{
		IsValid:          true,
		Errors:           []string{},
		Warnings:         []string{},
		Suggestions:      []string{},
		Subject:          subject,
		Body:             body,
		SubjectLength:    len(subject),
		BodyLength:       len(body),
		HasBody:          len(body) > 0,
		IsSubjectTooLong: len(subject) > opts.SubjectLengthLimit,
	}

	if opts.ConventionalCommit {
		parts := conventional.Parse(raw)
		result.ConventionalParts = &parts
		result.IsConventionalCommit = parts.IsValid
	}

	v.collectErrors(&result, opts)
	v.collectWarnings(&result, opts)
	if opts.ProvideSuggestions {
		v.collectSuggestions(&result, opts)
	}

	result.IsValid = len(result.Errors) == 0
	result.QualityScore = v.score(result, opts)
	return result
}

func (v *MessageValidator) collectErrors(r *models.ValidationResult, opts models.ValidationOptions) {
	if r.Subject == "" {
		r.Errors = append(r.Errors, v.t.GetMessage("validation.error_empty_subject", 0, nil))
	}
	if opts.ConventionalCommit {
		if r.IsSubjectTooLong {
			r.Errors = append(r.Errors, v.t.GetMessage("validation.error_subject_too_long", 0, map[string]interface{}{
				"Length": r.SubjectLength,
				"Limit":  opts.SubjectLengthLimit,
			}))
		}
		if r.Subject != "" && !r.IsConventionalCommit {
			r.Errors = append(r.Errors, v.t.GetMessage("validation.error_not_conventional", 0, nil))
		}
	}
}

func (v *MessageValidator) collectWarnings(r *models.ValidationResult, opts models.ValidationOptions) {
	if !opts.ConventionalCommit && r.IsSubjectTooLong {
		r.Warnings = append(r.Warnings, v.t.GetMessage("validation.warning_subject_too_long", 0, map[string]interface{}{
			"Length": r.SubjectLength,
			"Limit":  opts.SubjectLengthLimit,
		}))
	}
	if !r.IsSubjectTooLong && r.SubjectLength > opts.SubjectLengthLimit-nearLimitMargin {
		r.Warnings = append(r.Warnings, v.t.GetMessage("validation.warning_subject_near_limit", 0, map[string]interface{}{
			"Limit": opts.SubjectLengthLimit,
		}))
	}
	if !r.HasBody && r.SubjectLength > trivialSubjectLength {
		r.Warnings = append(r.Warnings, v.t.GetMessage("validation.warning_missing_body", 0, nil))
	}
	if r.ConventionalParts != nil && r.ConventionalParts.IsBreakingChange &&
		!strings.Contains(r.ConventionalParts.Footer, regex.BreakingChangeToken) {
		r.Warnings = append(r.Warnings, v.t.GetMessage("validation.warning_breaking_undocumented", 0, nil))
	}
}

func (v *MessageValidator) collectSuggestions(r *models.ValidationResult, opts models.ValidationOptions) {
	if !r.IsConventionalCommit {
		r.Suggestions = append(r.Suggestions, v.t.GetMessage("validation.suggest_conventional_prefix", 0, nil))
	}
	if !r.HasBody {
		r.Suggestions = append(r.Suggestions, v.t.GetMessage("validation.suggest_add_body", 0, nil))
	}
	if r.IsSubjectTooLong {
		r.Suggestions = append(r.Suggestions, v.t.GetMessage("validation.suggest_shorten_subject", 0, map[string]interface{}{
			"Limit": opts.SubjectLengthLimit,
		}))
	}
}

// score computes the [0,1] composite. Holding everything else fixed, an
// extra error or warning never raises the score and removing one never
// lowers it.
func (v *MessageValidator) score(r models.ValidationResult, opts models.ValidationOptions) float64 {
	score := 1.0
	score -= float64(len(r.Errors)) * errorPenalty
	score -= float64(len(r.Warnings)) * warningPenalty

	if r.HasBody {
		score += bodyBonus
	}
	if r.IsConventionalCommit {
		score += conventionalBonus
	}
	if r.SubjectLength > 0 && r.SubjectLength <= opts.SubjectLengthLimit-comfortableMargin {
		score += shortSubjectBonus
	}

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// splitMessage separates the first line from the rest. The subject is
// trimmed so a whitespace-only line counts as empty; blank lines around the
// body are dropped.
func splitMessage(raw string) (subject, body string) {
	subject, rest, found := strings.Cut(raw, "\n")
	subject = strings.TrimSpace(subject)
	if !found {
		return subject, ""
	}
	return subject, strings.Trim(rest, " \t\r\n")
}
