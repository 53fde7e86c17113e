package patterns

import (
	"regexp"

	"github.com/thomas-vilte/commitsmith/internal/models"
)

// catalogVersion tags the built-in rule set so custom rule files can pin
// against a known baseline.
const catalogVersion = "1.0.0"

// BuiltIn returns a fresh copy of the built-in pattern catalog. The catalog
// is plain data: adding a rule means adding a row here, not a branch
// somewhere in the matcher.
func BuiltIn() []models.Pattern {
	defs := []models.Pattern{
		{
			ID:          "wip-marker",
			Name:        "Work-in-progress marker",
			Description: "The message contains a WIP, TODO, FIXME, XXX or HACK marker",
			Regex:       regexp.MustCompile(`(?i)\b(WIP|TODO|FIXME|XXX|HACK)\b`),
			Global:      true,
			Severity:    models.SeverityWarning,
			Category:    models.CategoryWorkflow,
			Suggestion:  "Finish the work or reword the message before committing; markers like WIP belong in the branch name, not in history",
			Examples: &models.PatternExamples{
				Good: []string{"feat: add retry logic to the uploader"},
				Bad:  []string{"WIP: uploader", "fix: TODO clean this up later"},
			},
		},
		{
			ID:          "subject-too-long",
			Name:        "Subject line over 72 characters",
			Description: "The first line is longer than 72 characters and will be truncated in git log output",
			Regex:       regexp.MustCompile(`^.{73,}`),
			Severity:    models.SeverityWarning,
			Category:    models.CategoryFormatting,
			Suggestion:  "Keep the subject at or below 72 characters and move detail into the body",
			Examples: &models.PatternExamples{
				Good: []string{"fix: cap retry backoff at one minute"},
			},
		},
		{
			ID:          "non-imperative",
			Name:        "Non-imperative mood",
			Description: "The subject opens with a past-tense or progressive verb instead of the imperative mood",
			Regex:       regexp.MustCompile(`(?i)^(added|adding|fixed|fixing|updated|updating|changed|changing|removed|removing|implemented|implementing|created|creating)\b`),
			Severity:    models.SeverityInfo,
			Category:    models.CategoryStyle,
			Suggestion:  "Write the subject as a command: \"Add\", not \"Added\" or \"Adding\"",
			Examples: &models.PatternExamples{
				Good: []string{"Add pattern catalog"},
				Bad:  []string{"Added pattern catalog", "Adding pattern catalog"},
			},
		},
		{
			ID:          "subject-trailing-period",
			Name:        "Trailing period on subject",
			Description: "The first line ends with a period",
			Regex:       regexp.MustCompile(`^[^\n]*\.(?:\n|$)`),
			Severity:    models.SeverityInfo,
			Category:    models.CategoryFormatting,
			Suggestion:  "Drop the trailing period; subjects are titles, not sentences",
			Examples: &models.PatternExamples{
				Good: []string{"docs: describe the hook setup"},
				Bad:  []string{"docs: describe the hook setup."},
			},
		},
		{
			ID:          "merge-commit",
			Name:        "Merge commit message",
			Description: "The message looks like an auto-generated merge commit",
			Regex:       regexp.MustCompile(`^Merge (branch|remote-tracking branch|pull request)\b`),
			Severity:    models.SeverityInfo,
			Category:    models.CategoryWorkflow,
			Suggestion:  "Auto-generated merge messages are fine for merges, but not for regular commits",
		},
		{
			ID:          "fixup-squash",
			Name:        "Fixup or squash marker",
			Description: "The message carries a fixup!/squash! prefix meant for interactive rebase",
			Regex:       regexp.MustCompile(`^(fixup|squash)! `),
			Severity:    models.SeverityWarning,
			Category:    models.CategoryWorkflow,
			Suggestion:  "Squash the commit before it leaves your machine, or reword it into a standalone message",
		},
		{
			ID:          "empty-message",
			Name:        "Empty message",
			Description: "The message is empty or contains only comment lines",
			Regex:       regexp.MustCompile(`^\s*(?:#[^\n]*\s*)*$`),
			Severity:    models.SeverityError,
			Category:    models.CategoryContent,
			Suggestion:  "Describe what the commit changes and why",
		},
		{
			ID:          "vague-message",
			Name:        "Vague single-word message",
			Description: "A single generic word says nothing about the change",
			Regex:       regexp.MustCompile(`(?i)^\s*(fix|fixes|update|updates|change|changes|stuff|misc|wip|cleanup|minor|various|tweak|patch)\.?\s*$`),
			Severity:    models.SeverityError,
			Category:    models.CategoryContent,
			Suggestion:  "Say what was fixed or updated: \"fix: handle empty diff in status parser\"",
			Examples: &models.PatternExamples{
				Good: []string{"fix: handle empty diff in status parser"},
				Bad:  []string{"fix", "update", "misc"},
			},
		},
		{
			ID:          "issue-reference-only",
			Name:        "Issue reference only",
			Description: "The message is just an issue number with no description",
			Regex:       regexp.MustCompile(`(?i)^\s*(?:(?:fixes|closes|resolves)\s+)?#\d+\s*$`),
			Severity:    models.SeverityWarning,
			Category:    models.CategoryContent,
			Suggestion:  "Keep the issue reference, but add a human-readable summary of the change",
			Examples: &models.PatternExamples{
				Good: []string{"fix: debounce resize handler\n\nCloses #512"},
				Bad:  []string{"#512", "fixes #512"},
			},
		},
		{
			ID:          "mixed-tense",
			Name:        "Mixed past and present tense",
			Description: "The message mixes past-tense and present-tense verbs",
			Regex:       regexp.MustCompile(`(?i)\b(?:added|fixed|updated|removed|changed)\b[\s\S]*?\b(?:adds?|fix(?:es)?|updates?|removes?|changes?)\b`),
			Severity:    models.SeverityInfo,
			Category:    models.CategoryStyle,
			Suggestion:  "Pick one tense, ideally the imperative mood, and use it throughout",
		},
	}

	for i := range defs {
		defs[i].Version = catalogVersion
	}
	return defs
}
