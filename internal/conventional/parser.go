// Package conventional parses, formats and validates conventional commit
// messages (`type(scope)!: description` plus body and footer sections).
// Every function is total: malformed input comes back as data with
// IsValid=false, never as an error.
package conventional

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/thomas-vilte/commitsmith/internal/models"
	"github.com/thomas-vilte/commitsmith/internal/regex"
)

// validTypes is the fixed conventional commit vocabulary.
var validTypes = map[string]bool{
	"feat":     true,
	"fix":      true,
	"docs":     true,
	"style":    true,
	"refactor": true,
	"perf":     true,
	"test":     true,
	"build":    true,
	"ci":       true,
	"chore":    true,
	"revert":   true,
}

// Types returns the accepted commit types in their canonical order.
func Types() []string {
	return []string{"feat", "fix", "docs", "style", "refactor", "perf", "test", "build", "ci", "chore", "revert"}
}

// IsValidType reports whether t belongs to the conventional commit vocabulary.
func IsValidType(t string) bool {
	return validTypes[t]
}

// Parse splits a raw message into header, body and footer and decodes the
// conventional commit header. A message whose header doesn't match the
// grammar yields a zero-value commit with IsValid=false.
func Parse(message string) models.ConventionalCommit {
	var commit models.ConventionalCommit

	segments := splitSegments(message)
	if len(segments) == 0 {
		return commit
	}

	header := strings.TrimSpace(segments[0])
	m := regex.ConventionalHeader.FindStringSubmatch(header)
	if m == nil {
		// Absence of structure yields an all-default, invalid result.
		return commit
	}

	commit.Body, commit.Footer = classifySections(segments[1:])
	commit.Type = m[1]
	commit.Scope = m[2]
	commit.Description = m[4]
	commit.IsBreakingChange = m[3] == "!" || strings.Contains(commit.Footer, regex.BreakingChangeToken)
	commit.IsValid = validTypes[commit.Type]
	return commit
}

// splitSegments breaks the message on blank-line boundaries (lines that
// contain only whitespace), dropping segments that end up empty.
func splitSegments(message string) []string {
	parts := regex.BlankLineSplit.Split(message, -1)
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// classifySections sorts the segments after the header into body and footer.
// A single trailing segment is always the body. With more than one, a segment
// counts as footer when it carries the BREAKING CHANGE token or starts with a
// `key: value` trailer line; everything else accumulates as body, relative
// order preserved within each class.
func classifySections(segments []string) (body, footer string) {
	if len(segments) == 0 {
		return "", ""
	}
	if len(segments) == 1 {
		return strings.TrimSpace(segments[0]), ""
	}

	var bodyParts, footerParts []string
	for _, seg := range segments {
		trimmed := strings.TrimSpace(seg)
		if isFooterSegment(trimmed) {
			footerParts = append(footerParts, trimmed)
		} else {
			bodyParts = append(bodyParts, trimmed)
		}
	}
	return strings.Join(bodyParts, "\n\n"), strings.Join(footerParts, "\n\n")
}

func isFooterSegment(segment string) bool {
	if strings.Contains(segment, regex.BreakingChangeToken) {
		return true
	}
	firstLine, _, _ := strings.Cut(segment, "\n")
	return regex.FooterLine.MatchString(firstLine)
}

// Format renders the commit back into message text. Format is the inverse of
// Parse for conforming inputs: format → parse → format is idempotent.
func Format(commit models.ConventionalCommit) string {
	var b strings.Builder

	b.WriteString(commit.Type)
	if commit.Scope != "" {
		b.WriteString("(")
		b.WriteString(commit.Scope)
		b.WriteString(")")
	}
	if commit.IsBreakingChange && !strings.Contains(commit.Footer, regex.BreakingChangeToken) {
		b.WriteString("!")
	}
	b.WriteString(": ")
	b.WriteString(commit.Description)

	if commit.Body != "" {
		b.WriteString("\n\n")
		b.WriteString(commit.Body)
	}
	if commit.Footer != "" {
		b.WriteString("\n\n")
		b.WriteString(commit.Footer)
	}
	return b.String()
}

// CheckResult carries the outcome of Validate. All rules run; nothing
// short-circuits, so every applicable message is collected.
type CheckResult struct {
	IsValid  bool
	Errors   []string
	Warnings []string
}

const maxDescriptionLength = 100

// Validate applies the structural rules for a parsed commit.
func Validate(commit models.ConventionalCommit) CheckResult {
	result := CheckResult{IsValid: true}

	if !validTypes[commit.Type] {
		result.Errors = append(result.Errors, fmt.Sprintf("invalid commit type %q", commit.Type))
	}
	if commit.Description == "" {
		result.Errors = append(result.Errors, "description must not be empty")
	}
	if len(commit.Description) > maxDescriptionLength {
		result.Warnings = append(result.Warnings, fmt.Sprintf("description is longer than %d characters", maxDescriptionLength))
	}
	if first, ok := firstRune(commit.Description); ok && first != unicode.ToUpper(first) {
		result.Warnings = append(result.Warnings, "description should start with an uppercase letter")
	}
	if commit.IsBreakingChange && !strings.Contains(commit.Footer, regex.BreakingChangeToken) {
		result.Warnings = append(result.Warnings, "breaking change is not documented in the footer (add a BREAKING CHANGE: section)")
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}
