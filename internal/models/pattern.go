package models

import "regexp"

// Severity classifies how serious a pattern match is.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Rank returns the ordinal position of the severity, used for
// min-severity filtering: info < warning < error.
func (s Severity) Rank() int {
	switch s {
	case SeverityInfo:
		return 0
	case SeverityWarning:
		return 1
	case SeverityError:
		return 2
	default:
		return -1
	}
}

// IsValid reports whether s is one of the known severities.
func (s Severity) IsValid() bool {
	return s.Rank() >= 0
}

// Category groups patterns by the kind of problem they detect.
type Category string

const (
	CategoryBestPractices Category = "best-practices"
	CategoryFormatting    Category = "formatting"
	CategoryStyle         Category = "style"
	CategoryWorkflow      Category = "workflow"
	CategoryContent       Category = "content"
)

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryBestPractices, CategoryFormatting, CategoryStyle, CategoryWorkflow, CategoryContent:
		return true
	}
	return false
}

type (
	// PatternExamples holds sample messages that do and don't trigger a pattern,
	// shown by `commitsmith patterns show`.
	PatternExamples struct {
		Good []string `yaml:"good,omitempty"`
		Bad  []string `yaml:"bad,omitempty"`
	}

	// Pattern is one immutable detection rule. Built-in patterns live in the
	// catalog; custom patterns come from user rule files. Two patterns with the
	// same ID are the same rule: registering a duplicate ID replaces the
	// earlier definition.
	Pattern struct {
		ID          string
		Name        string
		Description string
		Regex       *regexp.Regexp
		// Global requests every occurrence in the message rather than just
		// the first one.
		Global     bool
		Severity   Severity
		Category   Category
		Suggestion string
		Examples   *PatternExamples
		Version    string
	}

	// PatternMatch is one occurrence of a pattern in a scanned message.
	// Index and Length are byte offsets into the scanned text so callers can
	// highlight the exact region. Matches are recomputed on every scan and
	// never persisted.
	PatternMatch struct {
		PatternID   string
		Name        string
		Description string
		Severity    Severity
		Category    Category
		Index       int
		Length      int
		MatchedText string
		Suggestion  string
		Captures    []string
	}
)

// Clone returns a deep copy of the match. Snapshots in the warning manager
// rely on this so later mutations can't leak across.
func (m PatternMatch) Clone() PatternMatch {
	c := m
	if m.Captures != nil {
		c.Captures = make([]string, len(m.Captures))
		copy(c.Captures, m.Captures)
	}
	return c
}
