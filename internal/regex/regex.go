package regex

import "regexp"

var (
	// Conventional commit grammar
	ConventionalHeader = regexp.MustCompile(`^([a-z]+)(?:\(([^)]*)\))?(!)?:\s*(.+)$`)
	FooterLine         = regexp.MustCompile(`^\w+(-\w+)*:\s+.+$`)
	BlankLineSplit     = regexp.MustCompile(`\n\s*\n`)

	// Message hygiene
	CommentLine = regexp.MustCompile(`(?m)^#[^\n]*\n?`)

	// Git and repo patterns
	CommitHash = regexp.MustCompile(`^[0-9a-f]{7,40}$`)
)

// BreakingChangeToken is the literal footer marker defined by the
// conventional commits spec.
const BreakingChangeToken = "BREAKING CHANGE:"
