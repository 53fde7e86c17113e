package patterns

import "github.com/thomas-vilte/commitsmith/internal/models"

type (
	// MatcherConfig controls which patterns populate a new Matcher.
	MatcherConfig struct {
		// IncludeBuiltIn loads the built-in catalog. Custom patterns are
		// registered afterwards, so a custom pattern sharing an id with a
		// built-in replaces it.
		IncludeBuiltIn bool
		CustomPatterns []models.Pattern
	}

	// Matcher is a mutable pattern registry: an insertion-ordered list plus
	// an id index so add-or-replace is a single upsert, and a disabled set
	// that hides patterns from detection without removing them from the
	// listing. Not safe for concurrent use; each editing session owns its own
	// instance.
	Matcher struct {
		patterns []models.Pattern
		index    map[string]int
		disabled map[string]struct{}
	}

	// AnalyzeOptions filters the outcome of AnalyzeMessage. Zero values mean
	// no filtering.
	AnalyzeOptions struct {
		MinSeverity models.Severity
		Category    models.Category
	}

	// AnalysisResult is what AnalyzeMessage hands to the presentation layer.
	AnalysisResult struct {
		Matches   []models.PatternMatch
		HasIssues bool
	}
)

// DefaultMatcherConfig enables the built-in catalog with no custom patterns.
func DefaultMatcherConfig() MatcherConfig {
	return MatcherConfig{IncludeBuiltIn: true}
}

// NewMatcher builds a Matcher from cfg.
func NewMatcher(cfg MatcherConfig) *Matcher {
	m := &Matcher{
		patterns: make([]models.Pattern, 0),
		index:    make(map[string]int),
		disabled: make(map[string]struct{}),
	}
	if cfg.IncludeBuiltIn {
		for _, p := range BuiltIn() {
			m.AddPattern(p)
		}
	}
	for _, p := range cfg.CustomPatterns {
		m.AddPattern(p)
	}
	return m
}

// NewDefaultMatcher is shorthand for NewMatcher(DefaultMatcherConfig()).
func NewDefaultMatcher() *Matcher {
	return NewMatcher(DefaultMatcherConfig())
}

// AddPattern inserts the pattern or, when its id is already registered,
// replaces the earlier definition in place, keeping its position.
func (m *Matcher) AddPattern(p models.Pattern) {
	if i, ok := m.index[p.ID]; ok {
		m.patterns[i] = p
		return
	}
	m.index[p.ID] = len(m.patterns)
	m.patterns = append(m.patterns, p)
}

// DisablePattern hides the pattern from detection. Idempotent; unknown ids
// are ignored.
func (m *Matcher) DisablePattern(id string) {
	m.disabled[id] = struct{}{}
}

// EnablePattern re-enables a previously disabled pattern. Idempotent.
func (m *Matcher) EnablePattern(id string) {
	delete(m.disabled, id)
}

// IsDisabled reports whether the pattern id is currently disabled.
func (m *Matcher) IsDisabled(id string) bool {
	_, ok := m.disabled[id]
	return ok
}

// GetPatterns returns all registered patterns, optionally narrowed to one
// category. Disabled patterns still appear here: disabling affects
// detection, not visibility.
func (m *Matcher) GetPatterns(category models.Category) []models.Pattern {
	out := make([]models.Pattern, 0, len(m.patterns))
	for _, p := range m.patterns {
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// GetPattern looks a single pattern up by id.
func (m *Matcher) GetPattern(id string) (models.Pattern, bool) {
	i, ok := m.index[id]
	if !ok {
		return models.Pattern{}, false
	}
	return m.patterns[i], true
}

// AnalyzeMessage scans text with every enabled pattern and applies the
// optional severity/category filters. HasIssues is true iff any match
// survives the filters.
func (m *Matcher) AnalyzeMessage(text string, opts *AnalyzeOptions) AnalysisResult {
	matches := DetectPatterns(text, m.enabledPatterns())

	if opts != nil {
		filtered := matches[:0]
		for _, match := range matches {
			if opts.MinSeverity != "" && match.Severity.Rank() < opts.MinSeverity.Rank() {
				continue
			}
			if opts.Category != "" && match.Category != opts.Category {
				continue
			}
			filtered = append(filtered, match)
		}
		matches = filtered
	}

	return AnalysisResult{
		Matches:   matches,
		HasIssues: len(matches) > 0,
	}
}

// GetPatternsInText returns the distinct pattern definitions, in
// registration order, that produce at least one match in text. Only enabled
// patterns are considered.
func (m *Matcher) GetPatternsInText(text string) []models.Pattern {
	seen := make(map[string]struct{})
	for _, match := range DetectPatterns(text, m.enabledPatterns()) {
		seen[match.PatternID] = struct{}{}
	}

	out := make([]models.Pattern, 0, len(seen))
	for _, p := range m.patterns {
		if _, ok := seen[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}

func (m *Matcher) enabledPatterns() []models.Pattern {
	if len(m.disabled) == 0 {
		return m.patterns
	}
	enabled := make([]models.Pattern, 0, len(m.patterns))
	for _, p := range m.patterns {
		if _, off := m.disabled[p.ID]; !off {
			enabled = append(enabled, p)
		}
	}
	return enabled
}
