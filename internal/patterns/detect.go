// Package patterns holds the detection rule catalog, the scan function and
// the mutable matcher registry that the rest of the tool talks to.
package patterns

import "github.com/thomas-vilte/commitsmith/internal/models"

// DetectPatterns scans text against every supplied pattern and returns one
// match per occurrence. Patterns flagged Global report every occurrence;
// the rest report at most the first one. Go's regexp engine keeps no scan
// position between calls, so repeated scans over the same patterns are
// side-effect free and always yield identical results.
func DetectPatterns(text string, patterns []models.Pattern) []models.PatternMatch {
	matches := make([]models.PatternMatch, 0)
	if text == "" || len(patterns) == 0 {
		return matches
	}

	for _, p := range patterns {
		if p.Regex == nil {
			continue
		}
		if p.Global {
			for _, loc := range p.Regex.FindAllStringSubmatchIndex(text, -1) {
				matches = append(matches, newMatch(text, p, loc))
			}
			continue
		}
		if loc := p.Regex.FindStringSubmatchIndex(text); loc != nil {
			matches = append(matches, newMatch(text, p, loc))
		}
	}
	return matches
}

// newMatch builds a PatternMatch from a submatch index vector. Capture
// groups that did not participate, or matched the empty string, are
// filtered out.
func newMatch(text string, p models.Pattern, loc []int) models.PatternMatch {
	m := models.PatternMatch{
		PatternID:   p.ID,
		Name:        p.Name,
		Description: p.Description,
		Severity:    p.Severity,
		Category:    p.Category,
		Index:       loc[0],
		Length:      loc[1] - loc[0],
		MatchedText: text[loc[0]:loc[1]],
		Suggestion:  p.Suggestion,
	}

	for i := 2; i+1 < len(loc); i += 2 {
		start, end := loc[i], loc[i+1]
		if start < 0 || end <= start {
			continue
		}
		m.Captures = append(m.Captures, text[start:end])
	}
	return m
}
