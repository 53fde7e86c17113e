// Package warnings tracks the pattern matches surfaced for the message
// currently being edited and the user's dismissal decisions. Dismissing is
// message-scoped; permanently dismissing is session-scoped. The two live in
// separate fields on purpose: a transient list and a persistent set.
package warnings

import "github.com/thomas-vilte/commitsmith/internal/models"

type (
	// Manager owns the dismissal state for one editing session. Not safe for
	// concurrent use.
	Manager struct {
		current   []models.PatternMatch
		dismissed map[string]struct{}
	}

	// Snapshot is a deep copy of the manager state, used for
	// cancel-and-revert flows. Mutating the manager after taking a snapshot
	// never changes the snapshot.
	Snapshot struct {
		Warnings             []models.PatternMatch
		PermanentlyDismissed []string
	}
)

// NewManager returns a manager with no active warnings and an empty
// dismissal set.
func NewManager() *Manager {
	return &Manager{
		current:   make([]models.PatternMatch, 0),
		dismissed: make(map[string]struct{}),
	}
}

// SetWarnings replaces the active warnings wholesale, dropping any match
// whose pattern has been permanently dismissed.
func (m *Manager) SetWarnings(matches []models.PatternMatch) {
	m.current = m.current[:0]
	for _, match := range matches {
		if _, off := m.dismissed[match.PatternID]; off {
			continue
		}
		m.current = append(m.current, match.Clone())
	}
}

// Warnings returns a defensive copy of the active warnings.
func (m *Manager) Warnings() []models.PatternMatch {
	out := make([]models.PatternMatch, 0, len(m.current))
	for _, match := range m.current {
		out = append(out, match.Clone())
	}
	return out
}

// HasWarnings reports whether any warning is active.
func (m *Manager) HasWarnings() bool {
	return len(m.current) > 0
}

// DismissWarning removes the matches for one pattern id from the current
// message only. Future SetWarnings calls may bring the pattern back.
func (m *Manager) DismissWarning(patternID string) {
	kept := m.current[:0]
	for _, match := range m.current {
		if match.PatternID != patternID {
			kept = append(kept, match)
		}
	}
	m.current = kept
}

// DismissAllWarnings clears the active warnings without touching the
// permanent set.
func (m *Manager) DismissAllWarnings() {
	m.current = m.current[:0]
}

// PersistentlyDismissPattern silences the pattern for the rest of the
// session and removes its matches from the active warnings immediately.
func (m *Manager) PersistentlyDismissPattern(patternID string) {
	m.dismissed[patternID] = struct{}{}
	m.DismissWarning(patternID)
}

// RemovePersistentDismissal lifts a permanent dismissal. Already-cleared
// warnings are not restored; only future SetWarnings calls are affected.
func (m *Manager) RemovePersistentDismissal(patternID string) {
	delete(m.dismissed, patternID)
}

// IsPermanentlyDismissed reports whether the pattern id is silenced for the
// session.
func (m *Manager) IsPermanentlyDismissed(patternID string) bool {
	_, ok := m.dismissed[patternID]
	return ok
}

// PermanentlyDismissed returns the silenced pattern ids, for persistence by
// the caller.
func (m *Manager) PermanentlyDismissed() []string {
	out := make([]string, 0, len(m.dismissed))
	for id := range m.dismissed {
		out = append(out, id)
	}
	return out
}

// Reset returns the manager to its initial state: no warnings, nothing
// dismissed.
func (m *Manager) Reset() {
	m.current = m.current[:0]
	m.dismissed = make(map[string]struct{})
}

// CreateSnapshot captures the full manager state.
func (m *Manager) CreateSnapshot() Snapshot {
	s := Snapshot{
		Warnings:             make([]models.PatternMatch, 0, len(m.current)),
		PermanentlyDismissed: m.PermanentlyDismissed(),
	}
	for _, match := range m.current {
		s.Warnings = append(s.Warnings, match.Clone())
	}
	return s
}

// RestoreSnapshot replaces both pieces of state wholesale with deep copies
// of the snapshot, so the snapshot stays reusable afterwards.
func (m *Manager) RestoreSnapshot(s Snapshot) {
	m.current = make([]models.PatternMatch, 0, len(s.Warnings))
	for _, match := range s.Warnings {
		m.current = append(m.current, match.Clone())
	}
	m.dismissed = make(map[string]struct{}, len(s.PermanentlyDismissed))
	for _, id := range s.PermanentlyDismissed {
		m.dismissed[id] = struct{}{}
	}
}
