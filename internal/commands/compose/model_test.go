package compose

import (
	"path/filepath"
	"testing"

	"github.com/thomas-vilte/commitsmith/internal/config"
	"github.com/thomas-vilte/commitsmith/internal/i18n"
	"github.com/thomas-vilte/commitsmith/internal/services"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, message string) reviewModel {
	t.Helper()

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	translations, err := i18n.NewTranslations("en", t.TempDir())
	require.NoError(t, err)

	service, err := services.NewReviewServiceFromConfig(cfg, translations, cfg.ValidationOptions())
	require.NoError(t, err)

	review := service.Analyze(message)
	return newReviewModel(message, review.Result, service, translations)
}

func press(m reviewModel, keys ...string) reviewModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(reviewModel)
	}
	return m
}

func TestReviewModel(t *testing.T) {
	t.Run("starts with the active warnings", func(t *testing.T) {
		m := newTestModel(t, "WIP: still polishing the uploader")

		require.Len(t, m.items, 1)
		assert.Equal(t, "wip-marker", m.items[0].PatternID)
		assert.Equal(t, outcomePending, m.outcome)
	})

	t.Run("dismiss removes the selected warning", func(t *testing.T) {
		m := newTestModel(t, "WIP: still polishing the uploader")

		m = press(m, "d")

		assert.Empty(t, m.items)
		assert.Empty(t, m.service.ActiveWarnings())
	})

	t.Run("undo restores a dismissed warning", func(t *testing.T) {
		m := newTestModel(t, "WIP: still polishing the uploader")

		m = press(m, "d")
		require.Empty(t, m.items)

		m = press(m, "u")
		require.Len(t, m.items, 1)
		assert.Equal(t, "wip-marker", m.items[0].PatternID)
	})

	t.Run("dismiss all clears every warning", func(t *testing.T) {
		m := newTestModel(t, "WIP: added uploader and fixes retries.")

		require.NotEmpty(t, m.items)
		m = press(m, "D")

		assert.Empty(t, m.items)
	})

	t.Run("permanent dismissal is recorded on the manager", func(t *testing.T) {
		m := newTestModel(t, "WIP: still polishing the uploader")

		m = press(m, "p")

		assert.Empty(t, m.items)
		assert.True(t, m.service.Manager().IsPermanentlyDismissed("wip-marker"))
	})

	t.Run("cursor stays in bounds", func(t *testing.T) {
		m := newTestModel(t, "WIP: added uploader and fixes retries.")
		require.True(t, len(m.items) >= 2)

		m = press(m, "down", "down", "down", "down", "up")
		assert.Equal(t, len(m.items)-2, m.cursor)

		m = press(m, "up", "up", "up", "up")
		assert.Equal(t, 0, m.cursor)
	})

	t.Run("commit key quits with the commit outcome", func(t *testing.T) {
		m := newTestModel(t, "WIP: still polishing the uploader")

		m = press(m, "c")

		assert.Equal(t, outcomeCommit, m.outcome)
	})

	t.Run("abort key quits with the abort outcome", func(t *testing.T) {
		m := newTestModel(t, "WIP: still polishing the uploader")

		m = press(m, "q")

		assert.Equal(t, outcomeAbort, m.outcome)
	})

	t.Run("escape aborts too", func(t *testing.T) {
		m := newTestModel(t, "WIP: still polishing the uploader")

		m = press(m, "esc")

		assert.Equal(t, outcomeAbort, m.outcome)
	})

	t.Run("view lists the warnings", func(t *testing.T) {
		m := newTestModel(t, "WIP: still polishing the uploader")

		view := m.View()

		assert.Contains(t, view, "wip-marker")
	})
}
