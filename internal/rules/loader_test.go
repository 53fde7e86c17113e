package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/thomas-vilte/commitsmith/internal/errors"
	"github.com/thomas-vilte/commitsmith/internal/models"
	"github.com/thomas-vilte/commitsmith/internal/patterns"
)

const simpleRules = `
patterns:
  - id: team-wip
    regex: '\bDRAFT\b'
    severity: warning
    category: workflow
`

func TestParse(t *testing.T) {
	t.Run("compiles valid rules", func(t *testing.T) {
		got, err := Parse([]byte(simpleRules))
		require.NoError(t, err)
		require.Len(t, got, 1)

		p := got[0]
		assert.Equal(t, "team-wip", p.ID)
		assert.Equal(t, "team-wip", p.Name) // falls back to the id
		assert.Equal(t, models.SeverityWarning, p.Severity)
		assert.Equal(t, models.CategoryWorkflow, p.Category)
		assert.True(t, p.Regex.MatchString("DRAFT: thing"))
	})

	t.Run("global flag and file version carry over", func(t *testing.T) {
		got, err := Parse([]byte(`
version: "3"
patterns:
  - id: x
    regex: 'x+'
    global: true
    severity: info
    category: style
`))
		require.NoError(t, err)
		assert.True(t, got[0].Global)
		assert.Equal(t, "3", got[0].Version)
	})

	t.Run("invalid regex fails the whole load", func(t *testing.T) {
		_, err := Parse([]byte(`
patterns:
  - id: broken
    regex: '('
    severity: warning
    category: style
`))
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.TypeRules, appErr.Type)
		assert.Equal(t, "broken", appErr.Context["rule"])
	})

	t.Run("unknown severity and category are rejected", func(t *testing.T) {
		_, err := Parse([]byte(`
patterns:
  - id: x
    regex: 'x'
    severity: fatal
    category: style
`))
		assert.Error(t, err)

		_, err = Parse([]byte(`
patterns:
  - id: x
    regex: 'x'
    severity: warning
    category: nonsense
`))
		assert.Error(t, err)
	})

	t.Run("duplicate ids are rejected", func(t *testing.T) {
		_, err := Parse([]byte(`
patterns:
  - id: x
    regex: 'x'
    severity: warning
    category: style
  - id: x
    regex: 'y'
    severity: warning
    category: style
`))
		assert.Error(t, err)
	})

	t.Run("missing id or regex is rejected", func(t *testing.T) {
		_, err := Parse([]byte("patterns:\n  - regex: 'x'\n    severity: info\n    category: style\n"))
		assert.Error(t, err)

		_, err = Parse([]byte("patterns:\n  - id: x\n    severity: info\n    category: style\n"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml is rejected", func(t *testing.T) {
		_, err := Parse([]byte("patterns: ["))
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("reads rules from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		require.NoError(t, os.WriteFile(path, []byte(simpleRules), 0644))

		got, err := Load(path)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("missing file is a typed error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.TypeRules, appErr.Type)
	})
}

func TestLoadedRulesDriveTheMatcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(simpleRules), 0644))

	custom, err := Load(path)
	require.NoError(t, err)

	m := patterns.NewMatcher(patterns.MatcherConfig{IncludeBuiltIn: true, CustomPatterns: custom})
	result := m.AnalyzeMessage("DRAFT: new uploader", nil)

	var ids []string
	for _, match := range result.Matches {
		ids = append(ids, match.PatternID)
	}
	assert.Contains(t, ids, "team-wip")
}
