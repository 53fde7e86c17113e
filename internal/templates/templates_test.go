package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/commitsmith/internal/models"
)

const sampleTemplates = `
templates:
  - name: feature
    description: New feature with a scope
    type: feat
    subject: describe the feature
    body: |-
      What changed and why.
  - name: hotfix
    type: fix
    scope: prod
    subject: describe the fix
  - name: plain
    subject: Short summary
    body: Longer explanation.
`

func TestLoad(t *testing.T) {
	t.Run("reads templates from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "templates.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sampleTemplates), 0644))

		store, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"feature", "hotfix", "plain"}, store.Names())
	})

	t.Run("missing file yields an empty store", func(t *testing.T) {
		store, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Empty(t, store.Names())
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "templates.yaml")
		require.NoError(t, os.WriteFile(path, []byte("templates: ["), 0644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestStore_Get(t *testing.T) {
	store := NewStore([]models.CommitTemplate{{Name: "a", Subject: "one"}})

	tpl, err := store.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "one", tpl.Subject)

	_, err = store.Get("missing")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	t.Run("conventional template uses the formatter", func(t *testing.T) {
		out := Render(models.CommitTemplate{
			Name:    "hotfix",
			Type:    "fix",
			Scope:   "prod",
			Subject: "describe the fix",
			Body:    "Steps taken.",
		})

		assert.Equal(t, "fix(prod): describe the fix\n\nSteps taken.", out)
	})

	t.Run("breaking template carries the bang", func(t *testing.T) {
		out := Render(models.CommitTemplate{Name: "b", Type: "feat", Subject: "redesign", Breaking: true})
		assert.Equal(t, "feat!: redesign", out)
	})

	t.Run("free-form template is subject plus body", func(t *testing.T) {
		out := Render(models.CommitTemplate{Name: "plain", Subject: "Short summary", Body: "Longer explanation."})
		assert.Equal(t, "Short summary\n\nLonger explanation.", out)
	})
}
