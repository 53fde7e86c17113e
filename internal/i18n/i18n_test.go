package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTranslations(t *testing.T) {
	t.Run("default messages are embedded", func(t *testing.T) {
		trans, err := NewTranslations("en", "")
		require.NoError(t, err)

		msg := trans.GetMessage("validation.error_empty_subject", 0, nil)
		assert.Equal(t, "Commit message cannot be empty", msg)
	})

	t.Run("template data is interpolated", func(t *testing.T) {
		trans, err := NewTranslations("en", "")
		require.NoError(t, err)

		msg := trans.GetMessage("validation.suggest_shorten_subject", 0, map[string]interface{}{"Limit": 50})
		assert.Contains(t, msg, "50")
	})

	t.Run("missing id is reported inline", func(t *testing.T) {
		trans, err := NewTranslations("en", "")
		require.NoError(t, err)

		msg := trans.GetMessage("nope.nothing", 0, nil)
		assert.Contains(t, msg, "Translation missing")
	})

	t.Run("unsupported language is rejected", func(t *testing.T) {
		trans, err := NewTranslations("en", "")
		require.NoError(t, err)

		assert.Error(t, trans.SetLanguage("tlh"))
		assert.NoError(t, trans.SetLanguage("en"))
	})
}
