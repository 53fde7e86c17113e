package configcmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/thomas-vilte/commitsmith/internal/config"
	"github.com/thomas-vilte/commitsmith/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func setupConfigTest(t *testing.T) (*config.Config, *i18n.Translations) {
	t.Helper()

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	translations, err := i18n.NewTranslations("en", t.TempDir())
	require.NoError(t, err)

	return cfg, translations
}

func runConfig(t *testing.T, cfg *config.Config, translations *i18n.Translations, args ...string) error {
	t.Helper()

	factory := NewConfigCommandFactory()
	app := &cli.Command{Commands: []*cli.Command{factory.CreateCommand(translations, cfg)}}
	return app.Run(context.Background(), append([]string{"commitsmith", "config"}, args...))
}

func TestConfigCommand(t *testing.T) {
	t.Run("show runs without error", func(t *testing.T) {
		cfg, translations := setupConfigTest(t)

		assert.NoError(t, runConfig(t, cfg, translations, "show"))
	})

	t.Run("set persists the subject length limit", func(t *testing.T) {
		cfg, translations := setupConfigTest(t)

		require.NoError(t, runConfig(t, cfg, translations, "set", "subject_length_limit", "72"))

		loaded, err := config.LoadConfig(cfg.PathFile)
		require.NoError(t, err)
		assert.Equal(t, 72, loaded.SubjectLengthLimit)
	})

	t.Run("set persists the conventional commit toggle", func(t *testing.T) {
		cfg, translations := setupConfigTest(t)

		require.NoError(t, runConfig(t, cfg, translations, "set", "conventional_commit", "true"))

		loaded, err := config.LoadConfig(cfg.PathFile)
		require.NoError(t, err)
		assert.True(t, loaded.ConventionalCommit)
	})

	t.Run("set rejects an unknown key", func(t *testing.T) {
		cfg, translations := setupConfigTest(t)

		err := runConfig(t, cfg, translations, "set", "no_such_key", "value")

		assert.Error(t, err)
	})

	t.Run("set rejects a non-numeric limit", func(t *testing.T) {
		cfg, translations := setupConfigTest(t)

		err := runConfig(t, cfg, translations, "set", "subject_length_limit", "many")

		assert.Error(t, err)
	})

	t.Run("set rejects an out-of-range limit", func(t *testing.T) {
		cfg, translations := setupConfigTest(t)

		err := runConfig(t, cfg, translations, "set", "subject_length_limit", "5000")

		assert.Error(t, err)
	})

	t.Run("init writes the config file", func(t *testing.T) {
		cfg, translations := setupConfigTest(t)

		require.NoError(t, runConfig(t, cfg, translations, "init"))

		loaded, err := config.LoadConfig(cfg.PathFile)
		require.NoError(t, err)
		assert.Equal(t, cfg.Language, loaded.Language)
	})

	t.Run("edit fails without an editor", func(t *testing.T) {
		cfg, translations := setupConfigTest(t)
		t.Setenv("EDITOR", "")
		t.Setenv("PATH", t.TempDir())

		err := runConfig(t, cfg, translations, "edit")

		assert.Error(t, err)
	})
}

func TestApplySetting(t *testing.T) {
	cfg := &config.Config{}

	require.NoError(t, applySetting(cfg, "language", "es"))
	assert.Equal(t, "es", cfg.Language)

	require.NoError(t, applySetting(cfg, "rules_file", "/tmp/rules.yaml"))
	assert.Equal(t, "/tmp/rules.yaml", cfg.RulesFile)

	require.NoError(t, applySetting(cfg, "provide_suggestions", "true"))
	assert.True(t, cfg.ProvideSuggestions)

	assert.Error(t, applySetting(cfg, "provide_suggestions", "sure"))
	assert.Error(t, applySetting(cfg, "bogus", "x"))
}
