package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cfg "github.com/thomas-vilte/commitsmith/internal/config"
	"github.com/thomas-vilte/commitsmith/internal/i18n"
	"github.com/urfave/cli/v3"
)

type stubFactory struct{ name string }

func (f stubFactory) CreateCommand(_ *i18n.Translations, _ *cfg.Config) *cli.Command {
	return &cli.Command{Name: f.name}
}

func TestRegistry(t *testing.T) {
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	t.Run("commands come back in registration order", func(t *testing.T) {
		r := NewRegistry(&cfg.Config{}, trans)
		require.NoError(t, r.Register("check", stubFactory{"check"}))
		require.NoError(t, r.Register("compose", stubFactory{"compose"}))

		commands := r.CreateCommands()
		require.Len(t, commands, 2)
		assert.Equal(t, "check", commands[0].Name)
		assert.Equal(t, "compose", commands[1].Name)
	})

	t.Run("duplicate registration fails", func(t *testing.T) {
		r := NewRegistry(&cfg.Config{}, trans)
		require.NoError(t, r.Register("check", stubFactory{"check"}))
		assert.Error(t, r.Register("check", stubFactory{"check"}))
	})
}
