package compose

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/thomas-vilte/commitsmith/internal/config"
	apperrors "github.com/thomas-vilte/commitsmith/internal/errors"
	"github.com/thomas-vilte/commitsmith/internal/i18n"
	"github.com/thomas-vilte/commitsmith/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

type fakeGitService struct {
	staged    bool
	committed []string
	commitErr error
}

func (f *fakeGitService) HasStagedChanges(ctx context.Context) bool {
	return f.staged
}

func (f *fakeGitService) CreateCommit(ctx context.Context, message string) (*models.CommitResult, error) {
	if f.commitErr != nil {
		return nil, f.commitErr
	}
	f.committed = append(f.committed, message)
	return &models.CommitResult{Hash: "0123456789abcdef", Message: message}, nil
}

func setupComposeTest(t *testing.T) (*config.Config, *i18n.Translations) {
	t.Helper()

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	translations, err := i18n.NewTranslations("en", t.TempDir())
	require.NoError(t, err)

	return cfg, translations
}

func runCompose(t *testing.T, git *fakeGitService, cfg *config.Config, translations *i18n.Translations, args ...string) error {
	t.Helper()

	factory := NewComposeCommandFactory(git)
	app := &cli.Command{Commands: []*cli.Command{factory.CreateCommand(translations, cfg)}}
	return app.Run(context.Background(), append([]string{"commitsmith", "compose"}, args...))
}

func TestComposeCommand(t *testing.T) {
	t.Run("commits a clean message directly", func(t *testing.T) {
		cfg, translations := setupComposeTest(t)
		git := &fakeGitService{staged: true}

		err := runCompose(t, git, cfg, translations, "-m", "Add retry support")

		require.NoError(t, err)
		require.Len(t, git.committed, 1)
		assert.Equal(t, "Add retry support", git.committed[0])
	})

	t.Run("fails without staged changes", func(t *testing.T) {
		cfg, translations := setupComposeTest(t)
		git := &fakeGitService{staged: false}

		err := runCompose(t, git, cfg, translations, "-m", "Add retry support")

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNoStagedChanges)
		assert.Empty(t, git.committed)
	})

	t.Run("renders a template into the message", func(t *testing.T) {
		cfg, translations := setupComposeTest(t)

		templatesPath := filepath.Join(t.TempDir(), "templates.yaml")
		content := `templates:
  - name: bugfix
    type: fix
    scope: parser
    subject: handle empty diff
`
		require.NoError(t, os.WriteFile(templatesPath, []byte(content), 0644))
		cfg.TemplatesFile = templatesPath

		git := &fakeGitService{staged: true}

		err := runCompose(t, git, cfg, translations, "-t", "bugfix")

		require.NoError(t, err)
		require.Len(t, git.committed, 1)
		assert.Equal(t, "fix(parser): handle empty diff", git.committed[0])
	})

	t.Run("fails for an unknown template", func(t *testing.T) {
		cfg, translations := setupComposeTest(t)
		git := &fakeGitService{staged: true}

		err := runCompose(t, git, cfg, translations, "-t", "no-such-template")

		assert.Error(t, err)
		assert.Empty(t, git.committed)
	})

	t.Run("fails without an editor and without a message", func(t *testing.T) {
		cfg, translations := setupComposeTest(t)
		t.Setenv("EDITOR", "")
		git := &fakeGitService{staged: true}

		err := runCompose(t, git, cfg, translations)

		assert.Error(t, err)
		assert.Empty(t, git.committed)
	})
}
