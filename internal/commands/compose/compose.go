// Package compose implements `commitsmith compose`: write a message, review
// the warnings the engine raises, dismiss or accept them, then commit.
package compose

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/thomas-vilte/commitsmith/internal/commands/completion_helper"
	"github.com/thomas-vilte/commitsmith/internal/config"
	apperrors "github.com/thomas-vilte/commitsmith/internal/errors"
	"github.com/thomas-vilte/commitsmith/internal/i18n"
	"github.com/thomas-vilte/commitsmith/internal/models"
	"github.com/thomas-vilte/commitsmith/internal/regex"
	"github.com/thomas-vilte/commitsmith/internal/services"
	"github.com/thomas-vilte/commitsmith/internal/templates"
	"github.com/thomas-vilte/commitsmith/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
)

// gitService is the slice of the git layer compose needs, kept minimal for
// testing purposes.
type gitService interface {
	HasStagedChanges(ctx context.Context) bool
	CreateCommit(ctx context.Context, message string) (*models.CommitResult, error)
}

type reviewServiceBuilder func(cfg *config.Config, t *i18n.Translations, opts models.ValidationOptions) (*services.ReviewService, error)

type ComposeCommandFactory struct {
	git          gitService
	buildService reviewServiceBuilder
}

func NewComposeCommandFactory(git gitService) *ComposeCommandFactory {
	return &ComposeCommandFactory{
		git:          git,
		buildService: services.NewReviewServiceFromConfig,
	}
}

func (f *ComposeCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "compose",
		Aliases:       []string{"co"},
		Usage:         t.GetMessage("compose_command_usage", 0, nil),
		Description:   t.GetMessage("compose_command_description", 0, nil),
		ShellComplete: completion_helper.DefaultFlagComplete,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "message",
				Aliases: []string{"m"},
				Usage:   t.GetMessage("compose.flag_message", 0, nil),
			},
			&cli.StringFlag{
				Name:    "template",
				Aliases: []string{"t"},
				Usage:   t.GetMessage("compose.flag_template", 0, nil),
			},
		},
		Action: f.createAction(cfg, t),
	}
}

func (f *ComposeCommandFactory) createAction(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		if !f.git.HasStagedChanges(ctx) {
			return apperrors.ErrNoStagedChanges
		}

		message, err := f.resolveMessage(ctx, command, cfg, t)
		if err != nil {
			return err
		}

		service, err := f.buildService(cfg, t, cfg.ValidationOptions())
		if err != nil {
			return err
		}

		review := service.Analyze(message)
		ui.PrintValidationResult(review.Result)

		if len(service.ActiveWarnings()) > 0 || service.HasBlockingIssues(review) {
			p := tea.NewProgram(newReviewModel(message, review.Result, service, t))
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("error running warning review: %w", err)
			}
			m := final.(reviewModel)
			if m.outcome != outcomeCommit {
				fmt.Printf("%s %s\n", ui.InfoEmoji, t.GetMessage("compose.aborted", 0, nil))
				return nil
			}
		}

		// Permanent dismissals made during the review survive the session.
		dismissed := service.Manager().PermanentlyDismissed()
		if len(dismissed) > 0 {
			for _, id := range dismissed {
				cfg.DismissPattern(id)
			}
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}
		}

		result, err := f.git.CreateCommit(ctx, message)
		if err != nil {
			return err
		}

		fmt.Printf("%s %s\n", ui.SuccessEmoji, t.GetMessage("compose.commit_created", 0, nil))
		fmt.Printf("   %s %s\n", ui.Dim.Sprint(result.Hash[:min(len(result.Hash), 8)]), firstLine(result.Message))
		return nil
	}
}

func (f *ComposeCommandFactory) resolveMessage(ctx context.Context, command *cli.Command, cfg *config.Config, t *i18n.Translations) (string, error) {
	if msg := command.String("message"); msg != "" {
		return msg, nil
	}

	if name := command.String("template"); name != "" {
		store, err := templates.Load(cfg.TemplatesFile)
		if err != nil {
			return "", err
		}
		tpl, err := store.Get(name)
		if err != nil {
			return "", err
		}
		return templates.Render(tpl), nil
	}

	return f.editMessage(ctx, t)
}

// editMessage opens $EDITOR on a temporary file, the way git itself asks for
// a message, then strips comment lines.
func (f *ComposeCommandFactory) editMessage(ctx context.Context, t *i18n.Translations) (string, error) {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		return "", apperrors.NewAppError(
			apperrors.TypeConfiguration,
			t.GetMessage("compose.error_no_editor", 0, nil),
			nil,
		)
	}

	file, err := os.CreateTemp("", "commitsmith-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create message file: %w", err)
	}
	path := file.Name()
	defer func() { _ = os.Remove(path) }()

	header := "\n# Write your commit message above.\n# Lines starting with '#' are ignored.\n"
	if _, err := file.WriteString(header); err != nil {
		_ = file.Close()
		return "", fmt.Errorf("failed to prepare message file: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to prepare message file: %w", err)
	}

	cmd := exec.CommandContext(ctx, editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor exited with an error: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read message file: %w", err)
	}

	cleaned := regex.CommentLine.ReplaceAllString(string(data), "")
	return strings.TrimSpace(cleaned), nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
