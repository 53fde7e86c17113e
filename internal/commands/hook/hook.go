// Package hook implements the commit-msg hook entry point. Git invokes it
// with the path of the message file; a non-zero exit aborts the commit.
package hook

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/thomas-vilte/commitsmith/internal/commands/completion_helper"
	"github.com/thomas-vilte/commitsmith/internal/config"
	"github.com/thomas-vilte/commitsmith/internal/i18n"
	"github.com/thomas-vilte/commitsmith/internal/models"
	"github.com/thomas-vilte/commitsmith/internal/regex"
	"github.com/thomas-vilte/commitsmith/internal/services"
	"github.com/thomas-vilte/commitsmith/internal/ui"
	"github.com/urfave/cli/v3"
)

type reviewServiceBuilder func(cfg *config.Config, t *i18n.Translations, opts models.ValidationOptions) (*services.ReviewService, error)

type HookCommandFactory struct {
	buildService reviewServiceBuilder
}

func NewHookCommandFactory() *HookCommandFactory {
	return &HookCommandFactory{buildService: services.NewReviewServiceFromConfig}
}

func (f *HookCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "hook",
		Usage:         t.GetMessage("hook_command_usage", 0, nil),
		Description:   t.GetMessage("hook_command_description", 0, nil),
		ArgsUsage:     "<message-file>",
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action:        f.createAction(cfg, t),
	}
}

func (f *HookCommandFactory) createAction(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		path := command.Args().First()
		if path == "" {
			return fmt.Errorf("usage: commitsmith hook <message-file>")
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		message := StripComments(string(data))

		service, err := f.buildService(cfg, t, cfg.ValidationOptions())
		if err != nil {
			return err
		}

		review := service.Analyze(message)
		if !service.HasBlockingIssues(review) {
			fmt.Printf("%s %s\n", ui.SuccessEmoji, t.GetMessage("hook.passed", 0, nil))
			return nil
		}

		ui.PrintValidationResult(review.Result)
		ui.PrintMatches(service.ActiveWarnings())

		count := len(review.Result.Errors)
		for _, m := range service.ActiveWarnings() {
			if m.Severity == models.SeverityError {
				count++
			}
		}
		msg := t.GetMessage("hook.blocked", count, map[string]interface{}{"Count": count})
		return fmt.Errorf("%s", msg)
	}
}

// StripComments removes the lines git pre-fills in the message file
// (comments, the scissors block is covered by them too) and trailing
// whitespace, mirroring what git itself commits.
func StripComments(raw string) string {
	cleaned := regex.CommentLine.ReplaceAllString(raw, "")
	return strings.TrimRight(cleaned, " \t\n")
}
