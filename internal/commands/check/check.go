// Package check implements `commitsmith check`: validate a message handed
// in through a flag, a file or stdin and report everything the engine finds.
package check

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/thomas-vilte/commitsmith/internal/commands/completion_helper"
	"github.com/thomas-vilte/commitsmith/internal/config"
	"github.com/thomas-vilte/commitsmith/internal/i18n"
	"github.com/thomas-vilte/commitsmith/internal/logger"
	"github.com/thomas-vilte/commitsmith/internal/models"
	"github.com/thomas-vilte/commitsmith/internal/services"
	"github.com/thomas-vilte/commitsmith/internal/ui"
	"github.com/urfave/cli/v3"
)

// reviewServiceBuilder lets tests swap the session wiring.
type reviewServiceBuilder func(cfg *config.Config, t *i18n.Translations, opts models.ValidationOptions) (*services.ReviewService, error)

type CheckCommandFactory struct {
	buildService reviewServiceBuilder
}

func NewCheckCommandFactory() *CheckCommandFactory {
	return &CheckCommandFactory{buildService: services.NewReviewServiceFromConfig}
}

func (f *CheckCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "check",
		Aliases:       []string{"c"},
		Usage:         t.GetMessage("check_command_usage", 0, nil),
		Description:   t.GetMessage("check_command_description", 0, nil),
		ShellComplete: completion_helper.DefaultFlagComplete,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "message",
				Aliases: []string{"m"},
				Usage:   t.GetMessage("check.flag_message", 0, nil),
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"F"},
				Usage:   t.GetMessage("check.flag_file", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "conventional",
				Usage: t.GetMessage("check.flag_conventional", 0, nil),
				Value: cfg.ConventionalCommit,
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Usage:   t.GetMessage("check.flag_limit", 0, nil),
				Value:   cfg.SubjectLengthLimit,
			},
			&cli.BoolFlag{
				Name:    "suggestions",
				Aliases: []string{"s"},
				Usage:   t.GetMessage("check.flag_suggestions", 0, nil),
				Value:   cfg.ProvideSuggestions,
			},
		},
		Action: f.createAction(cfg, t),
	}
}

func (f *CheckCommandFactory) createAction(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		message, err := readMessage(command, t)
		if err != nil {
			return err
		}

		opts := models.ValidationOptions{
			ConventionalCommit: command.Bool("conventional"),
			SubjectLengthLimit: command.Int("limit"),
			ProvideSuggestions: command.Bool("suggestions"),
		}

		service, err := f.buildService(cfg, t, opts)
		if err != nil {
			return err
		}

		review := service.Analyze(message)
		logger.Debug(ctx, "message analyzed",
			"score", fmt.Sprintf("%.2f", review.Result.QualityScore),
			"matches", len(review.Matches),
		)

		ui.PrintValidationResult(review.Result)

		active := service.ActiveWarnings()
		if len(active) == 0 {
			fmt.Printf("%s %s\n", ui.SuccessEmoji, t.GetMessage("check.no_issues", 0, nil))
		} else {
			ui.PrintMatches(active)
		}

		if service.HasBlockingIssues(review) {
			return fmt.Errorf("%s", t.GetMessage("check.result_invalid", 0, nil))
		}
		return nil
	}
}

// readMessage resolves the message from -m, -F (with '-' meaning stdin), in
// that order.
func readMessage(command *cli.Command, t *i18n.Translations) (string, error) {
	if msg := command.String("message"); msg != "" {
		return msg, nil
	}

	path := command.String("file")
	if path == "" {
		return "", fmt.Errorf("%s", t.GetMessage("check.error_no_message", 0, nil))
	}

	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
