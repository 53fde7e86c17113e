// Package configcmd implements `commitsmith config`: showing, editing and
// mutating the persisted configuration.
package configcmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/thomas-vilte/commitsmith/internal/commands/completion_helper"
	"github.com/thomas-vilte/commitsmith/internal/config"
	apperrors "github.com/thomas-vilte/commitsmith/internal/errors"
	"github.com/thomas-vilte/commitsmith/internal/i18n"
	"github.com/thomas-vilte/commitsmith/internal/ui"
	"github.com/urfave/cli/v3"
)

var settableKeys = []string{
	"language",
	"subject_length_limit",
	"conventional_commit",
	"provide_suggestions",
	"rules_file",
	"templates_file",
}

type ConfigCommandFactory struct{}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{}
}

func (f *ConfigCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "config",
		Usage:         t.GetMessage("config_command_usage", 0, nil),
		ShellComplete: completion_helper.DefaultFlagComplete,
		Commands: []*cli.Command{
			f.showCommand(t, cfg),
			f.setCommand(t, cfg),
			f.initCommand(t, cfg),
			f.editCommand(t, cfg),
		},
	}
}

func (f *ConfigCommandFactory) showCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			fmt.Printf("language:             %s\n", cfg.Language)
			fmt.Printf("subject_length_limit: %d\n", cfg.SubjectLengthLimit)
			fmt.Printf("conventional_commit:  %t\n", cfg.ConventionalCommit)
			fmt.Printf("provide_suggestions:  %t\n", cfg.ProvideSuggestions)
			fmt.Printf("rules_file:           %s\n", cfg.RulesFile)
			fmt.Printf("templates_file:       %s\n", cfg.TemplatesFile)
			if len(cfg.DisabledPatterns) > 0 {
				fmt.Printf("disabled_patterns:    %s\n", strings.Join(cfg.DisabledPatterns, ", "))
			}
			if len(cfg.DismissedPatterns) > 0 {
				fmt.Printf("dismissed_patterns:   %s\n", strings.Join(cfg.DismissedPatterns, ", "))
			}
			fmt.Printf("%s %s\n", ui.InfoEmoji, ui.Dim.Sprint(cfg.PathFile))
			return nil
		},
	}
}

func (f *ConfigCommandFactory) setCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     t.GetMessage("config_set_usage", 0, nil),
		ArgsUsage: "<key> <value>",
		Action: func(ctx context.Context, command *cli.Command) error {
			key := command.Args().Get(0)
			value := command.Args().Get(1)

			if err := applySetting(cfg, key, value); err != nil {
				if key != "" && !isSettableKey(key) {
					return fmt.Errorf("%s", t.GetMessage("config.unknown_key", 0, map[string]interface{}{
						"Key":  key,
						"Keys": strings.Join(settableKeys, ", "),
					}))
				}
				return err
			}

			if err := config.SaveConfig(cfg); err != nil {
				return err
			}
			fmt.Printf("%s %s\n", ui.SuccessEmoji, t.GetMessage("config.saved", 0, nil))
			return nil
		},
	}
}

func (f *ConfigCommandFactory) initCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: t.GetMessage("config_init_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}
			fmt.Printf("%s %s\n", ui.SuccessEmoji, t.GetMessage("config.saved", 0, nil))
			fmt.Printf("%s %s\n", ui.InfoEmoji, ui.Dim.Sprint(cfg.PathFile))
			return nil
		},
	}
}

func (f *ConfigCommandFactory) editCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "edit",
		Usage: t.GetMessage("config_edit_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			editor := resolveEditor()
			if editor == "" {
				return apperrors.NewAppError(
					apperrors.TypeConfiguration,
					t.GetMessage("config_save.error_no_editor", 0, nil),
					nil,
				)
			}

			cmd := exec.CommandContext(ctx, editor, cfg.PathFile)
			cmd.Stdin = os.Stdin
			cmd.Stdout = os.Stdout
			cmd.Stderr = os.Stderr
			if err := cmd.Run(); err != nil {
				return apperrors.NewAppError(
					apperrors.TypeConfiguration,
					t.GetMessage("config_save.error_opening_editor", 0, nil),
					err,
				)
			}
			return nil
		},
	}
}

// resolveEditor prefers $EDITOR and falls back to common terminal editors.
func resolveEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	for _, candidate := range []string{"nano", "vim", "vi"} {
		if _, err := exec.LookPath(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

func isSettableKey(key string) bool {
	for _, k := range settableKeys {
		if k == key {
			return true
		}
	}
	return false
}

func applySetting(cfg *config.Config, key, value string) error {
	switch key {
	case "language":
		cfg.Language = value
	case "subject_length_limit":
		limit, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("subject_length_limit must be a number: %w", err)
		}
		cfg.SubjectLengthLimit = limit
	case "conventional_commit":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("conventional_commit must be true or false: %w", err)
		}
		cfg.ConventionalCommit = enabled
	case "provide_suggestions":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("provide_suggestions must be true or false: %w", err)
		}
		cfg.ProvideSuggestions = enabled
	case "rules_file":
		cfg.RulesFile = value
	case "templates_file":
		cfg.TemplatesFile = value
	default:
		return fmt.Errorf("unknown key %q", key)
	}
	return nil
}
