// Package patterns implements `commitsmith patterns`: listing, inspecting
// and toggling the detection catalog from the command line.
package patterns

import (
	"context"
	"fmt"

	"github.com/thomas-vilte/commitsmith/internal/commands/completion_helper"
	"github.com/thomas-vilte/commitsmith/internal/config"
	"github.com/thomas-vilte/commitsmith/internal/i18n"
	"github.com/thomas-vilte/commitsmith/internal/models"
	"github.com/thomas-vilte/commitsmith/internal/patterns"
	"github.com/thomas-vilte/commitsmith/internal/rules"
	"github.com/thomas-vilte/commitsmith/internal/ui"
	"github.com/urfave/cli/v3"
)

type PatternsCommandFactory struct{}

func NewPatternsCommandFactory() *PatternsCommandFactory {
	return &PatternsCommandFactory{}
}

func (f *PatternsCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "patterns",
		Aliases:       []string{"p"},
		Usage:         t.GetMessage("patterns_command_usage", 0, nil),
		ShellComplete: completion_helper.DefaultFlagComplete,
		Commands: []*cli.Command{
			f.listCommand(t, cfg),
			f.showCommand(t, cfg),
			f.testCommand(t, cfg),
			f.disableCommand(t, cfg),
			f.enableCommand(t, cfg),
		},
	}
}

// buildMatcher assembles the same catalog the validation pipeline sees.
func buildMatcher(cfg *config.Config) (*patterns.Matcher, error) {
	matcherCfg := patterns.DefaultMatcherConfig()
	if cfg.RulesFile != "" {
		custom, err := rules.Load(cfg.RulesFile)
		if err != nil {
			return nil, err
		}
		matcherCfg.CustomPatterns = custom
	}
	m := patterns.NewMatcher(matcherCfg)
	for _, id := range cfg.DisabledPatterns {
		m.DisablePattern(id)
	}
	return m, nil
}

func (f *PatternsCommandFactory) listCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   t.GetMessage("patterns.list_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "category",
				Usage: "only show patterns in this category",
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			matcher, err := buildMatcher(cfg)
			if err != nil {
				return err
			}

			category := models.Category(command.String("category"))
			for _, p := range matcher.GetPatterns(category) {
				status := ""
				if matcher.IsDisabled(p.ID) {
					status = ui.Dim.Sprint(" (disabled)")
				}
				fmt.Printf("%s %s %s%s\n", ui.SeverityBadge(p.Severity), p.Name, ui.Dim.Sprintf("[%s]", p.ID), status)
				fmt.Printf("   %s\n", p.Description)
			}
			return nil
		},
	}
}

func (f *PatternsCommandFactory) showCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     t.GetMessage("patterns.show_usage", 0, nil),
		ArgsUsage: "<pattern-id>",
		Action: func(ctx context.Context, command *cli.Command) error {
			id := command.Args().First()
			matcher, err := buildMatcher(cfg)
			if err != nil {
				return err
			}

			p, ok := matcher.GetPattern(id)
			if !ok {
				return fmt.Errorf("%s", t.GetMessage("patterns.not_found", 0, map[string]interface{}{"ID": id}))
			}

			fmt.Printf("%s %s %s\n", ui.SeverityBadge(p.Severity), p.Name, ui.Dim.Sprintf("[%s]", p.ID))
			fmt.Printf("Category:   %s\n", p.Category)
			fmt.Printf("Regex:      %s\n", p.Regex.String())
			fmt.Printf("Description: %s\n", p.Description)
			if p.Suggestion != "" {
				fmt.Printf("Suggestion: %s\n", p.Suggestion)
			}
			if p.Examples != nil {
				if len(p.Examples.Good) > 0 {
					fmt.Printf("%s Good:\n", ui.SuccessEmoji)
					for _, ex := range p.Examples.Good {
						fmt.Printf("   %s\n", ex)
					}
				}
				if len(p.Examples.Bad) > 0 {
					fmt.Printf("%s Bad:\n", ui.ErrorEmoji)
					for _, ex := range p.Examples.Bad {
						fmt.Printf("   %s\n", ex)
					}
				}
			}
			return nil
		},
	}
}

func (f *PatternsCommandFactory) testCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "test",
		Usage:     t.GetMessage("patterns.test_usage", 0, nil),
		ArgsUsage: "<message>",
		Action: func(ctx context.Context, command *cli.Command) error {
			message := command.Args().First()
			matcher, err := buildMatcher(cfg)
			if err != nil {
				return err
			}

			result := matcher.AnalyzeMessage(message, nil)
			if !result.HasIssues {
				fmt.Printf("%s %s\n", ui.SuccessEmoji, t.GetMessage("patterns.test_no_matches", 0, nil))
				return nil
			}
			ui.PrintMatches(result.Matches)
			return nil
		},
	}
}

func (f *PatternsCommandFactory) disableCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "disable",
		Usage:     t.GetMessage("patterns.disable_usage", 0, nil),
		ArgsUsage: "<pattern-id>",
		Action: func(ctx context.Context, command *cli.Command) error {
			return togglePattern(t, cfg, command.Args().First(), true)
		},
	}
}

func (f *PatternsCommandFactory) enableCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "enable",
		Usage:     t.GetMessage("patterns.enable_usage", 0, nil),
		ArgsUsage: "<pattern-id>",
		Action: func(ctx context.Context, command *cli.Command) error {
			return togglePattern(t, cfg, command.Args().First(), false)
		},
	}
}

func togglePattern(t *i18n.Translations, cfg *config.Config, id string, disable bool) error {
	matcher, err := buildMatcher(cfg)
	if err != nil {
		return err
	}
	if _, ok := matcher.GetPattern(id); !ok {
		return fmt.Errorf("%s", t.GetMessage("patterns.not_found", 0, map[string]interface{}{"ID": id}))
	}

	messageID := "patterns.enabled_ok"
	if disable {
		cfg.DisablePattern(id)
		messageID = "patterns.disabled_ok"
	} else {
		cfg.EnablePattern(id)
	}
	if err := config.SaveConfig(cfg); err != nil {
		return err
	}

	fmt.Printf("%s %s\n", ui.SuccessEmoji, t.GetMessage(messageID, 0, map[string]interface{}{"ID": id}))
	return nil
}
