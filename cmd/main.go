package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/thomas-vilte/commitsmith/internal/cli/registry"
	"github.com/thomas-vilte/commitsmith/internal/commands/check"
	"github.com/thomas-vilte/commitsmith/internal/commands/compose"
	"github.com/thomas-vilte/commitsmith/internal/commands/configcmd"
	"github.com/thomas-vilte/commitsmith/internal/commands/hook"
	"github.com/thomas-vilte/commitsmith/internal/commands/patterns"
	cfg "github.com/thomas-vilte/commitsmith/internal/config"
	"github.com/thomas-vilte/commitsmith/internal/git"
	"github.com/thomas-vilte/commitsmith/internal/i18n"
	"github.com/thomas-vilte/commitsmith/internal/logger"
	"github.com/thomas-vilte/commitsmith/internal/ui"
	"github.com/thomas-vilte/commitsmith/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error initializing the cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		ui.PrintError(err)
		os.Exit(1)
	}
}

func initializeApp() (*cli.Command, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not determine the user home directory: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, fmt.Errorf("error loading translations: %w", err)
	}

	gitService := git.NewGitService()

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("check", check.NewCheckCommandFactory()); err != nil {
		log.Fatalf("Error registering the 'check' command: %v", err)
	}

	if err := registerCommand.Register("compose", compose.NewComposeCommandFactory(gitService)); err != nil {
		log.Fatalf("Error registering the 'compose' command: %v", err)
	}

	if err := registerCommand.Register("hook", hook.NewHookCommandFactory()); err != nil {
		log.Fatalf("Error registering the 'hook' command: %v", err)
	}

	if err := registerCommand.Register("patterns", patterns.NewPatternsCommandFactory()); err != nil {
		log.Fatalf("Error registering the 'patterns' command: %v", err)
	}

	if err := registerCommand.Register("config", configcmd.NewConfigCommandFactory()); err != nil {
		log.Fatalf("Error registering the 'config' command: %v", err)
	}

	commands := registerCommand.CreateCommands()

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	return &cli.Command{
		Name:        "commitsmith",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Version:     version.Version,
		Description: translations.GetMessage("app_description", 0, nil),
		Commands:    commands,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log with source locations",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logger.Initialize(cmd.Bool("debug"), cmd.Bool("verbose"))
			return ctx, nil
		},
		EnableShellCompletion: true,
	}, nil
}
