package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/atlanticdynamic/hostfixtures/internal/config"
	"github.com/atlanticdynamic/hostfixtures/internal/fancy"
	"github.com/atlanticdynamic/hostfixtures/internal/fixtures"
	"github.com/urfave/cli/v3"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Aliases:   []string{"lint"},
		Usage:     "Validate a configuration file",
		ArgsUsage: "<config.toml>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the configuration file",
			},
		},
		Action: validateAction,
	}
}

func validateAction(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	if configPath == "" {
		if cmd.Args().Len() < 1 {
			return cli.Exit("config file path required (use the --config flag, or provide the config file as positional argument)", 1)
		}
		configPath = cmd.Args().Get(0)
	}

	cfg, err := validateFile(configPath)
	if err != nil {
		return cli.Exit(fmt.Errorf("%s: %w", configPath, err), 1)
	}

	t := fancy.FixtureTree(cfg.Fixture)
	t.AddChild(fancy.HeaderStyle.Render("Listen") + " " + cfg.Address())
	t.AddChild(fancy.HeaderStyle.Render("OpenAPI") + " " + cfg.OpenAPIPath)
	t.AddChild(fancy.HeaderStyle.Render("Secret") + " " + strconv.Itoa(len(cfg.Secret)) + " bytes")
	logs := fancy.BranchNode("Log", cfg.Log.Output)
	logs.Child("level " + cfg.Log.Level)
	logs.Child("format " + cfg.Log.Format)
	t.AddChild(logs)

	_, err = fmt.Fprintf(cmd.Root().Writer, "Configuration file %s is valid\n\n%s\n", configPath, t)
	return err
}

// validateFile loads path over its fixture's defaults and validates it.
func validateFile(path string) (*config.Config, error) {
	peek, err := config.LoadFile(path, config.NewConfig("", config.Defaults{}))
	if err != nil {
		return nil, err
	}
	fixture, err := fixtures.Lookup(peek.Fixture)
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadFile(path, fixture.NewConfig())
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
