package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atlanticdynamic/hostfixtures/cmd/hostfixtures/server"
	"github.com/atlanticdynamic/hostfixtures/internal/config"
	"github.com/atlanticdynamic/hostfixtures/internal/config/errz"
	"github.com/atlanticdynamic/hostfixtures/internal/fixtures"
	"github.com/urfave/cli/v3"
)

func serveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to TOML configuration file",
		},
		&cli.StringFlag{
			Name:    "host",
			Usage:   "Host to bind, empty for all interfaces",
			Sources: cli.EnvVars("HOST"),
		},
		&cli.IntFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Usage:   "Port to listen on",
			Sources: cli.EnvVars("PORT"),
		},
		&cli.StringFlag{
			Name:    "secret-value",
			Usage:   "Value returned by the secret fixture",
			Sources: cli.EnvVars("SECRET_VARIABLE"),
		},
		&cli.StringFlag{
			Name:  "openapi",
			Usage: "OpenAPI document served at /.commoners",
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Log level (trace, debug, info, warn, error)",
			Sources: cli.EnvVars("LOG_LEVEL"),
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format (text, json)",
		},
		&cli.StringFlag{
			Name:  "log-output",
			Usage: "Log destination (stdout, stderr, or a file path)",
		},
	}
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:      "serve",
		Usage:     "Run a fixture server",
		ArgsUsage: "<fixture> [port]",
		Description: "Fixtures: " + strings.Join(fixtures.Names(), ", ") +
			"\nPrecedence: positional port, then flags and environment, then the config file, then fixture defaults.",
		Flags:  serveFlags(),
		Action: serveAction,
	}
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	cfg, fixture, err := resolveConfig(cmd)
	if err != nil {
		return cli.Exit(err, 1)
	}

	logger, err := setupLogger(cfg)
	if err != nil {
		return cli.Exit(err, 1)
	}

	if err := server.Run(ctx, logger, cfg, fixture); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}

// resolveConfig layers fixture defaults, the optional TOML file, flags and
// environment, and the positional port, then validates the result.
func resolveConfig(cmd *cli.Command) (*config.Config, *fixtures.Fixture, error) {
	configPath := cmd.String("config")
	name := cmd.Args().Get(0)

	if name == "" && configPath != "" {
		peek, err := config.LoadFile(configPath, config.NewConfig("", config.Defaults{}))
		if err != nil {
			return nil, nil, err
		}
		name = peek.Fixture
	}
	if name == "" {
		return nil, nil, fmt.Errorf("%w: fixture name required (one of %s)",
			errz.ErrUnknownFixture, strings.Join(fixtures.Names(), ", "))
	}

	fixture, err := fixtures.Lookup(name)
	if err != nil {
		return nil, nil, err
	}

	cfg := fixture.NewConfig()
	if configPath != "" {
		cfg, err = config.LoadFile(configPath, cfg)
		if err != nil {
			return nil, nil, err
		}
	}
	cfg.Fixture = fixture.Name

	applyFlags(cmd, cfg)

	if raw := cmd.Args().Get(1); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %q", errz.ErrInvalidPort, raw)
		}
		cfg.Port = port
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, fixture, nil
}

// applyFlags copies flags and their environment sources onto cfg. A
// variable that is present but blank counts as unset.
func applyFlags(cmd *cli.Command, cfg *config.Config) {
	if cmd.IsSet("host") && !blankEnv(cmd.String("host"), "HOST") {
		cfg.Host = cmd.String("host")
	}
	if cmd.IsSet("port") && !(cmd.Int("port") == 0 && envIsBlank("PORT")) {
		cfg.Port = int(cmd.Int("port"))
	}
	if cmd.IsSet("secret-value") {
		cfg.Secret = cmd.String("secret-value")
	}
	if cmd.IsSet("openapi") {
		cfg.OpenAPIPath = cmd.String("openapi")
	}
	if cmd.IsSet("log-level") && !blankEnv(cmd.String("log-level"), "LOG_LEVEL") {
		cfg.Log.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		cfg.Log.Format = cmd.String("log-format")
	}
	if cmd.IsSet("log-output") {
		cfg.Log.Output = cmd.String("log-output")
	}
}

// blankEnv reports whether value is empty because env was set to blank.
func blankEnv(value, env string) bool {
	return value == "" && envIsBlank(env)
}

func envIsBlank(name string) bool {
	v, ok := os.LookupEnv(name)
	return ok && strings.TrimSpace(v) == ""
}
