// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli provides the tradein command line.
package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/janderssonse/tradein/internal/catalog"
	"github.com/janderssonse/tradein/internal/config"
	"github.com/janderssonse/tradein/internal/console"
	"github.com/janderssonse/tradein/internal/domain"
	"github.com/janderssonse/tradein/internal/session"
	"github.com/janderssonse/tradein/internal/tui"
	"github.com/urfave/cli/v3"
)

// Exit codes follow standard Unix conventions for better scripting support.
const (
	ExitSuccess       = 0 // Operation completed successfully
	ExitGeneralError  = 1 // Generic failure (catch-all)
	ExitUsageError    = 2 // Invalid command line usage
	ExitConfigError   = 3 // Configuration file error
	ExitNotFoundError = 5 // Requested brand or model not found
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev"

// Launcher starts the interactive interface over a prepared session.
type Launcher func(ctx context.Context, sess *session.Session, currency, client string) error

// CLI holds the parsed global flags and the state built from them before a command runs.
type CLI struct {
	app         *cli.Command
	verbose     bool
	json        bool
	plain       bool
	color       string
	configPath  string
	logFile     string
	metricsFile string

	output  *console.OutputState
	getenv  func(string) string
	launch  Launcher
	config  *config.Config
	catalog *catalog.Catalog
}

// Option customizes a CLI, mainly for tests.
type Option func(*CLI)

// WithWriters redirects stdout and stderr.
func WithWriters(stdout, stderr io.Writer) Option {
	return func(c *CLI) {
		c.output.Out = stdout
		c.output.ErrOut = stderr
		c.app.Writer = stdout
		c.app.ErrWriter = stderr
	}
}

// WithEnv replaces environment lookups.
func WithEnv(getenv func(string) string) Option {
	return func(c *CLI) {
		c.getenv = getenv
		c.output.Getenv = getenv
	}
}

// WithLauncher replaces the TUI launcher.
func WithLauncher(launch Launcher) Option {
	return func(c *CLI) {
		c.launch = launch
	}
}

// NewCLI creates the tradein command tree.
func NewCLI(opts ...Option) *CLI {
	app := &CLI{
		output: console.NewOutput(),
		getenv: os.Getenv,
		launch: tui.LaunchInteractive,
	}

	app.app = &cli.Command{
		Name:  "tradein",
		Usage: "Get a trade-in offer for your phone",
		Description: `Pick your phone, describe its condition and get an instant offer.
Run without arguments for the interactive trade-in.

QUICK START:
  tradein                                   # interactive trade-in
  tradein search galaxy                     # find a model
  tradein quote --brand Apple --model "iPhone 13" --condition fair --issue screen`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Usage:       "path to config.toml (default: $XDG_CONFIG_HOME/tradein/config.toml)",
				Aliases:     []string{"c"},
				Destination: &app.configPath,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Usage:       "show progress messages and technical error details",
				Destination: &app.verbose,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output structured JSON results",
				Aliases:     []string{"j"},
				Destination: &app.json,
			},
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "output plain text without formatting for scripts",
				Destination: &app.plain,
			},
			&cli.StringFlag{
				Name:        "color",
				Usage:       "color output mode: auto, always, never",
				Value:       console.ColorAuto,
				Destination: &app.color,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "write session events as JSON lines to this file",
				Destination: &app.logFile,
			},
			&cli.StringFlag{
				Name:        "metrics-file",
				Usage:       "write Prometheus metrics to this file on exit",
				Destination: &app.metricsFile,
			},
		},
		Before:   app.initConfig,
		Action:   app.defaultAction,
		Commands: app.createAllCommands(),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// Run executes the CLI application and reports a failure on stderr.
// The returned error is always a *domain.ExitError carrying the exit code.
func (app *CLI) Run(ctx context.Context, args []string) error {
	err := app.app.Run(ctx, args)
	if err == nil {
		return nil
	}

	var exitErr *domain.ExitError
	if !errors.As(err, &exitErr) {
		// Anything urfave/cli returns itself is a flag or argument problem.
		exitErr = domain.NewExitError(ExitUsageError, err.Error(), err)
	}

	app.output.ErrorResult(exitErr.Message, exitErr.Code)

	return exitErr
}

// initConfig validates global flags and loads the configuration.
func (app *CLI) initConfig(ctx context.Context, _ *cli.Command) (context.Context, error) {
	if app.json && app.plain {
		return ctx, domain.NewExitError(ExitUsageError, "cannot use both --json and --plain flags simultaneously", nil)
	}

	switch app.color {
	case console.ColorAuto, console.ColorAlways, console.ColorNever:
	default:
		return ctx, domain.NewExitError(ExitUsageError, "invalid --color value: must be auto, always, or never", nil)
	}

	app.output.SetMode(app.verbose, app.json, app.plain)
	app.output.Color = app.color

	cfg, err := config.Load(app.configPath)
	if err != nil {
		return ctx, app.exitError(err)
	}

	cat := cfg.Catalog()

	app.config = cfg
	app.catalog = cat

	app.output.Progressf("Loaded %d brands", len(cat.Brands()))

	return ctx, nil
}

// defaultAction launches the TUI when no command is given.
func (app *CLI) defaultAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Present() {
		return domain.NewExitError(ExitNotFoundError,
			"'"+cmd.Args().First()+"' is not a command. Run 'tradein --help' to see available commands.", nil)
	}

	return app.runTUI(ctx)
}

// clientString is the sniffer input: the config value, then TRADEIN_CLIENT.
func (app *CLI) clientString() string {
	return app.config.ClientStringWithEnv(app.getenv(config.ClientEnvVar))
}
