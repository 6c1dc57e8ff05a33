// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"
	"strings"

	"github.com/janderssonse/tradein/internal/cli/handlers"
	"github.com/janderssonse/tradein/internal/domain"
	"github.com/janderssonse/tradein/internal/session"
	"github.com/urfave/cli/v3"
)

// createAllCommands builds the subcommand list.
func (app *CLI) createAllCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "tui",
			Usage:  "Start the interactive trade-in",
			Action: func(ctx context.Context, _ *cli.Command) error { return app.runTUI(ctx) },
		},
		{
			Name:   "brands",
			Usage:  "List supported brands",
			Action: app.brandsCommand,
		},
		{
			Name:      "models",
			Usage:     "List models and base prices for a brand",
			ArgsUsage: "<brand>",
			Action:    app.modelsCommand,
		},
		{
			Name:      "search",
			Usage:     "Search models by name across all brands",
			ArgsUsage: "<query>",
			Action:    app.searchCommand,
		},
		{
			Name:  "quote",
			Usage: "Calculate a trade-in offer without the interactive interface",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "brand", Usage: "phone brand, e.g. Apple", Required: true},
				&cli.StringFlag{Name: "model", Usage: "phone model, e.g. \"iPhone 13\"", Required: true},
				&cli.StringFlag{Name: "condition", Usage: "excellent, good or fair", Value: string(domain.ConditionExcellent)},
				&cli.StringSliceFlag{Name: "issue", Usage: "known issue tag (repeatable): screen, battery, camera, audio, charging"},
			},
			Action: app.quoteCommand,
		},
		{
			Name:      "detect",
			Usage:     "Guess the device brand from a user agent string",
			ArgsUsage: "[client]",
			Action:    app.detectCommand,
		},
		{
			Name:   "version",
			Usage:  "Show version information",
			Action: app.versionCommand,
		},
	}
}

func (app *CLI) handler(observers ...session.Observer) *handlers.BaseHandler {
	return handlers.NewBaseHandler(app.output, app.catalog, app.config.Currency, observers...)
}

func (app *CLI) brandsCommand(_ context.Context, _ *cli.Command) error {
	return app.exitError(app.handler().Brands())
}

func (app *CLI) modelsCommand(_ context.Context, cmd *cli.Command) error {
	if !cmd.Args().Present() {
		return domain.NewExitError(ExitUsageError, "usage: tradein models <brand>", nil)
	}

	return app.exitError(app.handler().Models(cmd.Args().First()))
}

func (app *CLI) searchCommand(_ context.Context, cmd *cli.Command) error {
	query := strings.Join(cmd.Args().Slice(), " ")

	return app.exitError(app.handler().Search(query))
}

func (app *CLI) quoteCommand(ctx context.Context, cmd *cli.Command) error {
	req := handlers.QuoteRequest{
		Brand:     cmd.String("brand"),
		Model:     cmd.String("model"),
		Condition: cmd.String("condition"),
		Issues:    cmd.StringSlice("issue"),
	}

	return app.withObservers(ctx, func(_ context.Context, observers []session.Observer) error {
		_, err := app.handler(observers...).Quote(req)

		return app.exitError(err)
	})
}

func (app *CLI) detectCommand(_ context.Context, cmd *cli.Command) error {
	client := app.clientString()
	if cmd.Args().Present() {
		client = strings.Join(cmd.Args().Slice(), " ")
	}

	app.handler().Detect(client)

	return nil
}

func (app *CLI) versionCommand(_ context.Context, _ *cli.Command) error {
	if app.output.JSON {
		app.output.JSONResult("success", map[string]any{"version": Version})

		return nil
	}

	if app.output.Plain {
		app.output.PlainKeyValue("version", Version)

		return nil
	}

	app.output.Result("tradein " + Version)

	return nil
}
