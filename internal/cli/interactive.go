// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"
	"fmt"

	"github.com/janderssonse/tradein/internal/domain"
	"github.com/janderssonse/tradein/internal/logging"
	"github.com/janderssonse/tradein/internal/metrics"
	"github.com/janderssonse/tradein/internal/session"
)

// withObservers runs fn with the event log and metrics observers requested by the global flags.
// Metrics are written after fn returns, whatever its result.
func (app *CLI) withObservers(ctx context.Context, fn func(context.Context, []session.Observer) error) error {
	logger, err := logging.New(app.logFile, app.verbose)
	if err != nil {
		return domain.NewExitError(ExitGeneralError, "Cannot open log file", err)
	}

	defer func() { _ = logger.Sync() }()

	observers := []session.Observer{session.LogObserver(logger)}

	var recorder *metrics.Metrics
	if app.metricsFile != "" {
		recorder = metrics.NewMetrics()
		observers = append(observers, recorder.Observer())
	}

	runErr := fn(ctx, observers)

	if recorder != nil {
		if err := recorder.WriteFile(app.metricsFile); err != nil {
			app.output.Warningf("Could not write metrics: %v", err)
		}
	}

	return runErr
}

// runTUI starts the interactive trade-in.
func (app *CLI) runTUI(ctx context.Context) error {
	return app.withObservers(ctx, func(ctx context.Context, observers []session.Observer) error {
		sess := app.handler(observers...).NewSession()

		if err := app.launch(ctx, sess, app.config.Currency, app.clientString()); err != nil {
			return domain.NewExitError(ExitGeneralError, fmt.Sprintf("Interactive mode failed: %v", err), err)
		}

		return nil
	})
}
