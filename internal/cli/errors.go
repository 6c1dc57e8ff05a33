// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"errors"

	"github.com/janderssonse/tradein/internal/config"
	"github.com/janderssonse/tradein/internal/domain"
)

// exitCode maps an error to the process exit code.
func exitCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownBrand), errors.Is(err, domain.ErrUnknownModel):
		return ExitNotFoundError
	case errors.Is(err, domain.ErrUnknownCondition), errors.Is(err, domain.ErrUnknownIssue),
		errors.Is(err, domain.ErrUnknownPaymentMethod), errors.Is(err, domain.ErrMissingSelection):
		return ExitUsageError
	case errors.Is(err, config.ErrInvalidConfig):
		return ExitConfigError
	default:
		return ExitGeneralError
	}
}

// exitError wraps err in an ExitError with a user-facing message. ExitErrors pass through.
func (app *CLI) exitError(err error) error {
	if err == nil {
		return nil
	}

	var exitErr *domain.ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	message := domain.FormatErrorMessage(err, app.verbose)
	if errors.Is(err, config.ErrInvalidConfig) {
		message = "Invalid configuration: " + err.Error()
	}

	return domain.NewExitError(exitCode(err), message, err)
}
