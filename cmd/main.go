// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

// Package main provides the tradein entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/janderssonse/tradein/internal/cli"
	"github.com/janderssonse/tradein/internal/domain"
)

func main() {
	os.Exit(run())
}

func run() int {
	// One trade-in per user at a time; the TUI owns the terminal.
	lockPath := filepath.Join(os.TempDir(), "tradein.lock")
	lock := flock.New(lockPath)

	locked, err := lock.TryLock()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to acquire process lock: %v\n", err)

		return cli.ExitGeneralError
	}

	if !locked {
		fmt.Fprintf(os.Stderr, "Another tradein instance is already running\n")

		return cli.ExitGeneralError
	}

	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to release process lock: %v\n", unlockErr)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Run has already reported the message on stderr.
	if err := cli.NewCLI().Run(ctx, os.Args); err != nil {
		exitErr := &domain.ExitError{}
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}

		return cli.ExitGeneralError
	}

	return cli.ExitSuccess
}
