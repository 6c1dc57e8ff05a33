// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

// Package console writes command results to stdout and status messages to stderr.
package console

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Color modes accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// OutputState holds output configuration for one command run.
type OutputState struct {
	Verbose bool
	JSON    bool
	Plain   bool
	Color   string

	Out    io.Writer
	ErrOut io.Writer
	Getenv func(string) string
}

// NewOutput returns an OutputState writing to the process streams.
func NewOutput() *OutputState {
	return &OutputState{
		Color:  ColorAuto,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
		Getenv: os.Getenv,
	}
}

// SetMode configures output mode.
func (o *OutputState) SetMode(verbose, json, plain bool) {
	o.Verbose = verbose
	o.JSON = json
	o.Plain = plain
}

func (o *OutputState) stdout() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}

	return o.Out
}

func (o *OutputState) stderr() io.Writer {
	if o.ErrOut == nil {
		return os.Stderr
	}

	return o.ErrOut
}

func (o *OutputState) getenv(key string) string {
	if o.Getenv == nil {
		return os.Getenv(key)
	}

	return o.Getenv(key)
}

// IsTTY checks if w is a terminal (not piped/redirected).
func (o *OutputState) IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)

	return ok && term.IsTerminal(int(file.Fd()))
}

// ColorEnabled reports whether ANSI styling should be emitted on stdout.
func (o *OutputState) ColorEnabled() bool {
	if o.JSON || o.Plain {
		return false
	}

	switch o.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	// Check no-color.org standards
	if o.getenv("NO_COLOR") != "" || o.getenv("TERM") == "dumb" {
		return false
	}

	return o.IsTTY(o.stdout())
}

// Bold formats text with bold when colors are on.
func (o *OutputState) Bold(text string) string {
	if !o.ColorEnabled() {
		return text
	}

	return "\033[1m" + text + "\033[0m"
}

// Header formats section headers consistently.
func (o *OutputState) Header(text string) string {
	return o.Bold(text)
}

// Progressf writes progress messages to stderr (only if verbose and not JSON/Plain).
func (o *OutputState) Progressf(format string, args ...any) {
	if o.Verbose && !o.JSON && !o.Plain {
		_, _ = fmt.Fprintf(o.stderr(), format+"\n", args...)
	}
}

// Successf writes success messages to stderr (only if not JSON/Plain).
func (o *OutputState) Successf(format string, args ...any) {
	if !o.JSON && !o.Plain {
		_, _ = fmt.Fprintf(o.stderr(), "✓ "+format+"\n", args...)
	}
}

// Warningf writes warning messages to stderr (always visible).
func (o *OutputState) Warningf(format string, args ...any) {
	if o.Plain {
		_, _ = fmt.Fprintf(o.stderr(), "warning: "+format+"\n", args...)
	} else {
		_, _ = fmt.Fprintf(o.stderr(), "⚠ "+format+"\n", args...)
	}
}

// Errorf writes error messages to stderr (always visible).
func (o *OutputState) Errorf(format string, args ...any) {
	if o.Plain {
		_, _ = fmt.Fprintf(o.stderr(), "error: "+format+"\n", args...)
	} else {
		_, _ = fmt.Fprintf(o.stderr(), "✗ "+format+"\n", args...)
	}
}

// Result writes command results to stdout.
func (o *OutputState) Result(data any) {
	_, _ = fmt.Fprintf(o.stdout(), "%v\n", data)
}

// JSONResult writes structured JSON results to stdout.
func (o *OutputState) JSONResult(status string, data map[string]any) {
	result := map[string]any{
		"status": status,
	}
	maps.Copy(result, data)

	encoder := json.NewEncoder(o.stdout())
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(result); err != nil {
		// Best effort - output encoding errors shouldn't crash the program
		_, _ = fmt.Fprintf(o.stderr(), "error encoding JSON: %v\n", err)
	}
}

// ErrorResult reports err on stderr, and as a JSON document on stdout in JSON mode.
func (o *OutputState) ErrorResult(message string, code int) {
	if o.JSON {
		o.JSONResult("error", map[string]any{
			"error": message,
			"code":  code,
		})
	}

	o.Errorf("%s", message)
}

// PlainKeyValue outputs key:value pairs for machine parsing.
func (o *OutputState) PlainKeyValue(key, value string) {
	_, _ = fmt.Fprintf(o.stdout(), "%s:%s\n", key, value)
}

// PlainList outputs a simple list of items, one per line.
func (o *OutputState) PlainList(items []string) {
	for _, item := range items {
		_, _ = fmt.Fprintf(o.stdout(), "%s\n", item)
	}
}

// Table writes rows with columns padded to their widest cell, measured in terminal cells.
func (o *OutputState) Table(rows [][]string) {
	widths := make([]int, 0)

	for _, row := range rows {
		for index, cell := range row {
			if index >= len(widths) {
				widths = append(widths, 0)
			}

			widths[index] = max(widths[index], runewidth.StringWidth(cell))
		}
	}

	for _, row := range rows {
		var line strings.Builder

		for index, cell := range row {
			if index == len(row)-1 {
				line.WriteString(cell)

				break
			}

			line.WriteString(runewidth.FillRight(cell, widths[index]))
			line.WriteString("  ")
		}

		_, _ = fmt.Fprintln(o.stdout(), line.String())
	}
}
