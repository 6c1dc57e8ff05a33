// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

// Package handlers implements CLI command execution logic.
package handlers

import (
	"github.com/janderssonse/tradein/internal/catalog"
	"github.com/janderssonse/tradein/internal/console"
	"github.com/janderssonse/tradein/internal/session"
)

// BaseHandler provides common functionality for all command handlers.
type BaseHandler struct {
	Output   *console.OutputState
	Catalog  *catalog.Catalog
	Currency string

	// Observers are subscribed to every session a handler creates.
	Observers []session.Observer
}

// NewBaseHandler creates a new base handler with the given configuration.
func NewBaseHandler(output *console.OutputState, cat *catalog.Catalog, currency string, observers ...session.Observer) *BaseHandler {
	if output == nil {
		output = console.NewOutput()
	}

	if cat == nil {
		cat = catalog.Default()
	}

	return &BaseHandler{
		Output:    output,
		Catalog:   cat,
		Currency:  currency,
		Observers: observers,
	}
}

// NewSession starts a session over the handler catalog with the handler observers attached.
func (h *BaseHandler) NewSession() *session.Session {
	opts := make([]session.Option, 0, len(h.Observers))
	for _, observer := range h.Observers {
		opts = append(opts, session.WithObserver(observer))
	}

	return session.New(h.Catalog, opts...)
}

// GetOutput returns the output state for CLI rendering.
func (h *BaseHandler) GetOutput() *console.OutputState {
	if h.Output == nil {
		h.Output = console.NewOutput()
	}

	return h.Output
}
