// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cart stores accepted offers for the current session.
package cart

import (
	"slices"

	"github.com/janderssonse/tradein/internal/domain"
	"github.com/oklog/ulid/v2"
)

// Mode is the state of the add-to-cart control.
type Mode int

const (
	// ModeIdle adds the current offer to the cart.
	ModeIdle Mode = iota
	// ModeJustAdded restarts the flow so another device can be added.
	ModeJustAdded
)

// Button labels for each mode.
const (
	LabelAddToCart    = "Add to cart"
	LabelAddMoreItems = "Add more items"
)

// Label returns the add button label for the mode.
func (m Mode) Label() string {
	if m == ModeJustAdded {
		return LabelAddMoreItems
	}

	return LabelAddToCart
}

func (m Mode) String() string {
	if m == ModeJustAdded {
		return "just_added"
	}

	return "idle"
}

// Cart is an append-only list of items; it is emptied only in bulk.
type Cart struct {
	items []domain.CartItem
	mode  Mode
}

// New returns an empty cart in ModeIdle.
func New() *Cart {
	return &Cart{}
}

// Add appends a snapshot of item, assigning an ID when it has none, and switches to ModeJustAdded.
func (c *Cart) Add(item domain.CartItem) domain.CartItem {
	if item.ID == "" {
		item.ID = ulid.Make().String()
	}

	c.items = append(c.items, item)
	c.mode = ModeJustAdded

	return item
}

// Items returns the items in insertion order.
func (c *Cart) Items() []domain.CartItem {
	return slices.Clone(c.items)
}

// Count is the number of items.
func (c *Cart) Count() int {
	return len(c.items)
}

// Total sums item prices.
func (c *Cart) Total() int {
	total := 0
	for _, item := range c.items {
		total += item.Price
	}

	return total
}

// IsEmpty reports whether the cart has no items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Clear removes every item.
func (c *Cart) Clear() {
	c.items = nil
}

// Mode returns the current add-button mode.
func (c *Cart) Mode() Mode {
	return c.mode
}

// ResetMode returns the add button to ModeIdle.
func (c *Cart) ResetMode() {
	c.mode = ModeIdle
}
