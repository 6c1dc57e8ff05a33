// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/janderssonse/tradein/internal/checkout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartViewEmpty(t *testing.T) {
	t.Parallel()

	view := ansi.Strip(NewCart(testStyles(), newTestSession(t), testCurrency).View())
	assert.Contains(t, view, "Your cart is empty")
}

func TestCartViewItems(t *testing.T) {
	t.Parallel()

	sess := quotedSession(t)
	require.NoError(t, sess.AddToCart())

	view := ansi.Strip(NewCart(testStyles(), sess, testCurrency).View())

	assert.Contains(t, view, "Apple iPhone 13")
	assert.Contains(t, view, "Fair")
	assert.Contains(t, view, "Total:")
	assert.Contains(t, view, "₹ 20400")
	assert.Contains(t, view, "(1 item)")
}

func TestCartCheckoutAndClose(t *testing.T) {
	t.Parallel()

	sess := quotedSession(t)
	require.NoError(t, sess.AddToCart())

	model := NewCart(testStyles(), sess, testCurrency)

	require.NoError(t, intentErr(t, press(t, model, keyEnter)))
	assert.Equal(t, checkout.PhaseDetails, sess.CheckoutPhase())

	require.NoError(t, sess.CancelCheckout())
	require.NoError(t, intentErr(t, press(t, model, keyEsc)))
	assert.False(t, sess.CartOpen())
}

func TestItemCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1 item", itemCount(1))
	assert.Equal(t, "0 items", itemCount(0))
	assert.Equal(t, "3 items", itemCount(3))
}
