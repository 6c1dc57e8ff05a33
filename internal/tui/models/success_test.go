// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/janderssonse/tradein/internal/checkout"
	"github.com/janderssonse/tradein/internal/domain"
	"github.com/janderssonse/tradein/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func successSession(t *testing.T) *session.Session {
	t.Helper()

	sess := paymentSession(t)
	_, err := sess.ConfirmPayment(domain.PaymentBankTransfer)
	require.NoError(t, err)

	return sess
}

func TestSuccessView(t *testing.T) {
	t.Parallel()

	view := ansi.Strip(NewSuccess(testStyles(), successSession(t), testCurrency).View())

	assert.Contains(t, view, "Order placed")
	assert.Contains(t, view, "Order order-1")
	assert.Contains(t, view, "Apple iPhone 13 (Fair)")
	assert.Contains(t, view, "₹ 20400")
	assert.Contains(t, view, "Bank Transfer")
}

func TestSuccessReturnToStart(t *testing.T) {
	t.Parallel()

	sess := successSession(t)
	model := NewSuccess(testStyles(), sess, testCurrency)

	require.NoError(t, intentErr(t, press(t, model, keyEnter)))
	assert.Equal(t, checkout.PhaseClosed, sess.CheckoutPhase())
	assert.Equal(t, session.StepSelect, sess.Step())
	assert.Empty(t, sess.Selection().Brand)
}

func TestSuccessDismissKeepsSelection(t *testing.T) {
	t.Parallel()

	sess := successSession(t)
	model := NewSuccess(testStyles(), sess, testCurrency)

	require.NoError(t, intentErr(t, press(t, model, keyEsc)))
	assert.Equal(t, checkout.PhaseClosed, sess.CheckoutPhase())
	assert.Equal(t, "iPhone 13", sess.Selection().Model)
}
