// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/janderssonse/tradein/internal/catalog"
	"github.com/janderssonse/tradein/internal/checkout"
	"github.com/janderssonse/tradein/internal/domain"
	"github.com/janderssonse/tradein/internal/session"
	"github.com/janderssonse/tradein/internal/tui/styles"
	"github.com/stretchr/testify/require"
)

const testCurrency = "₹"

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func runes(text string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
}

func newTestSession(t *testing.T) *session.Session {
	t.Helper()

	flow := checkout.New(checkout.WithIDGenerator(func() string { return "order-1" }))

	return session.New(catalog.Default(), session.WithCheckout(flow))
}

// quotedSession has an Apple iPhone 13 in fair condition with a cracked screen on the offer step.
func quotedSession(t *testing.T) *session.Session {
	t.Helper()

	sess := newTestSession(t)
	require.NoError(t, sess.SelectBrand("Apple"))
	require.NoError(t, sess.SelectModel("iPhone 13"))
	require.NoError(t, sess.SetCondition(domain.ConditionFair))
	_, err := sess.ToggleIssue("screen")
	require.NoError(t, err)
	_, err = sess.Calculate()
	require.NoError(t, err)

	return sess
}

func testDetails() domain.ContactDetails {
	return domain.ContactDetails{
		Name:    "Asha",
		Phone:   "9876543210",
		Address: "12 MG Road",
		Date:    "2025-07-01",
	}
}

func press(t *testing.T, model tea.Model, keys ...tea.KeyMsg) tea.Cmd {
	t.Helper()

	var cmd tea.Cmd

	for _, key := range keys {
		_, cmd = model.Update(key)
	}

	return cmd
}

// intentErr runs cmd and returns the intent outcome it carries.
func intentErr(t *testing.T, cmd tea.Cmd) error {
	t.Helper()

	require.NotNil(t, cmd)

	intent, ok := cmd().(IntentMsg)
	require.True(t, ok, "expected an IntentMsg")

	return intent.Err
}

func testStyles() *styles.Styles {
	return styles.New()
}
