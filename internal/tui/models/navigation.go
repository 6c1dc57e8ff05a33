// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

// Package models defines the trade-in screens and the messages shared between them.
package models

import tea "github.com/charmbracelet/bubbletea"

// NavigateMsg is a message sent to request navigation to a specific screen.
type NavigateMsg struct {
	Screen int
	Data   any // Optional data to pass to the new screen
}

// Screen constants for navigation.
const (
	SelectScreen = iota
	ConditionScreen
	OfferScreen
	CartScreen
	CheckoutScreen
	PaymentScreen
	SuccessScreen
	HelpScreen
)

// ResumeScreen asks the app to show whatever screen the session state calls for.
const ResumeScreen = -1

// Key constants for common key inputs.
const (
	KeyCtrlC    = "ctrl+c"
	KeyEnter    = "enter"
	KeyEsc      = "esc"
	KeyTab      = "tab"
	KeyShiftTab = "shift+tab"
	KeySpace    = " "
)

// UI constants shared by list renderers.
const (
	SelectedPrefix = "❯ "
	GoodbyeMessage = "Thanks for visiting. Bye!\n"
)

// IntentMsg reports the outcome of a session intent so the app can show or clear the blocking message.
type IntentMsg struct {
	Err error
}

// intentResult wraps an intent outcome in a command.
func intentResult(err error) tea.Cmd {
	return func() tea.Msg {
		return IntentMsg{Err: err}
	}
}

// navigate returns a command requesting a screen change.
func navigate(screen int) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Screen: screen}
	}
}

// InputCapturer is implemented by screens that are currently receiving free text.
// The app does not treat printable keys as shortcuts while CapturesInput is true.
type InputCapturer interface {
	CapturesInput() bool
}

// HintProvider is implemented by screens that expose footer key hints.
type HintProvider interface {
	FooterActions() []FooterAction
}
