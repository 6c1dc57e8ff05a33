// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/janderssonse/tradein/internal/session"
	"github.com/janderssonse/tradein/internal/stringutil"
	"github.com/janderssonse/tradein/internal/tui/styles"
)

// Success acknowledges a confirmed order.
type Success struct {
	styles   *styles.Styles
	session  *session.Session
	currency string
	width    int
	height   int
}

// NewSuccess creates the order acknowledgment.
func NewSuccess(styleConfig *styles.Styles, sess *session.Session, currency string) *Success {
	return &Success{
		styles:   styleConfig,
		session:  sess,
		currency: currency,
	}
}

// Init initializes the acknowledgment.
func (m *Success) Init() tea.Cmd {
	return nil
}

// Update handles messages for the acknowledgment.
func (m *Success) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case KeyEnter, "s":
			return m, intentResult(m.session.ReturnToStart())
		case KeyEsc:
			return m, intentResult(m.session.DismissSuccess())
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// FooterActions returns the key hints for the acknowledgment.
func (m *Success) FooterActions() []FooterAction {
	return []FooterAction{
		{Key: "Enter", Action: "Return to start"},
		{Key: "Esc", Action: "Close"},
		{Key: "q", Action: "Quit"},
	}
}

// View renders the acknowledgment.
func (m *Success) View() string {
	var builder strings.Builder

	builder.WriteString(m.styles.StatusIcon("success") + " " + m.styles.Title.Render("Order placed"))
	builder.WriteString("\n")

	order, ok := m.session.LastOrder()
	if !ok {
		builder.WriteString(m.styles.MutedText.Render("No order to show."))

		return m.styles.Card.Render(builder.String())
	}

	builder.WriteString(m.styles.MutedText.Render("Order " + order.ID))
	builder.WriteString("\n\n")

	for _, item := range order.Items {
		builder.WriteString("• " + item.Title() + " (" + item.Condition.Label() + ")  " +
			stringutil.FormatAmount(m.currency, item.Price) + "\n")
	}

	builder.WriteString("\n")
	builder.WriteString(m.styles.PrimaryText.Bold(true).Render("Total: "))
	builder.WriteString(m.styles.Amount.Render(stringutil.FormatAmount(m.currency, order.Total)))
	builder.WriteString("\n")
	builder.WriteString(m.styles.SuccessText.Render(order.Payment.Label() + " · pickup on " + order.Details.Date))

	return m.styles.Card.Render(builder.String())
}
