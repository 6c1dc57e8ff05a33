// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/janderssonse/tradein/internal/domain"
	"github.com/janderssonse/tradein/internal/session"
	"github.com/janderssonse/tradein/internal/stringutil"
	"github.com/janderssonse/tradein/internal/tui/styles"
)

// Payment asks how the customer wants to be paid and confirms the order.
type Payment struct {
	styles   *styles.Styles
	session  *session.Session
	currency string
	method   *string
	form     *huh.Form
	width    int
	height   int
}

// NewPayment creates the payment dialog with cash on delivery preselected.
func NewPayment(styleConfig *styles.Styles, sess *session.Session, currency string) *Payment {
	method := string(domain.PaymentCashOnDelivery)

	model := &Payment{
		styles:   styleConfig,
		session:  sess,
		currency: currency,
		method:   &method,
	}
	model.buildForm()

	return model
}

func (m *Payment) buildForm() {
	methods := domain.PaymentMethods()
	options := make([]huh.Option[string], len(methods))

	for i, method := range methods {
		options[i] = huh.NewOption(method.Label(), string(method))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Payment method").
				Description("Total " + stringutil.FormatAmount(m.currency, m.session.CartTotal())).
				Options(options...).
				Value(m.method),
		),
	).WithTheme(huh.ThemeCharm()).
		WithShowHelp(false)
}

// Init initializes the form.
func (m *Payment) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the payment dialog.
func (m *Payment) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == KeyEsc {
			return m, intentResult(m.session.CancelCheckout())
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
		if m.form.State == huh.StateCompleted {
			return m, tea.Batch(cmd, m.confirm())
		}
	}

	return m, cmd
}

func (m *Payment) confirm() tea.Cmd {
	method, err := domain.ParsePaymentMethod(*m.method)
	if err == nil {
		_, err = m.session.ConfirmPayment(method)
	}

	if err != nil {
		m.buildForm()

		return tea.Batch(m.form.Init(), intentResult(err))
	}

	return intentResult(nil)
}

// Method returns the highlighted payment method value.
func (m *Payment) Method() string {
	return *m.method
}

// CapturesInput is always true: every key goes to the form.
func (m *Payment) CapturesInput() bool {
	return true
}

// FooterActions returns the key hints for the dialog.
func (m *Payment) FooterActions() []FooterAction {
	return []FooterAction{
		{Key: "↑↓", Action: "Choose"},
		{Key: "Enter", Action: "Confirm payment"},
		{Key: "Esc", Action: "Cancel"},
	}
}

// View renders the payment dialog.
func (m *Payment) View() string {
	var builder strings.Builder

	builder.WriteString(m.styles.Title.Render("Payment"))
	builder.WriteString("\n")

	if details, ok := m.session.CheckoutDetails(); ok {
		builder.WriteString(m.styles.MutedText.Render("Pickup for " + details.Name + " on " + details.Date))
		builder.WriteString("\n\n")
	}

	builder.WriteString(m.form.View())

	return m.styles.Card.Render(builder.String())
}
