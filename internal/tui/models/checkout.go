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

// DateLayout is the pickup date hint. Only presence is checked.
const DateLayout = "YYYY-MM-DD"

// Checkout collects pickup details in a huh form.
type Checkout struct {
	styles   *styles.Styles
	session  *session.Session
	currency string
	values   *domain.ContactDetails
	form     *huh.Form
	width    int
	height   int
}

// NewCheckout creates the pickup details dialog.
func NewCheckout(styleConfig *styles.Styles, sess *session.Session, currency string) *Checkout {
	model := &Checkout{
		styles:   styleConfig,
		session:  sess,
		currency: currency,
		values:   &domain.ContactDetails{},
	}
	model.buildForm()

	return model
}

func (m *Checkout) buildForm() {
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Full name").
				Value(&m.values.Name),
			huh.NewInput().
				Title("Phone number").
				Value(&m.values.Phone),
			huh.NewText().
				Title("Pickup address").
				Lines(3).
				Value(&m.values.Address),
			huh.NewInput().
				Title("Pickup date").
				Placeholder(DateLayout).
				Value(&m.values.Date),
		),
	).WithTheme(huh.ThemeCharm()).
		WithShowHelp(false)
}

// Init initializes the form.
func (m *Checkout) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the pickup details dialog.
func (m *Checkout) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			return m, tea.Batch(cmd, m.submit())
		}
	}

	return m, cmd
}

// submit hands the entered details to the session. On failure the form is rebuilt with the values kept.
func (m *Checkout) submit() tea.Cmd {
	err := m.session.SubmitDetails(*m.values)
	if err != nil {
		m.buildForm()

		return tea.Batch(m.form.Init(), intentResult(err))
	}

	return intentResult(nil)
}

// Values returns the details entered so far.
func (m *Checkout) Values() domain.ContactDetails {
	return *m.values
}

// CapturesInput is always true: every key goes to the form.
func (m *Checkout) CapturesInput() bool {
	return true
}

// FooterActions returns the key hints for the dialog.
func (m *Checkout) FooterActions() []FooterAction {
	return []FooterAction{
		{Key: "Tab", Action: "Next field"},
		{Key: "Enter", Action: "Continue"},
		{Key: "Esc", Action: "Cancel"},
	}
}

// View renders the pickup details dialog.
func (m *Checkout) View() string {
	var builder strings.Builder

	builder.WriteString(m.styles.Title.Render("Pickup details"))
	builder.WriteString("\n")
	builder.WriteString(m.styles.MutedText.Render(
		itemCount(m.session.CartCount()) + " · " + stringutil.FormatAmount(m.currency, m.session.CartTotal())))
	builder.WriteString("\n\n")
	builder.WriteString(m.form.View())

	return m.styles.Card.Render(builder.String())
}
