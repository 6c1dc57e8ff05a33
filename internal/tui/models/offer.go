// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/janderssonse/tradein/internal/session"
	"github.com/janderssonse/tradein/internal/stringutil"
	"github.com/janderssonse/tradein/internal/tui/styles"
)

// Offer is step 3: the calculated price and the add-to-cart button.
type Offer struct {
	styles   *styles.Styles
	session  *session.Session
	currency string
	width    int
	height   int
}

// NewOffer creates the offer panel.
func NewOffer(styleConfig *styles.Styles, sess *session.Session, currency string) *Offer {
	return &Offer{
		styles:   styleConfig,
		session:  sess,
		currency: currency,
	}
}

// Init initializes the offer panel.
func (m *Offer) Init() tea.Cmd {
	return nil
}

// Update handles messages for the offer panel.
func (m *Offer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case KeyEnter, "a":
			return m, intentResult(m.session.AddToCart())
		case "r":
			_, err := m.session.Calculate()

			return m, intentResult(err)
		case "b", "left", KeyEsc:
			m.session.Back()

			return m, intentResult(nil)
		case "c":
			m.session.OpenCart()

			return m, intentResult(nil)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// FooterActions returns the key hints for the offer panel.
func (m *Offer) FooterActions() []FooterAction {
	return []FooterAction{
		{Key: "Enter", Action: m.session.AddButtonLabel()},
		{Key: "r", Action: "Recalculate"},
		{Key: "b", Action: "Back"},
		{Key: "c", Action: "Cart"},
		{Key: "q", Action: "Quit"},
	}
}

// View renders the offer panel.
func (m *Offer) View() string {
	selection := m.session.Selection()

	var builder strings.Builder

	builder.WriteString(m.styles.Title.Render("Your offer"))
	builder.WriteString("\n")

	if !selection.HasModel() || !selection.Offer.Calculated {
		builder.WriteString(m.styles.MutedText.Render("No offer yet. Go back and answer the condition questions."))

		return m.styles.Card.Render(builder.String())
	}

	builder.WriteString(m.styles.Subtitle.Render(selection.Title()))
	builder.WriteString("\n")
	builder.WriteString(m.styles.Amount.Render(stringutil.FormatAmount(m.currency, selection.Offer.Amount)))
	builder.WriteString("\n")

	if count := selection.IssueCount(); count > 0 {
		builder.WriteString(m.styles.WarningText.Render(pluralIssues(count) + " reported"))
		builder.WriteString("\n")
	}

	builder.WriteString("\n")
	builder.WriteString(m.styles.Button.Render(m.session.AddButtonLabel()))

	return m.styles.Card.Render(builder.String())
}

func pluralIssues(count int) string {
	if count == 1 {
		return "1 issue"
	}

	return strconv.Itoa(count) + " issues"
}
