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
	"github.com/mattn/go-runewidth"
)

const (
	cartDeviceWidth    = 28
	cartConditionWidth = 10
)

// Cart is the drawer listing accepted offers with the running total.
type Cart struct {
	styles   *styles.Styles
	session  *session.Session
	currency string
	width    int
	height   int
}

// NewCart creates the cart drawer.
func NewCart(styleConfig *styles.Styles, sess *session.Session, currency string) *Cart {
	return &Cart{
		styles:   styleConfig,
		session:  sess,
		currency: currency,
	}
}

// Init initializes the cart drawer.
func (m *Cart) Init() tea.Cmd {
	return nil
}

// Update handles messages for the cart drawer.
func (m *Cart) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case KeyEnter, "x":
			return m, intentResult(m.session.OpenCheckout())
		case KeyEsc, "c":
			m.session.CloseCart()

			return m, intentResult(nil)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// FooterActions returns the key hints for the cart drawer.
func (m *Cart) FooterActions() []FooterAction {
	return []FooterAction{
		{Key: "Enter", Action: "Checkout"},
		{Key: "Esc", Action: "Close cart"},
		{Key: "q", Action: "Quit"},
	}
}

// View renders the cart drawer.
func (m *Cart) View() string {
	items := m.session.CartItems()

	var builder strings.Builder

	builder.WriteString(m.styles.Title.Render("Your cart"))
	builder.WriteString("\n")

	if len(items) == 0 {
		builder.WriteString(m.styles.MutedText.Render("Your cart is empty. Add a phone to get paid for it."))

		return m.styles.Card.Render(builder.String())
	}

	header := runewidth.FillRight("Device", cartDeviceWidth) + "  " +
		runewidth.FillRight("Condition", cartConditionWidth) + "  Offer"
	builder.WriteString(m.styles.MutedText.Render(header))
	builder.WriteString("\n")

	for _, item := range items {
		device := runewidth.Truncate(item.Title(), cartDeviceWidth, "…")
		line := runewidth.FillRight(device, cartDeviceWidth) + "  " +
			runewidth.FillRight(item.Condition.Label(), cartConditionWidth) + "  " +
			stringutil.FormatAmount(m.currency, item.Price)
		builder.WriteString(line)
		builder.WriteString("\n")
	}

	builder.WriteString("\n")
	builder.WriteString(m.styles.PrimaryText.Bold(true).Render("Total: "))
	builder.WriteString(m.styles.Amount.Render(stringutil.FormatAmount(m.currency, m.session.CartTotal())))
	builder.WriteString(m.styles.MutedText.Render("  (" + itemCount(m.session.CartCount()) + ")"))

	return m.styles.Card.Render(builder.String())
}

func itemCount(count int) string {
	if count == 1 {
		return "1 item"
	}

	return strconv.Itoa(count) + " items"
}
