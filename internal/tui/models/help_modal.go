// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/janderssonse/tradein/internal/tui/styles"
)

const (
	helpModalMaxWidth = 60
	helpModalKeyWidth = 15
)

// KeyHint is one row of the key overlay.
type KeyHint struct {
	Keys string
	Does string
}

// KeyGroup is a titled block of hints.
type KeyGroup struct {
	Title string
	Hints []KeyHint
}

var (
	closeHelpModal = key.NewBinding(key.WithKeys("?", "esc"), key.WithHelp("?/esc", "close"))

	generalKeys = KeyGroup{Title: "General", Hints: []KeyHint{
		{"c", "Open or close the cart"},
		{"H", "Full help"},
		{"?", "This overlay"},
		{"q", "Quit"},
	}}
	quitOnly = KeyGroup{Title: "General", Hints: []KeyHint{{"q", "Quit"}}}
	moveKeys = KeyHint{"j/k or ↑↓", "Move"}

	screenKeys = map[string][]KeyGroup{
		"select": {{Title: "Choosing a phone", Hints: []KeyHint{
			{"Tab", "Brands, models, search"},
			moveKeys,
			{"Enter/Space", "Choose"},
			{"/", "Search by model name"},
			{"d", "Detect this phone"},
			{"n", "Continue to condition"},
		}}, generalKeys},
		"condition": {{Title: "Condition", Hints: []KeyHint{
			moveKeys,
			{"Enter/Space", "Pick condition or toggle issue"},
			{"n", "Calculate offer"},
			{"b or Esc", "Back to phone choice"},
		}}, generalKeys},
		"offer": {{Title: "Offer", Hints: []KeyHint{
			{"Enter or a", "Add to cart / add more items"},
			{"r", "Recalculate"},
			{"b or Esc", "Back to condition"},
		}}, generalKeys},
		"cart": {{Title: "Cart", Hints: []KeyHint{
			{"Enter or x", "Check out"},
			{"Esc or c", "Close the cart"},
		}}, quitOnly},
		"success": {{Title: "Order placed", Hints: []KeyHint{
			{"Enter", "Start a new trade-in"},
			{"Esc", "Close"},
		}}},
	}
	fallbackKeys = []KeyGroup{{Title: "Navigation", Hints: []KeyHint{moveKeys, {"Esc", "Back"}}}, quitOnly}
)

// HelpModal is an overlay listing the keys of the current screen.
type HelpModal struct {
	styles  *styles.Styles
	visible bool
	screen  string
	groups  []KeyGroup
	width   int
}

// NewHelpModal creates a hidden help modal.
func NewHelpModal(styleConfig *styles.Styles) *HelpModal {
	return &HelpModal{styles: styleConfig, groups: fallbackKeys}
}

// SetScreen selects the key groups shown for screen.
func (h *HelpModal) SetScreen(screen string) {
	h.screen = screen

	h.groups = fallbackKeys
	if groups, ok := screenKeys[screen]; ok {
		h.groups = groups
	}
}

// Screen returns the screen the modal describes.
func (h *HelpModal) Screen() string {
	return h.screen
}

// Toggle shows or hides the modal.
func (h *HelpModal) Toggle() {
	h.visible = !h.visible
}

// Hide closes the modal.
func (h *HelpModal) Hide() {
	h.visible = false
}

// IsVisible returns whether the modal is shown.
func (h *HelpModal) IsVisible() bool {
	return h.visible
}

// SetSize records the terminal width; the overlay never grows past it.
func (h *HelpModal) SetSize(width, _ int) {
	h.width = width
}

// Update closes the modal on ? or Esc. Other keys are swallowed while it is visible.
func (h *HelpModal) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && h.visible && key.Matches(keyMsg, closeHelpModal) {
		h.Hide()
	}

	return nil
}

// View renders the modal, or "" while hidden.
func (h *HelpModal) View() string {
	if !h.visible {
		return ""
	}

	maxWidth := helpModalMaxWidth
	if h.width > 0 && h.width < maxWidth {
		maxWidth = h.width
	}

	keyColumn := h.styles.PrimaryText.Width(helpModalKeyWidth)
	lines := []string{h.styles.Title.Render("Keys")}

	for i, group := range h.groups {
		if i > 0 {
			lines = append(lines, "")
		}

		lines = append(lines, h.styles.Subtitle.Bold(true).Render(group.Title))
		for _, hint := range group.Hints {
			lines = append(lines, keyColumn.Render(hint.Keys)+" "+hint.Does)
		}
	}

	lines = append(lines, "", h.styles.MutedText.Render("Press ? or Esc to close"))

	return h.styles.Card.
		BorderForeground(h.styles.Primary).
		Padding(1, 2).
		MaxWidth(maxWidth).
		Render(strings.Join(lines, "\n"))
}
