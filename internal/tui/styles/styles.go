// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

// Package styles holds the trade-in look: one palette and the component styles derived from it.
package styles

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of colors every style is derived from.
type Palette struct {
	Accent  lipgloss.Color
	Money   lipgloss.Color
	Alert   lipgloss.Color
	Caution lipgloss.Color
	Dim     lipgloss.Color
	Ink     lipgloss.Color
	Paper   lipgloss.Color
}

// StorePalette is the default teal and amber storefront palette.
func StorePalette() Palette {
	return Palette{
		Accent:  lipgloss.Color("#2ec4b6"),
		Money:   lipgloss.Color("#8ac926"),
		Alert:   lipgloss.Color("#ef476f"),
		Caution: lipgloss.Color("#ffb703"),
		Dim:     lipgloss.Color("#6c757d"),
		Ink:     lipgloss.Color("#e9ecef"),
		Paper:   lipgloss.Color("#0b132b"),
	}
}

// Styles contains all the styles used in the TUI.
type Styles struct {
	Palette

	// Primary is the focus color used for active borders and keys.
	Primary lipgloss.Color

	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Card       lipgloss.Style
	Button     lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Amount     lipgloss.Style

	MutedText   lipgloss.Style
	PrimaryText lipgloss.Style
	SuccessText lipgloss.Style
	ErrorText   lipgloss.Style
	WarningText lipgloss.Style

	badge lipgloss.Style
}

// New builds styles from StorePalette.
func New() *Styles {
	return FromPalette(StorePalette())
}

// FromPalette derives every component style from p.
func FromPalette(p Palette) *Styles {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	chip := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Background(c).Foreground(p.Paper).Padding(0, 1)
	}

	return &Styles{
		Palette: p,
		Primary: p.Accent,

		Title:    fg(p.Accent).Bold(true).MarginBottom(1),
		Subtitle: fg(p.Ink).Faint(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Dim).
			Padding(0, 1).
			MarginRight(1),
		Button:     chip(p.Accent).Bold(true).Padding(0, 2),
		Selected:   chip(p.Accent),
		Unselected: fg(p.Ink).Padding(0, 1),
		Amount:     fg(p.Money).Bold(true),

		MutedText:   fg(p.Dim),
		PrimaryText: fg(p.Accent),
		SuccessText: fg(p.Money),
		ErrorText:   fg(p.Alert).Bold(true),
		WarningText: fg(p.Caution),

		badge: chip(p.Caution).Bold(true),
	}
}

// Banner returns the styled application name.
func (s *Styles) Banner() string {
	return s.Title.UnsetMarginBottom().Render("📱 Phone Trade-In")
}

// StatusIcon maps a step or result status to a colored glyph.
func (s *Styles) StatusIcon(status string) string {
	switch status {
	case "done", "success":
		return s.SuccessText.Render("✓")
	case "blocked", "error":
		return s.ErrorText.Render("✗")
	case "current":
		return s.PrimaryText.Render("●")
	case "pending":
		return s.MutedText.Render("○")
	default:
		return s.Unselected.UnsetPadding().Render("•")
	}
}

// StepBar renders the wizard position, e.g. "✓ 1. Select ─ ● 2. Condition ─ ○ 3. Offer".
func (s *Styles) StepBar(labels []string, current int) string {
	parts := make([]string, 0, len(labels))

	for index, label := range labels {
		status, style := "pending", s.MutedText

		switch {
		case index < current:
			status, style = "done", s.SuccessText
		case index == current:
			status, style = "current", s.PrimaryText.Bold(true)
		}

		parts = append(parts, s.StatusIcon(status)+" "+style.Render(strconv.Itoa(index+1)+". "+label))
	}

	return strings.Join(parts, s.MutedText.Render(" ─ "))
}

// CartBadge renders the cart item count.
func (s *Styles) CartBadge(count int) string {
	return s.badge.Render("🛒 " + strconv.Itoa(count))
}

// RadioButton renders a single-choice marker.
func (s *Styles) RadioButton(checked bool) string {
	if checked {
		return s.PrimaryText.Render("(•)")
	}

	return s.MutedText.Render("( )")
}

// Checkbox renders a toggle marker.
func (s *Styles) Checkbox(checked bool) string {
	if checked {
		return s.PrimaryText.Render("[x]")
	}

	return s.MutedText.Render("[ ]")
}

// Keybinding renders "[key] desc" for footers and the help modal.
func (s *Styles) Keybinding(key, desc string) string {
	return s.PrimaryText.Bold(true).Render("["+key+"]") + " " + s.MutedText.Render(desc)
}
