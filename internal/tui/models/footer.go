// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/tradein/internal/tui/styles"
)

// FooterAction is a key hint shown in the footer.
type FooterAction struct {
	Key    string
	Action string
}

// RenderFooter lays out the hints in one bordered row, ending with the "?" overlay hint when includeHelp is set.
func RenderFooter(styleConfig *styles.Styles, width int, actions []FooterAction, includeHelp bool) string {
	hints := make([]string, 0, len(actions)+1)
	for _, action := range actions {
		hints = append(hints, styleConfig.Keybinding(action.Key, action.Action))
	}

	if includeHelp {
		hints = append(hints, styleConfig.WarningText.Bold(true).Render("[?]")+" "+styleConfig.MutedText.Render("Keys"))
	}

	bar := styleConfig.MutedText.
		Padding(0, 2).
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(styleConfig.Dim)

	if width > 0 {
		bar = bar.Width(width)
	}

	return bar.Render(strings.Join(hints, "   "))
}
