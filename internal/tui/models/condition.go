// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/janderssonse/tradein/internal/domain"
	"github.com/janderssonse/tradein/internal/session"
	"github.com/janderssonse/tradein/internal/tui/styles"
)

// Condition is step 2: one condition radio group followed by the issue checklist.
type Condition struct {
	styles  *styles.Styles
	session *session.Session
	cursor  int
	width   int
	height  int
}

// NewCondition creates the condition questionnaire.
func NewCondition(styleConfig *styles.Styles, sess *session.Session) *Condition {
	return &Condition{
		styles:  styleConfig,
		session: sess,
	}
}

// Init initializes the questionnaire.
func (m *Condition) Init() tea.Cmd {
	return nil
}

// Update handles messages for the questionnaire.
func (m *Condition) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// Cursor returns the focused row; conditions come first, then issues.
func (m *Condition) Cursor() int {
	return m.cursor
}

// FooterActions returns the key hints for the questionnaire.
func (m *Condition) FooterActions() []FooterAction {
	return []FooterAction{
		{Key: "↑↓/jk", Action: "Move"},
		{Key: "Space", Action: "Select/toggle"},
		{Key: "n", Action: "Get offer"},
		{Key: "b", Action: "Back"},
		{Key: "c", Action: "Cart"},
		{Key: "q", Action: "Quit"},
	}
}

func (m *Condition) rows() int {
	return len(domain.Conditions()) + len(domain.Issues())
}

func (m *Condition) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.cursor = clamp(m.cursor-1, m.rows())
	case "down", "j":
		m.cursor = clamp(m.cursor+1, m.rows())
	case KeyEnter, KeySpace, "x":
		return m, m.activate()
	case "n", "right":
		return m, intentResult(m.session.Advance())
	case "b", "left", KeyEsc:
		m.session.Back()

		return m, intentResult(nil)
	case "c":
		m.session.OpenCart()

		return m, intentResult(nil)
	}

	return m, nil
}

func (m *Condition) activate() tea.Cmd {
	conditions := domain.Conditions()

	if m.cursor < len(conditions) {
		return intentResult(m.session.SetCondition(conditions[m.cursor]))
	}

	issue := domain.Issues()[m.cursor-len(conditions)]
	_, err := m.session.ToggleIssue(issue.Tag)

	return intentResult(err)
}

// View renders the questionnaire.
func (m *Condition) View() string {
	selection := m.session.Selection()

	var builder strings.Builder

	builder.WriteString(m.styles.Title.Render("How is your " + selection.Brand + " " + selection.Model + "?"))
	builder.WriteString("\n")
	builder.WriteString(m.styles.PrimaryText.Bold(true).Render("Overall condition"))
	builder.WriteString("\n")

	row := 0

	for _, condition := range domain.Conditions() {
		builder.WriteString(m.renderRow(row, m.styles.RadioButton(selection.Condition == condition), condition.Label()))

		row++
	}

	builder.WriteString("\n")
	builder.WriteString(m.styles.PrimaryText.Bold(true).Render("Known issues"))
	builder.WriteString("\n")

	for _, issue := range domain.Issues() {
		builder.WriteString(m.renderRow(row, m.styles.Checkbox(selection.HasIssue(issue.Tag)), issue.Label))

		row++
	}

	builder.WriteString("\n")
	builder.WriteString(m.styles.MutedText.Render("Each issue lowers the offer. Press n to see your price."))

	return m.styles.Card.Render(builder.String())
}

func (m *Condition) renderRow(row int, marker, label string) string {
	prefix := "  "
	style := m.styles.Unselected

	if row == m.cursor {
		prefix = SelectedPrefix
		style = m.styles.Selected
	}

	return prefix + marker + " " + style.Render(label) + "\n"
}
