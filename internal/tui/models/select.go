// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/tradein/internal/catalog"
	"github.com/janderssonse/tradein/internal/session"
	"github.com/janderssonse/tradein/internal/sniffer"
	"github.com/janderssonse/tradein/internal/stringutil"
	"github.com/janderssonse/tradein/internal/tui/styles"
)

type focusArea int

const (
	focusBrands focusArea = iota
	focusModels
	focusSearch
)

const focusAreas = 3

// Select is step 1: brand list, dependent model list and free-text model search.
type Select struct {
	styles   *styles.Styles
	session  *session.Session
	currency string
	client   string

	focus        focusArea
	brandCursor  int
	modelCursor  int
	resultCursor int
	search       textinput.Model
	results      []catalog.Match
	detection    string
	width        int
	height       int
}

// NewSelect creates the brand and model picker. client is the device sniffer input.
func NewSelect(styleConfig *styles.Styles, sess *session.Session, currency, client string) *Select {
	search := textinput.New()
	search.Placeholder = "Search model, e.g. galaxy"
	search.Prompt = "🔍 "
	search.CharLimit = 40
	search.Width = 28

	return &Select{
		styles:   styleConfig,
		session:  sess,
		currency: currency,
		client:   client,
		search:   search,
	}
}

// Init initializes the picker.
func (m *Select) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m *Select) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil
	}

	if m.focus == focusSearch {
		var cmd tea.Cmd

		m.search, cmd = m.search.Update(msg)

		return m, cmd
	}

	return m, nil
}

// CapturesInput reports whether the search box has focus.
func (m *Select) CapturesInput() bool {
	return m.focus == focusSearch
}

// Detection returns the last device detection message.
func (m *Select) Detection() string {
	return m.detection
}

// Results returns the current search results.
func (m *Select) Results() []catalog.Match {
	return m.results
}

// FooterActions returns the key hints for the picker.
func (m *Select) FooterActions() []FooterAction {
	if m.focus == focusSearch {
		return []FooterAction{
			{Key: "↑↓", Action: "Results"},
			{Key: "Enter", Action: "Pick result"},
			{Key: "Tab", Action: "Next pane"},
			{Key: "Esc", Action: "Leave search"},
		}
	}

	return []FooterAction{
		{Key: "↑↓/jk", Action: "Move"},
		{Key: "Enter", Action: "Choose"},
		{Key: "Tab", Action: "Next pane"},
		{Key: "/", Action: "Search"},
		{Key: "d", Action: "Detect phone"},
		{Key: "n", Action: "Next step"},
		{Key: "c", Action: "Cart"},
		{Key: "q", Action: "Quit"},
	}
}

func (m *Select) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyTab:
		m.setFocus((m.focus + 1) % focusAreas)

		return m, nil
	case KeyShiftTab:
		m.setFocus((m.focus + focusAreas - 1) % focusAreas)

		return m, nil
	}

	if m.focus == focusSearch {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case KeyEnter, KeySpace:
		return m, m.choose()
	case "/":
		m.setFocus(focusSearch)
	case "d":
		m.detect()
	case "n", "right":
		return m, intentResult(m.session.Advance())
	case "c":
		m.session.OpenCart()

		return m, intentResult(nil)
	}

	return m, nil
}

func (m *Select) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyEsc:
		m.setFocus(focusBrands)

		return m, nil
	case "up":
		if m.resultCursor > 0 {
			m.resultCursor--
		}

		return m, nil
	case "down":
		if m.resultCursor < len(m.results)-1 {
			m.resultCursor++
		}

		return m, nil
	case KeyEnter:
		return m, m.chooseResult()
	}

	var cmd tea.Cmd

	m.search, cmd = m.search.Update(msg)
	m.refreshResults()

	return m, cmd
}

func (m *Select) setFocus(focus focusArea) {
	m.focus = focus

	if focus == focusSearch {
		m.search.Focus()
	} else {
		m.search.Blur()
	}
}

func (m *Select) moveCursor(delta int) {
	switch m.focus {
	case focusBrands:
		m.brandCursor = clamp(m.brandCursor+delta, len(m.session.Catalog().Brands()))
	case focusModels:
		m.modelCursor = clamp(m.modelCursor+delta, len(m.session.Selection().ModelOptions))
	case focusSearch:
	}
}

func (m *Select) choose() tea.Cmd {
	switch m.focus {
	case focusBrands:
		brands := m.session.Catalog().Brands()
		if len(brands) == 0 {
			return nil
		}

		if err := m.session.SelectBrand(brands[m.brandCursor]); err != nil {
			return intentResult(err)
		}

		m.modelCursor = 0
		m.setFocus(focusModels)

		return intentResult(nil)
	case focusModels:
		options := m.session.Selection().ModelOptions
		if len(options) == 0 {
			return nil
		}

		return intentResult(m.session.SelectModel(options[m.modelCursor]))
	case focusSearch:
		return m.chooseResult()
	}

	return nil
}

func (m *Select) chooseResult() tea.Cmd {
	if len(m.results) == 0 {
		return nil
	}

	match := m.results[m.resultCursor]
	if err := m.session.SelectSearchResult(match); err != nil {
		return intentResult(err)
	}

	if index := indexOf(m.session.Catalog().Brands(), match.Brand); index >= 0 {
		m.brandCursor = index
	}

	m.modelCursor = 0
	m.setFocus(focusModels)

	return intentResult(nil)
}

func (m *Select) refreshResults() {
	m.results = m.session.Search(m.search.Value())
	m.resultCursor = clamp(m.resultCursor, len(m.results))
}

// detect runs the sniffer and moves the brand cursor to the suggestion without selecting it.
func (m *Select) detect() {
	result := sniffer.Detect(m.client)
	m.detection = result.Message()

	if index := indexOf(m.session.Catalog().Brands(), result.Brand()); index >= 0 {
		m.brandCursor = index
		m.setFocus(focusBrands)
	}
}

// View renders the picker.
func (m *Select) View() string {
	selection := m.session.Selection()

	brands := m.renderList("Brand", m.session.Catalog().Brands(), selection.Brand, m.brandCursor, m.focus == focusBrands)

	modelTitle := "Model"
	if selection.Brand != "" {
		modelTitle = selection.Brand + " models"
	}

	models := m.renderList(modelTitle, selection.ModelOptions, selection.Model, m.modelCursor, m.focus == focusModels)

	var builder strings.Builder

	builder.WriteString(m.styles.Title.Render("Which phone are you trading in?"))
	builder.WriteString("\n")
	builder.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, brands, models, m.renderSearch()))
	builder.WriteString("\n")

	if m.detection != "" {
		builder.WriteString(m.styles.Subtitle.Render(m.detection))
		builder.WriteString("\n")
	}

	if selection.HasModel() {
		builder.WriteString(m.styles.SuccessText.Render("Selected: " + selection.Brand + " " + selection.Model))
	} else {
		builder.WriteString(m.styles.MutedText.Render("Pick a brand and model, or search by model name"))
	}

	return builder.String()
}

func (m *Select) renderList(title string, items []string, chosen string, cursor int, focused bool) string {
	var builder strings.Builder

	builder.WriteString(m.styles.PrimaryText.Bold(true).Render(title))
	builder.WriteString("\n")

	if len(items) == 0 {
		builder.WriteString(m.styles.MutedText.Render("  (choose a brand first)"))
	}

	for index, item := range items {
		prefix := "  "
		style := m.styles.Unselected

		if focused && index == cursor {
			prefix = SelectedPrefix
			style = m.styles.Selected
		}

		marker := m.styles.RadioButton(item == chosen)
		builder.WriteString(prefix + marker + " " + style.Render(item) + "\n")
	}

	card := m.styles.Card.Width(34)
	if focused {
		card = card.BorderForeground(m.styles.Primary)
	}

	return card.Render(strings.TrimRight(builder.String(), "\n"))
}

func (m *Select) renderSearch() string {
	var builder strings.Builder

	builder.WriteString(m.styles.PrimaryText.Bold(true).Render("Search"))
	builder.WriteString("\n")
	builder.WriteString(m.search.View())
	builder.WriteString("\n")

	query := m.search.Value()

	switch {
	case stringutil.RuneLen(stringutil.NormalizeQuery(query)) < catalog.MinSearchLength:
		builder.WriteString(m.styles.MutedText.Render("Type at least 2 characters"))
	case len(m.results) == 0:
		builder.WriteString(m.styles.MutedText.Render("No matching models"))
	default:
		for index, match := range m.results {
			prefix := "  "
			style := m.styles.Unselected

			if m.focus == focusSearch && index == m.resultCursor {
				prefix = SelectedPrefix
				style = m.styles.Selected
			}

			line := match.Title() + " " + m.styles.MutedText.Render(stringutil.FormatAmount(m.currency, match.Price))
			builder.WriteString(prefix + style.Render(line) + "\n")
		}
	}

	card := m.styles.Card.Width(46)
	if m.focus == focusSearch {
		card = card.BorderForeground(m.styles.Primary)
	}

	return card.Render(strings.TrimRight(builder.String(), "\n"))
}

func clamp(value, length int) int {
	if length <= 0 || value < 0 {
		return 0
	}

	if value >= length {
		return length - 1
	}

	return value
}

func indexOf(items []string, target string) int {
	for index, item := range items {
		if item == target {
			return index
		}
	}

	return -1
}
