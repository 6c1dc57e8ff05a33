// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/tradein/internal/tui/styles"
)

const (
	helpWrapWidth     = 80
	helpMinViewHeight = 3
)

// HelpSection is one tab of the help screen, written in markdown.
type HelpSection struct {
	Title   string
	Content string
}

var helpKeys = struct {
	prev, next, top, bottom, back key.Binding
}{
	prev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous section")),
	next:   key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "next section")),
	top:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
	bottom: key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
	back:   key.NewBinding(key.WithKeys("esc", "H"), key.WithHelp("esc", "back to trade-in")),
}

// Help is the full help screen: section tabs over a scrolling markdown viewport.
type Help struct {
	styles   *styles.Styles
	sections []HelpSection
	section  int
	wrap     int
	viewport viewport.Model
}

func helpSections(currency string) []HelpSection {
	return []HelpSection{
		{
			Title: "How it works",
			Content: `# Trade in your phone

1. **Select** your phone's brand and model, or search by model name.
2. **Describe** its condition and tick any known issues.
3. **Get an offer** and add it to your cart.
4. **Check out** with your pickup details and choose how to be paid.

You can add several phones before checking out. After adding one, the
button turns into **Add more items** and starts a fresh selection.

| Key | Action |
|-----|--------|
| ↑/↓ or j/k | Move |
| Enter/Space | Choose or toggle |
| Tab | Next pane |
| n / b | Next / back |
| c | Open or close the cart |
| ? | Keys for this screen |
| q | Quit |`,
		},
		{
			Title: "Pricing",
			Content: `# How offers are calculated

Each model has a base price. The offer is the base price adjusted for
condition, then reduced once more if any issue is reported.

| Condition | Multiplier |
|-----------|------------|
| Excellent | 100% |
| Good | 80% |
| Fair | 60% |

Reporting one or more issues takes a further **15%** off. The number of
issues does not matter.

> Example: an iPhone 13 with a base price of ` + currency + ` 40000 in fair
> condition with one issue is offered ` + currency + ` 20400.`,
		},
		{
			Title: "Checkout",
			Content: `# Checkout and payment

Open the cart with **c** and press **Enter** to check out.

* Name, phone number, pickup address and pickup date are all required.
* The pickup date is free text; ` + "`" + DateLayout + "`" + ` is suggested.
* Payment options are **Cash on Delivery**, **UPI** and **Bank Transfer**.

Confirming payment places the order and empties the cart. Nothing is
stored once the program exits.`,
		},
		{
			Title: "Command line",
			Content: `# Command line

` + "```bash" + `
tradein                      # interactive trade-in
tradein brands               # list brands
tradein models Samsung       # list models of a brand
tradein search galaxy        # search models by name
tradein quote --brand Apple --model "iPhone 13" --condition fair --issue screen
tradein detect "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0)"
` + "```" + `

Global options: ` + "`--config`, `--json`, `--plain`, `--verbose`, `--log-file`, `--metrics-file`" + `.`,
		},
	}
}

// NewHelp creates the help screen with amounts shown in currency.
func NewHelp(styleConfig *styles.Styles, currency string) *Help {
	pane := viewport.New(helpWrapWidth, 20)
	pane.Style = styleConfig.Card.BorderForeground(styleConfig.Primary).Padding(1)

	m := &Help{
		styles:   styleConfig,
		sections: helpSections(currency),
		wrap:     helpWrapWidth,
		viewport: pane,
	}

	m.render()

	return m
}

// Init implements tea.Model.
func (m *Help) Init() tea.Cmd {
	return nil
}

// Update switches sections, scrolls, and resizes the viewport.
func (m *Help) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-lipgloss.Height(m.tabs())-2, helpMinViewHeight)
		m.wrap = min(max(msg.Width-m.viewport.Style.GetHorizontalFrameSize(), 20), helpWrapWidth)
		m.render()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, helpKeys.back):
			return m, navigate(ResumeScreen)
		case key.Matches(msg, helpKeys.prev):
			m.show(m.section - 1)
		case key.Matches(msg, helpKeys.next):
			m.show(m.section + 1)
		case key.Matches(msg, helpKeys.top):
			m.viewport.GotoTop()
		case key.Matches(msg, helpKeys.bottom):
			m.viewport.GotoBottom()
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)

			return m, cmd
		}
	}

	return m, nil
}

// Section returns the index of the visible section.
func (m *Help) Section() int {
	return m.section
}

// View renders the tabs above the viewport.
func (m *Help) View() string {
	return m.tabs() + "\n\n" + m.viewport.View()
}

// FooterActions returns the key hints for the help screen.
func (m *Help) FooterActions() []FooterAction {
	return []FooterAction{
		{Key: "↑↓/jk", Action: "Scroll"},
		{Key: "←→/hl", Action: "Sections"},
		{Key: "g/G", Action: "Top/bottom"},
		{Key: "Esc", Action: "Back"},
		{Key: "q", Action: "Quit"},
	}
}

// show moves to section index, ignoring moves past either end.
func (m *Help) show(index int) {
	if index < 0 || index >= len(m.sections) {
		return
	}

	m.section = index
	m.render()
	m.viewport.GotoTop()
}

func (m *Help) tabs() string {
	tabs := make([]string, 0, len(m.sections))

	for i, section := range m.sections {
		style := m.styles.Unselected.Faint(true)
		if i == m.section {
			style = m.styles.Selected
		}

		tabs = append(tabs, style.MarginRight(1).Render(section.Title))
	}

	return m.styles.Title.Render("❓ Help") + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// render turns the current section into terminal markdown. Raw markdown is shown if glamour fails.
func (m *Help) render() {
	content := m.sections[m.section].Content

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(m.wrap))
	if err == nil {
		if rendered, renderErr := renderer.Render(content); renderErr == nil {
			content = rendered
		}
	}

	m.viewport.SetContent(content)
}
