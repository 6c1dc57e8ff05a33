// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

// Package tui renders the trade-in session as a Bubble Tea program.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/tradein/internal/checkout"
	"github.com/janderssonse/tradein/internal/domain"
	"github.com/janderssonse/tradein/internal/session"
	"github.com/janderssonse/tradein/internal/stringutil"
	"github.com/janderssonse/tradein/internal/tui/models"
	"github.com/janderssonse/tradein/internal/tui/styles"
	"golang.org/x/term"
)

// ErrNoTerminal is returned when the TUI is launched in a non-terminal environment.
var ErrNoTerminal = errors.New("TUI requires a terminal environment")

// Screen represents different TUI screens.
type Screen int

// Screen constants mirror the models package.
const (
	SelectScreen    Screen = Screen(models.SelectScreen)
	ConditionScreen Screen = Screen(models.ConditionScreen)
	OfferScreen     Screen = Screen(models.OfferScreen)
	CartScreen      Screen = Screen(models.CartScreen)
	CheckoutScreen  Screen = Screen(models.CheckoutScreen)
	PaymentScreen   Screen = Screen(models.PaymentScreen)
	SuccessScreen   Screen = Screen(models.SuccessScreen)
	HelpScreen      Screen = Screen(models.HelpScreen)
)

func (s Screen) String() string {
	switch s {
	case SelectScreen:
		return "select"
	case ConditionScreen:
		return "condition"
	case OfferScreen:
		return "offer"
	case CartScreen:
		return "cart"
	case CheckoutScreen:
		return "checkout"
	case PaymentScreen:
		return "payment"
	case SuccessScreen:
		return "success"
	case HelpScreen:
		return "help"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

var stepLabels = []string{"Select phone", "Condition", "Offer"}

// App is the root model. The visible screen always follows the session state.
type App struct {
	width         int
	height        int
	styles        *styles.Styles
	session       *session.Session
	currency      string
	client        string
	currentScreen Screen
	contentModel  tea.Model
	models        map[Screen]tea.Model
	helpModal     *models.HelpModal
	showHelp      bool
	notice        string
	quitting      bool
}

// NewApp creates the root model over sess. client feeds the device sniffer.
func NewApp(sess *session.Session, currency, client string) *App {
	styleConfig := styles.New()
	app := &App{
		styles:    styleConfig,
		session:   sess,
		currency:  currency,
		client:    client,
		models:    make(map[Screen]tea.Model),
		helpModal: models.NewHelpModal(styleConfig),
	}

	app.currentScreen = app.targetScreen()
	app.contentModel = app.modelFor(app.currentScreen)

	return app
}

// Run starts the TUI program and blocks until it exits.
func (a *App) Run(ctx context.Context) error {
	program := tea.NewProgram(
		a,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI application failed: %w", err)
	}

	return nil
}

// Init implements the tea.Model interface.
func (a *App) Init() tea.Cmd {
	return a.contentModel.Init()
}

// Update implements the tea.Model interface.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.helpModal.SetSize(msg.Width, msg.Height)

		var cmd tea.Cmd

		a.contentModel, cmd = a.contentModel.Update(a.contentSize())

		return a, cmd
	case models.IntentMsg:
		a.notice = domain.UserMessage(msg.Err)

		return a, a.sync()
	case models.NavigateMsg:
		return a, a.handleNavigation(msg)
	case tea.KeyMsg:
		return a.handleKeyMessage(msg)
	}

	var cmd tea.Cmd

	a.contentModel, cmd = a.contentModel.Update(msg)

	return a, tea.Batch(cmd, a.sync())
}

func (a *App) handleNavigation(msg models.NavigateMsg) tea.Cmd {
	switch Screen(msg.Screen) {
	case HelpScreen:
		a.showHelp = true
	default:
		a.showHelp = false
	}

	return a.sync()
}

func (a *App) handleKeyMessage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == models.KeyCtrlC {
		a.quitting = true

		return a, tea.Quit
	}

	if a.helpModal.IsVisible() {
		return a, a.helpModal.Update(msg)
	}

	if !a.capturesInput() {
		switch msg.String() {
		case "q":
			a.quitting = true

			return a, tea.Quit
		case "?":
			a.helpModal.SetScreen(a.currentScreen.String())
			a.helpModal.Toggle()

			return a, nil
		case "H":
			if a.currentScreen != HelpScreen {
				a.showHelp = true

				return a, a.sync()
			}
		}
	}

	var cmd tea.Cmd

	a.contentModel, cmd = a.contentModel.Update(msg)

	return a, tea.Batch(cmd, a.sync())
}

// targetScreen maps session state to a screen. Checkout dialogs win over help, help over the cart drawer.
func (a *App) targetScreen() Screen {
	switch a.session.CheckoutPhase() {
	case checkout.PhaseDetails:
		return CheckoutScreen
	case checkout.PhasePayment:
		return PaymentScreen
	case checkout.PhaseSucceeded:
		return SuccessScreen
	case checkout.PhaseClosed:
	}

	if a.showHelp {
		return HelpScreen
	}

	if a.session.CartOpen() {
		return CartScreen
	}

	switch a.session.Step() {
	case session.StepCondition:
		return ConditionScreen
	case session.StepOffer:
		return OfferScreen
	default:
		return SelectScreen
	}
}

// sync switches the content model when the session state calls for another screen.
func (a *App) sync() tea.Cmd {
	target := a.targetScreen()
	if target == a.currentScreen {
		return nil
	}

	a.helpModal.Hide()
	a.currentScreen = target
	a.contentModel = a.modelFor(target)

	cmds := []tea.Cmd{a.contentModel.Init()}

	if a.width > 0 && a.height > 0 {
		var cmd tea.Cmd

		a.contentModel, cmd = a.contentModel.Update(a.contentSize())
		cmds = append(cmds, cmd)
	}

	return tea.Batch(cmds...)
}

// modelFor returns the cached model for screen. Checkout, payment and success are always fresh.
func (a *App) modelFor(screen Screen) tea.Model {
	if isTransient(screen) {
		return a.createModelForScreen(screen)
	}

	if cached, ok := a.models[screen]; ok {
		return cached
	}

	model := a.createModelForScreen(screen)
	a.models[screen] = model

	return model
}

func isTransient(screen Screen) bool {
	return screen == CheckoutScreen || screen == PaymentScreen || screen == SuccessScreen
}

func (a *App) createModelForScreen(screen Screen) tea.Model {
	switch screen {
	case ConditionScreen:
		return models.NewCondition(a.styles, a.session)
	case OfferScreen:
		return models.NewOffer(a.styles, a.session, a.currency)
	case CartScreen:
		return models.NewCart(a.styles, a.session, a.currency)
	case CheckoutScreen:
		return models.NewCheckout(a.styles, a.session, a.currency)
	case PaymentScreen:
		return models.NewPayment(a.styles, a.session, a.currency)
	case SuccessScreen:
		return models.NewSuccess(a.styles, a.session, a.currency)
	case HelpScreen:
		return models.NewHelp(a.styles, a.currency)
	default:
		return models.NewSelect(a.styles, a.session, a.currency, a.client)
	}
}

func (a *App) capturesInput() bool {
	capturer, ok := a.contentModel.(models.InputCapturer)

	return ok && capturer.CapturesInput()
}

// View implements the tea.Model interface.
func (a *App) View() string {
	if a.quitting {
		return models.GoodbyeMessage
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	content := a.contentModel.View()
	if a.helpModal.IsVisible() {
		content = a.helpModal.View()
	}

	components := []string{header}

	if a.notice != "" {
		components = append(components, a.styles.ErrorText.Render(a.styles.StatusIcon("error")+" "+a.notice))
	}

	components = append(components, content, footer)

	return lipgloss.JoinVertical(lipgloss.Left, components...)
}

func (a *App) renderHeader() string {
	cart := a.styles.CartBadge(a.session.CartCount()) + " " +
		a.styles.MutedText.Render(stringutil.FormatAmount(a.currency, a.session.CartTotal()))

	line := lipgloss.JoinHorizontal(lipgloss.Center,
		a.styles.Banner(), "  ",
		a.styles.StepBar(stepLabels, int(a.session.Step())), "  ",
		cart,
	)

	return lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder(), false, false, true, false).
		BorderForeground(a.styles.Primary).
		Render(line)
}

func (a *App) renderFooter() string {
	var actions []models.FooterAction

	if provider, ok := a.contentModel.(models.HintProvider); ok {
		actions = provider.FooterActions()
	}

	return models.RenderFooter(a.styles, a.width, actions, !a.capturesInput())
}

// contentSize is the window minus header, notice and footer.
func (a *App) contentSize() tea.WindowSizeMsg {
	reserved := lipgloss.Height(a.renderHeader()) + lipgloss.Height(a.renderFooter()) + 1

	return tea.WindowSizeMsg{
		Width:  a.width,
		Height: max(a.height-reserved, 0),
	}
}

// CurrentScreen returns the visible screen.
func (a *App) CurrentScreen() Screen {
	return a.currentScreen
}

// ContentModel returns the visible screen model.
func (a *App) ContentModel() tea.Model {
	return a.contentModel
}

// Notice returns the blocking message currently shown, if any.
func (a *App) Notice() string {
	return a.notice
}

// LaunchInteractive starts the TUI over sess.
func LaunchInteractive(ctx context.Context, sess *session.Session, currency, client string) error {
	if !isTerminal() {
		return fmt.Errorf("terminal check failed: %w", ErrNoTerminal)
	}

	return NewApp(sess, currency, client).Run(ctx)
}

// isTerminal checks if stdout is connected to a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
