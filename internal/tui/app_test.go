// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

package tui

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/janderssonse/tradein/internal/catalog"
	"github.com/janderssonse/tradein/internal/checkout"
	"github.com/janderssonse/tradein/internal/domain"
	"github.com/janderssonse/tradein/internal/session"
	"github.com/janderssonse/tradein/internal/tui/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, *session.Session) {
	t.Helper()

	flow := checkout.New(checkout.WithIDGenerator(func() string { return "order-1" }))
	sess := session.New(catalog.Default(), session.WithCheckout(flow))
	app := NewApp(sess, "₹", "")
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	return app, sess
}

func keys(app *App, msgs ...tea.KeyMsg) {
	for _, msg := range msgs {
		app.Update(msg)
	}
}

const (
	// cmdTimeout drops commands that wait on a timer, such as cursor blinks.
	cmdTimeout      = 50 * time.Millisecond
	maxSettledSteps = 1000
)

// settle runs cmd and every command that follows from it, feeding each message into app
// the way the Bubble Tea runtime does.
func settle(app *App, cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}

	for steps := 0; len(queue) > 0 && steps < maxSettledSteps; steps++ {
		next := queue[0]
		queue = queue[1:]

		msg, ok := runCmd(next)
		if !ok {
			continue
		}

		if cmds, isGroup := commandGroup(msg); isGroup {
			queue = append(queue, cmds...)

			continue
		}

		_, follow := app.Update(msg)
		queue = append(queue, follow)
	}
}

func runCmd(cmd tea.Cmd) (tea.Msg, bool) {
	if cmd == nil {
		return nil, false
	}

	done := make(chan tea.Msg, 1)

	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		return msg, msg != nil
	case <-time.After(cmdTimeout):
		return nil, false
	}
}

// commandGroup unpacks tea.Batch and tea.Sequence results.
func commandGroup(msg tea.Msg) ([]tea.Cmd, bool) {
	if batch, ok := msg.(tea.BatchMsg); ok {
		return batch, true
	}

	value := reflect.ValueOf(msg)
	if value.Kind() != reflect.Slice || value.Type().Elem() != reflect.TypeOf(tea.Cmd(nil)) {
		return nil, false
	}

	cmds := make([]tea.Cmd, value.Len())
	for i := range cmds {
		cmds[i], _ = value.Index(i).Interface().(tea.Cmd)
	}

	return cmds, true
}

// press sends each key and settles the resulting commands before the next one.
func press(app *App, msgs ...tea.KeyMsg) {
	for _, msg := range msgs {
		_, cmd := app.Update(msg)
		settle(app, cmd)
	}
}

func runes(text string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func TestNewApp(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	assert.Equal(t, SelectScreen, app.CurrentScreen())
	assert.IsType(t, &models.Select{}, app.ContentModel())
	assert.Contains(t, app.models, SelectScreen)
	assert.Empty(t, app.Notice())
}

func TestAppFollowsWizardSteps(t *testing.T) {
	t.Parallel()

	app, sess := newTestApp(t)

	keys(app, keyEnter, keyDown, keyEnter, runes("n"))
	require.Equal(t, ConditionScreen, app.CurrentScreen())

	keys(app, keyDown, keyDown, keySpace, keyDown, keySpace, runes("n"))
	require.Equal(t, OfferScreen, app.CurrentScreen())
	assert.Equal(t, 20400, sess.Selection().Offer.Amount)

	keys(app, keyEnter)
	require.Equal(t, CartScreen, app.CurrentScreen())
	assert.Contains(t, ansi.Strip(app.View()), "🛒 1")

	keys(app, keyEsc)
	assert.Equal(t, OfferScreen, app.CurrentScreen())

	keys(app, runes("b"), runes("b"))
	assert.Equal(t, SelectScreen, app.CurrentScreen())
}

func TestAppCheckoutScreens(t *testing.T) {
	t.Parallel()

	app, sess := newTestApp(t)

	require.NoError(t, sess.SelectBrand("Apple"))
	require.NoError(t, sess.SelectModel("iPhone 13"))
	_, err := sess.Calculate()
	require.NoError(t, err)
	require.NoError(t, sess.AddToCart())
	app.Update(models.IntentMsg{})
	require.Equal(t, CartScreen, app.CurrentScreen())

	keys(app, keyEnter)
	require.Equal(t, CheckoutScreen, app.CurrentScreen())
	assert.IsType(t, &models.Checkout{}, app.ContentModel())

	keys(app, runes("q"))
	assert.False(t, app.quitting, "q is text while the form has focus")

	require.NoError(t, sess.SubmitDetails(domain.ContactDetails{
		Name: "Asha", Phone: "9876543210", Address: "12 MG Road", Date: "2025-07-01",
	}))
	app.Update(models.IntentMsg{})
	require.Equal(t, PaymentScreen, app.CurrentScreen())

	_, err = sess.ConfirmPayment(domain.PaymentCashOnDelivery)
	require.NoError(t, err)
	app.Update(models.IntentMsg{})
	require.Equal(t, SuccessScreen, app.CurrentScreen())
	assert.Contains(t, ansi.Strip(app.View()), "order-1")

	keys(app, keyEnter)
	assert.Equal(t, SelectScreen, app.CurrentScreen())
	assert.Zero(t, sess.CartCount())
}

// appAtCheckout returns an app showing the pickup form with one fair iPhone 13 in the cart.
func appAtCheckout(t *testing.T) (*App, *session.Session) {
	t.Helper()

	app, sess := newTestApp(t)

	require.NoError(t, sess.SelectBrand("Apple"))
	require.NoError(t, sess.SelectModel("iPhone 13"))
	require.NoError(t, sess.SetCondition(domain.ConditionFair))
	_, err := sess.ToggleIssue("screen")
	require.NoError(t, err)
	_, err = sess.Calculate()
	require.NoError(t, err)
	require.NoError(t, sess.AddToCart())

	_, cmd := app.Update(models.IntentMsg{})
	settle(app, cmd)
	require.Equal(t, CartScreen, app.CurrentScreen())

	press(app, keyEnter)
	require.Equal(t, CheckoutScreen, app.CurrentScreen())

	return app, sess
}

func TestAppCheckoutByKeyboard(t *testing.T) {
	t.Parallel()

	app, sess := appAtCheckout(t)

	press(app, runes("Asha"), keyEnter, runes("9876543210"), keyEnter, runes("12 MG Road"), keyEnter)
	assert.Equal(t, CheckoutScreen, app.CurrentScreen(), "enter moves between fields before the last one")
	assert.Equal(t, checkout.PhaseDetails, sess.CheckoutPhase())

	press(app, runes("2025-07-01"), keyEnter)
	require.Equal(t, PaymentScreen, app.CurrentScreen(), "enter on the last field submits")
	assert.Equal(t, checkout.PhasePayment, sess.CheckoutPhase())
	assert.Empty(t, app.Notice())

	press(app, keyEnter)
	require.Equal(t, SuccessScreen, app.CurrentScreen(), "enter confirms the payment")
	assert.Zero(t, sess.CartCount())
	assert.Zero(t, sess.CartTotal())

	order, ok := sess.LastOrder()
	require.True(t, ok)
	assert.Equal(t, "order-1", order.ID)
	assert.Equal(t, domain.PaymentCashOnDelivery, order.Payment)
	assert.Equal(t, 20400, order.Total)
	assert.Equal(t, domain.ContactDetails{
		Name: "Asha", Phone: "9876543210", Address: "12 MG Road", Date: "2025-07-01",
	}, order.Details)
}

func TestAppCheckoutByKeyboardWithoutDate(t *testing.T) {
	t.Parallel()

	app, sess := appAtCheckout(t)

	press(app, runes("Asha"), keyEnter, runes("9876543210"), keyEnter, runes("12 MG Road"), keyEnter, keyEnter)

	assert.Equal(t, CheckoutScreen, app.CurrentScreen())
	assert.Equal(t, checkout.PhaseDetails, sess.CheckoutPhase())
	assert.Equal(t, "Please complete all fields.", app.Notice())
	assert.Equal(t, 1, sess.CartCount())

	form, ok := app.ContentModel().(*models.Checkout)
	require.True(t, ok)
	assert.Equal(t, "Asha", form.Values().Name, "entered values survive the failed submit")
}

func TestAppCheckoutEscReturnsToCart(t *testing.T) {
	t.Parallel()

	app, sess := newTestApp(t)

	sess.OpenCart()
	require.NoError(t, sess.OpenCheckout())
	app.Update(models.IntentMsg{})
	require.Equal(t, CheckoutScreen, app.CurrentScreen())

	keys(app, keyEsc)
	assert.Equal(t, CartScreen, app.CurrentScreen())
}

func TestAppNotice(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	app.Update(models.IntentMsg{Err: fmt.Errorf("%w: no model selected", domain.ErrMissingSelection)})
	assert.Equal(t, "Please select a brand and model", app.Notice())
	assert.Contains(t, ansi.Strip(app.View()), "Please select a brand and model")

	app.Update(models.IntentMsg{Err: fmt.Errorf("%w: date", domain.ErrIncompleteForm)})
	assert.Equal(t, "Please complete all fields.", app.Notice())

	app.Update(models.IntentMsg{})
	assert.Empty(t, app.Notice())
}

func TestAppBlockedAdvanceShowsNotice(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	_, cmd := app.Update(runes("n"))
	require.NotNil(t, cmd)

	settle(app, cmd)
	assert.Equal(t, "Please select a brand and model", app.Notice())
	assert.Equal(t, SelectScreen, app.CurrentScreen())
}

func TestAppQuit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  tea.KeyMsg
	}{
		{"q", runes("q")},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app, _ := newTestApp(t)

			_, cmd := app.Update(tt.key)
			require.NotNil(t, cmd)
			assert.Equal(t, models.GoodbyeMessage, app.View())
		})
	}
}

func TestAppQIsTextInSearch(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	keys(app, runes("/"), runes("q"))
	assert.False(t, app.quitting)
}

func TestAppHelpModal(t *testing.T) {
	t.Parallel()

	app, sess := newTestApp(t)

	keys(app, runes("?"))
	require.True(t, app.helpModal.IsVisible())
	assert.Equal(t, "select", app.helpModal.Screen())

	keys(app, runes("c"))
	assert.False(t, sess.CartOpen(), "keys are swallowed while the overlay is open")

	keys(app, runes("?"))
	assert.False(t, app.helpModal.IsVisible())
}

func TestAppHelpScreen(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	keys(app, runes("H"))
	require.Equal(t, HelpScreen, app.CurrentScreen())

	_, cmd := app.Update(keyEsc)
	require.NotNil(t, cmd)

	settle(app, cmd)
	assert.Equal(t, SelectScreen, app.CurrentScreen())
}

func TestScreenString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "select", SelectScreen.String())
	assert.Equal(t, "payment", PaymentScreen.String())
	assert.Equal(t, "screen(42)", Screen(42).String())
}
