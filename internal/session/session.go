// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

// Package session owns the trade-in state and exposes the user's intents.
//
// A Session is driven by a single actor and is not safe for concurrent use.
// Every intent either applies its change and notifies observers, or returns
// an error and leaves the state untouched.
package session

import (
	"fmt"
	"slices"

	"github.com/janderssonse/tradein/internal/cart"
	"github.com/janderssonse/tradein/internal/catalog"
	"github.com/janderssonse/tradein/internal/checkout"
	"github.com/janderssonse/tradein/internal/domain"
	"github.com/janderssonse/tradein/internal/pricing"
)

// Step is the visible wizard panel.
type Step int

// Wizard steps in order.
const (
	StepSelect Step = iota
	StepCondition
	StepOffer
)

func (s Step) String() string {
	switch s {
	case StepSelect:
		return "select"
	case StepCondition:
		return "condition"
	case StepOffer:
		return "offer"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Number is the 1-based panel number.
func (s Step) Number() int {
	return int(s) + 1
}

// Session is the controller behind every screen.
type Session struct {
	catalog   *catalog.Catalog
	selection Selection
	step      Step
	cart      *cart.Cart
	checkout  *checkout.Flow
	cartOpen  bool
	observers []Observer
}

// Option customizes a Session.
type Option func(*Session)

// WithCheckout replaces the checkout flow, e.g. to pin order IDs in tests.
func WithCheckout(flow *checkout.Flow) Option {
	return func(s *Session) {
		s.checkout = flow
	}
}

// WithObserver subscribes observer from the start.
func WithObserver(observer Observer) Option {
	return func(s *Session) {
		s.Subscribe(observer)
	}
}

// New creates a session over cat with a default selection and an empty cart.
func New(cat *catalog.Catalog, opts ...Option) *Session {
	session := &Session{
		catalog:   cat,
		selection: NewSelection(),
		step:      StepSelect,
		cart:      cart.New(),
		checkout:  checkout.New(),
	}

	for _, opt := range opts {
		opt(session)
	}

	return session
}

// Subscribe registers observer for every subsequent event.
func (s *Session) Subscribe(observer Observer) {
	if observer != nil {
		s.observers = append(s.observers, observer)
	}
}

func (s *Session) emit(event Event) {
	event.Step = s.step

	for _, observer := range s.observers {
		observer(event)
	}
}

func (s *Session) block(action string, err error) error {
	s.emit(Event{Kind: EventBlocked, Action: action, Err: err})

	return err
}

// Catalog returns the catalog the session picks from.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Selection returns a copy of the current selection.
func (s *Session) Selection() Selection {
	return s.selection.clone()
}

// Step returns the visible wizard step.
func (s *Session) Step() Step {
	return s.step
}

// Search delegates to the catalog.
func (s *Session) Search(query string) []catalog.Match {
	return s.catalog.Search(query)
}

// SelectBrand picks brand, clears the model and repopulates the model options. An empty brand clears both.
func (s *Session) SelectBrand(brand string) error {
	if brand != "" && !s.catalog.HasBrand(brand) {
		return s.block("select_brand", fmt.Errorf("%w: %q", domain.ErrUnknownBrand, brand))
	}

	s.selection.Brand = brand
	s.selection.Model = ""
	s.selection.ModelOptions = s.catalog.Models(brand)
	s.selection.Offer = Offer{}

	s.emit(Event{Kind: EventBrandSelected, Brand: brand})

	return nil
}

// SelectModel picks model from the current model options.
func (s *Session) SelectModel(model string) error {
	if s.selection.Brand == "" {
		return s.block("select_model", fmt.Errorf("%w: no brand selected", domain.ErrMissingSelection))
	}

	if !slices.Contains(s.selection.ModelOptions, model) {
		return s.block("select_model", fmt.Errorf("%w: %q for %s", domain.ErrUnknownModel, model, s.selection.Brand))
	}

	s.selection.Model = model
	s.selection.Offer = Offer{}

	s.emit(Event{Kind: EventModelSelected, Brand: s.selection.Brand, Model: model})

	return nil
}

// SelectSearchResult sets brand and model from match and collapses the options to that model.
func (s *Session) SelectSearchResult(match catalog.Match) error {
	if _, err := s.catalog.Price(match.Brand, match.Model); err != nil {
		return s.block("select_search_result", err)
	}

	s.selection.Brand = match.Brand
	s.selection.Model = match.Model
	s.selection.ModelOptions = []string{match.Model}
	s.selection.Offer = Offer{}

	s.emit(Event{Kind: EventModelSelected, Brand: match.Brand, Model: match.Model})

	return nil
}

// SetCondition sets the self-reported condition.
func (s *Session) SetCondition(condition domain.Condition) error {
	parsed, err := domain.ParseCondition(string(condition))
	if err != nil {
		return s.block("set_condition", err)
	}

	s.selection.Condition = parsed

	s.emit(Event{Kind: EventConditionChanged, Condition: parsed})

	return nil
}

// ToggleIssue flips a defect flag and reports whether it is now set.
func (s *Session) ToggleIssue(tag string) (bool, error) {
	parsed, err := domain.ParseIssue(tag)
	if err != nil {
		return false, s.block("toggle_issue", err)
	}

	set := s.selection.toggleIssue(parsed)

	s.emit(Event{Kind: EventIssueToggled, Issue: parsed, Issues: s.selection.IssueCount()})

	return set, nil
}

func (s *Session) moveTo(step Step) {
	if s.step == step {
		return
	}

	s.step = step
	s.emit(Event{Kind: EventStepChanged})
}

// Advance moves one step forward. Leaving Select needs brand and model; leaving Condition calculates.
func (s *Session) Advance() error {
	switch s.step {
	case StepSelect:
		if !s.selection.HasModel() {
			return s.block("advance", fmt.Errorf("%w: no model selected", domain.ErrMissingSelection))
		}

		s.moveTo(StepCondition)

		return nil
	case StepCondition:
		_, err := s.Calculate()

		return err
	default:
		return nil
	}
}

// Back moves one step backward without clearing anything.
func (s *Session) Back() {
	if s.step > StepSelect {
		s.moveTo(s.step - 1)
	}
}

// Calculate computes the offer from the current selection, shows the offer step and restores the add button.
func (s *Session) Calculate() (int, error) {
	if !s.selection.HasModel() {
		return 0, s.block("calculate", fmt.Errorf("%w: no model selected", domain.ErrMissingSelection))
	}

	base, err := s.catalog.Price(s.selection.Brand, s.selection.Model)
	if err != nil {
		return 0, s.block("calculate", err)
	}

	amount := pricing.ComputeOffer(base, s.selection.Condition, s.selection.IssueCount())
	s.selection.Offer = Offer{Amount: amount, Calculated: true}
	s.cart.ResetMode()

	s.emit(Event{
		Kind:      EventOfferCalculated,
		Brand:     s.selection.Brand,
		Model:     s.selection.Model,
		Condition: s.selection.Condition,
		Issues:    s.selection.IssueCount(),
		Amount:    amount,
	})

	s.moveTo(StepOffer)

	return amount, nil
}

// AddButtonLabel is the label of the add-to-cart control.
func (s *Session) AddButtonLabel() string {
	return s.cart.Mode().Label()
}

// CartMode returns the add-to-cart control mode.
func (s *Session) CartMode() cart.Mode {
	return s.cart.Mode()
}

// AddToCart adds the current offer and opens the cart. Right after an add it restarts the flow instead.
func (s *Session) AddToCart() error {
	if s.cart.Mode() == cart.ModeJustAdded {
		s.Reset()

		return nil
	}

	if !s.selection.HasModel() {
		return s.block("add_to_cart", fmt.Errorf("%w: no model selected", domain.ErrMissingSelection))
	}

	if !s.selection.Offer.Calculated {
		return s.block("add_to_cart", domain.ErrOfferNotCalculated)
	}

	item := s.cart.Add(domain.CartItem{
		Brand:     s.selection.Brand,
		Model:     s.selection.Model,
		Condition: s.selection.Condition,
		Price:     s.selection.Offer.Amount,
	})

	s.emit(Event{Kind: EventItemAdded, Item: item, Amount: item.Price})
	s.OpenCart()

	return nil
}

// Reset restores the default selection, returns to the first step and restores the add button. The cart is kept.
func (s *Session) Reset() {
	s.selection = NewSelection()
	s.cart.ResetMode()
	s.moveTo(StepSelect)

	s.emit(Event{Kind: EventSessionReset})
}

// CartItems returns the cart contents in insertion order.
func (s *Session) CartItems() []domain.CartItem {
	return s.cart.Items()
}

// CartCount is the number of cart items.
func (s *Session) CartCount() int {
	return s.cart.Count()
}

// CartTotal sums cart item prices.
func (s *Session) CartTotal() int {
	return s.cart.Total()
}

// CartOpen reports whether the cart drawer is visible.
func (s *Session) CartOpen() bool {
	return s.cartOpen
}

// OpenCart shows the cart drawer.
func (s *Session) OpenCart() {
	if s.cartOpen {
		return
	}

	s.cartOpen = true
	s.emit(Event{Kind: EventCartOpened})
}

// CloseCart hides the cart drawer.
func (s *Session) CloseCart() {
	if !s.cartOpen {
		return
	}

	s.cartOpen = false
	s.emit(Event{Kind: EventCartClosed})
}

// CheckoutPhase returns the current checkout dialog.
func (s *Session) CheckoutPhase() checkout.Phase {
	return s.checkout.Phase()
}

// CheckoutDetails returns the submitted pickup details, if any.
func (s *Session) CheckoutDetails() (domain.ContactDetails, bool) {
	return s.checkout.Details()
}

// LastOrder returns the most recently confirmed order.
func (s *Session) LastOrder() (domain.Order, bool) {
	return s.checkout.LastOrder()
}

// OpenCheckout shows the pickup details dialog.
func (s *Session) OpenCheckout() error {
	before := s.checkout.Phase()

	if err := s.checkout.Open(); err != nil {
		return s.block("open_checkout", err)
	}

	if before != s.checkout.Phase() {
		s.emit(Event{Kind: EventCheckoutOpened})
	}

	return nil
}

// SubmitDetails validates pickup details and opens the payment dialog.
func (s *Session) SubmitDetails(details domain.ContactDetails) error {
	if err := s.checkout.Submit(details); err != nil {
		return s.block("submit_details", err)
	}

	s.emit(Event{Kind: EventDetailsSubmitted})

	return nil
}

// ConfirmPayment builds the order, empties the cart and shows the success acknowledgment.
func (s *Session) ConfirmPayment(method domain.PaymentMethod) (domain.Order, error) {
	order, err := s.checkout.Confirm(method, s.cart.Items())
	if err != nil {
		return domain.Order{}, s.block("confirm_payment", err)
	}

	s.cart.Clear()
	s.cartOpen = false

	s.emit(Event{Kind: EventOrderConfirmed, Order: order, Amount: order.Total})

	return order, nil
}

// CancelCheckout closes the details or payment dialog.
func (s *Session) CancelCheckout() error {
	before := s.checkout.Phase()

	if err := s.checkout.Cancel(); err != nil {
		return s.block("cancel_checkout", err)
	}

	if before != checkout.PhaseClosed {
		s.emit(Event{Kind: EventCheckoutCanceled})
	}

	return nil
}

// DismissSuccess closes the success acknowledgment.
func (s *Session) DismissSuccess() error {
	if err := s.checkout.Dismiss(); err != nil {
		return s.block("dismiss_success", err)
	}

	s.emit(Event{Kind: EventSuccessDismissed})

	return nil
}

// ReturnToStart dismisses the success acknowledgment and restarts the wizard.
func (s *Session) ReturnToStart() error {
	if err := s.DismissSuccess(); err != nil {
		return err
	}

	s.Reset()

	return nil
}
