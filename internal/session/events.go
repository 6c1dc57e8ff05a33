// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

package session

import "github.com/janderssonse/tradein/internal/domain"

// EventKind names a state change.
type EventKind string

// Session events.
const (
	EventBrandSelected    EventKind = "brand_selected"
	EventModelSelected    EventKind = "model_selected"
	EventConditionChanged EventKind = "condition_changed"
	EventIssueToggled     EventKind = "issue_toggled"
	EventStepChanged      EventKind = "step_changed"
	EventOfferCalculated  EventKind = "offer_calculated"
	EventItemAdded        EventKind = "item_added"
	EventSessionReset     EventKind = "session_reset"
	EventCartOpened       EventKind = "cart_opened"
	EventCartClosed       EventKind = "cart_closed"
	EventCheckoutOpened   EventKind = "checkout_opened"
	EventDetailsSubmitted EventKind = "details_submitted"
	EventOrderConfirmed   EventKind = "order_confirmed"
	EventCheckoutCanceled EventKind = "checkout_canceled"
	EventSuccessDismissed EventKind = "success_dismissed"
	EventBlocked          EventKind = "blocked"
)

// Event describes one change. Only the fields relevant to Kind are set.
type Event struct {
	Kind      EventKind
	Action    string
	Step      Step
	Brand     string
	Model     string
	Condition domain.Condition
	Issue     string
	Issues    int
	Amount    int
	Item      domain.CartItem
	Order     domain.Order
	Err       error
}

// Observer receives events after the state change has been applied.
type Observer func(Event)
