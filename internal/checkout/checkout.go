// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

// Package checkout sequences pickup details and payment confirmation.
package checkout

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/janderssonse/tradein/internal/domain"
)

// Phase is the visible dialog of the checkout sequence.
type Phase int

// Checkout phases in order.
const (
	PhaseClosed Phase = iota
	PhaseDetails
	PhasePayment
	PhaseSucceeded
)

func (p Phase) String() string {
	switch p {
	case PhaseClosed:
		return "closed"
	case PhaseDetails:
		return "details"
	case PhasePayment:
		return "payment"
	case PhaseSucceeded:
		return "succeeded"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Flow tracks one checkout attempt at a time.
type Flow struct {
	phase   Phase
	details domain.ContactDetails
	order   *domain.Order
	now     func() time.Time
	newID   func() string
}

// Option customizes a Flow.
type Option func(*Flow)

// WithClock overrides the order timestamp source.
func WithClock(now func() time.Time) Option {
	return func(f *Flow) {
		f.now = now
	}
}

// WithIDGenerator overrides the order ID source.
func WithIDGenerator(newID func() string) Option {
	return func(f *Flow) {
		f.newID = newID
	}
}

// New returns a closed flow.
func New(opts ...Option) *Flow {
	flow := &Flow{
		phase: PhaseClosed,
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}

	for _, opt := range opts {
		opt(flow)
	}

	return flow
}

// Phase returns the current phase.
func (f *Flow) Phase() Phase {
	return f.phase
}

// Open shows the details dialog. Opening it again is a no-op.
func (f *Flow) Open() error {
	switch f.phase {
	case PhaseClosed:
		f.phase = PhaseDetails
		f.details = domain.ContactDetails{}

		return nil
	case PhaseDetails:
		return nil
	default:
		return fmt.Errorf("%w: open checkout while %s", domain.ErrInvalidTransition, f.phase)
	}
}

// Submit validates details and moves on to payment. Invalid details keep the dialog open.
func (f *Flow) Submit(details domain.ContactDetails) error {
	if f.phase != PhaseDetails {
		return fmt.Errorf("%w: submit details while %s", domain.ErrInvalidTransition, f.phase)
	}

	if err := details.Validate(); err != nil {
		return err
	}

	f.details = details
	f.phase = PhasePayment

	return nil
}

// Details returns the submitted pickup details while payment is pending or after success.
func (f *Flow) Details() (domain.ContactDetails, bool) {
	if f.phase != PhasePayment && f.phase != PhaseSucceeded {
		return domain.ContactDetails{}, false
	}

	return f.details, true
}

// Confirm assembles the order for items and moves to the success acknowledgment.
func (f *Flow) Confirm(method domain.PaymentMethod, items []domain.CartItem) (domain.Order, error) {
	if f.phase != PhasePayment {
		return domain.Order{}, fmt.Errorf("%w: confirm payment while %s", domain.ErrInvalidTransition, f.phase)
	}

	method, err := domain.ParsePaymentMethod(string(method))
	if err != nil {
		return domain.Order{}, err
	}

	total := 0
	for _, item := range items {
		total += item.Price
	}

	order := domain.Order{
		ID:       f.newID(),
		Details:  f.details,
		Items:    slices.Clone(items),
		Total:    total,
		Payment:  method,
		PlacedAt: f.now(),
	}

	f.order = &order
	f.phase = PhaseSucceeded

	return order, nil
}

// LastOrder returns the most recently confirmed order.
func (f *Flow) LastOrder() (domain.Order, bool) {
	if f.order == nil {
		return domain.Order{}, false
	}

	return *f.order, true
}

// Cancel closes the details or payment dialog without side effects.
func (f *Flow) Cancel() error {
	switch f.phase {
	case PhaseDetails, PhasePayment:
		f.phase = PhaseClosed
		f.details = domain.ContactDetails{}

		return nil
	case PhaseClosed:
		return nil
	default:
		return fmt.Errorf("%w: cancel while %s", domain.ErrInvalidTransition, f.phase)
	}
}

// Dismiss closes the success acknowledgment.
func (f *Flow) Dismiss() error {
	if f.phase != PhaseSucceeded {
		return fmt.Errorf("%w: dismiss while %s", domain.ErrInvalidTransition, f.phase)
	}

	f.phase = PhaseClosed
	f.details = domain.ContactDetails{}

	return nil
}
