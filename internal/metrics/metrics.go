// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

// Package metrics counts trade-in activity on a private Prometheus registry.
package metrics

import (
	"errors"
	"fmt"

	"github.com/janderssonse/tradein/internal/domain"
	"github.com/janderssonse/tradein/internal/session"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles Prometheus collectors for a session.
type Metrics struct {
	Registry        *prometheus.Registry
	OffersTotal     *prometheus.CounterVec
	OfferAmount     prometheus.Histogram
	CartItemsTotal  prometheus.Counter
	BlockedTotal    *prometheus.CounterVec
	OrdersTotal     *prometheus.CounterVec
	OrderValueTotal prometheus.Counter
}

// NewMetrics constructs and registers all metrics on a dedicated registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	offers := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradein_offers_calculated_total",
			Help: "Total offers calculated by device condition.",
		},
		[]string{"condition"},
	)
	offerAmount := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tradein_offer_amount",
			Help:    "Calculated offer amounts in currency units.",
			Buckets: prometheus.ExponentialBuckets(5000, 2, 6),
		},
	)
	cartItems := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tradein_cart_items_added_total",
			Help: "Total devices added to the cart.",
		},
	)
	blocked := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradein_blocked_actions_total",
			Help: "Total user actions blocked by kind.",
		},
		[]string{"kind"},
	)
	orders := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradein_orders_confirmed_total",
			Help: "Total orders confirmed by payment method.",
		},
		[]string{"payment"},
	)
	orderValue := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tradein_order_value_total",
			Help: "Sum of confirmed order totals in currency units.",
		},
	)

	registry.MustRegister(offers, offerAmount, cartItems, blocked, orders, orderValue)

	return &Metrics{
		Registry:        registry,
		OffersTotal:     offers,
		OfferAmount:     offerAmount,
		CartItemsTotal:  cartItems,
		BlockedTotal:    blocked,
		OrdersTotal:     orders,
		OrderValueTotal: orderValue,
	}
}

// ObserveOffer records a calculated offer.
func (m *Metrics) ObserveOffer(condition domain.Condition, amount int) {
	if m == nil {
		return
	}

	m.OffersTotal.WithLabelValues(string(condition)).Inc()
	m.OfferAmount.Observe(float64(amount))
}

// IncCartItems increments the cart items counter.
func (m *Metrics) IncCartItems() {
	if m == nil {
		return
	}

	m.CartItemsTotal.Inc()
}

// IncBlocked increments the blocked actions counter for err's kind.
func (m *Metrics) IncBlocked(err error) {
	if m == nil {
		return
	}

	m.BlockedTotal.WithLabelValues(BlockedKind(err)).Inc()
}

// ObserveOrder records a confirmed order.
func (m *Metrics) ObserveOrder(order domain.Order) {
	if m == nil {
		return
	}

	m.OrdersTotal.WithLabelValues(string(order.Payment)).Inc()
	m.OrderValueTotal.Add(float64(order.Total))
}

// Observer feeds session events into the collectors.
func (m *Metrics) Observer() session.Observer {
	return func(event session.Event) {
		switch event.Kind {
		case session.EventOfferCalculated:
			m.ObserveOffer(event.Condition, event.Amount)
		case session.EventItemAdded:
			m.IncCartItems()
		case session.EventOrderConfirmed:
			m.ObserveOrder(event.Order)
		case session.EventBlocked:
			m.IncBlocked(event.Err)
		}
	}
}

// WriteFile writes the registry in text exposition format.
func (m *Metrics) WriteFile(path string) error {
	if m == nil || path == "" {
		return nil
	}

	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}

	return nil
}

// BlockedKind maps an error to a low-cardinality label value.
func BlockedKind(err error) string {
	kinds := []struct {
		target error
		label  string
	}{
		{domain.ErrMissingSelection, "missing_selection"},
		{domain.ErrIncompleteForm, "incomplete_form"},
		{domain.ErrInvalidTransition, "invalid_transition"},
		{domain.ErrUnknownBrand, "unknown_brand"},
		{domain.ErrUnknownModel, "unknown_model"},
		{domain.ErrUnknownCondition, "unknown_condition"},
		{domain.ErrUnknownIssue, "unknown_issue"},
		{domain.ErrUnknownPaymentMethod, "unknown_payment_method"},
	}

	for _, kind := range kinds {
		if errors.Is(err, kind.target) {
			return kind.label
		}
	}

	return "other"
}
