// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

package domain_test

import (
	"testing"

	"github.com/janderssonse/tradein/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCondition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected domain.Condition
		wantErr  bool
	}{
		{input: "excellent", expected: domain.ConditionExcellent},
		{input: " Good ", expected: domain.ConditionGood},
		{input: "FAIR", expected: domain.ConditionFair},
		{input: "broken", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			condition, err := domain.ParseCondition(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, domain.ErrUnknownCondition)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, condition)
		})
	}
}

func TestConditionLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Excellent", domain.ConditionExcellent.Label())
	assert.Equal(t, "Good", domain.ConditionGood.Label())
	assert.Equal(t, "Fair", domain.ConditionFair.Label())
}

func TestParseIssue(t *testing.T) {
	t.Parallel()

	tag, err := domain.ParseIssue(" Battery")
	require.NoError(t, err)
	assert.Equal(t, "battery", tag)

	_, err = domain.ParseIssue("keyboard")
	require.ErrorIs(t, err, domain.ErrUnknownIssue)

	tags := make([]string, 0, len(domain.Issues()))
	for _, issue := range domain.Issues() {
		tags = append(tags, issue.Tag)
	}

	assert.Equal(t, []string{"screen", "battery", "camera", "audio", "charging"}, tags)
}

func TestContactDetails_Validate(t *testing.T) {
	t.Parallel()

	complete := domain.ContactDetails{Name: "A", Phone: "1", Address: "X", Date: "2025-01-01"}
	require.NoError(t, complete.Validate())
	assert.Empty(t, complete.MissingFields())

	blank := domain.ContactDetails{Name: " ", Phone: "1", Address: "", Date: "2025-01-01"}
	err := blank.Validate()
	require.ErrorIs(t, err, domain.ErrIncompleteForm)
	assert.Equal(t, []string{"name", "address"}, blank.MissingFields())
	assert.Contains(t, err.Error(), "name, address")
}

func TestParsePaymentMethod(t *testing.T) {
	t.Parallel()

	method, err := domain.ParsePaymentMethod("UPI")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentUPI, method)
	assert.Equal(t, "UPI", method.Label())

	assert.Equal(t, "Cash on Delivery", domain.PaymentCashOnDelivery.Label())
	assert.Equal(t, "Bank Transfer", domain.PaymentBankTransfer.Label())

	_, err = domain.ParsePaymentMethod("cheque")
	require.ErrorIs(t, err, domain.ErrUnknownPaymentMethod)
}

func TestCartItemTitle(t *testing.T) {
	t.Parallel()

	item := domain.CartItem{Brand: "Samsung", Model: "Galaxy S22"}
	assert.Equal(t, "Samsung Galaxy S22", item.Title())
}

func TestCapitalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "", expected: ""},
		{input: "fair", expected: "Fair"},
		{input: "bank transfer", expected: "Bank transfer"},
		{input: "iPhone", expected: "IPhone"},
		{input: "éclair", expected: "Éclair"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, domain.Capitalize(tt.input))
		})
	}
}
