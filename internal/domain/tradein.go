// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

// Package domain holds the trade-in vocabulary shared by every other package.
package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Condition is the self-reported physical condition of a device.
type Condition string

// Supported conditions, best first.
const (
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
)

// Conditions returns every condition in display order.
func Conditions() []Condition {
	return []Condition{ConditionExcellent, ConditionGood, ConditionFair}
}

// ParseCondition maps user input to a Condition.
func ParseCondition(raw string) (Condition, error) {
	normalized := Condition(strings.ToLower(strings.TrimSpace(raw)))
	for _, condition := range Conditions() {
		if normalized == condition {
			return condition, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownCondition, raw)
}

// Label returns the capitalized condition, e.g. "Fair".
func (c Condition) Label() string {
	return Capitalize(string(c))
}

// Issue is a known defect tag a user can flag.
type Issue struct {
	Tag   string
	Label string
}

// Issues returns the defect checklist shown in the condition step.
func Issues() []Issue {
	return []Issue{
		{Tag: "screen", Label: "Cracked or scratched screen"},
		{Tag: "battery", Label: "Weak battery"},
		{Tag: "camera", Label: "Camera not working"},
		{Tag: "audio", Label: "Speaker or microphone issue"},
		{Tag: "charging", Label: "Charging port issue"},
	}
}

// ParseIssue maps user input to a known issue tag.
func ParseIssue(raw string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for _, issue := range Issues() {
		if normalized == issue.Tag {
			return issue.Tag, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownIssue, raw)
}

// CartItem is a frozen snapshot of an accepted offer.
type CartItem struct {
	ID        string    `json:"id"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Condition Condition `json:"condition"`
	Price     int       `json:"price"`
}

// Title renders "<brand> <model>".
func (i CartItem) Title() string {
	return i.Brand + " " + i.Model
}

// ContactDetails are the pickup details collected at checkout.
type ContactDetails struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Date    string `json:"date"`
}

// MissingFields returns the names of fields that are blank after trimming.
func (d ContactDetails) MissingFields() []string {
	fields := []struct {
		name  string
		value string
	}{
		{"name", d.Name},
		{"phone", d.Phone},
		{"address", d.Address},
		{"date", d.Date},
	}

	var missing []string

	for _, field := range fields {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}

	return missing
}

// Validate reports ErrIncompleteForm when any field is blank.
func (d ContactDetails) Validate() error {
	if missing := d.MissingFields(); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrIncompleteForm, strings.Join(missing, ", "))
	}

	return nil
}

// PaymentMethod is how the customer wants to be paid for the devices.
type PaymentMethod string

// Supported payment methods; cash on delivery is the default.
const (
	PaymentCashOnDelivery PaymentMethod = "cod"
	PaymentUPI            PaymentMethod = "upi"
	PaymentBankTransfer   PaymentMethod = "bank"
)

// PaymentMethods returns every payment method in display order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentCashOnDelivery, PaymentUPI, PaymentBankTransfer}
}

// ParsePaymentMethod maps user input to a PaymentMethod.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	normalized := PaymentMethod(strings.ToLower(strings.TrimSpace(raw)))
	for _, method := range PaymentMethods() {
		if normalized == method {
			return method, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, raw)
}

// Label returns the human readable payment method name.
func (p PaymentMethod) Label() string {
	switch p {
	case PaymentCashOnDelivery:
		return "Cash on Delivery"
	case PaymentUPI:
		return "UPI"
	case PaymentBankTransfer:
		return "Bank Transfer"
	default:
		return string(p)
	}
}

// Order is assembled when payment is confirmed. It is shown, never stored.
type Order struct {
	ID       string         `json:"id"`
	Details  ContactDetails `json:"details"`
	Items    []CartItem     `json:"items"`
	Total    int            `json:"total"`
	Payment  PaymentMethod  `json:"payment"`
	PlacedAt time.Time      `json:"placed_at"`
}

// Capitalize upper-cases the first letter of s and leaves the rest untouched.
func Capitalize(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return cases.Upper(language.English).String(s[:size]) + s[size:]
}
