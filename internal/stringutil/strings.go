// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

// Package stringutil provides the string matching used by search and device detection.
package stringutil

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// NormalizeQuery trims and lower-cases free-text input.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// RuneLen counts characters, not bytes.
func RuneLen(text string) int {
	return utf8.RuneCountInString(text)
}

// ContainsIgnoreCase checks if text contains substr (case-insensitive).
func ContainsIgnoreCase(text, substr string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(substr))
}

// ContainsAnyIgnoreCase checks if text contains any of the substrings, ignoring case.
func ContainsAnyIgnoreCase(text string, substrings []string) bool {
	for _, substr := range substrings {
		if ContainsIgnoreCase(text, substr) {
			return true
		}
	}

	return false
}

// FormatAmount renders an amount with its currency prefix, e.g. "₹ 20400".
func FormatAmount(currency string, amount int) string {
	if currency == "" {
		return strconv.Itoa(amount)
	}

	return currency + " " + strconv.Itoa(amount)
}
