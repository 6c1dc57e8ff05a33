// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

package sniffer_test

import (
	"testing"

	"github.com/janderssonse/tradein/internal/sniffer"
	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		client  string
		kind    sniffer.Kind
		brand   string
		message string
	}{
		{
			name:    "iphone safari",
			client:  "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)",
			kind:    sniffer.KindApple,
			brand:   "Apple",
			message: "We detected: Apple iPhone",
		},
		{
			name:    "lower case iphone",
			client:  "iphone",
			kind:    sniffer.KindApple,
			brand:   "Apple",
			message: "We detected: Apple iPhone",
		},
		{
			name:    "samsung browser",
			client:  "Mozilla/5.0 (Linux; Android 13) SamsungBrowser/21.0",
			kind:    sniffer.KindSamsung,
			brand:   "Samsung",
			message: "We detected: Samsung device",
		},
		{
			name:    "model code",
			client:  "Mozilla/5.0 (Linux; Android 12; SM-G991B)",
			kind:    sniffer.KindSamsung,
			brand:   "Samsung",
			message: "We detected: Samsung device",
		},
		{
			name:    "galaxy",
			client:  "galaxy s22",
			kind:    sniffer.KindSamsung,
			brand:   "Samsung",
			message: "We detected: Samsung device",
		},
		{
			name:    "pixel",
			client:  "Mozilla/5.0 (Linux; Android 14; Pixel 8)",
			kind:    sniffer.KindUnknown,
			message: "Sorry, we couldn’t auto-detect your phone.",
		},
		{
			name:    "empty",
			client:  "",
			kind:    sniffer.KindUnknown,
			message: "Sorry, we couldn’t auto-detect your phone.",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			result := sniffer.Detect(testCase.client)
			assert.Equal(t, testCase.kind, result.Kind)
			assert.Equal(t, testCase.brand, result.Brand())
			assert.Equal(t, testCase.message, result.Message())
			assert.Equal(t, testCase.kind != sniffer.KindUnknown, result.Detected())
		})
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "apple", sniffer.KindApple.String())
	assert.Equal(t, "samsung", sniffer.KindSamsung.String())
	assert.Equal(t, "unknown", sniffer.KindUnknown.String())
}
