// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

// Package sniffer guesses the phone family from a client identification string.
package sniffer

import "github.com/janderssonse/tradein/internal/stringutil"

// Kind is the detected device family.
type Kind int

// Detection outcomes.
const (
	KindUnknown Kind = iota
	KindApple
	KindSamsung
)

func (k Kind) String() string {
	switch k {
	case KindApple:
		return "apple"
	case KindSamsung:
		return "samsung"
	default:
		return "unknown"
	}
}

var (
	appleMarkers   = []string{"iphone"}
	samsungMarkers = []string{"samsung", "sm-", "galaxy"}
)

// Result is an advisory detection outcome. It never selects anything on its own.
type Result struct {
	Kind   Kind   `json:"-"`
	Client string `json:"client"`
}

// Detect classifies client. Apple markers win when both families match.
func Detect(client string) Result {
	result := Result{Kind: KindUnknown, Client: client}

	switch {
	case stringutil.ContainsAnyIgnoreCase(client, appleMarkers):
		result.Kind = KindApple
	case stringutil.ContainsAnyIgnoreCase(client, samsungMarkers):
		result.Kind = KindSamsung
	}

	return result
}

// Message is the fixed text shown for the outcome.
func (r Result) Message() string {
	switch r.Kind {
	case KindApple:
		return "We detected: Apple iPhone"
	case KindSamsung:
		return "We detected: Samsung device"
	default:
		return "Sorry, we couldn’t auto-detect your phone."
	}
}

// Brand is the suggested catalog brand, or "" when unknown.
func (r Result) Brand() string {
	switch r.Kind {
	case KindApple:
		return "Apple"
	case KindSamsung:
		return "Samsung"
	default:
		return ""
	}
}

// Detected reports whether a family was recognized.
func (r Result) Detected() bool {
	return r.Kind != KindUnknown
}
