// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

// Package pricing computes trade-in offers.
package pricing

import (
	"math"

	"github.com/janderssonse/tradein/internal/domain"
)

// IssueMultiplier applies once when any issue is flagged, regardless of how many.
const IssueMultiplier = 0.85

// ConditionMultiplier returns the discount factor for a condition.
// Unknown conditions are treated as excellent.
func ConditionMultiplier(condition domain.Condition) float64 {
	switch condition {
	case domain.ConditionGood:
		return 0.8
	case domain.ConditionFair:
		return 0.6
	default:
		return 1.0
	}
}

// ComputeOffer applies the condition discount, then the issue discount, and rounds once.
func ComputeOffer(basePrice int, condition domain.Condition, issueCount int) int {
	offer := float64(basePrice) * ConditionMultiplier(condition)
	if issueCount > 0 {
		offer *= IssueMultiplier
	}

	return int(math.Round(offer))
}
