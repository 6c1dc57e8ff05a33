// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

package session

import (
	"slices"

	"github.com/janderssonse/tradein/internal/domain"
)

// Offer is the last calculated trade-in amount. Calculated distinguishes a zero offer from none.
type Offer struct {
	Amount     int  `json:"amount"`
	Calculated bool `json:"calculated"`
}

// Selection is what the user has picked so far in the wizard.
type Selection struct {
	Brand        string           `json:"brand,omitempty"`
	Model        string           `json:"model,omitempty"`
	ModelOptions []string         `json:"model_options,omitempty"`
	Condition    domain.Condition `json:"condition"`
	Issues       []string         `json:"issues,omitempty"`
	Offer        Offer            `json:"offer"`
}

// NewSelection returns the default selection: nothing picked, excellent condition, no issues.
func NewSelection() Selection {
	return Selection{Condition: domain.ConditionExcellent}
}

// HasModel reports whether both brand and model are set.
func (s Selection) HasModel() bool {
	return s.Brand != "" && s.Model != ""
}

// HasIssue reports whether tag is flagged.
func (s Selection) HasIssue(tag string) bool {
	return slices.Contains(s.Issues, tag)
}

// IssueCount is the number of flagged issues.
func (s Selection) IssueCount() int {
	return len(s.Issues)
}

// Title renders "<brand> <model> (<Condition>)" for the offer panel.
func (s Selection) Title() string {
	return s.Brand + " " + s.Model + " (" + s.Condition.Label() + ")"
}

func (s Selection) clone() Selection {
	s.ModelOptions = slices.Clone(s.ModelOptions)
	s.Issues = slices.Clone(s.Issues)

	return s
}

// toggleIssue flips tag, keeping insertion order of the remaining tags.
func (s *Selection) toggleIssue(tag string) bool {
	if index := slices.Index(s.Issues, tag); index >= 0 {
		s.Issues = slices.Delete(s.Issues, index, index+1)

		return false
	}

	s.Issues = append(s.Issues, tag)

	return true
}
