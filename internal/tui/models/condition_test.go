// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/janderssonse/tradein/internal/domain"
	"github.com/janderssonse/tradein/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func conditionSession(t *testing.T) *session.Session {
	t.Helper()

	sess := newTestSession(t)
	require.NoError(t, sess.SelectBrand("Apple"))
	require.NoError(t, sess.SelectModel("iPhone 13"))
	require.NoError(t, sess.Advance())

	return sess
}

func TestConditionRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		downs     int
		condition domain.Condition
		issue     string
	}{
		{name: "good", downs: 1, condition: domain.ConditionGood},
		{name: "fair", downs: 2, condition: domain.ConditionFair},
		{name: "screen issue", downs: 3, condition: domain.ConditionExcellent, issue: "screen"},
		{name: "charging issue", downs: 7, condition: domain.ConditionExcellent, issue: "charging"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sess := conditionSession(t)
			model := NewCondition(testStyles(), sess)

			for range tt.downs {
				model.Update(keyDown)
			}

			require.NoError(t, intentErr(t, press(t, model, keySpace)))
			assert.Equal(t, tt.condition, sess.Selection().Condition)

			if tt.issue != "" {
				assert.True(t, sess.Selection().HasIssue(tt.issue))
			}
		})
	}
}

func TestConditionToggleIssueTwiceClears(t *testing.T) {
	t.Parallel()

	sess := conditionSession(t)
	model := NewCondition(testStyles(), sess)

	press(t, model, keyDown, keyDown, keyDown, keyEnter, keyEnter)
	assert.Zero(t, sess.Selection().IssueCount())
}

func TestConditionCursorClamps(t *testing.T) {
	t.Parallel()

	model := NewCondition(testStyles(), conditionSession(t))

	for range 20 {
		model.Update(keyDown)
	}

	assert.Equal(t, 7, model.Cursor())

	press(t, model, keyUp)
	assert.Equal(t, 6, model.Cursor())
}

func TestConditionNextCalculatesOffer(t *testing.T) {
	t.Parallel()

	sess := conditionSession(t)
	model := NewCondition(testStyles(), sess)

	press(t, model, keyDown, keyDown, keySpace, keyDown, keySpace)
	require.NoError(t, intentErr(t, press(t, model, runes("n"))))

	assert.Equal(t, session.StepOffer, sess.Step())
	assert.Equal(t, 20400, sess.Selection().Offer.Amount)
}

func TestConditionBack(t *testing.T) {
	t.Parallel()

	sess := conditionSession(t)
	model := NewCondition(testStyles(), sess)

	require.NoError(t, intentErr(t, press(t, model, runes("b"))))
	assert.Equal(t, session.StepSelect, sess.Step())
	assert.Equal(t, "iPhone 13", sess.Selection().Model)
}

func TestConditionView(t *testing.T) {
	t.Parallel()

	view := ansi.Strip(NewCondition(testStyles(), conditionSession(t)).View())

	assert.Contains(t, view, "How is your Apple iPhone 13?")
	assert.Contains(t, view, "(•)")
	assert.Contains(t, view, "Excellent")
	assert.Contains(t, view, "Known issues")
	assert.Contains(t, view, "Weak battery")
}
