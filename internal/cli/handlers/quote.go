// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

package handlers

import (
	"strconv"
	"strings"

	"github.com/janderssonse/tradein/internal/domain"
	"github.com/janderssonse/tradein/internal/stringutil"
)

// QuoteRequest is the input of the quote command.
type QuoteRequest struct {
	Brand     string
	Model     string
	Condition string
	Issues    []string
}

// Quote is the result of the quote command.
type Quote struct {
	Brand     string           `json:"brand"`
	Model     string           `json:"model"`
	Condition domain.Condition `json:"condition"`
	Issues    []string         `json:"issues"`
	BasePrice int              `json:"base_price"`
	Offer     int              `json:"offer"`
	Currency  string           `json:"currency"`
}

// Title renders "<brand> <model> (<Condition>)".
func (q Quote) Title() string {
	return q.Brand + " " + q.Model + " (" + q.Condition.Label() + ")"
}

// Quote drives a session through selection and condition and prints the offer.
func (h *BaseHandler) Quote(req QuoteRequest) (Quote, error) {
	quote, err := h.calculate(req)
	if err != nil {
		return Quote{}, err
	}

	output := h.GetOutput()

	switch {
	case output.JSON:
		output.JSONResult("success", map[string]any{"quote": quote})
	case output.Plain:
		output.PlainKeyValue("brand", quote.Brand)
		output.PlainKeyValue("model", quote.Model)
		output.PlainKeyValue("condition", string(quote.Condition))
		output.PlainKeyValue("issues", strings.Join(quote.Issues, ","))
		output.PlainKeyValue("base_price", strconv.Itoa(quote.BasePrice))
		output.PlainKeyValue("offer", strconv.Itoa(quote.Offer))
	default:
		output.Progressf("Base price %s", stringutil.FormatAmount(h.Currency, quote.BasePrice))
		output.Result(quote.Title() + ": " + output.Bold(stringutil.FormatAmount(h.Currency, quote.Offer)))
	}

	return quote, nil
}

func (h *BaseHandler) calculate(req QuoteRequest) (Quote, error) {
	condition := domain.ConditionExcellent

	if req.Condition != "" {
		parsed, err := domain.ParseCondition(req.Condition)
		if err != nil {
			return Quote{}, err
		}

		condition = parsed
	}

	issues := make([]string, 0, len(req.Issues))

	for _, raw := range req.Issues {
		tag, err := domain.ParseIssue(raw)
		if err != nil {
			return Quote{}, err
		}

		issues = append(issues, tag)
	}

	sess := h.NewSession()

	if err := sess.SelectBrand(req.Brand); err != nil {
		return Quote{}, err
	}

	if err := sess.SelectModel(req.Model); err != nil {
		return Quote{}, err
	}

	if err := sess.SetCondition(condition); err != nil {
		return Quote{}, err
	}

	for _, tag := range issues {
		if sess.Selection().HasIssue(tag) {
			continue
		}

		if _, err := sess.ToggleIssue(tag); err != nil {
			return Quote{}, err
		}
	}

	offer, err := sess.Calculate()
	if err != nil {
		return Quote{}, err
	}

	selection := sess.Selection()

	base, err := h.Catalog.Price(selection.Brand, selection.Model)
	if err != nil {
		return Quote{}, err
	}

	return Quote{
		Brand:     selection.Brand,
		Model:     selection.Model,
		Condition: selection.Condition,
		Issues:    selection.Issues,
		BasePrice: base,
		Offer:     offer,
		Currency:  h.Currency,
	}, nil
}
