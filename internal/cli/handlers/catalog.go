// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

package handlers

import (
	"fmt"
	"strconv"

	"github.com/janderssonse/tradein/internal/catalog"
	"github.com/janderssonse/tradein/internal/domain"
	"github.com/janderssonse/tradein/internal/stringutil"
)

// ModelPrice is one row of the models listing.
type ModelPrice struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// Brands lists every brand in catalog order.
func (h *BaseHandler) Brands() error {
	output := h.GetOutput()
	brands := h.Catalog.Brands()

	switch {
	case output.JSON:
		output.JSONResult("success", map[string]any{"brands": brands})
	case output.Plain:
		output.PlainList(brands)
	default:
		output.Result(output.Header("Brands"))

		for _, entry := range h.Catalog.Entries() {
			output.Result("  " + entry.Name + " (" + strconv.Itoa(len(entry.Models)) + " models)")
		}
	}

	return nil
}

// Models lists the models of brand with their base prices.
func (h *BaseHandler) Models(brand string) error {
	if !h.Catalog.HasBrand(brand) {
		return fmt.Errorf("%w: %q", domain.ErrUnknownBrand, brand)
	}

	names := h.Catalog.Models(brand)
	models := make([]ModelPrice, 0, len(names))

	for _, name := range names {
		price, err := h.Catalog.Price(brand, name)
		if err != nil {
			return err
		}

		models = append(models, ModelPrice{Name: name, Price: price})
	}

	output := h.GetOutput()

	switch {
	case output.JSON:
		output.JSONResult("success", map[string]any{"brand": brand, "models": models})
	case output.Plain:
		for _, model := range models {
			output.PlainKeyValue(model.Name, strconv.Itoa(model.Price))
		}
	default:
		rows := [][]string{{"MODEL", "BASE PRICE"}}
		for _, model := range models {
			rows = append(rows, []string{model.Name, stringutil.FormatAmount(h.Currency, model.Price)})
		}

		output.Table(rows)
	}

	return nil
}

// Search prints the models whose name contains query.
func (h *BaseHandler) Search(query string) error {
	output := h.GetOutput()

	if stringutil.RuneLen(stringutil.NormalizeQuery(query)) < catalog.MinSearchLength {
		output.Warningf("Type at least %d characters to search", catalog.MinSearchLength)
	}

	matches := h.Catalog.Search(query)

	switch {
	case output.JSON:
		output.JSONResult("success", map[string]any{"query": query, "matches": matches})
	case output.Plain:
		for _, match := range matches {
			output.PlainKeyValue(match.Title(), strconv.Itoa(match.Price))
		}
	case len(matches) == 0:
		output.Warningf("No models match %q", query)
	default:
		rows := [][]string{{"BRAND", "MODEL", "BASE PRICE"}}
		for _, match := range matches {
			rows = append(rows, []string{match.Brand, match.Model, stringutil.FormatAmount(h.Currency, match.Price)})
		}

		output.Table(rows)
	}

	return nil
}
