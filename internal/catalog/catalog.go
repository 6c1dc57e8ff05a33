// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

// Package catalog provides the static brand → model → base price table.
package catalog

import (
	"errors"
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/janderssonse/tradein/internal/domain"
	"github.com/janderssonse/tradein/internal/stringutil"
)

// MinSearchLength is the shortest query that produces search results.
const MinSearchLength = 2

const searchCacheSize = 128

var (
	// ErrEmptyCatalog is returned when a catalog has no brands.
	ErrEmptyCatalog = errors.New("catalog has no brands")
	// ErrDuplicateEntry is returned when a brand or model is declared twice.
	ErrDuplicateEntry = errors.New("duplicate catalog entry")
	// ErrInvalidPrice is returned for negative base prices.
	ErrInvalidPrice = errors.New("invalid base price")
	// ErrUnnamedEntry is returned when a brand or model has an empty name.
	ErrUnnamedEntry = errors.New("unnamed catalog entry")
)

// Model is a single priced device.
type Model struct {
	Name  string `toml:"name"`
	Price int    `toml:"price"`
}

// Brand groups models in declaration order.
type Brand struct {
	Name   string  `toml:"name"`
	Models []Model `toml:"models"`
}

// Match is a search hit.
type Match struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
	Price int    `json:"price"`
}

// Title renders "<brand> <model>".
func (m Match) Title() string {
	return m.Brand + " " + m.Model
}

// Catalog is immutable after construction and safe to share.
type Catalog struct {
	brands []Brand
	index  map[string]int
	cache  *lru.Cache[string, []Match]
}

// New validates brands and builds a catalog preserving their order.
func New(brands []Brand) (*Catalog, error) {
	if len(brands) == 0 {
		return nil, ErrEmptyCatalog
	}

	index := make(map[string]int, len(brands))
	owned := make([]Brand, 0, len(brands))

	for position, brand := range brands {
		if brand.Name == "" {
			return nil, fmt.Errorf("%w: brand #%d", ErrUnnamedEntry, position+1)
		}

		if _, exists := index[brand.Name]; exists {
			return nil, fmt.Errorf("%w: brand %q", ErrDuplicateEntry, brand.Name)
		}

		seen := make(map[string]bool, len(brand.Models))

		for _, model := range brand.Models {
			if model.Name == "" {
				return nil, fmt.Errorf("%w: model under %q", ErrUnnamedEntry, brand.Name)
			}

			if seen[model.Name] {
				return nil, fmt.Errorf("%w: model %q under %q", ErrDuplicateEntry, model.Name, brand.Name)
			}

			if model.Price < 0 {
				return nil, fmt.Errorf("%w: %s %s = %d", ErrInvalidPrice, brand.Name, model.Name, model.Price)
			}

			seen[model.Name] = true
		}

		index[brand.Name] = position
		owned = append(owned, Brand{Name: brand.Name, Models: slices.Clone(brand.Models)})
	}

	cache, err := lru.New[string, []Match](searchCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create search cache: %w", err)
	}

	return &Catalog{brands: owned, index: index, cache: cache}, nil
}

// Brands returns brand names in declaration order.
func (c *Catalog) Brands() []string {
	names := make([]string, 0, len(c.brands))
	for _, brand := range c.brands {
		names = append(names, brand.Name)
	}

	return names
}

// HasBrand reports whether brand is in the catalog.
func (c *Catalog) HasBrand(brand string) bool {
	_, ok := c.index[brand]

	return ok
}

// Models returns the model names of brand in declaration order, or nil for an unknown brand.
func (c *Catalog) Models(brand string) []string {
	position, ok := c.index[brand]
	if !ok {
		return nil
	}

	models := c.brands[position].Models
	names := make([]string, 0, len(models))

	for _, model := range models {
		names = append(names, model.Name)
	}

	return names
}

// Price returns the base price of a model.
func (c *Catalog) Price(brand, model string) (int, error) {
	position, ok := c.index[brand]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownBrand, brand)
	}

	for _, candidate := range c.brands[position].Models {
		if candidate.Name == model {
			return candidate.Price, nil
		}
	}

	return 0, fmt.Errorf("%w: %q under %q", domain.ErrUnknownModel, model, brand)
}

// Search matches model names case-insensitively across every brand.
// Queries shorter than MinSearchLength return nothing.
func (c *Catalog) Search(query string) []Match {
	normalized := stringutil.NormalizeQuery(query)
	if stringutil.RuneLen(normalized) < MinSearchLength {
		return nil
	}

	if cached, ok := c.cache.Get(normalized); ok {
		return slices.Clone(cached)
	}

	var matches []Match

	for _, brand := range c.brands {
		for _, model := range brand.Models {
			if stringutil.ContainsIgnoreCase(model.Name, normalized) {
				matches = append(matches, Match{Brand: brand.Name, Model: model.Name, Price: model.Price})
			}
		}
	}

	c.cache.Add(normalized, matches)

	return slices.Clone(matches)
}

// Entries returns a copy of the full table.
func (c *Catalog) Entries() []Brand {
	entries := make([]Brand, 0, len(c.brands))
	for _, brand := range c.brands {
		entries = append(entries, Brand{Name: brand.Name, Models: slices.Clone(brand.Models)})
	}

	return entries
}
