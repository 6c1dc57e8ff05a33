// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog_test

import (
	"testing"

	"github.com/janderssonse/tradein/internal/catalog"
	"github.com/janderssonse/tradein/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_BrandsInDeclaredOrder(t *testing.T) {
	t.Parallel()

	c := catalog.Default()

	assert.Equal(t, []string{"Apple", "Samsung", "OnePlus", "Motorola", "Oppo", "Vivo"}, c.Brands())
}

func TestCatalog_Models(t *testing.T) {
	t.Parallel()

	c := catalog.Default()

	tests := []struct {
		name     string
		brand    string
		expected []string
	}{
		{
			name:     "samsung models in declared order",
			brand:    "Samsung",
			expected: []string{"Galaxy S21", "Galaxy S22", "Galaxy M31"},
		},
		{
			name:     "apple models in declared order",
			brand:    "Apple",
			expected: []string{"iPhone 12", "iPhone 13", "iPhone 11 Pro Max"},
		},
		{
			name:     "unknown brand yields nothing",
			brand:    "Nokia",
			expected: nil,
		},
		{
			name:     "brand lookup is exact",
			brand:    "samsung",
			expected: nil,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, c.Models(testCase.brand))
		})
	}
}

func TestCatalog_Price(t *testing.T) {
	t.Parallel()

	c := catalog.Default()

	price, err := c.Price("Apple", "iPhone 13")
	require.NoError(t, err)
	assert.Equal(t, 40000, price)

	price, err = c.Price("Samsung", "Galaxy M31")
	require.NoError(t, err)
	assert.Equal(t, 20041, price)

	_, err = c.Price("Nokia", "3310")
	require.ErrorIs(t, err, domain.ErrUnknownBrand)

	_, err = c.Price("Apple", "Galaxy S21")
	require.ErrorIs(t, err, domain.ErrUnknownModel)
}

func TestCatalog_Search(t *testing.T) {
	t.Parallel()

	c := catalog.Default()

	galaxy := []catalog.Match{
		{Brand: "Samsung", Model: "Galaxy S21", Price: 22000},
		{Brand: "Samsung", Model: "Galaxy S22", Price: 35000},
		{Brand: "Samsung", Model: "Galaxy M31", Price: 20041},
	}

	tests := []struct {
		name     string
		query    string
		expected []catalog.Match
	}{
		{name: "lower case", query: "galaxy", expected: galaxy},
		{name: "upper case", query: "GALAXY", expected: galaxy},
		{name: "mixed case with spaces", query: "  GaLaXy ", expected: galaxy},
		{name: "single character is ignored", query: "g", expected: nil},
		{name: "single character after trim is ignored", query: "  g  ", expected: nil},
		{name: "empty query", query: "", expected: nil},
		{
			name:  "matches across brands",
			query: "pro",
			expected: []catalog.Match{
				{Brand: "Apple", Model: "iPhone 11 Pro Max", Price: 33900},
				{Brand: "Oppo", Model: "Oppo F27 Pro", Price: 18500},
				{Brand: "Vivo", Model: "Vivo V11 Pro", Price: 20000},
				{Brand: "Vivo", Model: "Vivo V9 Pro", Price: 32000},
			},
		},
		{name: "brand names are not searched", query: "samsung", expected: nil},
		{name: "no hits", query: "pixel", expected: nil},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, c.Search(testCase.query))
		})
	}
}

func TestCatalog_SearchResultsAreCopies(t *testing.T) {
	t.Parallel()

	c := catalog.Default()

	first := c.Search("iphone")
	require.NotEmpty(t, first)

	first[0].Model = "tampered"

	second := c.Search("iphone")
	assert.Equal(t, "iPhone 12", second[0].Model)
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		brands  []catalog.Brand
		wantErr error
	}{
		{
			name:    "empty catalog",
			brands:  nil,
			wantErr: catalog.ErrEmptyCatalog,
		},
		{
			name: "duplicate brand",
			brands: []catalog.Brand{
				{Name: "Apple", Models: []catalog.Model{{Name: "iPhone 12", Price: 1}}},
				{Name: "Apple", Models: []catalog.Model{{Name: "iPhone 13", Price: 1}}},
			},
			wantErr: catalog.ErrDuplicateEntry,
		},
		{
			name: "duplicate model",
			brands: []catalog.Brand{
				{Name: "Apple", Models: []catalog.Model{{Name: "iPhone 12", Price: 1}, {Name: "iPhone 12", Price: 2}}},
			},
			wantErr: catalog.ErrDuplicateEntry,
		},
		{
			name: "negative price",
			brands: []catalog.Brand{
				{Name: "Apple", Models: []catalog.Model{{Name: "iPhone 12", Price: -1}}},
			},
			wantErr: catalog.ErrInvalidPrice,
		},
		{
			name: "unnamed brand",
			brands: []catalog.Brand{
				{Name: "", Models: []catalog.Model{{Name: "iPhone 12", Price: 1}}},
			},
			wantErr: catalog.ErrUnnamedEntry,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := catalog.New(testCase.brands)
			require.ErrorIs(t, err, testCase.wantErr)
		})
	}
}

func TestNew_ZeroPriceIsAllowed(t *testing.T) {
	t.Parallel()

	c, err := catalog.New([]catalog.Brand{
		{Name: "Promo", Models: []catalog.Model{{Name: "Free Phone", Price: 0}}},
	})
	require.NoError(t, err)

	price, err := c.Price("Promo", "Free Phone")
	require.NoError(t, err)
	assert.Zero(t, price)
}

func TestNew_CopiesInput(t *testing.T) {
	t.Parallel()

	brands := []catalog.Brand{
		{Name: "Apple", Models: []catalog.Model{{Name: "iPhone 12", Price: 25000}}},
	}

	c, err := catalog.New(brands)
	require.NoError(t, err)

	brands[0].Models[0].Price = 1

	price, err := c.Price("Apple", "iPhone 12")
	require.NoError(t, err)
	assert.Equal(t, 25000, price)
}

func TestCatalog_EntriesAreCopies(t *testing.T) {
	t.Parallel()

	c := catalog.Default()

	entries := c.Entries()
	require.Len(t, entries, len(c.Brands()))
	assert.Equal(t, "Samsung", entries[1].Name)
	assert.Len(t, entries[1].Models, 3)

	entries[0].Models[0].Price = 1

	price, err := c.Price("Apple", "iPhone 12")
	require.NoError(t, err)
	assert.Equal(t, 25000, price)
}
