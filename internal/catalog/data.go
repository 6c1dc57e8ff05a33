// SPDX-FileCopyrightText: 2025 The Tradein Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

// DefaultBrands returns the built-in sample pricing table.
func DefaultBrands() []Brand {
	return []Brand{
		{Name: "Apple", Models: []Model{
			{Name: "iPhone 12", Price: 25000},
			{Name: "iPhone 13", Price: 40000},
			{Name: "iPhone 11 Pro Max", Price: 33900},
		}},
		{Name: "Samsung", Models: []Model{
			{Name: "Galaxy S21", Price: 22000},
			{Name: "Galaxy S22", Price: 35000},
			{Name: "Galaxy M31", Price: 20041},
		}},
		{Name: "OnePlus", Models: []Model{
			{Name: "OnePlus 9", Price: 20000},
			{Name: "OnePlus 10", Price: 32000},
		}},
		{Name: "Motorola", Models: []Model{
			{Name: "Moto G8", Price: 10000},
			{Name: "Moto G45", Price: 20000},
		}},
		{Name: "Oppo", Models: []Model{
			{Name: "Oppo A52", Price: 22000},
			{Name: "Oppo F27 Pro", Price: 18500},
		}},
		{Name: "Vivo", Models: []Model{
			{Name: "Vivo V11 Pro", Price: 20000},
			{Name: "Vivo V9 Pro", Price: 32000},
			{Name: "Vivo V15", Price: 26990},
		}},
	}
}

// Default returns a catalog built from DefaultBrands.
func Default() *Catalog {
	c, err := New(DefaultBrands())
	if err != nil {
		panic("built-in catalog is invalid: " + err.Error())
	}

	return c
}
