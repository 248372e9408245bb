package model

import "github.com/rotisserie/eris"

// Category is one of the four income/mortality quadrant labels.
type Category string

const (
	CategoryLowIncomeLowDeath   Category = "Low Income, Low Death Rate"
	CategoryLowIncomeHighDeath  Category = "Low Income, High Death Rate"
	CategoryHighIncomeLowDeath  Category = "High Income, Low Death Rate"
	CategoryHighIncomeHighDeath Category = "High Income, High Death Rate"
)

// Categories lists the four quadrants in their fixed ordinal order. The
// choropleth color scale depends on this order, so it must not change.
var Categories = []Category{
	CategoryLowIncomeLowDeath,
	CategoryLowIncomeHighDeath,
	CategoryHighIncomeLowDeath,
	CategoryHighIncomeHighDeath,
}

// Ordinal returns the stable 1-4 encoding used by the renderer's color
// scale. Returns 0 for an unknown category.
func (c Category) Ordinal() int {
	for i, cat := range Categories {
		if cat == c {
			return i + 1
		}
	}
	return 0
}

// CategoryFromOrdinal is the inverse of Ordinal.
func CategoryFromOrdinal(n int) (Category, error) {
	if n < 1 || n > len(Categories) {
		return "", eris.Errorf("model: ordinal %d out of range 1-%d", n, len(Categories))
	}
	return Categories[n-1], nil
}
