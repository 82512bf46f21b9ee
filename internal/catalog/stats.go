package catalog

import "github.com/zohir26/IC-sub001/internal/models"

type PriceRange struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
}

type Stats struct {
	Categories int        `json:"categories"`
	Types      int        `json:"types"`
	PriceRange PriceRange `json:"priceRange"`
}

// statsAccumulator gathers distinct category/type values and price bounds.
// Prices must be strictly positive to count: zero or missing prices are
// excluded from the bounds and the average, not treated as zero.
type statsAccumulator struct {
	categories map[string]struct{}
	types      map[string]struct{}
	min        float64
	max        float64
	sum        float64
	priced     int
}

func newStatsAccumulator() *statsAccumulator {
	return &statsAccumulator{
		categories: make(map[string]struct{}),
		types:      make(map[string]struct{}),
	}
}

func (a *statsAccumulator) add(category, productType string, price float64) {
	if category != "" {
		a.categories[category] = struct{}{}
	}
	if productType != "" {
		a.types[productType] = struct{}{}
	}
	if price > 0 {
		if a.priced == 0 || price < a.min {
			a.min = price
		}
		if price > a.max {
			a.max = price
		}
		a.sum += price
		a.priced++
	}
}

func (a *statsAccumulator) stats() Stats {
	s := Stats{
		Categories: len(a.categories),
		Types:      len(a.types),
	}
	if a.priced > 0 {
		s.PriceRange = PriceRange{
			Min:     a.min,
			Max:     a.max,
			Average: a.sum / float64(a.priced),
		}
	}
	return s
}

// SummarizeProducts computes stats over a brand's embedded product list. An
// empty list yields all-zero stats, not an error.
func SummarizeProducts(products []models.Product) Stats {
	acc := newStatsAccumulator()
	for _, p := range products {
		acc.add(p.Category, p.Type, p.Price)
	}
	return acc.stats()
}

// SummarizeCatalog computes the same stats over top-level catalog products.
func SummarizeCatalog(products []models.CatalogProduct) Stats {
	acc := newStatsAccumulator()
	for _, p := range products {
		acc.add(p.Category, p.Type, p.Price)
	}
	return acc.stats()
}
