package catalog

import (
	"math"
	"sort"
	"strings"

	"github.com/zohir26/IC-sub001/internal/models"
)

// DefaultSuggestionLimit caps suggestion lists when the caller does not supply
// a limit.
const DefaultSuggestionLimit = 4

// alternativePriceTolerance admits candidates priced within 40% of the current
// product's price.
const alternativePriceTolerance = 0.4

// RelatedCatalogProducts is the flat-array counterpart of RelatedInBrand: it
// operates over the searchable products collection instead of one brand's
// embedded list, and it never consults explicit reference lists. Candidates
// share the category or type case-insensitively; ranking puts same-category
// matches first, then closest price. Sorting is stable, so ties keep the input
// order.
func RelatedCatalogProducts(products []models.CatalogProduct, current models.CatalogProduct, limit int) []models.CatalogProduct {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	matches := make([]models.CatalogProduct, 0, limit)
	for _, p := range products {
		if p.ID == current.ID {
			continue
		}
		sameCategory := current.Category != "" && strings.EqualFold(p.Category, current.Category)
		sameType := current.Type != "" && strings.EqualFold(p.Type, current.Type)
		if sameCategory || sameType {
			matches = append(matches, p)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		iSame := strings.EqualFold(matches[i].Category, current.Category)
		jSame := strings.EqualFold(matches[j].Category, current.Category)
		if iSame != jSame {
			return iSame
		}
		return math.Abs(matches[i].Price-current.Price) < math.Abs(matches[j].Price-current.Price)
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// AlternativeCatalogProducts suggests substitutes from a different category
// whose price is within 40% of the current product's, closest price first.
// Same-category candidates are excluded regardless of price.
func AlternativeCatalogProducts(products []models.CatalogProduct, current models.CatalogProduct, limit int) []models.CatalogProduct {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	matches := make([]models.CatalogProduct, 0, limit)
	for _, p := range products {
		if p.ID == current.ID {
			continue
		}
		if strings.EqualFold(p.Category, current.Category) {
			continue
		}
		if math.Abs(p.Price-current.Price) > alternativePriceTolerance*current.Price {
			continue
		}
		matches = append(matches, p)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return math.Abs(matches[i].Price-current.Price) < math.Abs(matches[j].Price-current.Price)
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
