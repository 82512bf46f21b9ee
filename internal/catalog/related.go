package catalog

import "github.com/zohir26/IC-sub001/internal/models"

// relatedFallbackLimit caps the dynamic same-category/type fallback. Explicitly
// referenced related products are not capped here; the storefront caps display.
const relatedFallbackLimit = 4

// RelatedInBrand returns the cross-sell list for a product within its own
// brand. An explicit relatedProducts list wins and is resolved against the
// brand's products in reference order, skipping references that no longer
// exist. Only when the list is empty does the dynamic fallback run: other
// products in the brand sharing the category or type, excluding the product
// itself, capped at 4.
func RelatedInBrand(brand models.Brand, current models.Product) []models.Product {
	if len(current.RelatedProducts) > 0 {
		byID := make(map[string]models.Product, len(brand.Products))
		for _, p := range brand.Products {
			byID[p.ProductID] = p
		}
		resolved := make([]models.Product, 0, len(current.RelatedProducts))
		for _, ref := range current.RelatedProducts {
			if p, ok := byID[ref]; ok {
				resolved = append(resolved, p)
			}
		}
		return resolved
	}

	related := make([]models.Product, 0, relatedFallbackLimit)
	for _, p := range brand.Products {
		if p.ProductID == current.ProductID {
			continue
		}
		sameCategory := current.Category != "" && p.Category == current.Category
		sameType := current.Type != "" && p.Type == current.Type
		if sameCategory || sameType {
			related = append(related, p)
			if len(related) == relatedFallbackLimit {
				break
			}
		}
	}
	return related
}

// AlternativesInBrand returns the pre-declared alternative summaries verbatim.
// There is deliberately no dynamic fallback: an empty list stays empty, unlike
// related products.
func AlternativesInBrand(current models.Product) []models.AlternativeProduct {
	if len(current.AlternativeProducts) == 0 {
		return []models.AlternativeProduct{}
	}
	return current.AlternativeProducts
}
