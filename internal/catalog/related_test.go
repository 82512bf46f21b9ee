package catalog

import (
	"testing"

	"github.com/zohir26/IC-sub001/internal/models"
)

func brandWithProducts(products ...models.Product) models.Brand {
	return models.Brand{Name: "Acme Semi", Products: products}
}

func TestRelatedInBrandFallbackMatchesCategory(t *testing.T) {
	current := models.Product{ProductID: "S-1", Category: "Sensors"}
	brand := brandWithProducts(
		current,
		models.Product{ProductID: "S-2", Category: "Sensors"},
		models.Product{ProductID: "S-3", Category: "Sensors"},
		models.Product{ProductID: "C-1", Category: "Connectors"},
	)

	related := RelatedInBrand(brand, current)
	if len(related) != 2 {
		t.Fatalf("expected exactly the 2 other sensors, got %d", len(related))
	}
	for _, p := range related {
		if p.Category != "Sensors" {
			t.Fatalf("unexpected category %q in fallback", p.Category)
		}
		if p.ProductID == current.ProductID {
			t.Fatal("fallback must exclude the product itself")
		}
	}
}

func TestRelatedInBrandFallbackMatchesType(t *testing.T) {
	current := models.Product{ProductID: "A-1", Category: "ADC", Type: "SAR"}
	brand := brandWithProducts(
		current,
		models.Product{ProductID: "A-2", Category: "DAC", Type: "SAR"},
	)

	related := RelatedInBrand(brand, current)
	if len(related) != 1 || related[0].ProductID != "A-2" {
		t.Fatalf("expected type match to qualify, got %v", related)
	}
}

func TestRelatedInBrandFallbackCap(t *testing.T) {
	current := models.Product{ProductID: "S-0", Category: "Sensors"}
	products := []models.Product{current}
	for _, id := range []string{"S-1", "S-2", "S-3", "S-4", "S-5", "S-6"} {
		products = append(products, models.Product{ProductID: id, Category: "Sensors"})
	}

	related := RelatedInBrand(brandWithProducts(products...), current)
	if len(related) != 4 {
		t.Fatalf("expected fallback capped at 4, got %d", len(related))
	}
}

func TestRelatedInBrandExplicitReferencesWin(t *testing.T) {
	current := models.Product{
		ProductID:       "X-1",
		Category:        "Sensors",
		RelatedProducts: []string{"C-1", "missing", "S-2"},
	}
	brand := brandWithProducts(
		current,
		models.Product{ProductID: "S-2", Category: "Sensors"},
		models.Product{ProductID: "S-3", Category: "Sensors"},
		models.Product{ProductID: "C-1", Category: "Connectors"},
	)

	related := RelatedInBrand(brand, current)
	if len(related) != 2 {
		t.Fatalf("expected 2 resolved references, got %d", len(related))
	}
	if related[0].ProductID != "C-1" || related[1].ProductID != "S-2" {
		t.Fatalf("expected references resolved in reference order, got %v", related)
	}
}

func TestRelatedInBrandEmptyCategoryDoesNotMatchEverything(t *testing.T) {
	current := models.Product{ProductID: "N-1"}
	brand := brandWithProducts(
		current,
		models.Product{ProductID: "N-2"},
	)

	if related := RelatedInBrand(brand, current); len(related) != 0 {
		t.Fatalf("a product with no category/type must not match all brand mates, got %v", related)
	}
}

func TestAlternativesInBrandNoFallback(t *testing.T) {
	// Empty alternatives stay empty even when plausible candidates exist:
	// there is no dynamic computation for alternatives.
	current := models.Product{ProductID: "S-1", Category: "Sensors", Price: 10}

	alternatives := AlternativesInBrand(current)
	if alternatives == nil {
		t.Fatal("expected an empty slice, not nil")
	}
	if len(alternatives) != 0 {
		t.Fatalf("expected no alternatives, got %d", len(alternatives))
	}
}

func TestAlternativesInBrandVerbatim(t *testing.T) {
	declared := []models.AlternativeProduct{
		{ProductID: "T-9", Name: "T-9", BrandName: "Other Corp", Price: 12},
	}
	current := models.Product{ProductID: "S-1", AlternativeProducts: declared}

	alternatives := AlternativesInBrand(current)
	if len(alternatives) != 1 || alternatives[0].ProductID != "T-9" {
		t.Fatalf("expected declared alternatives verbatim, got %v", alternatives)
	}
}
