package catalog

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zohir26/IC-sub001/internal/models"
)

func catalogProduct(name, category, productType string, price float64) models.CatalogProduct {
	return models.CatalogProduct{
		ID:       primitive.NewObjectID(),
		Name:     name,
		Category: category,
		Type:     productType,
		Price:    price,
	}
}

func TestAlternativeCatalogProductsPriceTolerance(t *testing.T) {
	current := catalogProduct("current", "A", "", 100)
	within := catalogProduct("within", "B", "", 135)   // 35% away
	outside := catalogProduct("outside", "B", "", 145) // 45% away
	sameCat := catalogProduct("sameCat", "A", "", 105)

	alternatives := AlternativeCatalogProducts(
		[]models.CatalogProduct{current, within, outside, sameCat},
		current,
		0,
	)

	if len(alternatives) != 1 {
		t.Fatalf("expected 1 alternative, got %d", len(alternatives))
	}
	if alternatives[0].Name != "within" {
		t.Fatalf("expected the 35%% candidate, got %s", alternatives[0].Name)
	}
}

func TestAlternativeCatalogProductsRankedByPriceDistance(t *testing.T) {
	current := catalogProduct("current", "A", "", 100)
	far := catalogProduct("far", "B", "", 130)
	near := catalogProduct("near", "C", "", 95)

	alternatives := AlternativeCatalogProducts(
		[]models.CatalogProduct{current, far, near},
		current,
		0,
	)

	if len(alternatives) != 2 {
		t.Fatalf("expected 2 alternatives, got %d", len(alternatives))
	}
	if alternatives[0].Name != "near" || alternatives[1].Name != "far" {
		t.Fatalf("expected closest price first, got %s then %s", alternatives[0].Name, alternatives[1].Name)
	}
}

func TestRelatedCatalogProductsSameCategoryFirst(t *testing.T) {
	current := catalogProduct("current", "Amplifiers", "op-amp", 10)
	sameType := catalogProduct("sameType", "Comparators", "op-amp", 10) // exact price match
	sameCat := catalogProduct("sameCat", "Amplifiers", "", 50)          // far price
	unrelated := catalogProduct("unrelated", "Memory", "flash", 10)

	related := RelatedCatalogProducts(
		[]models.CatalogProduct{current, sameType, sameCat, unrelated},
		current,
		0,
	)

	if len(related) != 2 {
		t.Fatalf("expected 2 related products, got %d", len(related))
	}
	if related[0].Name != "sameCat" {
		t.Fatalf("expected same-category match ranked before same-type, got %s first", related[0].Name)
	}
	if related[1].Name != "sameType" {
		t.Fatalf("expected same-type match second, got %s", related[1].Name)
	}
}

func TestRelatedCatalogProductsCaseInsensitive(t *testing.T) {
	current := catalogProduct("current", "Sensors", "", 10)
	match := catalogProduct("match", "sensors", "", 12)

	related := RelatedCatalogProducts([]models.CatalogProduct{current, match}, current, 0)
	if len(related) != 1 || related[0].Name != "match" {
		t.Fatalf("expected case-insensitive category match, got %v", related)
	}
}

func TestRelatedCatalogProductsStableTies(t *testing.T) {
	current := catalogProduct("current", "Sensors", "", 10)
	first := catalogProduct("first", "Sensors", "", 12)
	second := catalogProduct("second", "Sensors", "", 12)

	related := RelatedCatalogProducts(
		[]models.CatalogProduct{current, first, second},
		current,
		0,
	)

	if len(related) != 2 {
		t.Fatalf("expected 2 related products, got %d", len(related))
	}
	if related[0].Name != "first" || related[1].Name != "second" {
		t.Fatalf("ties must preserve input order, got %s then %s", related[0].Name, related[1].Name)
	}
}

func TestSuggestionDefaultLimit(t *testing.T) {
	current := catalogProduct("current", "Sensors", "", 10)
	pool := []models.CatalogProduct{current}
	for i := 0; i < 10; i++ {
		pool = append(pool, catalogProduct("candidate", "Sensors", "", float64(10+i)))
	}

	if related := RelatedCatalogProducts(pool, current, 0); len(related) != DefaultSuggestionLimit {
		t.Fatalf("expected default cap of %d, got %d", DefaultSuggestionLimit, len(related))
	}
	if related := RelatedCatalogProducts(pool, current, 7); len(related) != 7 {
		t.Fatalf("expected caller-supplied cap of 7, got %d", len(related))
	}
}
