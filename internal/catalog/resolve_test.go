package catalog

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func firstApplicableFilter(strategies []ResolveStrategy, identifier string) (string, bson.M) {
	for _, strategy := range strategies {
		if filter, ok := strategy.Filter(identifier); ok {
			return strategy.Name(), filter
		}
	}
	return "", nil
}

func TestBrandResolverOrder(t *testing.T) {
	names := make([]string, 0)
	for _, strategy := range BrandResolvers() {
		names = append(names, strategy.Name())
	}
	expected := []string{"brandId", "objectId", "name"}
	if len(names) != len(expected) {
		t.Fatalf("expected %d strategies, got %d", len(expected), len(names))
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Fatalf("strategy %d: expected %s, got %s", i, expected[i], names[i])
		}
	}
}

func TestNumericIdentifierResolvesAsBrandID(t *testing.T) {
	// A brand literally named "123" must lose to brandId 123: numeric wins
	// because it is tried first.
	name, filter := firstApplicableFilter(BrandResolvers(), "123")
	if name != "brandId" {
		t.Fatalf("expected brandId strategy to win for \"123\", got %s", name)
	}
	if filter["brandId"] != 123 {
		t.Fatalf("expected filter on brandId=123, got %v", filter)
	}
}

func TestObjectIDIdentifier(t *testing.T) {
	oid := primitive.NewObjectID()
	name, filter := firstApplicableFilter(BrandResolvers(), oid.Hex())
	if name != "objectId" {
		t.Fatalf("expected objectId strategy for a 24-hex identifier, got %s", name)
	}
	if filter["_id"] != oid {
		t.Fatalf("expected filter on _id=%s, got %v", oid.Hex(), filter)
	}
}

func TestHyphenatedNameIdentifier(t *testing.T) {
	name, filter := firstApplicableFilter(BrandResolvers(), "texas-instruments")
	if name != "name" {
		t.Fatalf("expected name strategy, got %s", name)
	}
	clause, ok := filter["name"].(bson.M)
	if !ok {
		t.Fatalf("expected a regex clause on name, got %v", filter)
	}
	if clause["$regex"] != "^texas instruments$" {
		t.Fatalf("expected hyphens converted to spaces and anchored, got %v", clause["$regex"])
	}
	if clause["$options"] != "i" {
		t.Fatal("expected case-insensitive name match")
	}
}

func TestNameStrategyQuotesRegexMeta(t *testing.T) {
	_, filter := firstApplicableFilter(BrandResolvers(), "st+micro")
	clause := filter["name"].(bson.M)
	if clause["$regex"] != `^st\+micro$` {
		t.Fatalf("expected regex metacharacters quoted, got %v", clause["$regex"])
	}
}

func TestBrandStrategiesInapplicable(t *testing.T) {
	var strategy ResolveStrategy = byBrandID{}
	if _, ok := strategy.Filter("texas"); ok {
		t.Fatal("brandId strategy must not apply to a non-numeric identifier")
	}
	strategy = byObjectID{}
	if _, ok := strategy.Filter("not-an-object-id"); ok {
		t.Fatal("objectId strategy must not apply to a non-hex identifier")
	}
	if _, ok := strategy.Filter("zzzzzzzzzzzzzzzzzzzzzzzz"); ok {
		t.Fatal("objectId strategy must reject 24 chars of non-hex")
	}
}

func TestCategoryResolverHasTwoStrategies(t *testing.T) {
	strategies := CategoryResolvers()
	if len(strategies) != 2 {
		t.Fatalf("expected 2 category strategies, got %d", len(strategies))
	}
	if strategies[0].Name() != "categoryId" || strategies[1].Name() != "objectId" {
		t.Fatalf("unexpected category strategy order: %s, %s", strategies[0].Name(), strategies[1].Name())
	}
}

func TestCategoryIDStrategy(t *testing.T) {
	name, filter := firstApplicableFilter(CategoryResolvers(), "42")
	if name != "categoryId" {
		t.Fatalf("expected categoryId strategy for \"42\", got %s", name)
	}
	if filter["id"] != 42 {
		t.Fatalf("expected filter on id=42, got %v", filter)
	}

	if name, _ := firstApplicableFilter(CategoryResolvers(), "power-management"); name != "" {
		t.Fatalf("expected no applicable category strategy for a name, got %s", name)
	}
}
