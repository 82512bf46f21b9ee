package handlers

import (
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/zohir26/IC-sub001/internal/models"
)

func TestValidateBrandProductsRequiredFields(t *testing.T) {
	details := validateBrandProducts([]models.Product{
		{Name: "LM358"},
		{ProductID: "LM358", Name: "LM358", Price: -1},
	})

	if len(details) != 2 {
		t.Fatalf("expected 2 messages, got %v", details)
	}
	if details[0] != "products[0].productId is required" {
		t.Fatalf("unexpected first message: %s", details[0])
	}
	if !strings.Contains(details[1], "products[1].price") {
		t.Fatalf("expected price message for second product, got %s", details[1])
	}
}

func TestValidateBrandProductsNestedAlternatives(t *testing.T) {
	details := validateBrandProducts([]models.Product{
		{
			ProductID: "X-1",
			Name:      "X-1",
			AlternativeProducts: []models.AlternativeProduct{
				{Name: "missing id"},
			},
		},
	})

	if len(details) != 1 {
		t.Fatalf("expected 1 message, got %v", details)
	}
	if details[0] != "products[0].alternativeProducts[0].productId is required" {
		t.Fatalf("unexpected message: %s", details[0])
	}
}

func TestValidateBrandProductsAcceptsValidEntries(t *testing.T) {
	details := validateBrandProducts([]models.Product{
		{ProductID: "X-1", Name: "X-1", Price: 0, Stock: 0},
	})
	if len(details) != 0 {
		t.Fatalf("expected no messages, got %v", details)
	}
}

func TestCaseInsensitiveNameFilter(t *testing.T) {
	filter := caseInsensitiveNameFilter(" Texas Instruments ")
	clause, ok := filter["name"].(bson.M)
	if !ok {
		t.Fatalf("expected regex clause, got %v", filter)
	}
	if clause["$regex"] != "^Texas Instruments$" {
		t.Fatalf("expected anchored trimmed name, got %v", clause["$regex"])
	}
	if clause["$options"] != "i" {
		t.Fatal("duplicate check must be case-insensitive")
	}
}

func TestFindProductIndex(t *testing.T) {
	brand := models.Brand{Products: []models.Product{
		{ProductID: "A-1"},
		{ProductID: "A-2"},
	}}

	if idx := findProductIndex(brand, "A-2"); idx != 1 {
		t.Fatalf("expected index 1, got %d", idx)
	}
	if idx := findProductIndex(brand, "A-9"); idx != -1 {
		t.Fatalf("expected -1 for unknown product, got %d", idx)
	}
}
