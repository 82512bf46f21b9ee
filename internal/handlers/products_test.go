package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContextWithQuery(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/products?"+rawQuery, nil)
	return c
}

func TestParseSearchParamsMultiValueFilters(t *testing.T) {
	c := testContextWithQuery(t, "brand=NXP&brand=STMicroelectronics&manufacturer=TI")

	params, err := parseSearchParams(c)
	if err != nil {
		t.Fatalf("parseSearchParams returned error: %v", err)
	}
	if len(params.Brands) != 2 || params.Brands[0] != "NXP" {
		t.Fatalf("expected repeated brand params collected, got %v", params.Brands)
	}
	if len(params.Manufacturers) != 1 || params.Manufacturers[0] != "TI" {
		t.Fatalf("expected manufacturer list, got %v", params.Manufacturers)
	}
}

func TestParseSearchParamsCommaSeparatedValues(t *testing.T) {
	c := testContextWithQuery(t, "brand=NXP,TI&feature=low-power,automotive")

	params, err := parseSearchParams(c)
	if err != nil {
		t.Fatalf("parseSearchParams returned error: %v", err)
	}
	if len(params.Brands) != 2 || params.Brands[1] != "TI" {
		t.Fatalf("expected comma-separated brands split, got %v", params.Brands)
	}
	if len(params.Features) != 2 {
		t.Fatalf("expected 2 features, got %v", params.Features)
	}
}

func TestParseSearchParamsPriceBounds(t *testing.T) {
	c := testContextWithQuery(t, "minPrice=1.5&maxPrice=oops")

	params, err := parseSearchParams(c)
	if err != nil {
		t.Fatalf("parseSearchParams returned error: %v", err)
	}
	if params.MinPrice == nil || *params.MinPrice != 1.5 {
		t.Fatalf("expected minPrice=1.5, got %v", params.MinPrice)
	}
	if params.MaxPrice != nil {
		t.Fatal("a non-numeric bound must be omitted, not zeroed")
	}
}

func TestParseSearchParamsInvalidPage(t *testing.T) {
	c := testContextWithQuery(t, "page=0")

	if _, err := parseSearchParams(c); err == nil {
		t.Fatal("expected error for page=0 (pages are 1-indexed)")
	}
}

func TestParseSearchParamsAlwaysActiveOnly(t *testing.T) {
	c := testContextWithQuery(t, "")

	params, err := parseSearchParams(c)
	if err != nil {
		t.Fatalf("parseSearchParams returned error: %v", err)
	}
	if !params.ActiveOnly {
		t.Fatal("public search must be restricted to active products")
	}
}

func TestSplitMultiDropsEmptyEntries(t *testing.T) {
	values := splitMulti([]string{" a ,", "", "b"})
	if len(values) != 2 || values[0] != "a" || values[1] != "b" {
		t.Fatalf("expected trimmed non-empty values, got %v", values)
	}
}
