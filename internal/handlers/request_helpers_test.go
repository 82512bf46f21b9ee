package handlers

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

var errTest = errors.New("boom")

func TestParsePaginationParamsDefaults(t *testing.T) {
	page, limit, err := parsePaginationParams("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page != 1 || limit != 20 {
		t.Fatalf("expected defaults page=1 limit=20, got %d/%d", page, limit)
	}
}

func TestParsePaginationParamsRejectsInvalid(t *testing.T) {
	for _, tc := range [][2]string{{"0", "10"}, {"abc", "10"}, {"1", "-5"}} {
		if _, _, err := parsePaginationParams(tc[0], tc[1]); err == nil {
			t.Fatalf("expected error for page=%q limit=%q", tc[0], tc[1])
		}
	}
}

func TestUnpackValidationErrorsPerField(t *testing.T) {
	type payload struct {
		Name string `validate:"required"`
		Logo string `validate:"required"`
	}

	err := validator.New().Struct(payload{})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	details := unpackValidationErrors(err)
	if len(details) != 2 {
		t.Fatalf("expected 2 per-field messages, got %v", details)
	}
	if details[0] != "name is required" || details[1] != "logo is required" {
		t.Fatalf("expected flattened field messages, got %v", details)
	}
}

func TestUnpackValidationErrorsNonValidatorError(t *testing.T) {
	details := unpackValidationErrors(errTest)
	if len(details) != 1 || details[0] != "boom" {
		t.Fatalf("expected raw message passthrough, got %v", details)
	}
}
