package handlers

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title    string
		expected string
	}{
		{"Choosing the Right Op-Amp", "choosing-the-right-op-amp"},
		{"  USB-C  &  Power Delivery!  ", "usb-c-power-delivery"},
		{"---", ""},
	}
	for _, tc := range cases {
		if got := slugify(tc.title); got != tc.expected {
			t.Fatalf("slugify(%q) = %q, expected %q", tc.title, got, tc.expected)
		}
	}
}

func TestSlugConflictFilterCreatePath(t *testing.T) {
	filter := slugConflictFilter("op-amp-guide", primitive.NilObjectID)
	if filter["slug"] != "op-amp-guide" {
		t.Fatalf("expected slug clause, got %v", filter)
	}
	if _, ok := filter["_id"]; ok {
		t.Fatalf("create path must not exclude any id, got %v", filter)
	}
}

func TestSlugConflictFilterUpdateExcludesSelf(t *testing.T) {
	// Updating a post to the slug it already holds must not count as a
	// conflict; only other posts holding the slug do.
	oid := primitive.NewObjectID()
	filter := slugConflictFilter("op-amp-guide", oid)

	if filter["slug"] != "op-amp-guide" {
		t.Fatalf("expected slug clause, got %v", filter)
	}
	clause, ok := filter["_id"].(bson.M)
	if !ok {
		t.Fatalf("expected _id exclusion clause, got %v", filter)
	}
	if clause["$ne"] != oid {
		t.Fatalf("expected $ne on the post's own id, got %v", clause)
	}
}
