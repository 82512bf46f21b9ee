package handlers

import (
	"testing"
)

func TestHumanFileSize(t *testing.T) {
	cases := []struct {
		size     int64
		expected string
	}{
		{532, "532 B"},
		{1536, "1.5 KB"},
		{5 << 20, "5.0 MB"},
	}
	for _, tc := range cases {
		if got := humanFileSize(tc.size); got != tc.expected {
			t.Fatalf("humanFileSize(%d) = %q, expected %q", tc.size, got, tc.expected)
		}
	}
}

func TestSafeDeleteUploadRefusesEscapes(t *testing.T) {
	for _, path := range []string{
		"../../etc/passwd",
		"uploads/../secrets.txt",
		"public/index.html",
	} {
		if err := safeDeleteUpload(path); err == nil {
			t.Fatalf("expected refusal for %q", path)
		}
	}
}

func TestSafeDeleteUploadMissingFileIsNotAnError(t *testing.T) {
	// Best-effort contract: a backing file already removed from storage must
	// not block the metadata delete that follows.
	if err := safeDeleteUpload("uploads/documents/never-existed.pdf"); err != nil {
		t.Fatalf("missing file must be tolerated, got %v", err)
	}
}

func TestSafeDeleteUploadEmptyPathIsNoop(t *testing.T) {
	if err := safeDeleteUpload("  "); err != nil {
		t.Fatalf("blank path must be a no-op, got %v", err)
	}
}
