package util

import (
	"errors"
	"strings"
	"testing"
)

func TestSanitizeError(t *testing.T) {
	if got := SanitizeError(nil); got != "" {
		t.Fatalf("expected empty string for nil error, got %q", got)
	}
	if got := SanitizeError(errors.New("line one\nline two\r\nline three")); strings.ContainsAny(got, "\n\r") {
		t.Fatalf("expected newlines stripped, got %q", got)
	}
	long := errors.New(strings.Repeat("x", 600))
	if got := SanitizeError(long); len(got) != 500 {
		t.Fatalf("expected message capped at 500, got %d", len(got))
	}
}

func TestTextPrefix(t *testing.T) {
	if got := TextPrefix("short", 50); got != "short" {
		t.Fatalf("expected short text unchanged, got %q", got)
	}
	got := TextPrefix(strings.Repeat("a", 60), 50)
	if got != strings.Repeat("a", 50)+"..." {
		t.Fatalf("expected truncated prefix with ellipsis, got %q", got)
	}
	// Truncation must not split multi-byte runes.
	multi := strings.Repeat("é", 60)
	got = TextPrefix(multi, 50)
	if got != strings.Repeat("é", 50)+"..." {
		t.Fatalf("expected rune-safe truncation, got %q", got)
	}
}
