package root

import (
	"testing"
	"time"
)

func TestParseDue(t *testing.T) {
	got, err := parseDue("2026-03-01T17:00:00Z")
	if err != nil || !got.Equal(time.Date(2026, 3, 1, 17, 0, 0, 0, time.UTC)) {
		t.Fatalf("RFC 3339: %v, %v", got, err)
	}
	got, err = parseDue("20260301T170000Z")
	if err != nil || !got.Equal(time.Date(2026, 3, 1, 17, 0, 0, 0, time.UTC)) {
		t.Fatalf("compact: %v, %v", got, err)
	}
	got, err = parseDue("2026-03-01")
	if err != nil || got.Day() != 1 || got.Hour() != 23 || got.Minute() != 59 {
		t.Fatalf("date: %v, %v", got, err)
	}
	if _, err := parseDue("next tuesday"); err == nil {
		t.Fatalf("free-form date accepted")
	}
}
