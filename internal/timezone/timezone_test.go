package timezone

import (
	"testing"
	"time"
)

func TestParseDateTime(t *testing.T) {
	want := time.Date(2025, 6, 1, 14, 0, 0, 0, Location())

	for _, s := range []string{
		"2025-06-01 14:00",
		"2025-06-01T14:00",
		"2025-06-01 14:00:00",
	} {
		got, err := ParseDateTime(s)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", s, err)
		}
		if !got.Equal(want) {
			t.Fatalf("%q: expected %v, got %v", s, want, got)
		}
	}
}

func TestParseDateTime_Invalid(t *testing.T) {
	for _, s := range []string{"", "01/06/2025", "2025-13-01 14:00", "amanhã"} {
		if _, err := ParseDateTime(s); err == nil {
			t.Fatalf("%q: expected error", s)
		}
	}
}

func TestDayBounds(t *testing.T) {
	at := time.Date(2025, 6, 1, 14, 30, 45, 0, Location())

	start, end := DayBounds(at)
	if start.Hour() != 0 || start.Day() != 1 {
		t.Fatalf("unexpected start %v", start)
	}
	if end.Sub(start) != 24*time.Hour {
		t.Fatalf("expected 24h window, got %v", end.Sub(start))
	}
	if at.Before(start) || !at.Before(end) {
		t.Fatalf("instant must fall inside its own day bounds")
	}
}
