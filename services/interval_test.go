package services

import (
	"testing"
	"time"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		a1, b1 string
		a2, b2 string
		want   bool
	}{
		{"identical", "2025-07-25", "2025-07-27", "2025-07-25", "2025-07-27", true},
		{"contained", "2025-07-25", "2025-07-30", "2025-07-26", "2025-07-27", true},
		{"partial front", "2025-07-25", "2025-07-27", "2025-07-26", "2025-07-28", true},
		{"partial back", "2025-07-26", "2025-07-28", "2025-07-25", "2025-07-27", true},
		{"single shared night", "2025-07-25", "2025-07-27", "2025-07-26", "2025-07-27", true},
		{"back-to-back is not a conflict", "2025-07-25", "2025-07-27", "2025-07-27", "2025-07-29", false},
		{"back-to-back reversed", "2025-07-27", "2025-07-29", "2025-07-25", "2025-07-27", false},
		{"disjoint", "2025-07-25", "2025-07-26", "2025-07-28", "2025-07-29", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewInterval(date(t, tc.a1), date(t, tc.b1))
			b := NewInterval(date(t, tc.a2), date(t, tc.b2))
			if got := a.Overlaps(b); got != tc.want {
				t.Fatalf("Overlaps(%s..%s, %s..%s) = %v, want %v", tc.a1, tc.b1, tc.a2, tc.b2, got, tc.want)
			}
			// overlap is symmetric
			if got := b.Overlaps(a); got != tc.want {
				t.Fatalf("reverse Overlaps = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIntervalNights(t *testing.T) {
	iv := NewInterval(date(t, "2025-07-25"), date(t, "2025-07-28"))
	if got := iv.Nights(); got != 3 {
		t.Fatalf("Nights() = %d, want 3", got)
	}
	one := NewInterval(date(t, "2025-07-25"), date(t, "2025-07-26"))
	if got := one.Nights(); got != 1 {
		t.Fatalf("Nights() = %d, want 1", got)
	}
}

func TestIntervalValid(t *testing.T) {
	if NewInterval(date(t, "2025-07-27"), date(t, "2025-07-25")).Valid() {
		t.Fatal("reversed interval must be invalid")
	}
	if NewInterval(date(t, "2025-07-25"), date(t, "2025-07-25")).Valid() {
		t.Fatal("zero-length interval must be invalid")
	}
}

func TestNormalizeDateDropsTimeOfDay(t *testing.T) {
	noisy := time.Date(2025, 7, 25, 15, 4, 5, 0, time.UTC)
	got := NormalizeDate(noisy)
	if !got.Equal(date(t, "2025-07-25")) {
		t.Fatalf("NormalizeDate = %v", got)
	}
}
