// ABOUTME: Tests for weight conversion, LIKE escaping, and timestamps.
// ABOUTME: Round-trip conversion asserts tolerance, not exact equality.
package units

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestConvertIdentity(t *testing.T) {
	if got := Convert(135, Lbs, Lbs); got != 135 {
		t.Errorf("Expected identity conversion, got %v", got)
	}
	if got := Convert(61.2, Kg, Kg); got != 61.2 {
		t.Errorf("Expected identity conversion, got %v", got)
	}
}

func TestConvertLbsToKg(t *testing.T) {
	// 135 * 0.453592 = 61.23492 -> 61.2
	if got := Convert(135, Lbs, Kg); got != 61.2 {
		t.Errorf("Expected 61.2, got %v", got)
	}
	// 225 * 0.453592 = 102.0582 -> 102.1
	if got := Convert(225, Lbs, Kg); got != 102.1 {
		t.Errorf("Expected 102.1, got %v", got)
	}
}

func TestConvertKgToLbs(t *testing.T) {
	// 100 * 2.20462 = 220.462 -> 220.5
	if got := Convert(100, Kg, Lbs); got != 220.5 {
		t.Errorf("Expected 220.5, got %v", got)
	}
}

func TestConvertRoundTripTolerance(t *testing.T) {
	// Rounding loses precision; the round trip lands within 0.1. 402.5
	// drifts by exactly 0.1, so the bound needs a float epsilon.
	const tolerance = 0.1 + 1e-9
	for _, v := range []float64{45, 95, 135, 185, 225, 315, 402.5} {
		back := Convert(Convert(v, Lbs, Kg), Kg, Lbs)
		if math.Abs(back-v) > tolerance {
			t.Errorf("Round trip of %v drifted to %v", v, back)
		}
	}
}

func TestIsValidWeightUnit(t *testing.T) {
	if !IsValidWeightUnit("lbs") || !IsValidWeightUnit("kg") {
		t.Error("Expected lbs and kg to be valid")
	}
	if IsValidWeightUnit("stone") || IsValidWeightUnit("") {
		t.Error("Expected unknown units to be invalid")
	}
}

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"bench", "bench"},
		{"100% effort", `100\% effort`},
		{"push_up", `push\_up`},
		{`back\slash`, `back\\slash`},
		{"%_%", `\%\_\%`},
	}
	for _, tt := range tests {
		if got := EscapeLike(tt.input); got != tt.want {
			t.Errorf("EscapeLike(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatTimeFixedWidth(t *testing.T) {
	// Lexicographic ordering in SQL needs a fixed-width, zero-padded form.
	times := []time.Time{
		time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		time.Date(2025, 11, 22, 13, 44, 55, 999000000, time.UTC),
		Now(),
	}
	for _, tm := range times {
		s := FormatTime(tm)
		if len(s) != 20 {
			t.Errorf("Expected 20-char timestamp, got %q (%d chars)", s, len(s))
		}
		if !strings.HasSuffix(s, "Z") {
			t.Errorf("Expected UTC timestamp, got %q", s)
		}
	}
}

func TestFormatTimeOrdering(t *testing.T) {
	earlier := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	later := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	if FormatTime(earlier) >= FormatTime(later) {
		t.Error("Expected lexicographic order to match chronological order")
	}
}

func TestParseTimeRoundTrip(t *testing.T) {
	tm := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	parsed, err := ParseTime(FormatTime(tm))
	if err != nil {
		t.Fatalf("ParseTime failed: %v", err)
	}
	if !parsed.Equal(tm) {
		t.Errorf("Round trip mismatch: got %v, want %v", parsed, tm)
	}
}
