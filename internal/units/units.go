// ABOUTME: Weight unit conversion and timestamp formatting helpers.
// ABOUTME: All weights persist in pounds; all timestamps persist as UTC RFC3339.
package units

import (
	"math"
	"strings"
	"time"
)

// WeightUnit is a display unit for weights. Storage is always pounds.
type WeightUnit string

const (
	Lbs WeightUnit = "lbs"
	Kg  WeightUnit = "kg"
)

// IsValidWeightUnit reports whether s is a known weight unit.
func IsValidWeightUnit(s string) bool {
	return s == string(Lbs) || s == string(Kg)
}

const (
	lbsPerKg = 2.20462
	kgPerLb  = 0.453592
)

// Convert converts a weight value between pounds and kilograms,
// rounding to one decimal place. Identity when from == to.
// Round-tripping loses precision; callers must not expect exact equality.
func Convert(value float64, from, to WeightUnit) float64 {
	if from == to {
		return value
	}
	if from == Lbs && to == Kg {
		return round1(value * kgPerLb)
	}
	return round1(value * lbsPerKg)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// EscapeLike escapes %, _, and backslash in s so it can be embedded in a
// LIKE pattern (with ESCAPE '\') without acting as a wildcard.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// Now returns the current time in UTC truncated to whole seconds, so every
// stored timestamp has the same fixed-width RFC3339 form.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// FormatTime renders t as a fixed-width UTC RFC3339 string. Timestamps are
// compared lexicographically in SQL, which only works with this fixed format.
func FormatTime(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(time.RFC3339)
}

// ParseTime parses a timestamp previously written by FormatTime.
func ParseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
