package answer

import (
	"math"
	"strings"
)

// Tolerance is the fixed absolute distance below which two numeric
// answers are considered equal. It is intentionally absolute rather
// than relative: lax for large magnitudes, strict near zero. Known
// characteristic of the design, do not "fix" silently.
const Tolerance = 0.001

// Evaluate decides whether a student answer matches the canonical one.
//
// Both sides are normalized via Normalize. When both yield numbers, the
// decision is |a-b| < Tolerance. When either side fails to normalize,
// the fallback is case-insensitive equality of the cleaned text.
// Pure and symmetric.
func Evaluate(canonical, student string) bool {
	a, aok := Normalize(canonical)
	b, bok := Normalize(student)
	if aok && bok {
		return WithinTolerance(a, b)
	}
	return strings.EqualFold(CleanText(canonical), CleanText(student))
}

// WithinTolerance reports whether two numeric values are equal under the
// fixed absolute tolerance. Exposed for callers that already hold
// numeric values (e.g. the AI extraction fallback path).
func WithinTolerance(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}
