// Package prec provides floating point comparison helpers used by the
// statdist test suites and by callers validating numeric results.
package prec

import "math"

// DefaultAcc is the absolute accuracy used when no explicit tolerance
// makes sense for a comparison.
const DefaultAcc = 1e-13

// AlmostEq reports whether a and b are within acc of each other.
// Equal values compare true regardless of acc, which covers the
// infinity cases; a NaN on either side is never almost equal.
func AlmostEq(a, b, acc float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return math.Abs(a-b) < acc
}

// RelEq reports whether a and b agree to roughly digits significant
// decimal digits. Useful when the magnitude of the compared values is
// not known up front.
func RelEq(a, b float64, digits int) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) < scale*math.Pow(10, -float64(digits))
}
