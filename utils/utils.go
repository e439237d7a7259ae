// Package utils implements various helper functions.
package utils

import (
	"math"
)

// MinFloat64 returns the minimum of a and b, or NaN if either is NaN.
func MinFloat64(a, b float64) float64 {
	return math.Min(a, b)
}

// MaxFloat64 returns the maximum of a and b, or NaN if either is NaN.
func MaxFloat64(a, b float64) float64 {
	return math.Max(a, b)
}

// IsFinite returns true if x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
