package ival

import (
	"golang.org/x/exp/constraints"
)

// Number is the set of scalar types that lift to an Interval.
type Number interface {
	constraints.Integer | constraints.Float
}

// Lift returns the degenerate interval [s, s].
// Integers beyond 2^53 are rounded to the nearest float64.
func Lift[T Number](s T) Interval {
	return Interval{L: float64(s), U: float64(s)}
}

// LiftBool returns [1, 1] for true and [0, 0] for false.
func LiftBool(b bool) Interval {
	if b {
		return One
	}
	return Zero
}
