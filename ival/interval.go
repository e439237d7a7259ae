// Package ival implements closed-interval arithmetic over float64 bounds.
//
// An Interval [L, U] stands for an unknown real known to lie between L and U
// (inclusive). Every operation returns an interval that encloses all results
// obtainable from operands taken in the input intervals. Bounds are computed
// with ordinary float64 rounding, not directed rounding, so enclosures can be
// off by a rounding error at the bounds.
//
// The operations are total: none of them panics or returns an error.
// Domain-unsound inputs (division by an interval containing zero, square root
// of an interval reaching below zero) return Entire, and the intersection of
// disjoint intervals returns Empty, whose bounds are both NaN. The constructor
// New does not check L <= U; operations on such malformed intervals have
// unspecified results. NewStrict, Validate and IntersectionStrict provide the
// validating counterparts for callers that need them.
package ival

import (
	"errors"
	"fmt"
	"math"
)

// Interval is a closed interval [L, U] of reals.
type Interval struct {
	L, U float64
}

var (
	// Zero is the degenerate interval [0, 0].
	Zero = Interval{0, 0}
	// One is the degenerate interval [1, 1].
	One = Interval{1, 1}
	// Entire is the maximal interval [-Inf, +Inf], returned when no tighter
	// sound bound is available.
	Entire = Interval{math.Inf(-1), math.Inf(1)}
	// Empty is the sentinel [NaN, NaN] returned by the intersection of
	// disjoint intervals. Test for it with IsEmpty, not with Equal.
	Empty = Interval{math.NaN(), math.NaN()}
)

var (
	// ErrMalformed is returned when a lower bound is greater than its upper bound.
	ErrMalformed = errors.New("malformed interval")
	// ErrNaN is returned when a bound is NaN.
	ErrNaN = errors.New("interval bound is NaN")
)

// New returns the interval [l, u]. The bounds are taken as given, even if l > u.
func New(l, u float64) Interval {
	return Interval{L: l, U: u}
}

// NewStrict returns the interval [l, u], or an error if a bound is NaN or if l > u.
func NewStrict(l, u float64) (Interval, error) {
	i := Interval{L: l, U: u}
	if err := i.Validate(); err != nil {
		return Interval{}, err
	}
	return i, nil
}

// Normalize returns the interval spanned by a and b, whichever order they come in.
func Normalize(a, b float64) Interval {
	if a > b {
		return Interval{L: b, U: a}
	}
	return Interval{L: a, U: b}
}

// FromCenter returns [c-r, c+r].
func FromCenter(c, r float64) Interval {
	return Interval{L: c - r, U: c + r}
}

// Validate returns an error wrapping ErrNaN or ErrMalformed if i is not a
// well-formed interval.
func (i Interval) Validate() error {
	if i.HasNaN() {
		return fmt.Errorf("cannot validate %v: %w", i, ErrNaN)
	}
	if i.L > i.U {
		return fmt.Errorf("cannot validate %v: %w: lower bound %g > upper bound %g", i, ErrMalformed, i.L, i.U)
	}
	return nil
}

// Center returns the midpoint of i.
func (i Interval) Center() float64 {
	return i.L/2 + i.U/2
}

// Radius returns half the width of i.
func (i Interval) Radius() float64 {
	return i.U/2 - i.L/2
}

// Bisect splits i at its center.
func (i Interval) Bisect() (lo, hi Interval) {
	c := i.Center()
	return Interval{i.L, c}, Interval{c, i.U}
}

// Contains returns true if x lies in i.
func (i Interval) Contains(x float64) bool {
	return i.L <= x && x <= i.U
}

// HasNaN returns true if either bound is NaN.
func (i Interval) HasNaN() bool {
	return math.IsNaN(i.L) || math.IsNaN(i.U)
}

// IsEmpty returns true if i is the empty-intersection sentinel.
func (i Interval) IsEmpty() bool {
	return math.IsNaN(i.L) && math.IsNaN(i.U)
}

// IsEntire returns true if i is [-Inf, +Inf].
func (i Interval) IsEntire() bool {
	return math.IsInf(i.L, -1) && math.IsInf(i.U, 1)
}

// IsDegenerate returns true if i holds a single value.
func (i Interval) IsDegenerate() bool {
	return i.L == i.U
}

// String formats i as "([l, u])" with four significant digits.
func (i Interval) String() string {
	return fmt.Sprintf("([%.4g, %.4g])", i.L, i.U)
}
