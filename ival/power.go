package ival

import (
	"math"
)

// Square returns i^2. The lower bound is 0 when i contains zero.
func (i Interval) Square() Interval {
	return evenPower(i, i.L*i.L, i.U*i.U)
}

// PowScalar returns i^s.
//
// A negative exponent returns the inverse of i^-s. A strictly positive i
// maps bound to bound. Otherwise s is rounded to the nearest integer p
// (halves away from zero): odd p maps bound to bound and even p follows
// Square. The rounding makes the result unsound for non-integer exponents
// of intervals that are not strictly positive; it is kept for compatibility
// with existing data.
func (i Interval) PowScalar(s float64) Interval {

	if s < 0 {
		return i.PowScalar(-s).Inverse()
	}

	if i.L > 0 && i.U > 0 {
		return Interval{math.Pow(i.L, s), math.Pow(i.U, s)}
	}

	p := math.Round(s)

	if math.Mod(p, 2) == 1 {
		return Interval{math.Pow(i.L, p), math.Pow(i.U, p)}
	}

	return evenPower(i, math.Pow(i.L, p), math.Pow(i.U, p))
}

// PowScalarInPlace sets i to i^s.
func (i *Interval) PowScalarInPlace(s float64) {
	*i = i.PowScalar(s)
}

// evenPower returns the hull of the even power of i given the powers of its bounds.
func evenPower(i Interval, lp, up float64) Interval {
	r := Interval{U: fmax(lp, up)}
	if i.L <= 0 && i.U >= 0 {
		r.L = 0
	} else {
		r.L = fmin(lp, up)
	}
	return r
}
