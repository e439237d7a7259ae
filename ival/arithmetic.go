package ival

import (
	"math"
)

// fmin returns the smaller of a and b. Unlike math.Min, a NaN argument is
// ignored when the other one is a number, so that an indeterminate bound
// product such as 0*Inf does not poison the result.
func fmin(a, b float64) float64 {
	switch {
	case math.IsNaN(a):
		return b
	case b < a:
		return b
	}
	return a
}

// fmax returns the larger of a and b, ignoring a NaN argument when the other
// one is a number.
func fmax(a, b float64) float64 {
	switch {
	case math.IsNaN(a):
		return b
	case b > a:
		return b
	}
	return a
}

// Add returns [i.L+j.L, i.U+j.U].
func (i Interval) Add(j Interval) Interval {
	return Interval{i.L + j.L, i.U + j.U}
}

// AddScalar returns [i.L+s, i.U+s].
func (i Interval) AddScalar(s float64) Interval {
	return Interval{i.L + s, i.U + s}
}

// ScalarAdd returns s + i.
func ScalarAdd(s float64, i Interval) Interval {
	return Interval{s + i.L, s + i.U}
}

// Sub returns [i.L-j.U, i.U-j.L].
func (i Interval) Sub(j Interval) Interval {
	return Interval{i.L - j.U, i.U - j.L}
}

// SubScalar returns [i.L-s, i.U-s].
func (i Interval) SubScalar(s float64) Interval {
	return Interval{i.L - s, i.U - s}
}

// ScalarSub returns s - i = [s-i.U, s-i.L].
func ScalarSub(s float64, i Interval) Interval {
	return Interval{s - i.U, s - i.L}
}

// Mul returns the hull of the four bound products of i and j.
func (i Interval) Mul(j Interval) Interval {
	ll := i.L * j.L
	lu := i.L * j.U
	ul := i.U * j.L
	uu := i.U * j.U
	return Interval{
		fmin(fmin(ll, lu), fmin(ul, uu)),
		fmax(fmax(ll, lu), fmax(ul, uu)),
	}
}

// MulScalar returns i*s. The bounds swap when s is negative.
func (i Interval) MulScalar(s float64) Interval {
	if s >= 0 {
		return Interval{i.L * s, i.U * s}
	}
	return Interval{i.U * s, i.L * s}
}

// ScalarMul returns s*i.
func ScalarMul(s float64, i Interval) Interval {
	return i.MulScalar(s)
}

// Inverse returns 1/i. If i does not have a definite sign, that is if it
// contains or touches zero, the result is Entire: the half-bounded results
// for intervals with a zero bound are deliberately not returned.
func (i Interval) Inverse() Interval {
	if (i.L > 0 && i.U > 0) || (i.L < 0 && i.U < 0) {
		return Interval{1 / i.U, 1 / i.L}
	}
	return Entire
}

// Div returns i * (1/j).
func (i Interval) Div(j Interval) Interval {
	return i.Mul(j.Inverse())
}

// DivScalar returns i * (1/s).
func (i Interval) DivScalar(s float64) Interval {
	return i.MulScalar(1 / s)
}

// ScalarDiv returns s * (1/i).
func ScalarDiv(s float64, i Interval) Interval {
	return i.Inverse().MulScalar(s)
}

// Neg returns [-i.U, -i.L].
func (i Interval) Neg() Interval {
	return Interval{-i.U, -i.L}
}

// AddInPlace sets i to i+j.
func (i *Interval) AddInPlace(j Interval) {
	i.L += j.L
	i.U += j.U
}

// AddScalarInPlace sets i to i+s.
func (i *Interval) AddScalarInPlace(s float64) {
	i.L += s
	i.U += s
}

// SubInPlace sets i to i-j.
func (i *Interval) SubInPlace(j Interval) {
	i.L, i.U = i.L-j.U, i.U-j.L
}

// SubScalarInPlace sets i to i-s.
func (i *Interval) SubScalarInPlace(s float64) {
	i.L -= s
	i.U -= s
}

// MulInPlace sets i to i*j.
func (i *Interval) MulInPlace(j Interval) {
	*i = i.Mul(j)
}

// MulScalarInPlace sets i to i*s.
func (i *Interval) MulScalarInPlace(s float64) {
	if s >= 0 {
		i.L *= s
		i.U *= s
		return
	}
	i.L, i.U = i.U*s, i.L*s
}

// DivInPlace sets i to i/j.
func (i *Interval) DivInPlace(j Interval) {
	*i = i.Div(j)
}

// DivScalarInPlace sets i to i/s.
func (i *Interval) DivScalarInPlace(s float64) {
	i.MulScalarInPlace(1 / s)
}
