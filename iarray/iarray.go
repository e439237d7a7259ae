// Package iarray implements arrays of intervals: elementwise application of
// the ival operations with broadcasting, conversions between arrays of
// intervals and arrays of bounds, and the aggregates built on addition and
// multiplication (Sum, Dot, MatMul).
//
// Broadcasting follows the usual rule for one dimension: two operands must
// have the same length, or one of them must have length one, in which case
// its single element is paired with every element of the other.
package iarray

import (
	"errors"
	"fmt"

	"github.com/tuneinsight/interval/ival"
)

// ErrShape is returned when the shapes of operands are incompatible.
var ErrShape = errors.New("incompatible shapes")

// Array is a one-dimensional array of intervals.
type Array []ival.Interval

// Matrix is a two-dimensional, row-major array of intervals.
type Matrix []Array

// NewArray returns an array of n zero intervals.
func NewArray(n int) Array {
	return make(Array, n)
}

// Full returns an array of n copies of v.
func Full(n int, v ival.Interval) (a Array) {
	a = make(Array, n)
	a.Fill(v)
	return
}

// Fill sets every element of a to v.
func (a Array) Fill(v ival.Interval) {
	for k := range a {
		a[k] = v
	}
}

// CopyNew returns a deep copy of a.
func (a Array) CopyNew() Array {
	b := make(Array, len(a))
	copy(b, a)
	return b
}

// Equal returns true if a and b have the same length and equal elements.
func (a Array) Equal(b Array) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if a[k].NotEqual(b[k]) {
			return false
		}
	}
	return true
}

// FromScalars lifts each element of s to a degenerate interval.
func FromScalars[T ival.Number](s []T) Array {
	a := make(Array, len(s))
	for k := range s {
		a[k] = ival.Lift(s[k])
	}
	return a
}

// FromBools lifts each element of s to [1, 1] or [0, 0].
func FromBools(s []bool) Array {
	a := make(Array, len(s))
	for k := range s {
		a[k] = ival.LiftBool(s[k])
	}
	return a
}

// FromBounds returns the array of intervals spanned by l[k] and u[k].
// Pairs given in decreasing order are swapped.
func FromBounds(l, u []float64) (Array, error) {
	if len(l) != len(u) {
		return nil, fmt.Errorf("cannot FromBounds: len(l)=%d != len(u)=%d: %w", len(l), len(u), ErrShape)
	}
	a := make(Array, len(l))
	for k := range l {
		a[k] = ival.Normalize(l[k], u[k])
	}
	return a, nil
}

// FromLU returns the array of intervals spanned by the pairs of lu.
// Pairs given in decreasing order are swapped.
func FromLU(lu [][2]float64) Array {
	a := make(Array, len(lu))
	for k := range lu {
		a[k] = ival.Normalize(lu[k][0], lu[k][1])
	}
	return a
}

// FromCenterRadius returns the array of intervals [c[k]-r[k], c[k]+r[k]].
func FromCenterRadius(c, r []float64) (Array, error) {
	if len(c) != len(r) {
		return nil, fmt.Errorf("cannot FromCenterRadius: len(c)=%d != len(r)=%d: %w", len(c), len(r), ErrShape)
	}
	a := make(Array, len(c))
	for k := range c {
		a[k] = ival.FromCenter(c[k], r[k])
	}
	return a, nil
}

// Bounds returns the lower and upper bounds of the elements of a.
func (a Array) Bounds() (l, u []float64) {
	l = make([]float64, len(a))
	u = make([]float64, len(a))
	for k := range a {
		l[k], u[k] = a[k].L, a[k].U
	}
	return
}

// LU returns the bounds of the elements of a as pairs.
func (a Array) LU() (lu [][2]float64) {
	lu = make([][2]float64, len(a))
	for k := range a {
		lu[k] = [2]float64{a[k].L, a[k].U}
	}
	return
}

// CenterRadius returns the centers and radii of the elements of a.
func (a Array) CenterRadius() (c, r []float64) {
	c = make([]float64, len(a))
	r = make([]float64, len(a))
	for k := range a {
		c[k], r[k] = a[k].Center(), a[k].Radius()
	}
	return
}

// Width returns the widths of the elements of a, divided by scale if given.
// scale must have length one or len(a).
func (a Array) Width(scale ...float64) ([]float64, error) {

	w := a.Norm()

	if len(scale) == 0 {
		return w, nil
	}

	n, ok := broadcastLen(len(w), len(scale))
	if !ok || n != len(w) {
		return nil, fmt.Errorf("cannot Width: len(scale)=%d for len(a)=%d: %w", len(scale), len(a), ErrShape)
	}

	for k := range w {
		w[k] /= scale[at(k, len(scale))]
	}

	return w, nil
}

// HasNaN returns true if any bound of a is NaN.
func (a Array) HasNaN() bool {
	for k := range a {
		if a[k].HasNaN() {
			return true
		}
	}
	return false
}

// Hull returns the smallest interval containing every element of a, or
// Empty if a is empty.
func (a Array) Hull() ival.Interval {
	if len(a) == 0 {
		return ival.Empty
	}
	h := a[0]
	for _, v := range a[1:] {
		h = h.Union(v)
	}
	return h
}

// Bisections returns the 2^len(a) boxes obtained by halving every element of
// a at its center. Box b takes the upper half of element k if bit k of b is
// set, and the lower half otherwise.
func (a Array) Bisections() ([]Array, error) {

	if len(a) > 20 {
		return nil, fmt.Errorf("cannot Bisections: 2^%d boxes is too many", len(a))
	}

	lo, hi := make(Array, len(a)), make(Array, len(a))
	for k := range a {
		lo[k], hi[k] = a[k].Bisect()
	}

	boxes := make([]Array, 1<<len(a))
	for b := range boxes {
		box := make(Array, len(a))
		for k := range a {
			if (b>>k)&1 == 1 {
				box[k] = hi[k]
			} else {
				box[k] = lo[k]
			}
		}
		boxes[b] = box
	}

	return boxes, nil
}
