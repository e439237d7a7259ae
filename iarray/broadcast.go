package iarray

import (
	"fmt"

	"github.com/tuneinsight/interval/ival"
)

// broadcastLen returns the length of the result of an elementwise operation
// on operands of lengths n and m.
func broadcastLen(n, m int) (int, bool) {
	switch {
	case n == m:
		return n, true
	case n == 1:
		return m, true
	case m == 1:
		return n, true
	}
	return 0, false
}

// at returns the index of the operand of length n paired with the k-th result.
func at(k, n int) int {
	if n == 1 {
		return 0
	}
	return k
}

// Map returns op applied to each element of a.
func Map(a Array, op func(ival.Interval) ival.Interval) Array {
	r := make(Array, len(a))
	for k := range a {
		r[k] = op(a[k])
	}
	return r
}

// MapInPlace sets each element of a to op applied to it.
func MapInPlace(a Array, op func(ival.Interval) ival.Interval) {
	for k := range a {
		a[k] = op(a[k])
	}
}

// Map2 returns op applied to the broadcast pairs of elements of a and b.
func Map2(a, b Array, op func(ival.Interval, ival.Interval) ival.Interval) (Array, error) {
	n, ok := broadcastLen(len(a), len(b))
	if !ok {
		return nil, fmt.Errorf("cannot Map2: len(a)=%d, len(b)=%d: %w", len(a), len(b), ErrShape)
	}
	r := make(Array, n)
	for k := range r {
		r[k] = op(a[at(k, len(a))], b[at(k, len(b))])
	}
	return r, nil
}

// Map2InPlace sets each element of a to op applied to it and the matching
// element of b. b must have length one or len(a).
func Map2InPlace(a, b Array, op func(*ival.Interval, ival.Interval)) error {
	if n, ok := broadcastLen(len(a), len(b)); !ok || n != len(a) {
		return fmt.Errorf("cannot Map2InPlace: len(a)=%d, len(b)=%d: %w", len(a), len(b), ErrShape)
	}
	for k := range a {
		op(&a[k], b[at(k, len(b))])
	}
	return nil
}

// MapScalar returns op applied to each element of a and the matching element of s.
func MapScalar(a Array, s []float64, op func(ival.Interval, float64) ival.Interval) (Array, error) {
	n, ok := broadcastLen(len(a), len(s))
	if !ok {
		return nil, fmt.Errorf("cannot MapScalar: len(a)=%d, len(s)=%d: %w", len(a), len(s), ErrShape)
	}
	r := make(Array, n)
	for k := range r {
		r[k] = op(a[at(k, len(a))], s[at(k, len(s))])
	}
	return r, nil
}

// MapScalarInPlace sets each element of a to op applied to it and the
// matching element of s. s must have length one or len(a).
func MapScalarInPlace(a Array, s []float64, op func(*ival.Interval, float64)) error {
	if n, ok := broadcastLen(len(a), len(s)); !ok || n != len(a) {
		return fmt.Errorf("cannot MapScalarInPlace: len(a)=%d, len(s)=%d: %w", len(a), len(s), ErrShape)
	}
	for k := range a {
		op(&a[k], s[at(k, len(s))])
	}
	return nil
}

// MapScalarLeft returns op applied to each element of s and the matching element of a.
func MapScalarLeft(s []float64, a Array, op func(float64, ival.Interval) ival.Interval) (Array, error) {
	n, ok := broadcastLen(len(s), len(a))
	if !ok {
		return nil, fmt.Errorf("cannot MapScalarLeft: len(s)=%d, len(a)=%d: %w", len(s), len(a), ErrShape)
	}
	r := make(Array, n)
	for k := range r {
		r[k] = op(s[at(k, len(s))], a[at(k, len(a))])
	}
	return r, nil
}

// MapPredicate returns op applied to the broadcast pairs of elements of a and b.
func MapPredicate(a, b Array, op func(ival.Interval, ival.Interval) bool) ([]bool, error) {
	n, ok := broadcastLen(len(a), len(b))
	if !ok {
		return nil, fmt.Errorf("cannot MapPredicate: len(a)=%d, len(b)=%d: %w", len(a), len(b), ErrShape)
	}
	r := make([]bool, n)
	for k := range r {
		r[k] = op(a[at(k, len(a))], b[at(k, len(b))])
	}
	return r, nil
}

// MapNorm returns op applied to each element of a.
func MapNorm(a Array, op func(ival.Interval) float64) []float64 {
	r := make([]float64, len(a))
	for k := range a {
		r[k] = op(a[k])
	}
	return r
}

// Norm returns the width of each element of a.
func (a Array) Norm() []float64 {
	return MapNorm(a, ival.Interval.Norm)
}

// NonZero returns whether each element of a is not [0, 0].
func (a Array) NonZero() []bool {
	r := make([]bool, len(a))
	for k := range a {
		r[k] = a[k].NonZero()
	}
	return r
}

// Apply returns the named unary operation applied to each element of a.
func Apply(name string, a Array) (Array, error) {
	op, ok := ival.LookupUnary(name)
	if !ok {
		return nil, fmt.Errorf("cannot Apply: unknown unary operation %q", name)
	}
	return Map(a, op), nil
}

// Apply2 returns the named binary operation applied to a and b.
func Apply2(name string, a, b Array) (Array, error) {
	op, ok := ival.LookupBinary(name)
	if !ok {
		return nil, fmt.Errorf("cannot Apply2: unknown binary operation %q", name)
	}
	return Map2(a, b, op)
}

// ApplyScalar returns the named interval, scalar operation applied to a and s.
func ApplyScalar(name string, a Array, s []float64) (Array, error) {
	op, ok := ival.LookupScalar(name)
	if !ok {
		return nil, fmt.Errorf("cannot ApplyScalar: unknown scalar operation %q", name)
	}
	return MapScalar(a, s, op)
}

// ApplyScalarLeft returns the named scalar, interval operation applied to s and a.
func ApplyScalarLeft(name string, s []float64, a Array) (Array, error) {
	op, ok := ival.LookupScalarLeft(name)
	if !ok {
		return nil, fmt.Errorf("cannot ApplyScalarLeft: unknown scalar operation %q", name)
	}
	return MapScalarLeft(s, a, op)
}

// ApplyPredicate returns the named predicate applied to a and b.
func ApplyPredicate(name string, a, b Array) ([]bool, error) {
	op, ok := ival.LookupPredicate(name)
	if !ok {
		return nil, fmt.Errorf("cannot ApplyPredicate: unknown predicate %q", name)
	}
	return MapPredicate(a, b, op)
}
