package iarray

import (
	"fmt"

	"github.com/tuneinsight/interval/ival"
	"github.com/tuneinsight/interval/utils"
	"github.com/tuneinsight/interval/utils/structs"
)

// Sum returns the sum of the elements of a, starting from [0, 0].
func (a Array) Sum() (r ival.Interval) {
	for k := range a {
		r.AddInPlace(a[k])
	}
	return
}

// Dot returns the sum of the products a[k]*b[k], starting from [0, 0].
// a and b must have the same length.
func Dot(a, b Array) (r ival.Interval, err error) {
	if len(a) != len(b) {
		return r, fmt.Errorf("cannot Dot: len(a)=%d != len(b)=%d: %w", len(a), len(b), ErrShape)
	}
	for k := range a {
		r.AddInPlace(a[k].Mul(b[k]))
	}
	return
}

// NewMatrix returns a rows x cols matrix of zero intervals.
func NewMatrix(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = NewArray(cols)
	}
	return m
}

// CopyNew returns a deep copy of m.
func (m Matrix) CopyNew() Matrix {
	return Matrix(structs.Vector[Array](m).CopyNew())
}

// Dims returns the number of rows and columns of m, or an error if the
// rows do not all have the same length.
func (m Matrix) Dims() (rows, cols int, err error) {
	rows = len(m)
	if rows == 0 {
		return
	}
	cols = len(m[0])
	for i := range m {
		if len(m[i]) != cols {
			return 0, 0, fmt.Errorf("cannot Dims: row %d has %d columns, expected %d: %w", i, len(m[i]), cols, ErrShape)
		}
	}
	return
}

// Col returns a copy of column j of m.
func (m Matrix) Col(j int) Array {
	c := make(Array, len(m))
	for i := range m {
		c[i] = m[i][j]
	}
	return c
}

// MatMul returns the matrix product a x b.
func MatMul(a, b Matrix) (Matrix, error) {

	n, m, err := a.Dims()
	if err != nil {
		return nil, fmt.Errorf("cannot MatMul: %w", err)
	}

	mb, p, err := b.Dims()
	if err != nil {
		return nil, fmt.Errorf("cannot MatMul: %w", err)
	}

	if m != mb {
		return nil, fmt.Errorf("cannot MatMul: (%d x %d) x (%d x %d): %w", n, m, mb, p, ErrShape)
	}

	cols := make([]Array, p)
	for j := range cols {
		cols[j] = b.Col(j)
	}

	r := NewMatrix(n, p)
	for i := 0; i < n; i++ {
		for j := 0; j < p; j++ {
			// Dims checked the lengths.
			r[i][j], _ = Dot(a[i], cols[j])
		}
	}

	return r, nil
}

// MatVec writes the product m x v on out, which must not share memory with v.
func MatVec(m Matrix, v, out Array) error {

	rows, cols, err := m.Dims()
	if err != nil {
		return fmt.Errorf("cannot MatVec: %w", err)
	}

	if rows > 0 && cols != len(v) || len(out) != rows {
		return fmt.Errorf("cannot MatVec: (%d x %d) x %d -> %d: %w", rows, cols, len(v), len(out), ErrShape)
	}

	if utils.Alias1D(v, out) {
		return fmt.Errorf("cannot MatVec: out aliases v")
	}

	for i := range m {
		out[i], _ = Dot(m[i], v)
	}

	return nil
}
