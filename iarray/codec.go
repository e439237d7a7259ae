package iarray

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tuneinsight/interval/utils/buffer"
	"github.com/tuneinsight/interval/utils/structs"
	"github.com/zeebo/blake3"
)

// BinarySize returns the serialized size of a in bytes: an 8-byte length
// followed by the bounds of each element.
func (a Array) BinarySize() int {
	return 8 + 16*len(a)
}

// WriteTo writes the length of a followed by the bounds of its elements,
// lower first, as little-endian IEEE-754 doubles on w.
// It implements the io.WriterTo interface.
//
// Unless w implements the buffer.Writer interface (see utils/buffer), it is
// wrapped into a bufio.Writer.
func (a Array) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteUint64(w, uint64(len(a))); err != nil {
			return inc, fmt.Errorf("buffer.WriteUint64: %w", err)
		}
		n += inc

		l, u := a.Bounds()
		bounds := make([]float64, 0, 2*len(a))
		for k := range l {
			bounds = append(bounds, l[k], u[k])
		}

		if inc, err = buffer.WriteFloat64Slice(w, bounds); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteFloat64Slice: %w", err)
		}
		n += inc

		return n, w.Flush()

	default:
		return a.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on a an array written by WriteTo. The backing array of a is
// reused if it has enough capacity.
// It implements the io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface (see utils/buffer), it is
// wrapped into a bufio.Reader, which may read ahead of the array.
func (a *Array) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:

		var size uint64
		var inc int
		if inc, err = buffer.ReadUint64(r, &size); err != nil {
			return int64(inc), fmt.Errorf("buffer.ReadUint64: %w", err)
		}
		n += int64(inc)

		if size > 1<<32 {
			return n, fmt.Errorf("cannot ReadFrom: invalid length %d", size)
		}

		bounds := make([]float64, 2*size)
		if inc, err = buffer.ReadFloat64Slice(r, bounds); err != nil {
			return n + int64(inc), fmt.Errorf("buffer.ReadFloat64Slice: %w", err)
		}
		n += int64(inc)

		if uint64(cap(*a)) < size {
			*a = make(Array, size)
		}
		*a = (*a)[:size]

		for k := range *a {
			(*a)[k].L, (*a)[k].U = bounds[2*k], bounds[2*k+1]
		}

		return n, nil

	default:
		return a.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes a on a newly allocated slice of bytes.
func (a Array) MarshalBinary() (p []byte, err error) {
	p = make([]byte, a.BinarySize())
	_, err = a.WriteTo(buffer.NewBuffer(p))
	return
}

// UnmarshalBinary decodes a slice of bytes generated by MarshalBinary or
// WriteTo on a.
func (a *Array) UnmarshalBinary(p []byte) (err error) {
	_, err = a.ReadFrom(buffer.NewBuffer(p))
	return
}

// Digest returns the blake3 hash of the binary representation of a.
func (a Array) Digest() (d [32]byte, err error) {
	h := blake3.New()
	if _, err = a.WriteTo(h); err != nil {
		return d, fmt.Errorf("cannot Digest: %w", err)
	}
	copy(d[:], h.Sum(nil))
	return
}

// BinarySize returns the serialized size of m in bytes: an 8-byte number of
// rows followed by each row serialized as an Array.
func (m Matrix) BinarySize() int {
	return structs.Vector[Array](m).BinarySize()
}

// WriteTo writes the number of rows of m followed by its rows on w.
// It implements the io.WriterTo interface.
func (m Matrix) WriteTo(w io.Writer) (n int64, err error) {
	return structs.Vector[Array](m).WriteTo(w)
}

// ReadFrom reads on m a matrix written by WriteTo.
// It implements the io.ReaderFrom interface.
func (m *Matrix) ReadFrom(r io.Reader) (n int64, err error) {
	return (*structs.Vector[Array])(m).ReadFrom(r)
}

// MarshalBinary encodes m on a newly allocated slice of bytes.
func (m Matrix) MarshalBinary() (p []byte, err error) {
	return structs.Vector[Array](m).MarshalBinary()
}

// UnmarshalBinary decodes a slice of bytes generated by MarshalBinary or
// WriteTo on m.
func (m *Matrix) UnmarshalBinary(p []byte) (err error) {
	return (*structs.Vector[Array])(m).UnmarshalBinary(p)
}
