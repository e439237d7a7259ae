package ival

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/tuneinsight/interval/utils/buffer"
	"github.com/zeebo/blake3"
)

// BinarySize returns the serialized size of an Interval in bytes.
func (i Interval) BinarySize() int {
	return 16
}

// WriteTo writes the bounds of i, lower first, as little-endian IEEE-754
// doubles on w. It implements the io.WriterTo interface.
//
// Unless w implements the buffer.Writer interface (see utils/buffer), it is
// wrapped into a bufio.Writer.
func (i Interval) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteFloat64(w, i.L); err != nil {
			return inc, fmt.Errorf("buffer.WriteFloat64: %w", err)
		}
		n += inc

		if inc, err = buffer.WriteFloat64(w, i.U); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteFloat64: %w", err)
		}
		n += inc

		return n, w.Flush()

	default:
		return i.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads the bounds of i from r. It implements the io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface (see utils/buffer), it is
// wrapped into a bufio.Reader, which may read ahead of the interval.
func (i *Interval) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:

		var bounds [2]float64
		var inc int
		if inc, err = buffer.ReadFloat64Slice(r, bounds[:]); err != nil {
			return int64(inc), fmt.Errorf("buffer.ReadFloat64Slice: %w", err)
		}

		i.L, i.U = bounds[0], bounds[1]

		return int64(inc), nil

	default:
		return i.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes i on a newly allocated slice of bytes.
func (i Interval) MarshalBinary() (p []byte, err error) {
	p = make([]byte, i.BinarySize())
	_, err = i.Encode(p)
	return
}

// UnmarshalBinary decodes a slice of bytes generated by MarshalBinary or
// WriteTo on i.
func (i *Interval) UnmarshalBinary(p []byte) (err error) {
	_, err = i.Decode(p)
	return
}

// Encode encodes i on p and returns the number of bytes written.
func (i Interval) Encode(p []byte) (n int, err error) {
	if len(p) < i.BinarySize() {
		return 0, fmt.Errorf("cannot Encode: len(p)=%d < %d", len(p), i.BinarySize())
	}
	var inc int64
	inc, err = i.WriteTo(buffer.NewBuffer(p))
	return int(inc), err
}

// Decode decodes p on i and returns the number of bytes read.
func (i *Interval) Decode(p []byte) (n int, err error) {
	if len(p) < i.BinarySize() {
		return 0, fmt.Errorf("cannot Decode: len(p)=%d < %d", len(p), i.BinarySize())
	}
	var inc int64
	inc, err = i.ReadFrom(buffer.NewBuffer(p[:i.BinarySize()]))
	return int(inc), err
}

// Digest returns the blake3 hash of the binary representation of i.
// Equal bounds give equal digests, except that 0 and -0 differ, as do
// NaN with different payloads.
func (i Interval) Digest() [32]byte {
	var p [16]byte
	// Encode never fails on 16 bytes.
	_, _ = i.Encode(p[:])
	return blake3.Sum256(p[:])
}

// Bits returns the IEEE-754 representation of the bounds of i.
func (i Interval) Bits() (l, u uint64) {
	return math.Float64bits(i.L), math.Float64bits(i.U)
}
