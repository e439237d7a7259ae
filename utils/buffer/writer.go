package buffer

import (
	"encoding/binary"
	"fmt"
	"math"
)

// WriteUint64 writes c to w.
func WriteUint64(w Writer, c uint64) (n int64, err error) {

	if w.Available()>>3 == 0 {
		if err = w.Flush(); err != nil {
			return
		}

		if w.Available()>>3 == 0 {
			return 0, fmt.Errorf("cannot WriteUint64: available buffer/8 is zero even after flush")
		}
	}

	buf := w.AvailableBuffer()[:8]

	binary.LittleEndian.PutUint64(buf, c)

	nint, err := w.Write(buf)

	return int64(nint), err
}

// WriteFloat64 writes the IEEE-754 bits of c to w.
func WriteFloat64(w Writer, c float64) (n int64, err error) {
	return WriteUint64(w, math.Float64bits(c))
}

// WriteFloat64Slice writes the IEEE-754 bits of each element of c to w.
// The slice length is not written.
func WriteFloat64Slice(w Writer, c []float64) (n int64, err error) {
	return writeSlice(w, c, math.Float64bits)
}

// WriteUint64Slice writes each element of c to w.
// The slice length is not written.
func WriteUint64Slice(w Writer, c []uint64) (n int64, err error) {
	return writeSlice(w, c, func(x uint64) uint64 { return x })
}

func writeSlice[T any](w Writer, c []T, bits func(T) uint64) (n int64, err error) {

	for len(c) > 0 {

		// Remaining available space in the internal buffer
		available := w.Available() >> 3

		if available == 0 {
			if err = w.Flush(); err != nil {
				return
			}

			if available = w.Available() >> 3; available == 0 {
				return n, fmt.Errorf("cannot WriteSlice: available buffer/8 is zero even after flush")
			}
		}

		m := len(c)
		if m > available {
			m = available
		}

		buf := w.AvailableBuffer()[:m<<3]
		for i := 0; i < m; i++ {
			binary.LittleEndian.PutUint64(buf[i<<3:], bits(c[i]))
		}

		var inc int
		inc, err = w.Write(buf)
		n += int64(inc)
		if err != nil {
			return
		}

		c = c[m:]
	}

	return
}
