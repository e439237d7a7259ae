package buffer

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// ReadUint64 reads a little-endian uint64 from r into c.
func ReadUint64(r Reader, c *uint64) (n int, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb = [8]byte{}

	if n, err = io.ReadFull(r, bb[:]); err != nil {
		return
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return n, nil
}

// ReadFloat64 reads the IEEE-754 bits of a float64 from r into c.
func ReadFloat64(r Reader, c *float64) (n int, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadFloat64: c is nil")
	}

	var u uint64
	if n, err = ReadUint64(r, &u); err != nil {
		return
	}

	*c = math.Float64frombits(u)

	return
}

// ReadUint64Slice reads len(c) little-endian uint64 from r into c.
func ReadUint64Slice(r Reader, c []uint64) (n int, err error) {
	return readSlice(r, c, func(x uint64) uint64 { return x })
}

// ReadFloat64Slice reads len(c) float64 from r into c.
func ReadFloat64Slice(r Reader, c []float64) (n int, err error) {
	return readSlice(r, c, math.Float64frombits)
}

func readSlice[T any](r Reader, c []T, from func(uint64) T) (n int, err error) {

	for len(c) > 0 {

		// Avoids EOF on the last peek
		size := r.Size()
		if len(c)<<3 < size {
			size = len(c) << 3
		}

		var slice []byte
		if slice, err = r.Peek(size); len(slice) < 8 {
			if err == nil {
				err = io.ErrUnexpectedEOF
			}
			return n, err
		}

		buffered := len(slice) >> 3
		if buffered > len(c) {
			buffered = len(c)
		}

		for i, j := 0, 0; i < buffered; i, j = i+1, j+8 {
			c[i] = from(binary.LittleEndian.Uint64(slice[j:]))
		}

		var inc int
		inc, err = r.Discard(buffered << 3)
		n += inc
		if err != nil {
			return
		}

		c = c[buffered:]
	}

	return n, nil
}
