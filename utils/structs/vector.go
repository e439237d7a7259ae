package structs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tuneinsight/interval/utils/buffer"
)

// Vector is a slice of components of type T.
// T can be:
//   - uint64 or float64.
//   - Or any object whose pointer implements CopyNewer, BinarySizer,
//     io.WriterTo or io.ReaderFrom depending on the method called.
type Vector[T any] []T

// CopyNew returns a deep copy of the object.
// If T is not a number, this method requires that *T implements CopyNewer[T].
func (v Vector[T]) CopyNew() (vcpy Vector[T]) {

	vcpy = make(Vector[T], len(v))

	var t T
	switch any(t).(type) {
	case uint64, float64:
		copy(vcpy, v)
	default:
		if _, isCopiable := any(&t).(CopyNewer[T]); !isCopiable {
			panic(fmt.Errorf("vector component of type %T does not comply to %T", t, new(CopyNewer[T])))
		}

		for i := range v {
			vcpy[i] = any(&v[i]).(CopyNewer[T]).CopyNew()
		}
	}

	return
}

// BinarySize returns the serialized size of the object in bytes.
// If T is not a number, this method requires that *T implements BinarySizer.
func (v Vector[T]) BinarySize() (size int) {

	var t T
	switch any(t).(type) {
	case uint64, float64:
		return 8 + len(v)*8
	default:
		if _, isSizable := any(&t).(BinarySizer); !isSizable {
			panic(fmt.Errorf("vector component of type %T does not comply to %T", t, new(BinarySizer)))
		}

		size += 8
		for i := range v {
			size += any(&v[i]).(BinarySizer).BinarySize()
		}
	}

	return
}

// WriteTo writes the length of the object followed by its components on w.
// It implements the io.WriterTo interface, and writes exactly
// object.BinarySize() bytes on w.
//
// If T is not a number, this method requires that *T implements io.WriterTo.
//
// Unless w implements the buffer.Writer interface (see utils/buffer), it is
// wrapped into a bufio.Writer. When writing to a pre-allocated p []byte, pass
// buffer.NewBuffer(p) as w.
func (v Vector[T]) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteUint64(w, uint64(len(v))); err != nil {
			return inc, fmt.Errorf("buffer.WriteUint64: %w", err)
		}

		n += inc

		var t T
		switch s := any([]T(v)).(type) {
		case []uint64:

			if inc, err = buffer.WriteUint64Slice(w, s); err != nil {
				return n + inc, fmt.Errorf("buffer.WriteUint64Slice: %w", err)
			}

			n += inc

		case []float64:

			if inc, err = buffer.WriteFloat64Slice(w, s); err != nil {
				return n + inc, fmt.Errorf("buffer.WriteFloat64Slice: %w", err)
			}

			n += inc

		default:

			if _, isWritable := any(&t).(io.WriterTo); !isWritable {
				return n, fmt.Errorf("vector component of type %T does not comply to %T", t, new(io.WriterTo))
			}

			for i := range v {
				if inc, err = any(&v[i]).(io.WriterTo).WriteTo(w); err != nil {
					return n + inc, fmt.Errorf("%T.WriteTo: %w", t, err)
				}
				n += inc
			}
		}

		return n, w.Flush()

	default:
		return v.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface. The backing array of the object is reused if it
// has enough capacity.
//
// If T is not a number, this method requires that *T implements io.ReaderFrom.
//
// Unless r implements the buffer.Reader interface (see utils/buffer), it is
// wrapped into a bufio.Reader. When reading from p []byte, pass
// buffer.NewBuffer(p) as r.
func (v *Vector[T]) ReadFrom(r io.Reader) (n int64, err error) {

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

		if uint64(cap(*v)) < size {
			*v = make([]T, size)
		}

		*v = (*v)[:size]

		var t T
		switch s := any([]T(*v)).(type) {
		case []uint64:

			if inc, err = buffer.ReadUint64Slice(r, s); err != nil {
				return n + int64(inc), fmt.Errorf("buffer.ReadUint64Slice: %w", err)
			}

			n += int64(inc)

		case []float64:

			if inc, err = buffer.ReadFloat64Slice(r, s); err != nil {
				return n + int64(inc), fmt.Errorf("buffer.ReadFloat64Slice: %w", err)
			}

			n += int64(inc)

		default:

			if _, isReadable := any(&t).(io.ReaderFrom); !isReadable {
				return n, fmt.Errorf("vector component of type %T does not comply to %T", t, new(io.ReaderFrom))
			}

			for i := range *v {
				var inc64 int64
				if inc64, err = any(&(*v)[i]).(io.ReaderFrom).ReadFrom(r); err != nil {
					return n + inc64, fmt.Errorf("%T.ReadFrom: %w", t, err)
				}
				n += inc64
			}
		}

		return n, nil

	default:
		return v.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
// If T is not a number, this method requires that *T implements io.WriterTo.
func (v Vector[T]) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(v.BinarySize())
	_, err = v.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
// If T is not a number, this method requires that *T implements io.ReaderFrom.
func (v *Vector[T]) UnmarshalBinary(p []byte) (err error) {
	_, err = v.ReadFrom(buffer.NewBuffer(p))
	return
}
