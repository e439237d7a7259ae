package structs

import (
	"bytes"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/interval/utils/buffer"
)

// pair is a fixed-size serializable test element.
type pair struct {
	a, b uint64
}

func (p *pair) CopyNew() pair {
	return *p
}

func (p *pair) BinarySize() int {
	return 16
}

func (p *pair) WriteTo(w io.Writer) (n int64, err error) {
	return buffer.WriteUint64Slice(w.(buffer.Writer), []uint64{p.a, p.b})
}

func (p *pair) ReadFrom(r io.Reader) (n int64, err error) {
	s := make([]uint64, 2)
	inc, err := buffer.ReadUint64Slice(r.(buffer.Reader), s)
	p.a, p.b = s[0], s[1]
	return int64(inc), err
}

func TestStructs(t *testing.T) {

	t.Run("Vector/Uint64/Serialization", func(t *testing.T) {
		testVector(t, Vector[uint64]{0, 1, 1 << 63, 42})
	})

	t.Run("Vector/Float64/Serialization", func(t *testing.T) {
		testVector(t, Vector[float64]{0, -1.5, 1e300, 0.1})
	})

	t.Run("Vector/Struct/Serialization", func(t *testing.T) {
		v := Vector[pair]{{1, 2}, {3, 4}, {5, 6}}
		require.Equal(t, 8+3*16, v.BinarySize())

		data, err := v.MarshalBinary()
		require.NoError(t, err)
		var vNew Vector[pair]
		require.NoError(t, vNew.UnmarshalBinary(data))
		require.True(t, cmp.Equal(v, vNew, cmp.AllowUnexported(pair{})))

		buf := new(bytes.Buffer)
		n, err := v.WriteTo(buf)
		require.NoError(t, err)
		require.Equal(t, int64(v.BinarySize()), n)
		vNew = vNew[:0]
		m, err := vNew.ReadFrom(buf)
		require.NoError(t, err)
		require.Equal(t, n, m)
		require.True(t, cmp.Equal(v, vNew, cmp.AllowUnexported(pair{})))
	})

	t.Run("Vector/Struct/CopyNew", func(t *testing.T) {
		v := Vector[pair]{{1, 2}}
		c := v.CopyNew()
		c[0].a = 7
		require.Equal(t, uint64(1), v[0].a)
	})

	t.Run("Vector/Truncated", func(t *testing.T) {
		data, err := Vector[uint64]{1, 2, 3}.MarshalBinary()
		require.NoError(t, err)
		var v Vector[uint64]
		require.Error(t, v.UnmarshalBinary(data[:len(data)-3]))
	})

	t.Run("Vector/Unsupported", func(t *testing.T) {
		require.Panics(t, func() { Vector[string]{"a"}.BinarySize() })
		require.Panics(t, func() { Vector[string]{"a"}.CopyNew() })
		_, err := Vector[string]{"a"}.WriteTo(new(bytes.Buffer))
		require.Error(t, err)
	})
}

func testVector[T uint64 | float64](t *testing.T, v Vector[T]) {
	data, err := v.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, v.BinarySize())
	vNew := Vector[T]{}
	require.NoError(t, vNew.UnmarshalBinary(data))
	require.True(t, cmp.Equal(v, vNew))
	require.True(t, cmp.Equal(v, v.CopyNew()))
}
