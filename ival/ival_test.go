package ival

import (
	"bytes"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/interval/utils/sampling"
)

var inf = math.Inf(1)

// testIntervals returns well-formed intervals of every sign configuration.
func testIntervals() []Interval {
	return []Interval{
		{1, 2}, {3, 4}, {-2, -1}, {-4, -3}, {-1, 2}, {-3, 0.5},
		{0, 2}, {-2, 0}, {0, 0}, {5, 5}, {-0.25, -0.25}, {-1e3, 1e-3},
		{0.1, 0.7}, {-7.5, 12.25},
	}
}

func requireInterval(t *testing.T, want, have Interval) {
	t.Helper()
	require.Equal(t, want.L, have.L, "lower bound of %v", have)
	require.Equal(t, want.U, have.U, "upper bound of %v", have)
}

func requireEncloses(t *testing.T, i Interval, x float64, msg string) {
	t.Helper()
	tol := 1e-12 * math.Max(1, math.Abs(x))
	require.True(t, i.L-tol <= x && x <= i.U+tol, "%s: %v does not enclose %v", msg, i, x)
}

func TestConcrete(t *testing.T) {
	requireInterval(t, Interval{4, 6}, New(1, 2).Add(New(3, 4)))
	requireInterval(t, Interval{-3, -2}, New(1, 2).Sub(New(3, 4)))
	requireInterval(t, Interval{-8, 4}, New(-1, 2).Mul(New(3, -4)))
	requireInterval(t, Interval{0.25, 0.5}, New(2, 4).Inverse())
	require.True(t, New(0, 2).Intersection(New(3, 5)).IsEmpty())
	require.True(t, math.IsNaN(New(0, 2).Intersection(New(3, 5)).L))
	require.True(t, math.IsNaN(New(0, 2).Intersection(New(3, 5)).U))
}

func TestScalarArithmetic(t *testing.T) {
	i := New(1, 2)
	requireInterval(t, Interval{4, 5}, i.AddScalar(3))
	requireInterval(t, Interval{4, 5}, ScalarAdd(3, i))
	requireInterval(t, Interval{-2, -1}, i.SubScalar(3))
	requireInterval(t, Interval{1, 2}, ScalarSub(3, i))
	requireInterval(t, Interval{2, 4}, i.MulScalar(2))
	requireInterval(t, Interval{-4, -2}, i.MulScalar(-2))
	requireInterval(t, Interval{-4, -2}, ScalarMul(-2, i))
	requireInterval(t, Interval{0.5, 1}, i.DivScalar(2))
	requireInterval(t, Interval{-1, -0.5}, i.DivScalar(-2))
	requireInterval(t, Interval{2, 4}, ScalarDiv(4, i))
	requireInterval(t, Interval{-4, -2}, ScalarDiv(-4, i))
	require.True(t, ScalarDiv(1, New(-1, 1)).IsEntire())
	requireInterval(t, Interval{-2, -1}, i.Neg())
}

func TestMultiplicationConsistency(t *testing.T) {
	for _, i := range testIntervals() {
		for _, s := range []float64{0, 1, -1, 2.5, -3.75, 1e-9, -1e9} {
			requireInterval(t, Lift(s).Mul(i), i.MulScalar(s))
			requireInterval(t, i.Mul(Lift(s)), i.MulScalar(s))
		}
	}
}

func TestMultiplicationIndeterminate(t *testing.T) {
	// 0*Inf products are ignored, as long as another product is a number.
	require.True(t, New(0, 1).Mul(Entire).IsEntire())
	require.True(t, New(0, 1).Div(New(-1, 1)).IsEntire())
	requireInterval(t, Interval{0, inf}, New(0, 1).Mul(New(1, inf)))
}

func TestDivision(t *testing.T) {

	t.Run("Inverse", func(t *testing.T) {
		requireInterval(t, Interval{-0.5, -0.25}, New(-4, -2).Inverse())
		for _, i := range []Interval{{-1, 1}, {0, 1}, {-1, 0}, {0, 0}, Empty} {
			require.True(t, i.Inverse().IsEntire(), "%v", i)
		}
	})

	t.Run("SelfInverse", func(t *testing.T) {
		for _, i := range testIntervals() {
			r := i.Div(i)
			if i.L > 0 || i.U < 0 {
				if !i.IsDegenerate() {
					require.True(t, r.Contains(1), "%v / %v = %v", i, i, r)
				}
			} else {
				require.True(t, r.IsEntire() || (i.IsDegenerate() && r.HasNaN()), "%v / %v = %v", i, i, r)
			}
		}
	})
}

func TestEnclosure(t *testing.T) {

	prng, err := sampling.NewKeyedPRNG([]byte("enclosure"))
	require.NoError(t, err)

	sample := func(i Interval) float64 {
		x, err := sampling.Uniform(prng, i.L, i.U)
		require.NoError(t, err)
		return x
	}

	ops := []struct {
		name  string
		op    func(i, j Interval) Interval
		point func(a, b float64) float64
	}{
		{"add", Interval.Add, func(a, b float64) float64 { return a + b }},
		{"subtract", Interval.Sub, func(a, b float64) float64 { return a - b }},
		{"multiply", Interval.Mul, func(a, b float64) float64 { return a * b }},
		{"divide", Interval.Div, func(a, b float64) float64 { return a / b }},
	}

	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			for _, i := range testIntervals() {
				for _, j := range testIntervals() {
					r := op.op(i, j)
					if r.HasNaN() {
						// 0 * Entire: the indeterminate products leave no bound.
						require.True(t, i.Equal(Zero), "%v %s %v = %v", i, op.name, j, r)
						continue
					}
					require.LessOrEqual(t, r.L, r.U, "%v %s %v = %v", i, op.name, j, r)
					for k := 0; k < 16; k++ {
						a, b := sample(i), sample(j)
						if op.name == "divide" && b == 0 {
							continue
						}
						requireEncloses(t, r, op.point(a, b), fmt.Sprintf("%v %s %v", i, op.name, j))
					}
				}
			}
		})
	}

	unary := []struct {
		name  string
		op    func(i Interval) Interval
		point func(a float64) float64
	}{
		{"sin", Interval.Sin, math.Sin},
		{"cos", Interval.Cos, math.Cos},
		{"tan", Interval.Tan, math.Tan},
		{"arctan", Interval.Atan, math.Atan},
		{"tanh", Interval.Tanh, math.Tanh},
		{"exp", Interval.Exp, math.Exp},
		{"square", Interval.Square, func(a float64) float64 { return a * a }},
		{"cube", func(i Interval) Interval { return i.PowScalar(3) }, func(a float64) float64 { return a * a * a }},
		{"negative", Interval.Neg, func(a float64) float64 { return -a }},
	}

	for _, op := range unary {
		t.Run(op.name, func(t *testing.T) {
			for _, i := range append(testIntervals(), Interval{-10, 10}, Interval{2, 5}, Interval{-6.5, -1}) {
				r := op.op(i)
				require.LessOrEqual(t, r.L, r.U, "%s(%v) = %v", op.name, i, r)
				for k := 0; k < 32; k++ {
					requireEncloses(t, r, op.point(sample(i)), fmt.Sprintf("%s(%v)", op.name, i))
				}
			}
		})
	}
}

func TestPower(t *testing.T) {

	t.Run("Square", func(t *testing.T) {
		requireInterval(t, Interval{0, 4}, New(-1, 2).Square())
		requireInterval(t, Interval{1, 4}, New(1, 2).Square())
		requireInterval(t, Interval{1, 4}, New(-2, -1).Square())
		requireInterval(t, Interval{0, 9}, New(-3, 0).Square())
	})

	t.Run("Positive", func(t *testing.T) {
		requireInterval(t, Interval{1, math.Sqrt(2)}, New(1, 2).PowScalar(0.5))
		requireInterval(t, Interval{8, 27}, New(2, 3).PowScalar(3))
		requireInterval(t, Interval{1, 1}, New(2, 3).PowScalar(0))
	})

	t.Run("Odd", func(t *testing.T) {
		requireInterval(t, Interval{-8, 27}, New(-2, 3).PowScalar(3))
		requireInterval(t, Interval{-27, -8}, New(-3, -2).PowScalar(3))
		requireInterval(t, Interval{-1, 2}, New(-1, 2).PowScalar(1))
	})

	t.Run("Even", func(t *testing.T) {
		requireInterval(t, Interval{0, 81}, New(-3, 2).PowScalar(4))
		requireInterval(t, Interval{16, 81}, New(-3, -2).PowScalar(4))
		requireInterval(t, New(-3, 2).Square(), New(-3, 2).PowScalar(2))
		// x^0 of an interval containing zero keeps the zero floor.
		requireInterval(t, Interval{0, 1}, New(-1, 1).PowScalar(0))
	})

	t.Run("Negative", func(t *testing.T) {
		requireInterval(t, Interval{0.25, 1}, New(1, 2).PowScalar(-2))
		requireInterval(t, Interval{-1, -0.125}, New(-2, -1).PowScalar(-3))
		require.True(t, New(-1, 2).PowScalar(-2).IsEntire())
	})

	t.Run("NonIntegerRounding", func(t *testing.T) {
		// 2.5 rounds to 3 and 2.4 to 2 when the interval is not strictly positive.
		requireInterval(t, New(-2, 3).PowScalar(3), New(-2, 3).PowScalar(2.5))
		requireInterval(t, New(-2, 3).PowScalar(2), New(-2, 3).PowScalar(2.4))
		requireInterval(t, New(0, 3).PowScalar(1), New(0, 3).PowScalar(0.5))
	})
}

func TestTrigonometric(t *testing.T) {

	t.Run("Sin", func(t *testing.T) {
		requireInterval(t, Interval{0, 1}, New(0, math.Pi).Sin())
		requireInterval(t, Interval{-1, 1}, New(0, 2*math.Pi).Sin())
		requireInterval(t, Interval{0, math.Sin(0.5)}, New(0, 0.5).Sin())
		requireInterval(t, Interval{math.Sin(3), math.Sin(2)}, New(2, 3).Sin())
		requireInterval(t, Interval{-1, math.Max(math.Sin(3.5), math.Sin(5.5))}, New(3.5, 5.5).Sin())
		requireInterval(t, Interval{-1, 1}, New(-100, 100).Sin())
		requireInterval(t, Interval{-1, 1}, New(0, inf).Sin())
		requireInterval(t, Interval{-1, 1}, Empty.Sin())
	})

	t.Run("SinWithinPeriod", func(t *testing.T) {
		// Between one half and one full period with an interior maximum only.
		i := New(-1.5, 4)
		requireInterval(t, Interval{math.Min(math.Sin(-1.5), math.Sin(4)), 1}, i.Sin())
		// Same sign of cos at both bounds: both extrema are reached.
		requireInterval(t, Interval{-1, 1}, New(-1, 5).Sin())
	})

	t.Run("Cos", func(t *testing.T) {
		r := New(0, 0.5).Cos()
		require.InDelta(t, math.Cos(0.5), r.L, 1e-15)
		require.InDelta(t, 1, r.U, 1e-15)
		requireInterval(t, Interval{-1, 1}, New(0, 7).Cos())
	})

	t.Run("Tan", func(t *testing.T) {
		requireInterval(t, Interval{math.Tan(-1), math.Tan(1)}, New(-1, 1).Tan())
		require.True(t, New(1, 2).Tan().IsEntire())
		require.True(t, New(-10, 10).Tan().IsEntire())
		require.True(t, New(0, inf).Tan().IsEntire())

		// Bounds are shifted by floor((u+Pi/2)/Pi) half periods, also below zero.
		r := New(-2, -1.8).Tan()
		require.False(t, r.IsEntire())
		require.InDelta(t, math.Tan(-2), r.L, 1e-12)
		require.InDelta(t, math.Tan(-1.8), r.U, 1e-12)

		r = New(3, 4).Tan()
		require.InDelta(t, math.Tan(3), r.L, 1e-12)
		require.InDelta(t, math.Tan(4), r.U, 1e-12)
	})

	t.Run("Monotonic", func(t *testing.T) {
		i := New(-0.5, 2)
		requireInterval(t, Interval{math.Atan(-0.5), math.Atan(2)}, i.Atan())
		requireInterval(t, Interval{math.Tanh(-0.5), math.Tanh(2)}, i.Tanh())
		requireInterval(t, Interval{math.Exp(-0.5), math.Exp(2)}, i.Exp())
	})

	t.Run("Sqrt", func(t *testing.T) {
		requireInterval(t, Interval{2, 3}, New(4, 9).Sqrt())
		requireInterval(t, Interval{0, 3}, New(0, 9).Sqrt())
		require.True(t, New(-1e-300, 9).Sqrt().IsEntire())
	})
}

func TestSetOperations(t *testing.T) {

	for _, i := range testIntervals() {
		requireInterval(t, i, i.Union(i))
		requireInterval(t, i, i.Intersection(i))

		for _, j := range testIntervals() {
			u := i.Union(j)
			require.True(t, u.SupsetEq(i) && u.SupsetEq(j))
			require.True(t, i.SubsetEq(u) && j.SubsetEq(u))

			if r, ok := i.IntersectionStrict(j); ok {
				require.True(t, r.SubsetEq(i) && r.SubsetEq(j))
				requireInterval(t, r, i.Intersection(j))
			} else {
				require.True(t, i.Intersection(j).IsEmpty())
			}
		}
	}

	requireInterval(t, Interval{-1, 2}, New(-1, 3).Min(New(0, 2)))
	requireInterval(t, Interval{0, 3}, New(-1, 3).Max(New(0, 2)))
	requireInterval(t, Interval{1, 2}, Empty.Union(New(1, 2)))

	r, ok := New(0, 2).IntersectionStrict(New(2, 5))
	require.True(t, ok)
	requireInterval(t, Interval{2, 2}, r)

	_, ok = New(0, 2).IntersectionStrict(New(3, 5))
	require.False(t, ok)
}

func TestComparisons(t *testing.T) {
	a, b := New(1, 2), New(0, 3)

	require.True(t, a.Equal(New(1, 2)))
	require.False(t, a.NotEqual(New(1, 2)))
	require.True(t, a.NotEqual(b))
	require.False(t, Empty.Equal(Empty))

	require.True(t, a.SubsetEq(b))
	require.True(t, a.Subset(b))
	require.True(t, b.SupsetEq(a))
	require.True(t, b.Supset(a))

	require.True(t, a.SubsetEq(a))
	require.False(t, a.Subset(a))
	require.False(t, a.Supset(a))
	require.False(t, New(0, 2).Subset(b), "strict on both bounds")

	require.True(t, New(0, 1e-300).NonZero())
	require.False(t, Zero.NonZero())
	require.Equal(t, 1.5, New(-0.5, 1).Norm())
}

func TestInPlace(t *testing.T) {
	for _, i := range testIntervals() {
		for _, j := range testIntervals() {
			for _, c := range []struct {
				name    string
				inplace func(*Interval, Interval)
				pure    func(Interval, Interval) Interval
			}{
				{"add", (*Interval).AddInPlace, Interval.Add},
				{"subtract", (*Interval).SubInPlace, Interval.Sub},
				{"multiply", (*Interval).MulInPlace, Interval.Mul},
				{"divide", (*Interval).DivInPlace, Interval.Div},
			} {
				r := i
				c.inplace(&r, j)
				require.Equal(t, c.pure(i, j).String(), r.String(), c.name)
			}

			for _, s := range []float64{-2, 0.5, 3} {
				for _, c := range []struct {
					name    string
					inplace func(*Interval, float64)
					pure    func(Interval, float64) Interval
				}{
					{"add", (*Interval).AddScalarInPlace, Interval.AddScalar},
					{"subtract", (*Interval).SubScalarInPlace, Interval.SubScalar},
					{"multiply", (*Interval).MulScalarInPlace, Interval.MulScalar},
					{"divide", (*Interval).DivScalarInPlace, Interval.DivScalar},
					{"power", (*Interval).PowScalarInPlace, Interval.PowScalar},
				} {
					r := i
					c.inplace(&r, s)
					require.Equal(t, c.pure(i, s).String(), r.String(), c.name)
				}
			}
		}
	}
}

func TestConstruction(t *testing.T) {

	t.Run("Lift", func(t *testing.T) {
		requireInterval(t, Interval{3, 3}, Lift(int8(3)))
		requireInterval(t, Interval{-7, -7}, Lift(int64(-7)))
		requireInterval(t, Interval{255, 255}, Lift(uint8(255)))
		requireInterval(t, Interval{0.5, 0.5}, Lift(float32(0.5)))
		requireInterval(t, Interval{1 << 40, 1 << 40}, Lift(uint64(1<<40)))
		requireInterval(t, One, LiftBool(true))
		requireInterval(t, Zero, LiftBool(false))
	})

	t.Run("Permissive", func(t *testing.T) {
		i := New(2, 1)
		require.Equal(t, 2.0, i.L)
		require.Equal(t, -1.0, i.Norm())
		require.True(t, i.SubsetEq(New(1.5, 1.5)), "bounds are not checked")
		require.ErrorIs(t, i.Validate(), ErrMalformed)
	})

	t.Run("Strict", func(t *testing.T) {
		i, err := NewStrict(1, 2)
		require.NoError(t, err)
		requireInterval(t, Interval{1, 2}, i)

		_, err = NewStrict(2, 1)
		require.ErrorIs(t, err, ErrMalformed)

		_, err = NewStrict(math.NaN(), 1)
		require.ErrorIs(t, err, ErrNaN)

		_, err = NewStrict(-inf, inf)
		require.NoError(t, err)

		require.ErrorIs(t, Empty.Validate(), ErrNaN)
	})

	t.Run("Normalize", func(t *testing.T) {
		requireInterval(t, Interval{1, 2}, Normalize(2, 1))
		requireInterval(t, Interval{1, 2}, Normalize(1, 2))
	})

	t.Run("Center", func(t *testing.T) {
		i := FromCenter(1, 0.5)
		requireInterval(t, Interval{0.5, 1.5}, i)
		require.Equal(t, 1.0, i.Center())
		require.Equal(t, 0.5, i.Radius())

		lo, hi := i.Bisect()
		requireInterval(t, Interval{0.5, 1}, lo)
		requireInterval(t, Interval{1, 1.5}, hi)
		requireInterval(t, i, lo.Union(hi))
	})

	t.Run("Predicates", func(t *testing.T) {
		require.True(t, Entire.IsEntire())
		require.True(t, Empty.IsEmpty())
		require.True(t, Empty.HasNaN())
		require.False(t, New(math.NaN(), 1).IsEmpty())
		require.True(t, New(math.NaN(), 1).HasNaN())
		require.True(t, Lift(4).IsDegenerate())
		require.True(t, New(1, 2).Contains(1))
		require.False(t, New(1, 2).Contains(2.5))
	})

	t.Run("String", func(t *testing.T) {
		require.Equal(t, "([0.25, 0.5])", New(0.25, 0.5).String())
		require.Equal(t, "([-3.142, 1.235e+04])", New(-math.Pi, 12345.678).String())
		require.Equal(t, "([-Inf, +Inf])", Entire.String())
	})
}

func TestCodec(t *testing.T) {

	nan := math.Float64frombits(0x7ff8000000000abc)

	for _, i := range []Interval{{1, 2}, {-inf, inf}, {math.Copysign(0, -1), 0}, {nan, nan}, {3, -1}} {

		data, err := i.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, data, i.BinarySize())

		var j Interval
		require.NoError(t, j.UnmarshalBinary(data))

		il, iu := i.Bits()
		jl, ju := j.Bits()
		require.Equal(t, il, jl)
		require.Equal(t, iu, ju)

		var b bytes.Buffer
		n, err := i.WriteTo(&b)
		require.NoError(t, err)
		require.Equal(t, int64(16), n)
		require.Equal(t, data, b.Bytes())

		var k Interval
		m, err := k.ReadFrom(&b)
		require.NoError(t, err)
		require.Equal(t, int64(16), m)
		kl, ku := k.Bits()
		require.Equal(t, il, kl)
		require.Equal(t, iu, ku)

		require.Equal(t, i.Digest(), j.Digest())
	}

	data, err := New(1, 2).MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0xf0, 0x3f, 0, 0, 0, 0, 0, 0, 0, 0x40}, data)

	require.NotEqual(t, New(1, 2).Digest(), New(2, 1).Digest())

	var i Interval
	require.Error(t, i.UnmarshalBinary(data[:15]))
	_, err = i.Encode(make([]byte, 8))
	require.Error(t, err)
}

func TestOperationTables(t *testing.T) {

	names := OperationNames()
	require.Len(t, names, len(Categories()))
	require.Equal(t, []string{"add", "divide", "intersection", "maximum", "minimum", "multiply", "subtract", "true_divide", "union"}, names[CategoryBinary])

	op, ok := LookupBinary("multiply")
	require.True(t, ok)
	requireInterval(t, Interval{-8, 4}, op(New(-1, 2), New(3, -4)))

	unary, ok := LookupUnary("arctan")
	require.True(t, ok)
	requireInterval(t, New(1, 2).Atan(), unary(New(1, 2)))

	sc, ok := LookupScalar("power")
	require.True(t, ok)
	requireInterval(t, Interval{0, 4}, sc(New(-1, 2), 2))

	left, ok := LookupScalarLeft("subtract")
	require.True(t, ok)
	requireInterval(t, Interval{1, 2}, left(3, New(1, 2)))

	pred, ok := LookupPredicate("subseteq")
	require.True(t, ok)
	require.True(t, pred(New(1, 2), New(0, 3)))

	norm, ok := LookupMeasure("norm")
	require.True(t, ok)
	require.Equal(t, 1.0, norm(New(1, 2)))

	nz, ok := LookupTest("nonzero")
	require.True(t, ok)
	require.False(t, nz(Zero))

	_, ok = LookupUnary("cosh")
	require.False(t, ok)

	for _, category := range Categories() {
		require.NotEmpty(t, names[category], category)
	}
}
