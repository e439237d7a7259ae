package verify

import (
	"fmt"
	"math"
	"math/big"

	"github.com/montanaflynn/stats"
	"github.com/tuneinsight/interval/ival"
	"github.com/tuneinsight/interval/utils"
	"github.com/tuneinsight/interval/utils/bignum"
	"github.com/tuneinsight/interval/utils/sampling"
)

// Report is the outcome of the verification of an operation.
type Report struct {
	// Op is the name of the operation.
	Op string
	// Result is the interval computed by the operation.
	Result ival.Interval
	// Samples is the number of points at which the reference was evaluated.
	Samples int
	// Skipped is the number of points at which the reference is undefined.
	Skipped int
	// Violations is the number of reference values outside of Result.
	Violations int
	// MaxExcess is the largest distance of a reference value to Result,
	// relative to max(1, |value|).
	MaxExcess float64
	// Slack is the fraction of the width of Result that the reference
	// values did not reach. It is zero if Result is degenerate or unbounded.
	Slack float64
}

// Ok returns true if no violation was found.
func (r Report) Ok() bool {
	return r.Violations == 0
}

func (r Report) String() string {
	return fmt.Sprintf("%s: result=%v samples=%d skipped=%d violations=%d max-excess=%.3g slack=%.3g",
		r.Op, r.Result, r.Samples, r.Skipped, r.Violations, r.MaxExcess, r.Slack)
}

// Checker evaluates operations of the ival package against their exact
// counterpart at the points of a deterministic sample of their operands.
//
// A Checker is not safe for concurrent use.
type Checker struct {
	params Parameters
	prng   *sampling.KeyedPRNG
}

// NewChecker creates a new Checker from the given parameters.
func NewChecker(params Parameters) (*Checker, error) {
	prng, err := sampling.NewKeyedPRNG([]byte(params.Key()))
	if err != nil {
		return nil, fmt.Errorf("sampling.NewKeyedPRNG: %w", err)
	}
	return &Checker{params: params, prng: prng}, nil
}

// Parameters returns the parameters of the Checker.
func (c *Checker) Parameters() Parameters {
	return c.params
}

// CheckUnary verifies the named unary operation on in.
func (c *Checker) CheckUnary(name string, in ival.Interval) (r Report, err error) {

	op, ok := ival.LookupUnary(name)
	if !ok {
		return r, fmt.Errorf("cannot CheckUnary: unknown unary operation %q", name)
	}

	ref, ok := unaryRefs[name]
	if !ok {
		return r, fmt.Errorf("cannot CheckUnary: no reference for %q", name)
	}

	c.prng.Reset()

	var xs []float64
	if xs, err = c.points(in); err != nil {
		return r, fmt.Errorf("cannot CheckUnary: %w", err)
	}

	r = Report{Op: name, Result: op(in)}

	values := make([]*big.Float, 0, len(xs))
	for _, x := range xs {
		if v, ok := ref(c.float(x)); ok {
			values = append(values, v)
		} else {
			r.Skipped++
		}
	}

	c.evaluate(&r, values)

	return
}

// CheckBinary verifies the named binary operation on a and b.
func (c *Checker) CheckBinary(name string, a, b ival.Interval) (r Report, err error) {

	op, ok := ival.LookupBinary(name)
	if !ok {
		return r, fmt.Errorf("cannot CheckBinary: unknown binary operation %q", name)
	}

	ref, ok := binaryRefs[name]
	if !ok {
		return r, fmt.Errorf("cannot CheckBinary: no reference for %q", name)
	}

	c.prng.Reset()

	var xs, ys []float64
	if xs, err = c.points(a); err != nil {
		return r, fmt.Errorf("cannot CheckBinary: %w", err)
	}

	if ys, err = c.points(b); err != nil {
		return r, fmt.Errorf("cannot CheckBinary: %w", err)
	}

	r = Report{Op: name, Result: op(a, b)}

	if len(xs) == 0 || len(ys) == 0 {
		return
	}

	// The lower bound of a with the upper bound of b and conversely, on top
	// of the pairs of points of same index.
	pairs := [][2]float64{{xs[0], ys[1]}, {xs[1], ys[0]}}
	for k := range xs {
		pairs = append(pairs, [2]float64{xs[k], ys[k]})
	}

	values := make([]*big.Float, 0, len(pairs))
	for _, p := range pairs {
		if v, ok := ref(c.float(p[0]), c.float(p[1])); ok {
			values = append(values, v)
		} else {
			r.Skipped++
		}
	}

	c.evaluate(&r, values)

	return
}

// CheckScalar verifies the named interval, scalar operation on in and s.
func (c *Checker) CheckScalar(name string, in ival.Interval, s float64) (r Report, err error) {

	op, ok := ival.LookupScalar(name)
	if !ok {
		return r, fmt.Errorf("cannot CheckScalar: unknown scalar operation %q", name)
	}

	ref, ok := scalarRefs[name]
	if !ok {
		return r, fmt.Errorf("cannot CheckScalar: no reference for %q", name)
	}

	if !utils.IsFinite(s) {
		return r, fmt.Errorf("cannot CheckScalar: scalar %v is not finite", s)
	}

	c.prng.Reset()

	var xs []float64
	if xs, err = c.points(in); err != nil {
		return r, fmt.Errorf("cannot CheckScalar: %w", err)
	}

	r = Report{Op: name, Result: op(in, s)}

	y := c.float(s)

	values := make([]*big.Float, 0, len(xs))
	for _, x := range xs {
		if v, ok := ref(c.float(x), y); ok {
			values = append(values, v)
		} else {
			r.Skipped++
		}
	}

	c.evaluate(&r, values)

	return
}

func (c *Checker) float(x float64) *big.Float {
	return bignum.NewFloat(x, c.params.Prec())
}

// points returns the bounds of i, its center and Samples() random points
// of i. Infinite bounds are replaced by the largest finite value of the same
// sign. An interval with a NaN bound has no points.
func (c *Checker) points(i ival.Interval) (xs []float64, err error) {

	if i.HasNaN() {
		return
	}

	l := utils.MaxFloat64(i.L, -math.MaxFloat64)
	u := utils.MinFloat64(i.U, math.MaxFloat64)

	xs = make([]float64, 0, c.params.Samples()+3)
	xs = append(xs, l, u, l/2+u/2)

	for k := 0; k < c.params.Samples(); k++ {
		var x float64
		if x, err = sampling.Uniform(c.prng, l, u); err != nil {
			return nil, fmt.Errorf("sampling.Uniform: %w", err)
		}
		xs = append(xs, x)
	}

	return
}

// evaluate tests the reference values against r.Result and fills the report.
func (c *Checker) evaluate(r *Report, values []*big.Float) {

	r.Samples = len(values)

	finite := make(stats.Float64Data, 0, len(values))

	for _, v := range values {

		x, _ := v.Float64()

		excess := distance(r.Result, x)

		if excess > c.params.Tolerance() {
			r.Violations++
		}

		r.MaxExcess = utils.MaxFloat64(r.MaxExcess, excess)

		if !math.IsInf(x, 0) {
			finite = append(finite, x)
		}
	}

	r.Slack = slack(r.Result, finite)
}

// distance returns the distance of x to i relative to max(1, |x|), or +Inf
// if i has a NaN bound.
func distance(i ival.Interval, x float64) float64 {

	if i.HasNaN() {
		return math.Inf(1)
	}

	var d float64
	switch {
	case x < i.L:
		d = i.L - x
	case x > i.U:
		d = x - i.U
	default:
		return 0
	}

	if math.IsInf(x, 0) {
		return math.Inf(1)
	}

	return d / utils.MaxFloat64(1, math.Abs(x))
}

// slack returns the fraction of the width of i not covered by the range of values.
func slack(i ival.Interval, values stats.Float64Data) float64 {

	w := i.Norm()

	if values.Len() == 0 || w == 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return 0
	}

	lo, err := values.Min()
	if err != nil {
		return 0
	}

	hi, err := values.Max()
	if err != nil {
		return 0
	}

	return utils.MaxFloat64(0, 1-(hi-lo)/w)
}
