package ival

import (
	"math"
)

// Sin returns the range of sin over i.
//
// Within a half period the signs of cos at the bounds tell whether sin is
// monotonic or has an interior extremum. Up to a full
// period, bounds with cos of the same sign mean both extrema are reached.
// Wider intervals map to [-1, 1].
func (i Interval) Sin() Interval {

	diff := i.U - i.L

	if diff <= 2*math.Pi {

		cl, cu := math.Cos(i.L), math.Cos(i.U)
		sl, su := math.Sin(i.L), math.Sin(i.U)

		if diff <= math.Pi {
			switch {
			case cl >= 0 && cu >= 0:
				return Interval{sl, su}
			case cl <= 0 && cu <= 0:
				return Interval{su, sl}
			}
		}

		switch {
		case cl >= 0 && cu >= 0, cl <= 0 && cu <= 0:
			return Interval{-1, 1}
		case cl >= 0 && cu <= 0:
			return Interval{fmin(sl, su), 1}
		case cl <= 0 && cu >= 0:
			return Interval{-1, fmax(sl, su)}
		}
	}

	return Interval{-1, 1}
}

// Cos returns the range of cos over i, as sin over i+Pi/2.
func (i Interval) Cos() Interval {
	return Interval{i.L + math.Pi/2, i.U + math.Pi/2}.Sin()
}

// Tan returns the range of tan over i. Both bounds are shifted by a multiple
// of Pi so that the upper bound lies in [-Pi/2, Pi/2). If the shifted lower
// bound falls below -Pi/2, i spans a pole and the result is Entire.
func (i Interval) Tan() Interval {

	k := math.Floor((i.U + math.Pi/2) / math.Pi)
	l := i.L - k*math.Pi
	u := i.U - k*math.Pi

	if l < -math.Pi/2 {
		return Entire
	}

	return Interval{math.Tan(l), math.Tan(u)}
}

// Atan returns [atan(i.L), atan(i.U)].
func (i Interval) Atan() Interval {
	return Interval{math.Atan(i.L), math.Atan(i.U)}
}

// Tanh returns [tanh(i.L), tanh(i.U)].
func (i Interval) Tanh() Interval {
	return Interval{math.Tanh(i.L), math.Tanh(i.U)}
}

// Exp returns [exp(i.L), exp(i.U)].
func (i Interval) Exp() Interval {
	return Interval{math.Exp(i.L), math.Exp(i.U)}
}

// Sqrt returns [sqrt(i.L), sqrt(i.U)], or Entire if i.L < 0.
func (i Interval) Sqrt() Interval {
	if i.L < 0 {
		return Entire
	}
	return Interval{math.Sqrt(i.L), math.Sqrt(i.U)}
}
