// Package bignum implements arbitrary precision evaluation of the elementary
// functions covered by interval arithmetic. It is used as a reference when
// checking that a float64 interval encloses the exact result.
package bignum

import (
	"fmt"
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
)

const pi = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679821480865132823066470938446095505822317253594081284811174502841027019385211055596446229489549303819644288109756659334461284756482337867831652712019091456485669234603486104543266482133936072602491412737245870066063155881748815209209628292540917153643678925903600113305305488204665213841469519415116094330572703657595919530921861173819326117931051185480744623799627495673518857527248912279381830119491298336733624406566430860213949463952247371907021798609437027705392171762931767523846748184676694051320005681271452635608277857713427577896091736371787214684409012249534301465495853710507922796892589235420199561121290219608640344181598136297747713099605187072113499999983729780499510597317328160963185950244594553469083026425223082533446850352619311881710100031378387528865875332083814206171776691473035982534904287554687311595628638823537875937519577818577805321712268066130019278766111959092164201989"

// Pi returns Pi with prec bits of precision.
func Pi(prec uint) *big.Float {
	pi, _ := new(big.Float).SetPrec(prec).SetString(pi)
	return pi
}

// NewFloat creates a new big.Float element with "prec" bits of precision.
// Valid types for x are: int, int64, uint, uint64, float64, *big.Int or *big.Float.
func NewFloat(x interface{}, prec uint) (y *big.Float) {

	y = new(big.Float)
	y.SetPrec(prec)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case float64:
		y.SetFloat64(x)
	case *big.Int:
		y.SetInt(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Errorf("invalid x.(type): valid types are int, int64, uint, uint64, float64, *big.Int or *big.Float but is %T", x))
	}

	return
}

// Round returns round(x), with halves rounded away from zero.
func Round(x *big.Float) (r *big.Float) {
	r = new(big.Float).SetPrec(x.Prec()).Set(x)
	if r.Sign() >= 0 {
		r.Add(r, new(big.Float).SetFloat64(0.5))
	} else {
		r.Sub(r, new(big.Float).SetFloat64(0.5))
	}

	tmp := new(big.Int)
	r.Int(tmp)
	r.SetInt(tmp)
	return
}

// workPrec returns a precision large enough for the reduction of x modulo 2*Pi
// to keep prec significant bits.
func workPrec(x *big.Float, prec uint) uint {
	if exp := x.MantExp(nil); exp > 0 {
		return prec + uint(exp) + 64
	}
	return prec + 64
}

// reduce returns x - 2*Pi*round(x/(2*Pi)), which lies in [-Pi, Pi].
func reduce(x *big.Float, prec uint) *big.Float {
	twoPi := Pi(prec)
	twoPi.Add(twoPi, twoPi)
	k := Round(new(big.Float).SetPrec(prec).Quo(x, twoPi))
	k.Mul(k, twoPi)
	return new(big.Float).SetPrec(prec).Sub(x, k)
}

// Cos is an iterative arbitrary precision computation of Cos(x).
// The argument is first reduced to [-Pi, Pi], then halved k times and
// doubled back with s -> s(4-s), where s = 2 - 2cos.
// ref : Johansson, B. Tomas, An elementary algorithm to evaluate trigonometric functions to high precision, 2018
func Cos(x *big.Float) (cosx *big.Float) {
	prec := workPrec(x, x.Prec())
	y := reduce(x, prec)

	t := NewFloat(0.5, prec)
	half := new(big.Float).Copy(t)

	for i := uint(1); i < (prec>>1)-1; i++ {
		t.Mul(t, half)
	}

	s := new(big.Float).Mul(y, t)
	s.Mul(s, y)
	s.Mul(s, t)

	four := NewFloat(4.0, prec)
	tmp := new(big.Float).SetPrec(prec)

	for i := uint(1); i < prec>>1; i++ { // (1/4)^k = (1/2)^(2*k)
		tmp.Sub(four, s)
		s.Mul(s, tmp)
	}

	cosx = new(big.Float).SetPrec(prec).Quo(s, NewFloat(2.0, prec))
	cosx.Sub(NewFloat(1.0, prec), cosx)
	return cosx.SetPrec(x.Prec())
}

// Sin returns sin(x) = cos(x - Pi/2).
func Sin(x *big.Float) (sinx *big.Float) {
	prec := workPrec(x, x.Prec())
	halfPi := Pi(prec)
	halfPi.Quo(halfPi, NewFloat(2, prec))
	sinx = Cos(new(big.Float).SetPrec(prec).Sub(x, halfPi))
	return sinx.SetPrec(x.Prec())
}

// Tan returns sin(x)/cos(x).
func Tan(x *big.Float) (tanx *big.Float) {
	prec := x.Prec() + 64
	y := new(big.Float).SetPrec(prec).Set(x)
	tanx = new(big.Float).SetPrec(prec).Quo(Sin(y), Cos(y))
	return tanx.SetPrec(x.Prec())
}

// Atan returns arctan(x), by Newton iterations on tan(y) = x starting from
// the float64 estimate. Arguments with |x| > 1 use atan(x) = sign(x)*Pi/2 - atan(1/x).
func Atan(x *big.Float) (atanx *big.Float) {

	prec := x.Prec() + 64

	if x.IsInf() {
		atanx = Pi(prec)
		atanx.Quo(atanx, NewFloat(float64(x.Sign())*2, prec))
		return atanx.SetPrec(x.Prec())
	}

	if new(big.Float).Abs(x).Cmp(NewFloat(1, prec)) > 0 {
		inv := new(big.Float).SetPrec(prec).Quo(NewFloat(1, prec), x)
		atanx = Pi(prec)
		atanx.Quo(atanx, NewFloat(float64(x.Sign())*2, prec))
		atanx.Sub(atanx, Atan(inv))
		return atanx.SetPrec(x.Prec())
	}

	xf, _ := x.Float64()
	y := NewFloat(math.Atan(xf), prec)

	tmp := new(big.Float).SetPrec(prec)
	for bits := uint(26); bits < prec; bits <<= 1 {
		// y <- y - (sin(y) - x*cos(y))*cos(y)
		c := Cos(y)
		tmp.Mul(x, c)
		tmp.Sub(Sin(y), tmp)
		tmp.Mul(tmp, c)
		y.Sub(y, tmp)
	}

	return y.SetPrec(x.Prec())
}

// Log return ln(x).
func Log(x *big.Float) (ln *big.Float) {
	return bigfloat.Log(x)
}

// Exp returns exp(x).
func Exp(x *big.Float) (exp *big.Float) {
	return bigfloat.Exp(x)
}

// Sqrt returns the square root of x. x must be non-negative.
func Sqrt(x *big.Float) (sqrt *big.Float) {
	return new(big.Float).SetPrec(x.Prec()).Sqrt(x)
}

// Pow returns x^y and true, or false if x^y is not a real number.
// Integer exponents are evaluated by repeated squaring and accept any sign
// of x; other exponents require x >= 0.
func Pow(x, y *big.Float) (pow *big.Float, ok bool) {

	prec := x.Prec()

	if y.IsInt() {

		e, _ := y.Int(nil)
		neg := e.Sign() < 0
		e.Abs(e)

		pow = NewFloat(1, prec+64)
		base := new(big.Float).SetPrec(prec + 64).Set(x)
		for i := 0; i < e.BitLen(); i++ {
			if e.Bit(i) == 1 {
				pow.Mul(pow, base)
			}
			base.Mul(base, base)
		}

		if neg {
			if pow.Sign() == 0 {
				return nil, false
			}
			pow.Quo(NewFloat(1, prec+64), pow)
		}

		return pow.SetPrec(prec), true
	}

	switch x.Sign() {
	case -1:
		return nil, false
	case 0:
		if y.Sign() < 0 {
			return nil, false
		}
		return NewFloat(0, prec), true
	}

	return bigfloat.Pow(x, y), true
}

// TanH returns the hyperbolic tangent of x.
func TanH(x *big.Float) (tanh *big.Float) {

	// (e^2x - 1) cancels for small |x|: add as many bits as x is small.
	prec := x.Prec()
	if exp := x.MantExp(nil); exp < 0 {
		prec += uint(-exp)
	}

	tanh = new(big.Float).SetPrec(prec).Set(x)
	tanh.Add(tanh, tanh)
	tanh = Exp(tanh)
	tmp := new(big.Float).SetPrec(prec).Set(tanh)
	tmp.Add(tmp, NewFloat(1, prec))
	tanh.Sub(tanh, NewFloat(1, prec))
	tanh.Quo(tanh, tmp)
	return tanh.SetPrec(x.Prec())
}
