package verify

import (
	"math/big"

	"github.com/tuneinsight/interval/utils/bignum"
)

// unaryRef returns f(x) and true, or false if f is undefined at x.
type unaryRef func(x *big.Float) (*big.Float, bool)

// binaryRef returns f(x, y) and true, or false if f is undefined at (x, y).
type binaryRef func(x, y *big.Float) (*big.Float, bool)

func newFloat(x *big.Float) *big.Float {
	return new(big.Float).SetPrec(x.Prec())
}

// Beyond these magnitudes, exp and tanh are saturated at any supported precision.
const (
	expSaturation  = 1000
	tanhSaturation = 100
)

var unaryRefs = map[string]unaryRef{
	"negative": func(x *big.Float) (*big.Float, bool) {
		return newFloat(x).Neg(x), true
	},
	"positive": func(x *big.Float) (*big.Float, bool) {
		return newFloat(x).Set(x), true
	},
	"inverse": func(x *big.Float) (*big.Float, bool) {
		if x.Sign() == 0 {
			return nil, false
		}
		return newFloat(x).Quo(bignum.NewFloat(1, x.Prec()), x), true
	},
	"sin": func(x *big.Float) (*big.Float, bool) {
		return bignum.Sin(x), true
	},
	"cos": func(x *big.Float) (*big.Float, bool) {
		return bignum.Cos(x), true
	},
	"tan": func(x *big.Float) (*big.Float, bool) {
		if bignum.Cos(x).Sign() == 0 {
			return nil, false
		}
		return bignum.Tan(x), true
	},
	"arctan": func(x *big.Float) (*big.Float, bool) {
		return bignum.Atan(x), true
	},
	"tanh": func(x *big.Float) (*big.Float, bool) {
		if f, _ := x.Float64(); f > tanhSaturation {
			return bignum.NewFloat(1, x.Prec()), true
		} else if f < -tanhSaturation {
			return bignum.NewFloat(-1, x.Prec()), true
		}
		return bignum.TanH(x), true
	},
	"exp": func(x *big.Float) (*big.Float, bool) {
		if f, _ := x.Float64(); f > expSaturation {
			return newFloat(x).SetInf(false), true
		} else if f < -expSaturation {
			return bignum.NewFloat(0, x.Prec()), true
		}
		return bignum.Exp(x), true
	},
	"sqrt": func(x *big.Float) (*big.Float, bool) {
		if x.Sign() < 0 {
			return nil, false
		}
		return bignum.Sqrt(x), true
	},
	"square": func(x *big.Float) (*big.Float, bool) {
		return newFloat(x).Mul(x, x), true
	},
}

func quo(x, y *big.Float) (*big.Float, bool) {
	if y.Sign() == 0 {
		return nil, false
	}
	return newFloat(x).Quo(x, y), true
}

var binaryRefs = map[string]binaryRef{
	"add": func(x, y *big.Float) (*big.Float, bool) {
		return newFloat(x).Add(x, y), true
	},
	"subtract": func(x, y *big.Float) (*big.Float, bool) {
		return newFloat(x).Sub(x, y), true
	},
	"multiply": func(x, y *big.Float) (*big.Float, bool) {
		return newFloat(x).Mul(x, y), true
	},
	"divide":      quo,
	"true_divide": quo,
	"minimum": func(x, y *big.Float) (*big.Float, bool) {
		if x.Cmp(y) <= 0 {
			return newFloat(x).Set(x), true
		}
		return newFloat(x).Set(y), true
	},
	"maximum": func(x, y *big.Float) (*big.Float, bool) {
		if x.Cmp(y) >= 0 {
			return newFloat(x).Set(x), true
		}
		return newFloat(x).Set(y), true
	},
}

var scalarRefs = map[string]binaryRef{
	"add":         binaryRefs["add"],
	"subtract":    binaryRefs["subtract"],
	"multiply":    binaryRefs["multiply"],
	"divide":      quo,
	"true_divide": quo,
	"power":       bignum.Pow,
}
