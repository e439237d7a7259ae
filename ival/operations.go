package ival

import (
	"github.com/tuneinsight/interval/utils"
)

// Operation categories, by signature.
const (
	CategoryUnary      = "unary"       // func(Interval) Interval
	CategoryBinary     = "binary"      // func(Interval, Interval) Interval
	CategoryScalar     = "scalar"      // func(Interval, float64) Interval
	CategoryScalarLeft = "scalar-left" // func(float64, Interval) Interval
	CategoryPredicate  = "predicate"   // func(Interval, Interval) bool
	CategoryMeasure    = "measure"     // func(Interval) float64
	CategoryTest       = "test"        // func(Interval) bool
)

// Operations are named after the array ufuncs they implement.
var unaryOps = map[string]func(Interval) Interval{
	"negative": Interval.Neg,
	"positive": func(i Interval) Interval { return i },
	"inverse":  Interval.Inverse,
	"sin":      Interval.Sin,
	"cos":      Interval.Cos,
	"tan":      Interval.Tan,
	"arctan":   Interval.Atan,
	"tanh":     Interval.Tanh,
	"exp":      Interval.Exp,
	"sqrt":     Interval.Sqrt,
	"square":   Interval.Square,
}

var binaryOps = map[string]func(Interval, Interval) Interval{
	"add":          Interval.Add,
	"subtract":     Interval.Sub,
	"multiply":     Interval.Mul,
	"divide":       Interval.Div,
	"true_divide":  Interval.Div,
	"union":        Interval.Union,
	"intersection": Interval.Intersection,
	"minimum":      Interval.Min,
	"maximum":      Interval.Max,
}

var scalarOps = map[string]func(Interval, float64) Interval{
	"add":         Interval.AddScalar,
	"subtract":    Interval.SubScalar,
	"multiply":    Interval.MulScalar,
	"divide":      Interval.DivScalar,
	"true_divide": Interval.DivScalar,
	"power":       Interval.PowScalar,
}

var scalarLeftOps = map[string]func(float64, Interval) Interval{
	"add":         ScalarAdd,
	"subtract":    ScalarSub,
	"multiply":    ScalarMul,
	"divide":      ScalarDiv,
	"true_divide": ScalarDiv,
}

var predicateOps = map[string]func(Interval, Interval) bool{
	"equal":     Interval.Equal,
	"not_equal": Interval.NotEqual,
	"subseteq":  Interval.SubsetEq,
	"supseteq":  Interval.SupsetEq,
	"subset":    Interval.Subset,
	"supset":    Interval.Supset,
}

var measureOps = map[string]func(Interval) float64{
	"norm": Interval.Norm,
}

var testOps = map[string]func(Interval) bool{
	"nonzero": Interval.NonZero,
}

// LookupUnary returns the named interval -> interval operation.
func LookupUnary(name string) (op func(Interval) Interval, ok bool) {
	op, ok = unaryOps[name]
	return
}

// LookupBinary returns the named interval, interval -> interval operation.
func LookupBinary(name string) (op func(Interval, Interval) Interval, ok bool) {
	op, ok = binaryOps[name]
	return
}

// LookupScalar returns the named interval, scalar -> interval operation.
func LookupScalar(name string) (op func(Interval, float64) Interval, ok bool) {
	op, ok = scalarOps[name]
	return
}

// LookupScalarLeft returns the named scalar, interval -> interval operation.
func LookupScalarLeft(name string) (op func(float64, Interval) Interval, ok bool) {
	op, ok = scalarLeftOps[name]
	return
}

// LookupPredicate returns the named interval, interval -> bool operation.
func LookupPredicate(name string) (op func(Interval, Interval) bool, ok bool) {
	op, ok = predicateOps[name]
	return
}

// LookupMeasure returns the named interval -> float64 operation.
func LookupMeasure(name string) (op func(Interval) float64, ok bool) {
	op, ok = measureOps[name]
	return
}

// LookupTest returns the named interval -> bool operation.
func LookupTest(name string) (op func(Interval) bool, ok bool) {
	op, ok = testOps[name]
	return
}

// OperationNames returns the sorted operation names of each category.
func OperationNames() map[string][]string {
	return map[string][]string{
		CategoryUnary:      utils.GetSortedKeys(unaryOps),
		CategoryBinary:     utils.GetSortedKeys(binaryOps),
		CategoryScalar:     utils.GetSortedKeys(scalarOps),
		CategoryScalarLeft: utils.GetSortedKeys(scalarLeftOps),
		CategoryPredicate:  utils.GetSortedKeys(predicateOps),
		CategoryMeasure:    utils.GetSortedKeys(measureOps),
		CategoryTest:       utils.GetSortedKeys(testOps),
	}
}

// Categories returns the operation categories in display order.
func Categories() []string {
	return []string{CategoryUnary, CategoryBinary, CategoryScalar, CategoryScalarLeft, CategoryPredicate, CategoryMeasure, CategoryTest}
}
