package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/tuneinsight/interval/ival"
)

func parseFloat(s string) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q as a number", s)
	}
	return x, nil
}

// parseInterval parses the bounds l and u of a well-formed interval.
func parseInterval(l, u string) (i ival.Interval, err error) {

	var lf, uf float64
	if lf, err = parseFloat(l); err != nil {
		return
	}

	if uf, err = parseFloat(u); err != nil {
		return
	}

	return ival.NewStrict(lf, uf)
}

// parseIntervals parses consecutive pairs of bounds.
func parseIntervals(args []string) (is []ival.Interval, err error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("cannot parse operands: odd number of bounds")
	}
	is = make([]ival.Interval, len(args)/2)
	for k := range is {
		if is[k], err = parseInterval(args[2*k], args[2*k+1]); err != nil {
			return nil, fmt.Errorf("cannot parse operands: %w", err)
		}
	}
	return
}

// formatInterval highlights the Entire and NaN sentinels.
func formatInterval(i ival.Interval) string {
	switch {
	case i.HasNaN():
		return color.RedString("%v", i)
	case i.IsEntire():
		return color.YellowString("%v", i)
	}
	return i.String()
}

func formatBool(b bool) string {
	if b {
		return color.GreenString("true")
	}
	return color.RedString("false")
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
