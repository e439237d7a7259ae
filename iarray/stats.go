package iarray

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// Summary describes the distribution of the widths of an array.
type Summary struct {
	Mean   float64
	Median float64
	Max    float64
	P95    float64
}

// WidthSummary returns the mean, median, maximum and 95th percentile of the
// widths of the elements of a. Elements with a NaN bound are ignored;
// unbounded elements make every statistic they enter infinite.
func (a Array) WidthSummary() (s Summary, err error) {

	w := make(stats.Float64Data, 0, len(a))
	for _, v := range a.Norm() {
		if !math.IsNaN(v) {
			w = append(w, v)
		}
	}

	if w.Len() == 0 {
		return s, fmt.Errorf("cannot WidthSummary: no interval with numeric bounds")
	}

	if s.Mean, err = w.Mean(); err != nil {
		return s, fmt.Errorf("stats.Mean: %w", err)
	}

	if s.Median, err = w.Median(); err != nil {
		return s, fmt.Errorf("stats.Median: %w", err)
	}

	if s.Max, err = w.Max(); err != nil {
		return s, fmt.Errorf("stats.Max: %w", err)
	}

	// stats.Percentile needs at least two values.
	if w.Len() == 1 {
		s.P95 = w[0]
	} else if s.P95, err = w.Percentile(95); err != nil {
		return s, fmt.Errorf("stats.Percentile: %w", err)
	}

	return
}
