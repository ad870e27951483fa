// Package stats computes the summary statistics attached to every histogram
// report: sample count, min, max, mean, population standard deviation and
// interpolated quantiles.
//
// The Accumulator is a constant-space, single-pass reducer. It keeps five
// running values (count, sum, sum of squares, min, max) and derives mean and
// standard deviation from them, so observing a sample is O(1) and the memory
// cost is independent of stream length.
package stats

import (
	"math"

	"github.com/arloliu/histo/errs"
)

// Summary holds the finalized statistics of a sample set.
// It is immutable once produced by Accumulator.Finalize.
type Summary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
}

// Accumulator folds samples into running statistics.
//
// Callers must pass finite values; parsing layers reject NaN and ±Inf before
// samples reach the accumulator. The zero value is not usable, create
// accumulators with NewAccumulator.
type Accumulator struct {
	count int
	sum   float64
	sumSq float64
	min   float64
	max   float64
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		min: math.Inf(1),
		max: math.Inf(-1),
	}
}

// Observe folds a single sample into the running statistics.
func (a *Accumulator) Observe(v float64) {
	a.count++
	a.sum += v
	a.sumSq += v * v

	if v < a.min {
		a.min = v
	}
	if v > a.max {
		a.max = v
	}
}

// ObserveAll folds a batch of samples into the running statistics.
func (a *Accumulator) ObserveAll(vs []float64) {
	for _, v := range vs {
		a.Observe(v)
	}
}

// Count returns the number of samples observed so far.
func (a *Accumulator) Count() int {
	return a.count
}

// Finalize derives the Summary from the running values.
//
// The standard deviation is the population form, sqrt(E[x²] − E[x]²),
// computed from the two running moments. The single-pass formula suffers
// catastrophic cancellation when the spread is tiny relative to the
// magnitude (e.g. values near 1e9 varying by 1e-3); the variance is clamped
// at zero so rounding can never produce NaN. The accumulator remains usable
// after Finalize, further samples yield a new Summary.
//
// Returns:
//   - Summary: The finalized statistics.
//   - error: ErrEmptyInput if no samples were observed.
func (a *Accumulator) Finalize() (Summary, error) {
	if a.count == 0 {
		return Summary{}, errs.ErrEmptyInput
	}

	n := float64(a.count)
	mean := a.sum / n

	variance := a.sumSq/n - mean*mean
	if variance < 0 {
		variance = 0
	}

	return Summary{
		Count:  a.count,
		Min:    a.min,
		Max:    a.max,
		Mean:   mean,
		StdDev: math.Sqrt(variance),
	}, nil
}

// Summarize is a convenience wrapper that folds a complete sample set and
// finalizes it in one call.
//
// Returns:
//   - Summary: The finalized statistics.
//   - error: ErrEmptyInput if vs is empty.
func Summarize(vs []float64) (Summary, error) {
	acc := NewAccumulator()
	acc.ObserveAll(vs)

	return acc.Finalize()
}
