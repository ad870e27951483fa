package stats

import (
	"fmt"
	"math"

	"github.com/wangjohn/quickselect"

	"github.com/arloliu/histo/errs"
	"github.com/arloliu/histo/internal/pool"
)

// DefaultQuantiles are the quartile markers reported when no explicit
// quantile list is configured.
var DefaultQuantiles = []float64{0.25, 0.5, 0.75}

// Quantile is a single computed quantile: Q in [0, 1] and its sample value.
type Quantile struct {
	Q     float64 `json:"q"`
	Value float64 `json:"value"`
}

// SelectQuantile computes the q-th quantile of data with linear
// interpolation between the two closest ranks.
//
// The rank position is k = (len(data)-1)·q. Quickselect partitions the
// smallest ceil(k)+1 elements to the front, the two largest of that prefix
// are the closest ranks, and the fractional part of k interpolates between
// them. This touches O(n) elements instead of fully sorting.
//
// The data slice is reordered in place. Elements are only permuted, never
// modified, so repeated calls on the same slice stay correct.
//
// Returns:
//   - float64: The interpolated quantile value.
//   - error: ErrEmptyInput for an empty slice, ErrInvalidQuantile for q
//     outside [0, 1].
func SelectQuantile(data []float64, q float64) (float64, error) {
	if len(data) == 0 {
		return 0, errs.ErrEmptyInput
	}
	if q < 0 || q > 1 || math.IsNaN(q) {
		return 0, fmt.Errorf("%w: %v", errs.ErrInvalidQuantile, q)
	}
	if len(data) == 1 {
		return data[0], nil
	}

	k := float64(len(data)-1) * q
	length := int(math.Ceil(k)) + 1
	// length is within [1, len(data)] for any valid q, so selection cannot fail.
	_ = quickselect.Float64QuickSelect(data, length)

	top, secondTop := math.Inf(-1), math.Inf(-1)
	for _, val := range data[:length] {
		if val > top {
			secondTop = top
			top = val
		} else if val > secondTop {
			secondTop = val
		}
	}

	remainder := k - math.Floor(k)
	if remainder == 0 {
		return top, nil
	}

	return top*remainder + secondTop*(1-remainder), nil
}

// SelectQuantiles computes several quantiles of vs in one pass over a single
// scratch copy. The input slice is not modified. The result preserves the
// order of qs.
//
// Returns:
//   - []Quantile: One entry per requested quantile.
//   - error: ErrEmptyInput for an empty sample set, ErrInvalidQuantile for
//     any q outside [0, 1].
func SelectQuantiles(vs []float64, qs []float64) ([]Quantile, error) {
	if len(vs) == 0 {
		return nil, errs.ErrEmptyInput
	}
	if len(qs) == 0 {
		return nil, nil
	}

	scratch, cleanup := pool.GetFloat64Slice(len(vs))
	defer cleanup()
	copy(scratch, vs)

	result := make([]Quantile, 0, len(qs))
	for _, q := range qs {
		v, err := SelectQuantile(scratch, q)
		if err != nil {
			return nil, err
		}
		result = append(result, Quantile{Q: q, Value: v})
	}

	return result, nil
}
