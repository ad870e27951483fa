// Package hist partitions sample sets into uniform-width bins and assembles
// the immutable Report consumed by the renderers.
//
// The bin layout over a range [min, max] with k bins of width w=(max-min)/k:
//
//	bin i covers [min + i·w, min + (i+1)·w)   for i < k-1
//	bin k-1 covers [min + (k-1)·w, max]       (closed upper edge)
//
// Every sample lands in exactly one bin and the per-bin counts always sum to
// the sample count. A degenerate range (min == max) collapses every bin to
// zero width and puts all samples in bin 0.
package hist

import (
	"fmt"

	"github.com/arloliu/histo/errs"
)

// Bin is one histogram bucket. The interval is half-open [Lower, Upper)
// except for the last bin of a report, which closes at the range maximum.
type Bin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// Binner partitions samples into a fixed number of uniform-width bins.
type Binner struct {
	bins int
}

// New creates a Binner with the given bin count.
//
// Returns:
//   - *Binner: The created binner.
//   - error: ErrInvalidBinCount if bins is below 1.
func New(bins int) (*Binner, error) {
	if bins < 1 {
		return nil, fmt.Errorf("%w: got %d", errs.ErrInvalidBinCount, bins)
	}

	return &Binner{bins: bins}, nil
}

// Bins returns the configured bin count.
func (b *Binner) Bins() int {
	return b.bins
}

// Bin distributes samples over the range [min, max].
//
// Callers pass the global min and max of the sample set; every sample must
// lie within the range. The bin index of a sample x is floor((x-min)/w)
// clamped to the last bin, which both closes the final interval and absorbs
// floating-point rounding at the upper edge. The result depends only on the
// sample values, not their order.
func (b *Binner) Bin(samples []float64, min, max float64) []Bin {
	width := (max - min) / float64(b.bins)

	bins := make([]Bin, b.bins)
	for i := range bins {
		bins[i].Lower = min + float64(i)*width
		bins[i].Upper = min + float64(i+1)*width
	}
	// Pin the closed upper edge; min + k·w can drift off max by an ulp.
	bins[b.bins-1].Upper = max

	for _, v := range samples {
		idx := 0
		if width > 0 {
			idx = int((v - min) / width)
			if idx >= b.bins {
				idx = b.bins - 1
			}
		}
		bins[idx].Count++
	}

	return bins
}
