package hist

import (
	"fmt"
	"math"

	"github.com/arloliu/histo/errs"
	"github.com/arloliu/histo/format"
	"github.com/arloliu/histo/internal/options"
	"github.com/arloliu/histo/stats"
)

// MaxAutoBins caps the automatically selected bin count.
const MaxAutoBins = 20

// Report is the finished histogram: resolved mode, summary statistics and
// either numeric bins or category buckets. Reports are built once and never
// mutated afterwards; renderers only read them.
type Report struct {
	Mode       format.Mode      `json:"mode"`
	Summary    stats.Summary    `json:"summary"`
	BinWidth   float64          `json:"bin_width"`
	Bins       []Bin            `json:"bins,omitempty"`
	Categories []Category       `json:"categories,omitempty"`
	Quantiles  []stats.Quantile `json:"quantiles,omitempty"`
	Skipped    int              `json:"skipped"`
	Distinct   int              `json:"distinct"`
}

// Total returns the number of samples counted by the report: the summary
// count in numeric mode, the sum of category counts in category mode.
func (r *Report) Total() int {
	if r.Mode == format.ModeCategory {
		total := 0
		for _, c := range r.Categories {
			total += c.Count
		}

		return total
	}

	return r.Summary.Count
}

// MaxCount returns the largest bucket count in the report. Renderers scale
// bar lengths against it.
func (r *Report) MaxCount() int {
	max := 0
	if r.Mode == format.ModeCategory {
		for _, c := range r.Categories {
			if c.Count > max {
				max = c.Count
			}
		}

		return max
	}

	for _, b := range r.Bins {
		if b.Count > max {
			max = b.Count
		}
	}

	return max
}

// BuildConfig holds the knobs honored by Build and BuildCategory.
type BuildConfig struct {
	BinCount  int // 0 selects the bin count automatically
	Quantiles []float64
	Skipped   int
	Distinct  int
}

func defaultBuildConfig() BuildConfig {
	return BuildConfig{
		BinCount:  0,
		Quantiles: stats.DefaultQuantiles,
	}
}

// BuildOption is a functional option for BuildConfig.
type BuildOption = options.Option[*BuildConfig]

// WithBinCount sets an explicit bin count. Rejects counts below 1; omit the
// option to let Build pick one from the sample count.
func WithBinCount(bins int) BuildOption {
	return options.New(func(cfg *BuildConfig) error {
		if bins < 1 {
			return fmt.Errorf("%w: got %d", errs.ErrInvalidBinCount, bins)
		}
		cfg.BinCount = bins

		return nil
	})
}

// WithQuantiles sets the quantiles attached to the report. An empty slice
// disables the quantile table. Defaults to the quartiles (0.25, 0.5, 0.75).
func WithQuantiles(qs []float64) BuildOption {
	return options.New(func(cfg *BuildConfig) error {
		for _, q := range qs {
			if q < 0 || q > 1 || math.IsNaN(q) {
				return fmt.Errorf("%w: %v", errs.ErrInvalidQuantile, q)
			}
		}
		cfg.Quantiles = qs

		return nil
	})
}

// WithSkipped records the number of malformed lines skipped while reading.
func WithSkipped(n int) BuildOption {
	return options.NoError(func(cfg *BuildConfig) {
		cfg.Skipped = n
	})
}

// WithDistinct records the distinct-token count observed while reading.
func WithDistinct(n int) BuildOption {
	return options.NoError(func(cfg *BuildConfig) {
		cfg.Distinct = n
	})
}

// AutoBinCount picks a bin count for n samples: ceil(sqrt(n)), capped at
// MaxAutoBins. The square-root rule tracks resolution with sample count
// while the cap keeps charts readable on a terminal.
func AutoBinCount(n int) int {
	if n < 1 {
		return 1
	}

	k := int(math.Ceil(math.Sqrt(float64(n))))
	if k > MaxAutoBins {
		return MaxAutoBins
	}

	return k
}

// Build assembles a numeric Report: summary statistics, uniform bins over
// [min, max] and the configured quantiles.
//
// Configuration errors surface before any sample is touched, so an invalid
// bin count wins over an empty sample set.
//
// Returns:
//   - *Report: The finished report.
//   - error: ErrInvalidBinCount or ErrInvalidQuantile from options,
//     ErrEmptyInput if samples is empty.
func Build(samples []float64, opts ...BuildOption) (*Report, error) {
	cfg := defaultBuildConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	summary, err := stats.Summarize(samples)
	if err != nil {
		return nil, err
	}

	binCount := cfg.BinCount
	if binCount == 0 {
		binCount = AutoBinCount(summary.Count)
	}

	binner, err := New(binCount)
	if err != nil {
		return nil, err
	}
	bins := binner.Bin(samples, summary.Min, summary.Max)

	quantiles, err := stats.SelectQuantiles(samples, cfg.Quantiles)
	if err != nil {
		return nil, err
	}

	return &Report{
		Mode:      format.ModeNumeric,
		Summary:   summary,
		BinWidth:  (summary.Max - summary.Min) / float64(binCount),
		Bins:      bins,
		Quantiles: quantiles,
		Skipped:   cfg.Skipped,
		Distinct:  cfg.Distinct,
	}, nil
}

// BuildCategory assembles a categorical Report from raw tokens. Bin count
// and quantile options are accepted but have no effect in this mode.
//
// Returns:
//   - *Report: The finished report.
//   - error: Option validation errors, ErrEmptyInput if tokens is empty.
func BuildCategory(tokens []string, opts ...BuildOption) (*Report, error) {
	cfg := defaultBuildConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		return nil, errs.ErrEmptyInput
	}

	categories := BuildCategories(tokens)

	return &Report{
		Mode:       format.ModeCategory,
		Categories: categories,
		Skipped:    cfg.Skipped,
		Distinct:   len(categories),
	}, nil
}
