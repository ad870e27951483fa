// Package histo turns newline-delimited value streams into terminal
// histograms with summary statistics.
//
// A single pass over the input produces an immutable hist.Report: sample
// count, min, max, mean, population standard deviation, interpolated
// quantiles and either uniform-width numeric bins or category buckets.
// Renderers in the render package draw the report as an aligned text
// chart, a JSON document or an interactive full-screen viewer.
//
// # Core Features
//
//   - Single-pass statistics (count, min, max, mean, stddev) in constant space
//   - Uniform-width binning with a closed last bin, bin count auto-derived
//     from the sample count when not configured
//   - Interpolated quantiles (default quartiles) via partial selection
//   - Skip-or-fail policy for malformed lines, with per-line diagnostics
//     in strict mode
//   - Categorical histograms for mostly-textual streams, chosen
//     automatically or forced per configuration
//   - Transparent gzip, zstd, s2 and lz4 input decompression by extension
//
// # Basic Usage
//
// Analyzing a stream:
//
//	report, err := histo.Analyze(os.Stdin,
//	    histo.WithBinCount(10),
//	    histo.WithStrict(true),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	renderer, _ := render.NewText(os.Stdout, render.WithWidth(60))
//	_ = renderer.Render(report)
//
// Analyzing a file, decompressed by extension:
//
//	report, err := histo.AnalyzeFile("latency.txt.gz")
//
// Failures are classified by the sentinel errors in the errs package:
// errs.ErrEmptyInput when the stream had no usable samples,
// errs.ErrMalformedLine for strict-mode parse failures,
// errs.ErrInvalidBinCount for a bad bin count (reported before any input
// is read).
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the input,
// stats and hist packages, covering the common read-analyze flow. For
// fine-grained control (token retention, custom readers, direct binning)
// use those packages directly.
package histo

import (
	"fmt"
	"io"
	"math"

	"github.com/arloliu/histo/errs"
	"github.com/arloliu/histo/format"
	"github.com/arloliu/histo/hist"
	"github.com/arloliu/histo/input"
	"github.com/arloliu/histo/internal/options"
	"github.com/arloliu/histo/stats"
)

// AnalyzeConfig holds the configuration applied by Analyze and AnalyzeFile.
type AnalyzeConfig struct {
	Mode      format.Mode
	BinCount  int // 0 derives the bin count from the sample count
	Strict    bool
	MaxLines  int
	Quantiles []float64
}

func defaultAnalyzeConfig() AnalyzeConfig {
	return AnalyzeConfig{
		Mode:      format.ModeAuto,
		BinCount:  0,
		Strict:    false,
		MaxLines:  input.DefaultMaxLines,
		Quantiles: stats.DefaultQuantiles,
	}
}

// AnalyzeOption is a functional option for AnalyzeConfig.
type AnalyzeOption = options.Option[*AnalyzeConfig]

// WithMode forces the histogram mode. The default, format.ModeAuto, picks
// category mode when non-numeric lines outnumber numeric ones.
func WithMode(mode format.Mode) AnalyzeOption {
	return options.New(func(cfg *AnalyzeConfig) error {
		switch mode {
		case format.ModeAuto, format.ModeNumeric, format.ModeCategory:
			cfg.Mode = mode

			return nil
		default:
			return fmt.Errorf("%w: %d", errs.ErrUnknownMode, mode)
		}
	})
}

// WithBinCount sets an explicit bin count. Counts below 1 are rejected
// before any input is read.
func WithBinCount(bins int) AnalyzeOption {
	return options.New(func(cfg *AnalyzeConfig) error {
		if bins < 1 {
			return fmt.Errorf("%w: got %d", errs.ErrInvalidBinCount, bins)
		}
		cfg.BinCount = bins

		return nil
	})
}

// WithStrict makes the first malformed line fatal instead of skipped.
func WithStrict(strict bool) AnalyzeOption {
	return options.NoError(func(cfg *AnalyzeConfig) {
		cfg.Strict = strict
	})
}

// WithMaxLines caps the number of non-blank lines consumed.
func WithMaxLines(n int) AnalyzeOption {
	return options.New(func(cfg *AnalyzeConfig) error {
		if n < 1 {
			return fmt.Errorf("%w: got %d", errs.ErrInvalidMaxLines, n)
		}
		cfg.MaxLines = n

		return nil
	})
}

// WithQuantiles sets the quantiles attached to the report. An empty slice
// disables the quantile table. Defaults to the quartiles (0.25, 0.5, 0.75).
func WithQuantiles(qs []float64) AnalyzeOption {
	return options.New(func(cfg *AnalyzeConfig) error {
		for _, q := range qs {
			if q < 0 || q > 1 || math.IsNaN(q) {
				return fmt.Errorf("%w: %v", errs.ErrInvalidQuantile, q)
			}
		}
		cfg.Quantiles = qs

		return nil
	})
}

// ResolveMode resolves format.ModeAuto against what the reader saw:
// category when non-numeric lines outnumber numeric ones, numeric
// otherwise. Explicit modes pass through unchanged.
func ResolveMode(mode format.Mode, result *input.Result) format.Mode {
	if mode != format.ModeAuto {
		return mode
	}
	if result.MostlyText() {
		return format.ModeCategory
	}

	return format.ModeNumeric
}

// Analyze reads a newline-delimited stream and builds its histogram report.
//
// Configuration is validated before the first byte is read, so an invalid
// bin count fails even when the stream is empty or unreadable. Blank lines
// are ignored; malformed lines are skipped and counted, or abort the run
// with strict parsing.
//
// Returns:
//   - *hist.Report: The finished report.
//   - error: Option validation errors (ErrInvalidBinCount, ErrUnknownMode,
//     ErrInvalidMaxLines, ErrInvalidQuantile), ErrMalformedLine in strict
//     mode, ErrEmptyInput when no usable samples arrived, or the underlying
//     read error.
func Analyze(r io.Reader, opts ...AnalyzeOption) (*hist.Report, error) {
	cfg := defaultAnalyzeConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	result, err := input.ReadAll(r,
		input.WithStrict(cfg.Strict),
		input.WithMaxLines(cfg.MaxLines),
		// Tokens are only needed when category mode may engage.
		input.WithTokenRetention(cfg.Mode != format.ModeNumeric),
	)
	if err != nil {
		return nil, err
	}

	return buildReport(&cfg, result)
}

// AnalyzeFile analyzes the file at path, transparently decompressing
// gzip, zstd, s2 and lz4 inputs by extension. The path "-" reads stdin.
func AnalyzeFile(path string, opts ...AnalyzeOption) (*hist.Report, error) {
	rc, err := input.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return Analyze(rc, opts...)
}

func buildReport(cfg *AnalyzeConfig, result *input.Result) (*hist.Report, error) {
	if ResolveMode(cfg.Mode, result) == format.ModeCategory {
		return hist.BuildCategory(result.Tokens)
	}

	buildOpts := []hist.BuildOption{
		hist.WithQuantiles(cfg.Quantiles),
		hist.WithSkipped(result.Skipped),
		hist.WithDistinct(result.Distinct),
	}
	if cfg.BinCount > 0 {
		buildOpts = append(buildOpts, hist.WithBinCount(cfg.BinCount))
	}

	return hist.Build(result.Values, buildOpts...)
}
