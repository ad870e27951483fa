package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/histo/errs"
	"github.com/arloliu/histo/format"
	"github.com/arloliu/histo/input"
	"github.com/arloliu/histo/render"
	"github.com/arloliu/histo/stats"
)

// HistogramFlags will be converted to options, which drive reading the
// input and rendering the report
type HistogramFlags struct {

	// Input selection
	Mode     string
	MaxLines int
	Strict   bool

	// Histogram shaping
	Bins        int      // 0 => derived from the sample count
	Percentiles []string // e.g. ["50","90","99.9"] or a preset name

	// Output selection
	JSON        bool
	Output      string // -o / --output file path (empty => stdout)
	Width       int    // 0 => fit the terminal
	Glyph       string
	Title       string
	Interactive bool

	Verbose bool
}

// NewHistogramFlags returns a default HistogramFlags
func NewHistogramFlags() *HistogramFlags {
	return &HistogramFlags{
		MaxLines:    input.DefaultMaxLines,
		Percentiles: []string{"25", "50", "75"},
		Glyph:       render.DefaultGlyph,
		Title:       render.DefaultTitle,
	}
}

// AddFlags registers flags for a cli
func (flags *HistogramFlags) AddFlags(cmd *cobra.Command) {
	// Input selection
	cmd.Flags().StringVarP(&flags.Mode, "mode", "m", flags.Mode,
		"Histogram mode: auto, numeric or category.")
	cmd.Flags().IntVar(&flags.MaxLines, "max-lines", flags.MaxLines,
		"Maximum number of non-blank input lines to read.")
	cmd.Flags().BoolVar(&flags.Strict, "strict", flags.Strict,
		"Fail on the first malformed line instead of skipping it.")

	// Histogram shaping
	cmd.Flags().IntVarP(&flags.Bins, "bins", "b", flags.Bins,
		"Number of bins; 0 derives the count from the sample count.")
	cmd.Flags().StringSliceVar(&flags.Percentiles, "percentiles", flags.Percentiles,
		"Percentiles to report, or a preset: default, tail, none. Example: --percentiles 50,90,99")

	// Output selection
	cmd.Flags().BoolVar(&flags.JSON, "json", flags.JSON,
		"If true, output the report as JSON.")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", flags.Output,
		"Write output to a file instead of stdout.")
	cmd.Flags().IntVarP(&flags.Width, "width", "w", flags.Width,
		"Bar width in glyphs; 0 fits the terminal.")
	cmd.Flags().StringVar(&flags.Glyph, "glyph", flags.Glyph,
		"Glyph used to draw bars.")
	cmd.Flags().StringVarP(&flags.Title, "title", "t", flags.Title,
		"Report title.")
	cmd.Flags().BoolVarP(&flags.Interactive, "interactive", "i", flags.Interactive,
		"Browse the histogram in a full-screen viewer.")

	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", flags.Verbose,
		"Print detailed execution info.")
}

func (flags *HistogramFlags) ToOptions(args []string) (*HistogramOptions, error) {
	// Validation
	if flags.Bins < 0 {
		return nil, fmt.Errorf("%w: got %d", errs.ErrInvalidBinCount, flags.Bins)
	}
	if flags.Width < 0 {
		return nil, fmt.Errorf("%w: got %d", errs.ErrInvalidWidth, flags.Width)
	}
	if flags.Interactive && flags.JSON {
		return nil, fmt.Errorf("--interactive cannot be combined with --json")
	}
	if flags.Interactive && flags.Output != "" {
		return nil, fmt.Errorf("--interactive cannot be combined with --output")
	}

	mode, err := format.ParseMode(flags.Mode)
	if err != nil {
		return nil, err
	}

	quantiles, err := parsePercentiles(flags.Percentiles)
	if err != nil {
		return nil, err
	}

	o := &HistogramOptions{
		Mode:        mode,
		MaxLines:    flags.MaxLines,
		Strict:      flags.Strict,
		Bins:        flags.Bins,
		Quantiles:   quantiles,
		JSON:        flags.JSON,
		OutputPath:  flags.Output,
		Width:       flags.Width,
		Glyph:       flags.Glyph,
		Title:       flags.Title,
		Interactive: flags.Interactive,
	}

	// Positional argument selects the input file; otherwise stdin.
	if len(args) > 0 {
		o.File = args[0]
	}

	return o, nil
}

// parsePercentiles converts user input to quantiles in [0, 1]
// e.g. ["50", "99.9"] -> [0.5, 0.999]
// e.g. ["default"] -> [0.25, 0.5, 0.75]
// e.g. ["tail"] -> [0.9, 0.95, 0.99, 0.999]
func parsePercentiles(in []string) ([]float64, error) {
	if len(in) == 0 {
		return nil, nil
	}

	// Handle presets
	if len(in) == 1 {
		switch in[0] {
		case "none":
			return nil, nil
		case "default":
			return stats.DefaultQuantiles, nil
		case "tail":
			return []float64{0.9, 0.95, 0.99, 0.999}, nil
		}
	}

	// Parse individual percentiles
	qs := make([]float64, 0, len(in))
	for _, raw := range in {
		// Accept an optional "p" prefix, e.g. p99
		token := strings.TrimPrefix(strings.TrimSpace(raw), "p")
		p, err := strconv.ParseFloat(token, 64)
		if err != nil || p < 0 || p > 100 {
			return nil, fmt.Errorf("%w: %q", errs.ErrInvalidQuantile, raw)
		}
		qs = append(qs, p/100)
	}

	return qs, nil
}
