package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/arloliu/histo"
	"github.com/arloliu/histo/errs"
	"github.com/arloliu/histo/format"
	"github.com/arloliu/histo/hist"
	"github.com/arloliu/histo/render"
)

type HistogramOptions struct {

	// Input selection
	File     string // empty => stdin
	Mode     format.Mode
	MaxLines int
	Strict   bool

	// Histogram shaping
	Bins      int // 0 => derived from the sample count
	Quantiles []float64

	// Output selection
	JSON        bool
	OutputPath  string // file path (if specified)
	Width       int    // 0 => fit the terminal
	Glyph       string
	Title       string
	Interactive bool

	// Internal (set during Run)
	out io.Writer
}

func (o *HistogramOptions) Run() error {
	// Reading stdin from an untouched terminal would block forever waiting
	// for typed input; insist on a pipe or an explicit file.
	if o.File == "" && term.IsTerminal(int(os.Stdin.Fd())) {
		return errs.ErrMissingInput
	}
	if o.Interactive && !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("%w: --interactive needs a terminal on stdout", errs.ErrNotTerminal)
	}

	report, err := o.analyze()
	if err != nil {
		return err
	}

	if report.Skipped > 0 {
		log.Warnf("skipped %d malformed lines", report.Skipped)
	}
	log.Debugf("mode=%s bins=%d samples=%d distinct=%d",
		report.Mode, len(report.Bins), report.Total(), report.Distinct)

	if o.Interactive {
		console, err := render.NewConsole(report, render.WithTitle(o.Title))
		if err != nil {
			return err
		}

		return console.Run()
	}

	if err := o.setupOutput(); err != nil {
		return fmt.Errorf("setup output: %w", err)
	}
	defer o.closeOutput()

	return o.render(report)
}

func (o *HistogramOptions) analyze() (*hist.Report, error) {
	opts := []histo.AnalyzeOption{
		histo.WithMode(o.Mode),
		histo.WithStrict(o.Strict),
		histo.WithMaxLines(o.MaxLines),
		histo.WithQuantiles(o.Quantiles),
	}
	if o.Bins > 0 {
		opts = append(opts, histo.WithBinCount(o.Bins))
	}

	path := o.File
	if path == "" {
		path = "-"
	}

	return histo.AnalyzeFile(path, opts...)
}

func (o *HistogramOptions) render(report *hist.Report) error {
	width := o.Width
	if width == 0 {
		width = render.TerminalWidth(int(os.Stdout.Fd()))
	}

	ropts := []render.Option{
		render.WithWidth(width),
		render.WithGlyph(o.Glyph),
		render.WithTitle(o.Title),
	}

	if o.JSON {
		renderer, err := render.NewJSON(o.out, ropts...)
		if err != nil {
			return err
		}

		return renderer.Render(report)
	}

	renderer, err := render.NewText(o.out, ropts...)
	if err != nil {
		return err
	}

	return renderer.Render(report)
}

func (o *HistogramOptions) setupOutput() error {
	if o.OutputPath != "" {
		f, err := os.Create(o.OutputPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		o.out = f
	} else {
		o.out = os.Stdout
	}

	return nil
}

func (o *HistogramOptions) closeOutput() {
	if f, ok := o.out.(*os.File); ok && f != os.Stdout {
		f.Close()
	}
}
