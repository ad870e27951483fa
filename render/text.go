package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/arloliu/histo/format"
	"github.com/arloliu/histo/hist"
	"github.com/arloliu/histo/internal/options"
)

// TextRenderer writes a report as an aligned text chart: a title header,
// the summary statistics, then one bar row per bucket.
type TextRenderer struct {
	w   io.Writer
	cfg Config
}

// NewText creates a text renderer writing to w.
//
// Returns:
//   - *TextRenderer: The created renderer.
//   - error: ErrInvalidWidth from options.
func NewText(w io.Writer, opts ...Option) (*TextRenderer, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &TextRenderer{w: w, cfg: cfg}, nil
}

// Render writes the complete report. The report is not modified.
func (r *TextRenderer) Render(report *hist.Report) error {
	var sb strings.Builder

	r.writeHeader(&sb, report)
	sb.WriteByte('\n')
	if report.Mode == format.ModeCategory {
		r.writeCategories(&sb, report)
	} else {
		r.writeBins(&sb, report)
	}

	if _, err := io.WriteString(r.w, sb.String()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

func (r *TextRenderer) writeHeader(sb *strings.Builder, report *hist.Report) {
	fmt.Fprintf(sb, "=== %s ===\n\n", r.cfg.Title)

	count := humanize.Comma(int64(report.Total()))
	if report.Skipped > 0 {
		fmt.Fprintf(sb, "  Count:     %s (%s skipped)\n", count, humanize.Comma(int64(report.Skipped)))
	} else {
		fmt.Fprintf(sb, "  Count:     %s\n", count)
	}
	fmt.Fprintf(sb, "  Distinct:  %s\n", humanize.Comma(int64(report.Distinct)))

	if report.Mode == format.ModeCategory {
		return
	}

	fmt.Fprintf(sb, "  Min:       %s\n", formatValue(report.Summary.Min))
	fmt.Fprintf(sb, "  Max:       %s\n", formatValue(report.Summary.Max))
	fmt.Fprintf(sb, "  Mean:      %s\n", formatValue(report.Summary.Mean))
	fmt.Fprintf(sb, "  Stddev:    %s\n", formatValue(report.Summary.StdDev))

	if len(report.Quantiles) > 0 {
		parts := make([]string, 0, len(report.Quantiles))
		for _, q := range report.Quantiles {
			parts = append(parts, fmt.Sprintf("%s=%s", quantileLabel(q.Q), formatValue(q.Value)))
		}
		fmt.Fprintf(sb, "  Quantiles: %s\n", strings.Join(parts, "  "))
	}
}

func (r *TextRenderer) writeBins(sb *strings.Builder, report *hist.Report) {
	lowers := make([]string, len(report.Bins))
	uppers := make([]string, len(report.Bins))
	counts := make([]string, len(report.Bins))
	edgeLen, countLen := 0, 0
	for i, bin := range report.Bins {
		lowers[i] = formatValue(bin.Lower)
		uppers[i] = formatValue(bin.Upper)
		counts[i] = humanize.Comma(int64(bin.Count))
		edgeLen = max(edgeLen, len(lowers[i]), len(uppers[i]))
		countLen = max(countLen, len(counts[i]))
	}

	total := report.Total()
	maxCount := report.MaxCount()
	for i, bin := range report.Bins {
		// Every interval is half-open except the last, which closes at max.
		closing := byte(')')
		if i == len(report.Bins)-1 {
			closing = ']'
		}
		fmt.Fprintf(sb, "  [%*s, %*s%c  %*s  %5.1f%%  %s\n",
			edgeLen, lowers[i],
			edgeLen, uppers[i],
			closing,
			countLen, counts[i],
			percent(bin.Count, total),
			Bar(bin.Count, maxCount, r.cfg.Width, r.cfg.Glyph),
		)
	}
}

func (r *TextRenderer) writeCategories(sb *strings.Builder, report *hist.Report) {
	labelLen, countLen := 0, 0
	counts := make([]string, len(report.Categories))
	for i, c := range report.Categories {
		counts[i] = humanize.Comma(int64(c.Count))
		labelLen = max(labelLen, len(c.Label))
		countLen = max(countLen, len(counts[i]))
	}

	total := report.Total()
	maxCount := report.MaxCount()
	for i, c := range report.Categories {
		fmt.Fprintf(sb, "  %-*s  %*s  %5.1f%%  %s\n",
			labelLen, c.Label,
			countLen, counts[i],
			percent(c.Count, total),
			Bar(c.Count, maxCount, r.cfg.Width, r.cfg.Glyph),
		)
	}
}

func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}

	return float64(count) / float64(total) * 100
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// quantileLabel names a quantile the usual way: 0.25 → p25, 0.999 → p99.9.
func quantileLabel(q float64) string {
	return "p" + strconv.FormatFloat(q*100, 'g', -1, 64)
}
