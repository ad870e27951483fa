// Package render turns a finished hist.Report into terminal output: an
// aligned text chart, a JSON document, or an interactive full-screen viewer.
//
// All renderers share the same scaling rule. The tallest bucket maps to the
// configured width and every other bar scales linearly against it, with one
// guarantee: a bucket that holds at least one sample always renders at least
// one glyph, however small its share.
package render

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/term"

	"github.com/arloliu/histo/errs"
	"github.com/arloliu/histo/internal/options"
)

const (
	// DefaultWidth is the bar width used when none is configured and no
	// terminal is attached.
	DefaultWidth = 60
	// DefaultGlyph is the bar fill rune.
	DefaultGlyph = "█"
	// DefaultTitle heads reports that were not given a title.
	DefaultTitle = "Histogram"

	// Terminal-derived widths are clamped to this range. The allowance
	// reserves room for the label, count and percent columns of a row.
	minAutoWidth   = 10
	maxAutoWidth   = 120
	labelAllowance = 40
)

// BarLength returns the glyph count for a bucket: round(count·width/max),
// floored at one glyph for non-empty buckets. Returns 0 for empty buckets
// and for degenerate inputs (no samples anywhere, or no width to draw in).
func BarLength(count, maxCount, width int) int {
	if count <= 0 || maxCount <= 0 || width <= 0 {
		return 0
	}

	scale := float64(width) / float64(maxCount)
	n := int(math.Round(float64(count) * scale))
	if n < 1 {
		n = 1
	}
	if n > width {
		n = width
	}

	return n
}

// Bar renders the scaled bar string for a bucket.
func Bar(count, maxCount, width int, glyph string) string {
	return strings.Repeat(glyph, BarLength(count, maxCount, width))
}

// TerminalWidth derives a bar width from the terminal attached to fd,
// leaving room for the row label columns. Falls back to DefaultWidth when
// fd is not a terminal.
func TerminalWidth(fd int) int {
	cols, _, err := term.GetSize(fd)
	if err != nil || cols <= 0 {
		return DefaultWidth
	}

	w := cols - labelAllowance
	if w < minAutoWidth {
		return minAutoWidth
	}
	if w > maxAutoWidth {
		return maxAutoWidth
	}

	return w
}

// Config holds the shared renderer settings.
type Config struct {
	Width int
	Glyph string
	Title string
}

func defaultConfig() Config {
	return Config{
		Width: DefaultWidth,
		Glyph: DefaultGlyph,
		Title: DefaultTitle,
	}
}

// Option is a functional option for renderer Config.
type Option = options.Option[*Config]

// WithWidth sets the maximum bar width in glyphs.
func WithWidth(width int) Option {
	return options.New(func(cfg *Config) error {
		if width < 1 {
			return fmt.Errorf("%w: got %d", errs.ErrInvalidWidth, width)
		}
		cfg.Width = width

		return nil
	})
}

// WithGlyph sets the bar fill string. An empty glyph keeps the default.
func WithGlyph(glyph string) Option {
	return options.NoError(func(cfg *Config) {
		if glyph != "" {
			cfg.Glyph = glyph
		}
	})
}

// WithTitle sets the report title. An empty title keeps the default.
func WithTitle(title string) Option {
	return options.NoError(func(cfg *Config) {
		if title != "" {
			cfg.Title = title
		}
	})
}
