// Package input reads newline-delimited sample streams from files or stdin,
// with transparent decompression and a skip-or-fail parse policy.
//
// Each line is trimmed of surrounding whitespace and parsed as a float64.
// Blank lines are ignored. Lines that do not parse to a finite value are
// counted and skipped, or abort the read when strict parsing is enabled.
// The reader also tracks the distinct-token cardinality of the stream and
// can retain raw tokens for categorical histograms.
package input

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/arloliu/histo/errs"
	"github.com/arloliu/histo/internal/distinct"
	"github.com/arloliu/histo/internal/options"
	"github.com/arloliu/histo/internal/pool"
)

// DefaultMaxLines caps how many non-blank lines a single read consumes.
const DefaultMaxLines = 10_000_000

// A stray long line must not abort the whole read with the scanner's
// default 64KB token limit.
const maxLineSize = 1024 * 1024

// Result is the outcome of reading one stream.
type Result struct {
	// Values holds the parsed finite samples in input order.
	Values []float64
	// Tokens holds the trimmed raw tokens, only populated when token
	// retention is enabled.
	Tokens []string
	// Skipped counts lines that did not parse to a finite value.
	Skipped int
	// Distinct is the number of distinct trimmed tokens.
	Distinct int
	// Lines counts the non-blank lines consumed.
	Lines int
	// Truncated reports whether the line cap stopped the read before EOF.
	Truncated bool
}

// MostlyText reports whether non-numeric lines outnumber numeric ones, the
// signal that flips auto mode to a categorical histogram.
func (r *Result) MostlyText() bool {
	return r.Skipped > len(r.Values)
}

// ReadConfig holds the reader knobs.
type ReadConfig struct {
	Strict       bool
	MaxLines     int
	RetainTokens bool
}

func defaultReadConfig() ReadConfig {
	return ReadConfig{
		Strict:       false,
		MaxLines:     DefaultMaxLines,
		RetainTokens: false,
	}
}

// ReadOption is a functional option for ReadConfig.
type ReadOption = options.Option[*ReadConfig]

// WithStrict makes the first malformed line abort the read instead of being
// skipped.
func WithStrict(strict bool) ReadOption {
	return options.NoError(func(cfg *ReadConfig) {
		cfg.Strict = strict
	})
}

// WithMaxLines caps the number of non-blank lines consumed.
func WithMaxLines(n int) ReadOption {
	return options.New(func(cfg *ReadConfig) error {
		if n < 1 {
			return fmt.Errorf("%w: got %d", errs.ErrInvalidMaxLines, n)
		}
		cfg.MaxLines = n

		return nil
	})
}

// WithTokenRetention keeps the trimmed raw tokens in the Result. Required
// for categorical histograms, off by default to keep numeric reads lean.
func WithTokenRetention(retain bool) ReadOption {
	return options.NoError(func(cfg *ReadConfig) {
		cfg.RetainTokens = retain
	})
}

// ReadAll consumes r to EOF (or the line cap) and returns the parsed result.
//
// strconv accepts the tokens "NaN" and "Inf", so parsed values are
// post-checked for finiteness; non-finite values count as malformed lines.
//
// Returns:
//   - *Result: The read outcome. Never nil on success, even for an input
//     with no usable samples; emptiness is the caller's decision to make.
//   - error: Option validation errors, ErrMalformedLine (with line number)
//     in strict mode, or the underlying read error.
func ReadAll(r io.Reader, opts ...ReadOption) (*Result, error) {
	cfg := defaultReadConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	buf, cleanup := pool.GetScanBuffer()
	defer cleanup()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(buf, maxLineSize)

	counter := distinct.NewCounter()
	result := &Result{}

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		token := strings.TrimSpace(scanner.Text())
		if token == "" {
			continue
		}

		if result.Lines >= cfg.MaxLines {
			result.Truncated = true
			break
		}
		result.Lines++

		counter.Observe(token)
		if cfg.RetainTokens {
			result.Tokens = append(result.Tokens, token)
		}

		v, err := strconv.ParseFloat(token, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			if cfg.Strict {
				return nil, fmt.Errorf("%w: line %d: %q", errs.ErrMalformedLine, lineNo, token)
			}
			result.Skipped++

			continue
		}

		result.Values = append(result.Values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	result.Distinct = counter.Count()

	return result, nil
}
