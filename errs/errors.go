// Package errs defines the sentinel errors shared across histo packages.
//
// All errors returned by the public API wrap one of these sentinels, so
// callers can classify failures with errors.Is without string matching:
//
//	report, err := histo.Analyze(r)
//	if errors.Is(err, errs.ErrEmptyInput) {
//	    // stream had no samples, nothing was rendered
//	}
package errs

import "errors"

// Input and parsing errors.
var (
	// ErrMalformedLine indicates a line that could not be parsed as a finite
	// numeric value. Recoverable: readers skip and count such lines unless
	// strict parsing is enabled, in which case the first one aborts the run.
	ErrMalformedLine = errors.New("malformed input line")

	// ErrEmptyInput indicates the input contained no usable samples.
	// Always fatal; no statistics or histogram are produced.
	ErrEmptyInput = errors.New("input contains no samples")

	// ErrMissingInput indicates no input source was available: stdin is an
	// interactive terminal and no file argument was given.
	ErrMissingInput = errors.New("input must either be piped in or provided as a file")
)

// Configuration errors. These are reported before any input is consumed.
var (
	// ErrInvalidBinCount indicates a requested bin count below 1.
	ErrInvalidBinCount = errors.New("bin count must be at least 1")

	// ErrInvalidWidth indicates a requested display width below 1.
	ErrInvalidWidth = errors.New("display width must be at least 1")

	// ErrInvalidQuantile indicates a quantile outside the [0, 1] range.
	ErrInvalidQuantile = errors.New("quantile must be within [0, 1]")

	// ErrInvalidMaxLines indicates a line cap below 1.
	ErrInvalidMaxLines = errors.New("max lines must be at least 1")

	// ErrUnknownMode indicates an unrecognized histogram mode name.
	ErrUnknownMode = errors.New("unknown histogram mode")
)

// Terminal errors.
var (
	// ErrNotTerminal indicates the interactive viewer was requested but
	// stdout is not attached to a terminal.
	ErrNotTerminal = errors.New("interactive mode requires a terminal")
)
