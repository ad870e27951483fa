package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/arloliu/histo/hist"
	"github.com/arloliu/histo/internal/options"
)

// Document is the JSON envelope written by the JSON renderer: the report
// plus the configured title.
type Document struct {
	Title string `json:"title"`
	*hist.Report
}

// JSONRenderer writes a report as an indented JSON document. Width and
// glyph options are accepted for interface parity but have no effect.
type JSONRenderer struct {
	w   io.Writer
	cfg Config
}

// NewJSON creates a JSON renderer writing to w.
func NewJSON(w io.Writer, opts ...Option) (*JSONRenderer, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &JSONRenderer{w: w, cfg: cfg}, nil
}

// Render writes the report as one newline-terminated JSON document.
func (r *JSONRenderer) Render(report *hist.Report) error {
	doc := Document{
		Title:  r.cfg.Title,
		Report: report,
	}

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')

	if _, err := r.w.Write(data); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}
