package render

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/nsf/termbox-go"

	"github.com/arloliu/histo/format"
	"github.com/arloliu/histo/hist"
	"github.com/arloliu/histo/internal/options"
)

// Console is the interactive full-screen report viewer. It draws the bucket
// rows of a finished report, lets the user walk them with the arrow keys
// and highlights the selected bucket with a detail line. The report is
// static; the viewer never re-reads input.
type Console struct {
	report   *hist.Report
	cfg      Config
	selected int
}

// NewConsole creates an interactive viewer for report.
func NewConsole(report *hist.Report, opts ...Option) (*Console, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Console{report: report, cfg: cfg}, nil
}

// Run owns the terminal until the user quits with q, Esc, Ctrl-Q or Ctrl-C.
// Arrow keys (or j/k) move the selection, Home/End jump to the edges. The
// screen redraws on resize.
func (c *Console) Run() error {
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer termbox.Close()

	termboxChan := newTbChan()
	for {
		c.draw()
		event := <-termboxChan
		switch event.Type {
		case termbox.EventKey:
			switch event.Key {
			case termbox.KeyCtrlQ, termbox.KeyCtrlC, termbox.KeyEsc:
				return nil
			case termbox.KeyArrowUp:
				c.move(-1)
			case termbox.KeyArrowDown:
				c.move(1)
			case termbox.KeyHome:
				c.selected = 0
			case termbox.KeyEnd:
				c.selected = c.rowCount() - 1
			}
			switch event.Ch {
			case 'q':
				return nil
			case 'k':
				c.move(-1)
			case 'j':
				c.move(1)
			}
		case termbox.EventResize:
			// next draw picks up the new size
		}
	}
}

func newTbChan() chan termbox.Event {
	termboxChan := make(chan termbox.Event)
	go func() {
		for {
			termboxChan <- termbox.PollEvent()
		}
	}()

	return termboxChan
}

func (c *Console) rowCount() int {
	if c.report.Mode == format.ModeCategory {
		return len(c.report.Categories)
	}

	return len(c.report.Bins)
}

func (c *Console) move(delta int) {
	next := c.selected + delta
	if next >= 0 && next < c.rowCount() {
		c.selected = next
	}
}

type consoleRow struct {
	label string
	count int
}

func (c *Console) rows() []consoleRow {
	if c.report.Mode == format.ModeCategory {
		rows := make([]consoleRow, len(c.report.Categories))
		for i, cat := range c.report.Categories {
			rows[i] = consoleRow{label: cat.Label, count: cat.Count}
		}

		return rows
	}

	rows := make([]consoleRow, len(c.report.Bins))
	for i, bin := range c.report.Bins {
		closing := ")"
		if i == len(c.report.Bins)-1 {
			closing = "]"
		}
		rows[i] = consoleRow{
			label: fmt.Sprintf("[%s, %s%s", formatValue(bin.Lower), formatValue(bin.Upper), closing),
			count: bin.Count,
		}
	}

	return rows
}

func (c *Console) draw() {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	termWidth, termHeight := termbox.Size()

	headstr := fmt.Sprintf(" %s (%s samples)", c.cfg.Title, humanize.Comma(int64(c.report.Total())))
	printfTb(0, 0, termbox.ColorWhite, termbox.ColorBlack|termbox.AttrReverse|termbox.AttrBold, "%-*s", termWidth, headstr)

	line := 2
	if c.report.Mode == format.ModeNumeric {
		s := c.report.Summary
		printfTb(0, line, termbox.ColorWhite|termbox.AttrBold, termbox.ColorBlack,
			" min %s  max %s  mean %s  stddev %s",
			formatValue(s.Min), formatValue(s.Max), formatValue(s.Mean), formatValue(s.StdDev))
		line++

		if len(c.report.Quantiles) > 0 {
			parts := make([]string, 0, len(c.report.Quantiles))
			for _, q := range c.report.Quantiles {
				parts = append(parts, fmt.Sprintf("%s=%s", quantileLabel(q.Q), formatValue(q.Value)))
			}
			printTb(0, line, termbox.ColorWhite, termbox.ColorBlack, " "+strings.Join(parts, "  "))
			line++
		}
	}
	line++

	rows := c.rows()
	labelLen, countLen := 0, 0
	counts := make([]string, len(rows))
	for i, row := range rows {
		counts[i] = humanize.Comma(int64(row.count))
		labelLen = max(labelLen, len(row.label))
		countLen = max(countLen, len(counts[i]))
	}

	barWidth := termWidth - labelLen - countLen - 5
	if barWidth < 5 {
		barWidth = 5
	}

	// Keep the selection visible when there are more rows than screen.
	visible := termHeight - line - 3
	if visible < 1 {
		visible = 1
	}
	start := 0
	if c.selected >= visible {
		start = c.selected - visible + 1
	}

	maxCount := c.report.MaxCount()
	y := line
	for i := start; i < len(rows) && i-start < visible; i++ {
		fg, bg := termbox.ColorWhite, termbox.ColorBlack
		if i == c.selected {
			fg, bg = termbox.ColorBlack, termbox.ColorYellow
		}
		printfTb(0, y, fg, bg, " %-*s  %*s  %s",
			labelLen, rows[i].label,
			countLen, counts[i],
			Bar(rows[i].count, maxCount, barWidth, c.cfg.Glyph))
		y++
	}

	if c.selected < len(rows) {
		sel := rows[c.selected]
		printfTb(0, y+1, termbox.ColorWhite|termbox.AttrBold, termbox.ColorBlack,
			" %s  count %s (%.1f%% of %s)",
			sel.label, counts[c.selected],
			percent(sel.count, c.report.Total()),
			humanize.Comma(int64(c.report.Total())))
	}

	printTb(0, termHeight-1, termbox.ColorWhite, termbox.ColorBlack, " Up/Down select, Home/End jump, q or Ctrl-Q quit")

	termbox.Flush()
}

func printTb(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x++
	}
}

func printfTb(x, y int, fg, bg termbox.Attribute, format string, args ...any) {
	s := fmt.Sprintf(format, args...)
	printTb(x, y, fg, bg, s)
}
