package monitor

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// rowGap is the fixed row advance after each host block's dash rule.
// The gap is constant regardless of how much of the block actually fit,
// which keeps column cursors predictable when the terminal is cramped.
const rowGap = 2

// lineWriter appends styled segments to one surface row, clipping at the
// column's right edge rather than the surface edge so long values never
// bleed into the neighbouring column.
type lineWriter struct {
	s     *Surface
	row   int
	col   int
	limit int
}

func (w *lineWriter) write(text string, style *lipgloss.Style) {
	if w.col >= w.limit {
		return
	}
	if remaining := w.limit - w.col; len(text) > remaining {
		text = truncateRunes(text, remaining)
	}
	w.s.Put(w.row, w.col, text, style)
	w.col += len([]rune(text))
}

func truncateRunes(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}

// RenderHostBlock paints one host's report into a column region starting
// at (row, col) and width characters wide. It returns the row the next
// block in this column should start at.
//
// A failed host renders its header only; the operator sees the host is
// in the rotation without the dashboard guessing at stale numbers.
func RenderHostBlock(s *Surface, report HostReport, row, col, width int) int {
	line := func(r int) *lineWriter {
		return &lineWriter{s: s, row: r, col: col, limit: col + width}
	}

	w := line(row)
	w.write("Server: ", &HostHeaderStyle)
	w.write(report.Target.String(), &HostHeaderStyle)
	row++

	if !report.Failed() {
		for _, dev := range report.Devices {
			w = line(row)
			w.write(fmt.Sprintf("GPU %s - %s", dev.Index, dev.Name), &LabelStyle)
			row++

			w = line(row)
			w.write("  Memory Total: ", &LabelStyle)
			w.write(formatMiB(dev.MemoryTotal), &LabelStyle)
			row++

			w = line(row)
			w.write("  Memory Used: ", &LabelStyle)
			w.write(formatMiB(dev.MemoryUsed), &UsedValueStyle)
			row++

			w = line(row)
			w.write("  Memory Free: ", &LabelStyle)
			w.write(formatMiB(dev.MemoryFree), &FreeValueStyle)
			row++
		}

		for _, user := range report.Users {
			w = line(row)
			w.write("  User: ", &LabelStyle)
			w.write(user.User, &UserValueStyle)
			w.write(", Memory Used: ", &LabelStyle)
			w.write(formatMiB(user.MemoryMiB), &UserValueStyle)
			row++
		}
	}

	// Blank line, then a half-width rule separating this host from the
	// next one down the column.
	row++
	if width > 1 {
		s.HLine(row, col, width-1, '-', &SeparatorStyle)
	}

	return row + rowGap
}

// DrawColumnSeparators paints a vertical rule at every interior column
// boundary, over the surface's full height.
func DrawColumnSeparators(s *Surface, columns, colWidth int) {
	for k := 1; k < columns; k++ {
		s.VLine(k*colWidth, 0, s.Rows(), '|', &SeparatorStyle)
	}
}

func formatMiB(n int64) string {
	return fmt.Sprintf("%d MiB", n)
}
