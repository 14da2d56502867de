package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Surface is a bounded character grid that host blocks are painted onto.
// All writes are clipped to the grid: rows past the bottom are dropped,
// text past the right edge is truncated. Overflow is silent so a fleet
// larger than the terminal never panics, it just doesn't all fit.
type Surface struct {
	rows  int
	cols  int
	cells [][]cell
}

// cell is one character and the style it renders with.
// A nil style renders the rune as-is.
type cell struct {
	ch    rune
	style *lipgloss.Style
}

// NewSurface creates a surface of the given dimensions.
// Non-positive dimensions yield an empty surface that swallows all writes.
func NewSurface(rows, cols int) *Surface {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	cells := make([][]cell, rows)
	for r := range cells {
		row := make([]cell, cols)
		for c := range row {
			row[c] = cell{ch: ' '}
		}
		cells[r] = row
	}
	return &Surface{rows: rows, cols: cols, cells: cells}
}

// Rows returns the surface height.
func (s *Surface) Rows() int { return s.rows }

// Cols returns the surface width.
func (s *Surface) Cols() int { return s.cols }

// Put writes text at (row, col) with the given style. Writes outside the
// surface are no-ops; text crossing the right edge is truncated at the
// boundary.
func (s *Surface) Put(row, col int, text string, style *lipgloss.Style) {
	if row < 0 || row >= s.rows || col >= s.cols {
		return
	}
	for _, ch := range text {
		if col < 0 {
			col++
			continue
		}
		if col >= s.cols {
			break
		}
		s.cells[row][col] = cell{ch: ch, style: style}
		col++
	}
}

// HLine draws a horizontal run of ch starting at (row, col).
func (s *Surface) HLine(row, col, width int, ch rune, style *lipgloss.Style) {
	if width <= 0 {
		return
	}
	s.Put(row, col, strings.Repeat(string(ch), width), style)
}

// VLine draws a vertical run of ch in the given column over [startRow, endRow).
func (s *Surface) VLine(col, startRow, endRow int, ch rune, style *lipgloss.Style) {
	for row := startRow; row < endRow; row++ {
		s.Put(row, col, string(ch), style)
	}
}

// Line returns the plain text of one row, without styling, right-trimmed.
// Rows outside the surface come back empty. Intended for tests.
func (s *Surface) Line(row int) string {
	if row < 0 || row >= s.rows {
		return ""
	}
	var b strings.Builder
	for _, c := range s.cells[row] {
		b.WriteRune(c.ch)
	}
	return strings.TrimRight(b.String(), " ")
}

// Render composes the full frame. Consecutive cells sharing a style are
// rendered in one styled run to keep escape-sequence overhead down.
func (s *Surface) Render() string {
	var b strings.Builder
	for r := 0; r < s.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		s.renderRow(&b, s.cells[r])
	}
	return b.String()
}

func (s *Surface) renderRow(b *strings.Builder, row []cell) {
	// Trailing unstyled blanks carry no information
	end := len(row)
	for end > 0 && row[end-1].ch == ' ' && row[end-1].style == nil {
		end--
	}

	var run strings.Builder
	var runStyle *lipgloss.Style
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runStyle != nil {
			b.WriteString(runStyle.Render(run.String()))
		} else {
			b.WriteString(run.String())
		}
		run.Reset()
	}

	for i := 0; i < end; i++ {
		if row[i].style != runStyle {
			flush()
			runStyle = row[i].style
		}
		run.WriteRune(row[i].ch)
	}
	flush()
}
