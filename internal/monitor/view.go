package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gpu-tools/gpumon/internal/util"
)

// Reserved rows above and below the grid.
const (
	headerHeight = 1
	footerHeight = 1
)

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		// No WindowSizeMsg yet
		return "starting..."
	}

	gridHeight := m.height - headerHeight - footerHeight
	if gridHeight < 0 {
		gridHeight = 0
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderGrid(gridHeight),
		m.renderFooter(),
	)
}

// renderHeader builds the one-line title bar.
func (m Model) renderHeader() string {
	title := TitleStyle.Render("gpumon")

	status := fmt.Sprintf("%d %s", m.FleetSize(),
		util.Pluralize(m.FleetSize(), "host", "hosts"))
	if m.haveData {
		status += fmt.Sprintf(" • updated %ds ago", m.SecondsSinceUpdate())
	}

	parts := []string{title, StatusLineStyle.Render(status)}
	if down := m.FailedHosts(); down > 0 {
		parts = append(parts, ErrorStyle.Render(fmt.Sprintf("%d down", down)))
	}
	if m.collecting {
		parts = append(parts, m.spin.View())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderGrid paints the host blocks into a fresh surface sized to the
// terminal. Hosts alternate across columns by index, each column keeping
// its own row cursor, so column heights grow independently.
func (m Model) renderGrid(height int) string {
	s := NewSurface(height, m.width)

	if !m.haveData {
		s.Put(1, 1, "Polling fleet...", &SeparatorStyle)
		return s.Render()
	}

	columns := m.columns
	colWidth := m.width / columns
	if colWidth < 2 {
		columns = 1
		colWidth = m.width
	}

	cursors := make([]int, columns)
	for i, report := range m.reports {
		k := i % columns
		x := k * colWidth
		if k > 0 {
			// Leave the boundary cell to the separator
			x++
		}
		cursors[k] = RenderHostBlock(s, report, cursors[k], x, colWidth-1)
	}

	DrawColumnSeparators(s, columns, colWidth)

	return s.Render()
}

// renderFooter builds the one-line key hint bar.
func (m Model) renderFooter() string {
	hints := []string{
		"q quit",
		"r refresh",
	}
	return FooterStyle.Render(strings.Join(hints, " • "))
}
