package monitor

import "github.com/charmbracelet/lipgloss"

// Color palette using ANSI color codes for terminal compatibility.
// Used memory renders red, free memory green, user rollups yellow,
// matching the severity conventions of classic GPU dashboards.
const (
	ColorUsed      lipgloss.Color = "1" // Red
	ColorFree      lipgloss.Color = "2" // Green
	ColorUser      lipgloss.Color = "3" // Yellow
	ColorAccent    lipgloss.Color = "6" // Cyan
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// Styles for the dashboard grid.
var (
	HostHeaderStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	UsedValueStyle = lipgloss.NewStyle().
			Foreground(ColorUsed)

	FreeValueStyle = lipgloss.NewStyle().
			Foreground(ColorFree)

	UserValueStyle = lipgloss.NewStyle().
			Foreground(ColorUser)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1)

	StatusLineStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorUsed)
)
