package monitor

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the Bubble Tea model for the fleet dashboard.
type Model struct {
	collector *Collector
	reports   []HostReport

	interval time.Duration
	columns  int

	width  int
	height int

	spin       spinner.Model
	collecting bool
	haveData   bool
	lastUpdate time.Time
	quitting   bool
}

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// reportsMsg carries the results of one poll cycle.
type reportsMsg struct {
	reports []HostReport
	time    time.Time
}

// NewModel creates a dashboard model over the collector's fleet.
func NewModel(collector *Collector, interval time.Duration, columns int) Model {
	if columns < 1 {
		columns = 1
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorAccent)

	return Model{
		collector: collector,
		interval:  interval,
		columns:   columns,
		spin:      sp,
		// Init fires a collection immediately
		collecting: true,
	}
}

// Init starts the tick timer and triggers the first poll cycle.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.collectCmd(),
		m.tickCmd(),
		m.spin.Tick,
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		cmds := []tea.Cmd{m.tickCmd()}
		// Don't stack cycles if the previous one is still running;
		// a slow fleet just refreshes at its own pace.
		if !m.collecting {
			m.collecting = true
			cmds = append(cmds, m.collectCmd())
		}
		return m, tea.Batch(cmds...)

	case reportsMsg:
		m.reports = msg.reports
		m.lastUpdate = msg.time
		m.collecting = false
		m.haveData = true

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// collectCmd returns a command that runs one poll cycle.
// The cycle is bounded so a fleet of wedged hosts can't run past the
// point where the next results would be stale anyway.
func (m Model) collectCmd() tea.Cmd {
	collector := m.collector
	budget := collector.cmdTimeout * time.Duration(2*len(collector.targets)+1)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), budget)
		defer cancel()
		return reportsMsg{
			reports: collector.CollectAll(ctx),
			time:    time.Now(),
		}
	}
}

// FleetSize returns how many targets are being polled.
func (m Model) FleetSize() int {
	return len(m.collector.targets)
}

// FailedHosts returns how many hosts failed in the last cycle.
func (m Model) FailedHosts() int {
	n := 0
	for _, r := range m.reports {
		if r.Failed() {
			n++
		}
	}
	return n
}

// SecondsSinceUpdate returns how many seconds have passed since the last update.
func (m Model) SecondsSinceUpdate() int {
	if m.lastUpdate.IsZero() {
		return 0
	}
	return int(time.Since(m.lastUpdate).Seconds())
}
