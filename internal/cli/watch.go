package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gpu-tools/gpumon/internal/monitor"
	"github.com/gpu-tools/gpumon/internal/runner"
	"github.com/gpu-tools/gpumon/pkg/sshutil"
	"github.com/spf13/cobra"
)

// watchCommand starts the TUI dashboard over the configured fleet.
func watchCommand(_ *cobra.Command, ff *fleetFlags) error {
	cfg, targets, err := resolveFleet(ff)
	if err != nil {
		return err
	}

	log := pollLogger("[watch]")
	exec := runner.New(cfg, log)
	collector := monitor.NewCollector(targets, exec, cfg.CmdTimeout, log)

	model := monitor.NewModel(collector, cfg.Interval, cfg.Columns)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()

	// Graceful shutdown: close pooled SSH connections and the agent socket
	collector.Close()
	sshutil.CloseAgent()

	return err
}
