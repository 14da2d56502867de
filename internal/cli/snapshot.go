package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gpu-tools/gpumon/internal/logger"
	"github.com/gpu-tools/gpumon/internal/monitor"
	"github.com/gpu-tools/gpumon/internal/runner"
	"github.com/gpu-tools/gpumon/pkg/sshutil"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// snapshotCommand polls the fleet once and prints a plain report.
func snapshotCommand(_ *cobra.Command, ff *fleetFlags) error {
	cfg, targets, err := resolveFleet(ff)
	if err != nil {
		return err
	}

	// No alt screen here, so warnings can go straight to stderr
	log := logger.Default()
	exec := runner.New(cfg, log)
	collector := monitor.NewCollector(targets, exec, cfg.CmdTimeout, log)
	defer func() {
		collector.Close()
		sshutil.CloseAgent()
	}()

	budget := cfg.CmdTimeout * time.Duration(2*len(targets)+1)
	ctx, cancel := context.WithTimeout(context.Background(), budget)
	defer cancel()

	printReports(collector.CollectAll(ctx))
	return nil
}

// printReports writes one host block per report, single column.
// Colors follow the dashboard: used red, free green, users yellow.
// termenv downgrades or strips them when stdout isn't a color terminal.
func printReports(reports []monitor.HostReport) {
	out := termenv.NewOutput(os.Stdout)

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	rule := strings.Repeat("-", width/2-1)

	paint := func(s, color string) string {
		return out.String(s).Foreground(out.Color(color)).String()
	}

	for _, rep := range reports {
		fmt.Fprintln(out, out.String("Server: "+rep.Target.String()).Bold().String())

		if rep.Failed() {
			fmt.Fprintln(out, "  "+paint(firstLine(rep.Err.Error()), "1"))
		} else {
			for _, dev := range rep.Devices {
				fmt.Fprintf(out, "GPU %s - %s\n", dev.Index, dev.Name)
				fmt.Fprintf(out, "  Memory Total: %d MiB\n", dev.MemoryTotal)
				fmt.Fprintf(out, "  Memory Used: %s\n", paint(fmt.Sprintf("%d MiB", dev.MemoryUsed), "1"))
				fmt.Fprintf(out, "  Memory Free: %s\n", paint(fmt.Sprintf("%d MiB", dev.MemoryFree), "2"))
			}
			for _, user := range rep.Users {
				fmt.Fprintf(out, "  User: %s, Memory Used: %s\n",
					paint(user.User, "3"),
					paint(fmt.Sprintf("%d MiB", user.MemoryMiB), "3"))
			}
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, rule)
	}
}

// firstLine trims a multi-line error down to its headline.
func firstLine(s string) string {
	s = strings.TrimPrefix(s, "✗ ")
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
