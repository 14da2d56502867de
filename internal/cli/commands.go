package cli

import (
	"time"

	"github.com/spf13/cobra"
)

// fleetFlags are the knobs shared by watch and snapshot. Zero values mean
// "not set on the command line"; the config file (or its defaults) wins.
type fleetFlags struct {
	targets    string
	sshUser    string
	interval   time.Duration
	sshTimeout time.Duration
	cmdTimeout time.Duration
	columns    int
	insecure   bool
}

var (
	watchFlags    fleetFlags
	snapshotFlags fleetFlags
	initForce     bool
)

// watchCmd starts the live TUI dashboard.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live GPU telemetry dashboard for the fleet",
	Long: `Start an interactive dashboard that polls every target on an interval
and shows per-GPU memory plus a per-user rollup for each host.

Hosts that can't be reached stay in the rotation and render header-only,
so a flapping machine is visible rather than silently missing.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  r           Force refresh

Examples:
  gpumon watch
  gpumon watch --targets fleet.txt --interval 2s
  gpumon watch --ssh-user ops --columns 3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand(cmd, &watchFlags)
	},
}

// snapshotCmd prints one poll cycle and exits.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Poll the fleet once and print a plain report",
	Long: `Run a single poll cycle and print the results to stdout.

Useful for cron jobs, CI capture, or a quick look without the dashboard.

Examples:
  gpumon snapshot
  gpumon snapshot --targets fleet.txt
  gpumon snapshot | tee gpu-report.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return snapshotCommand(cmd, &snapshotFlags)
	},
}

// initCmd creates the config and an example target file.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a gpumon configuration",
	Long: `Initialize a new gpumon configuration file.

Walks through the fleet file location and SSH settings with interactive
prompts, then writes .gpumon.yaml and an example target file.

Examples:
  gpumon init
  gpumon init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce)
	},
}

// registerFleetFlags attaches the shared polling flags to a command.
func registerFleetFlags(cmd *cobra.Command, ff *fleetFlags) {
	cmd.Flags().StringVar(&ff.targets, "targets", "", "fleet file, one '<address> [-p<port>]' per line")
	cmd.Flags().StringVar(&ff.sshUser, "ssh-user", "", "login user for remote targets")
	cmd.Flags().DurationVar(&ff.interval, "interval", 0, "refresh interval (default 1s)")
	cmd.Flags().DurationVar(&ff.sshTimeout, "ssh-timeout", 0, "SSH connect timeout (default 5s)")
	cmd.Flags().DurationVar(&ff.cmdTimeout, "cmd-timeout", 0, "per-command timeout (default 10s)")
	cmd.Flags().IntVar(&ff.columns, "columns", 0, "dashboard columns (default 2)")
	cmd.Flags().BoolVar(&ff.insecure, "insecure-skip-hostkey", false, "skip host key verification (CI/automation only)")
}

func init() {
	registerFleetFlags(watchCmd, &watchFlags)
	registerFleetFlags(snapshotCmd, &snapshotFlags)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing config without asking")

	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(initCmd)
}
