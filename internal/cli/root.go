// Package cli wires the gpumon commands together.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile is the --config override, empty for the default search order.
var cfgFile string

// rootCmd is the base command all subcommands hang off.
var rootCmd = &cobra.Command{
	Use:   "gpumon",
	Short: "GPU fleet telemetry dashboard",
	Long: `gpumon polls a fleet of machines for NVIDIA GPU telemetry and shows
per-device memory and per-user usage in a live terminal dashboard.

Targets are listed one per line in a plain text file:

  10.0.0.5
  10.0.0.6 -p8022
  localhost

Local aliases (".", "localhost", "127.0.0.1") are polled directly;
everything else is polled over SSH using your ~/.ssh/config settings.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: .gpumon.yaml, then ~/.config/gpumon/config.yaml)")
}
