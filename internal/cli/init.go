package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/gpu-tools/gpumon/internal/config"
	"github.com/gpu-tools/gpumon/internal/errors"
	"gopkg.in/yaml.v3"
)

// initConfig mirrors config.Config with durations as strings, so the
// generated file reads "5s" instead of nanosecond integers.
type initConfig struct {
	Version    int    `yaml:"version"`
	TargetFile string `yaml:"target_file"`
	SSHUser    string `yaml:"ssh_user,omitempty"`
	SSHTimeout string `yaml:"ssh_timeout"`
	CmdTimeout string `yaml:"cmd_timeout"`
	Interval   string `yaml:"interval"`
	Columns    int    `yaml:"columns"`
}

const exampleTargets = `# gpumon fleet file: one target per line.
# Lines starting with '#' and blank lines are ignored.
# Append -p<port> for non-standard SSH ports.
#
#   10.0.0.5
#   gpu-node-02 -p8022
localhost
`

// initCommand creates .gpumon.yaml and an example fleet file.
func initCommand(force bool) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !force {
		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	defaults := config.DefaultConfig()
	targetFile := defaults.TargetFile
	sshUser := ""

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Fleet file").
				Description("Plain text file listing one target per line").
				Placeholder(defaults.TargetFile).
				Value(&targetFile).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("fleet file path is required")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("SSH user (optional)").
				Description("Login user for remote targets; empty uses your SSH config").
				Placeholder("leave empty to skip").
				Value(&sshUser),
		),
	)
	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility, or edit .gpumon.yaml by hand")
	}

	out := initConfig{
		Version:    defaults.Version,
		TargetFile: targetFile,
		SSHUser:    strings.TrimSpace(sshUser),
		SSHTimeout: defaults.SSHTimeout.String(),
		CmdTimeout: defaults.CmdTimeout.String(),
		Interval:   defaults.Interval.String(),
		Columns:    defaults.Columns,
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	header := `# gpumon configuration
# Run 'gpumon watch' to start the dashboard

`
	if err := os.WriteFile(configPath, []byte(header+string(data)), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}
	fmt.Printf("Created %s\n", configPath)

	// Seed an example fleet file, but never clobber an existing one
	if _, err := os.Stat(targetFile); os.IsNotExist(err) {
		if err := os.WriteFile(targetFile, []byte(exampleTargets), 0644); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Failed to write fleet file: %s", targetFile),
				"Check directory permissions")
		}
		fmt.Printf("Created %s\n", targetFile)
	}

	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  edit %s       - list your fleet\n", targetFile)
	fmt.Println("  gpumon snapshot    - poll the fleet once")
	fmt.Println("  gpumon watch       - start the live dashboard")

	return nil
}
