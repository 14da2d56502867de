package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete gpumon configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// TargetFile is the path to the plain-text fleet file listing one
	// target per line.
	TargetFile string `yaml:"target_file" mapstructure:"target_file"`

	// SSHUser overrides the login user for remote targets.
	// Empty means the SSH config / current user decides.
	SSHUser string `yaml:"ssh_user" mapstructure:"ssh_user"`

	// SSHTimeout bounds connection establishment per target.
	SSHTimeout time.Duration `yaml:"ssh_timeout" mapstructure:"ssh_timeout"`

	// CmdTimeout bounds a single diagnostic command per target.
	CmdTimeout time.Duration `yaml:"cmd_timeout" mapstructure:"cmd_timeout"`

	// Interval is the dashboard refresh interval.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// Columns is how many dashboard columns hosts are distributed across.
	Columns int `yaml:"columns" mapstructure:"columns"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:    CurrentConfigVersion,
		TargetFile: "servers.txt",
		SSHTimeout: 5 * time.Second,
		CmdTimeout: 10 * time.Second,
		Interval:   1 * time.Second,
		Columns:    2,
	}
}
