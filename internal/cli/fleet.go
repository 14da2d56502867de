package cli

import (
	"os"

	"github.com/gpu-tools/gpumon/internal/config"
	"github.com/gpu-tools/gpumon/internal/errors"
	"github.com/gpu-tools/gpumon/internal/logger"
	"github.com/gpu-tools/gpumon/pkg/sshutil"
)

// resolveFleet loads config, applies command line overrides, and reads the
// target file. Flags beat config beats defaults.
func resolveFleet(ff *fleetFlags) (*config.Config, []config.Target, error) {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	if ff.targets != "" {
		cfg.TargetFile = ff.targets
	}
	if ff.sshUser != "" {
		cfg.SSHUser = ff.sshUser
	}
	if ff.interval > 0 {
		cfg.Interval = ff.interval
	}
	if ff.sshTimeout > 0 {
		cfg.SSHTimeout = ff.sshTimeout
	}
	if ff.cmdTimeout > 0 {
		cfg.CmdTimeout = ff.cmdTimeout
	}
	if ff.columns > 0 {
		cfg.Columns = ff.columns
	}

	if ff.insecure {
		sshutil.StrictHostKeyChecking = false
	}

	targets, err := config.LoadTargets(cfg.TargetFile)
	if err != nil {
		return nil, nil, err
	}
	if len(targets) == 0 {
		return nil, nil, errors.New(errors.ErrConfig,
			"Target file is empty: "+cfg.TargetFile,
			"Add at least one host, e.g. '10.0.0.5' or 'localhost'")
	}

	return cfg, targets, nil
}

// pollLogger picks the logger for poll loops. Inside the alt-screen TUI a
// stderr logger would paint over the dashboard, so logging stays off
// unless GPUMON_DEBUG asks for it (redirect stderr to a file in that case).
func pollLogger(prefix string) logger.Logger {
	if os.Getenv("GPUMON_DEBUG") != "" {
		return logger.NewEnvLogger(prefix)
	}
	return logger.Noop()
}
