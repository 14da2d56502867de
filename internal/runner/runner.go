// Package runner executes diagnostic commands on fleet targets, either
// directly on the local machine or over SSH.
package runner

import (
	"context"
	"time"

	"github.com/gpu-tools/gpumon/internal/config"
	"github.com/gpu-tools/gpumon/internal/logger"
	"github.com/gpu-tools/gpumon/pkg/sshutil"
)

// Runner runs a shell command against a target and returns its stdout.
// Implementations never panic on unreachable or misbehaving targets; all
// failures surface as errors with a TIMEOUT, EXEC, or SSH code.
type Runner interface {
	Run(ctx context.Context, target config.Target, command string) ([]byte, error)
	Close()
}

// Executor is the production Runner. Remote targets go through a shared
// SSH connection pool; local targets use the login shell.
type Executor struct {
	pool       *sshutil.Pool
	sshUser    string
	cmdTimeout time.Duration
	log        logger.Logger
}

// New creates an Executor from config.
func New(cfg *config.Config, log logger.Logger) *Executor {
	if log == nil {
		log = logger.Noop()
	}
	return &Executor{
		pool:       sshutil.NewPool(cfg.SSHTimeout),
		sshUser:    cfg.SSHUser,
		cmdTimeout: cfg.CmdTimeout,
		log:        log,
	}
}

// Run executes the command on the target, bounded by the command timeout.
// On timeout no partial output is returned.
func (e *Executor) Run(ctx context.Context, target config.Target, command string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, e.cmdTimeout)
	defer cancel()

	var out []byte
	var err error
	if target.Local() {
		out, err = e.runLocal(ctx, command)
	} else {
		out, err = e.runRemote(ctx, target, command)
	}

	if err != nil {
		e.log.Debug("run %q on %s: %v", command, target, err)
		return nil, err
	}
	return out, nil
}

// Close releases pooled SSH connections.
func (e *Executor) Close() {
	e.pool.Close()
}

// dialOptions builds the per-target SSH options.
func (e *Executor) dialOptions(target config.Target) sshutil.Options {
	return sshutil.Options{
		Port: target.Port,
		User: e.sshUser,
	}
}
