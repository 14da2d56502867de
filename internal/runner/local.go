package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/gpu-tools/gpumon/internal/errors"
)

// runLocal runs the command through the login shell on this machine.
// The shell interprets the command, so pipes and quoting behave as they
// would at a prompt.
func (e *Executor) runLocal(ctx context.Context, command string) ([]byte, error) {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}

	cmd := exec.CommandContext(ctx, shell, "-c", command)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return nil, errors.WrapWithCode(ctx.Err(), errors.ErrTimeout,
			"Command timed out on localhost",
			"Raise cmd_timeout if the machine is just slow")
	}
	if runErr != nil {
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			return nil, errors.WrapWithCode(
				fmt.Errorf("exit status %d: %s", exitErr.ExitCode(), strings.TrimSpace(stderr.String())),
				errors.ErrExec,
				"Command failed on localhost",
				"Run it by hand to see what's wrong: "+command)
		}
		return nil, errors.WrapWithCode(runErr, errors.ErrExec,
			"Couldn't run the command locally",
			"Make sure the command exists and is executable.")
	}

	return stdout.Bytes(), nil
}
