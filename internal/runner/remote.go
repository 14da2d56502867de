package runner

import (
	"context"
	"fmt"
	"strings"

	"github.com/gpu-tools/gpumon/internal/config"
	"github.com/gpu-tools/gpumon/internal/errors"
)

// execResult carries the outcome of a remote command across the goroutine
// boundary.
type execResult struct {
	stdout []byte
	stderr []byte
	exit   int
	err    error
}

// runRemote runs the command over a pooled SSH connection.
// The SSH session API is not context-aware, so the command runs in a
// goroutine and the context deadline is enforced with a select. On timeout
// the connection is dropped from the pool; its session may still be
// executing and can't be reused safely.
func (e *Executor) runRemote(ctx context.Context, target config.Target, command string) ([]byte, error) {
	opts := e.dialOptions(target)

	resultCh := make(chan execResult, 1)
	go func() {
		client, err := e.pool.Get(target.Host, opts)
		if err != nil {
			resultCh <- execResult{err: err}
			return
		}
		stdout, stderr, exit, err := client.Exec(command)
		resultCh <- execResult{stdout: stdout, stderr: stderr, exit: exit, err: err}
	}()

	select {
	case <-ctx.Done():
		e.pool.Drop(target.Host, opts)
		return nil, errors.WrapWithCode(ctx.Err(), errors.ErrTimeout,
			fmt.Sprintf("Command timed out on %s", target),
			"Raise cmd_timeout if the host is just slow, or check its load")

	case res := <-resultCh:
		if res.err != nil {
			return nil, res.err
		}
		if res.exit != 0 {
			return nil, errors.WrapWithCode(
				fmt.Errorf("exit status %d: %s", res.exit, strings.TrimSpace(string(res.stderr))),
				errors.ErrExec,
				fmt.Sprintf("Command failed on %s", target),
				"Run it by hand over ssh to see what's wrong: "+command)
		}
		return res.stdout, nil
	}
}
