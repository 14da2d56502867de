package telemetry

import (
	"fmt"
	"strings"
	"time"
)

// QueryCommand builds the diagnostic command for one host.
//
// Remote invocations are wrapped in coreutils `timeout` so a wedged driver
// can't hold the SSH session open past the command budget. Locally the
// process is killed by the runner's context instead.
func QueryCommand(local bool, cmdTimeout time.Duration) string {
	const query = "nvidia-smi -q -x"
	if local {
		return query
	}
	secs := int(cmdTimeout.Seconds())
	if secs < 1 {
		secs = 1
	}
	return fmt.Sprintf("timeout %d %s", secs, query)
}

// OwnersCommand builds the batched owner lookup for a set of pids.
// Returns the empty string when there are no pids; callers must not run
// an empty lookup.
func OwnersCommand(pids []string) string {
	if len(pids) == 0 {
		return ""
	}
	return "ps -o user= -p " + strings.Join(pids, ",")
}
