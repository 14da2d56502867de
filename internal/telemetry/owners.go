package telemetry

import (
	"context"
	"strings"

	"github.com/gpu-tools/gpumon/internal/config"
	"github.com/gpu-tools/gpumon/internal/logger"
	"github.com/gpu-tools/gpumon/internal/runner"
)

// ResolveOwners maps every pid to its owning user via one batched
// `ps -o user=` call on the target. The result always contains an entry
// for every requested pid.
//
// `ps` prints one user per line in argument order, so lines are zipped
// with pids positionally. The map is pre-seeded with UnknownOwner and only
// min(len(lines), len(pids)) entries are overwritten: a reply with the
// wrong cardinality can leave owners unknown but never misattribute them.
//
// Lookup failures degrade to all-unknown; they never fail the poll.
func ResolveOwners(ctx context.Context, run runner.Runner, target config.Target, pids []string, log logger.Logger) map[string]string {
	if log == nil {
		log = logger.Noop()
	}

	owners := make(map[string]string, len(pids))
	if len(pids) == 0 {
		return owners
	}
	for _, pid := range pids {
		owners[pid] = UnknownOwner
	}

	out, err := run.Run(ctx, target, OwnersCommand(pids))
	if err != nil {
		// Exited pids make ps return non-zero; whatever lines it did
		// print are unusable without knowing which pids they match.
		log.Warn("owner lookup on %s failed: %v", target, err)
		return owners
	}

	lines := splitNonEmptyLines(string(out))
	if len(lines) != len(pids) {
		log.Warn("owner lookup on %s returned %d users for %d pids", target, len(lines), len(pids))
	}

	n := len(lines)
	if n > len(pids) {
		n = len(pids)
	}
	for i := 0; i < n; i++ {
		if user := strings.TrimSpace(lines[i]); user != "" {
			owners[pids[i]] = user
		}
	}

	return owners
}

// splitNonEmptyLines splits output into trimmed, non-empty lines.
func splitNonEmptyLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
