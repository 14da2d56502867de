package monitor

import (
	"time"

	"github.com/gpu-tools/gpumon/internal/config"
	"github.com/gpu-tools/gpumon/internal/telemetry"
)

// HostReport is the outcome of polling one target for one cycle.
type HostReport struct {
	Target config.Target

	// Devices in driver order. Empty when the host failed or has no GPUs.
	Devices []telemetry.DeviceRecord

	// Users is the per-user memory rollup, first-seen order.
	Users []telemetry.UserUsage

	// Err is the fetch or parse failure for this cycle, nil on success.
	// A failed host still gets a report so the dashboard can show it.
	Err error

	CollectedAt time.Time
}

// Failed reports whether this cycle produced usable telemetry.
func (r HostReport) Failed() bool {
	return r.Err != nil
}
