package monitor

import (
	"context"
	"time"

	"github.com/gpu-tools/gpumon/internal/config"
	"github.com/gpu-tools/gpumon/internal/logger"
	"github.com/gpu-tools/gpumon/internal/runner"
	"github.com/gpu-tools/gpumon/internal/telemetry"
)

// Collector polls the fleet for GPU telemetry.
type Collector struct {
	targets    []config.Target
	run        runner.Runner
	cmdTimeout time.Duration
	log        logger.Logger
}

// NewCollector creates a collector over the given targets.
func NewCollector(targets []config.Target, run runner.Runner, cmdTimeout time.Duration, log logger.Logger) *Collector {
	if log == nil {
		log = logger.Noop()
	}
	return &Collector{
		targets:    targets,
		run:        run,
		cmdTimeout: cmdTimeout,
		log:        log,
	}
}

// Targets returns the fleet in file order.
func (c *Collector) Targets() []config.Target {
	return c.targets
}

// CollectAll runs one poll cycle and returns a report per target, in file
// order. Hosts are polled one at a time: a refresh is a bounded burst of
// at most two commands per host, and the serialized cycle keeps load on
// the poller's machine and network flat. A host failure never aborts the
// cycle.
func (c *Collector) CollectAll(ctx context.Context) []HostReport {
	reports := make([]HostReport, 0, len(c.targets))
	for _, target := range c.targets {
		reports = append(reports, c.collectHost(ctx, target))
	}
	return reports
}

// collectHost fetches, parses, and attributes telemetry for one target.
func (c *Collector) collectHost(ctx context.Context, target config.Target) HostReport {
	report := HostReport{Target: target, CollectedAt: time.Now()}

	raw, err := c.run.Run(ctx, target, telemetry.QueryCommand(target.Local(), c.cmdTimeout))
	if err != nil {
		c.log.Warn("poll %s failed: %v", target, err)
		report.Err = err
		return report
	}

	devices, err := telemetry.Parse(raw)
	if err != nil {
		c.log.Warn("parse %s failed: %v", target, err)
		report.Err = err
		return report
	}
	report.Devices = devices

	pids := telemetry.CollectPIDs(devices)
	owners := telemetry.ResolveOwners(ctx, c.run, target, pids, c.log)
	report.Users = telemetry.AggregateUsers(devices, owners)

	return report
}

// Close releases the underlying runner's connections.
func (c *Collector) Close() {
	c.run.Close()
}
