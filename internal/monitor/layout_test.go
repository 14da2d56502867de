package monitor

import (
	"errors"
	"strings"
	"testing"

	"github.com/gpu-tools/gpumon/internal/config"
	"github.com/gpu-tools/gpumon/internal/telemetry"
	"github.com/stretchr/testify/assert"
)

func oneGPUReport() HostReport {
	return HostReport{
		Target: config.Target{Host: "10.0.0.5", Port: "22"},
		Devices: []telemetry.DeviceRecord{
			{
				Index:       "0",
				Name:        "NVIDIA A100-SXM4-40GB",
				MemoryTotal: 40960,
				MemoryUsed:  2048,
				MemoryFree:  38912,
				Processes:   []telemetry.ProcessUsage{{PID: "1234", MemoryMiB: 2048}},
			},
		},
		Users: []telemetry.UserUsage{{User: "alice", MemoryMiB: 2048}},
	}
}

func TestRenderHostBlock_FullBlock(t *testing.T) {
	s := NewSurface(12, 60)

	next := RenderHostBlock(s, oneGPUReport(), 0, 0, 40)

	assert.Equal(t, "Server: 10.0.0.5", s.Line(0))
	assert.Equal(t, "GPU 0 - NVIDIA A100-SXM4-40GB", s.Line(1))
	assert.Equal(t, "  Memory Total: 40960 MiB", s.Line(2))
	assert.Equal(t, "  Memory Used: 2048 MiB", s.Line(3))
	assert.Equal(t, "  Memory Free: 38912 MiB", s.Line(4))
	assert.Equal(t, "  User: alice, Memory Used: 2048 MiB", s.Line(5))
	assert.Equal(t, "", s.Line(6))

	// Half-width dash rule, then the fixed gap
	assert.Equal(t, strings.Repeat("-", 39), s.Line(7))
	assert.Equal(t, 9, next)
}

func TestRenderHostBlock_FailedHostRendersHeaderOnly(t *testing.T) {
	s := NewSurface(8, 40)
	report := HostReport{
		Target: config.Target{Host: "10.0.0.9", Port: "22"},
		Err:    errors.New("connection refused"),
	}

	RenderHostBlock(s, report, 0, 0, 30)

	assert.Equal(t, "Server: 10.0.0.9", s.Line(0))
	assert.Equal(t, "", s.Line(1))
	// Rule still drawn so the column keeps its rhythm
	assert.Equal(t, strings.Repeat("-", 29), s.Line(2))
}

func TestRenderHostBlock_ClipsToColumnWidth(t *testing.T) {
	s := NewSurface(12, 80)

	// Block confined to a 20-wide column; nothing may cross column 20
	RenderHostBlock(s, oneGPUReport(), 0, 0, 20)

	for row := 0; row < 12; row++ {
		assert.LessOrEqual(t, len(s.Line(row)), 20, "row %d crossed the column edge", row)
	}
	assert.Equal(t, "GPU 0 - NVIDIA A100-", s.Line(1))
}

func TestRenderHostBlock_OverflowPastBottomIsSilent(t *testing.T) {
	s := NewSurface(3, 40)

	// Only three rows fit; the rest of the block is dropped without panic
	next := RenderHostBlock(s, oneGPUReport(), 0, 0, 30)

	assert.Equal(t, "Server: 10.0.0.5", s.Line(0))
	assert.Greater(t, next, 3)
}

func TestRenderHostBlock_SecondColumnOffset(t *testing.T) {
	s := NewSurface(10, 80)

	RenderHostBlock(s, oneGPUReport(), 0, 41, 39)

	line := s.Line(0)
	assert.Contains(t, line, "Server: 10.0.0.5")
	// Column region starts past the midpoint separator cell
	assert.Equal(t, "Server:", line[41:48])
}

func TestDrawColumnSeparators(t *testing.T) {
	s := NewSurface(4, 80)
	DrawColumnSeparators(s, 2, 40)

	for row := 0; row < 4; row++ {
		line := s.Line(row)
		assert.Equal(t, byte('|'), line[40], "row %d", row)
	}
}

func TestDrawColumnSeparators_SingleColumnHasNone(t *testing.T) {
	s := NewSurface(2, 40)
	DrawColumnSeparators(s, 1, 40)

	assert.Equal(t, "", s.Line(0))
}
