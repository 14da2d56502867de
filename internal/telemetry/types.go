// Package telemetry turns raw nvidia-smi output into per-device and
// per-user memory usage records.
package telemetry

// UnknownOwner is the sentinel user for processes whose owner could not
// be resolved.
const UnknownOwner = "unknown"

// DeviceRecord is the telemetry for one GPU on one host.
type DeviceRecord struct {
	// Index is the device's minor number as reported by the driver.
	Index string

	// Name is the product name, e.g. "NVIDIA A100-SXM4-40GB".
	Name string

	// Framebuffer memory in MiB.
	MemoryTotal int64
	MemoryUsed  int64
	MemoryFree  int64

	// Processes holds the compute processes on this device, in the order
	// the driver reported them.
	Processes []ProcessUsage
}

// ProcessUsage is one process's memory footprint on a device.
type ProcessUsage struct {
	PID       string
	MemoryMiB int64
}

// UserUsage is a user's total GPU memory across all devices of a host.
type UserUsage struct {
	User      string
	MemoryMiB int64
}
