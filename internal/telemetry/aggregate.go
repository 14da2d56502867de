package telemetry

// AggregateUsers totals GPU memory per user across all devices of a host.
// Users appear in first-seen order over the device/process iteration, so
// the display stays stable between refreshes as long as the driver reports
// processes in a stable order.
func AggregateUsers(devices []DeviceRecord, owners map[string]string) []UserUsage {
	totals := make(map[string]int64)
	var order []string

	for _, dev := range devices {
		for _, proc := range dev.Processes {
			user, ok := owners[proc.PID]
			if !ok || user == "" {
				user = UnknownOwner
			}
			if _, seen := totals[user]; !seen {
				order = append(order, user)
			}
			totals[user] += proc.MemoryMiB
		}
	}

	users := make([]UserUsage, 0, len(order))
	for _, user := range order {
		users = append(users, UserUsage{User: user, MemoryMiB: totals[user]})
	}
	return users
}

// CollectPIDs returns all process pids across devices, in document order,
// without duplicates. A process visible on two devices is looked up once.
func CollectPIDs(devices []DeviceRecord) []string {
	var pids []string
	seen := make(map[string]bool)
	for _, dev := range devices {
		for _, proc := range dev.Processes {
			if !seen[proc.PID] {
				seen[proc.PID] = true
				pids = append(pids, proc.PID)
			}
		}
	}
	return pids
}
