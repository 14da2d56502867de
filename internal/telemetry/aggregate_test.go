package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateUsers_FirstSeenOrder(t *testing.T) {
	devices := []DeviceRecord{
		{
			Index: "0",
			Processes: []ProcessUsage{
				{PID: "1", MemoryMiB: 100},
				{PID: "2", MemoryMiB: 50},
			},
		},
		{
			Index: "1",
			Processes: []ProcessUsage{
				{PID: "3", MemoryMiB: 30},
			},
		},
	}
	owners := map[string]string{"1": "alice", "2": "bob", "3": "alice"}

	users := AggregateUsers(devices, owners)

	// alice seen first, stays first even though bob was added in between
	require.Len(t, users, 2)
	assert.Equal(t, UserUsage{User: "alice", MemoryMiB: 130}, users[0])
	assert.Equal(t, UserUsage{User: "bob", MemoryMiB: 50}, users[1])
}

func TestAggregateUsers_MissingOwnerFallsBackToUnknown(t *testing.T) {
	devices := []DeviceRecord{
		{Processes: []ProcessUsage{
			{PID: "1", MemoryMiB: 10},
			{PID: "2", MemoryMiB: 20},
		}},
	}

	users := AggregateUsers(devices, map[string]string{"1": "alice"})

	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].User)
	assert.Equal(t, UserUsage{User: UnknownOwner, MemoryMiB: 20}, users[1])
}

func TestAggregateUsers_NoProcesses(t *testing.T) {
	users := AggregateUsers([]DeviceRecord{{Index: "0"}}, nil)
	assert.Empty(t, users)

	users = AggregateUsers(nil, nil)
	assert.Empty(t, users)
}

func TestCollectPIDs(t *testing.T) {
	devices := []DeviceRecord{
		{Processes: []ProcessUsage{{PID: "5"}, {PID: "3"}}},
		{Processes: []ProcessUsage{{PID: "3"}, {PID: "8"}}},
	}

	pids := CollectPIDs(devices)

	// Document order, duplicates removed
	assert.Equal(t, []string{"5", "3", "8"}, pids)
}

func TestCollectPIDs_Empty(t *testing.T) {
	assert.Empty(t, CollectPIDs(nil))
	assert.Empty(t, CollectPIDs([]DeviceRecord{{Index: "0"}}))
}
