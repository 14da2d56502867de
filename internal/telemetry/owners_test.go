package telemetry

import (
	"context"
	"fmt"
	"testing"

	"github.com/gpu-tools/gpumon/internal/config"
	"github.com/gpu-tools/gpumon/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRunner returns canned output per command and records what ran.
type scriptedRunner struct {
	responses map[string]string
	errs      map[string]error
	commands  []string
}

func (s *scriptedRunner) Run(_ context.Context, _ config.Target, command string) ([]byte, error) {
	s.commands = append(s.commands, command)
	if err, ok := s.errs[command]; ok {
		return nil, err
	}
	if out, ok := s.responses[command]; ok {
		return []byte(out), nil
	}
	return nil, fmt.Errorf("unexpected command: %s", command)
}

func (s *scriptedRunner) Close() {}

func TestResolveOwners_ZipsPositionally(t *testing.T) {
	run := &scriptedRunner{responses: map[string]string{
		"ps -o user= -p 1234,5678": "alice\nbob\n",
	}}
	target := config.Target{Host: "10.0.0.5", Port: "22"}

	owners := ResolveOwners(context.Background(), run, target, []string{"1234", "5678"}, logger.Noop())

	assert.Equal(t, map[string]string{"1234": "alice", "5678": "bob"}, owners)
	require.Len(t, run.commands, 1)
}

func TestResolveOwners_EmptyPidsIssuesNoCommand(t *testing.T) {
	run := &scriptedRunner{}

	owners := ResolveOwners(context.Background(), run, config.Target{Host: "."}, nil, logger.Noop())

	assert.Empty(t, owners)
	assert.Empty(t, run.commands)
}

func TestResolveOwners_ShortReplyLeavesTailUnknown(t *testing.T) {
	run := &scriptedRunner{responses: map[string]string{
		"ps -o user= -p 1234,5678,9999": "alice\nbob\n",
	}}

	log := logger.NewBufferLogger()
	owners := ResolveOwners(context.Background(), run, config.Target{Host: "h"}, []string{"1234", "5678", "9999"}, log)

	assert.Equal(t, "alice", owners["1234"])
	assert.Equal(t, "bob", owners["5678"])
	assert.Equal(t, UnknownOwner, owners["9999"])
	assert.True(t, log.HasLevel("warn"))
}

func TestResolveOwners_LongReplyIgnoresExtraLines(t *testing.T) {
	run := &scriptedRunner{responses: map[string]string{
		"ps -o user= -p 1234": "alice\nbob\ncarol\n",
	}}

	owners := ResolveOwners(context.Background(), run, config.Target{Host: "h"}, []string{"1234"}, logger.Noop())

	assert.Equal(t, map[string]string{"1234": "alice"}, owners)
}

func TestResolveOwners_CommandFailureDegradesToUnknown(t *testing.T) {
	run := &scriptedRunner{errs: map[string]error{
		"ps -o user= -p 1234,5678": fmt.Errorf("connection reset"),
	}}

	log := logger.NewBufferLogger()
	owners := ResolveOwners(context.Background(), run, config.Target{Host: "h"}, []string{"1234", "5678"}, log)

	// Every pid is still a key, mapped to the sentinel
	assert.Equal(t, map[string]string{"1234": UnknownOwner, "5678": UnknownOwner}, owners)
	assert.True(t, log.HasLevel("warn"))
}
