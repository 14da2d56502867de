package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gpu-tools/gpumon/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestResolveFleet_ConfigAndTargets(t *testing.T) {
	dir := t.TempDir()
	fleet := writeFile(t, dir, "servers.txt", "10.0.0.5\n10.0.0.6 -p8022\n")
	cfgPath := writeFile(t, dir, ".gpumon.yaml",
		"version: 1\ntarget_file: "+fleet+"\nssh_user: ops\ninterval: 3s\n")

	original := cfgFile
	cfgFile = cfgPath
	defer func() { cfgFile = original }()

	cfg, targets, err := resolveFleet(&fleetFlags{})
	require.NoError(t, err)

	assert.Equal(t, "ops", cfg.SSHUser)
	assert.Equal(t, 3*time.Second, cfg.Interval)
	require.Len(t, targets, 2)
	assert.Equal(t, "10.0.0.5", targets[0].Host)
	assert.Equal(t, "8022", targets[1].Port)
}

func TestResolveFleet_FlagsBeatConfig(t *testing.T) {
	dir := t.TempDir()
	configured := writeFile(t, dir, "servers.txt", "10.0.0.5\n")
	override := writeFile(t, dir, "other.txt", "localhost\n")
	cfgPath := writeFile(t, dir, ".gpumon.yaml",
		"version: 1\ntarget_file: "+configured+"\nssh_user: ops\ncolumns: 4\n")

	original := cfgFile
	cfgFile = cfgPath
	defer func() { cfgFile = original }()

	ff := &fleetFlags{
		targets:  override,
		sshUser:  "admin",
		interval: 5 * time.Second,
		columns:  3,
	}

	cfg, targets, err := resolveFleet(ff)
	require.NoError(t, err)

	assert.Equal(t, "admin", cfg.SSHUser)
	assert.Equal(t, 5*time.Second, cfg.Interval)
	assert.Equal(t, 3, cfg.Columns)
	require.Len(t, targets, 1)
	assert.True(t, targets[0].Local())
}

func TestResolveFleet_EmptyFleetFails(t *testing.T) {
	dir := t.TempDir()
	fleet := writeFile(t, dir, "servers.txt", "# only comments\n\n")
	cfgPath := writeFile(t, dir, ".gpumon.yaml", "version: 1\ntarget_file: "+fleet+"\n")

	original := cfgFile
	cfgFile = cfgPath
	defer func() { cfgFile = original }()

	_, _, err := resolveFleet(&fleetFlags{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestResolveFleet_MissingTargetFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, ".gpumon.yaml",
		"version: 1\ntarget_file: "+filepath.Join(dir, "nope.txt")+"\n")

	original := cfgFile
	cfgFile = cfgPath
	defer func() { cfgFile = original }()

	_, _, err := resolveFleet(&fleetFlags{})
	require.Error(t, err)
}

func TestPollLogger(t *testing.T) {
	t.Setenv("GPUMON_DEBUG", "")
	os.Unsetenv("GPUMON_DEBUG")
	assert.NotNil(t, pollLogger("[test]"))

	t.Setenv("GPUMON_DEBUG", "1")
	assert.NotNil(t, pollLogger("[test]"))
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"✗ Connection failed\n\n  dial tcp: timeout\n", "Connection failed"},
		{"plain error", "plain error"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, firstLine(tt.input))
	}
}
