package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gpu-tools/gpumon/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 5*time.Second, cfg.SSHTimeout)
	assert.Equal(t, 10*time.Second, cfg.CmdTimeout)
	assert.Equal(t, 1*time.Second, cfg.Interval)
	assert.Equal(t, 2, cfg.Columns)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	content := `version: 1
target_file: /etc/gpumon/fleet.txt
ssh_user: ops
ssh_timeout: 3s
cmd_timeout: 20s
interval: 2s
columns: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/etc/gpumon/fleet.txt", cfg.TargetFile)
	assert.Equal(t, "ops", cfg.SSHUser)
	assert.Equal(t, 3*time.Second, cfg.SSHTimeout)
	assert.Equal(t, 20*time.Second, cfg.CmdTimeout)
	assert.Equal(t, 2*time.Second, cfg.Interval)
	assert.Equal(t, 3, cfg.Columns)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("ssh_user: alice\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "alice", cfg.SSHUser)
	assert.Equal(t, 10*time.Second, cfg.CmdTimeout)
	assert.Equal(t, 2, cfg.Columns)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoad_ColumnsClampedToOne(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("columns: 0\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Columns)
}

func TestFind_Explicit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0644))

	found, err := Find(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	_, err = Find(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
