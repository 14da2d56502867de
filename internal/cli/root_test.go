package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "gpumon", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage)
	assert.True(t, rootCmd.SilenceErrors)
}

func TestSubcommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, want := range []string{"watch", "snapshot", "init", "version"} {
		assert.True(t, names[want], "expected subcommand %q", want)
	}
}

func TestFleetFlagsRegistered(t *testing.T) {
	for _, cmd := range []string{"watch", "snapshot"} {
		sub, _, err := rootCmd.Find([]string{cmd})
		require.NoError(t, err)

		for _, flag := range []string{
			"targets", "ssh-user", "interval",
			"ssh-timeout", "cmd-timeout", "columns",
			"insecure-skip-hostkey",
		} {
			assert.NotNil(t, sub.Flags().Lookup(flag),
				"%s should have --%s", cmd, flag)
		}
	}
}

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"dev", "dev"},
		{"", ""},
		{"1.2.3", "v1.2.3"},
		{"v1.2.3", "v1.2.3"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, formatVersion(tt.input))
	}
}
