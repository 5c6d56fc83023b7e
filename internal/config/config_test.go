package config

import (
	"testing"
	"time"

	"github.com/kk-code-lab/rdrive/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil, envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, state.DefaultListTimeout, cfg.ListTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Empty(t, cfg.Log.OutputPath)
	assert.False(t, cfg.ShowHelp)
}

func TestLoadEnvironmentAndArgs(t *testing.T) {
	env := envMap(map[string]string{
		"RDRIVE_LIST_TIMEOUT": "750ms",
		"RDRIVE_LOG_LEVEL":    "debug",
		"RDRIVE_LOG_FORMAT":   "console",
		"RDRIVE_LOG_FILE":     "/tmp/env.log",
	})

	cfg, err := Load([]string{"--log=/tmp/arg.log"}, env)
	require.NoError(t, err)
	assert.Equal(t, 750*time.Millisecond, cfg.ListTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "/tmp/arg.log", cfg.Log.OutputPath)

	cfg, err = Load([]string{"--timeout", "2s", "--log", "x.log", "-h"}, env)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.ListTimeout)
	assert.Equal(t, "x.log", cfg.Log.OutputPath)
	assert.True(t, cfg.ShowHelp)
}

func TestLoadShellIntegrationFlags(t *testing.T) {
	cfg, err := Load([]string{"--cd-file", "/tmp/last", "--setup", "fish"}, envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/last", cfg.CdFile)
	assert.True(t, cfg.Setup)
	assert.Equal(t, "fish", cfg.SetupShell)

	cfg, err = Load([]string{"-s", "--cd-file=/tmp/other"}, envMap(nil))
	require.NoError(t, err)
	assert.True(t, cfg.Setup)
	assert.Empty(t, cfg.SetupShell)
	assert.Equal(t, "/tmp/other", cfg.CdFile)

	cfg, err = Load([]string{"--setup=pwsh"}, envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, "pwsh", cfg.SetupShell)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "bad env timeout", env: map[string]string{"RDRIVE_LIST_TIMEOUT": "soon"}},
		{name: "negative timeout", args: []string{"--timeout=-1s"}},
		{name: "missing log path", args: []string{"--log"}},
		{name: "missing timeout value", args: []string{"--timeout"}},
		{name: "missing cd file", args: []string{"--cd-file"}},
		{name: "unknown flag", args: []string{"--frobnicate"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args, envMap(tt.env))
			assert.Error(t, err)
		})
	}
}
