package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT",
		"TASKTRACKER_SERVER_URL",
		"TASKTRACKER_LOG_LEVEL",
		"TASKTRACKER_LOG_FILE",
		"TASKTRACKER_LOG_FORMAT",
		"TASKTRACKER_LOG_CONSOLE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "missing.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "http://localhost:3000", cfg.ServerURL)
	assert.True(t, cfg.ConfirmDelete)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, path, cfg.Path())
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "port: \"4000\"\nserver_url: http://tasks.internal:4000\nconfirm_delete: false\nlog_level: DEBUG\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "http://tasks.internal:4000", cfg.ServerURL)
	assert.False(t, cfg.ConfirmDelete)
	assert.Equal(t, "DEBUG", cfg.LogLevel)

	t.Setenv("PORT", "5000")
	t.Setenv("TASKTRACKER_LOG_CONSOLE", "false")
	t.Setenv("TASKTRACKER_LOG_FORMAT", "json")

	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.Port)
	assert.False(t, cfg.LogConsole)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadInvalidYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [unterminated"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	cfg.ServerURL = "http://example.test:8080"
	require.NoError(t, cfg.Save())

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://example.test:8080", reloaded.ServerURL)
}

func TestSaveDoesNotPersistEnvOverrides(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"4000\"\nlog_level: WARN\n"), 0644))

	t.Setenv("PORT", "5000")
	t.Setenv("TASKTRACKER_LOG_LEVEL", "DEBUG")
	t.Setenv("TASKTRACKER_LOG_FILE", "/tmp/env.log")

	cfg, err := Load(path)
	require.NoError(t, err)
	cfg.ServerURL = "http://example.test:8080"
	require.NoError(t, cfg.Save())

	clearEnv(t)
	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://example.test:8080", reloaded.ServerURL)
	assert.Equal(t, "4000", reloaded.Port)
	assert.Equal(t, "WARN", reloaded.LogLevel)
	assert.Empty(t, reloaded.LogFile)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "5000")
	assert.NotContains(t, string(data), "/tmp/env.log")
}
