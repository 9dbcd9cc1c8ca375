package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestParseLevel(t *testing.T) {
	testCases := map[string]Level{
		"DEBUG":   DEBUG,
		"debug":   DEBUG,
		"INFO":    INFO,
		" warn ":  WARN,
		"WARNING": WARN,
		"ERROR":   ERROR,
		"":        INFO,
		"verbose": INFO,
	}
	for input, want := range testCases {
		assert.Equal(t, want, ParseLevel(input), "input %q", input)
	}
	assert.Equal(t, "WARN", WARN.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
}

func TestLoggerWritesFieldsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tasktracker.log")
	l, err := New(Config{Level: INFO, FilePath: path, MaxSize: 1, MaxBackups: 2})
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })

	l.Debug("hidden message")
	l.Info("task created", F("id", "abc"))
	l.WithFields(F("request_id", "r-1")).Warn("slow request", F("duration", "2s"))

	out := readLog(t, path)
	assert.NotContains(t, out, "hidden message")
	assert.Contains(t, out, "task created")
	assert.Contains(t, out, "id=abc")
	assert.Contains(t, out, "request_id=r-1")
	assert.Contains(t, out, "duration=2s")
	assert.Contains(t, out, `caller="logger_test.go:`)
}

func TestLoggerJSONFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "json.log")
	l, err := New(Config{Level: DEBUG, FilePath: path, Format: FormatJSON})
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })

	l.Error("boom", F("status", 500))

	line := strings.TrimSpace(readLog(t, path))
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "boom", entry["msg"])
	assert.Equal(t, "error", entry["level"])
	assert.EqualValues(t, 500, entry["status"])
}

func TestLoggerRotatesOnSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rotate.log")
	l, err := New(Config{Level: INFO, FilePath: path, MaxSize: 1, MaxBackups: 2})
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })

	// ~1.1MB of entries against a 1MB limit forces one rotation
	payload := strings.Repeat("x", 1024)
	for i := 0; i < 1100; i++ {
		l.Info(payload, F("i", i))
	}

	backups, err := filepath.Glob(filepath.Join(dir, "rotate-*.log"))
	require.NoError(t, err)
	assert.Len(t, backups, 1)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.LessOrEqual(t, info.Size(), int64(1024*1024))
	assert.Contains(t, readLog(t, path), "i=1099")
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() {
		l.Info("ignored")
		_ = l.Close()
	})
}

func TestWithFieldsDoesNotLeakIntoParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fields.log")
	l, err := New(Config{Level: INFO, FilePath: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })

	child := l.WithFields(F("component", "store"))
	child.Info("from child")
	l.Info("from parent")

	lines := strings.Split(strings.TrimSpace(readLog(t, path)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "component=store")
	assert.NotContains(t, lines[1], "component=store")
}
