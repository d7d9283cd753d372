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

func TestLoggerAdapter_WritesJSONLines(t *testing.T) {
	dir := t.TempDir()
	log, err := NewLoggerAdapter(Config{Dir: dir, Name: "minha tarefa", Level: "debug"})
	require.NoError(t, err)

	log.WithField("task_id", "abc").Info("Step finished", "step", 2)
	log.Debug("Detail")
	require.NoError(t, log.Close())

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.True(t, strings.HasSuffix(files[0].Name(), "_minha_tarefa.log"), files[0].Name())

	data, err := os.ReadFile(filepath.Join(dir, files[0].Name()))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "Step finished", entry["message"])
	assert.Equal(t, "abc", entry["task_id"])
	assert.EqualValues(t, 2, entry["step"])
	assert.Equal(t, "info", entry["level"])
}

func TestLoggerAdapter_LevelFilters(t *testing.T) {
	dir := t.TempDir()
	log, err := NewLoggerAdapter(Config{Dir: dir, Level: "warn"})
	require.NoError(t, err)

	log.Info("hidden")
	log.WithFields(map[string]any{"a": 1}).Warn("shown")
	require.NoError(t, log.Close())

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.True(t, strings.HasSuffix(files[0].Name(), "_agent.log"))

	data, err := os.ReadFile(filepath.Join(dir, files[0].Name()))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "agent", sanitize("***"))
	assert.Equal(t, "a_b-c", sanitize("a b-c"))
	assert.Len(t, sanitize(strings.Repeat("x", 100)), 60)
}

func TestNopLogger(t *testing.T) {
	log := NewNopLogger()
	log.Error("ignored", "k", "v")
	assert.NoError(t, log.Close())
}
