package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func readLines(t *testing.T, path string) []map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "folio.log")

	logger, err := New(path, "info", false)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("content loaded", zap.Int("articles", 5))
	require.NoError(t, Sync(logger))

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Equal(t, "content loaded", lines[0]["msg"])
	assert.Equal(t, "info", lines[0]["level"])
	assert.EqualValues(t, 5, lines[0]["articles"])
}

func TestDebugFlagOverridesLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.log")

	logger, err := New(path, "error", true)
	require.NoError(t, err)
	logger.Debug("navigate")
	require.NoError(t, Sync(logger))

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Equal(t, "debug", lines[0]["level"])
}

func TestEmptyPathIsNop(t *testing.T) {
	logger, err := New("", "info", false)
	require.NoError(t, err)
	assert.NotNil(t, logger)
	logger.Info("dropped")
}

func TestBadLevel(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "x.log"), "loud", false)
	assert.Error(t, err)
}

func TestSyncNil(t *testing.T) {
	assert.NoError(t, Sync(nil))
}
