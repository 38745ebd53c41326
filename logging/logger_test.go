package logging

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lixenwraith/air-hockey/constant"
)

func TestNewDisabledIsNop(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, cleanup, err := New(Options{Debug: false, Dir: dir})
	require.NoError(t, err)
	defer cleanup()

	logger.Info("dropped")

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr), "disabled logger must not create a log dir")
}

func TestNewWritesJSONFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, cleanup, err := New(Options{Debug: true, Level: "debug", Dir: dir})
	require.NoError(t, err)

	logger.Info("goal scored", zap.String("side", "ai"))
	log.Print("stdlib line")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, constant.LogFileName))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.GreaterOrEqual(t, len(lines), 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "goal scored", entry["msg"])
	assert.Equal(t, "ai", entry["side"])
	assert.Equal(t, "INFO", entry["level"])

	assert.Contains(t, string(data), "stdlib line")
}

func TestNewBadLevelFallsBackToInfo(t *testing.T) {
	dir := t.TempDir()

	logger, cleanup, err := New(Options{Debug: true, Level: "chatty", Dir: dir})
	require.NoError(t, err)
	defer cleanup()

	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
	assert.True(t, logger.Core().Enabled(zap.InfoLevel))
}
