package logutils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "uikit.log")

	logger, closer, err := New("warn", file)
	require.NoError(t, err)

	logger.Info().Msg("dropped")
	logger.Warn().Str("cmp", "test").Msg("kept")
	closer()

	data, err := os.ReadFile(file)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "test", entry["cmp"])
	assert.Contains(t, entry, "time")
}

func TestNew_Level(t *testing.T) {
	logger, closer, err := New("debug", "")
	require.NoError(t, err)
	defer closer()
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())

	_, _, err = New("loud", "")
	require.Error(t, err)
}
