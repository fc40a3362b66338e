package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmptyPathDisablesLogging(t *testing.T) {
	t.Parallel()

	log, closer, err := New("")
	require.NoError(t, err)
	assert.Nil(t, closer)
	// must not panic or write anywhere
	log.Error().Msg("dropped")
}

func TestNewWritesToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rustico.log")
	log, closer, err := New(path)
	require.NoError(t, err)
	require.NotNil(t, closer)

	log.Info().Str("view", "movements").Msg("refetch")
	require.NoError(t, closer.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(raw), &entry))
	assert.Equal(t, "refetch", entry["message"])
	assert.Equal(t, "movements", entry["view"])
	assert.Contains(t, entry, "time")
}

func TestNewBadPath(t *testing.T) {
	t.Parallel()

	_, _, err := New(filepath.Join(t.TempDir(), "no", "such", "dir", "x.log"))
	require.Error(t, err)
}

func TestNewWithWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewWithWriter(&buf)
	log.Warn().Msg("careful")
	assert.Contains(t, buf.String(), `"message":"careful"`)
}
