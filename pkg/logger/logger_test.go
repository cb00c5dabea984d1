package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"":        LevelInfo,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLogger_LevelThreshold(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, LevelWarn)

	log.Info("hidden %d", 1)
	log.Warn("shown %d", 2)
	log.Error("shown %d", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN  shown 2")
	assert.Contains(t, out, "ERROR shown 3")
}

func TestLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log, err := New(path, "info")
	require.NoError(t, err)

	log.Info("booking %s created", "2025-03-10-10:00-abc123")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "INFO  booking 2025-03-10-10:00-abc123 created")
	assert.NotContains(t, string(data), "\x1b[")
}

func TestLogger_Fatal(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, LevelInfo)

	code := -1
	log.exit = func(c int) { code = c }

	log.Fatal("storage is corrupt: %v", "bad json")

	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "FATAL storage is corrupt: bad json")
}
