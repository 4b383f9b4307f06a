package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "console", cfg.Format)
	assert.Equal(t, DefaultFile, cfg.Output)
	assert.NotEmpty(t, cfg.TimeFormat)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		got, err := parseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := parseLevel("loud")
	assert.Error(t, err)
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "reel.log")
	log, closeFn, err := New(&Config{Level: "debug", Format: "json", Output: path})
	require.NoError(t, err)

	log.Named("engine").Debug("mounted", zap.Int("items", 4))
	require.NoError(t, log.Sync())
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "mounted", entry["msg"])
	assert.Equal(t, "engine", entry["logger"])
	assert.Equal(t, float64(4), entry["items"])
}

func TestNewNone(t *testing.T) {
	log, closeFn, err := New(&Config{Output: "none"})
	require.NoError(t, err)
	assert.NoError(t, closeFn())
	assert.False(t, log.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, _, err := New(&Config{Level: "chatty", Output: "none"})
	assert.Error(t, err)
}

func TestNewWriterFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWriter(&buf, "warn")
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown", zap.String("deck", "go.toml"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.Contains(out, `"deck":"go.toml"`))
}
