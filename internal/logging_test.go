package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/ridenav/config"
)

func TestNewHandler_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(config.LoggingConfig{Level: "warn"}, &buf))

	logger.Info("dropped")
	logger.Warn("kept", "segment", "seg-1")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
	assert.Contains(t, out, "segment=seg-1")
}

func TestNewHandler_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ridenav.log")
	h := newHandler(config.LoggingConfig{Level: "debug", File: path, MaxSizeMB: 1}, os.Stderr)
	require.True(t, h.Enabled(context.Background(), slog.LevelDebug))

	slog.New(h).Debug("transition", "from", "InGame", "to", "OnRoute")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &line))
	assert.Equal(t, "transition", line["msg"])
	assert.Equal(t, "OnRoute", line["to"])
}
