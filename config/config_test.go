package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("NOTATION_STATE_DIR", t.TempDir())

	cfg, err := Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
}

func TestLoadTrimsTrailingSlash(t *testing.T) {
	t.Setenv("NOTATION_SERVER_URL", "https://notes.example.com/")
	t.Setenv("NOTATION_STATE_DIR", t.TempDir())

	cfg, err := Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://notes.example.com", cfg.ServerURL)
}

func TestLogPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("NOTATION_STATE_DIR", dir)

	cfg, err := Load(context.Background())
	require.NoError(t, err)
	assert.Contains(t, cfg.LogPath(), dir)
	assert.Contains(t, cfg.LogPath(), "notation.log")
}
