package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "stdio", cfg.Transport)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "data/screenshots", cfg.ScreenshotDir)
	assert.Equal(t, 100*time.Millisecond, cfg.TypeDelay)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MACOS_SCREEN_MCP_TRANSPORT", "streamable-http")
	t.Setenv("MACOS_SCREEN_MCP_PORT", "9001")
	t.Setenv("MACOS_SCREEN_MCP_TYPE_DELAY", "50ms")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "streamable-http", cfg.Transport)
	assert.Equal(t, 9001, cfg.Port)
	assert.Equal(t, 50*time.Millisecond, cfg.TypeDelay)
}

func TestLoad_RejectsUnknownTransport(t *testing.T) {
	t.Setenv("MACOS_SCREEN_MCP_TRANSPORT", "websocket")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsNegativeDelay(t *testing.T) {
	t.Setenv("MACOS_SCREEN_MCP_TYPE_DELAY", "-10ms")
	_, err := Load()
	assert.Error(t, err)
}
