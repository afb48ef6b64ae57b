// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds server settings, populated from MACOS_SCREEN_MCP_* environment
// variables. CLI flags override individual fields.
type Config struct {
	Transport     string        `envconfig:"TRANSPORT" default:"stdio"`
	Port          int           `envconfig:"PORT" default:"8000"`
	ScreenshotDir string        `envconfig:"SCREENSHOT_DIR" default:"data/screenshots"`
	TypeDelay     time.Duration `envconfig:"TYPE_DELAY" default:"100ms"`
	LogLevel      string        `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("MACOS_SCREEN_MCP", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.Transport != "stdio" && cfg.Transport != "streamable-http" {
		return nil, fmt.Errorf("unsupported transport %q (use stdio or streamable-http)", cfg.Transport)
	}
	if cfg.TypeDelay < 0 {
		return nil, fmt.Errorf("negative type delay %v", cfg.TypeDelay)
	}
	return &cfg, nil
}
