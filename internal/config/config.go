// Package config loads runtime settings for the led-map binaries from the
// environment.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds settings shared by the batch driver and the MCP adapter.
type Config struct {
	// LogLevel is "debug" or anything else; debug enables per-frame logs.
	LogLevel string `env:"LED_MAP_LOG_LEVEL" envDefault:"info"`

	// FramesDir is the directory holding the baseline and lit captures.
	FramesDir string `env:"LED_MAP_FRAMES_DIR" envDefault:"frames"`

	// BaseFrame is the file name of the baseline capture inside FramesDir.
	BaseFrame string `env:"LED_MAP_BASE_FRAME" envDefault:"base.png"`

	// Workers bounds concurrent frame processing. 0 means one per CPU.
	Workers int `env:"LED_MAP_WORKERS" envDefault:"0"`

	// MinIntensity rejects detections whose threshold falls below it.
	MinIntensity uint8 `env:"LED_MAP_MIN_INTENSITY" envDefault:"0"`

	// DebugDir, when set, receives a heat-map PNG per processed frame.
	DebugDir string `env:"LED_MAP_DEBUG_DIR"`

	// MarkerColor is the "#RRGGBB" or "#RRGGBBAA" crosshair colour drawn on
	// debug heat maps.
	MarkerColor string `env:"LED_MAP_MARKER_COLOR" envDefault:"#00FF00"`
}

// Load parses the environment into a validated Config.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.FramesDir == "" {
		return fmt.Errorf("LED_MAP_FRAMES_DIR must not be empty")
	}
	if c.BaseFrame == "" {
		return fmt.Errorf("LED_MAP_BASE_FRAME must not be empty")
	}
	if c.Workers < 0 {
		return fmt.Errorf("LED_MAP_WORKERS must be >= 0, got %d", c.Workers)
	}
	if !validHexColor(c.MarkerColor) {
		return fmt.Errorf("LED_MAP_MARKER_COLOR must be #RRGGBB or #RRGGBBAA, got %q", c.MarkerColor)
	}
	return nil
}

func validHexColor(s string) bool {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return false
	}
	_, err := strconv.ParseUint(s, 16, 32)
	return err == nil
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return c.LogLevel == "debug"
}
