package app

import (
	"fmt"

	"github.com/vk/eratosgo/internal/console"
)

// DefaultBound is the bound suggested in the usage text.
const DefaultBound = 2000

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Bound is used for the first scan when HasBound is set; later scans
	// always prompt.
	Bound    uint64
	HasBound bool

	ColorMode   console.ColorMode
	ClearScreen bool
	Pause       bool
	// Palette prints the terminal color palette instead of scanning.
	Palette bool

	LogFormat string
	LogLevel  string
}

// NewConfig fills in defaults and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ColorMode == "" {
		cfg.ColorMode = console.ColorAuto
	}
	if _, err := console.ParseColorMode(string(cfg.ColorMode)); err != nil {
		return nil, err
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	return &cfg, nil
}
