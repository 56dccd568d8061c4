// Package config loads application settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the application reads at startup.
type Config struct {
	DatabasePath string  `env:"FAITHWALK_DB_PATH" envDefault:"Faith_Walk.db"`
	LogLevel     string  `env:"FAITHWALK_LOG_LEVEL" envDefault:"info"`
	LogFormat    string  `env:"FAITHWALK_LOG_FORMAT" envDefault:"console"`
	WindowWidth  float32 `env:"FAITHWALK_WINDOW_WIDTH" envDefault:"700"`
	WindowHeight float32 `env:"FAITHWALK_WINDOW_HEIGHT" envDefault:"500"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabasePath) == "" {
		return fmt.Errorf("database path is required")
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("log format %q must be console or json", c.LogFormat)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %vx%v", c.WindowWidth, c.WindowHeight)
	}
	return nil
}
