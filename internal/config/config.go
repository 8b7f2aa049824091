package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings for filament's command-line tooling.
type Config struct {
	// Backend selects the platform by registry name. Empty picks the
	// best available platform automatically.
	Backend string `yaml:"backend"`

	Logger struct {
		// Verbosity is one of debug, info, warn, error.
		Verbosity string `yaml:"verbosity"`
	} `yaml:"logger"`

	Frame struct {
		Width  uint32 `yaml:"width"`
		Height uint32 `yaml:"height"`
		Count  int    `yaml:"count"`
	} `yaml:"frame"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.Logger.Verbosity = "info"
	c.Frame.Width = 640
	c.Frame.Height = 480
	c.Frame.Count = 3
	return c
}

// Load reads a YAML config file. Settings absent from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Logger.Verbosity {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown verbosity %q", c.Logger.Verbosity)
	}
	if c.Frame.Width == 0 || c.Frame.Height == 0 {
		return fmt.Errorf("config: frame dimensions must be positive")
	}
	if c.Frame.Count < 0 {
		return fmt.Errorf("config: frame count must not be negative")
	}
	return nil
}

// LogLevel maps the configured verbosity to a slog level.
func (c *Config) LogLevel() slog.Level {
	switch c.Logger.Verbosity {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
