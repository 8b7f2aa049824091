package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "filament.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	assert.Empty(t, c.Backend)
	assert.Equal(t, "info", c.Logger.Verbosity)
	assert.Equal(t, uint32(640), c.Frame.Width)
	assert.Equal(t, uint32(480), c.Frame.Height)
	assert.Equal(t, 3, c.Frame.Count)
}

func TestLoad(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := writeConfig(t, `
backend: headless
logger:
  verbosity: debug
frame:
  width: 1280
  height: 720
  count: 10
`)
		c, err := Load(path)
		require.NoError(t, err)
		require.NotNil(t, c)

		assert.Equal(t, "headless", c.Backend)
		assert.Equal(t, "debug", c.Logger.Verbosity)
		assert.Equal(t, uint32(1280), c.Frame.Width)
		assert.Equal(t, uint32(720), c.Frame.Height)
		assert.Equal(t, 10, c.Frame.Count)
	})

	t.Run("partial config keeps defaults", func(t *testing.T) {
		path := writeConfig(t, "backend: noop\n")
		c, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "noop", c.Backend)
		assert.Equal(t, "info", c.Logger.Verbosity)
		assert.Equal(t, uint32(640), c.Frame.Width)
	})

	t.Run("non-existent file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeConfig(t, "backend: [unclosed\n")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("invalid settings", func(t *testing.T) {
		path := writeConfig(t, "logger:\n  verbosity: loud\n")
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"verbosity error level", func(c *Config) { c.Logger.Verbosity = "error" }, false},
		{"unknown verbosity", func(c *Config) { c.Logger.Verbosity = "loud" }, true},
		{"zero width", func(c *Config) { c.Frame.Width = 0 }, true},
		{"zero height", func(c *Config) { c.Frame.Height = 0 }, true},
		{"negative count", func(c *Config) { c.Frame.Count = -1 }, true},
		{"zero count", func(c *Config) { c.Frame.Count = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		verbosity string
		want      slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.verbosity, func(t *testing.T) {
			c := Default()
			c.Logger.Verbosity = tt.verbosity
			assert.Equal(t, tt.want, c.LogLevel())
		})
	}
}
