package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("server defaults", func(t *testing.T) {
		assert.Equal(t, "127.0.0.1", cfg.Server.Host)
		assert.Equal(t, 5000, cfg.Server.Port)
		assert.Equal(t, 8, cfg.Server.QueueSize)
		assert.Equal(t, 300, cfg.Server.WriteTimeout)
		assert.LessOrEqual(t, cfg.Server.WorstCaseWait(), time.Duration(cfg.Server.WriteTimeout)*time.Second)
	})
	t.Run("target defaults", func(t *testing.T) {
		assert.NotEmpty(t, cfg.Target.Titles)
		assert.NotEmpty(t, cfg.Target.LaunchCommand)
		assert.Equal(t, 12000, cfg.Target.FocusTimeoutMs)
		assert.Equal(t, 800, cfg.Target.PollIntervalMs)
		assert.Equal(t, "alt+tab", cfg.Target.SwitchCombo)
	})
	t.Run("drawing defaults", func(t *testing.T) {
		assert.Equal(t, AnchorConfig{X: 350, Y: 420, Width: 340, Height: 220}, cfg.Drawing.House)
		assert.Equal(t, AnchorConfig{X: 600, Y: 300, Width: 1, Height: 1}, cfg.Drawing.FallbackTree)
		assert.Equal(t, 36, cfg.Drawing.EllipseSteps)
		assert.Equal(t, 12, cfg.Drawing.GrassCount)
	})
	t.Run("storage defaults", func(t *testing.T) {
		assert.Equal(t, "memory", cfg.Storage.Type)
	})
	t.Run("defaults validate", func(t *testing.T) {
		assert.NoError(t, cfg.Validate())
	})
}

func TestDefaultTargetPerOS(t *testing.T) {
	tests := []struct {
		goos      string
		wantTitle string
		wantApp   string
	}{
		{goos: "windows", wantTitle: "Untitled - Paint", wantApp: "MS Paint"},
		{goos: "linux", wantTitle: "KolourPaint", wantApp: "KolourPaint"},
		{goos: "darwin", wantTitle: "Paintbrush", wantApp: "Paintbrush"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			target := defaultTarget(tt.goos)
			assert.Contains(t, target.Titles, tt.wantTitle)
			assert.Equal(t, tt.wantApp, target.AppName)
			assert.NotEmpty(t, target.FallbackLaunchCommand)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "no titles",
			mutate:  func(c *Config) { c.Target.Titles = nil },
			wantErr: "target.titles",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Target.FocusTimeoutMs = 0 },
			wantErr: "focus_timeout_ms",
		},
		{
			name:    "too few ellipse steps",
			mutate:  func(c *Config) { c.Drawing.EllipseSteps = 2 },
			wantErr: "ellipse_steps",
		},
		{
			name:    "write timeout shorter than a full queue",
			mutate:  func(c *Config) { c.Server.WriteTimeout = 120; c.Server.QueueSize = 16 },
			wantErr: "server.write_timeout",
		},
		{
			name:    "zero command seconds",
			mutate:  func(c *Config) { c.Server.CommandSeconds = 0 },
			wantErr: "command_seconds",
		},
		{
			name:    "empty queue",
			mutate:  func(c *Config) { c.Server.QueueSize = 0 },
			wantErr: "queue_size",
		},
		{
			name:    "unknown storage",
			mutate:  func(c *Config) { c.Storage.Type = "mongo" },
			wantErr: "unsupported storage type",
		},
		{
			name:    "unknown display provider",
			mutate:  func(c *Config) { c.Display.Provider = "wayland" },
			wantErr: "unsupported display provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_WriteTimeoutDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.WriteTimeout = 0
	cfg.Server.QueueSize = 64
	assert.NoError(t, cfg.Validate())

	cfg.Server.WriteTimeout = 65 * 30
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		v, err := NewViper()
		require.NoError(t, err)

		cfg, err := Load(v, filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig().Server.Port, cfg.Server.Port)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "server:\n  port: 6123\ntarget:\n  titles:\n    - Pinta\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		v, err := NewViper()
		require.NoError(t, err)

		cfg, err := Load(v, path)
		require.NoError(t, err)
		assert.Equal(t, 6123, cfg.Server.Port)
		assert.Equal(t, []string{"Pinta"}, cfg.Target.Titles)
		assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("DRAWBOT_SERVER_PORT", "7001")

		v, err := NewViper()
		require.NoError(t, err)

		cfg, err := Load(v, filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, 7001, cfg.Server.Port)
	})

	t.Run("invalid file is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("storage:\n  type: mongo\n"), 0644))

		v, err := NewViper()
		require.NoError(t, err)

		_, err = Load(v, path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigDirName, ConfigFileName)

	cfg := DefaultConfig()
	cfg.Server.Port = 5555
	require.NoError(t, cfg.SaveConfig(path))

	v, err := NewViper()
	require.NoError(t, err)
	loaded, err := Load(v, path)
	require.NoError(t, err)

	assert.Equal(t, 5555, loaded.Server.Port)
	assert.Equal(t, cfg.Target.Titles, loaded.Target.Titles)
}
