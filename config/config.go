package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	yaml "gopkg.in/yaml.v3"
)

const (
	ConfigDirName  = ".drawbot"
	ConfigFileName = "config.yaml"
	EnvPrefix      = "DRAWBOT"
)

// DefaultConfigPath is the project-local configuration file
var DefaultConfigPath = filepath.Join(ConfigDirName, ConfigFileName)

// Config represents the drawbot configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Logging   LoggingConfig   `yaml:"logging" mapstructure:"logging"`
	Display   DisplayConfig   `yaml:"display" mapstructure:"display"`
	Target    TargetConfig    `yaml:"target" mapstructure:"target"`
	Drawing   DrawingConfig   `yaml:"drawing" mapstructure:"drawing"`
	RateLimit RateLimitConfig `yaml:"rate_limit" mapstructure:"rate_limit"`
	Storage   StorageConfig   `yaml:"storage" mapstructure:"storage"`
	Preview   PreviewConfig   `yaml:"preview" mapstructure:"preview"`
}

// ServerConfig contains the HTTP front end settings
type ServerConfig struct {
	Host         string `yaml:"host" mapstructure:"host"`
	Port         int    `yaml:"port" mapstructure:"port"`
	ReadTimeout  int    `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout int    `yaml:"write_timeout" mapstructure:"write_timeout"`
	IdleTimeout  int    `yaml:"idle_timeout" mapstructure:"idle_timeout"`
	QueueSize    int    `yaml:"queue_size" mapstructure:"queue_size"`
	HistoryLimit int    `yaml:"history_limit" mapstructure:"history_limit"`
	// CommandSeconds is the longest a single command (focus plus drawing)
	// is expected to hold the input devices
	CommandSeconds int `yaml:"command_seconds" mapstructure:"command_seconds"`
}

// WorstCaseWait is how long the last queued request waits for its reply:
// every queued command plus the running one
func (s ServerConfig) WorstCaseWait() time.Duration {
	return time.Duration((s.QueueSize+1)*s.CommandSeconds) * time.Second
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Debug bool   `yaml:"debug" mapstructure:"debug"`
	Dir   string `yaml:"dir" mapstructure:"dir"`
}

// DisplayConfig selects the synthetic input backend.
// Provider is one of "" (auto-detect), "x11", "robot" or "recorder".
type DisplayConfig struct {
	Provider string `yaml:"provider" mapstructure:"provider"`
	Name     string `yaml:"name" mapstructure:"name"`
}

// TargetConfig describes the paint application being driven
type TargetConfig struct {
	AppName               string   `yaml:"app_name" mapstructure:"app_name"`
	Titles                []string `yaml:"titles" mapstructure:"titles"`
	LaunchCommand         []string `yaml:"launch_command" mapstructure:"launch_command"`
	FallbackLaunchCommand []string `yaml:"fallback_launch_command" mapstructure:"fallback_launch_command"`
	FocusTimeoutMs        int      `yaml:"focus_timeout_ms" mapstructure:"focus_timeout_ms"`
	PollIntervalMs        int      `yaml:"poll_interval_ms" mapstructure:"poll_interval_ms"`
	RestoreDelayMs        int      `yaml:"restore_delay_ms" mapstructure:"restore_delay_ms"`
	ActivateDelayMs       int      `yaml:"activate_delay_ms" mapstructure:"activate_delay_ms"`
	MaximizeDelayMs       int      `yaml:"maximize_delay_ms" mapstructure:"maximize_delay_ms"`
	FocusClickDelayMs     int      `yaml:"focus_click_delay_ms" mapstructure:"focus_click_delay_ms"`
	SwitchCombo           string   `yaml:"switch_combo" mapstructure:"switch_combo"`
	CanvasClickX          float64  `yaml:"canvas_click_x" mapstructure:"canvas_click_x"`
	CanvasClickY          float64  `yaml:"canvas_click_y" mapstructure:"canvas_click_y"`
}

// DrawingConfig contains pacing and fallback placement for the composers
type DrawingConfig struct {
	GlideStepMs     int          `yaml:"glide_step_ms" mapstructure:"glide_step_ms"`
	ActionPauseMs   int          `yaml:"action_pause_ms" mapstructure:"action_pause_ms"`
	EllipseSteps    int          `yaml:"ellipse_steps" mapstructure:"ellipse_steps"`
	ScenePauseMs    int          `yaml:"scene_pause_ms" mapstructure:"scene_pause_ms"`
	ElementPauseMs  int          `yaml:"element_pause_ms" mapstructure:"element_pause_ms"`
	ClearKeyDelayMs int          `yaml:"clear_key_delay_ms" mapstructure:"clear_key_delay_ms"`
	SelectAllCombo  string       `yaml:"select_all_combo" mapstructure:"select_all_combo"`
	DeleteKey       string       `yaml:"delete_key" mapstructure:"delete_key"`
	House           AnchorConfig `yaml:"house" mapstructure:"house"`
	FallbackTree    AnchorConfig `yaml:"fallback_tree" mapstructure:"fallback_tree"`
	FallbackCar     AnchorConfig `yaml:"fallback_car" mapstructure:"fallback_car"`
	FallbackPerson  AnchorConfig `yaml:"fallback_person" mapstructure:"fallback_person"`
	FallbackGrass   AnchorConfig `yaml:"fallback_grass" mapstructure:"fallback_grass"`
	FallbackSun     AnchorConfig `yaml:"fallback_sun" mapstructure:"fallback_sun"`
	GrassCount      int          `yaml:"grass_count" mapstructure:"grass_count"`
	SunRadius       int          `yaml:"sun_radius" mapstructure:"sun_radius"`
	SunOffsetX      int          `yaml:"sun_offset_x" mapstructure:"sun_offset_x"`
	SunOffsetY      int          `yaml:"sun_offset_y" mapstructure:"sun_offset_y"`
}

// AnchorConfig is a screen-pixel box. Fallback anchors are approximations
// that assume a maximized window on a fixed-resolution screen.
type AnchorConfig struct {
	X      int `yaml:"x" mapstructure:"x"`
	Y      int `yaml:"y" mapstructure:"y"`
	Width  int `yaml:"width" mapstructure:"width"`
	Height int `yaml:"height" mapstructure:"height"`
}

// RateLimitConfig limits how many commands the front end accepts per window
type RateLimitConfig struct {
	Enabled             bool `yaml:"enabled" mapstructure:"enabled"`
	MaxActionsPerMinute int  `yaml:"max_actions_per_minute" mapstructure:"max_actions_per_minute"`
	WindowSeconds       int  `yaml:"window_seconds" mapstructure:"window_seconds"`
}

// StorageConfig contains configuration for session state backends
type StorageConfig struct {
	// Type is one of memory, sqlite, postgres, redis
	Type     string         `yaml:"type" mapstructure:"type"`
	SQLite   SQLiteConfig   `yaml:"sqlite,omitempty" mapstructure:"sqlite"`
	Postgres PostgresConfig `yaml:"postgres,omitempty" mapstructure:"postgres"`
	Redis    RedisConfig    `yaml:"redis,omitempty" mapstructure:"redis"`
}

// SQLiteConfig contains SQLite-specific configuration
type SQLiteConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// PostgresConfig contains Postgres-specific configuration
type PostgresConfig struct {
	Host     string `yaml:"host" mapstructure:"host"`
	Port     int    `yaml:"port" mapstructure:"port"`
	Database string `yaml:"database" mapstructure:"database"`
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`
	SSLMode  string `yaml:"ssl_mode" mapstructure:"ssl_mode"`
}

// RedisConfig contains Redis-specific configuration
type RedisConfig struct {
	Host     string `yaml:"host" mapstructure:"host"`
	Port     int    `yaml:"port" mapstructure:"port"`
	Database int    `yaml:"database" mapstructure:"database"`
	Password string `yaml:"password,omitempty" mapstructure:"password"`
	Username string `yaml:"username,omitempty" mapstructure:"username"`
	TTL      int    `yaml:"ttl,omitempty" mapstructure:"ttl"` // seconds, 0 means no expiration
}

// PreviewConfig controls SVG rendering of recorded strokes
type PreviewConfig struct {
	Width       int     `yaml:"width" mapstructure:"width"`
	Height      int     `yaml:"height" mapstructure:"height"`
	StrokeWidth float64 `yaml:"stroke_width" mapstructure:"stroke_width"`
	StrokeColor string  `yaml:"stroke_color" mapstructure:"stroke_color"`
	Background  string  `yaml:"background" mapstructure:"background"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:           "127.0.0.1",
			Port:           5000,
			ReadTimeout:    30,
			WriteTimeout:   300,
			IdleTimeout:    120,
			QueueSize:      8,
			HistoryLimit:   20,
			CommandSeconds: 30,
		},
		Logging: LoggingConfig{
			Debug: false,
			Dir:   "",
		},
		Display: DisplayConfig{
			Provider: "",
			Name:     "",
		},
		Target: defaultTarget(runtime.GOOS),
		Drawing: DrawingConfig{
			GlideStepMs:     10,
			ActionPauseMs:   0,
			EllipseSteps:    36,
			ScenePauseMs:    300,
			ElementPauseMs:  200,
			ClearKeyDelayMs: 50,
			SelectAllCombo:  "ctrl+a",
			DeleteKey:       "delete",
			House:           AnchorConfig{X: 350, Y: 420, Width: 340, Height: 220},
			FallbackTree:    AnchorConfig{X: 600, Y: 300, Width: 1, Height: 1},
			FallbackCar:     AnchorConfig{X: 450, Y: 400, Width: 1, Height: 1},
			FallbackPerson:  AnchorConfig{X: 450, Y: 400, Width: 1, Height: 1},
			FallbackGrass:   AnchorConfig{X: 300, Y: 400, Width: 1, Height: 1},
			FallbackSun:     AnchorConfig{X: 1000, Y: 120},
			GrassCount:      12,
			SunRadius:       44,
			SunOffsetX:      160,
			SunOffsetY:      -80,
		},
		RateLimit: RateLimitConfig{
			Enabled:             true,
			MaxActionsPerMinute: 30,
			WindowSeconds:       60,
		},
		Storage: StorageConfig{
			Type: "memory",
			SQLite: SQLiteConfig{
				Path: filepath.Join(ConfigDirName, "drawbot.db"),
			},
			Postgres: PostgresConfig{
				Host:     "localhost",
				Port:     5432,
				Database: "drawbot",
				Username: "drawbot",
				SSLMode:  "disable",
			},
			Redis: RedisConfig{
				Host: "localhost",
				Port: 6379,
			},
		},
		Preview: PreviewConfig{
			Width:       1920,
			Height:      1080,
			StrokeWidth: 2,
			StrokeColor: "#1f2933",
			Background:  "#ffffff",
		},
	}
}

// defaultTarget returns the target application settings for an OS. Windows
// drives the Microsoft Store Paint; everything else drives KolourPaint.
func defaultTarget(goos string) TargetConfig {
	t := TargetConfig{
		FocusTimeoutMs:    12000,
		PollIntervalMs:    800,
		RestoreDelayMs:    500,
		ActivateDelayMs:   1000,
		MaximizeDelayMs:   500,
		FocusClickDelayMs: 300,
		SwitchCombo:       "alt+tab",
		CanvasClickX:      0.6,
		CanvasClickY:      0.5,
	}

	switch goos {
	case "windows":
		t.AppName = "MS Paint"
		t.Titles = []string{"Paint", "Untitled - Paint", "mspaint", "Paint - Untitled"}
		t.LaunchCommand = []string{"explorer.exe", `shell:AppsFolder\Microsoft.Paint_8wekyb3d8bbwe!Microsoft.Paint`}
		t.FallbackLaunchCommand = []string{"cmd", "/c", "start", "ms-paint:"}
	case "darwin":
		t.AppName = "Paintbrush"
		t.Titles = []string{"Paintbrush", "Untitled"}
		t.LaunchCommand = []string{"open", "-a", "Paintbrush"}
		t.FallbackLaunchCommand = []string{"open", "-b", "com.soggywaffles.paintbrush"}
	default:
		t.AppName = "KolourPaint"
		t.Titles = []string{"KolourPaint", "Untitled - KolourPaint", "Pinta"}
		t.LaunchCommand = []string{"kolourpaint"}
		t.FallbackLaunchCommand = []string{"pinta"}
	}

	return t
}

// Validate checks values that would otherwise break the drawing loop
func (c *Config) Validate() error {
	if len(c.Target.Titles) == 0 {
		return fmt.Errorf("target.titles must contain at least one window title")
	}
	if c.Target.FocusTimeoutMs <= 0 {
		return fmt.Errorf("target.focus_timeout_ms must be positive, got %d", c.Target.FocusTimeoutMs)
	}
	if c.Target.PollIntervalMs <= 0 {
		return fmt.Errorf("target.poll_interval_ms must be positive, got %d", c.Target.PollIntervalMs)
	}
	if c.Drawing.EllipseSteps < 3 {
		return fmt.Errorf("drawing.ellipse_steps must be at least 3, got %d", c.Drawing.EllipseSteps)
	}
	if c.Server.QueueSize < 1 {
		return fmt.Errorf("server.queue_size must be at least 1, got %d", c.Server.QueueSize)
	}
	if c.Server.CommandSeconds <= 0 {
		return fmt.Errorf("server.command_seconds must be positive, got %d", c.Server.CommandSeconds)
	}
	if write := time.Duration(c.Server.WriteTimeout) * time.Second; write > 0 && write < c.Server.WorstCaseWait() {
		return fmt.Errorf("server.write_timeout %s is shorter than a full queue needs (%d queued + 1 running at %ds each = %s); raise write_timeout or lower queue_size",
			write, c.Server.QueueSize, c.Server.CommandSeconds, c.Server.WorstCaseWait())
	}
	switch c.Storage.Type {
	case "memory", "sqlite", "postgres", "redis":
	default:
		return fmt.Errorf("unsupported storage type: %s", c.Storage.Type)
	}
	switch c.Display.Provider {
	case "", "x11", "robot", "recorder":
	default:
		return fmt.Errorf("unsupported display provider: %s", c.Display.Provider)
	}
	return nil
}

// FocusTimeout returns the window discovery timeout
func (t TargetConfig) FocusTimeout() time.Duration {
	return Ms(t.FocusTimeoutMs)
}

// PollInterval returns the window discovery poll interval
func (t TargetConfig) PollInterval() time.Duration {
	return Ms(t.PollIntervalMs)
}

// Ms converts a millisecond setting into a duration
func Ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// SaveConfig writes the configuration as YAML
func (c *Config) SaveConfig(configPath string) error {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to close YAML encoder: %w", err)
	}

	if err := os.WriteFile(configPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
