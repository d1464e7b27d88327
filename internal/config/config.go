package config

import (
	"fmt"
	"log/slog"
	"time"
)

// Config is the demo command's configuration.
type Config struct {
	// Display is exported as DISPLAY only when the environment has none.
	Display string `yaml:"display"`
	// GLESVersion selects the OpenGL ES major version: 1 or 2.
	GLESVersion int `yaml:"gles_version"`
	// Frames stops the run loop after this many presents; 0 runs until
	// interrupted.
	Frames int `yaml:"frames"`
	// FrameInterval is the pause between frames.
	FrameInterval time.Duration `yaml:"frame_interval"`
	// ClearColor is the RGBA color each frame is cleared to, components in [0,1].
	ClearColor []float32 `yaml:"clear_color,flow"`
	// QuitOnKey ends the run loop on the first key press.
	// Default: true
	QuitOnKey *bool `yaml:"quit_on_key"`
	// LogLevel is one of: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// ValidationError points at the offending config key.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	quitOnKey := true
	return &Config{
		Display:       ":0",
		GLESVersion:   2,
		Frames:        0,
		FrameInterval: 16 * time.Millisecond,
		ClearColor:    []float32{0.12, 0.16, 0.20, 1.0},
		QuitOnKey:     &quitOnKey,
		LogLevel:      "info",
	}
}

// GetQuitOnKey returns the effective value, defaulting to true.
func (c *Config) GetQuitOnKey() bool {
	if c == nil || c.QuitOnKey == nil {
		return true
	}
	return *c.QuitOnKey
}

// SlogLevel maps LogLevel to a slog.Level. Unknown values map to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
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

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.GLESVersion != 1 && c.GLESVersion != 2 {
		return &ValidationError{Path: "gles_version", Err: fmt.Errorf("gles_version must be 1 or 2")}
	}
	if c.Frames < 0 {
		return &ValidationError{Path: "frames", Err: fmt.Errorf("frames must be >= 0")}
	}
	if c.FrameInterval < 0 {
		return &ValidationError{Path: "frame_interval", Err: fmt.Errorf("frame_interval must be >= 0")}
	}
	if len(c.ClearColor) != 4 {
		return &ValidationError{Path: "clear_color", Err: fmt.Errorf("clear_color must have 4 components (r, g, b, a)")}
	}
	for i, v := range c.ClearColor {
		if v < 0 || v > 1 {
			return &ValidationError{Path: fmt.Sprintf("clear_color[%d]", i), Err: fmt.Errorf("component must be within [0, 1]")}
		}
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warn, error")}
	}
	return nil
}
