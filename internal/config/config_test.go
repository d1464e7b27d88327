package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if cfg.GLESVersion != 2 {
		t.Fatalf("expected gles_version 2, got %d", cfg.GLESVersion)
	}
	if !cfg.GetQuitOnKey() {
		t.Fatal("expected quit_on_key default true")
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	res, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Display != ":0" || res.FrameInterval != 16*time.Millisecond {
		t.Fatalf("unexpected defaults: %+v", res)
	}
}

func TestLoadFromPath_EmptyFileUsesDefaults(t *testing.T) {
	res, err := LoadFromPath(writeConfig(t, "# empty\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.LogLevel != "info" {
		t.Fatalf("expected log_level info, got %q", res.LogLevel)
	}
}

func TestLoadFromPath_Overrides(t *testing.T) {
	data := strings.Join([]string{
		"display: \":1\"",
		"gles_version: 1",
		"frames: 120",
		"frame_interval: 33ms",
		"clear_color: [1, 0, 0, 1]",
		"quit_on_key: false",
		"log_level: debug",
		"",
	}, "\n")

	res, err := LoadFromPath(writeConfig(t, data))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Display != ":1" {
		t.Fatalf("display = %q", res.Display)
	}
	if res.GLESVersion != 1 || res.Frames != 120 {
		t.Fatalf("gles_version/frames = %d/%d", res.GLESVersion, res.Frames)
	}
	if res.FrameInterval != 33*time.Millisecond {
		t.Fatalf("frame_interval = %v", res.FrameInterval)
	}
	if len(res.ClearColor) != 4 || res.ClearColor[0] != 1 || res.ClearColor[1] != 0 {
		t.Fatalf("clear_color = %v", res.ClearColor)
	}
	if res.GetQuitOnKey() {
		t.Fatal("expected quit_on_key false")
	}
	if res.SlogLevel().String() != "DEBUG" {
		t.Fatalf("slog level = %v", res.SlogLevel())
	}
}

func TestLoadFromPath_UnknownKey(t *testing.T) {
	if _, err := LoadFromPath(writeConfig(t, "fullscreen: true\n")); err == nil {
		t.Fatal("expected unknown key to be rejected")
	}
}

func TestLoadFromPath_InvalidValues(t *testing.T) {
	tests := []struct {
		data string
		path string
	}{
		{"gles_version: 3\n", "gles_version"},
		{"frames: -1\n", "frames"},
		{"frame_interval: -5ms\n", "frame_interval"},
		{"clear_color: [0, 0, 0]\n", "clear_color"},
		{"clear_color: [0, 2, 0, 1]\n", "clear_color[1]"},
		{"log_level: loud\n", "log_level"},
	}
	for _, tt := range tests {
		_, err := LoadFromPath(writeConfig(t, tt.data))
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%q: expected ValidationError, got %v", tt.data, err)
		}
		if verr.Path != tt.path {
			t.Fatalf("%q: path = %q, want %q", tt.data, verr.Path, tt.path)
		}
	}
}

func TestMarshalRoundTripsDefaults(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	text := string(data)
	for _, want := range []string{"gles_version: 2", "frame_interval: 16ms", "quit_on_key: true"} {
		if !strings.Contains(text, want) {
			t.Fatalf("marshaled config missing %q:\n%s", want, text)
		}
	}

	res, err := LoadFromPath(writeConfig(t, text))
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if res.FrameInterval != 16*time.Millisecond {
		t.Fatalf("frame_interval after reload = %v", res.FrameInterval)
	}
}

func TestSlogLevel(t *testing.T) {
	for level, want := range map[string]string{"debug": "DEBUG", "info": "INFO", "warn": "WARN", "error": "ERROR", "": "INFO"} {
		cfg := &Config{LogLevel: level}
		if got := cfg.SlogLevel().String(); got != want {
			t.Fatalf("SlogLevel(%q) = %s, want %s", level, got, want)
		}
	}
}
