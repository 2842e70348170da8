package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/user/c63/pkg/c63"
	"github.com/user/c63/pkg/encoder"
	"github.com/user/c63/pkg/ports"
	"github.com/user/c63/pkg/yuv"
)

func validConfig() Config {
	cfg := Defaults()
	cfg.Input = "foreman.yuv"
	cfg.Output = "foreman.c63"
	cfg.Width = 352
	cfg.Height = 288
	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if diff := cmp.Diff(encoder.DefaultOptions(), cfg.EncoderOptions()); diff != "" {
		t.Errorf("encoder options mismatch (-want +got):\n%s", diff)
	}
	if cfg.FPS != 30 {
		t.Errorf("FPS = %d, want 30", cfg.FPS)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c63.yaml")
	data := []byte("input: in.yuv\noutput: out.mp4\nwidth: 176\nheight: 144\nqp: 40\nframes: 10\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	want := Defaults()
	want.Input = "in.yuv"
	want.Output = "out.mp4"
	want.Width = 176
	want.Height = 144
	want.QP = 40
	want.Frames = 10
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromFile_Errors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("width: [1, 2"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"missing input", func(c *Config) { c.Input = "" }},
		{"missing output", func(c *Config) { c.Output = "" }},
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"width over limit", func(c *Config) { c.Width = c63.MaxDimension + 1 }},
		{"width wraps u16", func(c *Config) { c.Width = 65552; c.Height = 8 }},
		{"height over limit", func(c *Config) { c.Height = c63.MaxDimension + 1 }},
		{"negative frames", func(c *Config) { c.Frames = -1 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"unknown container", func(c *Config) { c.Container = "avi" }},
		{"unknown log level", func(c *Config) { c.LogLevel = "verbose" }},
		{"debug without dir", func(c *Config) { c.Debug = true; c.DebugDir = "" }},
		{"qp out of range", func(c *Config) { c.QP = 0 }},
		{"search range out of range", func(c *Config) { c.SearchRange = 200 }},
		{"zero keyframe interval", func(c *Config) { c.KeyframeInterval = 0 }},
	}

	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestValidate_MaxDimension(t *testing.T) {
	cfg := validConfig()
	cfg.Width = c63.MaxDimension
	cfg.Height = c63.MaxDimension

	if err := cfg.Validate(); err != nil {
		t.Errorf("size limit rejected: %v", err)
	}
}

func TestValidate_WrapsEncoderError(t *testing.T) {
	cfg := validConfig()
	cfg.QP = 300

	if err := cfg.Validate(); !errors.Is(err, encoder.ErrInvalidOptions) {
		t.Errorf("expected encoder.ErrInvalidOptions, got %v", err)
	}
}

func TestResolvedContainer(t *testing.T) {
	tests := []struct {
		output    string
		container string
		want      string
	}{
		{"out.c63", "", ContainerC63},
		{"out.mp4", "", ContainerMP4},
		{"OUT.MP4", "", ContainerMP4},
		{"out.bin", "", ContainerC63},
		{"out.c63", ContainerMP4, ContainerMP4},
	}

	for _, tt := range tests {
		t.Run(tt.output+"/"+tt.container, func(t *testing.T) {
			cfg := validConfig()
			cfg.Output = tt.output
			cfg.Container = tt.container
			if got := cfg.ResolvedContainer(); got != tt.want {
				t.Errorf("ResolvedContainer() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToOrchestratorConfig(t *testing.T) {
	cfg := validConfig()
	cfg.Frames = 5
	header := ports.StreamHeader{Geometry: yuv.NewGeometry(cfg.Width, cfg.Height)}

	oc := cfg.ToOrchestratorConfig(header)

	if oc.InputPath != "foreman.yuv" || oc.OutputPath != "foreman.c63" {
		t.Errorf("paths = %q, %q", oc.InputPath, oc.OutputPath)
	}
	if oc.MaxFrames != 5 {
		t.Errorf("MaxFrames = %d, want 5", oc.MaxFrames)
	}
	if oc.Header.Geometry != header.Geometry {
		t.Error("header geometry not carried over")
	}
}
