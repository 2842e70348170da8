// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/user/c63/pkg/c63"
	"github.com/user/c63/pkg/encoder"
	"github.com/user/c63/pkg/orchestrator"
	"github.com/user/c63/pkg/ports"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Output containers.
const (
	ContainerC63 = "c63"
	ContainerMP4 = "mp4"
)

// Config represents the full configuration for an encode run.
type Config struct {
	// Input/Output
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Frames int    `yaml:"frames"`

	// Encoding
	QP               int `yaml:"qp"`
	SearchRange      int `yaml:"search_range"`
	KeyframeInterval int `yaml:"keyframe_interval"`

	// Container is "c63" or "mp4"; empty picks one from the output extension.
	Container string `yaml:"container"`
	FPS       int    `yaml:"fps"`

	// Extra outputs
	Recon    string `yaml:"recon"`
	Summary  string `yaml:"summary"`
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`

	// Logging
	LogLevel string `yaml:"log_level"`
	Quiet    bool   `yaml:"quiet"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	opts := encoder.DefaultOptions()
	return Config{
		QP:               opts.QP,
		SearchRange:      opts.SearchRange,
		KeyframeInterval: opts.KeyframeInterval,

		FPS: 30,

		DebugDir: "./debug",
		LogLevel: "info",
	}
}

// LoadFromFile loads configuration from a YAML file. Keys missing from the
// file keep their default values.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the configuration can drive an encode run.
func (c Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input path is required", ErrInvalidConfig)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output path is required", ErrInvalidConfig)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: width and height must be positive, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Width > c63.MaxDimension || c.Height > c63.MaxDimension {
		return fmt.Errorf("%w: %dx%d exceeds the %d pixel limit", ErrInvalidConfig, c.Width, c.Height, c63.MaxDimension)
	}
	if c.Frames < 0 {
		return fmt.Errorf("%w: frame limit %d is negative", ErrInvalidConfig, c.Frames)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps %d must be positive", ErrInvalidConfig, c.FPS)
	}
	switch c.Container {
	case "", ContainerC63, ContainerMP4:
	default:
		return fmt.Errorf("%w: unknown container %q", ErrInvalidConfig, c.Container)
	}
	if _, ok := ports.LookupLogLevel(c.LogLevel); !ok {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.Debug && c.DebugDir == "" {
		return fmt.Errorf("%w: debug output needs a directory", ErrInvalidConfig)
	}
	if err := c.EncoderOptions().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// ResolvedContainer returns the configured container, or the one implied by
// the output extension when none is set.
func (c Config) ResolvedContainer() string {
	if c.Container != "" {
		return c.Container
	}
	if strings.EqualFold(filepath.Ext(c.Output), ".mp4") {
		return ContainerMP4
	}
	return ContainerC63
}

// EncoderOptions returns the encoder tunables.
func (c Config) EncoderOptions() encoder.Options {
	return encoder.Options{
		QP:               c.QP,
		SearchRange:      c.SearchRange,
		KeyframeInterval: c.KeyframeInterval,
	}
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig(header ports.StreamHeader) orchestrator.Config {
	cfg := orchestrator.DefaultConfig()
	cfg.InputPath = c.Input
	cfg.OutputPath = c.Output
	cfg.MaxFrames = c.Frames
	cfg.Header = header
	return cfg
}
