// Package config loads the optional YAML settings file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ingyamilmolinar/processp/core/model"
	"gopkg.in/yaml.v3"
)

const (
	KitSynth   = "synth"
	KitSamples = "samples"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Window struct {
	Scale float64 `yaml:"scale"`
	Title string  `yaml:"title"`
}

type Config struct {
	LogLevel  string            `yaml:"log_level"`
	Kit       string            `yaml:"kit"`
	SampleDir string            `yaml:"sample_dir"`
	Samples   map[string]string `yaml:"samples,omitempty"`
	BPM       int               `yaml:"bpm"`
	Window    Window            `yaml:"window"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		Kit:       KitSynth,
		SampleDir: "samples",
		BPM:       model.DefaultBPM,
		Window: Window{
			Scale: 1,
			Title: "//process-p",
		},
	}
}

// Load reads path over the defaults. An empty path yields the defaults; a
// path that cannot be read is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the program cannot start with. Tempo is not
// checked here; it is clamped when applied.
func (c *Config) Validate() error {
	switch c.Kit {
	case KitSynth, KitSamples:
	default:
		return fmt.Errorf("%w: kit %q is not %q or %q", ErrInvalid, c.Kit, KitSynth, KitSamples)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("%w: window.scale must be positive, got %v", ErrInvalid, c.Window.Scale)
	}
	for id := range c.Samples {
		if !isTrack(id) {
			return fmt.Errorf("%w: samples: unknown track %q", ErrInvalid, id)
		}
	}
	return nil
}

// SampleFiles returns the file for every track, relative to SampleDir.
// Tracks not listed in Samples use <id>.mp3.
func (c *Config) SampleFiles() map[string]string {
	files := make(map[string]string, model.Tracks)
	for _, id := range model.TrackIDs {
		files[id] = id + ".mp3"
		if f, ok := c.Samples[id]; ok {
			files[id] = f
		}
	}
	return files
}

func isTrack(id string) bool {
	for _, t := range model.TrackIDs {
		if t == id {
			return true
		}
	}
	return false
}
