// Package config loads the optional JSON configuration shared by the
// conversion and plotting tools. All fields are pointers so partial files
// are safe: anything omitted keeps its default.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultOutputDir is where outputs land when neither flag, environment nor
// config file say otherwise.
const DefaultOutputDir = "/app/visualize-outputs"

// maxConfigSize bounds how much of a config file will be read.
const maxConfigSize = 1 << 20

// Config holds tunables for both entry points.
type Config struct {
	// Conversion settings
	OutputDir *string `json:"output_dir,omitempty"`
	Variant   *string `json:"variant,omitempty"`

	// Plot settings
	PlotTitle           *string  `json:"plot_title,omitempty"`
	DataMin             *float64 `json:"datamin,omitempty"`
	DataMax             *float64 `json:"datamax,omitempty"`
	Aspect              *float64 `json:"aspect,omitempty"`
	DrawColorbar        *bool    `json:"draw_colorbar,omitempty"`
	ColorbarOrientation *string  `json:"colorbar_orientation,omitempty"`
}

// Load reads a Config from a JSON file. An empty path returns the default
// configuration. Fields omitted from the file retain their defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}
	fi, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat config file: %w", err)
	}
	if fi.Size() > maxConfigSize {
		return nil, fmt.Errorf("config file %s too large (%d bytes)", cleanPath, fi.Size())
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", cleanPath, err)
	}
	return cfg, nil
}

// GetOutputDir returns the configured output root or the default.
func (c *Config) GetOutputDir() string {
	if c.OutputDir != nil {
		return *c.OutputDir
	}
	return DefaultOutputDir
}

// GetVariant returns the configured discovery variant name or the default
// subdirectory layout.
func (c *Config) GetVariant() string {
	if c.Variant != nil {
		return *c.Variant
	}
	return "subdir"
}

// GetPlotTitle returns the configured plot title or empty.
func (c *Config) GetPlotTitle() string {
	if c.PlotTitle != nil {
		return *c.PlotTitle
	}
	return ""
}

// GetDataMin returns the fixed amplitude minimum, or nil for auto stretch.
func (c *Config) GetDataMin() *float64 { return c.DataMin }

// GetDataMax returns the fixed amplitude maximum, or nil for auto stretch.
func (c *Config) GetDataMax() *float64 { return c.DataMax }

// GetAspect returns the figure aspect, defaulting to 1.
func (c *Config) GetAspect() float64 {
	if c.Aspect != nil {
		return *c.Aspect
	}
	return 1
}

// GetDrawColorbar reports whether quicklooks get colorbars.
func (c *Config) GetDrawColorbar() bool {
	if c.DrawColorbar != nil {
		return *c.DrawColorbar
	}
	return false
}

// GetColorbarOrientation returns "horizontal" unless configured otherwise.
func (c *Config) GetColorbarOrientation() string {
	if c.ColorbarOrientation != nil {
		return *c.ColorbarOrientation
	}
	return "horizontal"
}
