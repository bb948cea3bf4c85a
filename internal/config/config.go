// Package config handles loading scene generation settings.
package config

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Output formats.
const (
	FormatBinary = "binary"
	FormatText   = "text"
)

// Config holds everything needed to build and write a scene.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Scene   SceneConfig   `yaml:"scene"`
}

// OutputConfig holds where and how the scene is written.
type OutputConfig struct {
	Path    string `yaml:"path"`
	Format  string `yaml:"format"`            // binary or text
	Preview string `yaml:"preview,omitempty"` // optional PNG preview path
	// Reverse writes triangles last-added first.
	Reverse bool `yaml:"reverse,omitempty"`
	// Material enlarges the scene to compensate print shrinkage ("pla", "abs").
	Material string `yaml:"material,omitempty"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file,omitempty"`
}

// SceneConfig describes the scene contents. Shapes from a named preset
// are added before the listed shapes.
type SceneConfig struct {
	Preset string        `yaml:"preset,omitempty"`
	Shapes []ShapeConfig `yaml:"shapes,omitempty"`
}

// ShapeConfig describes a single shape. Which fields are used depends on Kind:
//
//	quadrilateral: corners
//	cuboid:        origin, width, height, depth
//	pyramid:       origin, width, height, orientation
//	sphere:        origin, radius, increment
//	fractal:       origin, size, levels
type ShapeConfig struct {
	Kind        string  `yaml:"kind"`
	Origin      Vec     `yaml:"origin,flow"`
	Corners     []Vec   `yaml:"corners,flow,omitempty"`
	Width       float64 `yaml:"width,omitempty"`
	Height      float64 `yaml:"height,omitempty"`
	Depth       float64 `yaml:"depth,omitempty"`
	Radius      float64 `yaml:"radius,omitempty"`
	Increment   float64 `yaml:"increment,omitempty"`
	Size        float64 `yaml:"size,omitempty"`
	Levels      int     `yaml:"levels,omitempty"`
	Orientation string  `yaml:"orientation,omitempty"`
}

// Vec is a point written as [x, y, z].
type Vec [3]float64

// R3 converts v to a gonum vector.
func (v Vec) R3() r3.Vec { return r3.Vec{X: v[0], Y: v[1], Z: v[2]} }

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Path:   "scene.stl",
			Format: FormatBinary,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks settings that cannot be checked while building the scene.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatBinary, FormatText:
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	if c.Output.Path == "" {
		return fmt.Errorf("empty output path")
	}
	return nil
}
