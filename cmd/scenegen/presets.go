package main

import (
	"fmt"
	"sort"

	"github.com/soypat/scene3d/internal/config"
)

// presets are named scenes that can be built without a scene file.
var presets = map[string]func() []config.ShapeConfig{
	"fractals": fractalsPreset,
	"spheres":  spheresPreset,
}

func presetShapes(name string) ([]config.ShapeConfig, error) {
	preset, ok := presets[name]
	if !ok {
		names := make([]string, 0, len(presets))
		for k := range presets {
			names = append(names, k)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unknown preset %q, available presets: %v", name, names)
	}
	return preset(), nil
}

// fractalsPreset lays out six fractals of increasing depth on a 3x2 grid.
func fractalsPreset() []config.ShapeConfig {
	var shapes []config.ShapeConfig
	levels := 1
	for i := 1; i >= 0; i-- {
		for j := 0; j < 3; j++ {
			shapes = append(shapes, config.ShapeConfig{
				Kind:   kindFractal,
				Origin: config.Vec{float64(j * 100), float64(i * 100), 0},
				Size:   50,
				Levels: levels,
			})
			levels++
		}
	}
	return shapes
}

// spheresPreset lays out nine spheres of varying smoothness on a 3x3 grid.
func spheresPreset() []config.ShapeConfig {
	increments := [9]float64{15, 10, 5, 36, 30, 20, 90, 60, 45}
	var shapes []config.ShapeConfig
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			shapes = append(shapes, config.ShapeConfig{
				Kind:      kindSphere,
				Origin:    config.Vec{float64(j * 100), float64(i * 100), 0},
				Radius:    45,
				Increment: increments[i*3+j],
			})
		}
	}
	return shapes
}
