package main

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/scene3d"
	"github.com/soypat/scene3d/internal/config"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestPresetCounts(t *testing.T) {
	for _, test := range []struct {
		preset string
		want   int
	}{
		// depths 1 through 6: sum of 24*(6^d-1)/5.
		{"fractals", 24 + 168 + 1032 + 6216 + 37320 + 223944},
		// increments 15, 10, 5, 36, 30, 20, 90, 60, 45.
		{"spheres", 1152 + 2592 + 10368 + 200 + 288 + 648 + 32 + 72 + 128},
	} {
		t.Run(test.preset, func(t *testing.T) {
			s, err := buildScene(config.SceneConfig{Preset: test.preset})
			if err != nil {
				t.Fatal(err)
			}
			if s.Count() != test.want {
				t.Errorf("preset %s has %d triangles, want %d", test.preset, s.Count(), test.want)
			}
		})
	}
}

func TestUnknownPreset(t *testing.T) {
	_, err := buildScene(config.SceneConfig{Preset: "teapots"})
	if err == nil {
		t.Fatal("expected error for unknown preset")
	}
	if !strings.Contains(err.Error(), "fractals") {
		t.Errorf("error %q should list available presets", err)
	}
}

func TestBuildSceneSkipsInvalid(t *testing.T) {
	s, err := buildScene(config.SceneConfig{
		Shapes: []config.ShapeConfig{
			{Kind: kindCuboid, Width: 1, Height: 1, Depth: 1},
			{Kind: kindPyramid, Width: 1, Height: 1, Orientation: "sideways"},
			{Kind: "torus"},
			{Kind: kindQuadrilateral, Corners: []config.Vec{{0, 0, 0}, {1, 0, 0}}},
			{Kind: kindSphere, Radius: 1, Increment: 0},
			{Kind: kindPyramid, Width: 1, Height: 1, Orientation: "up"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if s.Count() != 24+8 {
		t.Errorf("got %d triangles, want %d", s.Count(), 24+8)
	}
}

func TestAddShape(t *testing.T) {
	for _, test := range []struct {
		shape config.ShapeConfig
		want  int
	}{
		{config.ShapeConfig{Kind: kindQuadrilateral, Corners: []config.Vec{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}}, 4},
		{config.ShapeConfig{Kind: kindCuboid, Origin: config.Vec{1, 2, 3}, Width: 1, Height: 2, Depth: 3}, 24},
		{config.ShapeConfig{Kind: kindPyramid, Width: 1, Height: 2, Orientation: "forward"}, 8},
		{config.ShapeConfig{Kind: kindSphere, Radius: 10, Increment: 45}, 128},
		{config.ShapeConfig{Kind: kindFractal, Size: 10, Levels: 2}, 168},
		{config.ShapeConfig{Kind: kindFractal, Size: 10, Levels: 0}, 0},
	} {
		s := scene3d.New()
		if err := addShape(s, test.shape); err != nil {
			t.Errorf("%s: %v", test.shape.Kind, err)
			continue
		}
		if s.Count() != test.want {
			t.Errorf("%s: got %d triangles, want %d", test.shape.Kind, s.Count(), test.want)
		}
	}
}

func TestWriteScene(t *testing.T) {
	dir := t.TempDir()
	s, err := buildScene(config.SceneConfig{Preset: "spheres"})
	if err != nil {
		t.Fatal(err)
	}
	binPath := filepath.Join(dir, "spheres.stl")
	err = writeScene(s, config.OutputConfig{Path: binPath, Format: config.FormatBinary})
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(binPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 84+50*s.Count() {
		t.Errorf("binary file is %d bytes, want %d", len(data), 84+50*s.Count())
	}
	if n := binary.LittleEndian.Uint32(data[80:]); int(n) != s.Count() {
		t.Errorf("declared %d triangles, want %d", n, s.Count())
	}

	small := scene3d.New()
	if err := addShape(small, config.ShapeConfig{Kind: kindCuboid, Width: 1, Height: 1, Depth: 1}); err != nil {
		t.Fatal(err)
	}
	if err := addShape(small, config.ShapeConfig{Kind: kindPyramid, Origin: config.Vec{5, 0, 0}, Width: 1, Height: 1, Orientation: "up"}); err != nil {
		t.Fatal(err)
	}
	textPath := filepath.Join(dir, "small.stl")
	err = writeScene(small, config.OutputConfig{Path: textPath, Format: config.FormatText, Reverse: true})
	if err != nil {
		t.Fatal(err)
	}
	text, err := os.ReadFile(textPath)
	if err != nil {
		t.Fatal(err)
	}
	// Reversed output starts with the pyramid's last side, which ends at the apex.
	lines := strings.Split(string(text), "\n")
	if lines[5] != "      vertex 5.00000 0.00000 1.00000" {
		t.Errorf("unexpected first facet vertex line %q", lines[5])
	}
	apex := r3.Vec{X: 5, Y: 0, Z: 1}
	if last := small.Triangles()[small.Count()-1]; last[2] != apex {
		t.Errorf("reversed write reordered the scene, last triangle %v", last)
	}

	pla := filepath.Join(dir, "pla.stl")
	err = writeScene(small, config.OutputConfig{Path: pla, Format: config.FormatText, Material: "pla"})
	if err != nil {
		t.Fatal(err)
	}
	text, err = os.ReadFile(pla)
	if err != nil {
		t.Fatal(err)
	}
	// Material scaling leaves the caller's scene untouched.
	if last := small.Triangles()[small.Count()-1]; last[2] != apex {
		t.Errorf("writeScene modified the scene: %v", last)
	}
	if strings.Contains(string(text), "vertex 5.00000 0.00000 1.00000") {
		t.Error("material compensation not applied")
	}
	err = writeScene(small, config.OutputConfig{Path: pla, Format: config.FormatBinary, Material: "wood"})
	if err == nil {
		t.Error("expected error for unknown material")
	}

	err = writeScene(small, config.OutputConfig{Path: filepath.Join(dir, "x.obj"), Format: "obj"})
	if err == nil {
		t.Error("expected error for unknown format")
	}
}
