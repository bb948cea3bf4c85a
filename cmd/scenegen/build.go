package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/soypat/scene3d"
	"github.com/soypat/scene3d/form3"
	"github.com/soypat/scene3d/helpers/matter"
	"github.com/soypat/scene3d/internal/config"
	"github.com/soypat/scene3d/internal/logger"
	"github.com/soypat/scene3d/render"
)

// Shape kinds accepted in scene files.
const (
	kindQuadrilateral = "quadrilateral"
	kindCuboid        = "cuboid"
	kindPyramid       = "pyramid"
	kindSphere        = "sphere"
	kindFractal       = "fractal"
)

// buildScene creates a scene with the preset shapes followed by the listed
// shapes. Shapes that fail to build are logged and skipped.
func buildScene(cfg config.SceneConfig) (*scene3d.Scene, error) {
	shapes := cfg.Shapes
	if cfg.Preset != "" {
		preset, err := presetShapes(cfg.Preset)
		if err != nil {
			return nil, err
		}
		shapes = append(preset, shapes...)
	}
	s := scene3d.New()
	for i, shape := range shapes {
		before := s.Count()
		if err := addShape(s, shape); err != nil {
			logger.Warn("skipping shape", zap.Int("index", i), zap.String("kind", shape.Kind), zap.Error(err))
			continue
		}
		logger.Debug("added shape",
			zap.Int("index", i),
			zap.String("kind", shape.Kind),
			zap.Float64s("origin", shape.Origin[:]),
			logger.Triangles(s.Count()-before),
		)
	}
	return s, nil
}

// addShape adds a single configured shape to s.
func addShape(s *scene3d.Scene, shape config.ShapeConfig) error {
	origin := shape.Origin.R3()
	switch shape.Kind {
	case kindQuadrilateral:
		c := shape.Corners
		if len(c) != 4 {
			return fmt.Errorf("quadrilateral needs 4 corners, got %d", len(c))
		}
		return form3.Quadrilateral(s, c[0].R3(), c[1].R3(), c[2].R3(), c[3].R3())
	case kindCuboid:
		return form3.Cuboid(s, origin, shape.Width, shape.Height, shape.Depth)
	case kindPyramid:
		o, err := form3.ParseOrientation(shape.Orientation)
		if err != nil {
			return err
		}
		return form3.Pyramid(s, origin, shape.Width, shape.Height, o)
	case kindSphere:
		return form3.Sphere(s, origin, shape.Radius, shape.Increment)
	case kindFractal:
		return form3.Fractal(s, origin, shape.Size, shape.Levels)
	}
	return fmt.Errorf("unknown shape kind %q", shape.Kind)
}

// writeScene writes s to the configured output and renders the preview if
// one was requested. s is never modified.
func writeScene(s *scene3d.Scene, out config.OutputConfig) error {
	if out.Material != "" {
		m, err := matter.ByName(out.Material)
		if err != nil {
			return err
		}
		s = m.Scale(s)
		defer s.Destroy()
		logger.Debug("compensating shrinkage", zap.String("material", out.Material), zap.Float64("scale", m.ScaleFactor()))
	}
	if out.Reverse {
		rev := scene3d.New()
		for _, t := range s.Triangles() {
			rev.Add(t)
		}
		rev.Reverse()
		s = rev
		defer rev.Destroy()
	}
	var err error
	switch out.Format {
	case config.FormatBinary:
		err = render.CreateSTL(out.Path, s.NewReader())
	case config.FormatText:
		err = render.CreateTextSTL(out.Path, s.NewReader())
	default:
		err = fmt.Errorf("unknown output format %q", out.Format)
	}
	if err != nil {
		return err
	}
	info, err := os.Stat(out.Path)
	if err != nil {
		return err
	}
	logger.Info("wrote scene",
		zap.String("path", out.Path),
		zap.String("format", out.Format),
		logger.Triangles(s.Count()),
		zap.Int64("bytes", info.Size()),
	)
	if out.Preview == "" {
		return nil
	}
	if err := render.Preview(out.Path, out.Preview, render.DefaultView); err != nil {
		return fmt.Errorf("rendering preview: %w", err)
	}
	logger.Info("wrote preview", zap.String("path", out.Preview))
	return nil
}
