// Package form3 adds shapes to a scene. Invalid parameters are reported as
// errors and leave the scene as it was before the call.
package form3

import (
	"runtime/debug"

	"github.com/soypat/scene3d"
	"github.com/soypat/scene3d/form3/must3"
	"gonum.org/v1/gonum/spatial/r3"
)

// recoverShape converts a shape panic into an error assigned to err.
func recoverShape(err *error) {
	if a := recover(); a != nil {
		*err = &shapeErr{
			panicObj: a,
			stack:    string(debug.Stack()),
		}
	}
}

// Quadrilateral adds the quadrilateral with corners a, b, c and d
// to the scene as four triangles.
func Quadrilateral(s *scene3d.Scene, a, b, c, d r3.Vec) (err error) {
	defer recoverShape(&err)
	if s == nil {
		return ErrMsg("nil scene")
	}
	must3.Quadrilateral(s, a, b, c, d)
	return err
}

// Cuboid adds a box centered at origin with width along x,
// height along y and depth along z. It adds 24 triangles.
func Cuboid(s *scene3d.Scene, origin r3.Vec, width, height, depth float64) (err error) {
	defer recoverShape(&err)
	if s == nil {
		return ErrMsg("nil scene")
	}
	must3.Cuboid(s, origin, width, height, depth)
	return err
}

// Pyramid adds a square based pyramid with base centered at origin pointing
// towards o. It adds 8 triangles, or none and an error wrapping
// ErrInvalidOrientation if o is not a known orientation.
func Pyramid(s *scene3d.Scene, origin r3.Vec, width, height float64, o Orientation) (err error) {
	defer recoverShape(&err)
	if s == nil {
		return ErrMsg("nil scene")
	}
	must3.Pyramid(s, origin, width, height, o)
	return err
}

// Sphere adds a UV-sphere of the given radius centered at origin.
// increment is the angular step in degrees and must be positive.
func Sphere(s *scene3d.Scene, origin r3.Vec, radius, increment float64) (err error) {
	defer recoverShape(&err)
	if s == nil {
		return ErrMsg("nil scene")
	}
	must3.Sphere(s, origin, radius, increment)
	return err
}

// Fractal adds a recursive cube fractal with a center cube of side size
// recursing depth levels. depth must not be negative.
func Fractal(s *scene3d.Scene, origin r3.Vec, size float64, depth int) (err error) {
	defer recoverShape(&err)
	if s == nil {
		return ErrMsg("nil scene")
	}
	must3.Fractal(s, origin, size, depth)
	return err
}
