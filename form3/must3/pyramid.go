package must3

import (
	"errors"
	"fmt"

	"github.com/soypat/scene3d"
	"gonum.org/v1/gonum/spatial/r3"
)

// Orientation is the direction a pyramid's apex points to.
type Orientation string

const (
	Up       Orientation = "up"       // +z
	Down     Orientation = "down"     // -z
	Left     Orientation = "left"     // -x
	Right    Orientation = "right"    // +x
	Forward  Orientation = "forward"  // +y
	Backward Orientation = "backward" // -y
)

// ErrInvalidOrientation is the error a pyramid with an unknown
// orientation panics with.
var ErrInvalidOrientation = errors.New("invalid orientation")

// Valid reports whether o is one of the six known orientations.
func (o Orientation) Valid() bool {
	switch o {
	case Up, Down, Left, Right, Forward, Backward:
		return true
	}
	return false
}

// apex returns the unit direction of the pyramid apex.
func (o Orientation) apex() r3.Vec {
	switch o {
	case Up:
		return r3.Vec{Z: 1}
	case Down:
		return r3.Vec{Z: -1}
	case Forward:
		return r3.Vec{Y: 1}
	case Backward:
		return r3.Vec{Y: -1}
	case Right:
		return r3.Vec{X: 1}
	case Left:
		return r3.Vec{X: -1}
	}
	panic(fmt.Errorf("%w: %q", ErrInvalidOrientation, string(o)))
}

// Pyramid adds a square based pyramid to the scene. origin is the center of
// the base, width the side length of the base and height the distance from
// the base to the apex along the direction given by o.
// Pyramid panics with an error wrapping ErrInvalidOrientation
// before adding any triangle if o is not a known orientation.
func Pyramid(s *scene3d.Scene, origin r3.Vec, width, height float64, o Orientation) {
	dir := o.apex()
	hw := width / 2
	var a, b, c, d r3.Vec
	switch o {
	case Up, Down:
		a = r3.Add(origin, r3.Vec{X: -hw, Y: -hw})
		b = r3.Add(origin, r3.Vec{X: -hw, Y: hw})
		c = r3.Add(origin, r3.Vec{X: hw, Y: hw})
		d = r3.Add(origin, r3.Vec{X: hw, Y: -hw})
	case Left, Right:
		a = r3.Add(origin, r3.Vec{Y: -hw, Z: -hw})
		b = r3.Add(origin, r3.Vec{Y: hw, Z: -hw})
		c = r3.Add(origin, r3.Vec{Y: hw, Z: hw})
		d = r3.Add(origin, r3.Vec{Y: -hw, Z: hw})
	case Forward, Backward:
		// Corners c and d are swapped relative to the other bases.
		a = r3.Add(origin, r3.Vec{X: -hw, Z: -hw})
		b = r3.Add(origin, r3.Vec{X: -hw, Z: hw})
		c = r3.Add(origin, r3.Vec{X: hw, Z: -hw})
		d = r3.Add(origin, r3.Vec{X: hw, Z: hw})
	}
	top := r3.Add(origin, r3.Scale(height, dir))

	Quadrilateral(s, a, b, c, d)
	s.Add(scene3d.Triangle{a, b, top})
	s.Add(scene3d.Triangle{b, c, top})
	s.Add(scene3d.Triangle{c, d, top})
	s.Add(scene3d.Triangle{d, a, top})
}
