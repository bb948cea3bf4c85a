// Package must3 adds shapes to a scene and panics when given a parameter
// the shape cannot be built with. See the form3 package for the
// error-returning versions.
package must3

import (
	"github.com/soypat/scene3d"
	"gonum.org/v1/gonum/spatial/r3"
)

// Quadrilateral adds the quadrilateral with corners a, b, c and d to the
// scene as the four triangles (a,b,c), (b,c,d), (a,c,d) and (a,b,d).
// The triangles overlap; both diagonal splits of the quad are emitted.
func Quadrilateral(s *scene3d.Scene, a, b, c, d r3.Vec) {
	s.Add(scene3d.Triangle{a, b, c})
	s.Add(scene3d.Triangle{b, c, d})
	s.Add(scene3d.Triangle{a, c, d})
	s.Add(scene3d.Triangle{a, b, d})
}

// Cuboid adds an axis aligned box centered at origin with
// width along x, height along y and depth along z.
// The front face sits at -z, the top face at +y and the right face at +x.
func Cuboid(s *scene3d.Scene, origin r3.Vec, width, height, depth float64) {
	hw, hh, hd := width/2, height/2, depth/2
	corner := func(sx, sy, sz float64) r3.Vec {
		return r3.Vec{X: origin.X + sx*hw, Y: origin.Y + sy*hh, Z: origin.Z + sz*hd}
	}
	var (
		frontTopLeft     = corner(-1, 1, -1)
		frontTopRight    = corner(1, 1, -1)
		frontBottomRight = corner(1, -1, -1)
		frontBottomLeft  = corner(-1, -1, -1)
		backTopLeft      = corner(-1, 1, 1)
		backTopRight     = corner(1, 1, 1)
		backBottomRight  = corner(1, -1, 1)
		backBottomLeft   = corner(-1, -1, 1)
	)
	// front, back, top, bottom, left, right.
	Quadrilateral(s, frontTopLeft, frontTopRight, frontBottomRight, frontBottomLeft)
	Quadrilateral(s, backTopRight, backTopLeft, backBottomLeft, backBottomRight)
	Quadrilateral(s, backTopLeft, frontTopLeft, frontTopRight, backTopRight)
	Quadrilateral(s, backBottomRight, frontBottomRight, frontBottomLeft, backBottomLeft)
	Quadrilateral(s, backTopLeft, backBottomLeft, frontBottomLeft, frontTopLeft)
	Quadrilateral(s, frontTopRight, frontBottomRight, backBottomRight, backTopRight)
}
