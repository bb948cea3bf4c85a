package must3

import (
	"github.com/soypat/scene3d"
	"gonum.org/v1/gonum/spatial/r3"
)

// fractalDirs are the directions child cubes are offset in, in the order
// they are added.
var fractalDirs = [6]r3.Vec{
	{X: 1}, {X: -1},
	{Y: 1}, {Y: -1},
	{Z: 1}, {Z: -1},
}

// Fractal adds a recursive cube fractal to the scene. A cube of side size is
// centered at origin and, while depth remains, six cubes of half the size are
// grown from the centers of its faces, each with depth-1 levels of their own.
// A depth of zero adds nothing.
//
// The number of triangles added is 24*(6^depth-1)/5.
func Fractal(s *scene3d.Scene, origin r3.Vec, size float64, depth int) {
	if depth < 0 {
		panic("depth < 0")
	}
	fractal(s, origin, size, depth)
}

func fractal(s *scene3d.Scene, origin r3.Vec, size float64, depth int) {
	if depth == 0 {
		return
	}
	Cuboid(s, origin, size, size, size)
	half := size / 2
	for _, dir := range fractalDirs {
		fractal(s, r3.Add(origin, r3.Scale(half, dir)), half, depth-1)
	}
}
