package must3

import (
	"math"

	"github.com/soypat/scene3d"
	"github.com/soypat/scene3d/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Sphere adds a UV-sphere centered at origin to the scene.
// The polar angle phi sweeps (0, 180] and the azimuth theta sweeps [0, 360),
// both in steps of increment degrees. Each cell between consecutive angles is
// added as a Quadrilateral. Vertex components are rounded to four decimals
// before being offset by origin.
//
// Smaller increments give smoother spheres: the triangle count is
// 4*floor(180/increment)*ceil(360/increment).
func Sphere(s *scene3d.Scene, origin r3.Vec, radius, increment float64) {
	if !(increment > 0) || math.IsInf(increment, 0) {
		panic("increment must be a positive finite number of degrees")
	}
	point := func(theta, phi float64) r3.Vec {
		return r3.Add(d3.Round4Elem(d3.Spherical(radius, theta, phi)), origin)
	}
	for i := 1; ; i++ {
		phi := float64(i) * increment
		if phi > 180 {
			break
		}
		for j := 0; ; j++ {
			theta := float64(j) * increment
			if theta >= 360 {
				break
			}
			a := point(theta, phi)
			b := point(theta, phi-increment)
			c := point(theta-increment, phi)
			d := point(theta-increment, phi-increment)
			Quadrilateral(s, a, b, c, d)
		}
	}
}
