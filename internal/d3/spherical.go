package d3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// roundBias is added before flooring so ties at the fifth decimal
// always go up.
const roundBias = 0.50000001

// Spherical converts spherical coordinates to a cartesian point using the
// physics convention: theta is the azimuth measured in the XY plane from +X
// and phi is the polar angle measured from +Z. Both angles are in degrees.
func Spherical(radius, thetaDeg, phiDeg float64) r3.Vec {
	theta := d2r(thetaDeg)
	phi := d2r(phiDeg)
	sinPhi := math.Sin(phi)
	return r3.Vec{
		X: radius * sinPhi * math.Cos(theta),
		Y: radius * sinPhi * math.Sin(theta),
		Z: radius * math.Cos(phi),
	}
}

// Round4 rounds v to the fourth decimal place, half up.
func Round4(v float64) float64 {
	return math.Floor(v*10000+roundBias) / 10000
}

// Round4Elem applies Round4 to each component of v.
func Round4Elem(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: Round4(v.X),
		Y: Round4(v.Y),
		Z: Round4(v.Z),
	}
}

func d2r(degrees float64) float64 { return degrees * math.Pi / 180. }
