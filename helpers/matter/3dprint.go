// Package matter compensates printed parts for material behaviour.
package matter

import (
	"fmt"

	"github.com/soypat/scene3d"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// PLA (polylactic acid) is the most widely used plastic filament material in 3D printing.
	PLA = ViscousMaterial{shrink: 0.2e-2} // 0.2% shrinkage
	// ABS shrinks noticeably more than PLA when cooling.
	ABS = ViscousMaterial{shrink: 0.7e-2}
)

// ByName returns the material named name ("pla" or "abs").
func ByName(name string) (ViscousMaterial, error) {
	switch name {
	case "pla":
		return PLA, nil
	case "abs":
		return ABS, nil
	}
	return ViscousMaterial{}, fmt.Errorf("unknown material %q", name)
}

type ViscousMaterial struct {
	// shrink is the thermal contraction shrinkage of a material once the material
	// cools to room temperature after the heated bed is turned off.
	shrink float64
}

// ScaleFactor is the uniform scale applied by Scale.
func (m ViscousMaterial) ScaleFactor() float64 {
	return 1 / (1 - m.shrink)
}

// Scale returns a new scene with every vertex of s scaled about the origin so
// that the printed part shrinks back to the modelled size. s is not modified.
func (m ViscousMaterial) Scale(s *scene3d.Scene) *scene3d.Scene {
	k := m.ScaleFactor()
	scaled := scene3d.New()
	for _, t := range s.Triangles() {
		scaled.Add(scene3d.Triangle{r3.Scale(k, t[0]), r3.Scale(k, t[1]), r3.Scale(k, t[2])})
	}
	return scaled
}
