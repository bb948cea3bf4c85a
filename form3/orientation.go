package form3

import (
	"fmt"

	"github.com/soypat/scene3d/form3/must3"
)

// Orientation is the direction a pyramid points to.
type Orientation = must3.Orientation

const (
	Up       = must3.Up
	Down     = must3.Down
	Left     = must3.Left
	Right    = must3.Right
	Forward  = must3.Forward
	Backward = must3.Backward
)

// ErrInvalidOrientation is wrapped by errors for unknown pyramid orientations.
var ErrInvalidOrientation = must3.ErrInvalidOrientation

// ParseOrientation returns the Orientation named by s. Names are
// case sensitive: "up", "down", "left", "right", "forward" or "backward".
func ParseOrientation(s string) (Orientation, error) {
	o := Orientation(s)
	if !o.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidOrientation, s)
	}
	return o, nil
}
