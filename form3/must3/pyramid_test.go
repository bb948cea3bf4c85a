package must3

import (
	"errors"
	"testing"

	"github.com/soypat/scene3d"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestPyramidPanics(t *testing.T) {
	s := scene3d.New()
	defer func() {
		a := recover()
		err, ok := a.(error)
		if !ok || !errors.Is(err, ErrInvalidOrientation) {
			t.Errorf("expected ErrInvalidOrientation panic, got %v", a)
		}
		if s.Count() != 0 {
			t.Errorf("pyramid added %d triangles before panicking", s.Count())
		}
	}()
	Pyramid(s, r3.Vec{}, 1, 1, "sideways")
}

func TestForwardBaseOrder(t *testing.T) {
	s := scene3d.New()
	Pyramid(s, r3.Vec{}, 2, 1, Forward)
	base := s.Triangles()[0]
	want := scene3d.Triangle{{X: -1, Z: -1}, {X: -1, Z: 1}, {X: 1, Z: -1}}
	if base != want {
		t.Errorf("got base triangle %v, want %v", base, want)
	}
}
