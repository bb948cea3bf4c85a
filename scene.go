// Package scene3d builds triangle mesh scenes that can be written out as STL
// files. Shapes are added to a Scene with the generators in form3 and the
// result is encoded with the render package.
package scene3d

import (
	"io"

	"github.com/soypat/scene3d/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle is a triangle in 3D space. Vertex order is kept as given
// and determines the winding written out to STL files.
type Triangle [3]r3.Vec

// Scene is an append-only collection of triangles. Triangles are stored
// in the order they were added. A Scene is not safe for concurrent use.
type Scene struct {
	triangles []Triangle
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{}
}

// Add appends a copy of t to the scene.
func (s *Scene) Add(t Triangle) {
	s.triangles = append(s.triangles, t)
}

// Count returns the number of triangles in the scene.
func (s *Scene) Count() int { return len(s.triangles) }

// Triangles returns the scene's triangles in stored order.
// The returned slice must not be modified.
func (s *Scene) Triangles() []Triangle { return s.triangles }

// Destroy releases all triangles held by the scene. The scene
// should not be used after calling Destroy.
func (s *Scene) Destroy() {
	s.triangles = nil
}

// Reverse reverses the stored triangle order in place. Scenes built by
// prepending triangles instead of appending them serialize in this order.
func (s *Scene) Reverse() {
	t := s.triangles
	for i, j := 0, len(t)-1; i < j; i, j = i+1, j-1 {
		t[i], t[j] = t[j], t[i]
	}
}

// Bounds returns the axis aligned bounding box of all vertices in the scene.
// The box is empty if the scene has no triangles.
func (s *Scene) Bounds() d3.Box {
	bb := d3.EmptyBox()
	for _, t := range s.triangles {
		bb = bb.Include(t[0]).Include(t[1]).Include(t[2])
	}
	return bb
}

// NewReader returns a Reader positioned at the first triangle of the scene.
func (s *Scene) NewReader() *Reader {
	return &Reader{buf: s.triangles}
}

// Reader drains a scene's triangles in stored order.
type Reader struct {
	buf []Triangle
}

// ReadTriangles copies up to len(t) triangles into t and returns the number
// copied. It returns io.EOF once all triangles have been read.
func (r *Reader) ReadTriangles(t []Triangle) (int, error) {
	if len(r.buf) == 0 {
		return 0, io.EOF
	}
	n := copy(t, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}

// Len returns the number of unread triangles.
func (r *Reader) Len() int { return len(r.buf) }
