// Package render writes triangle scenes to STL files and renders
// previews of the written files.
package render

import "github.com/soypat/scene3d"

// Renderer is a source of triangles. ReadTriangles fills t and returns the
// number of triangles read. It returns io.EOF when no triangles remain.
// *scene3d.Reader implements Renderer.
type Renderer interface {
	ReadTriangles(t []scene3d.Triangle) (int, error)
}

var _ Renderer = (*scene3d.Reader)(nil)
