package render

import (
	"io"

	"github.com/soypat/scene3d"
)

// RenderAll reads the full contents of a Renderer and returns the slice read.
// It does not return error on io.EOF, like the io.ReadAll implementation.
func RenderAll(r Renderer) ([]scene3d.Triangle, error) {
	var err error
	var nt int
	result := make([]scene3d.Triangle, 0, 1<<12)
	buf := make([]scene3d.Triangle, trianglesInBuffer)
	for {
		nt, err = r.ReadTriangles(buf)
		result = append(result, buf[:nt]...)
		if err != nil {
			break
		}
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}
