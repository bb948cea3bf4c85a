package render

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/soypat/scene3d"
)

// solidName is the name given to the solid in text STL output.
const solidName = "scene"

// WriteTextSTL writes model triangles to a writer in text (ASCII) STL format.
// Vertex components are printed in fixed point with 5 decimals.
func WriteTextSTL(w io.Writer, model []scene3d.Triangle) error {
	tw := newTextWriter(w)
	tw.begin()
	for _, t := range model {
		tw.facet(t)
	}
	return tw.end()
}

// CreateTextSTL writes all triangles read from r to a text STL file at path.
// An existing file is truncated.
func CreateTextSTL(path string, r Renderer) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating STL file %q: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	tw := newTextWriter(file)
	tw.begin()
	buf := make([]scene3d.Triangle, trianglesInBuffer)
	for {
		nt, rerr := r.ReadTriangles(buf)
		for _, t := range buf[:nt] {
			tw.facet(t)
		}
		if rerr == io.EOF {
			break
		} else if rerr != nil {
			return rerr
		}
	}
	return tw.end()
}

// textWriter keeps the first write error and ignores writes after it.
type textWriter struct {
	w   *bufio.Writer
	err error
}

func newTextWriter(w io.Writer) *textWriter {
	return &textWriter{w: bufio.NewWriter(w)}
}

func (tw *textWriter) printf(format string, args ...interface{}) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, format, args...)
}

func (tw *textWriter) begin() {
	tw.printf("solid %s\n", solidName)
}

func (tw *textWriter) facet(t scene3d.Triangle) {
	tw.printf("  facet normal 0.0 0.0 0.0\n")
	tw.printf("    outer loop\n")
	for _, v := range t {
		tw.printf("      vertex %.5f %.5f %.5f\n", v.X, v.Y, v.Z)
	}
	tw.printf("    endloop\n")
	tw.printf("  endfacet\n")
}

func (tw *textWriter) end() error {
	tw.printf("endsolid %s\n", solidName)
	if tw.err != nil {
		return tw.err
	}
	return tw.w.Flush()
}
