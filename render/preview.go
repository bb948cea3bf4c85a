package render

import (
	"errors"
	"fmt"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/scene3d/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// View configures the camera and output image of Preview.
// Models are fit in a bi-unit cube centered at the origin before rendering.
type View struct {
	// what position (point) to look at
	Lookat r3.Vec
	// which way is up (direction)
	Up r3.Vec
	// where the camera/eye located at (point)
	Eyepos r3.Vec
	Far    float64
	Near   float64
	// Output image size in pixels.
	Width, Height int
	// Supersample renders at Supersample times the output size
	// and downsamples the result. Values below 1 are treated as 1.
	Supersample int
}

// DefaultView is an isometric view with Z pointing up.
var DefaultView = View{
	Up:          r3.Vec{Z: 1},
	Eyepos:      d3.Elem(2.4),
	Near:        1,
	Far:         10,
	Width:       768,
	Height:      432,
	Supersample: 2,
}

const (
	previewBackground = "#FFF8E3"
	previewColor      = "#468966"
)

// Preview renders the STL file at stlPath to a PNG image at pngPath.
func Preview(stlPath, pngPath string, view View) error {
	if view.Width <= 0 || view.Height <= 0 {
		return errors.New("preview image size must be positive")
	}
	mesh, err := fauxgl.LoadSTL(stlPath)
	if err != nil {
		return fmt.Errorf("loading %q for preview: %w", stlPath, err)
	}
	if len(mesh.Triangles) == 0 {
		return fmt.Errorf("%q has no triangles to preview", stlPath)
	}
	const fovy = 30 // vertical field of view in degrees
	scale := view.Supersample
	if scale < 1 {
		scale = 1
	}

	var (
		eye    = fauxgl.V(view.Eyepos.X, view.Eyepos.Y, view.Eyepos.Z) // camera position
		center = fauxgl.V(view.Lookat.X, view.Lookat.Y, view.Lookat.Z) // view center position
		up     = fauxgl.V(view.Up.X, view.Up.Y, view.Up.Z)             // up vector
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()                  // light direction
		color  = fauxgl.HexColor(previewColor)                         // object color
	)

	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	context := fauxgl.NewContext(view.Width*scale, view.Height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor(previewBackground))
	aspect := float64(view.Width) / float64(view.Height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	image := context.Image()
	image = resize.Resize(uint(view.Width), uint(view.Height), image, resize.Bilinear)
	return fauxgl.SavePNG(pngPath, image)
}
