package render_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/soypat/scene3d"
	"github.com/soypat/scene3d/form3"
	"github.com/soypat/scene3d/render"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestSTLSingleTriangle(t *testing.T) {
	s := scene3d.New()
	s.Add(scene3d.Triangle{{}, {X: 1}, {Y: 1}})
	var b bytes.Buffer
	err := render.WriteSTL(&b, s.Triangles())
	if err != nil {
		t.Fatal(err)
	}
	data := b.Bytes()
	if len(data) != 134 {
		t.Fatalf("got %d bytes, want 134", len(data))
	}
	for i, c := range data[:80] {
		if c != 0 {
			t.Fatalf("header byte %d is %d, want 0", i, c)
		}
	}
	if count := binary.LittleEndian.Uint32(data[80:]); count != 1 {
		t.Errorf("triangle count field %d, want 1", count)
	}
	for i, c := range data[84:96] {
		if c != 0 {
			t.Fatalf("normal byte %d is %d, want 0", i, c)
		}
	}
	want := []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}
	for i, w := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(data[96+4*i:]))
		if got != w {
			t.Errorf("vertex component %d: got %g, want %g", i, got, w)
		}
	}
	if attr := binary.LittleEndian.Uint16(data[132:]); attr != 0 {
		t.Errorf("attribute byte count %d, want 0", attr)
	}
}

func TestSTLSize(t *testing.T) {
	for _, test := range []struct {
		name  string
		build func(s *scene3d.Scene) error
	}{
		{"empty", func(s *scene3d.Scene) error { return nil }},
		{"quad", func(s *scene3d.Scene) error {
			return form3.Quadrilateral(s, r3.Vec{}, r3.Vec{X: 1}, r3.Vec{X: 1, Y: 1}, r3.Vec{Y: 1})
		}},
		{"pyramid", func(s *scene3d.Scene) error { return form3.Pyramid(s, r3.Vec{}, 2, 3, form3.Up) }},
		{"fractal", func(s *scene3d.Scene) error { return form3.Fractal(s, r3.Vec{}, 50, 3) }},
		{"sphere", func(s *scene3d.Scene) error { return form3.Sphere(s, r3.Vec{}, 45, 15) }},
	} {
		t.Run(test.name, func(t *testing.T) {
			s := scene3d.New()
			if err := test.build(s); err != nil {
				t.Fatal(err)
			}
			path := filepath.Join(t.TempDir(), "out.stl")
			err := render.CreateSTL(path, s.NewReader())
			if err != nil {
				t.Fatal(err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if want := 84 + 50*s.Count(); len(data) != want {
				t.Fatalf("file is %d bytes, want %d", len(data), want)
			}
			count := int(binary.LittleEndian.Uint32(data[80:84]))
			if count != s.Count() {
				t.Errorf("declared count %d, scene has %d", count, s.Count())
			}
			if records := (len(data) - 84) / 50; records != count {
				t.Errorf("file holds %d records, declares %d", records, count)
			}
		})
	}
}

func TestSTLCreateWrite(t *testing.T) {
	s := scene3d.New()
	if err := form3.Fractal(s, r3.Vec{X: 100}, 50, 3); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "fractal.stl")
	err := render.CreateSTL(path, s.NewReader())
	if err != nil {
		t.Fatal(err)
	}
	bfile, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	model, err := render.RenderAll(s.NewReader())
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	err = render.WriteSTL(&b, model)
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != len(bfile) {
		t.Fatal("WriteSTL and CreateSTL output length mismatch")
	}
	if !bytes.Equal(b.Bytes(), bfile) {
		t.Fatal("WriteSTL and CreateSTL output mismatch")
	}
}

func TestSTLTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.stl")
	if err := os.WriteFile(path, bytes.Repeat([]byte{0xff}, 4096), 0644); err != nil {
		t.Fatal(err)
	}
	s := scene3d.New()
	if err := form3.Cuboid(s, r3.Vec{}, 1, 1, 1); err != nil {
		t.Fatal(err)
	}
	if err := render.CreateSTL(path, s.NewReader()); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 84+50*24 {
		t.Errorf("file not truncated: %d bytes", info.Size())
	}
}

func TestSTLCreateError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "out.stl")
	s := scene3d.New()
	err := render.CreateSTL(path, s.NewReader())
	if err == nil {
		t.Fatal("expected error creating file in missing directory")
	}
	if !bytes.Contains([]byte(err.Error()), []byte(path)) {
		t.Errorf("error %q does not name the file", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v does not wrap a not-exist error", err)
	}
	if err := render.CreateTextSTL(path, s.NewReader()); err == nil {
		t.Fatal("expected error creating text file in missing directory")
	}
}
