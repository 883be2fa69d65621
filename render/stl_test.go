package render_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/fogleman/fauxgl"
	"github.com/soypat/sweep"
	"github.com/soypat/sweep/render"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func torusKnot(t testing.TB) sweep.Geometry { return knotSweep(t, 0) }

func knotSweep(t testing.TB, concurrency int) sweep.Geometry {
	const n = 120
	path := make([]r3.Vec, n+1)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / n
		path[i] = r3.Vec{
			X: math.Sin(a) + 2*math.Sin(2*a),
			Y: math.Cos(a) - 2*math.Cos(2*a),
			Z: -math.Sin(3 * a),
		}
	}
	path[n] = path[0]
	shape := make([]r2.Vec, 12)
	for i := range shape {
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(len(shape)))
		shape[i] = r2.Vec{X: c, Y: s}
	}
	g, err := sweep.Sweep(path, shape, sweep.Config{Radius: sweep.Uniform(0.3), Concurrency: concurrency})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestSTLCreateWriteRead(t *testing.T) {
	g := torusKnot(t)
	filename := filepath.Join(t.TempDir(), "knot.stl")
	r, err := render.NewMeshRenderer(g)
	if err != nil {
		t.Fatal(err)
	}
	err = render.CreateSTL(filename, r)
	if err != nil {
		t.Fatal(err)
	}
	bfile, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	r, _ = render.NewMeshRenderer(g)
	model, err := render.RenderAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(model) != g.TriangleCount() {
		t.Fatalf("rendered %d triangles, geometry has %d", len(model), g.TriangleCount())
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
	if want := 84 + 50*g.TriangleCount(); len(bfile) != want {
		t.Errorf("STL file size %d, want %d", len(bfile), want)
	}
}

func TestSTLFauxGLLoad(t *testing.T) {
	g := torusKnot(t)
	filename := filepath.Join(t.TempDir(), "knot.stl")
	r, err := render.NewMeshRenderer(g)
	if err != nil {
		t.Fatal(err)
	}
	if err = render.CreateSTL(filename, r); err != nil {
		t.Fatal(err)
	}
	mesh, err := fauxgl.LoadSTL(filename)
	if err != nil {
		t.Fatal(err)
	}
	if len(mesh.Triangles) != g.TriangleCount() {
		t.Fatalf("fauxgl loaded %d triangles, want %d", len(mesh.Triangles), g.TriangleCount())
	}
	const tol = 1e-5
	bb := g.Bounds()
	got := mesh.BoundingBox()
	for _, pair := range [][2]float64{
		{got.Min.X, bb.Min.X}, {got.Min.Y, bb.Min.Y}, {got.Min.Z, bb.Min.Z},
		{got.Max.X, bb.Max.X}, {got.Max.Y, bb.Max.Y}, {got.Max.Z, bb.Max.Z},
	} {
		if math.Abs(pair[0]-pair[1]) > tol {
			t.Errorf("fauxgl bounding box %v does not match geometry bounds %v", got, bb)
			break
		}
	}
}

func TestWriteSTLEmpty(t *testing.T) {
	var b bytes.Buffer
	if err := render.WriteSTL(&b, nil); err == nil {
		t.Error("expected error writing empty model")
	}
	if _, err := render.NewMeshRenderer(sweep.Geometry{}); err == nil {
		t.Error("expected error rendering empty geometry")
	}
}

func BenchmarkCreateSTL(b *testing.B) {
	g := torusKnot(b)
	filename := filepath.Join(b.TempDir(), "bench.stl")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, _ := render.NewMeshRenderer(g)
		if err := render.CreateSTL(filename, r); err != nil {
			b.Fatal(err)
		}
	}
}
