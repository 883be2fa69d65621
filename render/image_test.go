package render_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/sweep"
	"github.com/soypat/sweep/render"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot/cmpimg"
)

const (
	// imgDelta a normalized imgDelta parameter to describe how close the matching
	// should be performed (imgDelta=0: perfect match, imgDelta=1, loose match)
	imgDelta = 0
)

type viewConfig struct {
	// what position (point) to look at
	lookat r3.Vec
	// which way is up (direction)
	up r3.Vec
	// where the camera/eye located at (point)
	eyepos r3.Vec
	far    float64
	near   float64
}

var defaultView = viewConfig{
	up:     r3.Vec{Z: 1},
	eyepos: r3.Vec{X: 3, Y: 3, Z: 3},
	near:   1,
	far:    10,
}

// TestRenderConcurrentMatches renders the same sweep built sequentially and
// concurrently and checks the resulting images are identical.
func TestRenderConcurrentMatches(t *testing.T) {
	dir := t.TempDir()
	for _, test := range []struct {
		name  string
		sweep func(t testing.TB, concurrency int) sweep.Geometry
	}{
		{name: "knot", sweep: knotSweep},
		{name: "taper", sweep: taperedHelix},
	} {
		var pngs [2]string
		for k, concurrency := range []int{1, 4} {
			g := test.sweep(t, concurrency)
			stlPath := filepath.Join(dir, test.name+".stl")
			pngs[k] = filepath.Join(dir, test.name+string(rune('a'+k))+".png")
			r, err := render.NewMeshRenderer(g)
			if err != nil {
				t.Fatal(err)
			}
			if err = render.CreateSTL(stlPath, r); err != nil {
				t.Fatal(err)
			}
			stlToPNG(t, stlPath, pngs[k], defaultView)
		}
		if !equalImages(t, pngs[0], pngs[1]) {
			t.Errorf("%s rendered images differ between sequential and concurrent sweeps", test.name)
		}
	}
}

func taperedHelix(t testing.TB, concurrency int) sweep.Geometry {
	const n = 300
	path := make([]r3.Vec, n)
	radii := make([]float64, n)
	for i := range path {
		a := 0.05 * float64(i)
		path[i] = r3.Vec{X: math.Cos(a), Y: math.Sin(a), Z: 0.05 * a}
		radii[i] = 0.2 * (1 - 0.9*float64(i)/n)
	}
	square := []r2.Vec{{X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}, {X: 1, Y: -1}}
	g, err := sweep.Sweep(path, square, sweep.Config{
		Caps:        true,
		Radius:      sweep.Taper(radii),
		Concurrency: concurrency,
	})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func stlToPNG(t testing.TB, stlName, outputname string, view viewConfig) {
	mesh, err := fauxgl.LoadSTL(stlName)
	if err != nil {
		t.Fatal(err)
	}
	const (
		width, height = 480, 270 // output width and height in pixels
		scale         = 2        // optional supersampling
		fovy          = 30       // vertical field of view in degrees
	)

	var (
		far    = view.far
		near   = view.near
		eye    = fauxgl.V(view.eyepos.X, view.eyepos.Y, view.eyepos.Z) // camera position
		center = fauxgl.V(view.lookat.X, view.lookat.Y, view.lookat.Z) // view center position
		up     = fauxgl.V(view.up.X, view.up.Y, view.up.Z)             // up vector
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()                  // light direction
		color  = fauxgl.HexColor("#468966")                            // object color
	)

	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	// create a rendering context
	context := fauxgl.NewContext(width*scale, height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	// create transformation matrix and light direction
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, near, far)
	// use builtin phong shader
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	// render
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	image := context.Image()
	image = resize.Resize(width, height, image, resize.Bilinear)
	err = fauxgl.SavePNG(outputname, image)
	if err != nil {
		t.Fatal(err)
	}
}

func equalImages(t *testing.T, png1, png2 string) bool {
	b1, err := os.ReadFile(png1)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := os.ReadFile(png2)
	if err != nil {
		t.Fatal(err)
	}
	equal, err := cmpimg.EqualApprox("png", b1, b2, imgDelta)
	if err != nil {
		t.Fatal(err)
	}
	return equal
}
