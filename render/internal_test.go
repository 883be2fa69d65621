package render

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/soypat/sweep"
	"github.com/soypat/sweep/internal/d3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func helixTube(t testing.TB, closedShape bool) sweep.Geometry {
	const n = 200
	path := make([]r3.Vec, n)
	for i := range path {
		a := 0.1 * float64(i)
		path[i] = r3.Vec{X: 10 * math.Cos(a), Y: 10 * math.Sin(a), Z: 0.5 * a}
	}
	shape := []r2.Vec{{X: 1}, {Y: 1}, {X: -1}, {Y: -1}}
	cfg := sweep.Config{Caps: true, Radius: sweep.Anisotropic(0.5, 0.25)}
	if !closedShape {
		cfg.Shape = sweep.Open
	}
	g, err := sweep.Sweep(path, shape, cfg)
	require.NoError(t, err)
	return g
}

func TestSTLWriteReadback(t *testing.T) {
	const tol = 1e-5
	g := helixTube(t, true)
	size := r3.Norm(d3.Set(g.Positions).Bounds().Size())
	// float32 relative tolerance.
	rtol := tol * size
	r, err := NewMeshRenderer(g)
	require.NoError(t, err)
	input, err := RenderAll(r)
	require.NoError(t, err)
	var b bytes.Buffer
	err = WriteSTL(&b, input)
	require.NoError(t, err)
	output, err := ReadSTL(&b)
	if err != nil && !errors.Is(err, ErrNormalMismatch) {
		t.Fatal(err)
	}
	require.Len(t, output, len(input))
	mismatches := 0
	for iface, expect := range input {
		got := output[iface]
		if got.Degenerate(1e-12) {
			t.Fatalf("triangle degenerate: %+v", got)
		}
		for i := range expect.V {
			if !d3.EqualWithin(got.V[i], expect.V[i], rtol) {
				mismatches++
				t.Errorf("%dth triangle equality out of tolerance. got vertex %0.5g, want %0.5g", iface, got.V[i], expect.V[i])
			}
		}
		if mismatches > 10 {
			t.Fatal("too many mismatches")
		}
	}
}

func TestReadSTLTruncated(t *testing.T) {
	g := helixTube(t, true)
	r, err := NewMeshRenderer(g)
	require.NoError(t, err)
	model, err := RenderAll(r)
	require.NoError(t, err)
	var b bytes.Buffer
	require.NoError(t, WriteSTL(&b, model))
	truncated := b.Bytes()[:b.Len()-10]
	_, err = ReadSTL(bytes.NewReader(truncated))
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestMeshRendererSmallBuffer(t *testing.T) {
	g := helixTube(t, false)
	r, err := NewMeshRenderer(g)
	require.NoError(t, err)
	buf := make([]Triangle3, 7)
	var model []Triangle3
	for err == nil {
		var nt int
		nt, err = r.ReadTriangles(buf)
		model = append(model, buf[:nt]...)
	}
	require.Equal(t, io.EOF, err)
	require.Len(t, model, g.TriangleCount())
	for i, tri := range model {
		assert.Equal(t, g.Triangle(i), tri.V)
	}
	n, err := r.ReadTriangles(buf)
	assert.Zero(t, n)
	assert.Equal(t, io.EOF, err)
}

func TestMeshRendererBadCells(t *testing.T) {
	g := sweep.Geometry{
		Positions: []r3.Vec{{}, {X: 1}, {Y: 1}},
		Cells:     [][3]int{{0, 1, 3}},
	}
	_, err := NewMeshRenderer(g)
	assert.Error(t, err)
}

func TestTriangle3(t *testing.T) {
	tri := Triangle3{V: [3]r3.Vec{{}, {X: 2}, {Y: 2}}}
	assert.Equal(t, r3.Vec{Z: 1}, tri.Normal())
	assert.False(t, tri.Degenerate(1e-9))
	flat := Triangle3{V: [3]r3.Vec{{X: 1}, {X: 1}, {Y: 2}}}
	assert.True(t, flat.Degenerate(1e-9))
	assert.Equal(t, r3.Vec{}, flat.Normal())
}

func TestOutwardWinding(t *testing.T) {
	// A counter clockwise profile around a straight path yields outward facing triangles.
	path := []r3.Vec{{}, {Z: 1}, {Z: 2}}
	shape := make([]r2.Vec, 16)
	for i := range shape {
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(len(shape)))
		shape[i] = r2.Vec{X: c, Y: s}
	}
	g, err := sweep.Sweep(path, shape, sweep.Config{})
	require.NoError(t, err)
	r, err := NewMeshRenderer(g)
	require.NoError(t, err)
	model, err := RenderAll(r)
	require.NoError(t, err)
	for i, tri := range model {
		centroid := r3.Scale(1./3, r3.Add(tri.V[0], r3.Add(tri.V[1], tri.V[2])))
		radial := r3.Vec{X: centroid.X, Y: centroid.Y}
		assert.Greater(t, r3.Dot(tri.Normal(), radial), 0.0, "triangle %d faces inward", i)
	}
}
