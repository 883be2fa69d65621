package render_test

import (
	"bufio"
	"bytes"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/soypat/sweep"
	"github.com/soypat/sweep/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func straightSquare(t *testing.T, cfg sweep.Config) sweep.Geometry {
	path := []r3.Vec{{}, {Z: 1}, {Z: 2}}
	square := []r2.Vec{{X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}, {X: 1, Y: -1}}
	g, err := sweep.Sweep(path, square, cfg)
	require.NoError(t, err)
	return g
}

func TestWriteOBJ(t *testing.T) {
	g := straightSquare(t, sweep.Config{Caps: true})
	var b bytes.Buffer
	require.NoError(t, render.WriteOBJ(&b, g))
	counts := map[string]int{}
	var firstFace string
	sc := bufio.NewScanner(&b)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		counts[fields[0]]++
		if fields[0] == "f" && firstFace == "" {
			firstFace = sc.Text()
		}
	}
	require.NoError(t, sc.Err())
	assert.Equal(t, len(g.Positions), counts["v"])
	assert.Equal(t, len(g.Normals), counts["vn"])
	assert.Equal(t, len(g.UVs), counts["vt"])
	assert.Equal(t, len(g.Cells), counts["f"])
	c := g.Cells[0]
	assert.Equal(t, "f "+objIndex(c[0])+" "+objIndex(c[1])+" "+objIndex(c[2]), firstFace)
}

// objIndex returns the 1 based vertex/uv/normal reference of vertex i.
func objIndex(i int) string {
	s := strconv.Itoa(i + 1)
	return s + "/" + s + "/" + s
}

func TestWriteOBJPositionsOnly(t *testing.T) {
	g := straightSquare(t, sweep.Config{})
	g.Normals, g.UVs = nil, nil
	var b bytes.Buffer
	require.NoError(t, render.WriteOBJ(&b, g))
	assert.NotContains(t, b.String(), "vn ")
	assert.NotContains(t, b.String(), "/")
	assert.Error(t, render.WriteOBJ(&b, sweep.Geometry{}))
}

func TestBuffers32(t *testing.T) {
	g := straightSquare(t, sweep.Config{Caps: true})
	b, err := render.NewBuffers32(g)
	require.NoError(t, err)
	require.Len(t, b.Positions, len(g.Positions))
	require.Len(t, b.Normals, len(g.Normals))
	require.Len(t, b.UVs, len(g.UVs))
	require.Len(t, b.Indices, 3*len(g.Cells))
	for i, p := range g.Positions {
		assert.InDelta(t, p.X, float64(b.Positions[i].X), 1e-6)
		assert.InDelta(t, p.Y, float64(b.Positions[i].Y), 1e-6)
		assert.InDelta(t, p.Z, float64(b.Positions[i].Z), 1e-6)
	}
	for i, c := range g.Cells {
		assert.Equal(t, []uint32{uint32(c[0]), uint32(c[1]), uint32(c[2])}, b.Indices[3*i:3*i+3])
	}
	interleaved := b.Interleaved(nil)
	require.Len(t, interleaved, 8*len(g.Positions))
	k := 5
	assert.Equal(t, b.Positions[k].X, interleaved[8*k])
	assert.Equal(t, b.Normals[k].Z, interleaved[8*k+5])
	assert.Equal(t, b.UVs[k].Y, interleaved[8*k+7])
}

func TestBuffers32Overflow(t *testing.T) {
	g := straightSquare(t, sweep.Config{})
	g.Positions[3].Y = 1e40
	_, err := render.NewBuffers32(g)
	assert.Error(t, err)
	g.Positions[3].Y = math.NaN()
	_, err = render.NewBuffers32(g)
	assert.Error(t, err)
}

func TestFrameLines(t *testing.T) {
	g := straightSquare(t, sweep.Config{WithFrames: true})
	lines := render.FrameLines(g.Frames, 0.5)
	require.Len(t, lines, 3*len(g.Frames))
	for i, f := range g.Frames {
		tangent, normal, binormal := lines[3*i], lines[3*i+1], lines[3*i+2]
		assert.Equal(t, f.Position, tangent.A)
		assert.InDelta(t, 0, r3.Norm(r3.Sub(tangent.B, r3.Add(f.Position, r3.Vec{Z: 0.5}))), 1e-12)
		assert.InDelta(t, 0.5, r3.Norm(r3.Sub(normal.B, normal.A)), 1e-12)
		assert.InDelta(t, 0, r3.Dot(r3.Sub(normal.B, normal.A), r3.Sub(binormal.B, binormal.A)), 1e-12)
	}
}
