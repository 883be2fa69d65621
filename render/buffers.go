package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/sweep"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Buffers32 holds a mesh in single precision with 32 bit indices, the layout
// vertex and element buffers of a GPU expect.
type Buffers32 struct {
	Positions []ms3.Vec
	Normals   []ms3.Vec
	UVs       []ms2.Vec
	// Indices holds 3 consecutive vertex indices per triangle.
	Indices []uint32
}

// NewBuffers32 converts g to single precision buffers. An error is returned
// if a value does not fit in a float32 or there are too many vertices to index.
func NewBuffers32(g sweep.Geometry) (Buffers32, error) {
	if int64(len(g.Positions)) > math.MaxUint32 {
		return Buffers32{}, errors.New("too many vertices for 32 bit indices")
	}
	b := Buffers32{
		Positions: make([]ms3.Vec, len(g.Positions)),
		Normals:   make([]ms3.Vec, len(g.Normals)),
		UVs:       make([]ms2.Vec, len(g.UVs)),
		Indices:   make([]uint32, 0, 3*len(g.Cells)),
	}
	var err error
	for i, p := range g.Positions {
		b.Positions[i], err = vec32(p)
		if err != nil {
			return Buffers32{}, fmt.Errorf("position %d: %w", i, err)
		}
	}
	for i, n := range g.Normals {
		b.Normals[i], err = vec32(n)
		if err != nil {
			return Buffers32{}, fmt.Errorf("normal %d: %w", i, err)
		}
	}
	for i, uv := range g.UVs {
		b.UVs[i], err = vec2f32(uv)
		if err != nil {
			return Buffers32{}, fmt.Errorf("uv %d: %w", i, err)
		}
	}
	for _, c := range g.Cells {
		b.Indices = append(b.Indices, uint32(c[0]), uint32(c[1]), uint32(c[2]))
	}
	return b, nil
}

// Interleaved appends the vertex attributes to dst as
// px, py, pz, nx, ny, nz, u, v for each vertex. Missing attributes are zero.
func (b Buffers32) Interleaved(dst []float32) []float32 {
	for i, p := range b.Positions {
		var n ms3.Vec
		var uv ms2.Vec
		if i < len(b.Normals) {
			n = b.Normals[i]
		}
		if i < len(b.UVs) {
			uv = b.UVs[i]
		}
		dst = append(dst, p.X, p.Y, p.Z, n.X, n.Y, n.Z, uv.X, uv.Y)
	}
	return dst
}

var errNotFinite32 = errors.New("value is not finite in single precision")

func vec32(v r3.Vec) (ms3.Vec, error) {
	f := ms3.Vec{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
	if !finite32(f.X) || !finite32(f.Y) || !finite32(f.Z) {
		return f, errNotFinite32
	}
	return f, nil
}

func vec2f32(v r2.Vec) (ms2.Vec, error) {
	f := ms2.Vec{X: float32(v.X), Y: float32(v.Y)}
	if !finite32(f.X) || !finite32(f.Y) {
		return f, errNotFinite32
	}
	return f, nil
}

func finite32(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
