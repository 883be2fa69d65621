package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/soypat/sweep"
	"github.com/soypat/sweep/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle3 is a 3D triangle.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the unit normal of the triangle following the right hand rule
// on its vertex order. The zero vector is returned for triangles with no area.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	n := r3.Cross(e1, e2)
	if n == (r3.Vec{}) {
		return n
	}
	return r3.Unit(n)
}

// Degenerate returns true if two vertices of the triangle are within tol
// of each other.
func (t Triangle3) Degenerate(tol float64) bool {
	return d3.EqualWithin(t.V[0], t.V[1], tol) ||
		d3.EqualWithin(t.V[1], t.V[2], tol) ||
		d3.EqualWithin(t.V[2], t.V[0], tol)
}

// Renderer streams triangles. ReadTriangles returns io.EOF once every
// triangle has been read, possibly along with the last triangles.
type Renderer interface {
	ReadTriangles(dst []Triangle3) (n int, err error)
}

type meshRenderer struct {
	g    sweep.Geometry
	next int
}

// NewMeshRenderer returns a Renderer that reads the cells of g in order.
func NewMeshRenderer(g sweep.Geometry) (Renderer, error) {
	if len(g.Cells) == 0 {
		return nil, errors.New("geometry has no cells to render")
	}
	nv := len(g.Positions)
	for i, p := range g.Positions {
		if !d3.IsFinite(p) {
			return nil, fmt.Errorf("vertex %d position not finite: %v", i, p)
		}
	}
	for i, c := range g.Cells {
		if c[0] < 0 || c[1] < 0 || c[2] < 0 || c[0] >= nv || c[1] >= nv || c[2] >= nv {
			return nil, fmt.Errorf("cell %d references vertex out of range [0,%d): %v", i, nv, c)
		}
	}
	return &meshRenderer{g: g}, nil
}

func (m *meshRenderer) ReadTriangles(dst []Triangle3) (n int, err error) {
	if len(dst) == 0 {
		return 0, errors.New("cannot read into empty triangle buffer")
	}
	cells := m.g.Cells[m.next:]
	n = min(len(dst), len(cells))
	for i := range cells[:n] {
		dst[i].V = m.g.Triangle(m.next + i)
	}
	m.next += n
	if m.next == len(m.g.Cells) {
		err = io.EOF
	}
	return n, err
}
