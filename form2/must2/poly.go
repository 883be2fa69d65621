package must2

import (
	"errors"
	"math"

	"github.com/soypat/sweep"
	"github.com/soypat/sweep/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// PolygonBuilder builds a cross-section vertex list out of absolute, relative
// and polar vertices. Corners may be rounded or chamfered and edges replaced
// by circular arcs. The zero value is an empty open polygon.
type PolygonBuilder struct {
	closed  bool
	reverse bool
	verts   []Vertex
}

// Vertex is a vertex added to a PolygonBuilder. Its methods change how the
// vertex is expanded when the builder's vertices are read.
type Vertex struct {
	pos      r2.Vec
	relative bool
	kind     vertexKind
	radius   float64 // arc or smoothing radius.
	facets   int
}

type vertexKind uint8

const (
	vertexPlain vertexKind = iota
	vertexSmooth
	vertexArc
)

// Rel positions the vertex relative to the prior vertex.
func (v *Vertex) Rel() *Vertex {
	v.relative = true
	return v
}

// Polar treats the vertex values as polar coordinates (r, theta).
func (v *Vertex) Polar() *Vertex {
	v.pos = d2.PolarToXY(v.pos.X, v.pos.Y)
	return v
}

// Smooth rounds the corner at the vertex with an arc of the given radius
// split in facets segments. Corners whose radius does not fit between the
// neighbouring vertices are left sharp.
func (v *Vertex) Smooth(radius float64, facets int) *Vertex {
	if radius != 0 && facets != 0 {
		v.radius = radius
		v.facets = facets
		v.kind = vertexSmooth
	}
	return v
}

// Chamfer cuts the corner at the vertex with a face of length size.
// The length is only exact for right angle corners.
func (v *Vertex) Chamfer(size float64) *Vertex {
	if size != 0 {
		v.radius = size * sqrtHalf
		v.facets = 1
		v.kind = vertexSmooth
	}
	return v
}

// Arc replaces the edge ending at the vertex with a circular arc. The sign of
// radius selects which side of the edge the arc bulges to.
func (v *Vertex) Arc(radius float64, facets int) *Vertex {
	if radius != 0 && facets != 0 {
		v.radius = radius
		v.facets = facets
		v.kind = vertexArc
	}
	return v
}

// NewPolygon returns an empty polygon.
func NewPolygon() *PolygonBuilder {
	return &PolygonBuilder{}
}

// Close connects the last vertex back to the first.
func (p *PolygonBuilder) Close() {
	p.closed = true
}

// Closed returns true if the polygon is closed.
func (p *PolygonBuilder) Closed() bool {
	return p.closed
}

// Closure returns the sweep closure matching the polygon.
func (p *PolygonBuilder) Closure() sweep.Closure {
	if p.closed {
		return sweep.Closed
	}
	return sweep.Open
}

// Reverse reverses the order the vertices are returned in.
func (p *PolygonBuilder) Reverse() {
	p.reverse = true
}

// Add adds a vertex to the polygon.
func (p *PolygonBuilder) Add(v r2.Vec) *Vertex {
	p.verts = append(p.verts, Vertex{pos: v})
	return &p.verts[len(p.verts)-1]
}

// AddXY adds an x,y vertex to the polygon.
func (p *PolygonBuilder) AddXY(x, y float64) *Vertex {
	return p.Add(r2.Vec{X: x, Y: y})
}

// AddSet adds a set of vertices to the polygon.
func (p *PolygonBuilder) AddSet(vs []r2.Vec) {
	for _, v := range vs {
		p.Add(v)
	}
}

// Drop removes the last vertex.
func (p *PolygonBuilder) Drop() {
	p.verts = p.verts[:len(p.verts)-1]
}

// Vertices returns the expanded vertices of the polygon. The builder is left
// unmodified so Vertices may be called repeatedly. It panics if the polygon
// has no vertices or the first vertex is relative.
func (p *PolygonBuilder) Vertices() []r2.Vec {
	if len(p.verts) == 0 {
		panic("empty vertex list. was PolygonBuilder initialized?")
	}
	abs, err := p.absolute()
	if err != nil {
		panic(err)
	}
	out := p.expandCorners(p.expandArcs(abs))
	if p.reverse {
		return d2.Set(out).Reverse()
	}
	return out
}

// absolute returns a copy of the vertex list with relative positions resolved.
func (p *PolygonBuilder) absolute() ([]Vertex, error) {
	vs := append([]Vertex(nil), p.verts...)
	for i := range vs {
		if !vs[i].relative {
			continue
		}
		if i == 0 {
			return nil, errors.New("relative vertex needs an absolute reference")
		}
		vs[i].pos = r2.Add(vs[i].pos, vs[i-1].pos)
		vs[i].relative = false
	}
	return vs, nil
}

// neighbours returns the indices before and after i, or -1 past the ends of an open polygon.
func (p *PolygonBuilder) neighbours(i, n int) (prev, next int) {
	prev, next = i-1, i+1
	if p.closed {
		prev, next = (i+n-1)%n, next%n
	} else if next == n {
		next = -1
	}
	return prev, next
}

// expandArcs inserts the intermediate points of arc edges.
func (p *PolygonBuilder) expandArcs(vs []Vertex) []Vertex {
	out := make([]Vertex, 0, len(vs))
	for i, v := range vs {
		if v.kind == vertexArc {
			v.kind = vertexPlain
			if prev, _ := p.neighbours(i, len(vs)); prev >= 0 {
				for _, pt := range arcPoints(vs[prev].pos, v.pos, v.radius, v.facets) {
					out = append(out, Vertex{pos: pt})
				}
			}
		}
		out = append(out, v)
	}
	return out
}

// expandCorners replaces smoothed vertices with the points of their rounding arc.
func (p *PolygonBuilder) expandCorners(vs []Vertex) []r2.Vec {
	out := make([]r2.Vec, 0, len(vs))
	for i, v := range vs {
		prev, next := p.neighbours(i, len(vs))
		if v.kind != vertexSmooth || prev < 0 || next < 0 {
			// Endpoints of an open polygon can not be smoothed.
			out = append(out, v.pos)
			continue
		}
		pts, ok := roundCorner(vs[prev].pos, v.pos, vs[next].pos, v.radius, v.facets)
		if !ok {
			out = append(out, v.pos)
			continue
		}
		out = append(out, pts...)
	}
	return out
}

// arcPoints returns the facets-1 points strictly between a and b on an arc of
// the given signed radius.
func arcPoints(a, b r2.Vec, radius float64, facets int) []r2.Vec {
	side := sign(radius)
	radius = math.Abs(radius)
	ba := r2.Unit(r2.Sub(b, a))
	normal := r2.Scale(side, r2.Vec{X: ba.Y, Y: -ba.X})
	mid := r2.Scale(0.5, r2.Add(a, b))
	halfChord := r2.Norm(r2.Sub(mid, a))
	center := r2.Add(mid, r2.Scale(math.Sqrt(radius*radius-halfChord*halfChord), normal))
	ac := r2.Unit(r2.Sub(a, center))
	bc := r2.Unit(r2.Sub(b, center))
	m := d2.Rotate(-side * math.Acos(d2.Clamp(r2.Dot(ac, bc), -1, 1)) / float64(facets))
	rv := m.MulPosition(r2.Sub(a, center))
	pts := make([]r2.Vec, facets-1)
	for j := range pts {
		pts[j] = r2.Add(center, rv)
		rv = m.MulPosition(rv)
	}
	return pts
}

// roundCorner returns facets+1 points on the circle of the given radius
// tangent to both edges meeting at v. ok is false if the circle does not fit.
func roundCorner(prev, v, next r2.Vec, radius float64, facets int) (pts []r2.Vec, ok bool) {
	v0 := r2.Unit(r2.Sub(prev, v))
	v1 := r2.Unit(r2.Sub(next, v))
	theta := math.Acos(d2.Clamp(r2.Dot(v0, v1), -1, 1))
	// Distance from v to the tangent points.
	dt := radius / math.Tan(theta/2)
	if dt > r2.Norm(r2.Sub(prev, v)) || dt > r2.Norm(r2.Sub(next, v)) {
		return nil, false
	}
	p0 := r2.Add(v, r2.Scale(dt, v0))
	center := r2.Add(v, r2.Scale(radius/math.Sin(theta/2), r2.Unit(r2.Add(v0, v1))))
	m := d2.Rotate(sign(r2.Cross(v1, v0)) * (math.Pi - theta) / float64(facets))
	rv := r2.Sub(p0, center)
	pts = make([]r2.Vec, facets+1)
	for j := range pts {
		pts[j] = r2.Add(center, rv)
		rv = m.MulPosition(rv)
	}
	return pts, true
}

// Nagon returns the counter clockwise vertices of a N sided regular polygon
// with its first vertex at (radius, 0).
func Nagon(n int, radius float64) []r2.Vec {
	if n < 3 {
		panic("Nagon needs at least 3 sides")
	}
	if radius <= 0 {
		panic("Nagon radius must be positive")
	}
	m := d2.Rotate(2 * math.Pi / float64(n))
	v := make([]r2.Vec, n)
	p := r2.Vec{X: radius}
	for i := range v {
		v[i] = p
		p = m.MulPosition(p)
	}
	return v
}
