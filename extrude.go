package sweep

import (
	"sync"

	"github.com/soypat/sweep/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Geometry is an indexed triangle mesh. Vertex attribute slices share indexing:
// vertex k of ring i and shape point j is k = i*len(shape) + j. When caps are
// present the two cap centers are the last two vertices.
type Geometry struct {
	Positions []r3.Vec
	Normals   []r3.Vec
	UVs       []r2.Vec
	// Cells holds 3 vertex indices per triangle.
	Cells [][3]int

	// Set only when frames are exported.
	Tangents  []r3.Vec
	Binormals []r3.Vec
	Frames    []Frame
}

// Bounds returns the bounding box of the mesh vertices.
func (g Geometry) Bounds() r3.Box {
	return r3.Box(d3.Set(g.Positions).Bounds())
}

// TriangleCount returns the number of cells in the mesh.
func (g Geometry) TriangleCount() int { return len(g.Cells) }

// Triangle returns the vertex positions of the i'th cell.
func (g Geometry) Triangle(i int) [3]r3.Vec {
	c := g.Cells[i]
	return [3]r3.Vec{g.Positions[c[0]], g.Positions[c[1]], g.Positions[c[2]]}
}

// Triangles returns every cell as a triangle of vertex positions.
func (g Geometry) Triangles() [][3]r3.Vec {
	t := make([][3]r3.Vec, len(g.Cells))
	for i := range g.Cells {
		t[i] = g.Triangle(i)
	}
	return t
}

// ExtrudeConfig controls how a cross-section is stamped along a frame sequence.
type ExtrudeConfig struct {
	Radius Radius
	// ClosedPath connects the last ring back to the first.
	ClosedPath bool
	// ClosedShape connects the last shape point to the first.
	// Ignored for 2 point shapes.
	ClosedShape bool
	// Caps closes both ends of an open path with a triangle fan.
	// Ignored when ClosedPath is set.
	Caps bool
	// WithFrames exports per vertex tangents and binormals and the frames.
	WithFrames bool
	// Concurrency is the number of goroutines filling rings. Values
	// below 2 fill rings on the calling goroutine.
	Concurrency int
}

// layout holds the buffer dimensions of a sweep.
type layout struct {
	rings, ringSize int
	numFaces        int // faces around a ring.
	numFrameFaces   int // faces along the path.
	closedPath      bool
	caps            bool
}

func newLayout(rings, ringSize int, closedPath, closedShape, caps bool) layout {
	l := layout{
		rings:         rings,
		ringSize:      ringSize,
		numFaces:      ringSize - 1,
		numFrameFaces: rings - 1,
		closedPath:    closedPath,
		caps:          caps && !closedPath,
	}
	if closedShape && ringSize > 2 {
		l.numFaces = ringSize
	}
	if closedPath {
		l.numFrameFaces = rings
	}
	return l
}

func (l layout) vertexCount() int {
	n := l.rings * l.ringSize
	if l.caps {
		n += 2
	}
	return n
}

func (l layout) cellCount() int {
	n := 2 * l.numFrameFaces * l.numFaces
	if l.caps {
		n += 2 * l.ringSize
	}
	return n
}

// Extrude stamps shape into every frame and assembles the resulting mesh.
// Local point (x*rx, y*ry, 0) of ring i is placed at
//  Position + x*rx*Binormal + y*ry*Normal
// and gets the radial direction from the frame position as its normal.
// Ring i is connected to ring i+1 with two triangles per shape segment.
func Extrude(frames []Frame, shape []r2.Vec, cfg ExtrudeConfig) (Geometry, error) {
	if len(frames) < 2 {
		return Geometry{}, &InvalidPathError{Len: len(frames)}
	}
	if len(shape) < 2 {
		return Geometry{}, &InvalidShapeError{Len: len(shape)}
	}
	if err := cfg.Radius.validate(len(frames)); err != nil {
		return Geometry{}, err
	}
	l := newLayout(len(frames), len(shape), cfg.ClosedPath, cfg.ClosedShape, cfg.Caps)
	nv := l.vertexCount()
	g := Geometry{
		Positions: make([]r3.Vec, nv),
		Normals:   make([]r3.Vec, nv),
		UVs:       make([]r2.Vec, nv),
		Cells:     make([][3]int, l.cellCount()),
	}
	if cfg.WithFrames {
		g.Tangents = make([]r3.Vec, nv)
		g.Binormals = make([]r3.Vec, nv)
		g.Frames = append([]Frame(nil), frames...)
	}
	e := extruder{
		frames: frames,
		shape:  shape,
		radius: cfg.Radius,
		l:      l,
		g:      &g,
	}
	e.rings(cfg.Concurrency)
	if l.caps {
		e.caps()
	}
	return g, nil
}

// extruder writes into preallocated geometry buffers. Ring i only
// touches vertices [i*S, (i+1)*S) and the cells that start on ring i,
// so distinct rings may be filled concurrently.
type extruder struct {
	frames []Frame
	shape  []r2.Vec
	radius Radius
	l      layout
	g      *Geometry
}

func (e extruder) rings(concurrent int) {
	n := e.l.rings
	if concurrent <= 1 || n < 2*concurrent {
		for i := 0; i < n; i++ {
			e.ring(i)
		}
		return
	}
	var wg sync.WaitGroup
	chunk := (n + concurrent - 1) / concurrent
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				e.ring(i)
			}
		}(start, end)
	}
	wg.Wait()
}

func (e extruder) ring(i int) {
	var (
		g      = e.g
		S      = e.l.ringSize
		f      = e.frames[i]
		basis  = f.basis()
		rx, ry = e.radius.Resolve(i)
		v      = float64(i) / float64(e.l.numFrameFaces)
	)
	for j, p := range e.shape {
		k := i*S + j
		pos := basis.Transform(r3.Vec{X: p.X * rx, Y: p.Y * ry})
		// Points on the spine have no radial direction.
		n := f.Normal
		if d := r3.Sub(pos, f.Position); r3.Norm(d) > 0 {
			n = r3.Unit(d)
		}
		g.Positions[k] = pos
		g.Normals[k] = n
		g.UVs[k] = r2.Vec{X: float64(j) / float64(e.l.numFaces), Y: v}
		if g.Tangents != nil {
			g.Tangents[k] = f.Tangent
			g.Binormals[k] = r3.Cross(f.Tangent, n)
		}
	}
	if i >= e.l.numFrameFaces {
		return
	}
	total := e.l.rings * S
	base := i * S
	cells := g.Cells[2*i*e.l.numFaces:]
	for j := 0; j < e.l.numFaces; j++ {
		next := (j + 1) % S
		a := base + next + S
		b := base + next
		c := base + j
		d := base + j + S
		if i == e.l.rings-1 {
			// Last ring of a closed path wraps onto the first.
			a, b, c, d = a%total, b%total, c%total, d%total
		}
		cells[2*j] = [3]int{a, b, c}
		cells[2*j+1] = [3]int{a, c, d}
	}
}

func (e extruder) caps() {
	var (
		g        = e.g
		S        = e.l.ringSize
		first    = e.frames[0]
		last     = e.frames[len(e.frames)-1]
		start    = e.l.rings * S
		end      = start + 1
		lastBase = (e.l.rings - 1) * S
	)
	g.Positions[start] = first.Position
	g.Normals[start] = r3.Scale(-1, first.Tangent)
	g.UVs[start] = r2.Vec{}
	g.Positions[end] = last.Position
	g.Normals[end] = r3.Scale(-1, last.Tangent)
	g.UVs[end] = r2.Vec{X: 1, Y: 1}
	if g.Tangents != nil {
		g.Tangents[start], g.Binormals[start] = first.Tangent, first.Binormal
		g.Tangents[end], g.Binormals[end] = last.Tangent, last.Binormal
	}
	cells := g.Cells[2*e.l.numFrameFaces*e.l.numFaces:]
	for j := 0; j < S; j++ {
		next := (j + 1) % S
		cells[2*j] = [3]int{j, next, start}
		cells[2*j+1] = [3]int{end, lastBase + next, lastBase + j}
	}
}
