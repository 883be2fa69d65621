package meshexp

import (
	"errors"
	"math"

	"github.com/soypat/sweep"
	"github.com/soypat/sweep/internal/d3"
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// Weld merges vertices of g closer than tol to each other into the vertex
// with the lowest index. Attributes of the kept vertex are preserved. Cells
// that collapse onto fewer than 3 distinct vertices are dropped.
// remap[i] holds the new index of original vertex i.
//
// Welding the seam of a closed sweep or the repeated point of a path that
// starts and ends at the same position produces a watertight mesh.
func Weld(g sweep.Geometry, tol float64) (welded sweep.Geometry, remap []int, err error) {
	if tol < 0 || math.IsNaN(tol) {
		return sweep.Geometry{}, nil, errors.New("weld tolerance must be non-negative")
	}
	if len(g.Positions) == 0 {
		return sweep.Geometry{}, nil, errors.New("empty geometry")
	}
	nv := len(g.Positions)
	pts := make(kdPoints, nv)
	for i, p := range g.Positions {
		pts[i] = kdPoint{V: p, idx: i}
	}
	tree := kdtree.New(pts, true)
	remap = make([]int, len(g.Positions))
	for i := range remap {
		remap[i] = -1
	}
	var kept []int
	tol2 := tol * tol
	for i, p := range g.Positions {
		if remap[i] >= 0 {
			continue
		}
		remap[i] = len(kept)
		kept = append(kept, i)
		keep := kdtree.NewDistKeeper(tol2)
		tree.NearestSet(keep, kdPoint{V: p})
		for _, c := range keep.Heap {
			if c.Comparable == nil {
				continue // Sentinel.
			}
			j := c.Comparable.(kdPoint).idx
			if remap[j] < 0 {
				remap[j] = remap[i]
			}
		}
	}
	welded = sweep.Geometry{
		Positions: pick(g.Positions, nv, kept),
		Normals:   pick(g.Normals, nv, kept),
		UVs:       pick(g.UVs, nv, kept),
		Tangents:  pick(g.Tangents, nv, kept),
		Binormals: pick(g.Binormals, nv, kept),
		Frames:    g.Frames,
		Cells:     make([][3]int, 0, len(g.Cells)),
	}
	for _, c := range g.Cells {
		a, b, d := remap[c[0]], remap[c[1]], remap[c[2]]
		if a == b || b == d || d == a {
			continue
		}
		welded.Cells = append(welded.Cells, [3]int{a, b, d})
	}
	return welded, remap, nil
}

// pick returns the elements of s at indices. Slices not matching the vertex
// count n are attributes that were not generated and stay nil.
func pick[T any](s []T, n int, indices []int) []T {
	if len(s) != n {
		return nil
	}
	out := make([]T, len(indices))
	for i, idx := range indices {
		out[i] = s[idx]
	}
	return out
}

var (
	_ kdtree.Interface  = kdPoints{}
	_ kdtree.Comparable = kdPoint{}
)

// kdPoint is a mesh vertex position stored in a k-d tree along with its index.
type kdPoint struct {
	V   r3.Vec
	idx int
}

// Compare returns the signed distance of a from the plane passing through
// b and perpendicular to the dimension d.
func (a kdPoint) Compare(b kdtree.Comparable, d kdtree.Dim) float64 {
	q := b.(kdPoint)
	switch d {
	case 0:
		return a.V.X - q.V.X
	case 1:
		return a.V.Y - q.V.Y
	case 2:
		return a.V.Z - q.V.Z
	}
	panic("unreachable")
}

// Dims returns the number of dimensions described in the Comparable.
func (a kdPoint) Dims() int { return 3 }

// Distance returns the squared Euclidean distance between the receiver and
// the parameter.
func (a kdPoint) Distance(b kdtree.Comparable) float64 {
	return r3.Norm2(r3.Sub(a.V, b.(kdPoint).V))
}

type kdPoints []kdPoint

func (k kdPoints) Index(i int) kdtree.Comparable { return k[i] }

// Len returns the length of the list.
func (k kdPoints) Len() int { return len(k) }

// Pivot partitions the list based on the dimension specified.
func (k kdPoints) Pivot(d kdtree.Dim) int {
	p := kdPlane{dim: d, points: k}
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

// Slice returns a slice of the list using zero-based half
// open indexing equivalent to built-in slice indexing.
func (k kdPoints) Slice(start, end int) kdtree.Interface { return k[start:end] }

// Bounds returns the bounding box of the points.
func (k kdPoints) Bounds() *kdtree.Bounding {
	set := make(d3.Set, len(k))
	for i, p := range k {
		set[i] = p.V
	}
	bb := set.Bounds()
	return &kdtree.Bounding{
		Min: kdPoint{V: bb.Min},
		Max: kdPoint{V: bb.Max},
	}
}

type kdPlane struct {
	dim    kdtree.Dim
	points kdPoints
}

func (p kdPlane) Less(i, j int) bool {
	return p.points[i].Compare(p.points[j], p.dim) < 0
}
func (p kdPlane) Swap(i, j int) {
	p.points[i], p.points[j] = p.points[j], p.points[i]
}
func (p kdPlane) Len() int {
	return len(p.points)
}
func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	p.points = p.points[start:end]
	return p
}
