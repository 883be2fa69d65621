// Package meshexp provides post processing for swept meshes: vertex welding,
// angle weighted normals and quad regrouping.
package meshexp

import (
	"math"

	"github.com/soypat/sweep"
	"gonum.org/v1/gonum/spatial/r3"
)

// AngleWeightedNormals returns per vertex normals of g computed as the sum of
// the normals of adjacent triangles weighted by the triangle's angle at the
// vertex. Unlike the radial normals of a sweep these are continuous across
// welded seams and caps. Vertices not referenced by any cell get a zero normal.
func AngleWeightedNormals(g sweep.Geometry) []r3.Vec {
	normals := make([]r3.Vec, len(g.Positions))
	for _, c := range g.Cells {
		p := [3]r3.Vec{g.Positions[c[0]], g.Positions[c[1]], g.Positions[c[2]]}
		n := r3.Cross(r3.Sub(p[1], p[0]), r3.Sub(p[2], p[0]))
		if r3.Norm2(n) == 0 {
			continue
		}
		n = r3.Unit(n)
		for s := 0; s < 3; s++ {
			s1 := r3.Sub(p[(s+1)%3], p[s])
			s2 := r3.Sub(p[(s+2)%3], p[s])
			if r3.Norm2(s1) == 0 || r3.Norm2(s2) == 0 {
				continue
			}
			alpha := math.Acos(sweep.Clamp(r3.Cos(s1, s2), -1, 1))
			normals[c[s]] = r3.Add(normals[c[s]], r3.Scale(alpha, n))
		}
	}
	for i, n := range normals {
		if r3.Norm2(n) != 0 {
			normals[i] = r3.Unit(n)
		}
	}
	return normals
}
