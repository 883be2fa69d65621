// Package must3 generates 3D sweep paths. Functions panic on invalid
// arguments, see package form3 for the error returning versions.
package must3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Paths built from n segments have n+1 points. Closed curves repeat their
// first point at the end so sweeps infer them as closed.

// Circle returns a closed circle of the given radius in the XY plane
// centered at the origin, starting at (radius, 0, 0) and turning counter clockwise.
func Circle(radius float64, n int) []r3.Vec {
	if radius <= 0 {
		panic("radius <= 0")
	}
	if n < 3 {
		panic("circle needs at least 3 segments")
	}
	path := make([]r3.Vec, n+1)
	for i := 0; i < n; i++ {
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		path[i] = r3.Vec{X: radius * c, Y: radius * s}
	}
	path[n] = path[0]
	return path
}

// KnotParms configures a closed knot curve.
type KnotParms struct {
	// Segments is the number of path segments. Zero means 64.
	Segments int
	// Scale multiplies every point. Zero means 0.1.
	Scale float64
}

// Knot returns a closed non planar knot. With the default scale it fits
// in a box about 4 units across.
func Knot(k KnotParms) []r3.Vec {
	n := k.Segments
	if n == 0 {
		n = 64
	}
	scale := k.Scale
	if scale == 0 {
		scale = 0.1
	}
	if n < 3 {
		panic("knot needs at least 3 segments")
	}
	if scale < 0 {
		panic("knot scale < 0")
	}
	path := make([]r3.Vec, n+1)
	for i := 0; i < n; i++ {
		t := 2 * math.Pi * float64(i) / float64(n)
		path[i] = r3.Scale(scale, r3.Vec{
			X: 10*(math.Cos(t)+math.Cos(3*t)) + math.Cos(2*t) + math.Cos(4*t),
			Y: 6*math.Sin(t) + 10*math.Sin(3*t),
			Z: 4*math.Sin(3*t)*math.Sin(5*t/2) + 4*math.Sin(4*t) - 2*math.Sin(6*t),
		})
	}
	path[n] = path[0]
	return path
}

// Helix returns a right handed helix about the Z axis starting at
// (radius, 0, 0). Each turn rises pitch along Z. Negative pitch descends.
func Helix(radius, pitch, turns float64, n int) []r3.Vec {
	if radius <= 0 {
		panic("radius <= 0")
	}
	if turns <= 0 {
		panic("turns <= 0")
	}
	if n < 1 {
		panic("helix needs at least 1 segment")
	}
	path := make([]r3.Vec, n+1)
	for i := range path {
		f := turns * float64(i) / float64(n)
		s, c := math.Sincos(2 * math.Pi * f)
		path[i] = r3.Vec{X: radius * c, Y: radius * s, Z: pitch * f}
	}
	return path
}

// Line returns n equal segments from a to b.
func Line(a, b r3.Vec, n int) []r3.Vec {
	if n < 1 {
		panic("line needs at least 1 segment")
	}
	if a == b {
		panic("line endpoints coincide")
	}
	path := make([]r3.Vec, n+1)
	d := r3.Sub(b, a)
	for i := range path {
		path[i] = r3.Add(a, r3.Scale(float64(i)/float64(n), d))
	}
	path[n] = b
	return path
}
