package must2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const sqrtHalf = 0.7071067811865476

// Cross-section profiles. Every profile is wound counter clockwise about the
// origin so that swept faces point away from the path.

// Circle returns n points evenly spaced on a circle of the given radius,
// starting at (radius, 0).
func Circle(n int, radius float64) []r2.Vec {
	if n < 3 {
		panic("circle needs at least 3 points")
	}
	if radius <= 0 {
		panic("radius <= 0")
	}
	v := make([]r2.Vec, n)
	for i := range v {
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		v[i] = r2.Vec{X: radius * c, Y: radius * s}
	}
	return v
}

// Square returns the corners of an axis aligned square centered at the
// origin, starting at the (+X,+Y) corner.
func Square(side float64) []r2.Vec {
	return Rect(r2.Vec{X: side, Y: side})
}

// Rect returns the corners of an axis aligned rectangle of the given size
// centered at the origin, starting at the (+X,+Y) corner.
func Rect(size r2.Vec) []r2.Vec {
	if size.X <= 0 || size.Y <= 0 {
		panic("rectangle size must be positive")
	}
	h := r2.Scale(0.5, size)
	return []r2.Vec{
		{X: h.X, Y: h.Y},
		{X: -h.X, Y: h.Y},
		{X: -h.X, Y: -h.Y},
		{X: h.X, Y: -h.Y},
	}
}

// Star returns a star with the given number of branches. Points alternate
// between the inner and outer radius, starting with an inner point on +Y.
func Star(branches int, inner, outer float64) []r2.Vec {
	if branches < 2 {
		panic("star needs at least 2 branches")
	}
	if inner <= 0 || outer <= 0 {
		panic("star radii must be positive")
	}
	n := 2 * branches
	v := make([]r2.Vec, n)
	for i := range v {
		r := inner
		if i%2 == 1 {
			r = outer
		}
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		v[i] = r2.Vec{X: -r * s, Y: r * c}
	}
	return v
}

func sign(f float64) float64 {
	if f == 0 {
		return 0
	}
	return math.Copysign(1, f)
}
