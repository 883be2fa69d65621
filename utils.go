package sweep

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	pi  = math.Pi
	tau = 2 * pi
	// epsilon is the length below which a difference vector or
	// a cross product is considered zero.
	epsilon = 1e-5
)

// Clamp x between a and b, assume a <= b
func Clamp(x, a, b float64) float64 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// angleBetween returns the angle between unit vectors a and b.
// The dot product is clamped so rounding never takes acos out of its domain.
func angleBetween(a, b r3.Vec) float64 {
	return math.Acos(Clamp(r3.Dot(a, b), -1, 1))
}

// rotate rotates v by alpha radians about the unit vector axis.
func rotate(v, axis r3.Vec, alpha float64) r3.Vec {
	return r3.NewRotation(alpha, axis).Rotate(v)
}

// unitOr returns the unit vector of v, or ok=false if v is too short.
func unitOr(v r3.Vec) (u r3.Vec, ok bool) {
	n := r3.Norm(v)
	if n < epsilon {
		return r3.Vec{}, false
	}
	return r3.Scale(1/n, v), true
}

// InferClosed reports whether the first and last points of path coincide.
func InferClosed(path []r3.Vec) bool {
	if len(path) < 2 {
		return false
	}
	return r3.Norm(r3.Sub(path[len(path)-1], path[0])) < epsilon
}
