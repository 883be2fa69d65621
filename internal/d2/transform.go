package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Transform represents a 2D spatial transformation
// including translation and rotation, stored as a 3x3 matrix.
type Transform struct {
	data [3 * 3]float64 // stack stronk
}

func NewTransform(data []float64) Transform {
	if len(data) != 9 {
		panic("bad length")
	}
	t := Transform{}
	copy(t.data[:], data)
	return t
}

// Rotate returns an orthographic 2d rotation matrix
// that rotates counter clockwise by a radians.
func Rotate(a float64) Transform {
	s, c := math.Sincos(a)
	return NewTransform([]float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
}

func (t *Transform) At(i, j int) float64 {
	return t.data[i*3+j]
}

// MulPosition applies the transform to a position.
func (t Transform) MulPosition(b r2.Vec) r2.Vec {
	return r2.Vec{
		X: t.At(0, 0)*b.X + t.At(0, 1)*b.Y + t.At(0, 2),
		Y: t.At(1, 0)*b.X + t.At(1, 1)*b.Y + t.At(1, 2),
	}
}
