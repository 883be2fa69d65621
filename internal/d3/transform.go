package d3

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform represents a 3D affine transformation.
// The zero value of Transform is the identity transform.
type Transform struct {
	// in order to make the zero value of Transform represent the identity
	// transform we store it with the identity matrix subtracted.
	// These diagonal elements are subtracted such that
	//  d00 = x00-1, d11 = x11-1, d22 = x22-1
	// where x00, x11, x22 are the matrix diagonal elements.
	// The last row is always 0,0,0,1.
	d00, x01, x02, x03 float64
	x10, d11, x12, x13 float64
	x20, x21, d22, x23 float64
}

// NewTransform returns a new Transform and populates its elements
// with the first three rows of a 4x4 matrix in row-major form.
func NewTransform(a []float64) Transform {
	if len(a) != 12 {
		panic("Transform is initialized with 12 values")
	}
	return Transform{
		d00: a[0] - 1, x01: a[1], x02: a[2], x03: a[3],
		x10: a[4], d11: a[5] - 1, x12: a[6], x13: a[7],
		x20: a[8], x21: a[9], d22: a[10] - 1, x23: a[11],
	}
}

// Basis returns the Transform whose linear part has columns u, v and w
// and whose translation is origin. It maps (x,y,z) to origin + x*u + y*v + z*w.
func Basis(u, v, w, origin r3.Vec) Transform {
	return NewTransform([]float64{
		u.X, v.X, w.X, origin.X,
		u.Y, v.Y, w.Y, origin.Y,
		u.Z, v.Z, w.Z, origin.Z,
	})
}

// Transform applies the Transform to the argument vector
// and returns the result.
func (t Transform) Transform(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: (t.d00+1)*v.X + t.x01*v.Y + t.x02*v.Z + t.x03,
		Y: t.x10*v.X + (t.d11+1)*v.Y + t.x12*v.Z + t.x13,
		Z: t.x20*v.X + t.x21*v.Y + (t.d22+1)*v.Z + t.x23,
	}
}

// Det returns the determinant of the linear part of the Transform.
// A basis of orthonormal columns has determinant +1 when right handed
// and -1 when left handed.
func (t Transform) Det() float64 {
	x00 := t.d00 + 1
	x11 := t.d11 + 1
	x22 := t.d22 + 1
	return x00*(x11*x22-t.x12*t.x21) -
		t.x01*(t.x10*x22-t.x12*t.x20) +
		t.x02*(t.x10*t.x21-x11*t.x20)
}
