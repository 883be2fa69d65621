package sweep

import "gonum.org/v1/gonum/spatial/r2"

type radiusKind uint8

const (
	radiusUnset radiusKind = iota
	radiusUniform
	radiusPerStep
)

// Radius scales the cross-section along its local X and Y axes. A Radius is
// either uniform along the whole path or given per path point, which lets a
// sweep taper. The zero value is a uniform radius of 1.
type Radius struct {
	kind  radiusKind
	value r2.Vec
	steps []r2.Vec
}

// Uniform returns an isotropic radius r for every path point.
func Uniform(r float64) Radius { return Anisotropic(r, r) }

// Anisotropic returns a radius scaling local X by rx and local Y by ry at every path point.
func Anisotropic(rx, ry float64) Radius {
	return Radius{kind: radiusUniform, value: r2.Vec{X: rx, Y: ry}}
}

// PerStep returns a radius that uses steps[i] as (rx, ry) at path point i.
// steps is not copied and must not be modified while in use.
func PerStep(steps []r2.Vec) Radius {
	return Radius{kind: radiusPerStep, steps: steps}
}

// Taper returns a per step isotropic radius, rs[i] being the radius at path point i.
func Taper(rs []float64) Radius {
	steps := make([]r2.Vec, len(rs))
	for i, r := range rs {
		steps[i] = r2.Vec{X: r, Y: r}
	}
	return PerStep(steps)
}

// Resolve returns the X and Y scale of the cross-section at path point i.
func (r Radius) Resolve(i int) (rx, ry float64) {
	switch r.kind {
	case radiusUniform:
		return r.value.X, r.value.Y
	case radiusPerStep:
		s := r.steps[i]
		return s.X, s.Y
	}
	return 1, 1
}

// validate checks a per step radius covers every one of n path points.
func (r Radius) validate(n int) error {
	if r.kind == radiusPerStep && len(r.steps) < n {
		return &InvalidRadiusError{Steps: len(r.steps), PathLen: n}
	}
	return nil
}
