package sweep

import (
	"math"

	"github.com/soypat/sweep/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Frame is an orthonormal basis placed at a path point. The cross-section's
// local X axis maps onto Binormal, its Y axis onto Normal and Z onto Tangent.
//
// Binormal is always Tangent×Normal, so Normal×Binormal == Tangent.
type Frame struct {
	Position r3.Vec
	Tangent  r3.Vec
	Normal   r3.Vec
	Binormal r3.Vec
}

// Transform returns local cross-section coordinates in world space.
func (f Frame) Transform(local r3.Vec) r3.Vec {
	return f.basis().Transform(local)
}

func (f Frame) basis() d3.Transform {
	return d3.Basis(f.Binormal, f.Normal, f.Tangent, f.Position)
}

// Frames propagates rotation minimizing frames along path. tangents must hold a
// unit tangent per path point, see [Tangents]. If initialNormal is the zero
// vector the first normal is synthesized from the first tangent.
//
// Each frame is obtained by rotating the previous normal with the smallest
// rotation that takes the previous tangent onto the current one. When closed
// is true the residual twist between the first and last frame is spread
// linearly over the sequence.
func Frames(path, tangents []r3.Vec, closed bool, initialNormal r3.Vec) ([]Frame, error) {
	if len(path) < 2 {
		return nil, &InvalidPathError{Len: len(path)}
	}
	if len(tangents) != len(path) {
		return nil, &InvalidConfigError{Field: "tangents", Got: len(tangents), Want: len(path)}
	}
	for i, t := range tangents {
		if r3.Norm(t) < epsilon {
			return nil, &DegenerateFrameError{Index: i, Reason: "zero length tangent"}
		}
	}
	t0 := unitTangent(tangents[0])
	normal, err := initialNormalFor(t0, initialNormal)
	if err != nil {
		return nil, err
	}
	frames := make([]Frame, len(path))
	frames[0] = newFrame(path[0], t0, normal)
	for i := 1; i < len(path); i++ {
		prev := frames[i-1]
		t := unitTangent(tangents[i])
		frames[i] = newFrame(path[i], t, transport(prev.Normal, prev.Tangent, t))
	}
	if closed {
		correctTwist(frames)
	}
	return frames, nil
}

// initialNormalFor returns the first frame normal for unit tangent t.
func initialNormalFor(t, seed r3.Vec) (r3.Vec, error) {
	if seed != (r3.Vec{}) {
		n, ok := unitOr(reject(seed, t))
		if !ok {
			return r3.Vec{}, &DegenerateFrameError{Index: 0, Reason: "initial normal parallel to tangent"}
		}
		return n, nil
	}
	v := r3.Cross(t, helperAxis(t))
	n, ok := unitOr(r3.Cross(t, v))
	if !ok {
		return r3.Vec{}, &DegenerateFrameError{Index: 0, Reason: "could not synthesize normal"}
	}
	return n, nil
}

// helperAxis picks a world axis that is never parallel to t.
func helperAxis(t r3.Vec) r3.Vec {
	atx, aty, atz := math.Abs(t.X), math.Abs(t.Y), math.Abs(t.Z)
	switch {
	case atz > atx && atz >= aty:
		return r3.Vec{Y: 1}
	case aty > atx && aty >= atz:
		return r3.Vec{X: 1}
	default:
		return r3.Vec{Z: 1}
	}
}

// transport carries normal n from a frame with tangent prevT to one with tangent t.
func transport(n, prevT, t r3.Vec) r3.Vec {
	axis := r3.Cross(prevT, t)
	if r3.Norm(axis) > epsilon {
		return rotate(n, r3.Unit(axis), angleBetween(prevT, t))
	}
	// Parallel tangents need no rotation. Antiparallel tangents leave the axis
	// undefined: a half turn about n itself maps prevT onto t and keeps n,
	// so the normal carries over and the binormal flips sign.
	return n
}

// correctTwist rotates frame i about its tangent by i times an equal share of
// the angle between the first and last normals. The sign is chosen so that the
// last normal turns towards the first one.
func correctTwist(frames []Frame) {
	first, last := frames[0], frames[len(frames)-1]
	step := angleBetween(first.Normal, last.Normal) / float64(len(frames)-1)
	if r3.Dot(r3.Cross(last.Tangent, last.Normal), first.Normal) < 0 {
		step = -step
	}
	for i := range frames {
		f := &frames[i]
		f.Normal = rotate(f.Normal, f.Tangent, step*float64(i))
		f.Binormal = r3.Cross(f.Tangent, f.Normal)
	}
}

func newFrame(pos, t, n r3.Vec) Frame {
	// Remove rounding drift so the basis stays orthonormal along long paths.
	n = r3.Unit(reject(n, t))
	return Frame{
		Position: pos,
		Tangent:  t,
		Normal:   n,
		Binormal: r3.Cross(t, n),
	}
}

// reject returns the component of v perpendicular to unit vector u.
func reject(v, u r3.Vec) r3.Vec {
	return r3.Sub(v, r3.Scale(r3.Dot(v, u), u))
}

// unitTangent returns t untouched when it is already unit length.
func unitTangent(t r3.Vec) r3.Vec {
	if math.Abs(r3.Norm(t)-1) <= epsilon {
		return t
	}
	return r3.Unit(t)
}
