// Package sweep builds triangle meshes by sweeping a planar cross-section
// along a 3D path.
//
// The path is first given a unit tangent per point, then a sequence of
// rotation minimizing frames is propagated along it so the section does not
// twist needlessly. Finally a copy of the section is placed in every frame and
// consecutive copies are stitched together with triangles.
package sweep

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Closure selects whether a path or shape wraps back to its start.
// Values other than Open and Closed behave as Auto.
type Closure uint8

const (
	// Auto closes a path whose first and last points coincide
	// and closes every shape with more than 2 points.
	Auto Closure = iota
	Open
	Closed
)

func (c Closure) String() string {
	switch c {
	case Open:
		return "open"
	case Closed:
		return "closed"
	}
	return "auto"
}

// Config holds the sweep options. The zero value sweeps a closed shape
// of radius 1 along a path whose closure is inferred, without caps.
type Config struct {
	// Path closure. Auto closes the path if its endpoints coincide.
	Path Closure
	// Shape closure. Auto closes shapes of more than 2 points.
	// A 2 point shape is always open.
	Shape Closure
	// Caps closes the ends of an open path. Ignored for closed paths.
	Caps bool
	// Radius scales the shape. The zero value is Uniform(1).
	Radius Radius
	// InitialNormal seeds the first frame. It must not be parallel to the
	// first tangent. The zero vector synthesizes one from the tangent.
	InitialNormal r3.Vec
	// WithFrames also exports per vertex tangents, binormals and the frames.
	WithFrames bool
	// Tangents skips tangent estimation when set. Must match the path length.
	Tangents []r3.Vec
	// Frames skips tangent estimation and frame propagation when set.
	// The path may then be nil, frame positions are used instead.
	Frames []Frame
	// Concurrency is the number of goroutines used to fill rings.
	Concurrency int
}

// resolved is a Config with its defaults applied against a path and shape.
type resolved struct {
	closedPath bool
	extrude    ExtrudeConfig
}

// resolve applies defaults and validates cfg before anything is allocated.
func (cfg Config) resolve(path []r3.Vec, shape []r2.Vec) (resolved, error) {
	n := len(path)
	if cfg.Frames != nil {
		if n != 0 && n != len(cfg.Frames) {
			return resolved{}, &InvalidConfigError{Field: "frames", Got: len(cfg.Frames), Want: n}
		}
		n = len(cfg.Frames)
	}
	if n < 2 {
		return resolved{}, &InvalidPathError{Len: n}
	}
	if len(shape) < 2 {
		return resolved{}, &InvalidShapeError{Len: len(shape)}
	}
	if cfg.Frames == nil && cfg.Tangents != nil && len(cfg.Tangents) != n {
		return resolved{}, &InvalidConfigError{Field: "tangents", Got: len(cfg.Tangents), Want: n}
	}
	if err := cfg.Radius.validate(n); err != nil {
		return resolved{}, err
	}
	var closed bool
	switch cfg.Path {
	case Open:
	case Closed:
		closed = true
	default:
		if cfg.Frames != nil {
			closed = InferClosed([]r3.Vec{cfg.Frames[0].Position, cfg.Frames[n-1].Position})
		} else {
			closed = InferClosed(path)
		}
	}
	return resolved{
		closedPath: closed,
		extrude: ExtrudeConfig{
			Radius:      cfg.Radius,
			ClosedPath:  closed,
			ClosedShape: cfg.Shape != Open && len(shape) > 2,
			Caps:        cfg.Caps && !closed,
			WithFrames:  cfg.WithFrames,
			Concurrency: cfg.Concurrency,
		},
	}, nil
}

// Sweep sweeps shape along path and returns the resulting mesh.
// Shape points are given in the cross-section plane: X maps onto each frame's
// binormal and Y onto its normal.
//
// On error no geometry is returned. Errors are one of *InvalidPathError,
// *InvalidShapeError, *DegenerateSegmentError, *DegenerateFrameError,
// *InvalidRadiusError or *InvalidConfigError.
func Sweep(path []r3.Vec, shape []r2.Vec, cfg Config) (Geometry, error) {
	rc, err := cfg.resolve(path, shape)
	if err != nil {
		return Geometry{}, err
	}
	frames := cfg.Frames
	if frames == nil {
		tangents := cfg.Tangents
		if tangents == nil {
			tangents, err = Tangents(path, rc.closedPath)
			if err != nil {
				return Geometry{}, err
			}
		}
		frames, err = Frames(path, tangents, rc.closedPath, cfg.InitialNormal)
		if err != nil {
			return Geometry{}, err
		}
	}
	return Extrude(frames, shape, rc.extrude)
}
