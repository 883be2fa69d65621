package sweep

import "fmt"

// InvalidPathError is returned when the sweep path has fewer than 2 points.
type InvalidPathError struct {
	Len int
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("sweep path needs at least 2 points, got %d", e.Len)
}

// InvalidShapeError is returned when the cross-section has fewer than 2 points.
type InvalidShapeError struct {
	Len int
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("sweep shape needs at least 2 points, got %d", e.Len)
}

// DegenerateSegmentError is returned when the tangent at Index cannot be
// estimated because every candidate neighbour is coincident with the point.
type DegenerateSegmentError struct {
	Index int
}

func (e *DegenerateSegmentError) Error() string {
	return fmt.Sprintf("path point %d has no distinct neighbour to estimate a tangent", e.Index)
}

// DegenerateFrameError is returned when a frame at Index can not be made orthonormal.
type DegenerateFrameError struct {
	Index  int
	Reason string
}

func (e *DegenerateFrameError) Error() string {
	return fmt.Sprintf("degenerate frame %d: %s", e.Index, e.Reason)
}

// InvalidRadiusError is returned when a per-step radius does not cover the path.
type InvalidRadiusError struct {
	Steps, PathLen int
}

func (e *InvalidRadiusError) Error() string {
	return fmt.Sprintf("per-step radius has %d entries, path has %d points", e.Steps, e.PathLen)
}

// InvalidConfigError is returned for inconsistent precomputed inputs.
type InvalidConfigError struct {
	Field string
	Got   int
	Want  int
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("config %s: got length %d, want %d", e.Field, e.Got, e.Want)
}
