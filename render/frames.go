package render

import (
	"github.com/soypat/sweep"
	"gonum.org/v1/gonum/spatial/r3"
)

// Line is a segment from A to B.
type Line struct {
	A, B r3.Vec
}

// FrameLines returns debug segments of the given length drawn from each frame
// position along its tangent, normal and binormal, in that order.
func FrameLines(frames []sweep.Frame, length float64) []Line {
	lines := make([]Line, 0, 3*len(frames))
	for _, f := range frames {
		for _, dir := range [3]r3.Vec{f.Tangent, f.Normal, f.Binormal} {
			lines = append(lines, Line{A: f.Position, B: r3.Add(f.Position, r3.Scale(length, dir))})
		}
	}
	return lines
}
