package matter

import (
	"slices"

	"github.com/soypat/sweep"
	"github.com/soypat/sweep/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// PLA (polylactic acid) is the most widely used plastic filament material in 3D printing.
	PLA = ViscousMaterial{shrink: 0.2e-2, pullShrink: .45} // 0.2% shrinkage
)

type ViscousMaterial struct {
	// shrink is the thermal contraction shrinkage of a material once the material
	// cools to room temperature after the heated bed is turned off.
	shrink float64
	// pullShrink takes into account viscoelastic shrinkage.
	pullShrink float64
}

// Scale returns a copy of g with positions scaled about the origin to
// compensate for thermal shrinkage. Directions are left untouched.
func (m ViscousMaterial) Scale(g sweep.Geometry) sweep.Geometry {
	scale := 1 / (1 - m.shrink)
	out := sweep.Geometry{
		Positions: make([]r3.Vec, len(g.Positions)),
		Normals:   slices.Clone(g.Normals),
		UVs:       slices.Clone(g.UVs),
		Cells:     slices.Clone(g.Cells),
		Tangents:  slices.Clone(g.Tangents),
		Binormals: slices.Clone(g.Binormals),
		Frames:    slices.Clone(g.Frames),
	}
	for i, p := range g.Positions {
		out.Positions[i] = r3.Scale(scale, p)
	}
	for i := range out.Frames {
		out.Frames[i].Position = r3.Scale(scale, out.Frames[i].Position)
	}
	return out
}

// InternalDimScale returns the dimension to model so that a hole or slot
// of real size comes out of the printer at that size.
func (m ViscousMaterial) InternalDimScale(real float64) float64 {
	if real <= 0 {
		panic("InternalDimScale only works for non-zero dimensions")
	}
	return real*(m.shrink+1) + m.pullShrink
}

// InternalShape scales a cross-section so the inner dimensions of a channel
// swept with it come out at their modeled size. Each axis is compensated
// independently using the extents of the shape. It panics if the shape
// has no extent along an axis.
func (m ViscousMaterial) InternalShape(shape []r2.Vec) []r2.Vec {
	set := d2.Set(shape)
	lo, hi := set.Min(), set.Max()
	size := r2.Sub(hi, lo)
	sx, sy := m.InternalDimScale(size.X)/size.X, m.InternalDimScale(size.Y)/size.Y
	out := make([]r2.Vec, len(shape))
	for i, p := range shape {
		out[i] = r2.Vec{X: p.X * sx, Y: p.Y * sy}
	}
	return out
}
