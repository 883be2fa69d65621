// Package form3 generates 3D paths to sweep cross-sections along.
package form3

import (
	"fmt"
	"runtime/debug"

	"github.com/soypat/sweep/form3/must3"
	"gonum.org/v1/gonum/spatial/r3"
)

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// KnotParms configures Knot.
type KnotParms = must3.KnotParms

// Circle returns a closed circle of n segments in the XY plane.
func Circle(radius float64, n int) (path []r3.Vec, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must3.Circle(radius, n), err
}

// Knot returns a closed knot curve.
func Knot(k KnotParms) (path []r3.Vec, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must3.Knot(k), err
}

// Helix returns a helix about the Z axis of n segments.
func Helix(radius, pitch, turns float64, n int) (path []r3.Vec, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must3.Helix(radius, pitch, turns, n), err
}

// Line returns n equal segments from start to end.
func Line(start, end r3.Vec, n int) (path []r3.Vec, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must3.Line(start, end, n), err
}
