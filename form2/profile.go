// Package form2 provides planar cross-sections to sweep along a path.
// Functions return an error where their must2 counterpart panics.
package form2

import (
	"github.com/soypat/sweep/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Circle returns n points evenly spaced on a circle of the given radius.
func Circle(n int, radius float64) (v []r2.Vec, err error) {
	defer recoverShape(&err)
	return must2.Circle(n, radius), err
}

// Square returns the 4 corners of a square centered at the origin.
func Square(side float64) (v []r2.Vec, err error) {
	defer recoverShape(&err)
	return must2.Square(side), err
}

// Rect returns the 4 corners of a rectangle centered at the origin.
func Rect(size r2.Vec) (v []r2.Vec, err error) {
	defer recoverShape(&err)
	return must2.Rect(size), err
}

// Star returns a star of 2*branches points alternating between inner and outer radius.
func Star(branches int, inner, outer float64) (v []r2.Vec, err error) {
	defer recoverShape(&err)
	return must2.Star(branches, inner, outer), err
}

// Nagon return the vertices of a N sided regular polygon.
func Nagon(n int, radius float64) (v []r2.Vec, err error) {
	defer recoverShape(&err)
	return must2.Nagon(n, radius), err
}

// NewPolygon returns an empty polygon.
func NewPolygon() *must2.PolygonBuilder {
	return must2.NewPolygon()
}

// Vertices returns the vertices built by p.
func Vertices(p *must2.PolygonBuilder) (v []r2.Vec, err error) {
	defer recoverShape(&err)
	return p.Vertices(), err
}
