package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/soypat/sweep"
)

// WriteOBJ writes g as a Wavefront OBJ mesh. Unlike STL the vertex normals and
// texture coordinates of the geometry are preserved and vertices are shared
// between faces.
func WriteOBJ(w io.Writer, g sweep.Geometry) error {
	if len(g.Cells) == 0 {
		return errors.New("empty geometry")
	}
	hasNormals := len(g.Normals) == len(g.Positions)
	hasUVs := len(g.UVs) == len(g.Positions)
	bw := bufio.NewWriter(w)
	for _, p := range g.Positions {
		fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
	}
	if hasUVs {
		for _, uv := range g.UVs {
			fmt.Fprintf(bw, "vt %g %g\n", uv.X, uv.Y)
		}
	}
	if hasNormals {
		for _, n := range g.Normals {
			fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
		}
	}
	for _, c := range g.Cells {
		// OBJ indices are 1 based.
		a, b, d := c[0]+1, c[1]+1, c[2]+1
		switch {
		case hasUVs && hasNormals:
			fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, d, d, d)
		case hasNormals:
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, d, d)
		case hasUVs:
			fmt.Fprintf(bw, "f %d/%d %d/%d %d/%d\n", a, a, b, b, d, d)
		default:
			fmt.Fprintf(bw, "f %d %d %d\n", a, b, d)
		}
	}
	return bw.Flush()
}
