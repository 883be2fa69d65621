package meshexp

import "github.com/soypat/sweep"

// Quads regroups consecutive cell pairs sharing a diagonal into quads.
// A pair (a,b,c),(a,c,d) becomes the quad (a,b,c,d), which is how sweep
// emits the faces between rings. Cells that do not pair, such as cap fans,
// are returned in tris.
func Quads(g sweep.Geometry) (quads [][4]int, tris [][3]int) {
	cells := g.Cells
	for i := 0; i < len(cells); i++ {
		c0 := cells[i]
		if i+1 < len(cells) {
			c1 := cells[i+1]
			if c0[0] == c1[0] && c0[2] == c1[1] && c1[2] != c0[1] {
				quads = append(quads, [4]int{c0[0], c0[1], c0[2], c1[2]})
				i++
				continue
			}
		}
		tris = append(tris, c0)
	}
	return quads, tris
}
