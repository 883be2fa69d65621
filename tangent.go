package sweep

import "gonum.org/v1/gonum/spatial/r3"

// Tangents returns a unit tangent for every point of path.
//
// Interior points and the first point use the forward difference to the next
// point. The last point of an open path uses the backward difference. The last
// point of a closed path looks forward to path[1], since closed paths commonly
// repeat their first point at the end.
//
// When a difference is shorter than the tolerance the next distinct point further
// along the path is used instead, then the closest distinct point behind it.
// A *DegenerateSegmentError is returned if no distinct point exists.
func Tangents(path []r3.Vec, closed bool) ([]r3.Vec, error) {
	if len(path) < 2 {
		return nil, &InvalidPathError{Len: len(path)}
	}
	tangents := make([]r3.Vec, len(path))
	for i := range path {
		t, ok := tangentAt(path, i, closed)
		if !ok {
			return nil, &DegenerateSegmentError{Index: i}
		}
		tangents[i] = t
	}
	return tangents, nil
}

func tangentAt(path []r3.Vec, i int, closed bool) (r3.Vec, bool) {
	last := len(path) - 1
	p := path[i]
	switch {
	case i < last:
		for k := i + 1; k <= last; k++ {
			if t, ok := unitOr(r3.Sub(path[k], p)); ok {
				return t, true
			}
		}
	case closed:
		// Wrap to index 1, index 0 is usually path[last].
		for k := 1; k < last; k++ {
			if t, ok := unitOr(r3.Sub(path[k], p)); ok {
				return t, true
			}
		}
	}
	for k := i - 1; k >= 0; k-- {
		if t, ok := unitOr(r3.Sub(p, path[k])); ok {
			return t, true
		}
	}
	return r3.Vec{}, false
}
