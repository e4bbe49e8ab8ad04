package curve

import "gonum.org/v1/gonum/spatial/r3"

// NewLine returns a straight path from from to to split into segments equal
// parts, giving segments+1 sample points. segments below 1 is treated as 1.
// A zero-length line is allowed; every parameter then maps to from.
func NewLine(from, to r3.Vec, segments int) *VertexPath {
	if segments < 1 {
		segments = 1
	}
	pts := make([]r3.Vec, segments+1)
	for i := range pts {
		pts[i] = lerp(from, to, float64(i)/float64(segments))
	}
	pts[segments] = to
	return newVertexPath(pts)
}
