package curve

import "gonum.org/v1/gonum/spatial/r3"

// NewCatmullRomPath returns a path through the control points, sampled
// samplesPerSegment times per span. Tension controls tightness (0.5 is the
// standard Catmull-Rom spline, 0 gives straight spans). The end spans use
// phantom points reflected off the first and last segments.
func NewCatmullRomPath(control []r3.Vec, samplesPerSegment int, tension float64) (*VertexPath, error) {
	n := len(control)
	if n < 2 {
		return nil, ErrTooFewPoints
	}
	if samplesPerSegment < 1 {
		samplesPerSegment = 1
	}

	ext := make([]r3.Vec, n+2)
	ext[0] = r3.Add(control[0], r3.Sub(control[0], control[1]))
	copy(ext[1:], control)
	ext[n+1] = r3.Add(control[n-1], r3.Sub(control[n-1], control[n-2]))

	pts := make([]r3.Vec, 0, (n-1)*samplesPerSegment+1)
	for i := 1; i < n; i++ {
		for j := 0; j < samplesPerSegment; j++ {
			t := float64(j) / float64(samplesPerSegment)
			pts = append(pts, catmullRomPoint(ext[i-1], ext[i], ext[i+1], ext[i+2], t, tension))
		}
	}
	pts = append(pts, control[n-1])
	return NewVertexPath(pts)
}

// catmullRomPoint evaluates one span of a Catmull-Rom spline with tension s.
func catmullRomPoint(p0, p1, p2, p3 r3.Vec, t, s float64) r3.Vec {
	t2 := t * t
	t3 := t2 * t
	c0 := -s*t3 + 2*s*t2 - s*t
	c1 := (2-s)*t3 + (s-3)*t2 + 1
	c2 := (s-2)*t3 + (3-2*s)*t2 + s*t
	c3 := s*t3 - s*t2

	p := r3.Scale(c0, p0)
	p = r3.Add(p, r3.Scale(c1, p1))
	p = r3.Add(p, r3.Scale(c2, p2))
	return r3.Add(p, r3.Scale(c3, p3))
}
