package curve

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// CubicBez is a cubic Bezier segment in space.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 r3.Vec
}

// NewCubicBez creates a new cubic Bezier segment.
func NewCubicBez(p0, p1, p2, p3 r3.Vec) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Eval evaluates the segment at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) r3.Vec {
	mt := 1.0 - t
	mt2 := mt * mt
	t2 := t * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	p := r3.Scale(mt2*mt, c.P0)
	p = r3.Add(p, r3.Scale(3*mt2*t, c.P1))
	p = r3.Add(p, r3.Scale(3*mt*t2, c.P2))
	return r3.Add(p, r3.Scale(t2*t, c.P3))
}

// Deriv returns the first derivative at parameter t:
// 3[(P1-P0)(1-t)^2 + 2(P2-P1)(1-t)t + (P3-P2)t^2].
func (c CubicBez) Deriv(t float64) r3.Vec {
	mt := 1.0 - t
	d0 := r3.Sub(c.P1, c.P0)
	d1 := r3.Sub(c.P2, c.P1)
	d2 := r3.Sub(c.P3, c.P2)
	d := r3.Scale(mt*mt, d0)
	d = r3.Add(d, r3.Scale(2*mt*t, d1))
	d = r3.Add(d, r3.Scale(t*t, d2))
	return r3.Scale(3, d)
}

// Tangent returns the unit tangent at parameter t. Where the derivative
// vanishes (coincident control points) the chord direction is used.
func (c CubicBez) Tangent(t float64) r3.Vec {
	return unitOr(c.Deriv(t), unitOr(r3.Sub(c.P3, c.P0), r3.Vec{Z: 1}))
}

// Subdivide splits the segment at t=0.5 into two halves using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	p01 := lerp(c.P0, c.P1, 0.5)
	p12 := lerp(c.P1, c.P2, 0.5)
	p23 := lerp(c.P2, c.P3, 0.5)
	p012 := lerp(p01, p12, 0.5)
	p123 := lerp(p12, p23, 0.5)
	mid := lerp(p012, p123, 0.5)

	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// Flatten returns n+1 points evaluated at uniform parameter steps.
func (c CubicBez) Flatten(n int) []r3.Vec {
	if n < 1 {
		n = 1
	}
	pts := make([]r3.Vec, n+1)
	for i := range pts {
		pts[i] = c.Eval(float64(i) / float64(n))
	}
	return pts
}

// NewBezierPath flattens a chain of cubic segments into a path with
// samplesPerSegment sample intervals per segment. Each segment is expected
// to start where the previous one ends.
func NewBezierPath(segments []CubicBez, samplesPerSegment int) (*VertexPath, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("bezier path: no segments: %w", ErrTooFewPoints)
	}
	var pts []r3.Vec
	for i, s := range segments {
		flat := s.Flatten(samplesPerSegment)
		if i > 0 {
			flat = flat[1:]
		}
		pts = append(pts, flat...)
	}
	return NewVertexPath(pts)
}
