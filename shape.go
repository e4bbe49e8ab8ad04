package sweep

import "gonum.org/v1/gonum/spatial/r3"

// Shape is a cross section bound to a parameter on a sweep curve.
//
// The curve and parameter are fixed at construction. The point list may be
// replaced during normalization; the shape then owns the new buffer. Shapes
// are rebuilt from scratch on every recomputation pass.
type Shape struct {
	points Polygon
	t      float64
	curve  Curve
}

// NewShape returns a shape at parameter t on curve. The shape takes
// ownership of points; callers that keep using the slice must pass a clone.
func NewShape(points Polygon, c Curve, t float64) *Shape {
	return &Shape{points: points, t: t, curve: c}
}

// Points returns the shape's 2D outline. The slice is owned by the shape.
func (s *Shape) Points() Polygon {
	return s.points
}

// Len returns the number of vertices.
func (s *Shape) Len() int {
	return len(s.points)
}

// T returns the curve parameter of the shape.
func (s *Shape) T() float64 {
	return s.t
}

// Curve returns the curve the shape is placed on.
func (s *Shape) Curve() Curve {
	return s.curve
}

// Points3D lifts the outline into space using the curve frame at T.
func (s *Shape) Points3D() []r3.Vec {
	if s.curve == nil {
		out := make([]r3.Vec, len(s.points))
		for i, p := range s.points {
			out[i] = r3.Vec{X: p.X, Y: p.Y}
		}
		return out
	}
	return FrameAt(s.curve, s.t).LiftPolygon(s.points)
}

// setPoints replaces the outline; ownership of p moves to the shape.
func (s *Shape) setPoints(p Polygon) {
	s.points = p
}
