package sweep

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Frame is an orthonormal basis placing a cross-section plane in space.
// Local X maps to Right, local Y to Up, and Forward is the curve tangent.
// The basis is right-handed: Right x Up = Forward.
type Frame struct {
	Origin  r3.Vec
	Right   r3.Vec
	Up      r3.Vec
	Forward r3.Vec
}

var (
	axisX = r3.Vec{X: 1}
	axisY = r3.Vec{Y: 1}
	axisZ = r3.Vec{Z: 1}
)

// FrameAt returns the cross-section frame of c at parameter t.
func FrameAt(c Curve, t float64) Frame {
	origin := c.PointAt(t)
	forward := c.DirectionAt(t)
	if r3.Norm2(forward) == 0 {
		forward = axisZ
	} else {
		forward = r3.Unit(forward)
	}

	if n, ok := c.(Normaler); ok {
		right := n.NormalAt(t)
		// Re-orthogonalize against the tangent; a normal that is not
		// perpendicular would shear the cross section.
		right = r3.Sub(right, r3.Scale(r3.Dot(right, forward), forward))
		if r3.Norm2(right) > 1e-18 {
			right = r3.Unit(right)
			return Frame{
				Origin:  origin,
				Right:   right,
				Up:      r3.Cross(forward, right),
				Forward: forward,
			}
		}
	}

	rot := fromToRotation(axisZ, forward)
	return Frame{
		Origin:  origin,
		Right:   rot.Rotate(axisX),
		Up:      rot.Rotate(axisY),
		Forward: forward,
	}
}

// Lift maps a point of the cross-section plane into space.
func (f Frame) Lift(p Point) r3.Vec {
	return r3.Add(f.Origin, r3.Add(r3.Scale(p.X, f.Right), r3.Scale(p.Y, f.Up)))
}

// LiftPolygon maps every vertex of p into space.
func (f Frame) LiftPolygon(p Polygon) []r3.Vec {
	out := make([]r3.Vec, len(p))
	for i, v := range p {
		out[i] = f.Lift(v)
	}
	return out
}

// fromToRotation returns the shortest rotation taking unit vector from onto
// unit vector to. Opposite vectors rotate half a turn about an axis
// perpendicular to from.
func fromToRotation(from, to r3.Vec) r3.Rotation {
	cos := r3.Dot(from, to)
	axis := r3.Cross(from, to)
	if r3.Norm2(axis) < 1e-24 {
		if cos > 0 {
			return r3.NewRotation(0, axisX)
		}
		perp := r3.Cross(from, axisX)
		if r3.Norm2(perp) < 1e-24 {
			perp = r3.Cross(from, axisY)
		}
		return r3.NewRotation(math.Pi, r3.Unit(perp))
	}
	angle := math.Atan2(r3.Norm(axis), cos)
	return r3.NewRotation(angle, r3.Unit(axis))
}
