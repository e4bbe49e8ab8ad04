package sweep

import "gonum.org/v1/gonum/spatial/r3"

// Curve is the sweep curve the cross sections are extruded along.
// Parameters run over [0, 1]. Implementations live in the curve package; any
// path library can be adapted by satisfying this interface.
type Curve interface {
	// PointAt returns the position at parameter t.
	PointAt(t float64) r3.Vec

	// DirectionAt returns the unit tangent at parameter t.
	DirectionAt(t float64) r3.Vec

	// ClosestParameter returns the parameter of the curve point nearest p.
	ClosestParameter(p r3.Vec) float64

	// NumSamples returns the number of fixed sample points that drive the
	// sweep resolution.
	NumSamples() int

	// Sample returns sample point i, 0 <= i < NumSamples().
	Sample(i int) r3.Vec
}

// Normaler is implemented by curves that provide a normal for framing the
// cross sections. Without it, cross sections are framed by the rotation
// that takes +Z onto the tangent.
type Normaler interface {
	// NormalAt returns a unit vector perpendicular to DirectionAt(t).
	NormalAt(t float64) r3.Vec
}
