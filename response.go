package sweep

import (
	"fmt"
	"math"
	"sort"
)

// ResponseCurve remaps a morph blend factor. Evaluate receives the raw blend
// in [0, 1] and returns the effective blend used for interpolation.
type ResponseCurve interface {
	Evaluate(x float64) float64
}

// ResponseFunc adapts an ordinary function to ResponseCurve.
type ResponseFunc func(float64) float64

// Evaluate calls f(x).
func (f ResponseFunc) Evaluate(x float64) float64 { return f(x) }

// Linear is the identity response.
type Linear struct{}

// Evaluate returns x unchanged.
func (Linear) Evaluate(x float64) float64 { return x }

// -------------------------------------------------------------------
// CubicEase
// -------------------------------------------------------------------

// CubicEase is a timing curve shaped by a cubic Bezier from (0,0) to (1,1)
// with control points (X1,Y1) and (X2,Y2), as in CSS cubic-bezier().
// X1 and X2 must lie in [0, 1] so that the curve is a function of x.
type CubicEase struct {
	X1, Y1, X2, Y2 float64
}

// Common timing curves.
var (
	EaseIn    = CubicEase{X1: 0.42, Y1: 0, X2: 1, Y2: 1}
	EaseOut   = CubicEase{X1: 0, Y1: 0, X2: 0.58, Y2: 1}
	EaseInOut = CubicEase{X1: 0.42, Y1: 0, X2: 0.58, Y2: 1}
)

// NewCubicEase validates the control points and returns the timing curve.
func NewCubicEase(x1, y1, x2, y2 float64) (CubicEase, error) {
	if x1 < 0 || x1 > 1 || x2 < 0 || x2 > 1 || !isFinite(y1) || !isFinite(y2) {
		return CubicEase{}, fmt.Errorf("cubic ease (%v, %v, %v, %v): control x outside [0, 1]: %w",
			x1, y1, x2, y2, ErrInvalidInput)
	}
	return CubicEase{X1: x1, Y1: y1, X2: x2, Y2: y2}, nil
}

// Evaluate finds the curve parameter s with x(s) = x and returns y(s).
// Inputs outside [0, 1] are clamped.
func (c CubicEase) Evaluate(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	s := c.paramForX(x)
	return bezierComponent(c.Y1, c.Y2, s)
}

// paramForX solves x(s) = x for s in [0, 1]. x(s) expands to
// (1 + 3X1 - 3X2)s^3 + (3X2 - 6X1)s^2 + 3X1 s.
func (c CubicEase) paramForX(x float64) float64 {
	a := 1 + 3*c.X1 - 3*c.X2
	b := 3*c.X2 - 6*c.X1
	cc := 3 * c.X1
	if roots := unitRoots(a, b, cc, -x); len(roots) > 0 {
		return roots[0]
	}

	// x(s) is monotonic for X1, X2 in [0, 1]; bisect if the closed form
	// lost the root to rounding.
	lo, hi := 0.0, 1.0
	for range 64 {
		mid := (lo + hi) / 2
		if bezierComponent(c.X1, c.X2, mid) < x {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// bezierComponent evaluates one axis of a cubic Bezier with end values 0
// and 1 and control values p1, p2.
func bezierComponent(p1, p2, s float64) float64 {
	ms := 1 - s
	return 3*ms*ms*s*p1 + 3*ms*s*s*p2 + s*s*s
}

// -------------------------------------------------------------------
// Keyframes
// -------------------------------------------------------------------

// Keyframe is a control point of a Keyframes response curve.
type Keyframe struct {
	Time       float64
	Value      float64
	InTangent  float64
	OutTangent float64
}

// Keyframes is a cubic Hermite spline through keys sorted by Time.
// Outside the key range the curve holds the first or last value.
// An empty curve is the identity.
type Keyframes []Keyframe

// NewKeyframes returns a sorted copy of keys.
func NewKeyframes(keys ...Keyframe) Keyframes {
	k := make(Keyframes, len(keys))
	copy(k, keys)
	sort.SliceStable(k, func(i, j int) bool { return k[i].Time < k[j].Time })
	return k
}

// SmoothTangents returns a copy of k with every tangent set from the
// neighboring keys (Catmull-Rom slopes; one-sided at the ends).
func (k Keyframes) SmoothTangents() Keyframes {
	out := make(Keyframes, len(k))
	copy(out, k)
	for i := range out {
		var slope float64
		switch {
		case len(out) < 2:
		case i == 0:
			slope = keySlope(out[0], out[1])
		case i == len(out)-1:
			slope = keySlope(out[i-1], out[i])
		default:
			slope = keySlope(out[i-1], out[i+1])
		}
		out[i].InTangent = slope
		out[i].OutTangent = slope
	}
	return out
}

func keySlope(a, b Keyframe) float64 {
	dt := b.Time - a.Time
	if dt == 0 {
		return 0
	}
	return (b.Value - a.Value) / dt
}

// Evaluate returns the spline value at x.
func (k Keyframes) Evaluate(x float64) float64 {
	switch {
	case len(k) == 0:
		return x
	case x <= k[0].Time:
		return k[0].Value
	case x >= k[len(k)-1].Time:
		return k[len(k)-1].Value
	}

	// First key strictly after x; x > k[0].Time guarantees i >= 1.
	i := sort.Search(len(k), func(i int) bool { return k[i].Time > x })
	k0, k1 := k[i-1], k[i]
	dt := k1.Time - k0.Time
	if dt <= 0 {
		return k1.Value
	}
	s := (x - k0.Time) / dt
	s2 := s * s
	s3 := s2 * s
	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2
	return h00*k0.Value + h10*dt*k0.OutTangent + h01*k1.Value + h11*dt*k1.InTangent
}

// clampUnit clamps x to [0, 1]; NaN becomes 0.
func clampUnit(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
