// Package curve provides sweep curves for the sweep package.
//
// Every curve is flattened to a VertexPath: a polyline parameterized by arc
// length over [0, 1] whose vertices are the sample points that drive the
// sweep resolution. VertexPath also carries rotation-minimizing normals so
// cross sections do not twist around the path.
package curve

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrTooFewPoints is returned when a path has fewer than two distinct points.
var ErrTooFewPoints = errors.New("curve: path needs at least two distinct points")

// VertexPath is a polyline with arc-length parameterization.
// Parameter 0 is the first vertex and 1 the last.
type VertexPath struct {
	points   []r3.Vec
	cum      []float64 // cumulative length at each vertex
	tangents []r3.Vec
	normals  []r3.Vec
}

// NewVertexPath builds a path through points. Consecutive duplicates are
// dropped. At least two distinct points are required.
func NewVertexPath(points []r3.Vec) (*VertexPath, error) {
	pts := make([]r3.Vec, 0, len(points))
	for _, p := range points {
		if len(pts) > 0 && pts[len(pts)-1] == p {
			continue
		}
		pts = append(pts, p)
	}
	if len(pts) < 2 {
		return nil, ErrTooFewPoints
	}
	return newVertexPath(pts), nil
}

// newVertexPath builds the path without checks; pts may be degenerate.
func newVertexPath(pts []r3.Vec) *VertexPath {
	vp := &VertexPath{points: pts, cum: make([]float64, len(pts))}
	for i := 1; i < len(pts); i++ {
		vp.cum[i] = vp.cum[i-1] + r3.Norm(r3.Sub(pts[i], pts[i-1]))
	}
	vp.tangents = vertexTangents(pts)
	vp.normals = rotationMinimizingNormals(pts, vp.tangents)
	return vp
}

// Length returns the total arc length.
func (vp *VertexPath) Length() float64 {
	return vp.cum[len(vp.cum)-1]
}

// Points returns a copy of the path vertices.
func (vp *VertexPath) Points() []r3.Vec {
	return append([]r3.Vec(nil), vp.points...)
}

// NumSamples returns the number of vertices.
func (vp *VertexPath) NumSamples() int {
	return len(vp.points)
}

// Sample returns vertex i.
func (vp *VertexPath) Sample(i int) r3.Vec {
	return vp.points[i]
}

// ParameterAt returns the parameter of vertex i.
func (vp *VertexPath) ParameterAt(i int) float64 {
	total := vp.Length()
	if total == 0 {
		return 0
	}
	return vp.cum[i] / total
}

// locate returns the segment containing parameter t and the fraction
// along it. t is clamped to [0, 1].
func (vp *VertexPath) locate(t float64) (int, float64) {
	total := vp.Length()
	last := len(vp.points) - 2
	if total == 0 || t <= 0 || math.IsNaN(t) {
		return 0, 0
	}
	if t >= 1 {
		return last, 1
	}
	d := t * total
	i := sort.SearchFloat64s(vp.cum, d) - 1
	if i < 0 {
		i = 0
	}
	if i > last {
		i = last
	}
	seg := vp.cum[i+1] - vp.cum[i]
	if seg == 0 {
		return i, 0
	}
	return i, (d - vp.cum[i]) / seg
}

// PointAt returns the position at parameter t, clamped to [0, 1].
func (vp *VertexPath) PointAt(t float64) r3.Vec {
	i, f := vp.locate(t)
	return lerp(vp.points[i], vp.points[i+1], f)
}

// DirectionAt returns the unit tangent at parameter t. Tangents are
// averaged at interior vertices and interpolated along segments.
func (vp *VertexPath) DirectionAt(t float64) r3.Vec {
	i, f := vp.locate(t)
	return unitOr(lerp(vp.tangents[i], vp.tangents[i+1], f), vp.tangents[i])
}

// NormalAt returns the rotation-minimizing normal at parameter t.
func (vp *VertexPath) NormalAt(t float64) r3.Vec {
	i, f := vp.locate(t)
	return unitOr(lerp(vp.normals[i], vp.normals[i+1], f), vp.normals[i])
}

// ClosestParameter returns the parameter of the path point nearest p.
// Ties resolve to the earliest point along the path.
func (vp *VertexPath) ClosestParameter(p r3.Vec) float64 {
	total := vp.Length()
	if total == 0 {
		return 0
	}
	best, bestDist := 0.0, math.Inf(1)
	for i := 0; i+1 < len(vp.points); i++ {
		a, b := vp.points[i], vp.points[i+1]
		ab := r3.Sub(b, a)
		l2 := r3.Norm2(ab)
		s := 0.0
		if l2 > 0 {
			s = math.Max(0, math.Min(1, r3.Dot(r3.Sub(p, a), ab)/l2))
		}
		d := r3.Norm2(r3.Sub(p, lerp(a, b, s)))
		if d < bestDist {
			bestDist = d
			best = (vp.cum[i] + s*(vp.cum[i+1]-vp.cum[i])) / total
		}
	}
	return best
}

// vertexTangents returns a unit tangent per vertex: the segment direction
// at the ends and the normalized average of both segments in between.
func vertexTangents(pts []r3.Vec) []r3.Vec {
	n := len(pts)
	seg := make([]r3.Vec, n-1)
	fallback := r3.Vec{Z: 1}
	for i := range seg {
		seg[i] = unitOr(r3.Sub(pts[i+1], pts[i]), fallback)
		fallback = seg[i]
	}
	out := make([]r3.Vec, n)
	out[0] = seg[0]
	out[n-1] = seg[n-2]
	for i := 1; i < n-1; i++ {
		out[i] = unitOr(r3.Add(seg[i-1], seg[i]), seg[i])
	}
	return out
}

// rotationMinimizingNormals propagates a normal along the path with the
// double reflection method (Wang et al. 2008). The first normal is the X
// axis projected off the first tangent, or Y when X is parallel to it.
func rotationMinimizingNormals(pts, tangents []r3.Vec) []r3.Vec {
	out := make([]r3.Vec, len(pts))
	out[0] = perpendicular(tangents[0])
	for i := 0; i+1 < len(pts); i++ {
		v1 := r3.Sub(pts[i+1], pts[i])
		c1 := r3.Dot(v1, v1)
		if c1 == 0 {
			out[i+1] = out[i]
			continue
		}
		rL := r3.Sub(out[i], r3.Scale(2/c1*r3.Dot(v1, out[i]), v1))
		tL := r3.Sub(tangents[i], r3.Scale(2/c1*r3.Dot(v1, tangents[i]), v1))
		v2 := r3.Sub(tangents[i+1], tL)
		c2 := r3.Dot(v2, v2)
		next := rL
		if c2 > 0 {
			next = r3.Sub(rL, r3.Scale(2/c2*r3.Dot(v2, rL), v2))
		}
		out[i+1] = unitOr(next, out[i])
	}
	return out
}

func perpendicular(t r3.Vec) r3.Vec {
	for _, axis := range []r3.Vec{{X: 1}, {Y: 1}} {
		p := r3.Sub(axis, r3.Scale(r3.Dot(axis, t), t))
		if r3.Norm2(p) > 1e-12 {
			return r3.Unit(p)
		}
	}
	return r3.Vec{X: 1}
}

func lerp(a, b r3.Vec, t float64) r3.Vec {
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}

// unitOr returns v normalized, or fallback when v has no direction.
func unitOr(v, fallback r3.Vec) r3.Vec {
	if r3.Norm2(v) < 1e-24 {
		return fallback
	}
	return r3.Unit(v)
}
