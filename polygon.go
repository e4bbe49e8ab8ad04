package sweep

import "math"

// Polygon is a closed loop of 2D points. The last point implicitly connects
// back to the first. Winding order is significant: it decides which side of
// the swept tube faces outward and how end caps are oriented.
type Polygon []Point

// Winding is the orientation of a polygon in its local plane.
type Winding int

const (
	// CounterClockwise is the positive (right-handed) orientation.
	CounterClockwise Winding = iota

	// Clockwise is the negative orientation.
	Clockwise
)

// String returns the winding name.
func (w Winding) String() string {
	if w == Clockwise {
		return "clockwise"
	}
	return "counter-clockwise"
}

// RegularPolygon returns an n-sided regular polygon of the given radius.
// Vertex i sits at angle rotation + i*2π/n measured from +Y towards +X,
// so with rotation 0 the first vertex points straight up and the loop runs
// clockwise.
func RegularPolygon(n int, radius, rotation float64) Polygon {
	if n <= 0 {
		return nil
	}
	step := 2 * math.Pi / float64(n)
	p := make(Polygon, n)
	for i := range p {
		sin, cos := math.Sincos(rotation + float64(i)*step)
		p[i] = Point{X: sin * radius, Y: cos * radius}
	}
	return p
}

// Clone returns a copy of the polygon with its own backing array.
func (p Polygon) Clone() Polygon {
	if p == nil {
		return nil
	}
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// Validate returns an error matching ErrDegenerateShape (and
// ErrInvalidInput) if the polygon has fewer than 3 points.
func (p Polygon) Validate() error {
	if len(p) < 3 {
		return degenerateError("polygon has %d points, need at least 3", len(p))
	}
	return nil
}

// Centroid returns the average of the polygon's vertices.
// The vertex average is used instead of the area centroid so that the
// result stays defined for zero-area polygons.
func (p Polygon) Centroid() Point {
	if len(p) == 0 {
		return Point{}
	}
	var c Point
	for _, v := range p {
		c = c.Add(v)
	}
	return c.Div(float64(len(p)))
}

// SignedArea returns the shoelace area, positive for counter-clockwise loops.
func (p Polygon) SignedArea() float64 {
	var sum float64
	for i, a := range p {
		b := p[(i+1)%len(p)]
		sum += a.Cross(b)
	}
	return sum / 2
}

// Winding returns the orientation of the polygon.
// Zero-area polygons report CounterClockwise.
func (p Polygon) Winding() Winding {
	if p.SignedArea() < 0 {
		return Clockwise
	}
	return CounterClockwise
}

// Reversed returns the polygon with its winding flipped. Vertex 0 stays at
// index 0 so the start vertex used for alignment is preserved.
func (p Polygon) Reversed() Polygon {
	out := make(Polygon, len(p))
	if len(p) == 0 {
		return out
	}
	out[0] = p[0]
	for i := 1; i < len(p); i++ {
		out[i] = p[len(p)-i]
	}
	return out
}

// Transform returns a copy of the polygon with m applied to every vertex.
// A mirroring transform (negative determinant) flips the winding.
func (p Polygon) Transform(m Matrix) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = m.TransformPoint(v)
	}
	return out
}

// Perimeter returns the length of the closed boundary.
func (p Polygon) Perimeter() float64 {
	var sum float64
	for i, a := range p {
		sum += a.Distance(p[(i+1)%len(p)])
	}
	return sum
}

// ArcLength returns the boundary length walked forward from vertex start to
// vertex end. When end is not after start the walk wraps through the closing
// edge; end == 0 is treated as len(p), so ArcLength(k, 0) runs to the end of
// the loop. ArcLength(i, i) for i != 0 is a full lap.
func (p Polygon) ArcLength(start, end int) float64 {
	n := len(p)
	if n == 0 {
		return 0
	}
	if end == 0 {
		end = n
	}
	if end <= start {
		end += n
	}
	var sum float64
	for i := start; i < end; i++ {
		sum += p[i%n].Distance(p[(i+1)%n])
	}
	return sum
}

// InverseLerpBoundary returns where vertex mid falls between vertices start
// and end, as a fraction of the boundary length between them. When the span
// has zero length the fraction falls back to index distance.
func (p Polygon) InverseLerpBoundary(start, end, mid int) float64 {
	if mid == start {
		return 0
	}
	whole := p.ArcLength(start, end)
	if whole <= 0 {
		n := len(p)
		span := (end - start + n) % n
		if span == 0 {
			span = n
		}
		return float64((mid-start+n)%n) / float64(span)
	}
	return p.ArcLength(start, mid) / whole
}
