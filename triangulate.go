package sweep

import "fmt"

// Triangulator splits a simple closed polygon into triangles. The returned
// slice holds 3 indices into p per triangle.
type Triangulator interface {
	Triangulate(p Polygon) ([]int, error)
}

// TriangulatorFunc adapts an ordinary function to Triangulator.
type TriangulatorFunc func(p Polygon) ([]int, error)

// Triangulate calls f(p).
func (f TriangulatorFunc) Triangulate(p Polygon) ([]int, error) { return f(p) }

// earEpsilon is the cross-product tolerance below which a corner counts as
// straight rather than convex.
const earEpsilon = 1e-12

// EarClipper triangulates simple polygons, convex or concave, by ear
// clipping in O(n²). Triangles keep the polygon's winding. Collinear and
// repeated vertices are accepted; if no proper ear remains (degenerate
// input) the most convex corner is clipped, so the result always has
// len(p)-2 triangles.
type EarClipper struct{}

// Triangulate implements Triangulator.
func (EarClipper) Triangulate(p Polygon) ([]int, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	sign := 1.0
	if p.SignedArea() < 0 {
		sign = -1
	}

	ring := make([]int, len(p))
	for i := range ring {
		ring[i] = i
	}
	tris := make([]int, 0, 3*(len(p)-2))
	for len(ring) > 3 {
		ear := findEar(p, ring, sign)
		n := len(ring)
		a, b, c := ring[(ear+n-1)%n], ring[ear], ring[(ear+1)%n]
		tris = append(tris, a, b, c)
		ring = append(ring[:ear], ring[ear+1:]...)
	}
	return append(tris, ring[0], ring[1], ring[2]), nil
}

// findEar returns the position in ring of a clippable corner.
func findEar(p Polygon, ring []int, sign float64) int {
	n := len(ring)
	best, bestTurn := 0, -1e300
	for i := range ring {
		a, b, c := p[ring[(i+n-1)%n]], p[ring[i]], p[ring[(i+1)%n]]
		turn := sign * b.Sub(a).Cross(c.Sub(b))
		if turn > bestTurn {
			best, bestTurn = i, turn
		}
		if turn <= earEpsilon {
			continue
		}
		if !ringPointInTriangle(p, ring, i, a, b, c, sign) {
			return i
		}
	}
	return best
}

// ringPointInTriangle reports whether any ring vertex other than the corner
// at position i and its neighbors lies inside or on triangle abc.
// Vertices coinciding with a, b or c are ignored.
func ringPointInTriangle(p Polygon, ring []int, i int, a, b, c Point, sign float64) bool {
	n := len(ring)
	for j := range ring {
		if j == i || j == (i+n-1)%n || j == (i+1)%n {
			continue
		}
		q := p[ring[j]]
		if q == a || q == b || q == c {
			continue
		}
		if sign*b.Sub(a).Cross(q.Sub(a)) >= -earEpsilon &&
			sign*c.Sub(b).Cross(q.Sub(b)) >= -earEpsilon &&
			sign*a.Sub(c).Cross(q.Sub(c)) >= -earEpsilon {
			return true
		}
	}
	return false
}

// FanTriangulator connects vertex 0 to every other edge. It is exact for
// convex polygons only and keeps the polygon's winding.
type FanTriangulator struct{}

// Triangulate implements Triangulator.
func (FanTriangulator) Triangulate(p Polygon) ([]int, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	tris := make([]int, 0, 3*(len(p)-2))
	for i := 1; i+1 < len(p); i++ {
		tris = append(tris, 0, i, i+1)
	}
	return tris, nil
}

// orientTriangles flips any triangle of p whose winding disagrees with w,
// so that triangulators with a fixed output winding can be mixed freely.
// Zero-area triangles are left alone.
func orientTriangles(p Polygon, tris []int, w Winding) {
	want := 1.0
	if w == Clockwise {
		want = -1
	}
	for i := 0; i+2 < len(tris); i += 3 {
		a, b, c := p[tris[i]], p[tris[i+1]], p[tris[i+2]]
		got := b.Sub(a).Cross(c.Sub(a))
		if got*want < 0 {
			tris[i+1], tris[i+2] = tris[i+2], tris[i+1]
		}
	}
}

// checkTriangles validates a triangulator result against p.
func checkTriangles(p Polygon, tris []int) error {
	if len(tris)%3 != 0 {
		return fmt.Errorf("%w: %d indices is not a multiple of 3", ErrTriangulation, len(tris))
	}
	for _, i := range tris {
		if i < 0 || i >= len(p) {
			return fmt.Errorf("%w: index %d out of range [0, %d)", ErrTriangulation, i, len(p))
		}
	}
	return nil
}
