package sweep

import (
	"fmt"

	"github.com/ByteArena/poly2tri-go"
)

// CDTTriangulator triangulates with poly2tri's constrained Delaunay sweep,
// which yields better-shaped triangles than ear clipping on large caps.
// poly2tri rejects repeated vertices and some collinear configurations;
// those inputs return an error wrapping ErrTriangulation instead of
// panicking, and callers can retry with EarClipper.
type CDTTriangulator struct{}

// Triangulate implements Triangulator. Triangles keep the polygon's winding.
func (CDTTriangulator) Triangulate(p Polygon) (tris []int, err error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	contour := make([]*poly2tri.Point, len(p))
	index := make(map[Point]int, len(p))
	for i, v := range p {
		if _, dup := index[v]; dup {
			return nil, fmt.Errorf("%w: cdt: repeated vertex %v", ErrTriangulation, v)
		}
		index[v] = i
		contour[i] = poly2tri.NewPoint(v.X, v.Y)
	}

	defer func() {
		if r := recover(); r != nil {
			tris, err = nil, fmt.Errorf("%w: cdt: %v", ErrTriangulation, r)
		}
	}()

	swctx := poly2tri.NewSweepContext(contour, false)
	swctx.Triangulate()

	for _, tr := range swctx.GetTriangles() {
		for k := 0; k < 3; k++ {
			i, ok := index[Point{X: tr.Points[k].X, Y: tr.Points[k].Y}]
			if !ok {
				return nil, fmt.Errorf("%w: cdt: unknown vertex (%v, %v)",
					ErrTriangulation, tr.Points[k].X, tr.Points[k].Y)
			}
			tris = append(tris, i)
		}
	}
	orientTriangles(p, tris, p.Winding())
	return tris, nil
}

// FallbackTriangulator tries Primary and, if it fails, Secondary.
type FallbackTriangulator struct {
	Primary   Triangulator
	Secondary Triangulator
}

// Triangulate implements Triangulator.
func (f FallbackTriangulator) Triangulate(p Polygon) ([]int, error) {
	tris, err := f.Primary.Triangulate(p)
	if err == nil {
		return tris, nil
	}
	Logger().Debug("sweep: primary triangulator failed, using fallback", "err", err)
	return f.Secondary.Triangulate(p)
}
