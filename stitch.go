package sweep

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Stitch builds the tube mesh from shapes ordered by T, all with the same
// vertex count N.
//
// Layer i occupies vertices [i*N, (i+1)*N). Between consecutive layers
// every edge (j, j+1 mod N) becomes a quad split into the triangles
// (s_i[j], s_i[j+1], s_{i+1}[j+1]) and (s_i[j], s_{i+1}[j+1], s_{i+1}[j]).
//
// firstCap and lastCap are triangulated with tri in the plane of the first
// and last shape and appended with their own vertices. The first cap's
// triangles are reversed so that both caps face away from the tube. An
// empty cap is skipped; a cap with 1 or 2 points is an ErrDegenerateShape.
// A nil tri uses EarClipper.
func Stitch(shapes []*Shape, firstCap, lastCap Polygon, tri Triangulator) (*Mesh, error) {
	if len(shapes) == 0 {
		return nil, fmt.Errorf("stitch: no shapes: %w", ErrInvalidInput)
	}
	if tri == nil {
		tri = EarClipper{}
	}

	n := shapes[0].Len()
	if err := shapes[0].Points().Validate(); err != nil {
		return nil, fmt.Errorf("stitch: layer 0: %w", err)
	}
	for i, s := range shapes {
		if s.Len() != n {
			return nil, fmt.Errorf("stitch: layer %d has %d vertices, layer 0 has %d: %w",
				i, s.Len(), n, ErrVertexCountMismatch)
		}
	}

	winding := shapes[0].Points().Winding()
	mesh := &Mesh{
		Vertices:  make([]r3.Vec, 0, len(shapes)*n+len(firstCap)+len(lastCap)),
		Triangles: make([]int, 0, 6*n*(len(shapes)-1)),
		Winding:   winding,
	}

	for _, s := range shapes {
		mesh.Vertices = append(mesh.Vertices, s.Points3D()...)
	}
	for i := 0; i+1 < len(shapes); i++ {
		lo, hi := i*n, (i+1)*n
		for j := 0; j < n; j++ {
			k := (j + 1) % n
			mesh.Triangles = append(mesh.Triangles,
				lo+j, lo+k, hi+k,
				lo+j, hi+k, hi+j,
			)
		}
	}

	first, last := shapes[0], shapes[len(shapes)-1]
	if err := appendCap(mesh, first, firstCap, tri, true); err != nil {
		return nil, fmt.Errorf("stitch: first cap: %w", err)
	}
	if err := appendCap(mesh, last, lastCap, tri, false); err != nil {
		return nil, fmt.Errorf("stitch: last cap: %w", err)
	}

	Logger().Debug("sweep: stitched mesh",
		"layers", len(shapes), "vertices", mesh.VertexCount(), "triangles", mesh.TriangleCount())
	return mesh, nil
}

// appendCap triangulates outline, lifts it into the plane of at and appends
// it to mesh, reversed when it closes the start of the tube.
func appendCap(mesh *Mesh, at *Shape, outline Polygon, tri Triangulator, reverse bool) error {
	if len(outline) == 0 {
		return nil
	}
	tris, err := tri.Triangulate(outline)
	if err != nil {
		return err
	}
	if err := checkTriangles(outline, tris); err != nil {
		return err
	}
	orientTriangles(outline, tris, mesh.Winding)

	base := len(mesh.Vertices)
	placed := NewShape(outline, at.Curve(), at.T())
	mesh.Vertices = append(mesh.Vertices, placed.Points3D()...)
	for i := 0; i+2 < len(tris); i += 3 {
		a, b, c := base+tris[i], base+tris[i+1], base+tris[i+2]
		if reverse {
			b, c = c, b
		}
		mesh.Triangles = append(mesh.Triangles, a, b, c)
	}
	return nil
}
