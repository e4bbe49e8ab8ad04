package sweep

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh holds the buffers produced by a sweep: vertex positions and a
// triangle list with 3 indices per triangle. A Mesh is rebuilt wholesale on
// every recomputation pass.
type Mesh struct {
	Vertices  []r3.Vec
	Triangles []int

	// Winding of the cross sections the mesh was swept from. With
	// CounterClockwise sections the outward side of every triangle follows
	// the right-hand rule; with Clockwise sections it is the other side.
	Winding Winding
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles) / 3
}

// Validate checks that the index buffer is a whole number of triangles and
// that every index refers to a vertex.
func (m *Mesh) Validate() error {
	if len(m.Triangles)%3 != 0 {
		return fmt.Errorf("mesh: %d indices is not a multiple of 3: %w", len(m.Triangles), ErrInvalidInput)
	}
	for i, idx := range m.Triangles {
		if idx < 0 || idx >= len(m.Vertices) {
			return fmt.Errorf("mesh: index %d at %d out of range [0, %d): %w",
				idx, i, len(m.Vertices), ErrInvalidInput)
		}
	}
	return nil
}

// FaceNormal returns the unit outward normal of triangle i, or the zero
// vector for a degenerate triangle.
func (m *Mesh) FaceNormal(i int) r3.Vec {
	n := m.faceCross(i)
	if r3.Norm2(n) == 0 {
		return r3.Vec{}
	}
	return r3.Unit(n)
}

// faceCross returns the outward face normal of triangle i scaled by twice
// its area.
func (m *Mesh) faceCross(i int) r3.Vec {
	a := m.Vertices[m.Triangles[3*i]]
	b := m.Vertices[m.Triangles[3*i+1]]
	c := m.Vertices[m.Triangles[3*i+2]]
	n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
	if m.Winding == Clockwise {
		n = r3.Scale(-1, n)
	}
	return n
}

// Normals returns area-weighted outward vertex normals. Vertices that touch
// no triangle, or only degenerate ones, get the zero vector.
func (m *Mesh) Normals() []r3.Vec {
	normals := make([]r3.Vec, len(m.Vertices))
	for i := 0; i < m.TriangleCount(); i++ {
		n := m.faceCross(i)
		for k := 0; k < 3; k++ {
			v := m.Triangles[3*i+k]
			normals[v] = r3.Add(normals[v], n)
		}
	}
	for i, n := range normals {
		if r3.Norm2(n) > 0 {
			normals[i] = r3.Unit(n)
		}
	}
	return normals
}

// Bounds returns the axis-aligned bounding box of the vertices.
// An empty mesh has a zero box.
func (m *Mesh) Bounds() r3.Box {
	if len(m.Vertices) == 0 {
		return r3.Box{}
	}
	lo := r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi := r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, v := range m.Vertices {
		lo = r3.Vec{X: math.Min(lo.X, v.X), Y: math.Min(lo.Y, v.Y), Z: math.Min(lo.Z, v.Z)}
		hi = r3.Vec{X: math.Max(hi.X, v.X), Y: math.Max(hi.Y, v.Y), Z: math.Max(hi.Z, v.Z)}
	}
	return r3.Box{Min: lo, Max: hi}
}

// Positions32 returns the vertex positions as a flat float32 slice
// (x, y, z per vertex), ready for a vertex buffer upload.
func (m *Mesh) Positions32() []float32 {
	out := make([]float32, 0, 3*len(m.Vertices))
	for _, v := range m.Vertices {
		out = append(out, float32(v.X), float32(v.Y), float32(v.Z))
	}
	return out
}

// Interleaved32 returns position and normal per vertex as a flat float32
// slice (px, py, pz, nx, ny, nz), matching Layout's vertex buffer.
func (m *Mesh) Interleaved32() []float32 {
	normals := m.Normals()
	out := make([]float32, 0, 6*len(m.Vertices))
	for i, v := range m.Vertices {
		n := normals[i]
		out = append(out,
			float32(v.X), float32(v.Y), float32(v.Z),
			float32(n.X), float32(n.Y), float32(n.Z))
	}
	return out
}

// Indices32 returns the triangle list as uint32 indices.
func (m *Mesh) Indices32() []uint32 {
	out := make([]uint32, len(m.Triangles))
	for i, idx := range m.Triangles {
		out[i] = uint32(idx)
	}
	return out
}
