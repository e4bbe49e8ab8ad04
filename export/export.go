// Package export writes sweep meshes to common interchange formats.
package export

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"

	sweep "github.com/ahmetayrnc/3d-sweep-line"
)

// stlHeaderSize is the fixed length of the binary STL header.
const stlHeaderSize = 80

// WriteOBJ writes m as a Wavefront OBJ: one "v" line per vertex, one "vn"
// line per vertex normal and one "f v//vn" line per triangle, with 1-based
// indices. Triangles are written counter-clockwise as seen from outside,
// whatever the winding of the swept sections.
func WriteOBJ(w io.Writer, m *sweep.Mesh) error {
	if err := m.Validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d vertices, %d triangles\n", m.VertexCount(), m.TriangleCount())
	for _, v := range m.Vertices {
		writeVec(bw, "v", v)
	}
	for _, n := range m.Normals() {
		writeVec(bw, "vn", n)
	}
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := outward(m, i)
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a+1, a+1, b+1, b+1, c+1, c+1)
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	sweep.Logger().Debug("export: wrote obj", "vertices", m.VertexCount(), "triangles", m.TriangleCount())
	return nil
}

func writeVec(w *bufio.Writer, tag string, v r3.Vec) {
	w.WriteString(tag)
	for _, f := range [3]float64{v.X, v.Y, v.Z} {
		w.WriteByte(' ')
		w.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	}
	w.WriteByte('\n')
}

// WriteSTL writes m as binary STL: an 80-byte header, the triangle count
// and, per triangle, the unit face normal, three vertices and a zero
// attribute word, all little-endian float32.
func WriteSTL(w io.Writer, m *sweep.Mesh) error {
	if err := m.Validate(); err != nil {
		return err
	}
	count := m.TriangleCount()
	if uint64(count) > math.MaxUint32 {
		return fmt.Errorf("export: %d triangles exceed the STL limit", count)
	}

	bw := bufio.NewWriter(w)
	var header [stlHeaderSize]byte
	copy(header[:], "binary STL written by sweep")
	bw.Write(header[:])

	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(count))
	bw.Write(buf[:])

	var rec [50]byte
	for i := 0; i < count; i++ {
		a, b, c := outward(m, i)
		n := m.FaceNormal(i)
		off := 0
		for _, v := range [4]r3.Vec{n, m.Vertices[a], m.Vertices[b], m.Vertices[c]} {
			for _, f := range [3]float64{v.X, v.Y, v.Z} {
				binary.LittleEndian.PutUint32(rec[off:], math.Float32bits(float32(f)))
				off += 4
			}
		}
		rec[48], rec[49] = 0, 0
		if _, err := bw.Write(rec[:]); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	sweep.Logger().Debug("export: wrote stl", "triangles", count)
	return nil
}

// outward returns the indices of triangle i ordered counter-clockwise as
// seen from outside the tube.
func outward(m *sweep.Mesh, i int) (a, b, c int) {
	a, b, c = m.Triangles[3*i], m.Triangles[3*i+1], m.Triangles[3*i+2]
	if m.Winding == sweep.Clockwise {
		b, c = c, b
	}
	return a, b, c
}
