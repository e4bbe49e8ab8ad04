package sweep

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gogpu/gputypes"
	"gonum.org/v1/gonum/spatial/r3"
)

// flatQuad is the unit square in the XY plane as two triangles facing +Z.
func flatQuad() *Mesh {
	return &Mesh{
		Vertices:  []r3.Vec{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}},
		Triangles: []int{0, 1, 2, 0, 2, 3},
		Winding:   CounterClockwise,
	}
}

func TestMesh_Validate(t *testing.T) {
	tests := []struct {
		name string
		tris []int
		ok   bool
	}{
		{"valid", []int{0, 1, 2}, true},
		{"empty", nil, true},
		{"partial triangle", []int{0, 1, 2, 3}, false},
		{"out of range", []int{0, 1, 4}, false},
		{"negative", []int{-1, 1, 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := flatQuad()
			m.Triangles = tt.tris
			err := m.Validate()
			if tt.ok != (err == nil) {
				t.Fatalf("err = %v, want ok=%v", err, tt.ok)
			}
			if err != nil && !errors.Is(err, ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestMesh_Normals(t *testing.T) {
	tests := []struct {
		winding Winding
		want    r3.Vec
	}{
		{CounterClockwise, r3.Vec{Z: 1}},
		{Clockwise, r3.Vec{Z: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.winding.String(), func(t *testing.T) {
			m := flatQuad()
			m.Winding = tt.winding
			for i := 0; i < m.TriangleCount(); i++ {
				if n := m.FaceNormal(i); !vecEqual(n, tt.want, 1e-12) {
					t.Errorf("face %d normal = %v, want %v", i, n, tt.want)
				}
			}
			for i, n := range m.Normals() {
				if !vecEqual(n, tt.want, 1e-12) {
					t.Errorf("vertex %d normal = %v, want %v", i, n, tt.want)
				}
			}
		})
	}
}

func TestMesh_NormalsIsolatedAndDegenerate(t *testing.T) {
	m := &Mesh{
		Vertices:  []r3.Vec{{}, {X: 1}, {X: 2}, {Y: 5}},
		Triangles: []int{0, 1, 2},
	}
	if n := m.FaceNormal(0); n != (r3.Vec{}) {
		t.Errorf("degenerate face normal = %v, want zero", n)
	}
	for i, n := range m.Normals() {
		if n != (r3.Vec{}) {
			t.Errorf("vertex %d normal = %v, want zero", i, n)
		}
	}
}

func TestMesh_Bounds(t *testing.T) {
	m := &Mesh{Vertices: []r3.Vec{{X: -1, Y: 2, Z: 3}, {X: 4, Y: -5, Z: 0}, {Z: 9}}}
	want := r3.Box{Min: r3.Vec{X: -1, Y: -5}, Max: r3.Vec{X: 4, Y: 2, Z: 9}}
	if got := m.Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if got := (&Mesh{}).Bounds(); got != (r3.Box{}) {
		t.Errorf("empty Bounds() = %v, want zero box", got)
	}
}

func TestMesh_Buffers(t *testing.T) {
	m := flatQuad()

	pos := m.Positions32()
	if want := []float32{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0}; !reflect.DeepEqual(pos, want) {
		t.Errorf("Positions32() = %v, want %v", pos, want)
	}

	inter := m.Interleaved32()
	if len(inter) != 6*m.VertexCount() {
		t.Fatalf("Interleaved32() has %d floats, want %d", len(inter), 6*m.VertexCount())
	}
	if got, want := inter[6:12], []float32{1, 0, 0, 0, 0, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("vertex 1 = %v, want %v", got, want)
	}
	if VertexStride != 24 {
		t.Errorf("VertexStride = %d, want 24", VertexStride)
	}

	if got, want := m.Indices32(), []uint32{0, 1, 2, 0, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("Indices32() = %v, want %v", got, want)
	}
}

func TestMesh_Layout(t *testing.T) {
	tests := []struct {
		winding Winding
		want    gputypes.FrontFace
	}{
		{CounterClockwise, gputypes.FrontFaceCCW},
		{Clockwise, gputypes.FrontFaceCW},
	}
	for _, tt := range tests {
		t.Run(tt.winding.String(), func(t *testing.T) {
			l := (&Mesh{Winding: tt.winding}).Layout()
			if l.Primitive.FrontFace != tt.want {
				t.Errorf("FrontFace = %v, want %v", l.Primitive.FrontFace, tt.want)
			}
			if l.Primitive.Topology != gputypes.PrimitiveTopologyTriangleList {
				t.Errorf("Topology = %v, want triangle list", l.Primitive.Topology)
			}
			if l.IndexFormat != gputypes.IndexFormatUint32 {
				t.Errorf("IndexFormat = %v, want uint32", l.IndexFormat)
			}
			if len(l.VertexBuffers) != 1 || l.VertexBuffers[0].ArrayStride != VertexStride {
				t.Fatalf("VertexBuffers = %+v", l.VertexBuffers)
			}
			attrs := l.VertexBuffers[0].Attributes
			if len(attrs) != 2 || attrs[1].Offset != 12 || attrs[1].ShaderLocation != 1 {
				t.Errorf("Attributes = %+v", attrs)
			}
		})
	}
}
