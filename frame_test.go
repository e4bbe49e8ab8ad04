package sweep

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ahmetayrnc/3d-sweep-line/curve"
)

// VertexPath carries its own rotation-minimizing normals.
var (
	_ Curve    = (*curve.VertexPath)(nil)
	_ Normaler = (*curve.VertexPath)(nil)
)

// ray is a straight two-sample curve without a normal.
type ray struct {
	from, dir r3.Vec
}

func (r ray) PointAt(t float64) r3.Vec          { return r3.Add(r.from, r3.Scale(t, r.dir)) }
func (r ray) DirectionAt(float64) r3.Vec        { return r.dir }
func (r ray) ClosestParameter(p r3.Vec) float64 { return r3.Dot(r3.Sub(p, r.from), r.dir) / r3.Norm2(r.dir) }
func (r ray) NumSamples() int                   { return 2 }
func (r ray) Sample(i int) r3.Vec               { return r.PointAt(float64(i)) }

func assertOrthonormal(t *testing.T, f Frame) {
	t.Helper()
	for _, v := range []r3.Vec{f.Right, f.Up, f.Forward} {
		if math.Abs(r3.Norm(v)-1) > 1e-9 {
			t.Errorf("axis %v is not unit length", v)
		}
	}
	if !vecEqual(r3.Cross(f.Right, f.Up), f.Forward, 1e-9) {
		t.Errorf("Right x Up = %v, want Forward %v", r3.Cross(f.Right, f.Up), f.Forward)
	}
}

func TestFrameAt_RotationFrame(t *testing.T) {
	tests := []struct {
		name      string
		dir       r3.Vec
		wantRight r3.Vec
		wantUp    r3.Vec
	}{
		{"along +Z", r3.Vec{Z: 1}, r3.Vec{X: 1}, r3.Vec{Y: 1}},
		{"along +X", r3.Vec{X: 3}, r3.Vec{Z: -1}, r3.Vec{Y: 1}},
		{"along -Z", r3.Vec{Z: -2}, r3.Vec{X: -1}, r3.Vec{Y: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FrameAt(ray{dir: tt.dir}, 0.5)
			assertOrthonormal(t, f)
			if !vecEqual(f.Forward, r3.Unit(tt.dir), 1e-9) {
				t.Errorf("Forward = %v, want %v", f.Forward, r3.Unit(tt.dir))
			}
			if !vecEqual(f.Right, tt.wantRight, 1e-9) {
				t.Errorf("Right = %v, want %v", f.Right, tt.wantRight)
			}
			if !vecEqual(f.Up, tt.wantUp, 1e-9) {
				t.Errorf("Up = %v, want %v", f.Up, tt.wantUp)
			}
		})
	}
}

func TestFrameAt_ZeroDirection(t *testing.T) {
	f := FrameAt(ray{from: r3.Vec{X: 1}}, 0)
	if !vecEqual(f.Forward, r3.Vec{Z: 1}, 1e-12) {
		t.Errorf("Forward = %v, want +Z", f.Forward)
	}
	assertOrthonormal(t, f)
}

func TestFrameAt_Normaler(t *testing.T) {
	f := FrameAt(straightLine(4), 0.5)
	assertOrthonormal(t, f)
	if !vecEqual(f.Origin, r3.Vec{Z: 5}, 1e-9) {
		t.Errorf("Origin = %v, want (0, 0, 5)", f.Origin)
	}
	if !vecEqual(f.Right, r3.Vec{X: 1}, 1e-9) || !vecEqual(f.Up, r3.Vec{Y: 1}, 1e-9) {
		t.Errorf("Right, Up = %v, %v, want +X, +Y", f.Right, f.Up)
	}
}

func TestFrameAt_BentPathStaysOrthonormal(t *testing.T) {
	path, err := curve.NewVertexPath([]r3.Vec{{}, {Z: 2}, {X: 2, Z: 3}, {X: 4, Y: 1, Z: 3}})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i <= 10; i++ {
		assertOrthonormal(t, FrameAt(path, float64(i)/10))
	}
}

func TestFrame_Lift(t *testing.T) {
	f := Frame{
		Origin:  r3.Vec{X: 1, Y: 2, Z: 3},
		Right:   r3.Vec{Z: -1},
		Up:      r3.Vec{Y: 1},
		Forward: r3.Vec{X: 1},
	}
	got := f.LiftPolygon(Polygon{Pt(0, 0), Pt(2, 0), Pt(0, 3)})
	want := []r3.Vec{{X: 1, Y: 2, Z: 3}, {X: 1, Y: 2, Z: 1}, {X: 1, Y: 5, Z: 3}}
	for i := range want {
		if !vecEqual(got[i], want[i], 1e-12) {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestShape_Points3D(t *testing.T) {
	free := NewShape(Polygon{Pt(1, 2)}, nil, 0)
	if got := free.Points3D(); !vecEqual(got[0], r3.Vec{X: 1, Y: 2}, 1e-12) {
		t.Errorf("unbound shape lifted to %v, want (1, 2, 0)", got[0])
	}

	placed := NewShape(Polygon{Pt(1, 2)}, straightLine(2), 1)
	if got := placed.Points3D(); !vecEqual(got[0], r3.Vec{X: 1, Y: 2, Z: 10}, 1e-9) {
		t.Errorf("placed shape lifted to %v, want (1, 2, 10)", got[0])
	}
}
