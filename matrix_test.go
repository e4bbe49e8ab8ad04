package sweep

import (
	"math"
	"testing"
)

func TestMatrix_TransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		p    Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -2), Pt(1, 1), Pt(11, -1)},
		{"scale", Scale(2, 3), Pt(1, 1), Pt(2, 3)},
		{"rotate 90deg", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"scale then translate", Translate(1, 0).Multiply(Scale(2, 2)), Pt(1, 1), Pt(3, 2)},
		{"translate then scale", Scale(2, 2).Multiply(Translate(1, 0)), Pt(1, 1), Pt(4, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.p); !pointsEqual(got, tt.want, epsilon) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestMatrix_Determinant(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want float64
	}{
		{"identity", Identity(), 1},
		{"translation", Translate(5, 5), 1},
		{"rotation", Rotate(0.7), 1},
		{"scale", Scale(2, 3), 6},
		{"mirror", Scale(-1, 1), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Determinant(); math.Abs(got-tt.want) > epsilon {
				t.Errorf("Determinant() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatrix_IsIdentity(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity(), true},
		{"scale 1,1", Scale(1, 1), true},
		{"zero translation", Translate(0, 0), true},
		{"translation", Translate(1, 0), false},
		{"zero matrix", Matrix{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsIdentity(); got != tt.want {
				t.Errorf("Matrix%+v.IsIdentity() = %v, want %v", tt.m, got, tt.want)
			}
		})
	}
}

func TestPolygon_TransformMirrorFlipsWinding(t *testing.T) {
	p := square()
	mirrored := p.Transform(Scale(-1, 1))
	if p.Winding() == mirrored.Winding() {
		t.Errorf("mirroring kept winding %v", p.Winding())
	}
	moved := p.Transform(Translate(5, 5).Multiply(Rotate(1)))
	if p.Winding() != moved.Winding() {
		t.Errorf("rigid motion changed winding to %v", moved.Winding())
	}
}
