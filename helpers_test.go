package sweep

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ahmetayrnc/3d-sweep-line/curve"
)

const epsilon = 1e-9

// straightLine is the path from the origin to (0, 0, 10) in segments equal
// parts, giving segments+1 samples.
func straightLine(segments int) Curve {
	return curve.NewLine(r3.Vec{}, r3.Vec{Z: 10}, segments)
}

// square is the counter-clockwise unit square starting at (0, 0).
func square() Polygon {
	return Polygon{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}
}

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func pointsEqual(p1, p2 Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

func vecEqual(a, b r3.Vec, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func assertPolygon(t *testing.T, got, want Polygon) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d points %v, want %d points %v", len(got), got, len(want), want)
	}
	for i := range want {
		if !pointsEqual(got[i], want[i], epsilon) {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

// mustPanic runs f and returns the recovered value, failing if f returns
// normally.
func mustPanic(t *testing.T, f func()) (v any) {
	t.Helper()
	defer func() {
		v = recover()
		if v == nil {
			t.Fatal("expected a panic")
		}
	}()
	f()
	return nil
}
