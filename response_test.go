package sweep

import (
	"errors"
	"math"
	"testing"
)

func TestLinearAndFunc(t *testing.T) {
	for _, x := range []float64{0, 0.25, 1} {
		if got := (Linear{}).Evaluate(x); got != x {
			t.Errorf("Linear(%v) = %v", x, got)
		}
	}
	sq := ResponseFunc(func(x float64) float64 { return x * x })
	if got := sq.Evaluate(0.5); got != 0.25 {
		t.Errorf("ResponseFunc(0.5) = %v, want 0.25", got)
	}
}

func TestCubicEase_Evaluate(t *testing.T) {
	tests := []struct {
		name string
		ease CubicEase
		x    float64
		want float64
	}{
		{"start", EaseInOut, 0, 0},
		{"end", EaseInOut, 1, 1},
		{"below range clamps", EaseIn, -1, 0},
		{"above range clamps", EaseOut, 2, 1},
		{"symmetric midpoint", EaseInOut, 0.5, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ease.Evaluate(tt.x); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Evaluate(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestCubicEase_Shape(t *testing.T) {
	// Ease-in lags the identity, ease-out leads it, and both are monotonic.
	prevIn, prevOut := 0.0, 0.0
	for i := 1; i < 20; i++ {
		x := float64(i) / 20
		in, out := EaseIn.Evaluate(x), EaseOut.Evaluate(x)
		if in >= x {
			t.Errorf("EaseIn(%v) = %v, want < %v", x, in, x)
		}
		if out <= x {
			t.Errorf("EaseOut(%v) = %v, want > %v", x, out, x)
		}
		if in < prevIn || out < prevOut {
			t.Errorf("not monotonic at %v", x)
		}
		prevIn, prevOut = in, out
	}
}

func TestNewCubicEase(t *testing.T) {
	if _, err := NewCubicEase(0.25, 0.1, 0.25, 1); err != nil {
		t.Errorf("valid curve: %v", err)
	}
	// Y may overshoot; X may not.
	if _, err := NewCubicEase(0.5, -0.5, 0.5, 1.5); err != nil {
		t.Errorf("overshooting curve: %v", err)
	}
	for _, bad := range [][4]float64{{-0.1, 0, 1, 1}, {0, 0, 1.1, 1}, {0, math.NaN(), 1, 1}} {
		if _, err := NewCubicEase(bad[0], bad[1], bad[2], bad[3]); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("NewCubicEase%v: err = %v, want ErrInvalidInput", bad, err)
		}
	}
}

func TestKeyframes_Evaluate(t *testing.T) {
	keys := NewKeyframes(
		Keyframe{Time: 1, Value: 1},
		Keyframe{Time: 0, Value: 0},
		Keyframe{Time: 0.5, Value: 0.8},
	).SmoothTangents()

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"before first key", -1, 0},
		{"first key", 0, 0},
		{"middle key", 0.5, 0.8},
		{"last key", 1, 1},
		{"after last key", 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Evaluate(tt.x); math.Abs(got-tt.want) > epsilon {
				t.Errorf("Evaluate(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}

	if keys[0].Time != 0 || keys[2].Time != 1 {
		t.Errorf("keys not sorted: %+v", keys)
	}
}

func TestKeyframes_LinearKeysStayLinear(t *testing.T) {
	keys := NewKeyframes(
		Keyframe{Time: 0, Value: 0},
		Keyframe{Time: 0.5, Value: 0.5},
		Keyframe{Time: 1, Value: 1},
	).SmoothTangents()
	for _, x := range []float64{0.1, 0.3, 0.7, 0.95} {
		if got := keys.Evaluate(x); math.Abs(got-x) > epsilon {
			t.Errorf("Evaluate(%v) = %v, want %v", x, got, x)
		}
	}
}

func TestKeyframes_Empty(t *testing.T) {
	var k Keyframes
	if got := k.Evaluate(0.3); got != 0.3 {
		t.Errorf("empty Evaluate(0.3) = %v, want identity", got)
	}
}

func TestClampUnit(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-1, 0}, {0.5, 0.5}, {2, 1}, {math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := clampUnit(tt.in); got != tt.want {
			t.Errorf("clampUnit(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
