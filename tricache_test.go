package sweep

import (
	"errors"
	"reflect"
	"testing"
)

func TestCachingTriangulator(t *testing.T) {
	calls := 0
	counting := TriangulatorFunc(func(p Polygon) ([]int, error) {
		calls++
		return EarClipper{}.Triangulate(p)
	})
	c := NewCachingTriangulator(counting, 4)

	first, err := c.Triangulate(lShape())
	if err != nil {
		t.Fatal(err)
	}
	first[0] = 99 // callers own the result

	second, err := c.Triangulate(lShape())
	if err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("wrapped triangulator ran %d times, want 1", calls)
	}
	want, _ := EarClipper{}.Triangulate(lShape())
	if !reflect.DeepEqual(second, want) {
		t.Errorf("cached result = %v, want %v", second, want)
	}

	// A moved vertex is a different outline.
	moved := lShape()
	moved[2].X += 1e-9
	if _, err := c.Triangulate(moved); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("wrapped triangulator ran %d times, want 2", calls)
	}

	if s := c.Stats(); s.Hits != 1 || s.Misses != 2 {
		t.Errorf("Stats() = %+v, want 1 hit and 2 misses", s)
	}
}

func TestCachingTriangulator_ErrorsNotCached(t *testing.T) {
	c := NewCachingTriangulator(nil, 0)
	bad := Polygon{Pt(0, 0), Pt(1, 1)}
	for i := 0; i < 2; i++ {
		if _, err := c.Triangulate(bad); !errors.Is(err, ErrDegenerateShape) {
			t.Fatalf("err = %v, want ErrDegenerateShape", err)
		}
	}
	if s := c.Stats(); s.Len != 0 || s.Hits != 0 {
		t.Errorf("Stats() = %+v, want an empty cache", s)
	}
}

func TestOutlineKey(t *testing.T) {
	a := outlineKey(square())
	if a != outlineKey(square()) {
		t.Error("equal outlines have different keys")
	}
	if a == outlineKey(square().Reversed()) {
		t.Error("reordered outline has the same key")
	}
	if len(a) != 16*4 {
		t.Errorf("key length = %d, want 64", len(a))
	}
}
