package export

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	sweep "github.com/ahmetayrnc/3d-sweep-line"
)

// unitTriangle is a single counter-clockwise triangle in the XY plane.
func unitTriangle(w sweep.Winding) *sweep.Mesh {
	return &sweep.Mesh{
		Vertices:  []r3.Vec{{}, {X: 1}, {Y: 1}},
		Triangles: []int{0, 1, 2},
		Winding:   w,
	}
}

func TestWriteOBJ(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOBJ(&buf, unitTriangle(sweep.CounterClockwise)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"v 0 0 0\n",
		"v 1 0 0\n",
		"v 0 1 0\n",
		"vn 0 0 1\n",
		"f 1//1 2//2 3//3\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteOBJ_ClockwiseFlipsFaces(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOBJ(&buf, unitTriangle(sweep.Clockwise)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "f 1//1 3//3 2//2\n") {
		t.Errorf("face not flipped:\n%s", out)
	}
	// A clockwise mesh's outward side is -Z.
	if !strings.Contains(out, "vn 0 0 -1\n") {
		t.Errorf("normal not flipped:\n%s", out)
	}
}

func TestWriteSTL(t *testing.T) {
	var buf bytes.Buffer
	m := unitTriangle(sweep.CounterClockwise)
	if err := WriteSTL(&buf, m); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()
	if got, want := len(data), stlHeaderSize+4+50; got != want {
		t.Fatalf("len = %d, want %d", got, want)
	}
	if got := binary.LittleEndian.Uint32(data[stlHeaderSize:]); got != 1 {
		t.Errorf("triangle count = %d, want 1", got)
	}

	rec := data[stlHeaderSize+4:]
	float := func(i int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(rec[4*i:]))
	}
	// Normal, then vertices 0, 1, 2.
	want := []float32{0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0}
	for i, w := range want {
		if got := float(i); got != w {
			t.Errorf("float %d = %v, want %v", i, got, w)
		}
	}
}

func TestWrite_InvalidMesh(t *testing.T) {
	bad := &sweep.Mesh{Vertices: []r3.Vec{{}}, Triangles: []int{0, 1, 2}}
	var buf bytes.Buffer
	if err := WriteOBJ(&buf, bad); !errors.Is(err, sweep.ErrInvalidInput) {
		t.Errorf("WriteOBJ err = %v, want ErrInvalidInput", err)
	}
	if err := WriteSTL(&buf, bad); !errors.Is(err, sweep.ErrInvalidInput) {
		t.Errorf("WriteSTL err = %v, want ErrInvalidInput", err)
	}
}
