package sweep

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput reports a recomputation pass that cannot run on the
	// given input, such as a sweep with zero cross sections.
	ErrInvalidInput = errors.New("sweep: invalid input")

	// ErrDegenerateShape reports a polygon with fewer than 3 points.
	// Errors carrying it also match ErrInvalidInput.
	ErrDegenerateShape = errors.New("sweep: degenerate shape")

	// ErrEmptyPolygon is returned by Align and Expand for an empty source.
	ErrEmptyPolygon = errors.New("sweep: empty polygon")

	// ErrExpandShrink is returned by Expand when the source has more
	// vertices than the reference. Expansion never down-samples.
	ErrExpandShrink = errors.New("sweep: expand cannot reduce vertex count")

	// ErrVertexCountMismatch is the cause of the panic raised by Morph when
	// the two shapes differ in vertex count.
	ErrVertexCountMismatch = errors.New("sweep: vertex count mismatch")

	// ErrTriangulation reports a failure of the cap triangulator.
	ErrTriangulation = errors.New("sweep: triangulation failed")

	// ErrNoMesh is returned by Extruder.Mesh before any successful pass.
	ErrNoMesh = errors.New("sweep: no mesh generated yet")
)

// degenerateError builds an error matching both ErrDegenerateShape and
// ErrInvalidInput.
func degenerateError(format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrInvalidInput, ErrDegenerateShape, fmt.Sprintf(format, args...))
}
