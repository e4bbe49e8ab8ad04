package sweep

import (
	"fmt"
	"math"
	"sort"

	"github.com/ahmetayrnc/3d-sweep-line/internal/parallel"
)

// Bracket returns the pair of shapes surrounding curve parameter t and the
// blend between them. shapes must be sorted by T and non-empty.
//
// Inside the covered range the result satisfies
// shapes[prev].T() <= t <= shapes[next].T() with next == prev+1, and ties
// pick the earliest such pair. Before the first shape the bracket is
// (0, 0) and after the last shape it is (last, last), both with blend 0, so
// the end shapes are extruded flat. A single shape always brackets itself.
// The blend is 0 when both shapes share the same parameter. A NaN t
// brackets the first shape.
func Bracket(shapes []*Shape, t float64) (prev, next int, blend float64) {
	n := len(shapes)
	switch {
	case n <= 1:
		return 0, 0, 0
	case t < shapes[0].T(), math.IsNaN(t):
		return 0, 0, 0
	case t > shapes[n-1].T():
		return n - 1, n - 1, 0
	}

	next = 1 + sort.Search(n-1, func(i int) bool { return shapes[i+1].T() >= t })
	prev = next - 1
	return prev, next, inverseLerp(shapes[prev].T(), shapes[next].T(), t)
}

// inverseLerp returns where t falls between a and b, clamped to [0, 1].
// A degenerate span yields 0.
func inverseLerp(a, b, t float64) float64 {
	if a == b {
		return 0
	}
	return clampUnit((t - a) / (b - a))
}

// Sample produces one morphed shape per sample point of c.
//
// For each sample point the curve parameter is recovered with
// ClosestParameter, the bracketing pair of shapes is found with Bracket,
// and the pair is morphed at that parameter. responses[i] shapes the
// segment that starts at shapes[i]; a missing or nil entry falls back to
// responses[0], and to a linear blend when that is missing too.
//
// shapes must already be normalized and sorted by T. Each returned shape
// owns a fresh point buffer.
func Sample(c Curve, shapes []*Shape, responses []ResponseCurve) ([]*Shape, error) {
	return sample(c, shapes, responses, nil)
}

// sample is Sample with the layers spread over pool when it is not nil.
// Every layer is independent and writes only its own slot.
func sample(c Curve, shapes []*Shape, responses []ResponseCurve, pool *parallel.Pool) ([]*Shape, error) {
	if c == nil {
		return nil, fmt.Errorf("sample: nil curve: %w", ErrInvalidInput)
	}
	if len(shapes) == 0 {
		return nil, fmt.Errorf("sample: no shapes: %w", ErrInvalidInput)
	}
	count := c.NumSamples()
	if count == 0 {
		return nil, fmt.Errorf("sample: curve has no sample points: %w", ErrInvalidInput)
	}

	out := make([]*Shape, count)
	bad := make([]bool, count)
	layer := func(i int) {
		t := c.ClosestParameter(c.Sample(i))
		if math.IsNaN(t) {
			bad[i] = true
			return
		}
		prev, next, blend := Bracket(shapes, t)
		out[i] = Morph(shapes[prev], shapes[next], blend, t, responseFor(responses, prev))
	}
	if pool != nil {
		pool.For(count, layer)
	} else {
		for i := range out {
			layer(i)
		}
	}
	for i, b := range bad {
		if b {
			return nil, fmt.Errorf("sample: curve parameter of sample %d is NaN: %w", i, ErrInvalidInput)
		}
	}

	Logger().Debug("sweep: sampled curve", "samples", count, "vertices", out[0].Len())
	return out, nil
}

// responseFor selects the response curve of the segment starting at i.
func responseFor(responses []ResponseCurve, i int) ResponseCurve {
	if i >= 0 && i < len(responses) && responses[i] != nil {
		return responses[i]
	}
	if len(responses) > 0 {
		return responses[0]
	}
	return nil
}
