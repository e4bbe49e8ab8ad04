package sweep

import "fmt"

// Morph interpolates between two normalized shapes. Vertex i of the result
// is the linear interpolation of a's and b's vertex i at the effective
// blend, which is response.Evaluate(blend) or blend itself when response is
// nil. The result is placed at curveParam on a's curve; it is not derived
// from a's or b's parameters.
//
// a and b must have the same vertex count. A mismatch means normalization
// did not run and is a programming error: Morph panics with an error
// wrapping ErrVertexCountMismatch.
func Morph(a, b *Shape, blend, curveParam float64, response ResponseCurve) *Shape {
	if a.Len() != b.Len() {
		panic(fmt.Errorf("morph: %d != %d: %w", a.Len(), b.Len(), ErrVertexCountMismatch))
	}

	eff := blend
	if response != nil {
		eff = response.Evaluate(blend)
	}

	pa, pb := a.Points(), b.Points()
	out := make(Polygon, len(pa))
	for i := range out {
		out[i] = pa[i].Lerp(pb[i], eff)
	}
	return NewShape(out, a.Curve(), curveParam)
}
