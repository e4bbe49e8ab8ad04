package sweep

import (
	"math"
	"slices"
)

// rootEps bounds coefficients and discriminants treated as zero. Easing
// polynomials have coefficients of order one, so an absolute bound is enough.
const rootEps = 1e-12

// unitRoots returns the real roots of ax^3 + bx^2 + cx + d in [0, 1],
// ascending. Roots within rootEps of the interval are clamped onto it.
func unitRoots(a, b, c, d float64) []float64 {
	var out []float64
	for _, r := range cubicRoots(a, b, c, d) {
		if r < -rootEps || r > 1+rootEps {
			continue
		}
		out = append(out, clampUnit(r))
	}
	slices.Sort(out)
	return out
}

// cubicRoots returns the real roots of ax^3 + bx^2 + cx + d in no
// particular order. A vanishing leading coefficient degrades to the
// quadratic case.
func cubicRoots(a, b, c, d float64) []float64 {
	if math.Abs(a) < rootEps {
		return quadraticRoots(b, c, d)
	}
	b, c, d = b/a, c/a, d/a

	// Substituting x = t - b/3 gives t^3 + pt + q.
	shift := -b / 3
	p := c - b*b/3
	q := 2*b*b*b/27 - b*c/3 + d
	disc := q*q/4 + p*p*p/27

	switch {
	case math.Abs(disc) < rootEps*rootEps:
		if math.Abs(p) < rootEps {
			return []float64{shift}
		}
		u := math.Cbrt(-q / 2)
		return []float64{2*u + shift, -u + shift}
	case disc > 0:
		s := math.Sqrt(disc)
		return []float64{math.Cbrt(-q/2+s) + math.Cbrt(-q/2-s) + shift}
	}

	// Three real roots.
	r := 2 * math.Sqrt(-p/3)
	phi := math.Acos(math.Max(-1, math.Min(1, 3*q/(p*r)))) / 3
	return []float64{
		r*math.Cos(phi) + shift,
		r*math.Cos(phi-2*math.Pi/3) + shift,
		r*math.Cos(phi-4*math.Pi/3) + shift,
	}
}

// quadraticRoots returns the real roots of ax^2 + bx + c, ascending.
// When every coefficient vanishes the single root 0 is returned.
func quadraticRoots(a, b, c float64) []float64 {
	if math.Abs(a) < rootEps {
		if math.Abs(b) < rootEps {
			if math.Abs(c) < rootEps {
				return []float64{0}
			}
			return nil
		}
		return []float64{-c / b}
	}

	disc := b*b - 4*a*c
	tol := rootEps * math.Max(b*b, math.Abs(4*a*c))
	switch {
	case disc < -tol:
		return nil
	case disc <= tol:
		return []float64{-b / (2 * a)}
	}
	// q avoids cancellation between -b and the square root.
	q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
	r0, r1 := q/a, c/q
	if r0 > r1 {
		r0, r1 = r1, r0
	}
	return []float64{r0, r1}
}

// isFinite reports whether x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
