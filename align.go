package sweep

import (
	"fmt"
	"math"
)

// AlignMetric selects how Align picks the start vertex of the source.
type AlignMetric int

const (
	// AlignByDistance picks the source vertex with the smallest squared
	// Euclidean distance to the reference's first vertex.
	AlignByDistance AlignMetric = iota

	// AlignByDirection picks the source vertex whose direction from the
	// source centroid is angularly closest to the direction of the
	// reference's first vertex from the reference centroid. It tolerates
	// shapes of different size or offset better than AlignByDistance.
	AlignByDirection
)

// String returns the metric name as used in scene files.
func (m AlignMetric) String() string {
	switch m {
	case AlignByDistance:
		return "distance"
	case AlignByDirection:
		return "direction"
	default:
		return fmt.Sprintf("AlignMetric(%d)", int(m))
	}
}

// Align cyclically re-indexes source so that its first vertex is the one
// that best matches reference[0] under AlignByDistance. The result has the
// same vertex count as source and shares no memory with it.
func Align(reference, source Polygon) (Polygon, error) {
	return AlignWith(AlignByDistance, reference, source)
}

// AlignWith is Align with an explicit metric.
func AlignWith(metric AlignMetric, reference, source Polygon) (Polygon, error) {
	if len(source) == 0 {
		return nil, fmt.Errorf("align: %w", ErrEmptyPolygon)
	}
	if len(reference) == 0 {
		return source.Clone(), nil
	}

	var k int
	switch metric {
	case AlignByDirection:
		k = closestDirectionIndex(reference, source)
	default:
		k = closestPointIndex(source, reference[0])
	}
	return rotateStart(source, k), nil
}

// rotateStart returns out with out[i] = p[(i+k) mod len(p)].
func rotateStart(p Polygon, k int) Polygon {
	n := len(p)
	out := make(Polygon, n)
	for i := range out {
		out[i] = p[(i+k)%n]
	}
	return out
}

// closestPointIndex returns the index of the point in p nearest to target.
// Ties keep the lowest index, which makes re-aligning an aligned shape a
// no-op.
func closestPointIndex(p Polygon, target Point) int {
	best := 0
	bestDist := math.Inf(1)
	for i, v := range p {
		if d := v.DistanceSquared(target); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// closestDirectionIndex compares outward directions from each polygon's
// centroid. A source vertex sitting on its centroid has no direction and
// is skipped unless every vertex does, in which case index 0 is kept.
func closestDirectionIndex(reference, source Polygon) int {
	refDir := reference[0].Sub(reference.Centroid())
	if refDir.LengthSquared() == 0 {
		return closestPointIndex(source, reference[0])
	}
	refAngle := refDir.Atan2()

	c := source.Centroid()
	best := 0
	bestDiff := math.Inf(1)
	for i, v := range source {
		dir := v.Sub(c)
		if dir.LengthSquared() == 0 {
			continue
		}
		if d := angleDiff(dir.Atan2(), refAngle); d < bestDiff {
			best, bestDiff = i, d
		}
	}
	return best
}

// angleDiff returns the absolute angular distance between a and b in [0, π].
func angleDiff(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 2*math.Pi)
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}
