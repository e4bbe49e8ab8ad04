package sweep

import "fmt"

// Expand raises source's vertex count to match reference while keeping
// source's outline.
//
// The len(reference) output slots are split into len(source) groups sized
// as evenly as possible, the first len(reference) mod len(source) groups
// taking one extra slot. Each group opens with an anchor slot holding the
// matching source vertex unchanged. The remaining slots of the group lie on
// the source edge towards the next anchor, placed by where the same slot
// falls along the reference boundary between the two anchor slots
// (arc-length correspondence), so uneven reference edges do not bunch the
// new vertices.
//
// Expand returns ErrEmptyPolygon for an empty source and ErrExpandShrink when
// source has more vertices than reference. With equal counts the result
// equals source.
func Expand(reference, source Polygon) (Polygon, error) {
	m, k := len(reference), len(source)
	if k == 0 {
		return nil, fmt.Errorf("expand: %w", ErrEmptyPolygon)
	}
	if k > m {
		return nil, fmt.Errorf("expand %d points to %d: %w", k, m, ErrExpandShrink)
	}

	anchors := anchorSlots(m, k)
	out := make(Polygon, m)
	for a, p1 := range anchors {
		// Next anchor slot; the last group wraps to slot 0.
		p2 := 0
		if a+1 < k {
			p2 = anchors[a+1]
		}
		end := p2
		if end == 0 {
			end = m
		}

		from, to := source[a], source[(a+1)%k]
		out[p1] = from
		for i := p1 + 1; i < end; i++ {
			frac := reference.InverseLerpBoundary(p1, p2, i)
			out[i] = from.Lerp(to, frac)
		}
	}
	return out, nil
}

// anchorSlots returns the output index of each of the k anchors when m slots
// are partitioned into k groups, the first m mod k groups one slot larger.
func anchorSlots(m, k int) []int {
	base, rem := m/k, m%k
	slots := make([]int, k)
	pos := 0
	for g := range slots {
		slots[g] = pos
		pos += base
		if g < rem {
			pos++
		}
	}
	return slots
}
