package sweep

import "fmt"

// Normalize gives every shape the vertex count of the largest one and a
// consistent start vertex, so that vertex i of any shape corresponds to
// vertex i of its neighbors.
//
// Shapes are nodes of a path graph ordered by T (the caller establishes the
// order). Propagation starts at the shape with the most vertices and walks
// outward with an explicit stack: each unvisited neighbor is aligned to the
// current shape and expanded to its vertex count, then pushed. Starting at
// the global maximum means every expansion only ever grows a shape.
//
// The shapes' point lists are replaced in place. A single shape is returned
// unchanged; an empty slice is an ErrInvalidInput.
func Normalize(shapes []*Shape, metric AlignMetric) error {
	if len(shapes) == 0 {
		return fmt.Errorf("normalize: no shapes: %w", ErrInvalidInput)
	}

	seed := 0
	for i, s := range shapes {
		if s.Len() > shapes[seed].Len() {
			seed = i
		}
	}
	if shapes[seed].Len() == 0 {
		return fmt.Errorf("normalize: %w", ErrEmptyPolygon)
	}

	visited := make([]bool, len(shapes))
	visited[seed] = true
	stack := []int{seed}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, nb := range [2]int{cur + 1, cur - 1} {
			if nb < 0 || nb >= len(shapes) || visited[nb] {
				continue
			}
			if err := conform(shapes[cur], shapes[nb], metric); err != nil {
				return fmt.Errorf("normalize: shape %d from shape %d: %w", nb, cur, err)
			}
			visited[nb] = true
			stack = append(stack, nb)
		}
	}

	Logger().Debug("sweep: normalized shapes",
		"shapes", len(shapes), "seed", seed, "vertices", shapes[seed].Len())
	return nil
}

// conform aligns target to ref and expands it to ref's vertex count.
func conform(ref, target *Shape, metric AlignMetric) error {
	aligned, err := AlignWith(metric, ref.Points(), target.Points())
	if err != nil {
		return err
	}
	expanded, err := Expand(ref.Points(), aligned)
	if err != nil {
		return err
	}
	target.setPoints(expanded)
	return nil
}
