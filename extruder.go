package sweep

import (
	"fmt"
	"math"
	"sort"

	"github.com/ahmetayrnc/3d-sweep-line/internal/parallel"
)

// Section is an authored cross section: an outline placed at parameter T on
// the sweep curve. Response, if set, shapes the morph over the segment that
// starts at this section.
type Section struct {
	Polygon  Polygon
	T        float64
	Response ResponseCurve
}

// Sweep runs one full pass of the pipeline: sections are sorted by T,
// copied, normalized, morphed at every curve sample and stitched into a
// mesh. It returns the mesh and the sampled layers.
//
// The caller's sections are never modified and every call allocates its own
// working buffers, so concurrent calls do not interfere.
func Sweep(c Curve, sections []Section, opts ...Option) (*Mesh, []*Shape, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return sweep(c, sections, o)
}

func sweep(c Curve, sections []Section, o options) (*Mesh, []*Shape, error) {
	if c == nil {
		return nil, nil, fmt.Errorf("sweep: nil curve: %w", ErrInvalidInput)
	}
	if len(sections) == 0 {
		return nil, nil, fmt.Errorf("sweep: no cross sections: %w", ErrInvalidInput)
	}
	for i, s := range sections {
		if err := s.Polygon.Validate(); err != nil {
			return nil, nil, fmt.Errorf("sweep: section %d: %w", i, err)
		}
		if math.IsNaN(s.T) || s.T < 0 || s.T > 1 {
			return nil, nil, fmt.Errorf("sweep: section %d: t = %v outside [0, 1]: %w", i, s.T, ErrInvalidInput)
		}
	}

	order := make([]int, len(sections))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return sections[order[a]].T < sections[order[b]].T })

	authored := make([]Polygon, len(order))
	shapes := make([]*Shape, len(order))
	responses := make([]ResponseCurve, len(order))
	want := sections[order[0]].Polygon.Winding()
	for i, idx := range order {
		s := sections[idx]
		p := s.Polygon.Clone()
		if o.consistentWinding && p.Winding() != want {
			p = p.Reversed()
		}
		authored[i] = p
		shapes[i] = NewShape(p.Clone(), c, s.T)
		responses[i] = s.Response
		if responses[i] == nil {
			responses[i] = o.defaultResponse
		}
	}

	if err := Normalize(shapes, o.metric); err != nil {
		return nil, nil, err
	}
	var pool *parallel.Pool
	if o.workers > 1 {
		pool = parallel.NewPool(o.workers)
		defer pool.Close()
	}
	layers, err := sample(c, shapes, responses, pool)
	if err != nil {
		return nil, nil, err
	}

	var firstCap, lastCap Polygon
	switch o.caps {
	case CapsNormalized:
		firstCap, lastCap = layers[0].Points(), layers[len(layers)-1].Points()
	case CapsAuthored:
		firstCap, lastCap = authored[0], authored[len(authored)-1]
	}

	mesh, err := Stitch(layers, firstCap, lastCap, o.triangulator)
	if err != nil {
		return nil, nil, err
	}
	return mesh, layers, nil
}

// Extruder owns the authored input of a sweep and the most recent mesh.
//
// The host application calls Recompute whenever the input changes (or on a
// timer); there is no incremental update. A failed pass leaves the previous
// mesh in place, so a renderer can keep showing stale but valid geometry.
// An Extruder is not safe for concurrent use.
type Extruder struct {
	curve    Curve
	opts     options
	caps     *CachingTriangulator
	sections []Section

	mesh   *Mesh
	layers []*Shape
}

// capCacheSize is the number of cap outlines an Extruder remembers.
const capCacheSize = 16

// NewExtruder creates an extruder sweeping along c. Cap triangulations are
// cached across passes.
func NewExtruder(c Curve, opts ...Option) *Extruder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	caps := NewCachingTriangulator(o.triangulator, capCacheSize)
	o.triangulator = caps
	return &Extruder{curve: c, opts: o, caps: caps}
}

// Curve returns the sweep curve.
func (e *Extruder) Curve() Curve {
	return e.curve
}

// SetCurve replaces the sweep curve. It takes effect on the next Recompute.
func (e *Extruder) SetCurve(c Curve) {
	e.curve = c
}

// SetSections replaces the authored sections with a deep copy of sections.
// It takes effect on the next Recompute.
func (e *Extruder) SetSections(sections []Section) {
	e.sections = cloneSections(sections)
}

// Sections returns a deep copy of the authored sections.
func (e *Extruder) Sections() []Section {
	return cloneSections(e.sections)
}

// Recompute rebuilds the mesh from scratch. On failure the error is
// returned and the previous mesh is kept.
func (e *Extruder) Recompute() (*Mesh, error) {
	mesh, layers, err := sweep(e.curve, e.sections, e.opts)
	if err != nil {
		Logger().Warn("sweep: recompute failed, keeping previous mesh",
			"sections", len(e.sections), "err", err)
		return nil, err
	}
	e.mesh, e.layers = mesh, layers
	return mesh, nil
}

// Mesh returns the mesh of the last successful pass, or ErrNoMesh.
func (e *Extruder) Mesh() (*Mesh, error) {
	if e.mesh == nil {
		return nil, ErrNoMesh
	}
	return e.mesh, nil
}

// CapCacheStats reports how often cap triangulations were reused.
func (e *Extruder) CapCacheStats() CacheStats {
	return e.caps.Stats()
}

// Layers returns the sampled shapes of the last successful pass.
func (e *Extruder) Layers() []*Shape {
	return e.layers
}

func cloneSections(sections []Section) []Section {
	if sections == nil {
		return nil
	}
	out := make([]Section, len(sections))
	for i, s := range sections {
		out[i] = Section{Polygon: s.Polygon.Clone(), T: s.T, Response: s.Response}
	}
	return out
}
