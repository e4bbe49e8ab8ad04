package sweep

import "fmt"

// CapMode selects which outlines close the ends of the tube.
type CapMode int

const (
	// CapsNormalized caps the tube with the first and last sampled layers,
	// so cap outlines match the side-wall rims vertex for vertex.
	CapsNormalized CapMode = iota

	// CapsAuthored caps the tube with the first and last authored
	// sections as drawn, before expansion.
	CapsAuthored

	// CapsNone leaves both ends open.
	CapsNone
)

// String returns the mode name as used in scene files.
func (m CapMode) String() string {
	switch m {
	case CapsNormalized:
		return "normalized"
	case CapsAuthored:
		return "authored"
	case CapsNone:
		return "none"
	default:
		return fmt.Sprintf("CapMode(%d)", int(m))
	}
}

// Option configures an Extruder during creation.
// Use functional options to customize Extruder behavior.
//
// Example:
//
//	// Default pipeline
//	ex := sweep.NewExtruder(path)
//
//	// Direction-based alignment and constrained Delaunay caps
//	ex := sweep.NewExtruder(path,
//	    sweep.WithAlignMetric(sweep.AlignByDirection),
//	    sweep.WithTriangulator(sweep.CDTTriangulator{}))
type Option func(*options)

// options holds optional configuration for Extruder creation.
type options struct {
	metric            AlignMetric
	triangulator      Triangulator
	caps              CapMode
	consistentWinding bool
	defaultResponse   ResponseCurve
	workers           int
}

// defaultOptions returns the default extruder options.
func defaultOptions() options {
	return options{
		metric:            AlignByDistance,
		triangulator:      EarClipper{},
		caps:              CapsNormalized,
		consistentWinding: true,
	}
}

// WithAlignMetric sets how neighboring sections are aligned during
// normalization.
func WithAlignMetric(m AlignMetric) Option {
	return func(o *options) {
		o.metric = m
	}
}

// WithTriangulator sets the cap triangulator. Nil keeps the default
// EarClipper.
//
// Example:
//
//	// Delaunay caps, ear clipping when poly2tri rejects the outline
//	sweep.WithTriangulator(sweep.FallbackTriangulator{
//	    Primary:   sweep.CDTTriangulator{},
//	    Secondary: sweep.EarClipper{},
//	})
func WithTriangulator(t Triangulator) Option {
	return func(o *options) {
		if t != nil {
			o.triangulator = t
		}
	}
}

// WithCaps selects the end cap outlines.
func WithCaps(m CapMode) Option {
	return func(o *options) {
		o.caps = m
	}
}

// WithConsistentWinding controls whether sections whose winding differs
// from the first section are reversed (keeping vertex 0) before
// normalization. Enabled by default.
func WithConsistentWinding(enabled bool) Option {
	return func(o *options) {
		o.consistentWinding = enabled
	}
}

// WithDefaultResponse sets the response curve used by segments that have
// none of their own. Nil means a linear blend.
func WithDefaultResponse(r ResponseCurve) Option {
	return func(o *options) {
		o.defaultResponse = r
	}
}

// WithWorkers spreads curve sampling over n goroutines. Values below 2 keep
// sampling on the calling goroutine, which is the default.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
