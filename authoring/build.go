package authoring

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	sweep "github.com/ahmetayrnc/3d-sweep-line"
	"github.com/ahmetayrnc/3d-sweep-line/curve"
)

// Default sampling of curves that do not set it.
const (
	defaultSegments = 16
	defaultSamples  = 8
	defaultTension  = 0.5
)

// NewExtruder builds the curve, sections and options of s and returns an
// extruder loaded with them. The mesh is not computed yet.
func (s *Scene) NewExtruder() (*sweep.Extruder, error) {
	c, err := s.BuildCurve()
	if err != nil {
		return nil, err
	}
	sections, err := s.BuildSections()
	if err != nil {
		return nil, err
	}
	opts, err := s.BuildOptions()
	if err != nil {
		return nil, err
	}
	ex := sweep.NewExtruder(c, opts...)
	ex.SetSections(sections)
	return ex, nil
}

// BuildCurve returns the sweep curve.
func (s *Scene) BuildCurve() (*curve.VertexPath, error) {
	cs := s.Curve
	switch strings.ToLower(cs.Type) {
	case "", "line":
		from, err := vec3(cs.From, "curve.from")
		if err != nil {
			return nil, err
		}
		to, err := vec3(cs.To, "curve.to")
		if err != nil {
			return nil, err
		}
		segments := cs.Segments
		if segments <= 0 {
			segments = defaultSegments
		}
		return curve.NewLine(from, to, segments), nil

	case "polyline":
		pts, err := vec3s(cs.Points, "curve.points")
		if err != nil {
			return nil, err
		}
		return wrapCurve(curve.NewVertexPath(pts))

	case "catmullrom":
		pts, err := vec3s(cs.Points, "curve.points")
		if err != nil {
			return nil, err
		}
		tension := defaultTension
		if cs.Tension != nil {
			tension = *cs.Tension
		}
		return wrapCurve(curve.NewCatmullRomPath(pts, samplesOr(cs.Samples), tension))

	case "bezier":
		pts, err := vec3s(cs.Points, "curve.points")
		if err != nil {
			return nil, err
		}
		if len(pts) < 4 || (len(pts)-1)%3 != 0 {
			return nil, fmt.Errorf("%w: curve.points: bezier chain needs 3n+1 control points, got %d",
				ErrInvalidScene, len(pts))
		}
		segs := make([]curve.CubicBez, 0, (len(pts)-1)/3)
		for i := 0; i+3 < len(pts); i += 3 {
			segs = append(segs, curve.NewCubicBez(pts[i], pts[i+1], pts[i+2], pts[i+3]))
		}
		return wrapCurve(curve.NewBezierPath(segs, samplesOr(cs.Samples)))

	default:
		return nil, fmt.Errorf("%w: unknown curve type %q", ErrInvalidScene, cs.Type)
	}
}

// BuildSections returns the cross sections in file order.
func (s *Scene) BuildSections() ([]sweep.Section, error) {
	if len(s.Sections) == 0 {
		return nil, fmt.Errorf("%w: no sections", ErrInvalidScene)
	}
	out := make([]sweep.Section, len(s.Sections))
	for i, ss := range s.Sections {
		sec, err := ss.build()
		if err != nil {
			return nil, fmt.Errorf("sections[%d]: %w", i, err)
		}
		out[i] = sec
	}
	return out, nil
}

func (ss SectionSpec) build() (sweep.Section, error) {
	var poly sweep.Polygon
	switch {
	case ss.Regular != nil && len(ss.Points) > 0:
		return sweep.Section{}, fmt.Errorf("%w: both points and regular set", ErrInvalidScene)
	case ss.Regular != nil:
		r := ss.Regular
		if r.Sides < 3 || r.Radius <= 0 {
			return sweep.Section{}, fmt.Errorf("%w: regular polygon needs sides >= 3 and radius > 0",
				ErrInvalidScene)
		}
		poly = sweep.RegularPolygon(r.Sides, r.Radius, degrees(r.Rotation))
	default:
		poly = make(sweep.Polygon, len(ss.Points))
		for i, p := range ss.Points {
			if len(p) != 2 {
				return sweep.Section{}, fmt.Errorf("%w: points[%d]: want 2 coordinates, got %d",
					ErrInvalidScene, i, len(p))
			}
			poly[i] = sweep.Pt(p[0], p[1])
		}
	}

	m, err := ss.transform()
	if err != nil {
		return sweep.Section{}, err
	}
	if !m.IsIdentity() {
		poly = poly.Transform(m)
	}

	resp, err := ss.Response.build()
	if err != nil {
		return sweep.Section{}, err
	}
	return sweep.Section{Polygon: poly, T: ss.T, Response: resp}, nil
}

// transform returns offset * rotate * scale.
func (ss SectionSpec) transform() (sweep.Matrix, error) {
	m := sweep.Identity()
	switch len(ss.Offset) {
	case 0:
	case 2:
		m = sweep.Translate(ss.Offset[0], ss.Offset[1])
	default:
		return m, fmt.Errorf("%w: offset: want 2 values, got %d", ErrInvalidScene, len(ss.Offset))
	}
	if ss.Rotate != 0 {
		m = m.Multiply(sweep.Rotate(degrees(ss.Rotate)))
	}
	switch len(ss.Scale) {
	case 0:
	case 1:
		m = m.Multiply(sweep.Scale(ss.Scale[0], ss.Scale[0]))
	case 2:
		m = m.Multiply(sweep.Scale(ss.Scale[0], ss.Scale[1]))
	default:
		return m, fmt.Errorf("%w: scale: want 1 or 2 values, got %d", ErrInvalidScene, len(ss.Scale))
	}
	return m, nil
}

func (rs *ResponseSpec) build() (sweep.ResponseCurve, error) {
	if rs == nil {
		return nil, nil
	}
	set := 0
	for _, ok := range []bool{rs.Ease != "", len(rs.Bezier) > 0, len(rs.Keys) > 0} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("%w: response: set exactly one of ease, bezier, keys", ErrInvalidScene)
	}

	switch {
	case rs.Ease != "":
		return parseEase(rs.Ease)
	case len(rs.Bezier) > 0:
		if len(rs.Bezier) != 4 {
			return nil, fmt.Errorf("%w: response.bezier: want 4 values, got %d", ErrInvalidScene, len(rs.Bezier))
		}
		ease, err := sweep.NewCubicEase(rs.Bezier[0], rs.Bezier[1], rs.Bezier[2], rs.Bezier[3])
		if err != nil {
			return nil, err
		}
		return ease, nil
	default:
		keys := make([]sweep.Keyframe, len(rs.Keys))
		for i, k := range rs.Keys {
			if len(k) != 2 {
				return nil, fmt.Errorf("%w: response.keys[%d]: want (time, value)", ErrInvalidScene, i)
			}
			keys[i] = sweep.Keyframe{Time: k[0], Value: k[1]}
		}
		return sweep.NewKeyframes(keys...).SmoothTangents(), nil
	}
}

// BuildOptions returns the pipeline options.
func (s *Scene) BuildOptions() ([]sweep.Option, error) {
	o := s.Options
	var opts []sweep.Option

	switch strings.ToLower(o.Align) {
	case "", "distance":
	case "direction":
		opts = append(opts, sweep.WithAlignMetric(sweep.AlignByDirection))
	default:
		return nil, fmt.Errorf("%w: options.align %q", ErrInvalidScene, o.Align)
	}

	switch strings.ToLower(o.Caps) {
	case "", "normalized":
	case "authored":
		opts = append(opts, sweep.WithCaps(sweep.CapsAuthored))
	case "none":
		opts = append(opts, sweep.WithCaps(sweep.CapsNone))
	default:
		return nil, fmt.Errorf("%w: options.caps %q", ErrInvalidScene, o.Caps)
	}

	switch strings.ToLower(o.Triangulator) {
	case "", "earclip":
	case "fan":
		opts = append(opts, sweep.WithTriangulator(sweep.FanTriangulator{}))
	case "cdt":
		opts = append(opts, sweep.WithTriangulator(sweep.FallbackTriangulator{
			Primary:   sweep.CDTTriangulator{},
			Secondary: sweep.EarClipper{},
		}))
	default:
		return nil, fmt.Errorf("%w: options.triangulator %q", ErrInvalidScene, o.Triangulator)
	}

	if o.ConsistentWinding != nil {
		opts = append(opts, sweep.WithConsistentWinding(*o.ConsistentWinding))
	}

	if o.Response != "" {
		r, err := parseEase(o.Response)
		if err != nil {
			return nil, fmt.Errorf("options.response: %w", err)
		}
		opts = append(opts, sweep.WithDefaultResponse(r))
	}

	if o.Workers < 0 {
		return nil, fmt.Errorf("%w: options.workers %d", ErrInvalidScene, o.Workers)
	}
	if o.Workers > 1 {
		opts = append(opts, sweep.WithWorkers(o.Workers))
	}
	return opts, nil
}

func parseEase(name string) (sweep.ResponseCurve, error) {
	switch strings.ToLower(name) {
	case "linear":
		return sweep.Linear{}, nil
	case "in":
		return sweep.EaseIn, nil
	case "out":
		return sweep.EaseOut, nil
	case "inout":
		return sweep.EaseInOut, nil
	default:
		return nil, fmt.Errorf("%w: unknown ease %q", ErrInvalidScene, name)
	}
}

func wrapCurve(vp *curve.VertexPath, err error) (*curve.VertexPath, error) {
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	return vp, nil
}

func samplesOr(n int) int {
	if n <= 0 {
		return defaultSamples
	}
	return n
}

func vec3(v []float64, field string) (r3.Vec, error) {
	if len(v) != 3 {
		return r3.Vec{}, fmt.Errorf("%w: %s: want 3 coordinates, got %d", ErrInvalidScene, field, len(v))
	}
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}, nil
}

func vec3s(vs [][]float64, field string) ([]r3.Vec, error) {
	out := make([]r3.Vec, len(vs))
	for i, v := range vs {
		p, err := vec3(v, fmt.Sprintf("%s[%d]", field, i))
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

func degrees(d float64) float64 {
	return d * math.Pi / 180
}
