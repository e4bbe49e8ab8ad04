// Package authoring loads sweep scenes from YAML or TOML files.
//
// A scene names the sweep curve, the cross sections pinned along it and the
// pipeline options:
//
//	curve:
//	  type: line
//	  from: [0, 0, 0]
//	  to: [0, 0, 10]
//	  segments: 5
//	sections:
//	  - t: 0
//	    regular: {sides: 3, radius: 1}
//	  - t: 1
//	    regular: {sides: 6, radius: 1}
//	    response: {ease: inout}
//	options:
//	  caps: normalized
package authoring

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	sweep "github.com/ahmetayrnc/3d-sweep-line"
)

// Errors returned by the loaders.
var (
	// ErrUnknownFormat is returned for files that are neither YAML nor TOML.
	ErrUnknownFormat = errors.New("authoring: unknown scene format")

	// ErrInvalidScene is returned when a scene decodes but cannot be built.
	ErrInvalidScene = errors.New("authoring: invalid scene")
)

// Format is a scene file encoding.
type Format int

const (
	// YAML is a .yaml or .yml scene.
	YAML Format = iota
	// TOML is a .toml scene.
	TOML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Scene is the decoded form of a scene file.
type Scene struct {
	Curve    CurveSpec     `yaml:"curve" toml:"curve"`
	Sections []SectionSpec `yaml:"sections" toml:"sections"`
	Options  OptionsSpec   `yaml:"options,omitempty" toml:"options,omitempty"`
}

// CurveSpec describes the sweep curve.
//
// Type is one of "line" (From, To, Segments), "polyline" (Points),
// "catmullrom" (Points, Samples, Tension) or "bezier" (Points as a chain of
// 3n+1 control points, Samples per segment).
type CurveSpec struct {
	Type     string      `yaml:"type" toml:"type"`
	From     []float64   `yaml:"from,omitempty" toml:"from,omitempty"`
	To       []float64   `yaml:"to,omitempty" toml:"to,omitempty"`
	Segments int         `yaml:"segments,omitempty" toml:"segments,omitempty"`
	Points   [][]float64 `yaml:"points,omitempty" toml:"points,omitempty"`
	Samples  int         `yaml:"samples,omitempty" toml:"samples,omitempty"`
	Tension  *float64    `yaml:"tension,omitempty" toml:"tension,omitempty"`
}

// SectionSpec describes one cross section. Exactly one of Points and
// Regular must be set. Scale, Rotate (degrees) and Offset are applied in
// that order.
type SectionSpec struct {
	T        float64       `yaml:"t" toml:"t"`
	Points   [][]float64   `yaml:"points,omitempty" toml:"points,omitempty"`
	Regular  *RegularSpec  `yaml:"regular,omitempty" toml:"regular,omitempty"`
	Scale    []float64     `yaml:"scale,omitempty" toml:"scale,omitempty"`
	Rotate   float64       `yaml:"rotate,omitempty" toml:"rotate,omitempty"`
	Offset   []float64     `yaml:"offset,omitempty" toml:"offset,omitempty"`
	Response *ResponseSpec `yaml:"response,omitempty" toml:"response,omitempty"`
}

// RegularSpec describes a regular polygon. Rotation is in degrees.
type RegularSpec struct {
	Sides    int     `yaml:"sides" toml:"sides"`
	Radius   float64 `yaml:"radius" toml:"radius"`
	Rotation float64 `yaml:"rotation,omitempty" toml:"rotation,omitempty"`
}

// ResponseSpec describes the response curve of the segment starting at a
// section. Exactly one field must be set.
//
// Ease is "linear", "in", "out" or "inout". Bezier holds the x1, y1, x2, y2
// control values of a cubic-bezier timing curve. Keys holds (time, value)
// pairs of a smooth keyframe curve.
type ResponseSpec struct {
	Ease   string      `yaml:"ease,omitempty" toml:"ease,omitempty"`
	Bezier []float64   `yaml:"bezier,omitempty" toml:"bezier,omitempty"`
	Keys   [][]float64 `yaml:"keys,omitempty" toml:"keys,omitempty"`
}

// OptionsSpec carries pipeline options as strings.
type OptionsSpec struct {
	Align             string `yaml:"align,omitempty" toml:"align,omitempty"`
	Caps              string `yaml:"caps,omitempty" toml:"caps,omitempty"`
	Triangulator      string `yaml:"triangulator,omitempty" toml:"triangulator,omitempty"`
	ConsistentWinding *bool  `yaml:"consistent_winding,omitempty" toml:"consistent_winding,omitempty"`
	Response          string `yaml:"response,omitempty" toml:"response,omitempty"`
	Workers           int    `yaml:"workers,omitempty" toml:"workers,omitempty"`
}

// Load decodes a scene from r. Unknown fields are rejected.
func Load(r io.Reader, format Format) (*Scene, error) {
	var s Scene
	switch format {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: empty document", ErrInvalidScene)
			}
			return nil, fmt.Errorf("authoring: decode yaml: %w", err)
		}
	case TOML:
		if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&s); err != nil {
			return nil, fmt.Errorf("authoring: decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	return &s, nil
}

// LoadFile reads a scene file, choosing the decoder by extension.
func LoadFile(path string) (*Scene, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Load(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	sweep.Logger().Debug("authoring: loaded scene",
		"path", path, "format", format, "curve", s.Curve.Type, "sections", len(s.Sections))
	return s, nil
}

// Write encodes s to w.
func Write(w io.Writer, s *Scene, format Format) error {
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(s)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
}

// Default returns the triangle-to-hexagon scene: a triangle at t=0 morphing
// into a hexagon at t=1 along a straight 10 unit line with 5 segments.
func Default() *Scene {
	return &Scene{
		Curve: CurveSpec{
			Type:     "line",
			From:     []float64{0, 0, 0},
			To:       []float64{0, 0, 10},
			Segments: 5,
		},
		Sections: []SectionSpec{
			{T: 0, Regular: &RegularSpec{Sides: 3, Radius: 1}},
			{T: 1, Regular: &RegularSpec{Sides: 6, Radius: 1}},
		},
	}
}
