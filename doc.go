// Package sweep generates 3D tube meshes by sweeping 2D cross sections
// along a curve.
//
// # Overview
//
// A sweep is authored as a curve plus a few cross sections, each a closed
// 2D polygon pinned to a parameter t in [0, 1] along the curve. Sections
// may have different vertex counts. The pipeline makes them compatible,
// morphs between them at every curve sample and stitches the samples into
// a single triangle mesh with end caps.
//
// # Quick Start
//
//	import (
//	    sweep "github.com/ahmetayrnc/3d-sweep-line"
//	    "github.com/ahmetayrnc/3d-sweep-line/curve"
//	)
//
//	path := curve.NewLine(r3.Vec{}, r3.Vec{Z: 10}, 5)
//	ex := sweep.NewExtruder(path)
//	ex.SetSections([]sweep.Section{
//	    {Polygon: sweep.RegularPolygon(3, 1, 0), T: 0},
//	    {Polygon: sweep.RegularPolygon(6, 1, 0), T: 1},
//	})
//	mesh, err := ex.Recompute()
//
// For a one-off pass without keeping state, call Sweep directly:
//
//	mesh, layers, err := sweep.Sweep(path, sections, sweep.WithWorkers(4))
//
// # Pipeline
//
// Each recomputation pass runs, from scratch:
//   - Normalize: the section with the most vertices seeds a walk through
//     its neighbors; each neighbor is aligned (rotated to start at the
//     best-matching vertex) and expanded (vertices inserted by arc length)
//     to the seed's vertex count.
//   - Sample: for every curve sample, the enclosing pair of sections is
//     morphed, optionally shaped by a ResponseCurve.
//   - Stitch: consecutive samples are joined by quads split into two
//     triangles, and the ends are closed by triangulated caps.
//
// # Coordinate System
//
// A section point (x, y) is placed at curve parameter t in the frame
// returned by FrameAt: x along Right, y along Up, with Forward the curve
// tangent. The frame is right-handed, so a counter-clockwise section gives
// outward-facing triangles under the right-hand rule.
//
// # Logging
//
// The package is silent by default. Call SetLogger with a *slog.Logger to
// receive debug output of each pass and warnings for failed recomputations.
package sweep
