// Package preview renders a PNG overview of a sweep: the sampled cross
// sections overlaid in their own plane on the left, and an orthographic
// wireframe of the mesh on the right.
package preview

import (
	"errors"
	"io"
	"math"

	"github.com/gogpu/gg"
	"gonum.org/v1/gonum/spatial/r3"

	sweep "github.com/ahmetayrnc/3d-sweep-line"
)

// ErrNothingToDraw is returned when neither layers nor a mesh are given.
var ErrNothingToDraw = errors.New("preview: nothing to draw")

const padding = 16.0

// panel is a screen rectangle that world coordinates are fitted into.
type panel struct {
	x, y, w, h float64
}

// fit maps world bounds [lo, hi] into p keeping the aspect ratio, with the
// world Y axis pointing up.
type fit struct {
	scale    float64
	ox, oy   float64
	loX, loY float64
}

func newFit(p panel, loX, loY, hiX, hiY float64) fit {
	w, h := hiX-loX, hiY-loY
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	s := math.Min((p.w-2*padding)/w, (p.h-2*padding)/h)
	return fit{
		scale: s,
		ox:    p.x + (p.w-s*w)/2,
		oy:    p.y + (p.h+s*h)/2,
		loX:   loX,
		loY:   loY,
	}
}

func (f fit) apply(x, y float64) (float64, float64) {
	return f.ox + (x-f.loX)*f.scale, f.oy - (y-f.loY)*f.scale
}

// Draw renders layers and mesh into dc.
func Draw(dc *gg.Context, layers []*sweep.Shape, mesh *sweep.Mesh) error {
	if len(layers) == 0 && mesh == nil {
		return ErrNothingToDraw
	}
	w, h := float64(dc.Width()), float64(dc.Height())

	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(0, 0, w, h)
	if err := dc.Fill(); err != nil {
		return err
	}

	left := panel{0, 0, w / 2, h}
	right := panel{w / 2, 0, w / 2, h}
	if mesh == nil {
		left = panel{0, 0, w, h}
	}
	if len(layers) == 0 {
		right = panel{0, 0, w, h}
	}

	if len(layers) > 0 {
		if err := drawLayers(dc, left, layers); err != nil {
			return err
		}
	}
	if mesh != nil {
		if err := drawWireframe(dc, right, mesh); err != nil {
			return err
		}
	}
	return nil
}

// drawLayers overlays every layer outline, shading from blue at the start
// of the sweep to red at the end, and marks each layer's first vertex.
func drawLayers(dc *gg.Context, p panel, layers []*sweep.Shape) error {
	loX, loY := math.Inf(1), math.Inf(1)
	hiX, hiY := math.Inf(-1), math.Inf(-1)
	for _, l := range layers {
		for _, v := range l.Points() {
			loX, loY = math.Min(loX, v.X), math.Min(loY, v.Y)
			hiX, hiY = math.Max(hiX, v.X), math.Max(hiY, v.Y)
		}
	}
	if math.IsInf(loX, 1) {
		return nil
	}
	f := newFit(p, loX, loY, hiX, hiY)

	dc.SetLineWidth(1.5)
	for i, l := range layers {
		pts := l.Points()
		if len(pts) == 0 {
			continue
		}
		k := 0.0
		if len(layers) > 1 {
			k = float64(i) / float64(len(layers)-1)
		}
		dc.SetRGBA(k, 0.2, 1-k, 0.8)
		for j, v := range pts {
			x, y := f.apply(v.X, v.Y)
			if j == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()
		if err := dc.Stroke(); err != nil {
			return err
		}

		x, y := f.apply(pts[0].X, pts[0].Y)
		dc.DrawCircle(x, y, 3)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}

// drawWireframe projects the mesh onto the plane of its two longest
// bounding box axes and strokes every triangle edge.
func drawWireframe(dc *gg.Context, p panel, mesh *sweep.Mesh) error {
	if mesh.VertexCount() == 0 {
		return nil
	}
	b := mesh.Bounds()
	u, v := projectionAxes(r3.Sub(b.Max, b.Min))
	f := newFit(p, component(b.Min, u), component(b.Min, v), component(b.Max, u), component(b.Max, v))

	dc.SetLineWidth(0.75)
	dc.SetRGBA(0.1, 0.1, 0.1, 0.6)
	for i := 0; i < mesh.TriangleCount(); i++ {
		for k := 0; k < 3; k++ {
			q := mesh.Vertices[mesh.Triangles[3*i+k]]
			x, y := f.apply(component(q, u), component(q, v))
			if k == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()
	}
	return dc.Stroke()
}

// projectionAxes returns the indices (0=X, 1=Y, 2=Z) of the largest and
// second largest components of size.
func projectionAxes(size r3.Vec) (int, int) {
	ext := [3]float64{size.X, size.Y, size.Z}
	first := 0
	for i := 1; i < 3; i++ {
		if ext[i] > ext[first] {
			first = i
		}
	}
	second := (first + 1) % 3
	for i := 0; i < 3; i++ {
		if i != first && ext[i] > ext[second] {
			second = i
		}
	}
	return first, second
}

func component(v r3.Vec, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// EncodePNG renders a width x height preview and writes it to w as PNG.
func EncodePNG(w io.Writer, layers []*sweep.Shape, mesh *sweep.Mesh, width, height int) error {
	dc := gg.NewContext(width, height)
	defer dc.Close()
	if err := Draw(dc, layers, mesh); err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG renders a width x height preview to the PNG file at path.
func SavePNG(path string, layers []*sweep.Shape, mesh *sweep.Mesh, width, height int) error {
	dc := gg.NewContext(width, height)
	defer dc.Close()
	if err := Draw(dc, layers, mesh); err != nil {
		return err
	}
	return dc.SavePNG(path)
}
