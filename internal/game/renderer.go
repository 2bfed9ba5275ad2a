package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/diag-rot-line/internal/anim"
	"github.com/iburimskiy/diag-rot-line/internal/config"
)

// Segment is a line in screen coordinates.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

func (s Segment) Len() float64 { return math.Hypot(s.X1-s.X0, s.Y1-s.Y0) }

// NodeSegments returns the lines of node i at the given progress on a w×h
// surface: one diagonal and one square edge per configured line, diagonals
// first.
func NodeSegments(cfg config.Config, w, h float64, i int, progress float64) []Segment {
	lines := cfg.Chain.Lines
	gap := w / float64(cfg.Chain.Nodes+1)
	size := gap / cfg.Drawing.SizeFactor
	sc1 := anim.DivideScale(progress, 0, 2)
	sc2 := anim.DivideScale(progress, 1, 2)

	center := point{X: gap * float64(i+1), Y: h / 2}
	base := math.Pi / 2 * sc2
	toScreen := func(p point, local float64) (float64, float64) {
		p = rotate(rotate(p, local), base)
		return center.X + p.X, center.Y + p.Y
	}

	diagonals := make([]Segment, 0, lines)
	edges := make([]Segment, 0, lines)
	deg := 0.0
	for j := 0; j < lines; j++ {
		sc := anim.DivideScale(sc1, j, lines)
		deg += math.Pi / 2 * sc

		var d Segment
		d.X0, d.Y0 = toScreen(point{}, deg)
		d.X1, d.Y1 = toScreen(point{X: size, Y: size}, deg)
		diagonals = append(diagonals, d)

		edgeRot := float64(j) * math.Pi / 2
		var e Segment
		e.X0, e.Y0 = toScreen(point{X: size, Y: size}, edgeRot)
		e.X1, e.Y1 = toScreen(point{X: size - 2*size*sc, Y: size}, edgeRot)
		edges = append(edges, e)
	}
	return append(diagonals, edges...)
}

// nodeRenderer paints nodes onto dst. It satisfies anim.Drawer.
type nodeRenderer struct {
	cfg  config.Config
	dst  *ebiten.Image
	w, h float64
	fore color.RGBA
}

func newNodeRenderer(cfg config.Config, dst *ebiten.Image) *nodeRenderer {
	b := dst.Bounds()
	return &nodeRenderer{
		cfg:  cfg,
		dst:  dst,
		w:    float64(b.Dx()),
		h:    float64(b.Dy()),
		fore: cfg.Drawing.Fore(),
	}
}

func (r *nodeRenderer) DrawNode(i int, progress float64) {
	stroke := float32(math.Min(r.w, r.h) / r.cfg.Drawing.StrokeFactor)
	for _, s := range NodeSegments(r.cfg, r.w, r.h, i, progress) {
		if s.Len() < 1e-6 {
			continue
		}
		x0, y0, x1, y1 := float32(s.X0), float32(s.Y0), float32(s.X1), float32(s.Y1)
		vector.StrokeLine(r.dst, x0, y0, x1, y1, stroke, r.fore, true)
		// round caps
		vector.DrawFilledCircle(r.dst, x0, y0, stroke/2, r.fore, true)
		vector.DrawFilledCircle(r.dst, x1, y1, stroke/2, r.fore, true)
	}
}
