package game

import (
	"math"
	"testing"

	"github.com/iburimskiy/diag-rot-line/internal/config"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("config.Default() error = %v", err)
	}
	return cfg
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestNodeSegments_AtRest(t *testing.T) {
	cfg := testConfig(t)
	w, h := 600.0, 400.0
	gap := w / 6
	size := gap / cfg.Drawing.SizeFactor

	for i := 0; i < cfg.Chain.Nodes; i++ {
		segs := NodeSegments(cfg, w, h, i, 0)
		if len(segs) != 2*cfg.Chain.Lines {
			t.Fatalf("node %d: %d segments, want %d", i, len(segs), 2*cfg.Chain.Lines)
		}
		cx, cy := gap*float64(i+1), h/2

		for j, d := range segs[:cfg.Chain.Lines] {
			if !near(d.X0, cx) || !near(d.Y0, cy) || !near(d.X1, cx+size) || !near(d.Y1, cy+size) {
				t.Errorf("node %d diagonal %d = %+v, want (%v,%v)-(%v,%v)", i, j, d, cx, cy, cx+size, cy+size)
			}
		}
		for j, e := range segs[cfg.Chain.Lines:] {
			if e.Len() > 1e-9 {
				t.Errorf("node %d edge %d length = %v, want 0 at rest", i, j, e.Len())
			}
		}
	}
}

func TestNodeSegments_Complete(t *testing.T) {
	cfg := testConfig(t)
	w, h := 600.0, 400.0
	size := w / 6 / cfg.Drawing.SizeFactor
	cx, cy := w/6, h/2

	segs := NodeSegments(cfg, w, h, 0, 1)
	for j, e := range segs[cfg.Chain.Lines:] {
		if !near(e.Len(), 2*size) {
			t.Errorf("edge %d length = %v, want %v", j, e.Len(), 2*size)
		}
	}

	// the j-th diagonal has swept (j+1) quarter turns, plus a quarter turn
	// for the whole node
	for j, d := range segs[:cfg.Chain.Lines] {
		if !near(d.Len(), size*math.Sqrt2) {
			t.Errorf("diagonal %d length = %v, want %v", j, d.Len(), size*math.Sqrt2)
		}
		angle := math.Pi/4 + math.Pi/2*float64(j+2)
		wx, wy := cx+size*math.Sqrt2*math.Cos(angle), cy+size*math.Sqrt2*math.Sin(angle)
		if !near(d.X1, wx) || !near(d.Y1, wy) {
			t.Errorf("diagonal %d ends at (%v,%v), want (%v,%v)", j, d.X1, d.Y1, wx, wy)
		}
	}
}

func TestNodeSegments_HalfwayOnlyFirstHalfMoves(t *testing.T) {
	cfg := testConfig(t)
	segs := NodeSegments(cfg, 600, 400, 2, 0.5)
	// at 0.5 every line has swept but the node itself has not turned yet
	first := segs[0]
	if !near(first.X0, 300) || !near(first.Y0, 200) {
		t.Errorf("diagonal starts at (%v,%v), want node centre (300,200)", first.X0, first.Y0)
	}
	for j, e := range segs[cfg.Chain.Lines:] {
		if e.Len() < 1e-6 {
			t.Errorf("edge %d has zero length at progress 0.5", j)
		}
	}
}

func TestRotate(t *testing.T) {
	p := rotate(point{X: 1, Y: 0}, math.Pi/2)
	if !near(p.X, 0) || !near(p.Y, 1) {
		t.Errorf("rotate((1,0), pi/2) = %+v, want (0,1)", p)
	}
}
