package game

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/diag-rot-line/internal/anim"
	"github.com/iburimskiy/diag-rot-line/internal/config"
)

// Options are the run-time switches of a Game.
type Options struct {
	Sound bool
}

// Game is the ebiten.Game showing the node row.
type Game struct {
	cfg  config.Config
	ctrl *anim.Controller

	// canvas keeps the last rendered frame; it is repainted only after a
	// redraw request or a resize.
	canvas        *ebiten.Image
	dirty         bool
	width, height int

	// input edge detection
	prevKey map[ebiten.Key]bool

	sound   *soundPlayer
	showHUD bool
	presses int
	started time.Time
}

func New(cfg config.Config, opts Options) (*Game, error) {
	g := &Game{
		cfg:     cfg,
		dirty:   true,
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
		prevKey: map[ebiten.Key]bool{},
		showHUD: true,
		started: time.Now(),
	}

	ctrl, err := anim.NewController(cfg, g.requestRedraw)
	if err != nil {
		return nil, fmt.Errorf("controller: %w", err)
	}
	g.ctrl = ctrl

	if opts.Sound && cfg.Sound.Enabled {
		sp, err := newSoundPlayer(cfg.Sound)
		if err != nil {
			log.Printf("[Sound] disabled: %v", err)
		} else {
			g.sound = sp
			ctrl.OnEvent(func(ev anim.Event, index int) {
				sp.Play(ev, ctrl.Chain().Node(index).State.Committed())
			})
		}
	}
	return g, nil
}

func (g *Game) requestRedraw() { g.dirty = true }

// press is the single "begin" input of the sketch.
func (g *Game) press() {
	g.presses++
	if !g.ctrl.HandleInteraction() {
		log.Printf("[Input] press ignored, node %d still animating", g.ctrl.Chain().Current())
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 ||
		justPressed(ebiten.KeySpace) {
		g.press()
	}
	if justPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.ctrl.Advance(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas == nil || g.canvas.Bounds().Dx() != g.width || g.canvas.Bounds().Dy() != g.height {
		if g.canvas != nil {
			g.canvas.Deallocate()
		}
		g.canvas = ebiten.NewImage(g.width, g.height)
		g.dirty = true
	}
	if g.dirty {
		g.canvas.Fill(g.cfg.Drawing.Back())
		g.ctrl.Render(newNodeRenderer(g.cfg, g.canvas))
		g.dirty = false
	}
	screen.DrawImage(g.canvas, nil)

	if g.showHUD {
		ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}

// status is the HUD text: traversal position, state and recent events.
func (g *Game) status() string {
	chain := g.ctrl.Chain()
	state := "idle - click or Space to animate"
	if g.ctrl.Animating() {
		state = fmt.Sprintf("animating %.2f", chain.Node(chain.Current()).State.Progress())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "node %d/%d  dir %+d  %s\n", chain.Current()+1, chain.Len(), chain.Dir(), state)
	fmt.Fprintf(&b, "presses %d  ticks %d  up %s", g.presses, g.ctrl.Scheduler().Ticks(), formatDuration(time.Since(g.started)))
	if g.sound == nil {
		b.WriteString("  muted")
	}
	for _, r := range g.ctrl.History().Snapshot(4) {
		fmt.Fprintf(&b, "\n#%d node %d %s", r.Seq, r.Index, r.Event)
	}
	return b.String()
}
