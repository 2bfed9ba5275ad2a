package anim

import (
	"log"
	"time"

	"github.com/iburimskiy/diag-rot-line/internal/config"
)

// Controller drives a Chain with a Scheduler. One interaction animates the
// current node to completion and then stops the scheduler.
type Controller struct {
	chain     *Chain
	scheduler *Scheduler
	history   *History
	redraw    func()
	observers []func(Event, int)
}

// NewController builds the chain and scheduler described by cfg. redraw is
// called on every tick and once more after a step finishes; it may be nil.
func NewController(cfg config.Config, redraw func()) (*Controller, error) {
	chain, err := NewChain(cfg.Chain.Nodes, cfg.Chain.Lines)
	if err != nil {
		return nil, err
	}
	if redraw == nil {
		redraw = func() {}
	}
	return &Controller{
		chain:     chain,
		scheduler: NewScheduler(cfg.Animation.TickPeriod),
		history:   NewHistory(cfg.Animation.HistorySize),
		redraw:    redraw,
	}, nil
}

func (c *Controller) Chain() *Chain         { return c.chain }
func (c *Controller) Scheduler() *Scheduler { return c.scheduler }
func (c *Controller) History() *History     { return c.history }

// Animating reports whether a step is in progress.
func (c *Controller) Animating() bool { return c.scheduler.Running() }

// OnEvent registers fn to be told about every Settled or BoundaryReached
// event along with the index of the node that finished.
func (c *Controller) OnEvent(fn func(ev Event, index int)) {
	c.observers = append(c.observers, fn)
}

// HandleInteraction starts a step on the current node. Presses that arrive
// while a step is running are ignored and reported as false.
func (c *Controller) HandleInteraction() bool {
	if !c.chain.StartUpdating() {
		return false
	}
	log.Printf("[Anim] node %d armed, dir %d", c.chain.Current(), c.chain.Node(c.chain.Current()).State.Dir())
	c.scheduler.Start(c.tick)
	return true
}

// Advance feeds elapsed time to the scheduler.
func (c *Controller) Advance(dt time.Duration) int {
	return c.scheduler.Advance(dt)
}

// Render draws every node through d.
func (c *Controller) Render(d Drawer) {
	c.chain.Draw(d)
}

func (c *Controller) tick() {
	c.redraw()

	finished := c.chain.Current()
	ev := c.chain.Update()
	switch ev {
	case Ticked:
		return
	case Settled, BoundaryReached:
		c.scheduler.Stop()
		c.redraw()
		c.history.Add(ev, finished, c.chain.Dir())
		log.Printf("[Anim] node %d %s, current %d, dir %d", finished, ev, c.chain.Current(), c.chain.Dir())
		for _, fn := range c.observers {
			fn(ev, finished)
		}
	}
}
