package anim

import "fmt"

// Event is what one chain update produced.
type Event int

const (
	// Ticked means the current node advanced without settling.
	Ticked Event = iota
	// Settled means the current node finished its step and traversal moved
	// to the neighbour.
	Settled
	// BoundaryReached means the current node finished its step at an end of
	// the chain; the chain direction flipped and traversal stayed put.
	BoundaryReached
)

func (e Event) String() string {
	switch e {
	case Ticked:
		return "ticked"
	case Settled:
		return "settled"
	case BoundaryReached:
		return "boundary"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// Drawer paints a single node. Implementations must render as a pure
// function of index and progress.
type Drawer interface {
	DrawNode(index int, progress float64)
}

// Node is one element of a Chain. Neighbours are indices into the chain's
// node slice, -1 when absent.
type Node struct {
	Index int
	State State

	prev int
	next int
}

// Chain is a fixed row of nodes with a single current node and a traversal
// direction of +1 or -1.
type Chain struct {
	nodes   []Node
	lines   int
	current int
	dir     int
}

// NewChain creates n linked nodes, each animating lines segments. Traversal
// starts at index 0 moving forward.
func NewChain(n, lines int) (*Chain, error) {
	if n < 1 {
		return nil, fmt.Errorf("chain needs at least one node, got %d", n)
	}
	if lines < 1 {
		return nil, fmt.Errorf("chain needs at least one line per node, got %d", lines)
	}

	nodes := make([]Node, n)
	for i := range nodes {
		nodes[i] = Node{Index: i, prev: i - 1, next: i + 1}
	}
	nodes[n-1].next = -1

	return &Chain{nodes: nodes, lines: lines, dir: 1}, nil
}

func (c *Chain) Len() int     { return len(c.nodes) }
func (c *Chain) Current() int { return c.current }
func (c *Chain) Dir() int     { return c.dir }

// Node returns the node at index i. It panics if i is out of range.
func (c *Chain) Node(i int) *Node { return &c.nodes[i] }

// Draw hands every node to d in ascending index order.
func (c *Chain) Draw(d Drawer) {
	for i := range c.nodes {
		d.DrawNode(c.nodes[i].Index, c.nodes[i].State.Progress())
	}
}

// GetNext returns the neighbour of node i in direction dir (-1 is previous,
// anything else next). At an end of the chain it returns i itself and
// boundary = true.
func (c *Chain) GetNext(i, dir int) (next int, boundary bool) {
	n := &c.nodes[i]
	next = n.next
	if dir == -1 {
		next = n.prev
	}
	if next < 0 {
		return i, true
	}
	return next, false
}

// Update ticks the current node. When it settles, traversal moves one step in
// the chain direction, or the direction flips if there is nowhere to go.
func (c *Chain) Update() Event {
	if !c.nodes[c.current].State.Update(c.lines) {
		return Ticked
	}

	next, boundary := c.GetNext(c.current, c.dir)
	if boundary {
		c.dir *= -1
		return BoundaryReached
	}
	c.current = next
	return Settled
}

// StartUpdating arms the current node. It reports false while that node is
// still animating.
func (c *Chain) StartUpdating() bool {
	return c.nodes[c.current].State.StartUpdating()
}

// Animating reports whether the current node is mid-step.
func (c *Chain) Animating() bool {
	return !c.nodes[c.current].State.Idle()
}
