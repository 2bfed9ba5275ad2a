package anim

import (
	"fmt"
	"math"
)

// State is the animation state of one node. The zero value is idle at
// progress 0.
type State struct {
	progress  float64
	committed float64
	dir       float64
}

func (s *State) Progress() float64  { return s.progress }
func (s *State) Committed() float64 { return s.committed }
func (s *State) Dir() int           { return int(s.dir) }
func (s *State) Idle() bool         { return s.dir == 0 }

// Update advances progress by one tick. It reports true exactly once per
// step, when progress moves more than one unit away from the committed
// value; progress is then snapped to committed+dir and the state goes idle.
func (s *State) Update(segments int) bool {
	s.progress += UpdateValue(s.progress, s.dir, segments, 1)
	if math.Abs(s.progress-s.committed) <= 1 {
		return false
	}
	s.progress = s.committed + s.dir
	s.dir = 0
	s.committed = s.progress
	return true
}

// StartUpdating arms the state toward the opposite end of its range and
// reports whether it did. It does nothing while already animating.
func (s *State) StartUpdating() bool {
	if s.dir != 0 {
		return false
	}
	if s.committed != 0 && s.committed != 1 {
		panic(fmt.Sprintf("anim: committed progress %v outside {0, 1}", s.committed))
	}
	s.dir = 1 - 2*s.committed
	return true
}
