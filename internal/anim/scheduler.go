package anim

import "time"

// Scheduler invokes a tick callback at a fixed period while running. It is
// cooperative: time is fed in through Advance, and ticks run one after
// another on the caller's goroutine, so two ticks never overlap.
type Scheduler struct {
	period  time.Duration
	running bool
	tick    func()
	pending time.Duration
	ticks   uint64
}

// NewScheduler returns a stopped scheduler. A non-positive period falls back
// to 50ms.
func NewScheduler(period time.Duration) *Scheduler {
	if period <= 0 {
		period = 50 * time.Millisecond
	}
	return &Scheduler{period: period}
}

func (s *Scheduler) Period() time.Duration { return s.period }
func (s *Scheduler) Running() bool         { return s.running }

// Ticks is the number of ticks fired over the scheduler's lifetime.
func (s *Scheduler) Ticks() uint64 { return s.ticks }

// Start begins ticking. It is a no-op returning false if already running,
// so there is never more than one active timer.
func (s *Scheduler) Start(tick func()) bool {
	if s.running {
		return false
	}
	s.running = true
	s.tick = tick
	s.pending = 0
	return true
}

// Stop cancels further ticks, including any already due in the current
// Advance call. Stopping a stopped scheduler is a no-op returning false.
func (s *Scheduler) Stop() bool {
	if !s.running {
		return false
	}
	s.running = false
	s.tick = nil
	s.pending = 0
	return true
}

// Advance feeds dt of elapsed time and fires every tick that became due.
// It returns the number of ticks fired.
func (s *Scheduler) Advance(dt time.Duration) int {
	if !s.running {
		return 0
	}
	s.pending += dt

	fired := 0
	for s.running && s.pending >= s.period {
		s.pending -= s.period
		s.ticks++
		fired++
		s.tick()
	}
	return fired
}
