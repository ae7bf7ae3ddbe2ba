package tetris

import "time"

// DropScheduler is a repeating task driven by the host's event loop.
// The host reports elapsed time through Advance; the scheduler invokes its
// callback once per elapsed interval. It never starts goroutines, so every
// callback runs on the caller's thread.
type DropScheduler struct {
	fire     func()
	interval time.Duration
	elapsed  time.Duration
	running  bool
	// generation changes on every Start/Stop so Advance can tell that the
	// callback replaced the schedule it was iterating.
	generation uint64
}

// NewDropScheduler creates a stopped scheduler that calls fire on each tick.
func NewDropScheduler(fire func()) *DropScheduler {
	return &DropScheduler{fire: fire}
}

// Start discards any existing schedule and begins a new one with the given
// interval. The first tick fires one full interval after Start.
func (s *DropScheduler) Start(interval time.Duration) {
	s.generation++
	s.interval = interval
	s.elapsed = 0
	s.running = interval > 0
}

// Stop cancels the schedule. Pending elapsed time is discarded.
func (s *DropScheduler) Stop() {
	s.generation++
	s.elapsed = 0
	s.running = false
}

// Running reports whether a schedule is active.
func (s *DropScheduler) Running() bool {
	return s.running
}

// Interval returns the interval of the current schedule.
func (s *DropScheduler) Interval() time.Duration {
	return s.interval
}

// Advance moves the schedule forward by dt and fires every tick that fell
// due. If a tick restarts or stops the scheduler, time left over from the
// old schedule is dropped.
func (s *DropScheduler) Advance(dt time.Duration) {
	if !s.running || dt <= 0 {
		return
	}
	s.elapsed += dt
	for s.running && s.elapsed >= s.interval {
		s.elapsed -= s.interval
		gen := s.generation
		s.fire()
		if s.generation != gen {
			return
		}
	}
}
