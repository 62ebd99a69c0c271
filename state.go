package toast

import "time"

// instance is the per-notification lifecycle state machine. It is owned
// exclusively by a Manager and advanced only by caller-supplied deltas; it
// never reads a clock.
type instance struct {
	id      uint64
	n       Notification
	phase   Phase
	elapsed time.Duration

	// Phase lengths resolved once at admission.
	entry time.Duration
	dwell time.Duration
	exit  time.Duration
}

func newInstance(id uint64, n Notification) *instance {
	return &instance{
		id:    id,
		n:     n,
		phase: PhaseEntering,
		entry: n.EntryDuration(),
		dwell: n.DwellDuration(),
		exit:  n.ExitDuration(),
	}
}

// advance moves the machine forward by dt. Time left over when a phase
// boundary is crossed carries into the next phase, so a single large delta
// can walk an instance all the way to PhaseRemoved. A zero or negative
// delta changes nothing.
func (s *instance) advance(dt time.Duration) {
	if dt <= 0 {
		return
	}

	for dt > 0 && s.phase != PhaseRemoved {
		switch s.phase {
		case PhaseEntering:
			remain := s.entry - s.elapsed
			if dt < remain {
				s.elapsed += dt
				return
			}
			dt -= remain
			s.phase, s.elapsed = PhaseResting, 0

		case PhaseResting:
			if s.n.AutoDismiss.IsNever() {
				s.elapsed += dt
				return
			}
			remain := s.dwell - s.elapsed
			if dt < remain {
				s.elapsed += dt
				return
			}
			dt -= remain
			s.phase, s.elapsed = PhaseExiting, 0

		case PhaseExiting:
			remain := s.exit - s.elapsed
			if dt < remain {
				s.elapsed += dt
				return
			}
			dt -= remain
			s.phase, s.elapsed = PhaseRemoved, 0
		}
	}
}

// dismiss skips ahead to the exit animation. Already-exiting and removed
// instances are left alone.
func (s *instance) dismiss() {
	if s.phase == PhaseEntering || s.phase == PhaseResting {
		s.phase, s.elapsed = PhaseExiting, 0
	}
}

// progress returns the eased completion fraction of the current animated
// phase. Resting always reports 1.
func (s *instance) progress() float64 {
	var total time.Duration
	switch s.phase {
	case PhaseEntering:
		total = s.entry
	case PhaseExiting:
		total = s.exit
	default:
		return 1
	}
	if total <= 0 {
		return 1
	}
	return easeInOutQuad(clamp01(float64(s.elapsed) / float64(total)))
}

// active reports whether the instance counts against the concurrency cap:
// it is on screen or heading there, not on its way out.
func (s *instance) active() bool {
	return s.phase == PhaseEntering || s.phase == PhaseResting
}
