package toast

import (
	"testing"
	"time"
)

func fixedTiming(entry, dwell, exit time.Duration) Timing {
	return Timing{Entry: entry, Dwell: dwell, Exit: exit}
}

func buildOrFail(t *testing.T, b *Builder) Notification {
	t.Helper()
	n, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return n
}

// TestPhaseProgression walks an instance through its whole lifecycle with
// one-second ticks: entry 1s, dwell 2s, exit 1s.
func TestPhaseProgression(t *testing.T) {
	n := buildOrFail(t, New("hello").
		Timing(fixedTiming(time.Second, 0, time.Second)).
		AutoDismiss(After(2*time.Second)))
	s := newInstance(0, n)

	if s.phase != PhaseEntering {
		t.Fatalf("expected new instance to be Entering, got %s", s.phase)
	}

	s.advance(time.Second)
	if s.phase != PhaseResting {
		t.Errorf("expected Resting after 1s, got %s", s.phase)
	}
	if s.elapsed != 0 {
		t.Errorf("expected elapsed reset on transition, got %s", s.elapsed)
	}

	s.advance(time.Second)
	if s.phase != PhaseResting {
		t.Errorf("expected still Resting after 1s of dwell, got %s", s.phase)
	}

	s.advance(time.Second)
	if s.phase != PhaseExiting {
		t.Errorf("expected Exiting at exactly the dwell boundary, got %s", s.phase)
	}

	s.advance(time.Second)
	if s.phase != PhaseRemoved {
		t.Errorf("expected Removed after exit completes, got %s", s.phase)
	}
}

// TestAdvanceCarryOver verifies leftover time crosses phase boundaries: a
// single large delta walks the machine through every phase.
func TestAdvanceCarryOver(t *testing.T) {
	n := buildOrFail(t, New("hello").
		Timing(fixedTiming(100*time.Millisecond, 0, 100*time.Millisecond)).
		AutoDismiss(After(200*time.Millisecond)))

	s := newInstance(0, n)
	s.advance(250 * time.Millisecond)
	if s.phase != PhaseResting {
		t.Fatalf("expected Resting, got %s", s.phase)
	}
	if s.elapsed != 150*time.Millisecond {
		t.Errorf("expected 150ms carried into Resting, got %s", s.elapsed)
	}

	s = newInstance(1, n)
	s.advance(400 * time.Millisecond)
	if s.phase != PhaseRemoved {
		t.Errorf("expected one 400ms tick to finish the lifecycle, got %s", s.phase)
	}
}

// TestZeroTickIdempotent checks that tick(0) never changes phase or
// elapsed time, no matter how often it is called.
func TestZeroTickIdempotent(t *testing.T) {
	n := buildOrFail(t, New("hello").Timing(fixedTiming(time.Second, 0, time.Second)))
	s := newInstance(0, n)
	s.advance(300 * time.Millisecond)

	for range 10 {
		s.advance(0)
	}
	if s.phase != PhaseEntering || s.elapsed != 300*time.Millisecond {
		t.Errorf("zero ticks changed state: phase=%s elapsed=%s", s.phase, s.elapsed)
	}

	s.advance(-time.Second)
	if s.elapsed != 300*time.Millisecond {
		t.Errorf("negative tick changed elapsed to %s", s.elapsed)
	}
}

// TestNeverDismiss keeps an instance resting through an hour of ticks.
func TestNeverDismiss(t *testing.T) {
	n := buildOrFail(t, New("pinned").
		Timing(fixedTiming(time.Second, 0, time.Second)).
		AutoDismiss(Never()))
	s := newInstance(0, n)
	s.advance(time.Second)

	for range 60 {
		s.advance(time.Minute)
	}
	if s.phase != PhaseResting {
		t.Errorf("expected never-dismiss instance to stay Resting, got %s", s.phase)
	}

	s.dismiss()
	if s.phase != PhaseExiting {
		t.Errorf("expected explicit dismiss to start the exit, got %s", s.phase)
	}
}

// TestDismissSkipsToExit covers the explicit-removal fast path from each
// phase.
func TestDismissSkipsToExit(t *testing.T) {
	n := buildOrFail(t, New("bye").Timing(fixedTiming(time.Second, 0, time.Second)))

	s := newInstance(0, n)
	s.dismiss()
	if s.phase != PhaseExiting {
		t.Errorf("dismiss while Entering: expected Exiting, got %s", s.phase)
	}

	s = newInstance(1, n)
	s.advance(time.Second)
	s.dismiss()
	if s.phase != PhaseExiting || s.elapsed != 0 {
		t.Errorf("dismiss while Resting: expected fresh Exiting, got %s elapsed=%s", s.phase, s.elapsed)
	}

	s.advance(400 * time.Millisecond)
	s.dismiss()
	if s.elapsed != 400*time.Millisecond {
		t.Errorf("dismiss while Exiting should be a no-op, elapsed reset to %s", s.elapsed)
	}
}

// TestProgressEased checks the progress fraction respects the ease-in-out
// boundary conditions.
func TestProgressEased(t *testing.T) {
	n := buildOrFail(t, New("x").Timing(fixedTiming(time.Second, 0, time.Second)))
	s := newInstance(0, n)

	if got := s.progress(); got != 0 {
		t.Errorf("expected progress 0 at phase start, got %v", got)
	}

	s.advance(500 * time.Millisecond)
	if got := s.progress(); got != 0.5 {
		t.Errorf("expected eased progress 0.5 at midpoint, got %v", got)
	}

	s.advance(499 * time.Millisecond)
	if got := s.progress(); got <= 0.9 || got > 1 {
		t.Errorf("expected progress near 1 close to phase end, got %v", got)
	}
}
