package toast

import (
	"image"
	"time"
)

// Manager owns every live notification: it admits new ones against the
// concurrency cap, hands out monotonically increasing ids, advances each
// lifecycle state machine on Tick and prunes finished instances.
//
// A Manager is not safe for concurrent use. It is designed to live inside a
// host's render loop, with Add, Remove, Tick and the render calls all made
// from the same goroutine. It never reads a clock; time only enters through
// the deltas passed to Tick.
type Manager struct {
	instances []*instance
	nextID    uint64

	maxConcurrent int
	overflow      Overflow
}

// Option configures a Manager at construction. The concurrency cap and
// overflow policy are fixed for the Manager's lifetime; changing them means
// constructing a new Manager.
type Option func(*Manager)

// WithMaxConcurrent caps the number of entering or resting notifications
// per anchor. Zero or negative means unlimited.
func WithMaxConcurrent(n int) Option {
	return func(m *Manager) {
		m.maxConcurrent = n
	}
}

// WithOverflow sets the policy applied when an anchor group is full.
func WithOverflow(o Overflow) Option {
	return func(m *Manager) {
		m.overflow = o
	}
}

// NewManager returns an empty Manager. Without options it admits an
// unlimited number of notifications and discards oldest on overflow.
func NewManager(opts ...Option) *Manager {
	m := &Manager{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Add validates the descriptor, applies the overflow policy for its anchor
// group and admits it as a new entering instance. The returned id is unique
// for the Manager's lifetime and never reused, even after Remove or Clear.
//
// With DiscardNewest and a full anchor group, Add returns a *CapacityError
// and the group is untouched. With DiscardOldest the oldest entering or
// resting instance in the group is dismissed (it animates out) to make
// room.
func (m *Manager) Add(n Notification) (uint64, error) {
	if err := n.Validate(); err != nil {
		return 0, err
	}

	if m.maxConcurrent > 0 {
		for m.anchorActive(n.Anchor) >= m.maxConcurrent {
			if m.overflow == DiscardNewest {
				return 0, &CapacityError{Anchor: n.Anchor, Max: m.maxConcurrent}
			}
			oldest := m.oldestActive(n.Anchor)
			if oldest == nil {
				break
			}
			oldest.dismiss()
		}
	}

	id := m.nextID
	m.nextID++
	m.instances = append(m.instances, newInstance(id, n))
	return id, nil
}

// Remove starts the exit animation for the given notification and reports
// whether it was found. Unknown ids and instances already exiting are
// no-ops; removal racing against natural expiry is expected and never an
// error.
func (m *Manager) Remove(id uint64) bool {
	for _, s := range m.instances {
		if s.id == id {
			s.dismiss()
			return true
		}
	}
	return false
}

// Clear drops every notification immediately, with no exit animation.
func (m *Manager) Clear() {
	m.instances = nil
}

// Tick advances every instance by dt and prunes those that finished,
// returning the pruned ids in id order. Negative deltas are treated as
// zero; Tick(0) never changes any state.
func (m *Manager) Tick(dt time.Duration) []uint64 {
	if dt < 0 {
		dt = 0
	}

	var finished []uint64
	kept := m.instances[:0]
	for _, s := range m.instances {
		s.advance(dt)
		if s.phase == PhaseRemoved {
			finished = append(finished, s.id)
			continue
		}
		kept = append(kept, s)
	}
	m.instances = kept
	return finished
}

// ActiveCount returns the number of entering or resting notifications.
// Exiting instances are still rendered but no longer count against the
// concurrency cap.
func (m *Manager) ActiveCount() int {
	count := 0
	for _, s := range m.instances {
		if s.active() {
			count++
		}
	}
	return count
}

// Len returns the number of live instances, including exiting ones.
func (m *Manager) Len() int {
	return len(m.instances)
}

// IsEmpty reports whether no notification is live at all.
func (m *Manager) IsEmpty() bool {
	return len(m.instances) == 0
}

// Phase returns the current phase of the given notification and whether it
// is still live.
func (m *Manager) Phase(id uint64) (Phase, bool) {
	for _, s := range m.instances {
		if s.id == id {
			return s.phase, true
		}
	}
	return PhaseRemoved, false
}

// anchorActive counts entering and resting instances in one anchor group.
func (m *Manager) anchorActive(a Anchor) int {
	count := 0
	for _, s := range m.instances {
		if s.n.Anchor == a && s.active() {
			count++
		}
	}
	return count
}

// oldestActive returns the lowest-id entering or resting instance in the
// anchor group, or nil when the group holds none.
func (m *Manager) oldestActive(a Anchor) *instance {
	for _, s := range m.instances {
		if s.n.Anchor == a && s.active() {
			return s
		}
	}
	return nil
}

// anchorGroup returns the renderable instances for one anchor in id order.
func (m *Manager) anchorGroup(a Anchor) []*instance {
	var group []*instance
	for _, s := range m.instances {
		if s.n.Anchor == a {
			group = append(group, s)
		}
	}
	return group
}

// Render is one notification's computed placement for the current tick:
// the animated rectangle in frame coordinates, before clipping, and the
// opacity in [0, 1]. Hosts with their own cell renderer can draw from this
// directly instead of using Layers.
type Render struct {
	ID           uint64
	Phase        Phase
	Rect         image.Rectangle
	Opacity      float64
	Notification *Notification
}

// Snapshot computes every live notification's animated rectangle and
// opacity for the current tick. Read-only: it mutates nothing and can be
// called any number of times between ticks. Results are ordered by anchor,
// then id.
func (m *Manager) Snapshot(frame image.Rectangle) []Render {
	var out []Render
	for a := TopLeft; a <= BottomRight; a++ {
		group := m.anchorGroup(a)
		if len(group) == 0 {
			continue
		}

		entries := make([]stackEntry, len(group))
		for i, s := range group {
			entries[i] = stackEntry{size: MeasureSize(&s.n, frame), margin: s.n.Margin}
		}
		rests := stackRects(frame, a, entries)

		for i, s := range group {
			rect, opacity := animate(s, rests[i], frame)
			out = append(out, Render{
				ID:           s.id,
				Phase:        s.phase,
				Rect:         rect,
				Opacity:      opacity,
				Notification: &s.n,
			})
		}
	}
	return out
}
