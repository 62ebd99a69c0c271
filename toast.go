// Package toast is an anchored, animated notification engine for terminal
// UIs built on lipgloss v2.
//
// A Manager owns a bounded pool of notifications. The host's render loop
// drives it with caller-supplied time deltas; the engine never reads a
// clock, which keeps every animation deterministic and testable:
//
//	m := toast.NewManager(toast.WithMaxConcurrent(3))
//	n, _ := toast.New("saved").Title("Editor").Level(toast.LevelInfo).Build()
//	id, _ := m.Add(n)
//
//	// once per frame:
//	m.Tick(delta)
//	for _, layer := range renderer.Layers(m, frame) {
//		canvas.Compose(layer)
//	}
//
// Each notification runs a small state machine, Entering, Resting,
// Exiting, with slide, expand/collapse or fade animations between an
// off-screen position and a resting rectangle stacked against one of nine
// frame anchors. Hosts that draw their own cells can use Manager.Snapshot
// instead of the lipgloss renderer.
package toast

// Version is the library version, set at release time.
var Version = "dev"
