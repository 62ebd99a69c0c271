package toast

import (
	"image"
	"strings"
	"testing"
	"time"
)

// TestClipToFrame trims content that crosses frame edges and drops content
// fully outside.
func TestClipToFrame(t *testing.T) {
	frame := image.Rect(0, 0, 10, 4)
	content := "abcdef\nghijkl\nmnopqr"

	got, x, y := clipToFrame(content, image.Rect(2, 1, 8, 4), frame)
	if got != content || x != 2 || y != 1 {
		t.Errorf("fully visible content must pass through, got %q at (%d,%d)", got, x, y)
	}

	got, x, y = clipToFrame(content, image.Rect(0, -2, 6, 1), frame)
	if got != "mnopqr" || y != 0 {
		t.Errorf("expected top clip to keep the last line at y=0, got %q at y=%d", got, y)
	}

	got, x, _ = clipToFrame(content, image.Rect(-2, 0, 4, 3), frame)
	if x != 0 {
		t.Errorf("expected left clip to move x to 0, got %d", x)
	}
	if first := strings.Split(got, "\n")[0]; first != "cdef" {
		t.Errorf("expected left-clipped first line %q, got %q", "cdef", first)
	}

	got, _, _ = clipToFrame(content, image.Rect(8, 0, 14, 3), frame)
	if first := strings.Split(got, "\n")[0]; first != "ab" {
		t.Errorf("expected right-clipped first line %q, got %q", "ab", first)
	}

	if got, _, _ = clipToFrame(content, image.Rect(20, 20, 26, 23), frame); got != "" {
		t.Errorf("expected fully off-screen content to vanish, got %q", got)
	}
}

// TestLevelStyling pins the level palette and both icon sets.
func TestLevelStyling(t *testing.T) {
	if LevelColor(LevelError) != ColorError {
		t.Error("expected error level to map to the error color")
	}
	if LevelColor(LevelInfo) != ColorInfo {
		t.Error("expected info level to map to the info color")
	}

	levels := []Level{LevelInfo, LevelWarn, LevelError, LevelDebug, LevelTrace}
	seen := map[string]bool{}
	for _, l := range levels {
		icon := LevelIcon(l, false)
		ascii := LevelIcon(l, true)
		if icon == "" || ascii == "" {
			t.Errorf("%s: expected icons for both sets", l)
		}
		if seen[ascii] {
			t.Errorf("%s: duplicate ASCII icon %q", l, ascii)
		}
		seen[ascii] = true
		for _, r := range ascii {
			if r > 127 {
				t.Errorf("%s: ASCII icon %q contains non-ASCII rune", l, ascii)
			}
		}
	}
}

// TestRendererLayers renders a resting toast into a single positioned
// layer inside the frame.
func TestRendererLayers(t *testing.T) {
	frame := image.Rect(0, 0, 80, 24)
	m := NewManager()
	id := addOrFail(t, m, New("saved").Title("editor").
		Animation(Fade).
		Timing(fixedTiming(100*time.Millisecond, 0, 100*time.Millisecond)))
	m.Tick(100 * time.Millisecond)

	r := &Renderer{}
	layers := r.Layers(m, frame)
	if len(layers) != 1 {
		t.Fatalf("expected 1 layer, got %d", len(layers))
	}

	layer := layers[0]
	if layer.GetZ() != ZIndexToasts {
		t.Errorf("expected z %d, got %d", ZIndexToasts, layer.GetZ())
	}
	if layer.GetX() < 0 || layer.GetY() < 0 {
		t.Errorf("expected on-screen position, got (%d,%d)", layer.GetX(), layer.GetY())
	}

	m.Remove(id)
	m.Tick(time.Second)
	if layers := r.Layers(m, frame); len(layers) != 0 {
		t.Errorf("expected no layers after removal, got %d", len(layers))
	}
}

// TestRendererSkipsInvisible emits nothing for a slide toast that has not
// entered the frame yet.
func TestRendererSkipsInvisible(t *testing.T) {
	frame := image.Rect(0, 0, 80, 24)
	m := NewManager()
	addOrFail(t, m, New("incoming").Timing(fixedTiming(time.Second, 0, time.Second)))

	r := &Renderer{}
	if layers := r.Layers(m, frame); len(layers) != 0 {
		t.Errorf("expected no layers at progress 0, got %d", len(layers))
	}
}

// TestRendererMaxVisible caps drawn toasts per anchor, keeping the newest.
func TestRendererMaxVisible(t *testing.T) {
	frame := image.Rect(0, 0, 80, 40)
	m := NewManager()
	for i := 0; i < 4; i++ {
		addOrFail(t, m, New("n").Animation(Fade).
			Timing(fixedTiming(50*time.Millisecond, 0, 50*time.Millisecond)))
	}
	m.Tick(50 * time.Millisecond)

	r := &Renderer{MaxVisible: 2}
	layers := r.Layers(m, frame)
	if len(layers) != 2 {
		t.Fatalf("expected 2 layers under the cap, got %d", len(layers))
	}
	for _, render := range m.Snapshot(frame) {
		hidden := r.hiddenByCap(m, render)
		if render.ID >= 2 && hidden {
			t.Errorf("toast %d is among the newest and should be drawn", render.ID)
		}
		if render.ID < 2 && !hidden {
			t.Errorf("toast %d is older than the cap and should be hidden", render.ID)
		}
	}
}

// TestSnapshotReadOnly verifies repeated snapshots between ticks agree.
func TestSnapshotReadOnly(t *testing.T) {
	frame := image.Rect(0, 0, 80, 24)
	m := NewManager()
	addOrFail(t, m, New("steady"))
	m.Tick(200 * time.Millisecond)

	first := m.Snapshot(frame)
	second := m.Snapshot(frame)
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected one entry per snapshot, got %d and %d", len(first), len(second))
	}
	if first[0].Rect != second[0].Rect || first[0].Opacity != second[0].Opacity {
		t.Error("snapshots between ticks must be identical")
	}
}
