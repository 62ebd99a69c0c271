package toast

import (
	"image"
	"testing"
)

func uniformEntries(n int, size image.Point) []stackEntry {
	entries := make([]stackEntry, n)
	for i := range entries {
		entries[i] = stackEntry{size: size}
	}
	return entries
}

// TestStackTopGrowsDownward places the oldest toast against a top anchor
// and later ones below it.
func TestStackTopGrowsDownward(t *testing.T) {
	frame := image.Rect(0, 0, 100, 50)
	rects := stackRects(frame, TopRight, uniformEntries(3, image.Pt(20, 5)))

	if rects[0].Min.Y != 0 {
		t.Errorf("oldest toast should sit at the anchor row, got y=%d", rects[0].Min.Y)
	}
	for i := 1; i < len(rects); i++ {
		if rects[i].Min.Y <= rects[i-1].Min.Y {
			t.Errorf("toast %d should stack below its elder: %v after %v", i, rects[i], rects[i-1])
		}
	}
}

// TestStackBottomGrowsUpward places the oldest toast against a bottom
// anchor and later ones above it.
func TestStackBottomGrowsUpward(t *testing.T) {
	frame := image.Rect(0, 0, 100, 50)
	rects := stackRects(frame, BottomRight, uniformEntries(3, image.Pt(20, 5)))

	if rects[0].Max.Y != 50 {
		t.Errorf("oldest toast should sit against the bottom edge, got maxY=%d", rects[0].Max.Y)
	}
	for i := 1; i < len(rects); i++ {
		if rects[i].Min.Y >= rects[i-1].Min.Y {
			t.Errorf("toast %d should stack above its elder: %v after %v", i, rects[i], rects[i-1])
		}
	}
}

// TestStackMiddleAlternates centers the oldest toast and fans later ones
// out below and above it.
func TestStackMiddleAlternates(t *testing.T) {
	frame := image.Rect(0, 0, 100, 51)
	rects := stackRects(frame, MiddleRight, uniformEntries(3, image.Pt(20, 5)))

	center := rects[0]
	if rects[1].Min.Y < center.Max.Y {
		t.Errorf("second toast should sit below the first: %v vs %v", rects[1], center)
	}
	if rects[2].Max.Y > center.Min.Y {
		t.Errorf("third toast should sit above the first: %v vs %v", rects[2], center)
	}
}

// TestStackNonOverlap is the layout invariant: no two rectangles in one
// anchor group may intersect, for any anchor.
func TestStackNonOverlap(t *testing.T) {
	frame := image.Rect(0, 0, 120, 40)
	sizes := []stackEntry{
		{size: image.Pt(30, 5)},
		{size: image.Pt(20, 3), margin: 2},
		{size: image.Pt(40, 7)},
		{size: image.Pt(25, 4), margin: 1},
	}

	for a := TopLeft; a <= BottomRight; a++ {
		rects := stackRects(frame, a, sizes)
		for i := range rects {
			for j := i + 1; j < len(rects); j++ {
				if rects[i].Overlaps(rects[j]) {
					t.Errorf("%s: rects %d and %d overlap: %v, %v", a, i, j, rects[i], rects[j])
				}
			}
		}
	}
}

// TestStackReportsIdealRects keeps rectangles that run past the frame
// instead of dropping them; clipping is the renderer's call.
func TestStackReportsIdealRects(t *testing.T) {
	frame := image.Rect(0, 0, 40, 10)
	rects := stackRects(frame, BottomLeft, uniformEntries(4, image.Pt(20, 4)))

	if len(rects) != 4 {
		t.Fatalf("expected a rect per entry, got %d", len(rects))
	}
	if rects[3].Min.Y >= 0 {
		t.Errorf("expected the fourth toast to overflow the top, got %v", rects[3])
	}
}

// TestStackEmptyGroup returns nothing for an empty anchor group.
func TestStackEmptyGroup(t *testing.T) {
	if rects := stackRects(image.Rect(0, 0, 10, 10), TopLeft, nil); rects != nil {
		t.Errorf("expected nil for empty group, got %v", rects)
	}
}
