package toast

import "image"

// stackGap is the number of blank rows kept between stacked notifications
// sharing an anchor.
const stackGap = 1

// stackEntry is one notification's contribution to an anchor stack.
type stackEntry struct {
	size   image.Point
	margin int
}

// StackRects lays out one anchor group. Entries arrive oldest first (id
// order) and the result is index-aligned with the input: the oldest
// rectangle sits against the anchor and later ones stack outward along the
// anchor's vertical axis. Top anchors grow downward, bottom anchors upward,
// and middle-row anchors alternate below and above a centered first
// rectangle. Rectangles that run past the frame are reported as-is; the
// renderer clips.
func stackRects(frame image.Rectangle, a Anchor, entries []stackEntry) []image.Rectangle {
	if len(entries) == 0 {
		return nil
	}

	rects := make([]image.Rectangle, len(entries))
	first := RestingRect(frame, a, entries[0].size, entries[0].margin)
	rects[0] = first

	switch {
	case a.isTop():
		cursor := first.Max.Y
		for i := 1; i < len(entries); i++ {
			rects[i] = placeAtY(frame, a, entries[i], cursor+stackGap)
			cursor = rects[i].Max.Y
		}
	case a.isBottom():
		cursor := first.Min.Y
		for i := 1; i < len(entries); i++ {
			h := entries[i].size.Y
			rects[i] = placeAtY(frame, a, entries[i], cursor-stackGap-h)
			cursor = rects[i].Min.Y
		}
	default:
		up, down := first.Min.Y, first.Max.Y
		for i := 1; i < len(entries); i++ {
			if i%2 == 1 {
				rects[i] = placeAtY(frame, a, entries[i], down+stackGap)
				down = rects[i].Max.Y
			} else {
				h := entries[i].size.Y
				rects[i] = placeAtY(frame, a, entries[i], up-stackGap-h)
				up = rects[i].Min.Y
			}
		}
	}

	return rects
}

// placeAtY builds a rectangle at the given top edge, horizontally aligned
// to the anchor. Width is still clamped to the frame; the vertical position
// is taken verbatim so stacks can run past the frame edge.
func placeAtY(frame image.Rectangle, a Anchor, e stackEntry, y int) image.Rectangle {
	w, h := e.size.X, e.size.Y
	if w > frame.Dx() {
		w = frame.Dx()
	}
	x := alignX(frame, a, w, e.margin)
	if x < frame.Min.X {
		x = frame.Min.X
	}
	if x+w > frame.Max.X {
		x = frame.Max.X - w
	}
	return image.Rect(x, y, x+w, y+h)
}
