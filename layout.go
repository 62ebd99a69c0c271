package toast

import "image"

// AnchorPoint returns the cell the given anchor refers to within frame.
// Right and bottom anchors refer to the last cell inside the frame, not the
// exclusive bound.
func AnchorPoint(frame image.Rectangle, a Anchor) image.Point {
	var p image.Point

	switch {
	case a.isLeft():
		p.X = frame.Min.X
	case a.isRight():
		p.X = frame.Max.X - 1
	default:
		p.X = frame.Min.X + frame.Dx()/2
	}

	switch {
	case a.isTop():
		p.Y = frame.Min.Y
	case a.isBottom():
		p.Y = frame.Max.Y - 1
	default:
		p.Y = frame.Min.Y + frame.Dy()/2
	}

	return p
}

// RestingRect places a rectangle of the given size against the anchor,
// pushed inward by margin on the anchored edges, and clamped so the whole
// rectangle stays inside frame. MiddleCenter ignores the margin since it
// touches no edge.
func RestingRect(frame image.Rectangle, a Anchor, size image.Point, margin int) image.Rectangle {
	if size.X > frame.Dx() {
		size.X = frame.Dx()
	}
	if size.Y > frame.Dy() {
		size.Y = frame.Dy()
	}

	x := alignX(frame, a, size.X, margin)
	y := alignY(frame, a, size.Y, margin)
	r := image.Rect(x, y, x+size.X, y+size.Y)
	return clampToFrame(frame, r)
}

// alignX returns the left edge for a rectangle of width w aligned to the
// anchor's horizontal component.
func alignX(frame image.Rectangle, a Anchor, w, margin int) int {
	p := AnchorPoint(frame, a)
	switch {
	case a.isLeft():
		return p.X + margin
	case a.isRight():
		return p.X - (w - 1) - margin
	default:
		return p.X - w/2
	}
}

// alignY returns the top edge for a rectangle of height h aligned to the
// anchor's vertical component.
func alignY(frame image.Rectangle, a Anchor, h, margin int) int {
	p := AnchorPoint(frame, a)
	switch {
	case a.isTop():
		return p.Y + margin
	case a.isBottom():
		return p.Y - (h - 1) - margin
	default:
		return p.Y - h/2
	}
}

// clampToFrame shifts r so it lies within frame, shrinking it only when it
// is larger than the frame itself.
func clampToFrame(frame, r image.Rectangle) image.Rectangle {
	w, h := r.Dx(), r.Dy()
	if w > frame.Dx() {
		w = frame.Dx()
	}
	if h > frame.Dy() {
		h = frame.Dy()
	}

	x, y := r.Min.X, r.Min.Y
	if x < frame.Min.X {
		x = frame.Min.X
	}
	if x+w > frame.Max.X {
		x = frame.Max.X - w
	}
	if y < frame.Min.Y {
		y = frame.Min.Y
	}
	if y+h > frame.Max.Y {
		y = frame.Max.Y - h
	}
	return image.Rect(x, y, x+w, y+h)
}
