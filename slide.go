package toast

import "image"

// offscreenMargin keeps a sliding notification's start and end positions
// one cell beyond the frame edge so it is fully hidden at either end of the
// path.
const offscreenMargin = 1

// ResolveDirection maps DirectionAuto to the direction matching the
// anchor's nearest frame edges. MiddleCenter has no nearest edge and slides
// from the left. Explicit directions pass through unchanged.
func ResolveDirection(a Anchor, d SlideDirection) SlideDirection {
	if d != DirectionAuto {
		return d
	}
	switch a {
	case TopLeft:
		return FromTopLeft
	case TopCenter:
		return FromTop
	case TopRight:
		return FromTopRight
	case MiddleLeft:
		return FromLeft
	case MiddleRight:
		return FromRight
	case BottomLeft:
		return FromBottomLeft
	case BottomCenter:
		return FromBottom
	case BottomRight:
		return FromBottomRight
	default:
		return FromLeft
	}
}

// offscreenPos returns the top-left corner of rest translated fully outside
// frame along direction d. Axes the direction does not mention keep their
// resting coordinate.
func offscreenPos(frame, rest image.Rectangle, d SlideDirection) image.Point {
	p := rest.Min

	switch d {
	case FromLeft, FromTopLeft, FromBottomLeft:
		p.X = frame.Min.X - rest.Dx() - offscreenMargin
	case FromRight, FromTopRight, FromBottomRight:
		p.X = frame.Max.X + offscreenMargin
	}

	switch d {
	case FromTop, FromTopLeft, FromTopRight:
		p.Y = frame.Min.Y - rest.Dy() - offscreenMargin
	case FromBottom, FromBottomLeft, FromBottomRight:
		p.Y = frame.Max.Y + offscreenMargin
	}

	return p
}

// slideTransform interpolates the notification's position along the slide
// path for the current phase. Opacity tracks the same progress when the
// descriptor enables SlideFade and is fully opaque otherwise.
func slideTransform(s *instance, rest, frame image.Rectangle) (image.Rectangle, float64) {
	d := ResolveDirection(s.n.Anchor, s.n.Direction)
	p := s.progress()

	var from, to image.Point
	opacity := 1.0

	switch s.phase {
	case PhaseEntering:
		from = offscreenPos(frame, rest, d)
		if s.n.EnterFrom != nil {
			from = *s.n.EnterFrom
		}
		to = rest.Min
		if s.n.SlideFade {
			opacity = p
		}
	case PhaseExiting:
		from = rest.Min
		to = offscreenPos(frame, rest, d)
		if s.n.ExitTo != nil {
			to = *s.n.ExitTo
		}
		if s.n.SlideFade {
			opacity = 1 - p
		}
	default:
		return rest, 1
	}

	x := lerpInt(from.X, to.X, p)
	y := lerpInt(from.Y, to.Y, p)
	return image.Rect(x, y, x+rest.Dx(), y+rest.Dy()), opacity
}
