package toast

import "image"

// expandTransform grows the notification from a zero-size rectangle at the
// resting rectangle's center to full size on entry and shrinks it back on
// exit. Opacity stays at full throughout; a half-grown toast is already
// legible and fading it as well reads as flicker.
func expandTransform(s *instance, rest image.Rectangle) (image.Rectangle, float64) {
	var p float64
	switch s.phase {
	case PhaseEntering:
		p = s.progress()
	case PhaseExiting:
		p = 1 - s.progress()
	default:
		return rest, 1
	}

	w := lerpInt(0, rest.Dx(), p)
	h := lerpInt(0, rest.Dy(), p)

	cx := rest.Min.X + rest.Dx()/2
	cy := rest.Min.Y + rest.Dy()/2
	x := cx - w/2
	y := cy - h/2
	return image.Rect(x, y, x+w, y+h), 1
}
