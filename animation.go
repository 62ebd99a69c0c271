package toast

import "image"

// animate maps an instance's current phase and progress onto its animated
// rectangle and opacity, relative to the resting rectangle the stack layout
// assigned it. Pure: it reads the instance and never writes it.
func animate(s *instance, rest, frame image.Rectangle) (image.Rectangle, float64) {
	switch s.n.Animation {
	case ExpandCollapse:
		return expandTransform(s, rest)
	case Fade:
		return fadeTransform(s, rest)
	default:
		return slideTransform(s, rest, frame)
	}
}
