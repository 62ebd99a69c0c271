package toast

import (
	"image"
	"image/color"
)

// fadeTransform keeps the notification at its resting rectangle and runs
// opacity alone from 0 to 1 on entry and back down on exit.
func fadeTransform(s *instance, rest image.Rectangle) (image.Rectangle, float64) {
	switch s.phase {
	case PhaseEntering:
		return rest, s.progress()
	case PhaseExiting:
		return rest, 1 - s.progress()
	default:
		return rest, 1
	}
}

// BlendColor mixes c toward the backdrop by the given opacity: 1 returns c
// unchanged, 0 returns the backdrop. Entering notifications brighten with
// an ease-out curve and exiting ones dim with ease-in, so the visible part
// of the fade happens while the toast is mostly on screen.
func BlendColor(c, backdrop color.Color, opacity float64, entering bool) color.Color {
	if opacity >= 1 {
		return c
	}
	if opacity <= 0 {
		return backdrop
	}

	t := easeInQuad(opacity)
	if entering {
		t = easeOutQuad(opacity)
	}

	cr, cg, cb, _ := c.RGBA()
	br, bg, bb, _ := backdrop.RGBA()
	return color.RGBA{
		R: blend8(br, cr, t),
		G: blend8(bg, cg, t),
		B: blend8(bb, cb, t),
		A: 0xff,
	}
}

func blend8(from, to uint32, t float64) uint8 {
	v := lerp(float64(from>>8), float64(to>>8), t)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v + 0.5)
}
