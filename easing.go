package toast

// lerp linearly interpolates between a and b by t in [0, 1].
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// lerpInt interpolates integer screen coordinates, rounding half away from
// the start so symmetric entry and exit paths land on the same cells.
func lerpInt(a, b int, t float64) int {
	v := lerp(float64(a), float64(b), t)
	if v >= 0 {
		return int(v + 0.5)
	}
	return int(v - 0.5)
}

// easeInQuad accelerates from zero velocity.
func easeInQuad(t float64) float64 {
	return t * t
}

// easeOutQuad decelerates to zero velocity.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// easeInOutQuad accelerates through the first half and decelerates through
// the second. Satisfies ease(0)=0 and ease(1)=1 and is monotonic.
func easeInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// clamp01 bounds t to [0, 1].
func clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}
