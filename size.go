package toast

import (
	"image"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mitchellh/go-wordwrap"
)

const (
	// MinToastWidth and MinToastHeight are the smallest rectangle a
	// notification occupies, enough for a border around a single cell.
	MinToastWidth  = 3
	MinToastHeight = 3

	// MaxToastWidth caps the intrinsic width of an unconstrained
	// notification so long content wraps instead of spanning the frame.
	MaxToastWidth = 60

	// frameChrome is the border plus one cell of horizontal padding on
	// each side.
	frameChrome = 4
)

// MeasureSize returns the rectangle size the notification occupies within
// frame: intrinsic content size wrapped against the width budget, widened
// for the title, overridden by explicit constraints and clamped to the
// frame.
func MeasureSize(n *Notification, frame image.Rectangle) image.Point {
	maxWidth := MaxToastWidth
	if w := n.Width.Resolve(frame.Dx()); w > 0 {
		maxWidth = w
	}
	if maxWidth > frame.Dx() {
		maxWidth = frame.Dx()
	}

	innerBudget := maxWidth - frameChrome
	if innerBudget < 1 {
		innerBudget = 1
	}

	inner := widestLine(n.Content)
	if t := ansi.StringWidth(n.Title); t+2 > inner {
		// Title renders inside the top border with a cell either side.
		inner = t + 2
	}
	if inner > innerBudget {
		inner = innerBudget
	}
	if inner < 1 {
		inner = 1
	}

	wrapped := wordwrap.WrapString(n.Content, uint(inner)) //nolint:gosec
	rows := strings.Count(wrapped, "\n") + 1

	width := inner + frameChrome
	if w := n.Width.Resolve(frame.Dx()); w > 0 {
		width = w
	}
	height := rows + 2
	if h := n.Height.Resolve(frame.Dy()); h > 0 {
		height = h
	}

	if width < MinToastWidth {
		width = MinToastWidth
	}
	if height < MinToastHeight {
		height = MinToastHeight
	}
	if width > frame.Dx() {
		width = frame.Dx()
	}
	if height > frame.Dy() {
		height = frame.Dy()
	}
	return image.Point{X: width, Y: height}
}

// WrapContent returns the content word-wrapped to the inner width implied
// by the given rectangle size.
func WrapContent(n *Notification, size image.Point) string {
	inner := size.X - frameChrome
	if inner < 1 {
		inner = 1
	}
	return wordwrap.WrapString(n.Content, uint(inner)) //nolint:gosec
}

func widestLine(s string) int {
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		if w := ansi.StringWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}
