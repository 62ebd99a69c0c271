package toast

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// GenerateCode returns Go source for the builder chain that reconstructs
// the descriptor: one call per line, fields equal to their defaults
// omitted, free text quoted and escaped. Style overrides are not
// serialized; they carry closures over lipgloss state that has no literal
// form.
func GenerateCode(n Notification) string {
	var b strings.Builder
	fmt.Fprintf(&b, "toast.New(%s).", strconv.Quote(n.Content))

	if n.Title != "" {
		fmt.Fprintf(&b, "\n\tTitle(%s).", strconv.Quote(n.Title))
	}
	if n.Level != LevelInfo {
		fmt.Fprintf(&b, "\n\tLevel(toast.%s).", n.Level)
	}
	if n.Anchor != BottomRight {
		fmt.Fprintf(&b, "\n\tAnchor(toast.%s).", n.Anchor)
	}
	if n.Animation != Slide {
		fmt.Fprintf(&b, "\n\tAnimation(toast.%s).", n.Animation)
	}
	if n.Direction != DirectionAuto {
		fmt.Fprintf(&b, "\n\tDirection(toast.%s).", n.Direction)
	}
	if n.SlideFade {
		b.WriteString("\n\tSlideFade(true).")
	}
	if !n.AutoDismiss.isDefault() {
		if n.AutoDismiss.IsNever() {
			b.WriteString("\n\tAutoDismiss(toast.Never()).")
		} else {
			fmt.Fprintf(&b, "\n\tAutoDismiss(toast.After(%s)).", durationLiteral(n.AutoDismiss.Duration()))
		}
	}
	if n.Timing != (Timing{}) {
		fmt.Fprintf(&b, "\n\tTiming(toast.Timing{%s}).", timingFields(n.Timing))
	}
	if n.Margin != 0 {
		fmt.Fprintf(&b, "\n\tMargin(%d).", n.Margin)
	}
	if n.Width.IsSet() {
		fmt.Fprintf(&b, "\n\tWidth(%s).", constraintLiteral(n.Width))
	}
	if n.Height.IsSet() {
		fmt.Fprintf(&b, "\n\tHeight(%s).", constraintLiteral(n.Height))
	}
	if n.EnterFrom != nil {
		fmt.Fprintf(&b, "\n\tEnterFrom(%d, %d).", n.EnterFrom.X, n.EnterFrom.Y)
	}
	if n.ExitTo != nil {
		fmt.Fprintf(&b, "\n\tExitTo(%d, %d).", n.ExitTo.X, n.ExitTo.Y)
	}

	b.WriteString("\n\tBuild()")
	return b.String()
}

// durationLiteral renders a duration as readable Go source, preferring
// whole units.
func durationLiteral(d time.Duration) string {
	switch {
	case d == 0:
		return "0"
	case d%time.Second == 0:
		return fmt.Sprintf("%d * time.Second", d/time.Second)
	case d%time.Millisecond == 0:
		return fmt.Sprintf("%d * time.Millisecond", d/time.Millisecond)
	default:
		return fmt.Sprintf("time.Duration(%d)", int64(d))
	}
}

func timingFields(t Timing) string {
	var parts []string
	if t.Entry != 0 {
		parts = append(parts, "Entry: "+durationLiteral(t.Entry))
	}
	if t.Dwell != 0 {
		parts = append(parts, "Dwell: "+durationLiteral(t.Dwell))
	}
	if t.Exit != 0 {
		parts = append(parts, "Exit: "+durationLiteral(t.Exit))
	}
	return strings.Join(parts, ", ")
}

func constraintLiteral(c SizeConstraint) string {
	if c.cells != 0 {
		return fmt.Sprintf("toast.Absolute(%d)", c.cells)
	}
	return fmt.Sprintf("toast.Percentage(%v)", c.fraction)
}
