package toast

import (
	"fmt"
	"time"
)

// Anchor is one of nine fixed reference positions on the frame where a
// notification stack originates.
type Anchor int

const (
	TopLeft Anchor = iota
	TopCenter
	TopRight
	MiddleLeft
	MiddleCenter
	MiddleRight
	BottomLeft
	BottomCenter
	BottomRight
)

// String returns the anchor name as used by the code generator.
func (a Anchor) String() string {
	switch a {
	case TopLeft:
		return "TopLeft"
	case TopCenter:
		return "TopCenter"
	case TopRight:
		return "TopRight"
	case MiddleLeft:
		return "MiddleLeft"
	case MiddleCenter:
		return "MiddleCenter"
	case MiddleRight:
		return "MiddleRight"
	case BottomLeft:
		return "BottomLeft"
	case BottomCenter:
		return "BottomCenter"
	case BottomRight:
		return "BottomRight"
	default:
		return fmt.Sprintf("Anchor(%d)", int(a))
	}
}

// isTop reports whether the anchor sits on the top row of the frame.
func (a Anchor) isTop() bool {
	return a == TopLeft || a == TopCenter || a == TopRight
}

// isBottom reports whether the anchor sits on the bottom row of the frame.
func (a Anchor) isBottom() bool {
	return a == BottomLeft || a == BottomCenter || a == BottomRight
}

// isLeft reports whether the anchor sits on the left column of the frame.
func (a Anchor) isLeft() bool {
	return a == TopLeft || a == MiddleLeft || a == BottomLeft
}

// isRight reports whether the anchor sits on the right column of the frame.
func (a Anchor) isRight() bool {
	return a == TopRight || a == MiddleRight || a == BottomRight
}

// Animation selects how a notification enters and leaves the screen.
type Animation int

const (
	// Slide moves the notification in from beyond a frame edge and back out.
	Slide Animation = iota
	// ExpandCollapse grows the notification from its center point and
	// shrinks it back.
	ExpandCollapse
	// Fade keeps the notification in place and interpolates opacity only.
	Fade
)

// String returns the animation name as used by the code generator.
func (a Animation) String() string {
	switch a {
	case Slide:
		return "Slide"
	case ExpandCollapse:
		return "ExpandCollapse"
	case Fade:
		return "Fade"
	default:
		return fmt.Sprintf("Animation(%d)", int(a))
	}
}

// SlideDirection is the edge a sliding notification travels from on entry
// and toward on exit. DirectionAuto derives the direction from the anchor.
type SlideDirection int

const (
	DirectionAuto SlideDirection = iota
	FromLeft
	FromRight
	FromTop
	FromBottom
	FromTopLeft
	FromTopRight
	FromBottomLeft
	FromBottomRight
)

// String returns the direction name as used by the code generator.
func (d SlideDirection) String() string {
	switch d {
	case DirectionAuto:
		return "DirectionAuto"
	case FromLeft:
		return "FromLeft"
	case FromRight:
		return "FromRight"
	case FromTop:
		return "FromTop"
	case FromBottom:
		return "FromBottom"
	case FromTopLeft:
		return "FromTopLeft"
	case FromTopRight:
		return "FromTopRight"
	case FromBottomLeft:
		return "FromBottomLeft"
	case FromBottomRight:
		return "FromBottomRight"
	default:
		return fmt.Sprintf("SlideDirection(%d)", int(d))
	}
}

// Level is the severity of a notification. It drives default styling and
// icons only; the engine itself never branches on it.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
	LevelDebug
	LevelTrace
)

// String returns the level name as used by the code generator.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "LevelInfo"
	case LevelWarn:
		return "LevelWarn"
	case LevelError:
		return "LevelError"
	case LevelDebug:
		return "LevelDebug"
	case LevelTrace:
		return "LevelTrace"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Overflow is the policy applied when admitting a notification would exceed
// the concurrency cap of its anchor group.
type Overflow int

const (
	// DiscardOldest evicts the oldest entering or resting notification in
	// the same anchor group, animating it out, and admits the new one.
	DiscardOldest Overflow = iota
	// DiscardNewest rejects the incoming notification with a CapacityError.
	DiscardNewest
)

// String returns the overflow policy name.
func (o Overflow) String() string {
	switch o {
	case DiscardOldest:
		return "DiscardOldest"
	case DiscardNewest:
		return "DiscardNewest"
	default:
		return fmt.Sprintf("Overflow(%d)", int(o))
	}
}

// Phase is a lifecycle state of a live notification.
type Phase int

const (
	// PhaseEntering runs the entry animation.
	PhaseEntering Phase = iota
	// PhaseResting holds the notification at its resting rectangle.
	PhaseResting
	// PhaseExiting runs the exit animation.
	PhaseExiting
	// PhaseRemoved is terminal. The pool prunes a notification the moment
	// it reaches this phase, so it is never observable through the API.
	PhaseRemoved
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "Entering"
	case PhaseResting:
		return "Resting"
	case PhaseExiting:
		return "Exiting"
	case PhaseRemoved:
		return "Removed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// AutoDismiss controls whether a notification leaves on its own. The zero
// value means "dismiss after DefaultDismissAfter"; use Never() or After(d)
// for anything else.
type AutoDismiss struct {
	never bool
	after time.Duration
}

// DefaultDismissAfter is the dwell duration used when a notification does
// not configure auto-dismiss explicitly.
const DefaultDismissAfter = 4 * time.Second

// Never returns an AutoDismiss that keeps the notification resting until it
// is removed or evicted.
func Never() AutoDismiss {
	return AutoDismiss{never: true}
}

// After returns an AutoDismiss that starts the exit animation once the
// notification has rested for d.
func After(d time.Duration) AutoDismiss {
	return AutoDismiss{after: d}
}

// IsNever reports whether the notification never dismisses on its own.
func (a AutoDismiss) IsNever() bool { return a.never }

// Duration returns the configured dwell duration, falling back to
// DefaultDismissAfter when unset. Meaningless when IsNever is true.
func (a AutoDismiss) Duration() time.Duration {
	if a.after <= 0 {
		return DefaultDismissAfter
	}
	return a.after
}

// isDefault reports whether this is the zero-value policy, used by the code
// generator to omit the call.
func (a AutoDismiss) isDefault() bool {
	return !a.never && a.after == 0
}

// Timing fixes the length of individual phases. Zero fields are resolved
// automatically: entry and exit scale with content length, dwell comes from
// the AutoDismiss policy.
type Timing struct {
	Entry time.Duration
	Dwell time.Duration
	Exit  time.Duration
}

// SizeConstraint pins one dimension of a notification either to an absolute
// number of cells or to a fraction of the frame. The zero value leaves the
// dimension to the intrinsic content size.
type SizeConstraint struct {
	cells    int
	fraction float64
}

// Absolute returns a constraint of exactly n cells.
func Absolute(n int) SizeConstraint {
	return SizeConstraint{cells: n}
}

// Percentage returns a constraint of fraction f (0 < f <= 1) of the frame
// dimension.
func Percentage(f float64) SizeConstraint {
	return SizeConstraint{fraction: f}
}

// IsSet reports whether the constraint pins the dimension.
func (c SizeConstraint) IsSet() bool {
	return c.cells != 0 || c.fraction != 0
}

// Resolve returns the constrained dimension given the frame's extent in the
// same axis, or 0 when the constraint is unset.
func (c SizeConstraint) Resolve(frameExtent int) int {
	switch {
	case c.cells != 0:
		return c.cells
	case c.fraction != 0:
		return int(float64(frameExtent) * c.fraction)
	default:
		return 0
	}
}
