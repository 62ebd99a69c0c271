package toast

import (
	"fmt"
	"image"
	"time"

	"charm.land/lipgloss/v2"
)

// Notification is an immutable description of a single toast: its text,
// placement, animation and timing. Build one with New(...).Build() and hand
// it to a Manager; the engine never mutates it and shares it freely with
// tooling such as GenerateCode.
type Notification struct {
	// Content is the body text. At most MaxContentLength characters.
	Content string

	// Title is an optional heading rendered into the top border.
	Title string

	// Level selects the default styling and icon.
	Level Level

	// Anchor is the frame position this notification stacks against.
	Anchor Anchor

	// Animation selects the entry/exit animation family.
	Animation Animation

	// Direction is the slide direction. DirectionAuto derives it from the
	// anchor. Ignored unless Animation is Slide.
	Direction SlideDirection

	// SlideFade additionally interpolates opacity while sliding.
	SlideFade bool

	// AutoDismiss controls whether and when the notification exits on its
	// own.
	AutoDismiss AutoDismiss

	// Timing fixes individual phase durations. Zero fields are resolved
	// automatically.
	Timing Timing

	// Margin is the gap in cells kept between the notification and the
	// frame edge it anchors to.
	Margin int

	// Width and Height constrain the rendered size. Unset dimensions use
	// the intrinsic content size.
	Width  SizeConstraint
	Height SizeConstraint

	// EnterFrom and ExitTo override the anchor-derived off-screen start and
	// end positions of the slide path.
	EnterFrom *image.Point
	ExitTo    *image.Point

	// BlockStyle, BorderStyle and TitleStyle override the level defaults.
	BlockStyle  *lipgloss.Style
	BorderStyle *lipgloss.Style
	TitleStyle  *lipgloss.Style
}

const (
	// autoDurationBase is the floor for auto-calculated entry and exit
	// durations.
	autoDurationBase = 300 * time.Millisecond
	// autoDurationPerRune lengthens entry and exit per character of
	// content so larger toasts stay legible while moving.
	autoDurationPerRune = time.Millisecond
	// autoDurationMax caps auto-calculated entry and exit durations.
	autoDurationMax = time.Second
)

// EntryDuration returns the fixed or auto-calculated entry phase length.
func (n *Notification) EntryDuration() time.Duration {
	if n.Timing.Entry > 0 {
		return n.Timing.Entry
	}
	return n.autoDuration()
}

// DwellDuration returns the resting phase length. The AutoDismiss policy
// still decides whether the phase ends at all.
func (n *Notification) DwellDuration() time.Duration {
	if n.Timing.Dwell > 0 {
		return n.Timing.Dwell
	}
	return n.AutoDismiss.Duration()
}

// ExitDuration returns the fixed or auto-calculated exit phase length.
func (n *Notification) ExitDuration() time.Duration {
	if n.Timing.Exit > 0 {
		return n.Timing.Exit
	}
	return n.autoDuration()
}

func (n *Notification) autoDuration() time.Duration {
	d := autoDurationBase + time.Duration(len([]rune(n.Content)))*autoDurationPerRune
	if d > autoDurationMax {
		return autoDurationMax
	}
	return d
}

// Validate checks the descriptor for internal consistency. Build calls it;
// Manager.Add calls it again as the final gate.
func (n *Notification) Validate() error {
	if got := len([]rune(n.Content)); got > MaxContentLength {
		return &ContentTooLongError{Limit: MaxContentLength, Actual: got}
	}
	if n.Margin < 0 {
		return &InvalidConfigurationError{Reason: fmt.Sprintf("margin %d is negative", n.Margin)}
	}
	if n.Anchor < TopLeft || n.Anchor > BottomRight {
		return &InvalidConfigurationError{Reason: fmt.Sprintf("unknown anchor %d", int(n.Anchor))}
	}
	if n.Direction < DirectionAuto || n.Direction > FromBottomRight {
		return &InvalidConfigurationError{Reason: fmt.Sprintf("unknown slide direction %d", int(n.Direction))}
	}
	if n.Timing.Entry < 0 || n.Timing.Dwell < 0 || n.Timing.Exit < 0 {
		return &InvalidConfigurationError{Reason: "negative phase duration"}
	}
	if err := validateConstraint("width", n.Width); err != nil {
		return err
	}
	if err := validateConstraint("height", n.Height); err != nil {
		return err
	}
	if n.EnterFrom != nil && (n.EnterFrom.X < -1000 || n.EnterFrom.Y < -1000) {
		return &InvalidConfigurationError{Reason: "entry position is out of range"}
	}
	if n.ExitTo != nil && (n.ExitTo.X < -1000 || n.ExitTo.Y < -1000) {
		return &InvalidConfigurationError{Reason: "exit position is out of range"}
	}
	return nil
}

func validateConstraint(dim string, c SizeConstraint) error {
	if c.cells < 0 {
		return &InvalidConfigurationError{Reason: fmt.Sprintf("%s of %d cells is negative", dim, c.cells)}
	}
	if c.fraction < 0 || c.fraction > 1 {
		return &InvalidConfigurationError{Reason: fmt.Sprintf("%s fraction %v is outside (0, 1]", dim, c.fraction)}
	}
	return nil
}

// Builder assembles a Notification. Every setter returns the builder so
// calls chain; Build validates and returns the finished descriptor.
type Builder struct {
	n Notification
}

// New starts a builder for a notification with the given content and all
// defaults: bottom-right anchor, slide animation, info level, auto-dismiss
// after DefaultDismissAfter.
func New(content string) *Builder {
	return &Builder{n: Notification{
		Content: content,
		Anchor:  BottomRight,
	}}
}

// Title sets the heading rendered into the top border.
func (b *Builder) Title(title string) *Builder {
	b.n.Title = title
	return b
}

// Level sets the severity, which selects default styling and icon.
func (b *Builder) Level(l Level) *Builder {
	b.n.Level = l
	return b
}

// Anchor sets the frame position the notification stacks against.
func (b *Builder) Anchor(a Anchor) *Builder {
	b.n.Anchor = a
	return b
}

// Animation selects the entry/exit animation family.
func (b *Builder) Animation(a Animation) *Builder {
	b.n.Animation = a
	return b
}

// Direction sets an explicit slide direction.
func (b *Builder) Direction(d SlideDirection) *Builder {
	b.n.Direction = d
	return b
}

// SlideFade interpolates opacity while sliding.
func (b *Builder) SlideFade(on bool) *Builder {
	b.n.SlideFade = on
	return b
}

// AutoDismiss sets the dismissal policy.
func (b *Builder) AutoDismiss(a AutoDismiss) *Builder {
	b.n.AutoDismiss = a
	return b
}

// Timing fixes individual phase durations.
func (b *Builder) Timing(t Timing) *Builder {
	b.n.Timing = t
	return b
}

// Margin sets the gap kept between the notification and the frame edge.
func (b *Builder) Margin(cells int) *Builder {
	b.n.Margin = cells
	return b
}

// Width constrains the rendered width.
func (b *Builder) Width(c SizeConstraint) *Builder {
	b.n.Width = c
	return b
}

// Height constrains the rendered height.
func (b *Builder) Height(c SizeConstraint) *Builder {
	b.n.Height = c
	return b
}

// EnterFrom overrides the off-screen position a slide entry starts from.
func (b *Builder) EnterFrom(x, y int) *Builder {
	b.n.EnterFrom = &image.Point{X: x, Y: y}
	return b
}

// ExitTo overrides the off-screen position a slide exit ends at.
func (b *Builder) ExitTo(x, y int) *Builder {
	b.n.ExitTo = &image.Point{X: x, Y: y}
	return b
}

// BlockStyle overrides the body style.
func (b *Builder) BlockStyle(s lipgloss.Style) *Builder {
	b.n.BlockStyle = &s
	return b
}

// BorderStyle overrides the border style.
func (b *Builder) BorderStyle(s lipgloss.Style) *Builder {
	b.n.BorderStyle = &s
	return b
}

// TitleStyle overrides the title style.
func (b *Builder) TitleStyle(s lipgloss.Style) *Builder {
	b.n.TitleStyle = &s
	return b
}

// Build validates the configuration and returns the finished descriptor.
func (b *Builder) Build() (Notification, error) {
	if err := b.n.Validate(); err != nil {
		return Notification{}, err
	}
	return b.n, nil
}
