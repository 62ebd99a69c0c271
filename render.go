package toast

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// ZIndexToasts is the default layer z-index, high enough to sit above
// ordinary application chrome.
const ZIndexToasts = 2000

// Level icons, Nerd Font glyphs with ASCII fallbacks.
const (
	IconInfo  = string(rune(0xf05a)) //
	IconWarn  = string(rune(0xf071)) //
	IconError = string(rune(0xf057)) //
	IconDebug = string(rune(0xf188)) //
	IconTrace = string(rune(0xf05b)) //

	IconInfoASCII  = "[i]"
	IconWarnASCII  = "[!]"
	IconErrorASCII = "[x]"
	IconDebugASCII = "[b]"
	IconTraceASCII = "[t]"
)

// Default level colors. The border takes the level color and the title
// inherits it unless overridden per notification.
var (
	ColorInfo    = lipgloss.Color("#16a34a")
	ColorWarn    = lipgloss.Color("#eab308")
	ColorError   = lipgloss.Color("#dc2626")
	ColorDebug   = lipgloss.Color("#2563eb")
	ColorTrace   = lipgloss.Color("#c026d3")
	ColorNeutral = lipgloss.Color("#4b5563")
)

// LevelColor returns the default accent color for a level.
func LevelColor(l Level) color.Color {
	switch l {
	case LevelInfo:
		return ColorInfo
	case LevelWarn:
		return ColorWarn
	case LevelError:
		return ColorError
	case LevelDebug:
		return ColorDebug
	case LevelTrace:
		return ColorTrace
	default:
		return ColorNeutral
	}
}

// LevelIcon returns the icon glyph for a level.
func LevelIcon(l Level, asciiOnly bool) string {
	if asciiOnly {
		switch l {
		case LevelWarn:
			return IconWarnASCII
		case LevelError:
			return IconErrorASCII
		case LevelDebug:
			return IconDebugASCII
		case LevelTrace:
			return IconTraceASCII
		default:
			return IconInfoASCII
		}
	}
	switch l {
	case LevelWarn:
		return IconWarn
	case LevelError:
		return IconError
	case LevelDebug:
		return IconDebug
	case LevelTrace:
		return IconTrace
	default:
		return IconInfo
	}
}

// Renderer turns a Manager's per-tick snapshot into lipgloss layers ready
// for canvas composition. The zero value renders with defaults; adjust
// fields before the first Layers call.
type Renderer struct {
	// Backdrop is the color notifications fade toward. Defaults to black.
	Backdrop color.Color

	// ASCIIOnly swaps Nerd Font icons for plain ASCII markers.
	ASCIIOnly bool

	// MaxVisible caps drawn notifications per anchor, keeping the newest.
	// Zero draws everything.
	MaxVisible int

	// ZIndex is the layer z-index. Zero means ZIndexToasts.
	ZIndex int
}

// Layers renders every live notification into positioned layers, clipped
// to frame. Read-only with respect to the Manager.
func (r *Renderer) Layers(m *Manager, frame image.Rectangle) []*lipgloss.Layer {
	z := r.ZIndex
	if z == 0 {
		z = ZIndexToasts
	}
	backdrop := r.Backdrop
	if backdrop == nil {
		backdrop = lipgloss.Color("#000000")
	}

	var layers []*lipgloss.Layer
	for _, render := range m.Snapshot(frame) {
		if r.MaxVisible > 0 && r.hiddenByCap(m, render) {
			continue
		}
		if render.Opacity <= 0 || render.Rect.Dx() < 2 || render.Rect.Dy() < 2 {
			continue
		}

		box := r.renderBox(render.Notification, render.Rect.Size(), render.Phase == PhaseEntering, render.Opacity, backdrop)
		content, x, y := clipToFrame(box, render.Rect, frame)
		if content == "" {
			continue
		}

		layers = append(layers, lipgloss.NewLayer(content).
			X(x).Y(y).Z(z).
			ID(fmt.Sprintf("toast-%d", render.ID)))
	}
	return layers
}

// hiddenByCap reports whether the notification falls outside the newest
// MaxVisible of its anchor group.
func (r *Renderer) hiddenByCap(m *Manager, render Render) bool {
	newer := 0
	for _, s := range m.instances {
		if s.n.Anchor == render.Notification.Anchor && s.id > render.ID {
			newer++
		}
	}
	return newer >= r.MaxVisible
}

// renderBox draws the bordered, titled notification body at the given
// size, with every color blended toward the backdrop by the current
// opacity.
func (r *Renderer) renderBox(n *Notification, size image.Point, entering bool, opacity float64, backdrop color.Color) string {
	if size.X < 2 || size.Y < 2 {
		return ""
	}

	borderCol := LevelColor(n.Level)
	if n.BorderStyle != nil {
		if fg := styleForeground(*n.BorderStyle); fg != nil {
			borderCol = fg
		}
	}
	titleCol := borderCol
	if n.TitleStyle != nil {
		if fg := styleForeground(*n.TitleStyle); fg != nil {
			titleCol = fg
		}
	}

	borderCol = BlendColor(borderCol, backdrop, opacity, entering)
	titleCol = BlendColor(titleCol, backdrop, opacity, entering)

	bodyStyle := lipgloss.NewStyle()
	if n.BlockStyle != nil {
		bodyStyle = *n.BlockStyle
	}
	if fg := styleForeground(bodyStyle); fg != nil {
		bodyStyle = bodyStyle.Foreground(BlendColor(fg, backdrop, opacity, entering))
	}

	// Too small for a title row and content, draw a bare border skeleton.
	if size.Y < MinToastHeight || size.X < MinToastWidth {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderCol).
			Width(size.X - 2).
			Height(size.Y - 2).
			Render("")
	}

	body := bodyStyle.
		Border(lipgloss.RoundedBorder()).
		BorderTop(false).
		BorderForeground(borderCol).
		Padding(0, 1).
		Width(size.X - 2).
		Height(size.Y - 2).
		Render(WrapContent(n, size))

	return r.topBorder(n, size.X, borderCol, titleCol) + "\n" + body
}

// topBorder builds the top border line with the icon and title spliced in,
// matching the box width.
func (r *Renderer) topBorder(n *Notification, width int, borderCol, titleCol color.Color) string {
	inner := width - 2
	border := lipgloss.RoundedBorder()
	line := lipgloss.NewStyle().Foreground(borderCol)

	badge := LevelIcon(n.Level, r.ASCIIOnly)
	if n.Title != "" {
		badge += " " + n.Title
	}
	badge = " " + badge + " "
	badge = ansi.Truncate(badge, max(inner-2, 0), "")

	badgeWidth := ansi.StringWidth(badge)
	if badgeWidth == 0 || badgeWidth > inner {
		return line.Render(border.TopLeft + strings.Repeat(border.Top, inner) + border.TopRight)
	}

	left := (inner - badgeWidth) / 2
	right := inner - badgeWidth - left
	return line.Render(border.TopLeft+strings.Repeat(border.Top, left)) +
		lipgloss.NewStyle().Foreground(titleCol).Bold(true).Render(badge) +
		line.Render(strings.Repeat(border.Top, right)+border.TopRight)
}

// styleForeground returns the style's foreground color, or nil when the
// style never set one.
func styleForeground(s lipgloss.Style) color.Color {
	fg := s.GetForeground()
	if fg == nil {
		return nil
	}
	if _, ok := fg.(lipgloss.NoColor); ok {
		return nil
	}
	return fg
}

// clipToFrame trims the rendered content so only the part of rect inside
// frame survives, returning the clipped string and its final top-left
// position. A fully off-screen rect yields an empty string.
func clipToFrame(content string, rect, frame image.Rectangle) (string, int, int) {
	if !rect.Overlaps(frame) {
		return "", 0, 0
	}

	lines := strings.Split(content, "\n")
	x, y := rect.Min.X, rect.Min.Y

	if cut := frame.Min.Y - y; cut > 0 {
		if cut >= len(lines) {
			return "", 0, 0
		}
		lines = lines[cut:]
		y = frame.Min.Y
	}
	if over := y + len(lines) - frame.Max.Y; over > 0 {
		lines = lines[:len(lines)-over]
	}

	cutLeft := frame.Min.X - x
	if cutLeft < 0 {
		cutLeft = 0
	} else {
		x = frame.Min.X
	}
	visible := frame.Max.X - x
	if visible <= 0 || len(lines) == 0 {
		return "", 0, 0
	}

	for i, line := range lines {
		if cutLeft > 0 {
			line = ansi.TruncateLeft(line, cutLeft, "")
		}
		if ansi.StringWidth(line) > visible {
			line = ansi.Truncate(line, visible, "")
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n"), x, y
}
