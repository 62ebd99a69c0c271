package demo

import (
	"strings"
	"time"

	"github.com/Gaurav-Gosain/toast"
	"github.com/Gaurav-Gosain/toast/internal/config"
)

// instantTiming collapses the animated phases when animations are off.
var instantTiming = toast.Timing{Entry: time.Millisecond, Exit: time.Millisecond}

// prepare applies the demo-wide animation switch to a builder.
func (m *Model) prepare(b *toast.Builder) *toast.Builder {
	if m.opts.NoAnimations || !config.AnimationsEnabled {
		b.Timing(instantTiming)
	}
	return b
}

// scenario maps a number key to a batch of builders and a display name.
// Unknown keys return nil.
func (m *Model) scenario(key string) ([]*toast.Builder, string) {
	anchor := m.opts.DefaultAnchor

	switch key {
	case "1":
		return []*toast.Builder{
			m.prepare(toast.New("File saved").
				Anchor(anchor).
				Animation(m.opts.DefaultAnimation)),
		}, "plain info"

	case "2":
		return []*toast.Builder{
			m.prepare(toast.New("Disk usage above 90%").
				Title("monitor").
				Level(toast.LevelWarn).
				Anchor(toast.TopRight).
				SlideFade(true)),
		}, "warn slide+fade"

	case "3":
		return []*toast.Builder{
			m.prepare(toast.New("Deploy failed: connection refused").
				Title("CI").
				Level(toast.LevelError).
				Anchor(toast.TopCenter).
				Animation(toast.ExpandCollapse).
				AutoDismiss(toast.Never())),
		}, "sticky error expand"

	case "4":
		return []*toast.Builder{
			m.prepare(toast.New("cache warmed in 312ms").
				Level(toast.LevelDebug).
				Anchor(toast.BottomLeft).
				Animation(toast.Fade)),
		}, "debug fade"

	case "5":
		return []*toast.Builder{
			m.prepare(toast.New("GET /api/v1/items 200").
				Title("trace").
				Level(toast.LevelTrace).
				Anchor(toast.MiddleRight).
				Direction(toast.FromRight)),
		}, "trace from the right"

	case "6":
		return []*toast.Builder{
			m.prepare(toast.New(strings.Repeat("The quick brown fox jumps over the lazy dog. ", 4)).
				Title("wrapped").
				Anchor(toast.BottomCenter).
				AutoDismiss(toast.After(6 * time.Second))),
		}, "long wrapped content"

	case "7":
		burst := make([]*toast.Builder, 0, 6)
		for i := 0; i < 6; i++ {
			burst = append(burst, m.prepare(
				toast.New("burst message "+string(rune('A'+i))).
					Anchor(anchor).
					Animation(m.opts.DefaultAnimation)))
		}
		return burst, "overflow burst"

	case "8":
		return []*toast.Builder{
			m.prepare(toast.New("Recording in progress").
				Title("rec").
				Level(toast.LevelError).
				Anchor(toast.MiddleCenter).
				Animation(toast.ExpandCollapse).
				AutoDismiss(toast.Never())),
		}, "center stage"

	case "9":
		return []*toast.Builder{
			m.prepare(toast.New("Custom flight path").
				Anchor(toast.TopLeft).
				EnterFrom(0, -5).
				ExitTo(-30, 0).
				Width(toast.Absolute(24))),
		}, "custom enter and exit"

	case "0":
		levels := []struct {
			level  toast.Level
			anchor toast.Anchor
			text   string
		}{
			{toast.LevelInfo, toast.TopLeft, "info"},
			{toast.LevelWarn, toast.TopRight, "warn"},
			{toast.LevelError, toast.BottomLeft, "error"},
			{toast.LevelDebug, toast.BottomRight, "debug"},
			{toast.LevelTrace, toast.MiddleCenter, "trace"},
		}
		all := make([]*toast.Builder, 0, len(levels))
		for _, l := range levels {
			all = append(all, m.prepare(
				toast.New("level showcase: "+l.text).
					Level(l.level).
					Anchor(l.anchor)))
		}
		return all, "every level"
	}

	return nil, ""
}
