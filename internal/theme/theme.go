// Package theme provides color themes for the toast demo, backed by
// bubbletint with support for user-supplied JSON themes.
package theme

import (
	"image/color"
	"log"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/toast"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// Call this once at application startup.
// If themeName is empty, theming will be disabled and standard terminal colors will be used.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	// Load custom themes from the user's themes directory
	if themesDir, err := GetThemesDir(); err == nil {
		if _, err := LoadCustomThemes(themesDir); err != nil {
			log.Printf("Warning: error loading custom themes: %v", err)
		}
	}

	if ok := tint.SetTintID(themeName); !ok {
		tint.SetTintID("default")
	}

	return nil
}

// IsEnabled returns true if theming is enabled
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme.
// Returns nil if theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// Background returns the backdrop color toasts are blended against.
func Background() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#000000")
	}
	return t.Bg
}

// Foreground returns the color for regular demo text.
func Foreground() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e5e5e5")
	}
	return t.Fg
}

// Accent returns the highlight color for key hints and the active scenario.
func Accent() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00cdcd")
	}
	return t.BrightCyan
}

// StatusBarBg returns the background color for the status bar.
func StatusBarBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#1a1a2e")
	}
	return t.Black
}

// StatusBarFg returns the foreground color for the status bar.
func StatusBarFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#a0a0b0")
	}
	return t.White
}

// LevelColor returns the border color for a severity level, themed when
// a tint is active and falling back to the library palette otherwise.
func LevelColor(l toast.Level) color.Color {
	t := Current()
	if t == nil {
		return toast.LevelColor(l)
	}
	switch l {
	case toast.LevelInfo:
		return t.Green
	case toast.LevelWarn:
		return t.Yellow
	case toast.LevelError:
		return t.Red
	case toast.LevelDebug:
		return t.Blue
	case toast.LevelTrace:
		return t.Purple
	default:
		return t.BrightBlack
	}
}
