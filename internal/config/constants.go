// Package config provides configuration constants and user settings for the
// toast demo application.
package config

import "time"

// =============================================================================
// Refresh Rates
// =============================================================================

const (
	// DefaultFPS is the refresh rate of the demo while toasts are animating
	DefaultFPS = 30

	// IdleFPS is the refresh rate when no toast is on screen
	IdleFPS = 5

	// MinFPS and MaxFPS bound the configurable refresh rate
	MinFPS = 1
	MaxFPS = 120
)

// =============================================================================
// Toast Defaults
// =============================================================================

const (
	// DefaultMaxConcurrent is the per-anchor cap on live toasts
	DefaultMaxConcurrent = 5

	// MinMaxConcurrent and MaxMaxConcurrent bound the configurable cap
	MinMaxConcurrent = 1
	MaxMaxConcurrent = 50

	// DefaultOverflow names the eviction policy applied at the cap
	DefaultOverflow = "discard-oldest"

	// DefaultAnchor is the screen corner new demo toasts attach to
	DefaultAnchor = "bottom-right"

	// DefaultAnimation is the animation new demo toasts use
	DefaultAnimation = "slide"
)

// =============================================================================
// Runtime Settings
// =============================================================================

// These are set once at startup from the config file and CLI flags.
var (
	// UseASCIIOnly replaces Nerd Font icons with ASCII fallbacks
	UseASCIIOnly bool

	// AnimationsEnabled controls whether toasts animate in and out
	AnimationsEnabled = true
)

// =============================================================================
// Status Bar
// =============================================================================

const (
	// StatusBarHeight is the height reserved at the bottom of the demo
	StatusBarHeight = 1

	// SystemStatsInterval is the interval between CPU and memory samples
	SystemStatsInterval = 2 * time.Second
)

// =============================================================================
// Snippet Export
// =============================================================================

const (
	// SnippetDirName is the directory under the XDG state home that
	// exported builder snippets are written to
	SnippetDirName = "toast/snippets"
)
