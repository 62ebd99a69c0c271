package config

import (
	"log"

	"github.com/Gaurav-Gosain/toast/internal/theme"
)

// Overrides contains CLI flag values that can override user config.
// Zero values indicate the flag was not set and should use the user config default.
type Overrides struct {
	// ASCIIOnly uses ASCII characters instead of Nerd Font icons
	ASCIIOnly bool

	// NoAnimations makes toasts appear and disappear instantly
	NoAnimations bool

	// ThemeName is the theme to load
	ThemeName string

	// FPS overrides the refresh rate (0 means use config)
	FPS int

	// MaxConcurrent overrides the per-anchor cap (0 means use config)
	MaxConcurrent int

	// Overflow overrides the eviction policy ("" means use config)
	Overflow string
}

// ApplyOverrides applies CLI flag overrides on top of the user config and
// initializes the theme. If userConfig is nil, only flag values are applied.
func ApplyOverrides(overrides Overrides, userConfig *UserConfig) {
	if overrides.ASCIIOnly || (userConfig != nil && userConfig.Appearance.ASCIIOnly) {
		UseASCIIOnly = true
	}

	if overrides.NoAnimations || (userConfig != nil && userConfig.Appearance.NoAnimations) {
		AnimationsEnabled = false
	}

	if userConfig != nil {
		if overrides.FPS > 0 {
			fps := overrides.FPS
			if fps < MinFPS {
				fps = MinFPS
			} else if fps > MaxFPS {
				fps = MaxFPS
			}
			userConfig.Toasts.FPS = fps
		}

		if overrides.MaxConcurrent > 0 {
			userConfig.Toasts.MaxConcurrent = overrides.MaxConcurrent
		}

		if overrides.Overflow != "" {
			if _, err := ParseOverflow(overrides.Overflow); err != nil {
				log.Printf("Warning: %v", err)
			} else {
				userConfig.Toasts.Overflow = overrides.Overflow
			}
		}
	}

	themeName := overrides.ThemeName
	if themeName == "" && userConfig != nil && userConfig.Appearance.Theme != "" {
		themeName = userConfig.Appearance.Theme
	}
	if themeName != "" {
		if err := theme.Initialize(themeName); err != nil {
			log.Printf("Warning: Failed to load theme '%s': %v", themeName, err)
		}
	}
}
