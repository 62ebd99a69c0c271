package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gaurav-Gosain/toast"
	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// UserConfig represents the user's custom configuration
type UserConfig struct {
	Appearance AppearanceConfig `toml:"appearance"`
	Toasts     ToastConfig      `toml:"toasts"`
}

// AppearanceConfig holds appearance-related settings
type AppearanceConfig struct {
	Theme        string `toml:"theme"`         // bubbletint theme ID, or empty for standard terminal colors
	ASCIIOnly    bool   `toml:"ascii_only"`    // Use ASCII icons instead of Nerd Font glyphs
	NoAnimations bool   `toml:"no_animations"` // Make toasts appear and disappear instantly
}

// ToastConfig holds notification pool settings
type ToastConfig struct {
	MaxConcurrent    int    `toml:"max_concurrent"`    // Cap on live toasts per anchor
	Overflow         string `toml:"overflow"`          // Policy at the cap: discard-oldest, discard-newest
	DefaultAnchor    string `toml:"default_anchor"`    // Corner new toasts attach to, e.g. bottom-right
	DefaultAnimation string `toml:"default_animation"` // Animation for demo toasts: slide, expand, fade
	FPS              int    `toml:"fps"`               // Refresh rate while toasts are animating
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Appearance: AppearanceConfig{
			Theme:        "",
			ASCIIOnly:    false,
			NoAnimations: false,
		},
		Toasts: ToastConfig{
			MaxConcurrent:    DefaultMaxConcurrent,
			Overflow:         DefaultOverflow,
			DefaultAnchor:    DefaultAnchor,
			DefaultAnimation: DefaultAnimation,
			FPS:              DefaultFPS,
		},
	}
}

// LoadUserConfig loads the configuration from the XDG config directory.
// A default file is created on first run. Missing fields fall back to
// defaults so older config files keep working.
func LoadUserConfig() (*UserConfig, error) {
	configPath, err := xdg.SearchConfigFile("toast/config.toml")
	if err != nil {
		_ = createDefaultConfig()
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &UserConfig{}
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	fillMissingToasts(&config.Toasts)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// fillMissingToasts applies defaults for zero-valued pool settings.
func fillMissingToasts(t *ToastConfig) {
	if t.MaxConcurrent == 0 {
		t.MaxConcurrent = DefaultMaxConcurrent
	}
	if t.Overflow == "" {
		t.Overflow = DefaultOverflow
	}
	if t.DefaultAnchor == "" {
		t.DefaultAnchor = DefaultAnchor
	}
	if t.DefaultAnimation == "" {
		t.DefaultAnimation = DefaultAnimation
	}
	if t.FPS == 0 {
		t.FPS = DefaultFPS
	}
}

func validateConfig(c *UserConfig) error {
	if c.Toasts.MaxConcurrent < MinMaxConcurrent || c.Toasts.MaxConcurrent > MaxMaxConcurrent {
		return fmt.Errorf("toasts.max_concurrent must be between %d and %d, got %d",
			MinMaxConcurrent, MaxMaxConcurrent, c.Toasts.MaxConcurrent)
	}
	if c.Toasts.FPS < MinFPS || c.Toasts.FPS > MaxFPS {
		return fmt.Errorf("toasts.fps must be between %d and %d, got %d",
			MinFPS, MaxFPS, c.Toasts.FPS)
	}
	if _, err := ParseOverflow(c.Toasts.Overflow); err != nil {
		return err
	}
	if _, err := ParseAnchor(c.Toasts.DefaultAnchor); err != nil {
		return err
	}
	if _, err := ParseAnimation(c.Toasts.DefaultAnimation); err != nil {
		return err
	}
	return nil
}

// ParseAnimation maps a config string to an animation kind.
func ParseAnimation(s string) (toast.Animation, error) {
	switch strings.ToLower(s) {
	case "slide":
		return toast.Slide, nil
	case "expand", "expand-collapse":
		return toast.ExpandCollapse, nil
	case "fade":
		return toast.Fade, nil
	default:
		return 0, fmt.Errorf("unknown animation %q (want slide, expand, or fade)", s)
	}
}

// ParseOverflow maps a config string to an overflow policy.
func ParseOverflow(s string) (toast.Overflow, error) {
	switch strings.ToLower(s) {
	case "discard-oldest":
		return toast.DiscardOldest, nil
	case "discard-newest":
		return toast.DiscardNewest, nil
	default:
		return 0, fmt.Errorf("unknown overflow policy %q (want discard-oldest or discard-newest)", s)
	}
}

var anchorNames = map[string]toast.Anchor{
	"top-left":      toast.TopLeft,
	"top-center":    toast.TopCenter,
	"top-right":     toast.TopRight,
	"middle-left":   toast.MiddleLeft,
	"middle-center": toast.MiddleCenter,
	"middle-right":  toast.MiddleRight,
	"bottom-left":   toast.BottomLeft,
	"bottom-center": toast.BottomCenter,
	"bottom-right":  toast.BottomRight,
}

// ParseAnchor maps a config string like "bottom-right" to an anchor.
func ParseAnchor(s string) (toast.Anchor, error) {
	if a, ok := anchorNames[strings.ToLower(s)]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("unknown anchor %q", s)
}

// createDefaultConfig writes a commented default config file to the XDG
// config directory.
func createDefaultConfig() error {
	configPath, err := xdg.ConfigFile("toast/config.toml")
	if err != nil {
		return fmt.Errorf("failed to determine config path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	var content strings.Builder
	content.WriteString("# Toast Demo Configuration\n")
	content.WriteString("# ========================\n")
	content.WriteString("#\n")
	content.WriteString("# appearance.theme: bubbletint theme ID (e.g. dracula, nord).\n")
	content.WriteString("#   Leave empty for standard terminal colors. Drop custom themes\n")
	content.WriteString("#   as JSON files into the themes/ directory next to this file.\n")
	content.WriteString("#\n")
	content.WriteString("# toasts.overflow: discard-oldest or discard-newest.\n")
	content.WriteString("# toasts.default_anchor: top-left, top-center, top-right,\n")
	content.WriteString("#   middle-left, middle-center, middle-right,\n")
	content.WriteString("#   bottom-left, bottom-center, bottom-right.\n")
	content.WriteString("# toasts.default_animation: slide, expand, or fade.\n")
	content.WriteString("\n")
	content.Write(data)

	if err := os.WriteFile(configPath, []byte(content.String()), 0600); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}

	return nil
}

// GetConfigPath returns the path where the config file is expected.
func GetConfigPath() (string, error) {
	configPath, err := xdg.SearchConfigFile("toast/config.toml")
	if err != nil {
		configPath, err = xdg.ConfigFile("toast/config.toml")
		if err != nil {
			return "", fmt.Errorf("failed to determine config path: %w", err)
		}
	}
	return configPath, nil
}
