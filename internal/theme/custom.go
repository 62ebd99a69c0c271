package theme

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	tint "github.com/lrstanley/bubbletint/v2"
)

// GetThemesDir returns the path to the custom themes directory
// (~/.config/toast/themes/), creating it if it doesn't exist.
func GetThemesDir() (string, error) {
	keepFile, err := xdg.ConfigFile("toast/themes/.keep")
	if err != nil {
		return "", fmt.Errorf("failed to get themes directory: %w", err)
	}
	return filepath.Dir(keepFile), nil
}

// LoadCustomThemes reads all *.json files from the themes directory and
// registers each as a bubbletint theme. Bad files are skipped with a
// warning so one broken theme doesn't block startup. Returns the IDs of
// the themes that loaded.
func LoadCustomThemes(themesDir string) ([]string, error) {
	entries, err := os.ReadDir(themesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read themes directory: %w", err)
	}

	var loaded []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".json") {
			continue
		}

		t, err := LoadCustomThemeFile(filepath.Join(themesDir, entry.Name()))
		if err != nil {
			log.Printf("Warning: skipping custom theme %s: %v", entry.Name(), err)
			continue
		}

		tint.Register(t)
		loaded = append(loaded, t.ID)
	}

	return loaded, nil
}

// LoadCustomThemeFile reads a JSON file and returns a *tint.Tint.
// The ID falls back to the lowercased filename, the display name falls
// back to the ID, and missing colors are filled with xterm defaults.
func LoadCustomThemeFile(path string) (*tint.Tint, error) {
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var t tint.Tint
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse theme JSON: %w", err)
	}

	if t.ID == "" {
		base := filepath.Base(path)
		t.ID = strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	}
	if t.ID == "" {
		return nil, fmt.Errorf("theme has no ID")
	}
	if t.DisplayName == "" {
		t.DisplayName = t.ID
	}

	fillDefaults(&t)

	return &t, nil
}

// fillDefaults fills nil color pointers with xterm defaults.
func fillDefaults(t *tint.Tint) {
	if t.Fg == nil {
		t.Fg = tint.FromHex("#e5e5e5")
	}
	if t.Bg == nil {
		t.Bg = tint.FromHex("#000000")
	}
	// Cursor defaults to Fg
	if t.Cursor == nil {
		t.Cursor = copyColor(t.Fg)
	}

	normals := []struct {
		dst **tint.Color
		hex string
	}{
		{&t.Black, "#000000"},
		{&t.Red, "#cd0000"},
		{&t.Green, "#00cd00"},
		{&t.Yellow, "#cdcd00"},
		{&t.Blue, "#0000ee"},
		{&t.Purple, "#cd00cd"},
		{&t.Cyan, "#00cdcd"},
		{&t.White, "#e5e5e5"},
	}
	for _, n := range normals {
		if *n.dst == nil {
			*n.dst = tint.FromHex(n.hex)
		}
	}

	// Bright variants default to the normal variants
	brights := []struct {
		dst **tint.Color
		src *tint.Color
	}{
		{&t.BrightBlack, t.Black},
		{&t.BrightRed, t.Red},
		{&t.BrightGreen, t.Green},
		{&t.BrightYellow, t.Yellow},
		{&t.BrightBlue, t.Blue},
		{&t.BrightPurple, t.Purple},
		{&t.BrightCyan, t.Cyan},
		{&t.BrightWhite, t.White},
	}
	for _, b := range brights {
		if *b.dst == nil {
			*b.dst = copyColor(b.src)
		}
	}
}

// copyColor creates a copy of a tint.Color.
func copyColor(c *tint.Color) *tint.Color {
	if c == nil {
		return nil
	}
	dup := *c
	return &dup
}
