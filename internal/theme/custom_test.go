package theme

import (
	"os"
	"path/filepath"
	"testing"

	tint "github.com/lrstanley/bubbletint/v2"
)

func writeTheme(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadCustomThemeFile loads a theme with explicit metadata.
func TestLoadCustomThemeFile(t *testing.T) {
	path := writeTheme(t, "mocha.json", `{
		"id": "mocha",
		"display_name": "Mocha",
		"dark": true,
		"fg": "#d4d4d4",
		"bg": "#1e1e2e",
		"red": "#f38ba8",
		"green": "#a6e3a1"
	}`)

	theme, err := LoadCustomThemeFile(path)
	if err != nil {
		t.Fatalf("LoadCustomThemeFile failed: %v", err)
	}
	if theme.ID != "mocha" || theme.DisplayName != "Mocha" || !theme.Dark {
		t.Errorf("unexpected metadata: %+v", theme)
	}
	if theme.Red == nil || theme.Green == nil {
		t.Error("expected declared colors to load")
	}
}

// TestLoadCustomThemeFile_FillsDefaults populates every color from a
// minimal fg/bg theme.
func TestLoadCustomThemeFile_FillsDefaults(t *testing.T) {
	path := writeTheme(t, "minimal.json", `{"fg": "#c0c0c0", "bg": "#1a1a1a"}`)

	theme, err := LoadCustomThemeFile(path)
	if err != nil {
		t.Fatalf("LoadCustomThemeFile failed: %v", err)
	}

	colors := []*tint.Color{
		theme.Cursor, theme.Black, theme.Red, theme.Green, theme.Yellow,
		theme.Blue, theme.Purple, theme.Cyan, theme.White,
		theme.BrightBlack, theme.BrightRed, theme.BrightGreen, theme.BrightYellow,
		theme.BrightBlue, theme.BrightPurple, theme.BrightCyan, theme.BrightWhite,
	}
	for i, c := range colors {
		if c == nil {
			t.Errorf("color at index %d is nil", i)
		}
	}

	// Cursor defaults to Fg, bright variants to the normal variants
	if theme.Cursor.R != theme.Fg.R || theme.Cursor.B != theme.Fg.B {
		t.Error("Cursor should default to Fg color")
	}
	if theme.BrightRed.R != theme.Red.R {
		t.Error("BrightRed should default to Red")
	}
}

// TestLoadCustomThemeFile_IDFromFilename derives the ID from the filename.
func TestLoadCustomThemeFile_IDFromFilename(t *testing.T) {
	path := writeTheme(t, "My-Cool-Theme.json", `{"fg": "#ffffff", "bg": "#000000"}`)

	theme, err := LoadCustomThemeFile(path)
	if err != nil {
		t.Fatalf("LoadCustomThemeFile failed: %v", err)
	}
	if theme.ID != "my-cool-theme" {
		t.Errorf("expected ID 'my-cool-theme', got %q", theme.ID)
	}
	if theme.DisplayName != "my-cool-theme" {
		t.Errorf("expected DisplayName 'my-cool-theme', got %q", theme.DisplayName)
	}
}

// TestLoadCustomThemeFile_InvalidJSON errors on malformed input.
func TestLoadCustomThemeFile_InvalidJSON(t *testing.T) {
	path := writeTheme(t, "bad.json", "not valid json{{{")
	if _, err := LoadCustomThemeFile(path); err == nil {
		t.Error("expected error for invalid JSON, got nil")
	}
}

// TestLoadCustomThemes_SkipsNonJSON ignores files without a .json suffix.
func TestLoadCustomThemes_SkipsNonJSON(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"readme.txt", "notes.md", ".hidden"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("not a theme"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	loaded, err := LoadCustomThemes(dir)
	if err != nil {
		t.Fatalf("LoadCustomThemes should not error: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected 0 loaded themes, got %d", len(loaded))
	}
}

// TestLoadCustomThemes_Registers makes loaded themes selectable by ID.
func TestLoadCustomThemes_Registers(t *testing.T) {
	dir := t.TempDir()
	body := `{"id": "custom-unique", "fg": "#ffffff", "bg": "#000000"}`
	if err := os.WriteFile(filepath.Join(dir, "custom-unique.json"), []byte(body), 0600); err != nil {
		t.Fatal(err)
	}

	tint.NewDefaultRegistry()

	loaded, err := LoadCustomThemes(dir)
	if err != nil {
		t.Fatalf("LoadCustomThemes failed: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("expected 1 loaded theme, got %d", len(loaded))
	}

	found := false
	for _, id := range tint.TintIDs() {
		if id == "custom-unique" {
			found = true
			break
		}
	}
	if !found {
		t.Error("custom theme 'custom-unique' not found in TintIDs()")
	}
}
