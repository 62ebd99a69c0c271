package demo

import (
	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/toast"
	"github.com/Gaurav-Gosain/toast/internal/theme"
)

const zIndexOverlay = 4000

// centered wraps rendered content in a layer positioned at the middle of
// the screen.
func (m *Model) centered(content string, id string) *lipgloss.Layer {
	x := (m.width - lipgloss.Width(content)) / 2
	y := (m.height - lipgloss.Height(content)) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return lipgloss.NewLayer(content).X(x).Y(y).Z(zIndexOverlay).ID(id)
}

// renderCodeModal shows the builder chain that reproduces the most
// recently fired toast.
func (m *Model) renderCodeModal() *lipgloss.Layer {
	code := toast.GenerateCode(*m.lastBuilt)

	title := lipgloss.NewStyle().
		Foreground(theme.Accent()).
		Bold(true).
		Render("builder snippet")
	hint := lipgloss.NewStyle().
		Foreground(theme.StatusBarFg()).
		Render("e export · esc close")

	body := lipgloss.JoinVertical(lipgloss.Left, title, "", code, "", hint)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent()).
		Padding(0, 2).
		Render(body)

	return m.centered(box, "code-modal")
}

// renderHelp lists the demo keybindings.
func (m *Model) renderHelp() *lipgloss.Layer {
	rows := []struct{ key, desc string }{
		{"1", "info toast at the default anchor"},
		{"2", "warning, slide with fade"},
		{"3", "sticky error, expand/collapse"},
		{"4", "debug, fade"},
		{"5", "trace, slides in from the right"},
		{"6", "long wrapped content"},
		{"7", "burst of six (overflow policy)"},
		{"8", "persistent center toast"},
		{"9", "custom enter/exit path"},
		{"0", "one toast per level"},
		{"c", "show builder snippet for the last toast"},
		{"e", "export snippet to the state directory"},
		{"x", "clear all toasts"},
		{"q", "quit"},
	}

	keyStyle := lipgloss.NewStyle().Foreground(theme.Accent()).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.Foreground())

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, keyStyle.Render("keys"), "")
	for _, r := range rows {
		lines = append(lines, keyStyle.Render(" "+r.key+" ")+" "+descStyle.Render(r.desc))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent()).
		Padding(0, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	return m.centered(box, "help")
}
