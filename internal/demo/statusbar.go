package demo

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/toast/internal/config"
	"github.com/Gaurav-Gosain/toast/internal/theme"
	"github.com/charmbracelet/x/ansi"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

const zIndexStatusBar = 3000

// systemStats is a point-in-time sample of host load.
type systemStats struct {
	cpuPercent float64
	memPercent float64
}

type statsMsg systemStats

// sampleStatsCmd reads CPU and memory usage off the update loop.
func sampleStatsCmd() tea.Cmd {
	return func() tea.Msg {
		var s systemStats
		if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
			s.cpuPercent = percents[0]
		}
		if vm, err := mem.VirtualMemory(); err == nil {
			s.memPercent = vm.UsedPercent
		}
		return statsMsg(s)
	}
}

// statsTickCmd schedules the next sample.
func statsTickCmd() tea.Cmd {
	return tea.Tick(config.SystemStatsInterval, func(_ time.Time) tea.Msg {
		return sampleStatsCmd()()
	})
}

// renderStatusBar draws the single-line footer with key hints, host load,
// and the live toast count.
func (m *Model) renderStatusBar() string {
	style := lipgloss.NewStyle().
		Background(theme.StatusBarBg()).
		Foreground(theme.StatusBarFg())

	left := " 1-9/0 fire  c code  e export  x clear  ? help  q quit"
	if m.statusMsg != "" {
		left += "  │ " + m.statusMsg
	}

	right := fmt.Sprintf("cpu %3.0f%%  mem %3.0f%%  live %d ",
		m.stats.cpuPercent, m.stats.memPercent, m.manager.ActiveCount())

	gap := m.width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		left = ansi.Truncate(left, m.width-ansi.StringWidth(right)-1, "…")
		gap = m.width - ansi.StringWidth(left) - ansi.StringWidth(right)
		if gap < 0 {
			gap = 0
		}
	}

	var b []byte
	b = append(b, left...)
	for i := 0; i < gap; i++ {
		b = append(b, ' ')
	}
	b = append(b, right...)

	return style.Width(m.width).Render(string(b))
}
