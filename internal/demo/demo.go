// Package demo implements the interactive showcase for the toast library.
// Number keys fire preset notifications, letters drive the pool and the
// code generation modal.
package demo

import (
	"fmt"
	"image"
	"io"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/toast"
	"github.com/Gaurav-Gosain/toast/internal/config"
	"github.com/Gaurav-Gosain/toast/internal/theme"
	"github.com/charmbracelet/log"
)

// TickerMsg drives the animation loop. The payload is the wall-clock
// time of the tick; deltas between consecutive ticks feed the pool.
type TickerMsg time.Time

// Options configures the demo at startup.
type Options struct {
	MaxConcurrent    int
	Overflow         toast.Overflow
	DefaultAnchor    toast.Anchor
	DefaultAnimation toast.Animation
	FPS              int
	ASCIIOnly     bool
	NoAnimations  bool
	Logger        *log.Logger
}

// Model is the bubbletea model for the demo.
type Model struct {
	manager  *toast.Manager
	renderer *toast.Renderer
	opts     Options

	width    int
	height   int
	lastTick time.Time

	// lastBuilt backs the code modal and snippet export
	lastBuilt *toast.Notification
	showCode  bool
	showHelp  bool
	statusMsg string

	stats systemStats
}

// New creates a demo model from the resolved options.
func New(opts Options) *Model {
	if opts.FPS <= 0 {
		opts.FPS = config.DefaultFPS
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = config.DefaultMaxConcurrent
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return &Model{
		manager: toast.NewManager(
			toast.WithMaxConcurrent(opts.MaxConcurrent),
			toast.WithOverflow(opts.Overflow),
		),
		renderer: &toast.Renderer{
			Backdrop:  theme.Background(),
			ASCIIOnly: opts.ASCIIOnly,
		},
		opts: opts,
	}
}

// Init starts the animation and stats loops.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), sampleStatsCmd())
}

// tickCmd schedules the next animation frame, dropping to the idle rate
// when nothing is on screen.
func (m *Model) tickCmd() tea.Cmd {
	fps := m.opts.FPS
	if m.manager.IsEmpty() {
		fps = config.IdleFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// Update handles ticks, resizes, and key presses.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickerMsg:
		now := time.Time(msg)
		var dt time.Duration
		if !m.lastTick.IsZero() {
			dt = now.Sub(m.lastTick)
		}
		m.lastTick = now
		if removed := m.manager.Tick(dt); len(removed) > 0 {
			m.opts.Logger.Debug("pruned toasts", "ids", removed)
		}
		return m, m.tickCmd()

	case statsMsg:
		m.stats = systemStats(msg)
		return m, statsTickCmd()

	case snippetSavedMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("export failed: %v", msg.err)
		} else {
			m.statusMsg = "saved " + msg.path
		}
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "x":
		m.manager.Clear()
		m.statusMsg = "cleared"
		return m, nil

	case "c":
		if m.lastBuilt != nil {
			m.showCode = !m.showCode
		}
		return m, nil

	case "e":
		if m.lastBuilt == nil {
			m.statusMsg = "fire a toast first"
			return m, nil
		}
		n := *m.lastBuilt
		return m, func() tea.Msg {
			path, err := ExportSnippet(&n)
			return snippetSavedMsg{path: path, err: err}
		}

	case "?":
		m.showHelp = !m.showHelp
		return m, nil

	case "escape":
		m.showCode = false
		m.showHelp = false
		return m, nil
	}

	if builders, name := m.scenario(key); builders != nil {
		m.statusMsg = name
		for _, b := range builders {
			n, err := b.Build()
			if err != nil {
				m.statusMsg = fmt.Sprintf("build failed: %v", err)
				m.opts.Logger.Error("scenario build failed", "scenario", name, "err", err)
				continue
			}
			if _, err := m.manager.Add(n); err != nil {
				m.statusMsg = fmt.Sprintf("rejected: %v", err)
				m.opts.Logger.Debug("toast rejected", "scenario", name, "err", err)
				continue
			}
			m.lastBuilt = &n
		}
		m.opts.Logger.Debug("scenario fired", "scenario", name, "live", m.manager.ActiveCount())
	}

	return m, nil
}

// frame returns the drawable region above the status bar.
func (m *Model) frame() image.Rectangle {
	h := m.height - config.StatusBarHeight
	if h < 0 {
		h = 0
	}
	return image.Rect(0, 0, m.width, h)
}

// View composes the backdrop, live toasts, overlays, and status bar.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.width == 0 || m.height == 0 {
		view.SetContent("")
		return view
	}

	canvas := lipgloss.NewCanvas()
	canvas.AddLayers(lipgloss.NewLayer(m.renderBackdrop()).X(0).Y(0).Z(0).ID("backdrop"))

	for _, layer := range m.renderer.Layers(m.manager, m.frame()) {
		canvas.AddLayers(layer)
	}

	if m.showCode {
		canvas.AddLayers(m.renderCodeModal())
	}
	if m.showHelp {
		canvas.AddLayers(m.renderHelp())
	}

	canvas.AddLayers(lipgloss.NewLayer(m.renderStatusBar()).
		X(0).Y(m.height - config.StatusBarHeight).Z(zIndexStatusBar).ID("statusbar"))

	view.SetContent(lipgloss.Sprint(canvas.Render()))
	return view
}

func (m *Model) renderBackdrop() string {
	title := lipgloss.NewStyle().
		Foreground(theme.Accent()).
		Bold(true).
		Render("toast")
	hint := lipgloss.NewStyle().
		Foreground(theme.Foreground()).
		Render("press 1-9 or 0 to fire notifications, ? for help")

	body := lipgloss.JoinVertical(lipgloss.Center, title, "", hint)
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height - config.StatusBarHeight).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(body)
}
