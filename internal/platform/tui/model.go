package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/haptic-arena/internal/arena"
	"github.com/vovakirdan/haptic-arena/internal/config"
	"github.com/vovakirdan/haptic-arena/internal/core"
)

// Options configures the terminal front end.
type Options struct {
	Width         int    // Initial terminal width
	Height        int    // Initial terminal height
	ScreenshotDir string // Where ctrl+s writes frames; empty disables screenshots
	Logger        *log.Logger
	Now           func() time.Time // Clock for the hold window, time.Now if nil
}

// Model is the Bubble Tea model that drives one arena run.
type Model struct {
	arena  *arena.Arena
	screen *core.Screen
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model
	held   *HeldKeys
	steer  *Steering
	mouse  bool
	logger *log.Logger
	now    func() time.Time

	screenshotDir string
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given arena.
func NewModel(a *arena.Arena, cfg config.ArenaConfig, opts Options) Model {
	rc := core.DefaultConfig()
	if opts.Width > 0 {
		rc.ScreenW = opts.Width
	}
	if opts.Height > 0 {
		rc.ScreenH = opts.Height
	}
	if cfg.Window.FPS > 0 {
		rc.TickRate = cfg.Window.FPS
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	h := help.New()
	h.Width = rc.ScreenW

	return Model{
		arena:         a,
		screen:        core.NewScreen(rc.ScreenW, rc.ScreenH-1), // Last line is the key help
		config:        rc,
		keys:          DefaultKeyMap(),
		help:          h,
		held:          NewHeldKeys(cfg.Input.HoldWindow()),
		steer:         &Steering{},
		mouse:         cfg.Input.Mouse,
		logger:        opts.Logger,
		now:           opts.Now,
		screenshotDir: opts.ScreenshotDir,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.mouse {
			m.steer.Handle(msg)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	switch {
	case action == core.ActionClose, action == core.ActionEscape:
		m.arena.Step(core.NewInputFrame(action))
		m.quitting = true
		return m, tea.Quit
	case IsDirection(action):
		m.held.Press(action, m.now())
	}

	return m, nil
}

// handleResize rescales rendering. The world is left untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one arena frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := core.NewInputFrame()
	m.held.Fill(&frame, m.now())

	// A held mouse button overrides the keyboard for the whole frame.
	if m.steer.Active() {
		frame = core.NewInputFrame()
		x, y := m.steer.Target()
		target := m.arena.ScreenToWorld(m.screen.Width(), m.screen.Height(), x, y)
		actor := m.arena.Actor()
		Steer(&frame, actor.Center(), target, actor.Step)
	}

	result := m.arena.Step(frame)
	if result.State == arena.StateClosed {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() (string, error) {
	if m.screenshotDir == "" {
		return "", errors.New("screenshots disabled")
	}

	m.arena.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	name := fmt.Sprintf("arena_%s.txt", m.now().Format("20060102_150405.000"))
	path := filepath.Join(m.screenshotDir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// Quitting reports whether the model has asked Bubble Tea to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// View renders the arena and the key help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.arena.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the arena closes. The
// arena is always closed on return, so the final stop command is sent even
// when the program fails.
func Run(a *arena.Arena, cfg config.ArenaConfig, opts Options) error {
	model := NewModel(a, cfg, opts)

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Input.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, progOpts...)

	_, err := p.Run()
	a.Close()
	if err != nil {
		return fmt.Errorf("tui: run: %w", err)
	}
	return nil
}
