package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/typestorm/internal/core"
	"github.com/vovakirdan/typestorm/internal/engine"
)

// maxStepUnits caps one tick's simulation advance so a stalled terminal
// (suspend, resize storm) does not teleport enemies across the field.
const maxStepUnits = 0.5

// Model is the Bubble Tea model driving one game session.
type Model struct {
	session  *engine.Session
	screen   *core.Screen
	theme    *Theme
	palette  string
	mapper   *KeyMapper
	config   core.RuntimeConfig
	frame    core.InputFrame
	last     time.Time
	quitting bool
}

// NewModel creates the Bubble Tea model for a session.
func NewModel(session *engine.Session, cfg core.RuntimeConfig) Model {
	palette := session.Config().Palette
	return Model{
		session: session,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		theme:   NewTheme(session.Config().ActivePalette()),
		palette: palette,
		mapper:  NewKeyMapper(),
		config:  cfg,
		frame:   core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mapper.MapKeyToFrame(msg, &m.frame) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleTick advances the simulation by the wall-clock time since the last
// tick, converted to simulation units (six per second).
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 6.0 / float64(m.config.TickRate)
	if !m.last.IsZero() {
		dt = now.Sub(m.last).Seconds() * 6
	}
	if dt < 0 {
		dt = 0
	}
	if dt > maxStepUnits {
		dt = maxStepUnits
	}
	m.last = now

	m.session.Step(m.frame, dt)
	m.frame.Clear()

	if m.session.Quitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// options can swap the palette mid-run
	if p := m.session.Config().Palette; p != m.palette {
		m.palette = p
		m.theme = NewTheme(m.session.Config().ActivePalette())
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.session.Render(m.screen)
	return m.theme.RenderScreen(m.screen, m.session.Brightness())
}

// Run starts the Bubble Tea program for a session and blocks until exit.
func Run(session *engine.Session, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(session, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
