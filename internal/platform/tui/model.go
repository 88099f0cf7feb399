package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// footerRows is the space kept below the playfield for the status line.
const footerRows = 1

var hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the Bubble Tea model for running Breakout.
type Model struct {
	game    *breakout.Game
	screen  *core.Screen
	events  *core.EventQueue
	view    Viewport
	keys    KeyMap
	help    help.Model
	config  core.RuntimeConfig
	pointer core.Point // Last pointer position in window pixels

	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *breakout.Game, cfg core.RuntimeConfig) Model {
	w, h := game.Surface().Size()
	m := Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerRows, 1)),
		events:  core.NewEventQueue(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		config:  cfg,
		pointer: core.Point{X: w / 2, Y: h / 2},
	}
	m.view = NewViewport(w, h, m.screen.Width(), m.screen.Height())
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey moves the virtual pointer or clicks at it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	w, _ := m.game.Surface().Size()
	step := m.view.CellWidth()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		m.pointer.X = core.Clamp(m.pointer.X-step, 0, w)
		m.events.Push(core.Move(m.pointer.X, m.pointer.Y))
	case key.Matches(msg, m.keys.Right):
		m.pointer.X = core.Clamp(m.pointer.X+step, 0, w)
		m.events.Push(core.Move(m.pointer.X, m.pointer.Y))
	case key.Matches(msg, m.keys.Click):
		m.events.Push(core.Click(m.pointer.X, m.pointer.Y))
	}

	return m, nil
}

// handleMouse turns terminal mouse reports into pointer events.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y := m.view.ToPixel(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		m.pointer = core.Point{X: x, Y: y}
		m.events.Push(core.Move(x, y))
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.pointer = core.Point{X: x, Y: y}
			m.events.Push(core.Click(x, y))
		}
	}

	return m, nil
}

// handleResize refits the playfield to the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerRows, 1))

	w, h := m.game.Surface().Size()
	m.view = NewViewport(w, h, m.screen.Width(), m.screen.Height())
	m.help.Width = msg.Width

	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.game.Step(m.events)
	if m.game.Done() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickInterval)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Rasterize(m.screen, m.game.Surface().Shapes(), m.view)
	return RenderScreen(m.screen) + "\n" + m.statusLine()
}

func (m Model) statusLine() string {
	hint := ""
	switch m.game.Phase() {
	case breakout.PhaseReady:
		hint = "click to start"
	case breakout.PhaseAwaitingRestart:
		hint = "click to serve"
	case breakout.PhaseWon, breakout.PhaseLost:
		hint = "click to exit"
	}
	status := m.help.View(m.keys)
	if hint != "" {
		status = hintStyle.Render(hint) + "  " + status
	}
	return status
}

// Frontend runs the game in the terminal.
type Frontend struct{}

// Name returns the frontend identifier.
func (Frontend) Name() string {
	return "tui"
}

// Description returns a one-line summary.
func (Frontend) Description() string {
	return "terminal UI with mouse and keyboard input"
}

// Run starts the Bubble Tea program and blocks until the game closes or
// the user quits.
func (Frontend) Run(ctx context.Context, game *breakout.Game, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, cfg),
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Paddle follows the mouse without a button held
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil || errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return &breakout.RenderError{Op: "tui", Err: fmt.Errorf("bubbletea: %w", err)}
	}
	return nil
}

func init() {
	registry.Register("tui", func() registry.Frontend {
		return Frontend{}
	})
}
