package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/bricker/internal/core"
	"github.com/vovakirdan/bricker/internal/games/bricker"
)

// Model is the Bubble Tea model for a bricker session. It never touches the
// arena; it shows frames from the Runner and feeds keys and answers back.
type Model struct {
	runner   *Runner
	window   *Window
	keyState *KeyState
	keys     KeyMap
	help     help.Model
	frame    string
	dialog   string // non-empty while the end-of-game dialog is open
	width    int
	height   int
	quitting bool
}

// NewModel creates a model bound to the given frame loop.
func NewModel(runner *Runner, window *Window, keyState *KeyState) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		runner:   runner,
		window:   window,
		keyState: keyState,
		keys:     DefaultKeyMap(),
		help:     h,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("bricker")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// One line for help
		m.runner.Resize(msg.Width, msg.Height-1)
		return m, nil

	case FrameMsg:
		m.frame = string(msg)
		return m, nil

	case DialogMsg:
		m.dialog = msg.Message
		m.keyState.ReleaseAll()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	if m.dialog != "" {
		switch action {
		case core.ActionConfirm:
			m.dialog = ""
			m.window.Answer(true)
		case core.ActionBack, core.ActionQuit:
			m.dialog = ""
			m.quitting = true
			m.window.Answer(false)
		}
		return m, nil
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.runner.TogglePause()
	case core.ActionNone, core.ActionConfirm, core.ActionBack:
	default:
		m.keyState.Press(action)
	}
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting && m.dialog == "" {
		return ""
	}

	if m.dialog != "" {
		hint := m.help.ShortHelpView(m.keys.DialogHelp())
		return RenderDialog(m.dialog, hint, m.width, m.height)
	}

	return m.frame + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Session wires the collaborators a TUI run needs.
type Session struct {
	Arena  *bricker.Arena
	Window *Window
	Keys   *KeyState
	Config core.RuntimeConfig
	Logger *log.Logger
}

// Run starts the Bubble Tea program and the frame loop and blocks until either ends.
func Run(ctx context.Context, s Session) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	runner := NewRunner(s.Arena, s.Window, s.Keys, s.Config, s.Logger)
	model := NewModel(runner, s.Window, s.Keys)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	runner.send = p.Send
	s.Window.Bind(ctx, p.Send, p.Quit)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return runner.Run(ctx)
	})
	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil && ctx.Err() == nil {
			return fmt.Errorf("tui: %w", err)
		}
		return nil
	})
	return g.Wait()
}
