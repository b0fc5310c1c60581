package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bricker/internal/core"
)

// KeyMap defines the key bindings of the game screen and the end-of-game dialog.
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	ForceWin key.Binding
	Yes      key.Binding
	No       key.Binding
	Pause    key.Binding
	Quit     key.Binding
}

// ShortHelp returns bindings shown under the arena.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Pause, k.Quit}
}

// FullHelp returns all bindings grouped by screen.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.ForceWin},
		{k.Yes, k.No},
		{k.Pause, k.Quit},
	}
}

// DialogHelp returns the bindings shown while the dialog is open.
func (k KeyMap) DialogHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No, k.Quit}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "right"),
		),
		ForceWin: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "win"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y/enter", "play again"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n/esc", "exit"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Dialog bindings map to ActionConfirm and ActionBack.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.ForceWin):
		return core.ActionForceWin
	case key.Matches(msg, k.Yes):
		return core.ActionConfirm
	case key.Matches(msg, k.No):
		return core.ActionBack
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}
