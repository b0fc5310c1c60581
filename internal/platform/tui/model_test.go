package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bricker/internal/core"
)

func newTestModel(t *testing.T) (Model, *testSession) {
	t.Helper()
	s := newTestSession(t)
	return NewModel(s.runner, s.window, s.keys), s
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return mm, cmd
}

func TestModelResize(t *testing.T) {
	m, s := newTestModel(t)
	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 31})

	if s.runner.screen.Width() != 100 || s.runner.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", s.runner.screen.Width(), s.runner.screen.Height())
	}
}

func TestModelShowsFrame(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, FrameMsg("arena"))

	if v := m.View(); !strings.HasPrefix(v, "arena\n") {
		t.Errorf("View() = %q, expected the frame first", v)
	}
}

func TestModelKeysFeedKeyState(t *testing.T) {
	m, s := newTestModel(t)
	m, _ = update(t, m, runeKey('a'))

	if !s.keys.IsKeyDown(core.ActionLeft) {
		t.Error("left not held after 'a'")
	}

	update(t, m, runeKey('p'))
	if !s.runner.Paused() {
		t.Error("runner not paused after 'p'")
	}
}

func TestModelDialog(t *testing.T) {
	tests := []struct {
		name     string
		key      tea.KeyMsg
		expected bool
	}{
		{"yes", runeKey('y'), true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, true},
		{"no", runeKey('n'), false},
		{"quit", runeKey('q'), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, s := newTestModel(t)
			m, _ = update(t, m, DialogMsg{Message: "You lose! Play again?"})

			if v := m.View(); !strings.Contains(v, "You lose! Play again?") {
				t.Errorf("View() = %q, expected the dialog", v)
			}

			// Paddle keys are ignored while the dialog is open
			m, _ = update(t, m, runeKey('a'))
			if s.keys.IsKeyDown(core.ActionLeft) {
				t.Error("paddle key reached the arena during the dialog")
			}

			m, cmd := update(t, m, tc.key)
			if cmd != nil {
				t.Error("answering the dialog should not quit the program directly")
			}
			if m.dialog != "" {
				t.Error("dialog still open after answer")
			}

			select {
			case got := <-s.window.replies:
				if got != tc.expected {
					t.Errorf("answer = %v, expected %v", got, tc.expected)
				}
			default:
				t.Fatal("no answer delivered")
			}
		})
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)
	m, cmd := update(t, m, runeKey('q'))

	if cmd == nil {
		t.Fatal("Update(q) returned nil cmd")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Update(q) should return tea.Quit")
	}
	if m.View() != "" {
		t.Errorf("View() after quit = %q, expected empty", m.View())
	}
}
