package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Window is the end-of-game collaborator of the arena. AskPlayAgain is called
// on the frame goroutine and blocks until the model answers.
type Window struct {
	mu      sync.Mutex
	send    func(tea.Msg)
	quit    func()
	done    <-chan struct{}
	replies chan bool
	reset   bool
}

// NewWindow creates a window that is not yet bound to a program.
func NewWindow() *Window {
	return &Window{
		send:    func(tea.Msg) {},
		quit:    func() {},
		done:    make(chan struct{}),
		replies: make(chan bool, 1),
	}
}

// Bind connects the window to a running program. Pending and later questions
// are answered with false once ctx is done.
func (w *Window) Bind(ctx context.Context, send func(tea.Msg), quit func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.send = send
	w.quit = quit
	w.done = ctx.Done()
}

// AskPlayAgain shows the dialog and waits for the answer.
func (w *Window) AskPlayAgain(message string) bool {
	w.mu.Lock()
	send, done := w.send, w.done
	w.mu.Unlock()

	send(DialogMsg{Message: message})
	select {
	case ok := <-w.replies:
		return ok
	case <-done:
		return false
	}
}

// Answer delivers the dialog answer. Extra answers are dropped.
func (w *Window) Answer(playAgain bool) {
	select {
	case w.replies <- playAgain:
	default:
	}
}

// ResetRun records that the frame loop must start a new run.
func (w *Window) ResetRun() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.reset = true
}

// takeReset reports and clears a pending ResetRun.
func (w *Window) takeReset() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	r := w.reset
	w.reset = false
	return r
}

// CloseWindow stops the program.
func (w *Window) CloseWindow() {
	w.mu.Lock()
	quit := w.quit
	w.mu.Unlock()
	quit()
}
