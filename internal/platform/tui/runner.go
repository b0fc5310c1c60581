package tui

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bricker/internal/core"
	"github.com/vovakirdan/bricker/internal/games/bricker"
)

// Runner drives the arena: one Update and one rendered frame per tick.
// It is the only goroutine that touches the arena.
type Runner struct {
	arena  *bricker.Arena
	window *Window
	keys   *KeyState
	cfg    core.RuntimeConfig
	logger *log.Logger
	send   func(tea.Msg)

	mu     sync.Mutex
	screen *core.Screen
	paused atomic.Bool
}

// NewRunner creates a frame loop for arena.
func NewRunner(arena *bricker.Arena, window *Window, keys *KeyState, cfg core.RuntimeConfig, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		arena:  arena,
		window: window,
		keys:   keys,
		cfg:    cfg,
		logger: logger,
		send:   func(tea.Msg) {},
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
	}
}

// Resize changes the size of rendered frames.
func (r *Runner) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.screen.Resize(max(width, 0), max(height, 0))
}

// TogglePause stops or resumes the simulation. Frames keep rendering.
func (r *Runner) TogglePause() bool {
	for {
		old := r.paused.Load()
		if r.paused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Paused reports whether the simulation is stopped.
func (r *Runner) Paused() bool {
	return r.paused.Load()
}

// Run ticks until ctx is done or the arena terminates.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(tickInterval(r.cfg.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if !r.Step() {
				r.logger.Debug("frame loop stopped", "phase", r.arena.Phase())
				return nil
			}
		}
	}
}

// Step simulates and renders one frame. It returns false once the arena has terminated.
func (r *Runner) Step() bool {
	if !r.Paused() {
		r.arena.Update(r.cfg.FrameSeconds())
	}

	if r.window.takeReset() {
		r.keys.ReleaseAll()
		r.arena.Reset()
	}

	if r.arena.Phase() == bricker.PhaseTerminated {
		return false
	}

	r.send(FrameMsg(r.render()))
	return true
}

func (r *Runner) render() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.arena.Render(r.screen)
	if r.Paused() {
		r.screen.DrawTextCentered(r.screen.Height()/2, " PAUSED ")
	}
	return RenderScreen(r.screen)
}
