package tui

import (
	"sync"
	"time"

	"github.com/vovakirdan/bricker/internal/core"
)

// DefaultHold covers the gap between the first press and the terminal's key repeat.
const DefaultHold = 180 * time.Millisecond

// KeyState is the held-key view shared by the Bubble Tea loop and the frame loop.
// Terminals report presses but not releases, so a press counts as held until
// hold elapses without a repeat.
type KeyState struct {
	mu   sync.Mutex
	held map[core.Action]time.Time
	hold time.Duration
	now  func() time.Time
}

// NewKeyState creates a key state with the given hold duration.
func NewKeyState(hold time.Duration) *KeyState {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &KeyState{
		held: make(map[core.Action]time.Time),
		hold: hold,
		now:  time.Now,
	}
}

// Press marks an action as held from now.
func (k *KeyState) Press(a core.Action) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.held[a] = k.now()
}

// IsKeyDown implements core.Input.
func (k *KeyState) IsKeyDown(a core.Action) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	at, ok := k.held[a]
	if !ok {
		return false
	}
	if k.now().Sub(at) > k.hold {
		delete(k.held, a)
		return false
	}
	return true
}

// ReleaseAll forgets every press.
func (k *KeyState) ReleaseAll() {
	k.mu.Lock()
	defer k.mu.Unlock()
	clear(k.held)
}
