package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/bricker/internal/core"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestKeyState(hold time.Duration) (*KeyState, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	ks := NewKeyState(hold)
	ks.now = clock.now
	return ks, clock
}

func TestKeyStateHold(t *testing.T) {
	ks, clock := newTestKeyState(100 * time.Millisecond)

	if ks.IsKeyDown(core.ActionLeft) {
		t.Error("IsKeyDown() before press = true, expected false")
	}

	ks.Press(core.ActionLeft)
	if !ks.IsKeyDown(core.ActionLeft) {
		t.Error("IsKeyDown() after press = false, expected true")
	}
	if ks.IsKeyDown(core.ActionRight) {
		t.Error("IsKeyDown(Right) = true, expected false")
	}

	clock.advance(80 * time.Millisecond)
	ks.Press(core.ActionLeft) // key repeat
	clock.advance(80 * time.Millisecond)
	if !ks.IsKeyDown(core.ActionLeft) {
		t.Error("repeat should keep the key held")
	}

	clock.advance(120 * time.Millisecond)
	if ks.IsKeyDown(core.ActionLeft) {
		t.Error("IsKeyDown() after hold expired = true, expected false")
	}
}

func TestKeyStateReleaseAll(t *testing.T) {
	ks, _ := newTestKeyState(time.Second)
	ks.Press(core.ActionLeft)
	ks.Press(core.ActionForceWin)

	ks.ReleaseAll()

	for _, a := range []core.Action{core.ActionLeft, core.ActionForceWin} {
		if ks.IsKeyDown(a) {
			t.Errorf("IsKeyDown(%v) after ReleaseAll = true, expected false", a)
		}
	}
}

func TestNewKeyStateDefaultHold(t *testing.T) {
	if ks := NewKeyState(0); ks.hold != DefaultHold {
		t.Errorf("hold = %v, expected %v", ks.hold, DefaultHold)
	}
}
