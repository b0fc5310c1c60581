package bricker

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/bricker/internal/config"
	"github.com/vovakirdan/bricker/internal/core"
)

const frame = 1.0 / 60

var errNoImage = errors.New("no such image")

type fakeAssets struct {
	missing string
}

func (f fakeAssets) ReadImage(path string) (core.Sprite, error) {
	switch path {
	case f.missing:
		return core.Sprite{}, errNoImage
	case config.AssetBackground:
		return core.Sprite{Glyph: ' '}, nil
	case config.AssetBrick:
		return core.Sprite{Glyph: 'B', Color: core.ColorCyan}, nil
	case config.AssetBorder:
		return core.Sprite{Glyph: '|', Color: core.ColorGray}, nil
	}
	return core.Sprite{Glyph: '#', Color: core.ColorWhite}, nil
}

type recordingSound struct {
	played map[core.Sound]int
}

func (r *recordingSound) Play(s core.Sound) {
	if r.played == nil {
		r.played = make(map[core.Sound]int)
	}
	r.played[s]++
}

type recordingWindow struct {
	asked   []string
	answer  bool
	resets  int
	closes  int
	onReset func()
}

func (w *recordingWindow) AskPlayAgain(message string) bool {
	w.asked = append(w.asked, message)
	return w.answer
}

func (w *recordingWindow) ResetRun() {
	w.resets++
	if w.onReset != nil {
		w.onReset()
	}
}

func (w *recordingWindow) CloseWindow() { w.closes++ }

type testRig struct {
	arena  *Arena
	input  core.InputFrame
	sound  *recordingSound
	window *recordingWindow
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()

	cfg := config.DefaultBrickerConfig()
	cfg.Seed = 42
	r := &testRig{
		input:  core.NewInputFrame(),
		sound:  &recordingSound{},
		window: &recordingWindow{},
	}
	a, err := NewArena(cfg, Options{
		Assets: fakeAssets{},
		Input:  r.input,
		Sound:  r.sound,
		Window: r.window,
		Random: NewRandom(cfg.Seed),
	})
	if err != nil {
		t.Fatalf("NewArena() error = %v", err)
	}
	r.arena = a
	r.park()
	return r
}

// park moves the ball to an empty spot and stops it.
func (r *testRig) park() {
	r.arena.ball.SetCenter(core.V(100, 250))
	r.arena.ball.Vel = core.Vec2{}
}

// setAllStrategies rebinds every brick to a strategy built from effects.
func (r *testRig) setAllStrategies(effects ...Effect) {
	a := r.arena
	for _, row := range a.grid {
		for _, b := range row {
			if b == nil {
				continue
			}
			if len(effects) == 0 {
				b.strategy = NewBasicStrategy(a)
			} else {
				b.strategy = NewCompositeStrategy(NewBasicStrategy(a), effects, a)
			}
		}
	}
}

func TestNewArenaLayout(t *testing.T) {
	r := newTestRig(t)
	a := r.arena

	if a.Phase() != PhasePlaying {
		t.Errorf("Phase() = %v, expected playing", a.Phase())
	}
	if got := a.State().Bricks(); got != 56 {
		t.Errorf("Bricks() = %d, expected 56", got)
	}
	if got := a.State().Lives(); got != 3 {
		t.Errorf("Lives() = %d, expected 3", got)
	}
	if got := a.State().Paddles(); got != 1 {
		t.Errorf("Paddles() = %d, expected 1", got)
	}
	if got := len(a.Entities(LayerStatic)); got != 56+3 {
		t.Errorf("static entities = %d, expected 56 bricks + 3 borders", got)
	}
	if got := a.Lives().Hearts(); got != 3 {
		t.Errorf("Hearts() = %d, expected 3", got)
	}
	for row := range 7 {
		for col := range 8 {
			b := a.BrickAt(row, col)
			if b == nil || b.Strategy() == nil {
				t.Fatalf("BrickAt(%d, %d) missing brick or strategy", row, col)
			}
		}
	}
	if a.RunID() == "" {
		t.Error("RunID() is empty")
	}
}

func TestStateIsSnapshot(t *testing.T) {
	r := newTestRig(t)
	a := r.arena

	snap := a.State()
	snap.DecrementLives()
	snap.DecrementBricks()

	if got := a.State().Lives(); got != 3 {
		t.Errorf("Lives() after mutating snapshot = %d, expected 3", got)
	}
	if got := a.State().Bricks(); got != 56 {
		t.Errorf("Bricks() after mutating snapshot = %d, expected 56", got)
	}
	if snap.Lives() != 2 {
		t.Errorf("snapshot Lives() = %d, expected 2", snap.Lives())
	}
}

func TestNewArenaMissingAsset(t *testing.T) {
	_, err := NewArena(config.DefaultBrickerConfig(), Options{
		Assets: fakeAssets{missing: config.AssetHeart},
	})
	if err == nil {
		t.Fatal("NewArena() error = nil, expected missing asset error")
	}
	if !errors.Is(err, errNoImage) {
		t.Errorf("NewArena() error = %v, expected to wrap the loader error", err)
	}
	if !strings.Contains(err.Error(), config.AssetHeart) {
		t.Errorf("NewArena() error = %q, expected it to name %s", err, config.AssetHeart)
	}

	if _, err := NewArena(config.DefaultBrickerConfig(), Options{}); err == nil {
		t.Error("NewArena() without asset loader should fail")
	}
}

func TestRemoveBrickIdempotent(t *testing.T) {
	r := newTestRig(t)
	a := r.arena
	b := a.BrickAt(2, 2)

	if !a.RemoveBrick(b) {
		t.Fatal("first RemoveBrick() = false, expected true")
	}
	if a.RemoveBrick(b) {
		t.Error("second RemoveBrick() = true, expected false")
	}
	if got := a.State().Bricks(); got != 55 {
		t.Errorf("Bricks() = %d, expected 55", got)
	}
	if a.BrickAt(2, 2) != nil {
		t.Error("BrickAt() should be nil after removal")
	}
	if b.Live() {
		t.Error("removed brick still live")
	}
}

func TestExplosionChainTerminates(t *testing.T) {
	r := newTestRig(t)
	a := r.arena
	r.setAllStrategies(EffectExploding)

	start := a.BrickAt(3, 4)
	start.Strategy().OnCollision(start, a.Ball())

	if got := a.State().Bricks(); got != 0 {
		t.Errorf("Bricks() = %d, expected 0", got)
	}
	if got := r.sound.played[core.SoundExplosion]; got != 56 {
		t.Errorf("explosions = %d, expected each of 56 bricks once", got)
	}
	for row := range 7 {
		for col := range 8 {
			if a.BrickAt(row, col) != nil {
				t.Errorf("BrickAt(%d, %d) still present", row, col)
			}
		}
	}

	a.Update(frame)
	if len(r.window.asked) != 1 || r.window.asked[0] != WinMessage {
		t.Errorf("dialogs = %v, expected one win dialog", r.window.asked)
	}
}

func TestExplosionStopsAtBasicBricks(t *testing.T) {
	r := newTestRig(t)
	a := r.arena
	r.setAllStrategies()

	// Explode a plus shape around (3,4); its neighbours are basic.
	center := a.BrickAt(3, 4)
	center.strategy = NewCompositeStrategy(NewBasicStrategy(a), []Effect{EffectExploding}, a)
	center.Strategy().OnCollision(center, a.Ball())

	if got := a.State().Bricks(); got != 56-5 {
		t.Errorf("Bricks() = %d, expected 51", got)
	}
	if center.Tag != TagExploded || center.Live() {
		t.Error("exploded brick should be tagged and removed")
	}
	for _, rc := range [][2]int{{2, 4}, {4, 4}, {3, 3}, {3, 5}} {
		if a.BrickAt(rc[0], rc[1]) != nil {
			t.Errorf("neighbour %v still present", rc)
		}
	}
	if a.BrickAt(2, 3) == nil {
		t.Error("diagonal brick (2,3) should survive")
	}

	// A second explosion request on the same brick is ignored.
	a.ExplodeNeighbors(center, a.Ball())
	if got := r.sound.played[core.SoundExplosion]; got != 1 {
		t.Errorf("explosions = %d, expected 1", got)
	}
}

func TestBallBouncesOffBrick(t *testing.T) {
	r := newTestRig(t)
	a := r.arena
	r.setAllStrategies()

	brick := a.BrickAt(6, 3)
	ball := a.Ball()
	ball.Pos = core.V(brick.Center().X-10, brick.Box().Bottom()-2)
	ball.Vel = core.V(0, -60)

	a.Update(frame)

	if ball.Vel != core.V(0, 60) {
		t.Errorf("ball velocity = %v, expected (0, 60)", ball.Vel)
	}
	if brick.Live() {
		t.Error("struck brick should be removed")
	}
	if got := a.State().Bricks(); got != 55 {
		t.Errorf("Bricks() = %d, expected 55", got)
	}
	if ball.Collisions != 1 {
		t.Errorf("ball Collisions = %d, expected 1", ball.Collisions)
	}
	if got := r.sound.played[core.SoundBlop]; got != 1 {
		t.Errorf("blop sounds = %d, expected 1", got)
	}
}

func TestBallFallCostsLife(t *testing.T) {
	r := newTestRig(t)
	a := r.arena

	a.ball.SetCenter(core.V(400, 700))
	a.Update(frame)

	if got := a.State().Lives(); got != 2 {
		t.Errorf("Lives() = %d, expected 2", got)
	}
	if got := a.Lives().Hearts(); got != 2 {
		t.Errorf("Hearts() = %d, expected 2", got)
	}
	if c := a.Ball().Center(); c != core.V(400, 300) {
		t.Errorf("ball centre = %v, expected (400, 300)", c)
	}
	v := a.Ball().Vel
	if (v.X != 200 && v.X != -200) || (v.Y != 200 && v.Y != -200) {
		t.Errorf("ball velocity = %v, expected (+-200, +-200)", v)
	}
	if a.Phase() != PhasePlaying || len(r.window.asked) != 0 {
		t.Errorf("phase = %v, dialogs = %v, expected playing without dialog", a.Phase(), r.window.asked)
	}
}

func TestLastLifeLostShowsOneLoseDialog(t *testing.T) {
	r := newTestRig(t)
	a := r.arena
	a.state.DecrementLives()
	a.state.DecrementLives()

	a.ball.SetCenter(core.V(400, 700))
	a.Update(frame)
	a.Update(frame)

	if got := a.State().Lives(); got != 0 {
		t.Errorf("Lives() = %d, expected 0", got)
	}
	if len(r.window.asked) != 1 || r.window.asked[0] != LoseMessage {
		t.Errorf("dialogs = %v, expected exactly one lose dialog", r.window.asked)
	}
	if r.window.closes != 1 || a.Phase() != PhaseTerminated {
		t.Errorf("closes = %d, phase = %v, expected 1 and terminated", r.window.closes, a.Phase())
	}
}

func TestVictoryBeforeDefeat(t *testing.T) {
	r := newTestRig(t)
	a := r.arena
	r.window.answer = true

	for _, b := range a.Entities(LayerStatic) {
		if b.Tag == TagBrick {
			a.RemoveBrick(b)
		}
	}
	a.state.DecrementLives()
	a.state.DecrementLives()
	a.ball.SetCenter(core.V(400, 700))

	a.Update(frame)
	a.Update(frame)

	if len(r.window.asked) != 1 || r.window.asked[0] != WinMessage {
		t.Errorf("dialogs = %v, expected exactly one win dialog", r.window.asked)
	}
	if r.window.resets != 1 || a.Phase() != PhaseVictory {
		t.Errorf("resets = %d, phase = %v, expected 1 and victory", r.window.resets, a.Phase())
	}
	if got := a.State().Lives(); got != 1 {
		t.Errorf("Lives() = %d, expected victory to leave lives at 1", got)
	}
}

func TestForceWinKey(t *testing.T) {
	r := newTestRig(t)
	r.input.Set(core.ActionForceWin)

	r.arena.Update(frame)

	if len(r.window.asked) != 1 || r.window.asked[0] != WinMessage {
		t.Errorf("dialogs = %v, expected one win dialog", r.window.asked)
	}
}

func TestPlayAgainResetsRun(t *testing.T) {
	r := newTestRig(t)
	a := r.arena
	r.window.answer = true
	r.window.onReset = a.Reset

	oldID := a.RunID()
	a.RemoveBrick(a.BrickAt(0, 0))
	r.input.Set(core.ActionForceWin)
	a.Update(frame)
	r.input.Clear()

	if a.Phase() != PhasePlaying {
		t.Errorf("Phase() = %v, expected playing after reset", a.Phase())
	}
	if a.RunID() == oldID {
		t.Error("RunID() unchanged after reset")
	}
	if got := a.State().Bricks(); got != 56 {
		t.Errorf("Bricks() = %d, expected 56 after reset", got)
	}
}

func TestSubPaddleExpiresAfterQuota(t *testing.T) {
	r := newTestRig(t)
	a := r.arena

	a.RequestExtraPaddle(300)
	sp := a.SubPaddle()
	if sp == nil {
		t.Fatal("SubPaddle() = nil after request")
	}
	a.RequestExtraPaddle(300)
	if a.SubPaddle() != sp || a.State().Paddles() != 2 {
		t.Errorf("second request should be dropped, paddles = %d", a.State().Paddles())
	}

	// First hit through a real contact.
	ball := a.Ball()
	ball.Pos = core.V(sp.Center().X-10, sp.Pos.Y-20+1)
	ball.Vel = core.V(0, 60)
	a.Update(frame)
	if ball.Vel.Y >= 0 {
		t.Errorf("ball velocity = %v, expected to bounce up", ball.Vel)
	}
	if got := a.State().SubPaddleHits(); got != 1 {
		t.Fatalf("SubPaddleHits() = %d, expected 1", got)
	}

	a.NotifySubPaddleHit(sp)
	a.NotifySubPaddleHit(sp)
	if !sp.Live() {
		t.Fatal("sub-paddle removed after 3 hits, expected 4")
	}
	a.NotifySubPaddleHit(sp)

	if sp.Live() || a.SubPaddle() != nil {
		t.Error("sub-paddle should be removed after 4 hits")
	}
	if got := a.State().Paddles(); got != 1 {
		t.Errorf("Paddles() = %d, expected 1", got)
	}
	if got := a.State().SubPaddleHits(); got != 0 {
		t.Errorf("SubPaddleHits() = %d, expected 0", got)
	}

	a.RequestExtraPaddle(300)
	if a.SubPaddle() == nil {
		t.Error("a new sub-paddle should be allowed after expiry")
	}
}

func TestHeartsCapLives(t *testing.T) {
	r := newTestRig(t)
	a := r.arena

	for i := range 3 {
		a.SpawnHeart(a.Paddle().Center())
		a.Update(frame)
		if got := len(heartsIn(a)); got != 0 {
			t.Fatalf("heart %d not consumed, %d left", i, got)
		}
	}

	if got := a.State().Lives(); got != 4 {
		t.Errorf("Lives() = %d, expected cap 4", got)
	}
	if got := a.Lives().Hearts(); got != 4 {
		t.Errorf("Hearts() = %d, expected 4", got)
	}
}

func TestHeartIgnoresSubPaddle(t *testing.T) {
	r := newTestRig(t)
	a := r.arena

	a.RequestExtraPaddle(300)
	a.SpawnHeart(a.SubPaddle().Center())
	a.Update(frame)

	if got := a.State().Lives(); got != 3 {
		t.Errorf("Lives() = %d, expected 3", got)
	}
	if got := len(heartsIn(a)); got != 1 {
		t.Errorf("hearts = %d, expected the heart to keep falling", got)
	}
}

func TestPucksAndHeartsSweptBelowBottom(t *testing.T) {
	r := newTestRig(t)
	a := r.arena

	a.SpawnPucks(core.V(400, 650))
	a.SpawnHeart(core.V(200, 650))
	a.SpawnPucks(core.V(400, 400))

	a.Update(frame)

	var pucks int
	for _, e := range a.Entities(LayerDefault) {
		if e.Tag == TagPuck {
			pucks++
			if e.Center().Y > 600 {
				t.Errorf("puck below the bottom edge survived at %v", e.Center())
			}
		}
	}
	if pucks != 2 {
		t.Errorf("pucks = %d, expected 2", pucks)
	}
	if got := len(heartsIn(a)); got != 0 {
		t.Errorf("hearts = %d, expected 0", got)
	}
	if got := a.State().Lives(); got != 3 {
		t.Errorf("Lives() = %d, expected pucks to cost no life", got)
	}
}

func TestSpawnPucksHeadDown(t *testing.T) {
	r := newTestRig(t)
	a := r.arena

	a.SpawnPucks(core.V(400, 300))
	for _, e := range a.Entities(LayerDefault) {
		if e.Tag != TagPuck {
			continue
		}
		if e.Size.X != 15 {
			t.Errorf("puck size = %v, expected 15", e.Size.X)
		}
		if e.Vel.Y < 0 {
			t.Errorf("puck velocity = %v, expected a downward angle", e.Vel)
		}
		if d := e.Vel.Len() - 200; d > 1e-9 || d < -1e-9 {
			t.Errorf("puck speed = %v, expected 200", e.Vel.Len())
		}
	}
}

func TestPaddleClampedInsideBorders(t *testing.T) {
	r := newTestRig(t)
	a := r.arena

	r.input.Set(core.ActionLeft)
	for range 300 {
		a.Update(frame)
	}
	if got := a.Paddle().Pos.X; got != 5 {
		t.Errorf("paddle x = %v, expected left border 5", got)
	}

	r.input.Clear()
	r.input.Set(core.ActionRight)
	for range 300 {
		a.Update(frame)
	}
	if got := a.Paddle().Box().Right(); got != 795 {
		t.Errorf("paddle right = %v, expected right border 795", got)
	}
}

func TestLivesDisplayColor(t *testing.T) {
	tests := []struct {
		lives    int
		expected core.Color
	}{
		{4, core.ColorGreen},
		{3, core.ColorGreen},
		{2, core.ColorYellow},
		{1, core.ColorRed},
		{0, core.ColorRed},
	}
	for _, tc := range tests {
		d := NewLivesDisplay(nil, NewGameState(tc.lives, 4, 1, 4), core.Sprite{}, config.WindowConfig{Width: 800, Height: 600})
		if got := d.Color(); got != tc.expected {
			t.Errorf("Color() with %d lives = %v, expected %v", tc.lives, got, tc.expected)
		}
	}
}

func TestRender(t *testing.T) {
	r := newTestRig(t)
	a := r.arena

	dst := core.NewScreen(80, 24)
	a.Render(dst)

	// First brick row sits just below the top border.
	if c := dst.GetCell(5, 0); c.Rune != 'B' || c.Color != core.ColorCyan {
		t.Errorf("GetCell(5, 0) = %+v, expected brick glyph", c)
	}
	if c := dst.GetCell(0, 10); c.Rune != '|' {
		t.Errorf("GetCell(0, 10) = %+v, expected left border", c)
	}
	if !strings.Contains(dst.String(), "bricks 56") {
		t.Error("status line missing from render")
	}

	small := core.NewScreen(20, 10)
	a.Render(small)
	if !strings.Contains(small.String(), "Window too small") {
		t.Error("small screen should show the size warning")
	}
}

func heartsIn(a *Arena) []*Entity {
	var out []*Entity
	for _, e := range a.Entities(LayerDefault) {
		if e.Tag == TagHeart {
			out = append(out, e)
		}
	}
	return out
}
