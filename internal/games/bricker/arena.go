package bricker

import (
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/bricker/internal/config"
	"github.com/vovakirdan/bricker/internal/core"
)

// Phase is the lifecycle state of a run.
type Phase int

const (
	PhaseInit Phase = iota
	PhasePlaying
	PhaseVictory
	PhaseDefeat
	PhaseTerminated
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhasePlaying:
		return "playing"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// assetPaths lists every sprite the arena needs before a run can start.
var assetPaths = []string{
	config.AssetBackground,
	config.AssetBorder,
	config.AssetBrick,
	config.AssetBall,
	config.AssetPuck,
	config.AssetPaddle,
	config.AssetHeart,
}

// Options carries the collaborators of an Arena. Only Assets is required.
type Options struct {
	Assets AssetLoader
	Input  core.Input
	Sound  SoundPlayer
	Window Window
	Random Random
	Logger *log.Logger
}

// Arena owns every entity of a run, binds strategies to bricks, runs the
// per-frame update and acts as the Mediator for strategies.
type Arena struct {
	cfg     config.BrickerConfig
	input   core.Input
	sound   SoundPlayer
	window  Window
	rng     Random
	logger  *log.Logger
	sprites map[string]core.Sprite

	// Per-run state, rebuilt by Reset.
	runID     string
	log       *log.Logger
	phase     Phase
	layers    [layerCount][]*Entity
	grid      [][]*Entity
	state     *GameState
	factory   *StrategyFactory
	ball      *Entity
	paddle    *Entity
	subPaddle *Entity
	lives     *LivesDisplay
	nextID    uint64
}

// NewArena loads sprites and builds the first run.
// A missing asset is returned as an error; nothing else fails.
func NewArena(cfg config.BrickerConfig, opts Options) (*Arena, error) {
	if opts.Assets == nil {
		return nil, fmt.Errorf("bricker: asset loader is required")
	}

	a := &Arena{
		cfg:     cfg,
		input:   opts.Input,
		sound:   opts.Sound,
		window:  opts.Window,
		rng:     opts.Random,
		logger:  opts.Logger,
		sprites: make(map[string]core.Sprite, len(assetPaths)),
	}
	if a.input == nil {
		a.input = noInput{}
	}
	if a.sound == nil {
		a.sound = silentPlayer{}
	}
	if a.window == nil {
		a.window = headlessWindow{}
	}
	if a.rng == nil {
		a.rng = NewRandom(cfg.Seed)
	}
	if a.logger == nil {
		a.logger = log.New(io.Discard)
	}

	for _, path := range assetPaths {
		s, err := opts.Assets.ReadImage(path)
		if err != nil {
			return nil, fmt.Errorf("bricker: load %s: %w", path, err)
		}
		a.sprites[path] = s
	}

	a.Reset()
	return a, nil
}

// Reset discards the current run and starts a new one with fresh counters.
func (a *Arena) Reset() {
	a.runID = uuid.NewString()
	a.log = a.logger.With("run", a.runID)
	a.phase = PhaseInit

	for i := range a.layers {
		for _, e := range a.layers[i] {
			e.live = false
		}
		a.layers[i] = nil
	}
	a.ball, a.paddle, a.subPaddle = nil, nil, nil

	a.state = NewGameState(
		a.cfg.Lives.Initial,
		a.cfg.Lives.Max,
		a.cfg.Bricks.PerRow*a.cfg.Bricks.Rows,
		a.cfg.Paddle.HitQuota,
	)
	a.factory = NewStrategyFactory(a.rng, a)

	a.addBackground()
	a.addBorders()
	a.addBricks()
	a.addMainPaddle()
	a.addBall()

	a.lives = NewLivesDisplay(a, a.state, a.sprites[config.AssetHeart], a.cfg.Window)
	a.lives.Update()

	a.phase = PhasePlaying
	a.log.Info("run started",
		"bricks", a.state.Bricks(),
		"lives", a.state.Lives(),
		"grid", fmt.Sprintf("%dx%d", a.cfg.Bricks.PerRow, a.cfg.Bricks.Rows))
}

func (a *Arena) addBackground() {
	a.AddEntity(&Entity{
		Tag:    TagUI,
		Size:   a.Dimensions(),
		Sprite: a.sprites[config.AssetBackground],
	}, LayerBackground)
}

func (a *Arena) addBorders() {
	w, h, b := a.cfg.Window.Width, a.cfg.Window.Height, a.cfg.Border.Width
	sprite := a.sprites[config.AssetBorder]
	for _, box := range []core.Box{
		{Pos: core.V(0, 0), Size: core.V(b, h)},   // left
		{Pos: core.V(w-b, 0), Size: core.V(b, h)}, // right
		{Pos: core.V(0, 0), Size: core.V(w, b)},   // top
	} {
		a.AddEntity(&Entity{Tag: TagBorder, Pos: box.Pos, Size: box.Size, Sprite: sprite}, LayerStatic)
	}
}

func (a *Arena) addBricks() {
	rows, cols := a.cfg.Bricks.Rows, a.cfg.Bricks.PerRow
	bw, bh, gap := a.cfg.BrickWidth(), a.cfg.Bricks.Height, a.cfg.Bricks.Gap
	sprite := a.sprites[config.AssetBrick]

	a.grid = make([][]*Entity, rows)
	for row := range rows {
		a.grid[row] = make([]*Entity, cols)
		for col := range cols {
			pos := core.V(
				a.cfg.Border.Width+float64(col)*(bw+gap),
				a.cfg.Border.Width+float64(row)*(bh+gap),
			)
			brick := NewBrick(pos, core.V(bw, bh), row, col, a.factory.New())
			brick.Sprite = sprite
			a.AddEntity(brick, LayerStatic)
			a.grid[row][col] = brick
		}
	}
}

func (a *Arena) addMainPaddle() {
	p := a.newPaddle(TagPaddle)
	p.Pos = core.V((a.cfg.Window.Width-p.Size.X)/2, a.cfg.PaddleY())
	a.AddEntity(p, LayerDefault)
	a.state.IncrementPaddles()
	a.paddle = p
}

func (a *Arena) newPaddle(tag Tag) *Entity {
	return &Entity{
		Tag:    tag,
		Size:   core.V(a.cfg.Paddle.Width, a.cfg.Paddle.Height),
		Sprite: a.sprites[config.AssetPaddle],
	}
}

func (a *Arena) addBall() {
	a.ball = &Entity{
		Tag:    TagBall,
		Size:   core.V(a.cfg.Ball.Size, a.cfg.Ball.Size),
		Sprite: a.sprites[config.AssetBall],
	}
	a.AddEntity(a.ball, LayerDefault)
	a.resetBall()
}

// resetBall re-centres the main ball with a random diagonal velocity.
func (a *Arena) resetBall() {
	speed := a.cfg.Ball.Speed
	vx, vy := speed, speed
	if a.rng.IntN(2) == 0 {
		vx = -vx
	}
	if a.rng.IntN(2) == 0 {
		vy = -vy
	}
	a.ball.SetCenter(a.Dimensions().Scale(0.5))
	a.ball.Vel = core.V(vx, vy)
}

// Dimensions returns the world size.
func (a *Arena) Dimensions() core.Vec2 {
	return core.V(a.cfg.Window.Width, a.cfg.Window.Height)
}

// AddEntity places e on a layer and makes it live.
func (a *Arena) AddEntity(e *Entity, layer Layer) {
	if e.ID == 0 {
		a.nextID++
		e.ID = a.nextID
	}
	e.live = true
	a.layers[layer] = append(a.layers[layer], e)
}

// RemoveEntity removes e from layer. It returns false when e was not there,
// which makes removal idempotent.
func (a *Arena) RemoveEntity(e *Entity, layer Layer) bool {
	if e == nil || layer < 0 || layer >= layerCount {
		return false
	}
	i := slices.Index(a.layers[layer], e)
	if i < 0 {
		return false
	}
	a.layers[layer] = slices.Delete(a.layers[layer], i, i+1)
	e.live = false

	if layer == LayerStatic && e.Row >= 0 && e.Row < len(a.grid) &&
		e.Col >= 0 && e.Col < len(a.grid[e.Row]) && a.grid[e.Row][e.Col] == e {
		a.grid[e.Row][e.Col] = nil
	}
	return true
}

// RemoveBrick removes a brick from the static layer and decrements the
// brick counter only if the removal happened.
func (a *Arena) RemoveBrick(brick *Entity) bool {
	if !a.RemoveEntity(brick, LayerStatic) {
		return false
	}
	a.state.DecrementBricks()
	a.log.Debug("brick removed", "row", brick.Row, "col", brick.Col, "left", a.state.Bricks())
	return true
}

// SpawnPucks adds two pucks centred at at, each heading down at a random
// angle in [0, pi) with the ball speed.
func (a *Arena) SpawnPucks(at core.Vec2) {
	size := a.cfg.Ball.Size * a.cfg.Ball.PuckRatio
	for range 2 {
		p := &Entity{
			Tag:    TagPuck,
			Size:   core.V(size, size),
			Sprite: a.sprites[config.AssetPuck],
		}
		p.SetCenter(at)
		p.Vel = core.FromAngle(a.rng.Float64()*math.Pi, a.cfg.Ball.Speed)
		a.AddEntity(p, LayerDefault)
	}
	a.log.Debug("pucks spawned", "x", at.X, "y", at.Y)
}

// SpawnHeart drops a heart centred at center.
func (a *Arena) SpawnHeart(center core.Vec2) {
	h := &Entity{
		Tag:      TagHeart,
		Size:     core.V(a.cfg.Heart.Size, a.cfg.Heart.Size),
		Vel:      core.V(0, a.cfg.Heart.FallSpeed),
		Sprite:   a.sprites[config.AssetHeart],
		strategy: NewHeartStrategy(a),
	}
	h.SetCenter(center)
	a.AddEntity(h, LayerDefault)
	a.log.Debug("heart spawned", "x", center.X, "y", center.Y)
}

// RequestExtraPaddle adds a sub-paddle centred horizontally at height y.
// The request is dropped when MaxPaddles already exist.
func (a *Arena) RequestExtraPaddle(y float64) {
	if a.subPaddle != nil || a.state.Paddles() >= MaxPaddles {
		a.log.Debug("extra paddle dropped", "paddles", a.state.Paddles())
		return
	}
	p := a.newPaddle(TagSubPaddle)
	p.SetCenter(core.V(a.cfg.Window.Width/2, y))
	a.AddEntity(p, LayerDefault)
	a.state.IncrementPaddles()
	a.state.ResetSubPaddleHits()
	a.subPaddle = p
	a.log.Debug("extra paddle added", "y", y)
}

// ExplodeNeighbors marks brick as exploded and runs the full collision
// handling of its live grid neighbours with the same ball. A brick already
// exploded is ignored, which bounds the chain.
func (a *Arena) ExplodeNeighbors(brick, ball *Entity) {
	if brick == nil || brick.Tag == TagExploded {
		return
	}
	brick.Tag = TagExploded
	a.sound.Play(core.SoundExplosion)
	a.log.Debug("brick exploded", "row", brick.Row, "col", brick.Col)

	neighbours := make([]*Entity, 0, 4)
	for _, d := range [...][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		if n := a.BrickAt(brick.Row+d[0], brick.Col+d[1]); n != nil {
			neighbours = append(neighbours, n)
		}
	}
	for _, n := range neighbours {
		// An earlier neighbour's chain may already have taken this one.
		if !n.live || n.strategy == nil {
			continue
		}
		if n.Tag != TagBrick && n.Tag != TagExploded {
			continue
		}
		n.strategy.OnCollision(n, ball)
	}
}

// NotifySubPaddleHit counts a hit on the sub-paddle and removes it once the
// quota is reached.
func (a *Arena) NotifySubPaddleHit(p *Entity) {
	if p == nil || p != a.subPaddle {
		return
	}
	a.state.IncrementSubPaddleHits()
	if a.state.SubPaddleHits() < a.state.HitQuota() {
		return
	}
	a.RemoveEntity(p, LayerDefault)
	a.state.ResetSubPaddleHits()
	a.state.DecrementPaddles()
	a.subPaddle = nil
	a.log.Debug("extra paddle expired")
}

// IncreaseLives adds a life, capped at the maximum.
func (a *Arena) IncreaseLives() {
	if a.state.IncrementLives() {
		a.lives.Update()
		a.log.Info("life gained", "lives", a.state.Lives())
	}
}

// Update advances the run by dt seconds. It does nothing outside PhasePlaying.
func (a *Arena) Update(dt float64) {
	if a.phase != PhasePlaying {
		return
	}

	a.movePaddles(dt)
	a.advance(dt)
	a.resolveCollisions()
	a.checkVerdict()
}

// checkVerdict evaluates victory before defeat, then handles a fallen ball and
// sweeps pucks and hearts that left the arena.
func (a *Arena) checkVerdict() {
	if a.state.IsVictory() || a.input.IsKeyDown(core.ActionForceWin) {
		a.finish(PhaseVictory, WinMessage)
		return
	}

	height := a.cfg.Window.Height
	if a.ball.Center().Y > height {
		a.state.DecrementLives()
		a.lives.Update()
		a.log.Info("life lost", "lives", a.state.Lives())
		if a.state.IsDefeat() {
			a.finish(PhaseDefeat, LoseMessage)
			return
		}
		a.resetBall()
	}

	for _, e := range slices.Clone(a.layers[LayerDefault]) {
		if (e.Tag == TagPuck || e.Tag == TagHeart) && e.Center().Y > height {
			a.RemoveEntity(e, LayerDefault)
		}
	}
}

// finish records the verdict and asks the window once what to do next.
func (a *Arena) finish(phase Phase, message string) {
	a.phase = phase
	a.log.Info("run finished",
		"verdict", phase,
		"lives", a.state.Lives(),
		"bricks", a.state.Bricks(),
		"ball_hits", a.ball.Collisions)

	if a.window.AskPlayAgain(message) {
		a.window.ResetRun()
		return
	}
	a.phase = PhaseTerminated
	a.window.CloseWindow()
}

// Phase returns the lifecycle state.
func (a *Arena) Phase() Phase { return a.phase }

// State returns a copy of the run counters. Mutating it does not affect the run.
func (a *Arena) State() *GameState {
	s := *a.state
	return &s
}

// RunID returns the identifier attached to this run's log records.
func (a *Arena) RunID() string { return a.runID }

// Ball returns the main ball.
func (a *Arena) Ball() *Entity { return a.ball }

// Paddle returns the main paddle.
func (a *Arena) Paddle() *Entity { return a.paddle }

// SubPaddle returns the extra paddle, or nil.
func (a *Arena) SubPaddle() *Entity { return a.subPaddle }

// Lives returns the lives display.
func (a *Arena) Lives() *LivesDisplay { return a.lives }

// Entities returns a copy of the entities on a layer.
func (a *Arena) Entities(layer Layer) []*Entity {
	return slices.Clone(a.layers[layer])
}

// BrickAt returns the live brick at a grid coordinate, or nil.
func (a *Arena) BrickAt(row, col int) *Entity {
	if row < 0 || row >= len(a.grid) || col < 0 || col >= len(a.grid[row]) {
		return nil
	}
	return a.grid[row][col]
}

type headlessWindow struct{}

func (headlessWindow) AskPlayAgain(string) bool { return false }
func (headlessWindow) ResetRun()                {}
func (headlessWindow) CloseWindow()             {}
