package bricker

import "github.com/vovakirdan/bricker/internal/core"

// Tag classifies an entity for collision filtering and sweeping.
type Tag int

const (
	TagBrick Tag = iota
	TagBall
	TagPuck
	TagPaddle    // main paddle
	TagSubPaddle // extra paddle, expires after a hit quota
	TagHeart
	TagBorder
	TagExploded // brick whose explosion already ran
	TagUI
)

// String returns the tag name.
func (t Tag) String() string {
	switch t {
	case TagBrick:
		return "brick"
	case TagBall:
		return "ball"
	case TagPuck:
		return "puck"
	case TagPaddle:
		return "main paddle"
	case TagSubPaddle:
		return "sub paddle"
	case TagHeart:
		return "heart"
	case TagBorder:
		return "border"
	case TagExploded:
		return "exploded"
	case TagUI:
		return "ui"
	default:
		return "unknown"
	}
}

// Layer orders updates and rendering. It carries no other meaning.
type Layer int

const (
	LayerBackground Layer = iota
	LayerStatic           // bricks and borders
	LayerDefault          // balls, pucks, paddles, hearts
	LayerUI
	layerCount
)

// Entity is any movable or drawable object in the arena.
// Entities are created and destroyed only through the Arena.
type Entity struct {
	ID     uint64
	Tag    Tag
	Pos    core.Vec2 // top-left corner
	Size   core.Vec2
	Vel    core.Vec2
	Sprite core.Sprite

	// Grid coordinate, bricks only.
	Row, Col int

	// Collisions counts contacts of a ball or puck.
	Collisions int

	strategy CollisionStrategy
	live     bool
}

// Box returns the entity bounds.
func (e *Entity) Box() core.Box {
	return core.Box{Pos: e.Pos, Size: e.Size}
}

// Center returns the centre point of the entity.
func (e *Entity) Center() core.Vec2 {
	return e.Box().Center()
}

// SetCenter moves the entity so that its centre is at c.
func (e *Entity) SetCenter(c core.Vec2) {
	e.Pos = c.Sub(e.Size.Scale(0.5))
}

// Strategy returns the collision strategy bound at creation, or nil.
func (e *Entity) Strategy() CollisionStrategy {
	return e.strategy
}

// Live reports whether the entity is currently owned by an arena layer.
func (e *Entity) Live() bool {
	return e.live
}

// NewBrick creates a brick bound to s. Used by the arena and by tests
// exercising strategies in isolation.
func NewBrick(pos, size core.Vec2, row, col int, s CollisionStrategy) *Entity {
	return &Entity{
		Tag:      TagBrick,
		Pos:      pos,
		Size:     size,
		Row:      row,
		Col:      col,
		strategy: s,
	}
}
