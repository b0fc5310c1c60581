package bricker

import "github.com/vovakirdan/bricker/internal/core"

//go:generate go tool mockgen -destination=./mocks/mediator_mock.go -package=mocks . Mediator

// CollisionStrategy is the behaviour a brick or heart runs when struck.
// self is the struck entity, other the entity that struck it.
type CollisionStrategy interface {
	OnCollision(self, other *Entity)
}

// Mediator is the arena surface strategies act through.
type Mediator interface {
	Dimensions() core.Vec2
	RemoveBrick(brick *Entity) bool
	RemoveEntity(e *Entity, layer Layer) bool
	SpawnPucks(at core.Vec2)
	SpawnHeart(center core.Vec2)
	RequestExtraPaddle(y float64)
	ExplodeNeighbors(brick, ball *Entity)
	IncreaseLives()
}

// Effect is one power-up that can be stacked on a brick.
type Effect int

const (
	EffectExtraPuck Effect = iota
	EffectExtraPaddle
	EffectExploding
	EffectExtraLife
	effectCount
)

// String returns the effect name.
func (e Effect) String() string {
	switch e {
	case EffectExtraPuck:
		return "extra-puck"
	case EffectExtraPaddle:
		return "extra-paddle"
	case EffectExploding:
		return "exploding"
	case EffectExtraLife:
		return "extra-life"
	default:
		return "unknown"
	}
}

// BasicStrategy removes the struck brick.
type BasicStrategy struct {
	m Mediator
}

// NewBasicStrategy returns the strategy every brick carries at its core.
func NewBasicStrategy(m Mediator) *BasicStrategy {
	return &BasicStrategy{m: m}
}

// OnCollision implements CollisionStrategy.
func (s *BasicStrategy) OnCollision(self, _ *Entity) {
	s.m.RemoveBrick(self)
}

// CompositeStrategy runs a base strategy and then each effect in order.
type CompositeStrategy struct {
	base    CollisionStrategy
	effects []Effect
	m       Mediator
}

// NewCompositeStrategy stacks effects on top of base.
func NewCompositeStrategy(base CollisionStrategy, effects []Effect, m Mediator) *CompositeStrategy {
	return &CompositeStrategy{
		base:    base,
		effects: append([]Effect(nil), effects...),
		m:       m,
	}
}

// Effects returns a copy of the stacked effects.
func (s *CompositeStrategy) Effects() []Effect {
	return append([]Effect(nil), s.effects...)
}

// OnCollision implements CollisionStrategy.
func (s *CompositeStrategy) OnCollision(self, other *Entity) {
	s.base.OnCollision(self, other)
	for _, e := range s.effects {
		s.apply(e, self, other)
	}
}

func (s *CompositeStrategy) apply(e Effect, self, other *Entity) {
	switch e {
	case EffectExtraPuck:
		s.m.SpawnPucks(self.Center())
	case EffectExtraPaddle:
		s.m.RequestExtraPaddle(s.m.Dimensions().Y / 2)
	case EffectExploding:
		s.m.ExplodeNeighbors(self, other)
	case EffectExtraLife:
		s.m.SpawnHeart(self.Center())
	}
}

// HeartStrategy grants a life when the main paddle catches a heart.
type HeartStrategy struct {
	m Mediator
}

// NewHeartStrategy returns the strategy bound to spawned hearts.
func NewHeartStrategy(m Mediator) *HeartStrategy {
	return &HeartStrategy{m: m}
}

// OnCollision implements CollisionStrategy. Only the main paddle counts.
func (s *HeartStrategy) OnCollision(self, other *Entity) {
	if other == nil || other.Tag != TagPaddle {
		return
	}
	if s.m.RemoveEntity(self, LayerDefault) {
		s.m.IncreaseLives()
	}
}
