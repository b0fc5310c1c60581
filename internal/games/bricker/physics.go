package bricker

import (
	"slices"

	"github.com/vovakirdan/bricker/internal/core"
)

// movePaddles applies input to every paddle and clamps it inside the side borders.
func (a *Arena) movePaddles(dt float64) {
	dir := 0.0
	if a.input.IsKeyDown(core.ActionLeft) {
		dir--
	}
	if a.input.IsKeyDown(core.ActionRight) {
		dir++
	}

	minX := a.cfg.Border.Width
	for _, p := range [...]*Entity{a.paddle, a.subPaddle} {
		if p == nil || !p.live {
			continue
		}
		maxX := a.cfg.Window.Width - a.cfg.Border.Width - p.Size.X
		p.Vel = core.V(dir*a.cfg.Paddle.Speed, 0)
		p.Pos.X = core.ClampF(p.Pos.X+p.Vel.X*dt, minX, maxX)
	}
}

// advance moves every free-flying entity by its velocity.
func (a *Arena) advance(dt float64) {
	for _, e := range a.layers[LayerDefault] {
		switch e.Tag {
		case TagBall, TagPuck, TagHeart:
			e.Pos = e.Pos.Add(e.Vel.Scale(dt))
		}
	}
}

// resolveCollisions runs ball and heart contacts for this frame.
// Entities removed by an earlier contact are skipped.
func (a *Arena) resolveCollisions() {
	for _, e := range slices.Clone(a.layers[LayerDefault]) {
		if !e.live {
			continue
		}
		switch e.Tag {
		case TagBall, TagPuck:
			a.collideBall(e)
		case TagHeart:
			a.collideHeart(e)
		}
	}
}

// solidForBall reports whether a ball bounces off an entity with tag t.
func solidForBall(t Tag) bool {
	switch t {
	case TagBrick, TagExploded, TagBorder, TagPaddle, TagSubPaddle:
		return true
	}
	return false
}

func (a *Arena) collideBall(b *Entity) {
	for _, layer := range [...]Layer{LayerStatic, LayerDefault} {
		for _, o := range slices.Clone(a.layers[layer]) {
			if o == b || !o.live || !solidForBall(o.Tag) {
				continue
			}
			n, depth, ok := b.Box().Contact(o.Box())
			if !ok {
				continue
			}
			bounce(b, n, depth)
			a.onBallContact(b, o)
		}
	}
}

// bounce reflects b across the contact normal when it moves into the surface
// and pushes it out of the overlap.
func bounce(b *Entity, normal core.Vec2, depth float64) {
	if b.Vel.Dot(normal) < 0 {
		b.Vel = b.Vel.Reflect(normal)
	}
	b.Pos = b.Pos.Add(normal.Scale(depth))
}

func (a *Arena) onBallContact(b, o *Entity) {
	b.Collisions++
	a.sound.Play(core.SoundBlop)

	switch o.Tag {
	case TagBrick, TagExploded:
		if s := o.strategy; s != nil {
			s.OnCollision(o, b)
		}
	case TagSubPaddle:
		a.NotifySubPaddleHit(o)
	}
}

// collideHeart hands paddle contacts to the heart's strategy, which only
// accepts the main paddle.
func (a *Arena) collideHeart(h *Entity) {
	if h.strategy == nil {
		return
	}
	for _, p := range [...]*Entity{a.paddle, a.subPaddle} {
		if p == nil || !p.live || !h.live {
			continue
		}
		if h.Box().Intersects(p.Box()) {
			h.strategy.OnCollision(h, p)
		}
	}
}
