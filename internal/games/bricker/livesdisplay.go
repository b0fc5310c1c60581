package bricker

import (
	"strconv"

	"github.com/vovakirdan/bricker/internal/config"
	"github.com/vovakirdan/bricker/internal/core"
)

// layerHost is the part of the arena the lives display draws into.
type layerHost interface {
	AddEntity(e *Entity, layer Layer)
	RemoveEntity(e *Entity, layer Layer) bool
}

// LivesDisplay shows one heart icon per life plus a coloured counter.
// It reads the game state and keeps no logic of its own.
type LivesDisplay struct {
	host    layerHost
	state   *GameState
	sprite  core.Sprite
	origin  core.Vec2
	size    float64
	spacing float64
	hearts  []*Entity
}

// NewLivesDisplay places the display in the bottom-left corner of the window.
func NewLivesDisplay(host layerHost, state *GameState, sprite core.Sprite, win config.WindowConfig) *LivesDisplay {
	const size, spacing, margin = 20.0, 25.0, 20.0
	return &LivesDisplay{
		host:    host,
		state:   state,
		sprite:  sprite,
		origin:  core.V(margin, win.Height-margin-size),
		size:    size,
		spacing: spacing,
	}
}

// Update makes the heart icons match the current lives.
func (d *LivesDisplay) Update() {
	lives := min(d.state.Lives(), d.state.MaxLives())
	for len(d.hearts) < lives {
		i := len(d.hearts)
		h := &Entity{
			Tag:    TagUI,
			Pos:    d.origin.Add(core.V(float64(i)*d.spacing, 0)),
			Size:   core.V(d.size, d.size),
			Sprite: d.sprite,
		}
		d.host.AddEntity(h, LayerUI)
		d.hearts = append(d.hearts, h)
	}
	for len(d.hearts) > lives {
		last := d.hearts[len(d.hearts)-1]
		d.host.RemoveEntity(last, LayerUI)
		d.hearts = d.hearts[:len(d.hearts)-1]
	}
}

// Hearts returns the number of heart icons shown.
func (d *LivesDisplay) Hearts() int {
	return len(d.hearts)
}

// Text returns the numeric counter.
func (d *LivesDisplay) Text() string {
	return strconv.Itoa(d.state.Lives())
}

// Color returns green for three or more lives, yellow for two, red otherwise.
func (d *LivesDisplay) Color() core.Color {
	switch lives := d.state.Lives(); {
	case lives >= 3:
		return core.ColorGreen
	case lives == 2:
		return core.ColorYellow
	default:
		return core.ColorRed
	}
}

// CounterPos returns the world position of the counter, right of the last possible heart.
func (d *LivesDisplay) CounterPos() core.Vec2 {
	return d.origin.Add(core.V(float64(d.state.MaxLives())*d.spacing, 0))
}
