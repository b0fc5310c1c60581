package bricker

import (
	"fmt"
	"math"

	"github.com/vovakirdan/bricker/internal/core"
)

// Minimum terminal size that still shows every brick row.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// Render draws the arena scaled to the screen, layer by layer.
func (a *Arena) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	sx := float64(dst.Width()) / a.cfg.Window.Width
	sy := float64(dst.Height()) / a.cfg.Window.Height

	for layer := range layerCount {
		for _, e := range a.layers[layer] {
			if e.Sprite.Glyph == 0 || e.Sprite.Glyph == ' ' {
				continue
			}
			dst.DrawRect(toCells(e.Box(), sx, sy), e.Sprite.Glyph, e.Sprite.Color)
		}
	}

	if a.lives != nil {
		pos := a.lives.CounterPos()
		x, y := int(pos.X*sx)+1, int(pos.Y*sy)
		dst.DrawTextColored(x, y, a.lives.Text(), a.lives.Color())
	}

	status := fmt.Sprintf("bricks %d  hits %d", a.state.Bricks(), a.ball.Collisions)
	dst.DrawTextColored(dst.Width()-len(status)-2, dst.Height()-2, status, core.ColorGray)
}

// toCells maps a world box to screen cells. Every visible box covers at least one cell.
func toCells(b core.Box, sx, sy float64) core.Rect {
	x0 := int(math.Floor(b.Pos.X * sx))
	y0 := int(math.Floor(b.Pos.Y * sy))
	x1 := int(math.Floor(b.Right() * sx))
	y1 := int(math.Floor(b.Bottom() * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}
