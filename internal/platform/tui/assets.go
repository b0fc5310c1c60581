package tui

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/bricker/internal/config"
	"github.com/vovakirdan/bricker/internal/core"
)

// ErrMissingAsset is returned for an asset path with no configured glyph.
var ErrMissingAsset = errors.New("asset not configured")

// Assets resolves asset paths to terminal sprites from the config's assets table.
type Assets struct {
	table map[string]config.AssetConfig
}

// NewAssets creates an asset loader over the given table.
func NewAssets(table map[string]config.AssetConfig) *Assets {
	return &Assets{table: table}
}

// ReadImage returns the sprite configured for path.
func (a *Assets) ReadImage(path string) (core.Sprite, error) {
	ac, ok := a.table[path]
	if !ok {
		return core.Sprite{}, fmt.Errorf("assets: %s: %w", path, ErrMissingAsset)
	}

	glyph, size := utf8.DecodeRuneInString(ac.Glyph)
	if size == 0 || glyph == utf8.RuneError {
		return core.Sprite{}, fmt.Errorf("assets: %s: invalid glyph %q", path, ac.Glyph)
	}

	color := core.ColorDefault
	if ac.Color != "" {
		c, ok := core.ParseColor(ac.Color)
		if !ok {
			return core.Sprite{}, fmt.Errorf("assets: %s: unknown color %q", path, ac.Color)
		}
		color = c
	}

	return core.Sprite{Glyph: glyph, Color: color}, nil
}
