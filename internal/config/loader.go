package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/bricker/internal/core"
)

// EnvConfigPath names the environment variable holding an explicit config path.
const EnvConfigPath = "BRICKER_CONFIG"

// Load loads bricker configuration, applies the difficulty preset and validates the result.
// Search order: customPath -> ~/.bricker/configs/bricker.yaml -> ./configs/bricker.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
func Load(customPath string) (BrickerConfig, error) {
	cfg, err := read(customPath)
	if err != nil {
		return cfg, err
	}

	preset, err := ParsePreset(string(cfg.Difficulty))
	if err != nil {
		return cfg, err
	}
	cfg.Difficulty = preset
	ApplyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func read(customPath string) (BrickerConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultBrickerConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("bricker.yaml"); userCfgPath != "" {
		if cfg, ok := readOptional(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := readOptional(filepath.Join("configs", "bricker.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultBrickerConfig()
	if err := yaml.Unmarshal(defaultBrickerYAML, &cfg); err != nil {
		return DefaultBrickerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readOptional decodes a file that may not exist. Unreadable or malformed
// files are skipped so the next location in the search order is tried.
func readOptional(path string) (BrickerConfig, bool) {
	cfg := DefaultBrickerConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bricker", "configs", filename)
}

// DefaultLogPath returns ~/.bricker/logs/bricker.log, or a path in the temp dir.
func DefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "bricker.log")
	}
	return filepath.Join(home, ".bricker", "logs", "bricker.log")
}

// WithGrid overrides the brick grid dimensions. Zero values keep the configured value.
func (c BrickerConfig) WithGrid(perRow, rows int) BrickerConfig {
	if perRow > 0 {
		c.Bricks.PerRow = perRow
	}
	if rows > 0 {
		c.Bricks.Rows = rows
	}
	return c
}

// BrickWidth returns the width of one brick so that a row fills the space between the side borders.
func (c BrickerConfig) BrickWidth() float64 {
	n := float64(c.Bricks.PerRow)
	if n <= 0 {
		return 0
	}
	inner := c.Window.Width - 2*c.Border.Width
	return (inner - c.Bricks.Gap*(n-1)) / n
}

// PaddleY returns the top edge of the main paddle.
func (c BrickerConfig) PaddleY() float64 {
	return c.Window.Height - c.Paddle.OffsetFromBottom
}

// Validate rejects configurations that cannot produce a playable arena.
func (c BrickerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window must be positive, got %vx%v", c.Window.Width, c.Window.Height)
	check(c.Bricks.PerRow > 0, "bricks.per_row must be positive, got %d", c.Bricks.PerRow)
	check(c.Bricks.Rows > 0, "bricks.rows must be positive, got %d", c.Bricks.Rows)
	check(c.Bricks.Height > 0, "bricks.height must be positive, got %v", c.Bricks.Height)
	check(c.Bricks.Gap >= 0, "bricks.gap must not be negative, got %v", c.Bricks.Gap)
	check(c.Border.Width >= 0, "border.width must not be negative, got %v", c.Border.Width)
	check(c.Ball.Size > 0 && c.Ball.Speed > 0, "ball size and speed must be positive")
	check(c.Ball.PuckRatio > 0 && c.Ball.PuckRatio <= 1, "ball.puck_ratio must be in (0, 1], got %v", c.Ball.PuckRatio)
	check(c.Paddle.Width > 0 && c.Paddle.Height > 0, "paddle size must be positive")
	check(c.Paddle.Width < c.Window.Width-2*c.Border.Width, "paddle.width %v does not fit between borders", c.Paddle.Width)
	check(c.Paddle.Speed >= 0, "paddle.speed must not be negative")
	check(c.Paddle.HitQuota > 0, "paddle.hit_quota must be positive, got %d", c.Paddle.HitQuota)
	check(c.Lives.Max > 0, "lives.max must be positive, got %d", c.Lives.Max)
	check(c.Lives.Initial > 0 && c.Lives.Initial <= c.Lives.Max, "lives.initial must be in [1, %d], got %d", c.Lives.Max, c.Lives.Initial)
	check(c.Heart.Size > 0 && c.Heart.FallSpeed > 0, "heart size and fall_speed must be positive")
	check(c.TickRate > 0, "tick_rate must be positive, got %d", c.TickRate)

	if c.Bricks.PerRow > 0 {
		check(c.BrickWidth() > 0, "%d bricks per row do not fit in the window", c.Bricks.PerRow)
	}
	gridBottom := c.Border.Width + float64(c.Bricks.Rows)*(c.Bricks.Height+c.Bricks.Gap)
	check(gridBottom < c.PaddleY(), "%d brick rows reach the paddle", c.Bricks.Rows)
	check(c.PaddleY() > c.Window.Height/2 && c.PaddleY()+c.Paddle.Height <= c.Window.Height,
		"paddle.offset_from_bottom %v places the paddle outside the lower half", c.Paddle.OffsetFromBottom)

	for path, a := range c.Assets {
		check(a.Glyph != "", "assets[%s].glyph must not be empty", path)
		if _, ok := core.ParseColor(a.Color); !ok && a.Color != "" {
			errs = append(errs, fmt.Errorf("assets[%s]: unknown color %q", path, a.Color))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
