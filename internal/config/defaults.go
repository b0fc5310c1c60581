package config

import (
	_ "embed"
)

//go:embed defaults/bricker.yaml
var defaultBrickerYAML []byte

// Asset paths the arena loads at startup.
const (
	AssetBrick      = "assets/brick.png"
	AssetBall       = "assets/ball.png"
	AssetPuck       = "assets/mockBall.png"
	AssetPaddle     = "assets/paddle.png"
	AssetHeart      = "assets/heart.png"
	AssetBorder     = "assets/border.png"
	AssetBackground = "assets/DARK_BG2_small.jpeg"
)

// DefaultBrickerConfig returns the hardcoded bricker configuration.
// It mirrors defaults/bricker.yaml and is used when the embedded file cannot be parsed.
func DefaultBrickerConfig() BrickerConfig {
	return BrickerConfig{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
		},
		Bricks: BricksConfig{
			PerRow: 8,
			Rows:   7,
			Height: 20,
			Gap:    5,
		},
		Border: BorderConfig{
			Width: 5,
		},
		Ball: BallConfig{
			Size:      20,
			Speed:     200,
			PuckRatio: 0.75,
		},
		Paddle: PaddleConfig{
			Width:            100,
			Height:           15,
			Speed:            400,
			OffsetFromBottom: 100,
			HitQuota:         4,
		},
		Lives: LivesConfig{
			Initial: 3,
			Max:     4,
		},
		Heart: HeartConfig{
			Size:      30,
			FallSpeed: 100,
		},
		TickRate:   60,
		Seed:       0,
		Difficulty: DifficultyNormal,
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  5,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   true,
		},
		Assets: map[string]AssetConfig{
			AssetBrick:      {Glyph: "▆", Color: "cyan"},
			AssetBall:       {Glyph: "●", Color: "bright_white"},
			AssetPuck:       {Glyph: "•", Color: "bright_yellow"},
			AssetPaddle:     {Glyph: "▀", Color: "bright_blue"},
			AssetHeart:      {Glyph: "♥", Color: "bright_red"},
			AssetBorder:     {Glyph: "│", Color: "gray"},
			AssetBackground: {Glyph: " ", Color: "default"},
		},
	}
}
