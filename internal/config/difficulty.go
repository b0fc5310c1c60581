package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyPreset adjusts lives, paddle width and ball speed for a preset.
// Normal leaves the configured values untouched.
func ApplyPreset(cfg *BrickerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Lives.Initial = cfg.Lives.Max
		cfg.Paddle.Width *= 1.5
		cfg.Ball.Speed *= 0.75
	case DifficultyHard:
		cfg.Lives.Initial = max(1, cfg.Lives.Initial-1)
		cfg.Paddle.Width *= 0.7
		cfg.Ball.Speed *= 1.5
	}
}
