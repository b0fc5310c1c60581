// Package config provides YAML-based game configuration loading and
// difficulty presets for bricker.
package config

// BrickerConfig contains all configuration for a bricker run.
// Geometry is expressed in world units; the terminal scales the world to fit.
type BrickerConfig struct {
	Window     WindowConfig           `yaml:"window"`
	Bricks     BricksConfig           `yaml:"bricks"`
	Border     BorderConfig           `yaml:"border"`
	Ball       BallConfig             `yaml:"ball"`
	Paddle     PaddleConfig           `yaml:"paddle"`
	Lives      LivesConfig            `yaml:"lives"`
	Heart      HeartConfig            `yaml:"heart"`
	TickRate   int                    `yaml:"tick_rate"`
	Seed       int64                  `yaml:"seed"` // 0 = time based
	Difficulty DifficultyPreset       `yaml:"difficulty"`
	Audio      AudioConfig            `yaml:"audio"`
	Log        LogConfig              `yaml:"log"`
	Assets     map[string]AssetConfig `yaml:"assets"`
}

// WindowConfig defines the size of the world.
type WindowConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BricksConfig defines the brick grid.
type BricksConfig struct {
	PerRow int     `yaml:"per_row"`
	Rows   int     `yaml:"rows"`
	Height float64 `yaml:"height"`
	Gap    float64 `yaml:"gap"`
}

// BorderConfig defines the walls on the left, right and top edges.
type BorderConfig struct {
	Width float64 `yaml:"width"`
}

// BallConfig defines the main ball. Pucks derive their size from it.
type BallConfig struct {
	Size      float64 `yaml:"size"`
	Speed     float64 `yaml:"speed"`
	PuckRatio float64 `yaml:"puck_ratio"`
}

// PaddleConfig defines the main paddle and the extra paddle.
type PaddleConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Speed            float64 `yaml:"speed"`
	OffsetFromBottom float64 `yaml:"offset_from_bottom"`
	HitQuota         int     `yaml:"hit_quota"`
}

// LivesConfig defines the starting and maximum number of lives.
type LivesConfig struct {
	Initial int `yaml:"initial"`
	Max     int `yaml:"max"`
}

// HeartConfig defines the falling extra-life pickup.
type HeartConfig struct {
	Size      float64 `yaml:"size"`
	FallSpeed float64 `yaml:"fall_speed"`
}

// AudioConfig controls sound effects.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Required   bool    `yaml:"required"` // fail startup if the device cannot be opened
	Volume     float64 `yaml:"volume"`   // beep volume exponent, 0 = unchanged
	SampleRate int     `yaml:"sample_rate"`
}

// LogConfig controls the rotating log file.
type LogConfig struct {
	Path       string `yaml:"path"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// AssetConfig maps an asset path to the glyph and color used to draw it.
type AssetConfig struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}
