// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake modes.
package config

// SnakeConfig contains all configuration for the snake game modes.
type SnakeConfig struct {
	Grid     SnakeGrid     `yaml:"grid"`
	Speed    SnakeSpeed    `yaml:"speed"`
	Scoring  SnakeScoring  `yaml:"scoring"`
	PowerUps SnakePowerUps `yaml:"power_ups"`
}

// SnakeGrid defines the playfield dimensions in cells.
type SnakeGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeSpeed defines the movement speed range.
type SnakeSpeed struct {
	Base       int `yaml:"base"`         // Cells per second at level 1
	Max        int `yaml:"max"`          // Cap reached through level-ups
	MinDelayMS int `yaml:"min_delay_ms"` // Fastest allowed move interval
	MaxDelayMS int `yaml:"max_delay_ms"` // Slowest allowed move interval
}

// SnakeScoring defines point values and level progression.
type SnakeScoring struct {
	FoodPoints int `yaml:"food_points"`
	LevelEvery int `yaml:"level_every"` // Points per level
}

// SnakePowerUps defines power-up spawning and effect durations.
type SnakePowerUps struct {
	Enabled         bool           `yaml:"enabled"`
	SpawnEveryTicks int            `yaml:"spawn_every_ticks"`
	ItemTTLTicks    int            `yaml:"item_ttl_ticks"`
	ExtendSegments  int            `yaml:"extend_segments"`
	Durations       SnakeDurations `yaml:"durations"`
}

// SnakeDurations defines per-effect durations in ticks.
type SnakeDurations struct {
	SpeedBoost    int `yaml:"speed_boost"`
	SlowDown      int `yaml:"slow_down"`
	DoublePoints  int `yaml:"double_points"`
	Invincibility int `yaml:"invincibility"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplySnakePreset modifies the config based on a difficulty preset.
// Fixed pins the speed at its base value, disabling level scaling.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Base = 6
		cfg.PowerUps.SpawnEveryTicks = 450
	case DifficultyHard:
		cfg.Speed.Base = 10
		cfg.PowerUps.SpawnEveryTicks = 900
	case DifficultyFixed:
		cfg.Speed.Max = cfg.Speed.Base
	}
}
