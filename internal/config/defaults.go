package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{
			Width:  40,
			Height: 20,
		},
		Speed: SnakeSpeed{
			Base:       8,
			Max:        20,
			MinDelayMS: 50,
			MaxDelayMS: 500,
		},
		Scoring: SnakeScoring{
			FoodPoints: 10,
			LevelEvery: 50,
		},
		PowerUps: SnakePowerUps{
			Enabled:         true,
			SpawnEveryTicks: 600,
			ItemTTLTicks:    300,
			ExtendSegments:  3,
			Durations: SnakeDurations{
				SpeedBoost:    300,
				SlowDown:      300,
				DoublePoints:  300,
				Invincibility: 200,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "snake", "snake_classic":
		return defaultSnakeYAML
	default:
		return nil
	}
}
