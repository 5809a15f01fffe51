package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the hard-coded configuration used when no YAML
// source is usable.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Game: GameConfig{
			Variant: "classic",
			Tick:    100 * time.Millisecond,
		},
		Food: FoodConfig{
			PlacementBudget: 64,
		},
		Storage: StorageConfig{
			DB: "~/.snake/scores.db",
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
