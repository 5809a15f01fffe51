// Package config provides YAML-based configuration loading for the snake
// host: board variant, tick period, food placement, storage and SSH server
// settings.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// SnakeConfig contains all host configuration.
type SnakeConfig struct {
	Game    GameConfig    `yaml:"game"`
	Food    FoodConfig    `yaml:"food"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
}

// GameConfig selects the board and pacing.
type GameConfig struct {
	Variant string        `yaml:"variant"`
	Tick    time.Duration `yaml:"tick"` // e.g. "100ms"
	Seed    int64         `yaml:"seed"` // 0 = time based
}

// FoodConfig tunes food placement.
type FoodConfig struct {
	// PlacementBudget is how many random draws are tried before scanning
	// the free cells.
	PlacementBudget int `yaml:"placement_budget"`
}

// StorageConfig defines where scores are kept.
type StorageConfig struct {
	DB string `yaml:"db"`
}

// ServerConfig defines SSH server parameters.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Validate checks that the configuration can drive a session.
func (c SnakeConfig) Validate() error {
	if c.Game.Variant == "" {
		return fmt.Errorf("%w: game.variant is empty", ErrInvalid)
	}
	if c.Game.Tick <= 0 {
		return fmt.Errorf("%w: game.tick must be positive, got %s", ErrInvalid, c.Game.Tick)
	}
	if c.Food.PlacementBudget < 0 {
		return fmt.Errorf("%w: food.placement_budget must not be negative, got %d", ErrInvalid, c.Food.PlacementBudget)
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("%w: server.idle_timeout must not be negative, got %s", ErrInvalid, c.Server.IdleTimeout)
	}
	return nil
}
