package core

import "time"

// DefaultTickPeriod is the simulation cadence used when nothing else is
// configured.
const DefaultTickPeriod = 100 * time.Millisecond

// RuntimeConfig contains what a host passes to a game at start.
type RuntimeConfig struct {
	ScreenW    int           // Screen width in characters
	ScreenH    int           // Screen height in characters
	TickPeriod time.Duration // Time between simulation ticks
	Seed       int64         // RNG seed; 0 means the host picks one from the clock

	// FoodBudget is how many random draws the food placer tries before
	// scanning for a free cell.
	FoodBudget int
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickPeriod: DefaultTickPeriod,
		FoodBudget: 64,
	}
}

// GameState is the summary a host needs after each tick.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}
