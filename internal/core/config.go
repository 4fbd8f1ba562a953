package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultTickRate is the simulation rate when none is configured.
const DefaultTickRate = 60

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal.
// A zero Seed is replaced by the platform layer.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// WithDefaults fills a non-positive tick rate and a zero seed.
// now supplies the seed, usually time.Now().UnixNano().
func (c RuntimeConfig) WithDefaults(now func() int64) RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.Seed == 0 && now != nil {
		c.Seed = now()
	}
	return c
}

// TickDuration is the simulated time of n ticks at the configured rate.
func (c RuntimeConfig) TickDuration(n uint64) time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Duration(n) * time.Second / time.Duration(rate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// RoundStats summarizes one finished run for the round history.
type RoundStats struct {
	Moves   int    // Swaps that produced a match
	Boards  int    // Boards dealt during the run
	Cleared int    // Pieces removed by matches
	Ticks   uint64 // Simulation ticks elapsed
}
