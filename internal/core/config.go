package core

import "time"

// RuntimeConfig contains configuration passed to frontends at start-up.
type RuntimeConfig struct {
	ScreenW      int           // Terminal width in characters (TUI only)
	ScreenH      int           // Terminal height in characters (TUI only)
	TickInterval time.Duration // Pause between simulation ticks
	Seed         int64         // RNG seed for deterministic gameplay
	MaxTicks     int           // Stop after this many ticks (0 = unlimited, headless only)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 10 * time.Millisecond,
		Seed:         0, // 0 means use current time
	}
}

// TickRate returns the number of ticks per second for the configured interval.
func (c RuntimeConfig) TickRate() int {
	if c.TickInterval <= 0 {
		return 100
	}
	rate := int(time.Second / c.TickInterval)
	if rate < 1 {
		return 1
	}
	return rate
}

// GameState is the summary a frontend needs after each tick.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Lives remaining
	GameOver bool // Won or lost, waiting for the final click
	Closed   bool // Final click received, frontend should exit
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
