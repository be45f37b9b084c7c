package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to adapt to screen size and to convert durations into ticks.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TicksFor converts a duration in milliseconds to a whole number of ticks,
// rounding up so that a timer never fires early. Non-positive durations yield 0.
func (c RuntimeConfig) TicksFor(ms int) uint64 {
	if ms <= 0 {
		return 0
	}
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return uint64((ms*rate + 999) / 1000)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	Completed bool // Whether the level goal has been reached
	Paused    bool // Whether the simulation is suspended
}
