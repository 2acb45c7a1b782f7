package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic boards.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // Board seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// GameState is the platform-facing status of a running game.
type GameState struct {
	Score    int  // Opened safe cells this round
	GameOver bool // Round finished, won or lost
	Won      bool // Valid when GameOver is true
	Paused   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// GameResult summarizes one finished round for persistence. Produced by the
// game, consumed by the platform when the round ends.
type GameResult struct {
	Preset       string
	Rows         int
	Cols         int
	Mines        int
	Seed         int64
	Won          bool
	DurationSecs int
	CellsOpened  int
}
