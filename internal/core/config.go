package core

// RuntimeConfig contains configuration passed to a game at initialization.
// Frontends use it to size their output; the simulation uses Seed for
// deterministic gap placement.
type RuntimeConfig struct {
	ScreenW  int   // Frontend width (terminal cells or pixels)
	ScreenH  int   // Frontend height (terminal cells or pixels)
	TickRate int   // Frontend ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState represents the current state of a game session.
type GameState struct {
	Score  int    // Pipes cleared since the last reset
	Best   int    // Highest score reached this session (memory only)
	Resets int    // Number of collision resets this session
	Ticks  uint64 // Simulated ticks this session
	Paused bool   // Whether the game is paused
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  GameState
	Scored int  // Pipes cleared during this tick
	Reset  bool // A collision reset the game during this tick
}

// Game is the contract between a simulation and the frontends that drive it.
// Implementations contain pure logic; the platform handles input mapping,
// timing and display.
type Game interface {
	// ID returns a short identifier used for file names and logs.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game state from scratch.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one frame of dt seconds.
	Step(in InputFrame, dt float64) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
