package core

// RuntimeConfig is passed to a game when it starts.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 ticks.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Outcome is how a finished game ended.
type Outcome string

const (
	OutcomeNone Outcome = ""
	OutcomeWon  Outcome = "won"
	OutcomeLost Outcome = "lost"
)

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Score    int     // Coins collected
	GameOver bool    // The game has finished and waits for restart or quit
	Outcome  Outcome // Set once GameOver is true
	Paused   bool
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
}
