package tui

import "github.com/vovakirdan/tui-platformer/internal/core"

// Game is what the platform runs. Games hold pure logic with no Bubble Tea
// dependency; the platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier, used in logs and screenshot names.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or restarts the game.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}
