// Package core provides fundamental types and utilities for the arcade
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// Game is the interface the platform drives each tick.
// Implementations contain pure logic with no terminal dependencies;
// the platform handles key mapping, timing and display.
type Game interface {
	// ID returns a unique identifier, used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides screen dimensions and the RNG seed.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one tick, draining the given
	// input events in arrival order first.
	Step(events []Event) StepResult

	// Resize informs the game of new screen dimensions without
	// resetting the simulation.
	Resize(w, h int)

	// Render draws the current game state into the screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
