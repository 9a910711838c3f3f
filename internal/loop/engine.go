// Package loop drives the game: it owns the simulation engine, the recurring
// tick, and the lifecycle phase, and ties them to the renderer each tick.
package loop

import "github.com/vovakirdan/gridsnake/internal/core"

// Engine is the authoritative simulation consumed by the controller.
// All calls are synchronous and return immediately.
type Engine interface {
	// Size returns the grid dimension n. It never changes for an engine.
	Size() int

	// BodyView returns the snake cells, head first. The slice is borrowed:
	// it is only valid until the next mutating call and must be copied.
	BodyView() []int

	// RewardCell returns the reward cell, or false when none is placed.
	RewardCell() (int, bool)

	// Status returns the current status, or false when no status is set.
	// An absent status means idle.
	Status() (core.Status, bool)

	// Score returns the current score.
	Score() int

	// SetStatus sets the status. core.StatusIdle clears it.
	SetStatus(s core.Status)

	// SetDirection requests a direction for the next step.
	SetDirection(d core.Direction)

	// Step advances the simulation by one tick.
	Step()
}

// EngineParams are the construction parameters of an engine.
type EngineParams struct {
	Size          int   // Grid dimension n
	InitialHead   int   // Linear index of the initial head cell
	InitialLength int   // Initial body length
	Seed          int64 // RNG seed for reward placement
}

// EngineFactory builds a fresh engine. The controller calls it once at
// construction and again on every reset.
type EngineFactory func(p EngineParams) Engine
