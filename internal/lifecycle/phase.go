// Package lifecycle defines the game phases and the state-dependent meaning of
// the single control button.
package lifecycle

import "github.com/vovakirdan/gridsnake/internal/core"

// Phase is the controller's view of where the game is.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseWon
	PhaseLost
)

// String returns the lower-case phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "idle"
	}
}

// Terminal reports whether the phase ends the game.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// IdleLabel is shown in place of a phase name while idle.
const IdleLabel = "waiting for player..."

// Label returns the status text shown for the phase.
func (p Phase) Label() string {
	if p == PhaseIdle {
		return IdleLabel
	}
	return p.String()
}

// FromStatus derives the phase from a normalized engine status.
func FromStatus(s core.Status) Phase {
	switch s {
	case core.StatusRunning:
		return PhaseRunning
	case core.StatusWon:
		return PhaseWon
	case core.StatusLost:
		return PhaseLost
	default:
		return PhaseIdle
	}
}

// Action is what pressing the control button does.
type Action int

const (
	ActionStart Action = iota
	ActionStop
	ActionReset
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionStop:
		return "stop"
	case ActionReset:
		return "reset"
	default:
		return "unknown"
	}
}

// ControlAction returns the action the control button triggers in phase p:
// start when idle, stop when running, reset once the game has ended.
func ControlAction(p Phase) Action {
	switch p {
	case PhaseRunning:
		return ActionStop
	case PhaseWon, PhaseLost:
		return ActionReset
	default:
		return ActionStart
	}
}

// ButtonLabel returns the control button caption for phase p.
func ButtonLabel(p Phase) string {
	switch ControlAction(p) {
	case ActionStop:
		return "STOP"
	case ActionReset:
		return "RESET"
	default:
		return "START"
	}
}
