package core

// RuntimeConfig contains process-level settings passed to the platform layer.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for reward placement and the initial head
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// Status is the simulation status reported by the engine.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusWon
	StatusLost
)

// String returns the lower-case name of the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "idle"
	}
}

// NormalizeStatus folds an absent engine status into StatusIdle.
// Every reader of engine status goes through here so that "no status"
// and an explicit idle tag are never told apart.
func NormalizeStatus(s Status, ok bool) Status {
	if !ok {
		return StatusIdle
	}
	switch s {
	case StatusRunning, StatusWon, StatusLost:
		return s
	default:
		return StatusIdle
	}
}

// Snapshot is a read-only copy of simulation state taken once per tick.
type Snapshot struct {
	Size      int    // Grid dimension n (n×n cells)
	Body      []int  // Snake cells, head first; owned by the snapshot
	Reward    int    // Reward cell, valid only when HasReward
	HasReward bool   // Whether a reward is placed
	Status    Status // Normalized engine status
	Score     int    // Current score
}

// Head returns the head cell and whether the snake has one.
func (s Snapshot) Head() (int, bool) {
	if len(s.Body) == 0 {
		return 0, false
	}
	return s.Body[0], true
}
