// Package snapshot reads a read-only view of engine state once per tick.
package snapshot

import (
	"slices"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Source is the read side of the simulation engine.
type Source interface {
	Size() int
	BodyView() []int
	RewardCell() (int, bool)
	Status() (core.Status, bool)
	Score() int
}

// Reader takes snapshots of one engine.
// The grid size is read once at construction; everything else is read fresh.
type Reader struct {
	src  Source
	size int
}

// NewReader creates a reader bound to src.
func NewReader(src Source) *Reader {
	return &Reader{src: src, size: src.Size()}
}

// Size returns the grid size captured at construction.
func (r *Reader) Size() int {
	return r.size
}

// Read returns the current state. The body is copied out of the engine's
// borrowed view so later engine steps cannot change the snapshot.
func (r *Reader) Read() core.Snapshot {
	reward, hasReward := r.src.RewardCell()
	return core.Snapshot{
		Size:      r.size,
		Body:      slices.Clone(r.src.BodyView()),
		Reward:    reward,
		HasReward: hasReward,
		Status:    core.NormalizeStatus(r.src.Status()),
		Score:     r.src.Score(),
	}
}
