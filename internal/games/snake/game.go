// Package snake is the reference simulation engine: a snake on an n×n grid of
// linearly indexed cells, with a single reward cell and a score.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/loop"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

// Mode selects what happens at the grid edge.
type Mode string

const (
	ModeWrap  Mode = "wrap"  // Leaving one edge re-enters on the opposite edge
	ModeWalls Mode = "walls" // Leaving the grid loses the game
)

// Game implements the snake simulation.
type Game struct {
	mode Mode
	size int
	rng  *rand.Rand
	tick uint64

	// Snake state
	body      []int          // Head at index 0
	direction core.Direction // Requested direction for the next move
	moved     core.Direction // Direction of the last move

	reward    int
	hasReward bool

	status    core.Status
	hasStatus bool
	score     int
}

// Compile-time check that Game satisfies the controller's engine interface.
var _ loop.Engine = (*Game)(nil)

func init() {
	registry.Register(string(ModeWrap), "Classic (wrap-around edges)", func(p loop.EngineParams) loop.Engine {
		return New(ModeWrap, p)
	})
	registry.Register(string(ModeWalls), "Walled (edges are deadly)", func(p loop.EngineParams) loop.Engine {
		return New(ModeWalls, p)
	})
}

// New creates a game on a p.Size grid. The body starts at p.InitialHead and
// extends p.InitialLength-1 cells to the left, wrapping within the head's row.
// The snake faces right and no status is set.
func New(mode Mode, p loop.EngineParams) *Game {
	g := &Game{
		mode:      mode,
		size:      p.Size,
		rng:       rand.New(rand.NewSource(p.Seed)),
		direction: core.DirRight,
		moved:     core.DirRight,
	}
	g.initSnake(p.InitialHead, p.InitialLength)
	g.spawnReward()
	return g
}

// initSnake lays out the initial body from the head leftwards.
func (g *Game) initSnake(head, length int) {
	if g.size <= 0 || !core.InGrid(head, g.size) {
		return
	}
	length = core.Clamp(length, 0, g.size)

	row, col := core.Cell(head, g.size)
	g.body = make([]int, 0, length)
	for i := range length {
		c := ((col-i)%g.size + g.size) % g.size
		g.body = append(g.body, core.Index(row, c, g.size))
	}
}

// spawnReward places the reward on a random free cell.
// When no cell is free the reward is removed.
func (g *Game) spawnReward() {
	var free []int
	for i := 0; i < g.size*g.size; i++ {
		if !g.isSnakeAt(i) {
			free = append(free, i)
		}
	}

	if len(free) == 0 {
		g.reward, g.hasReward = 0, false
		return
	}
	g.reward = free[g.rng.Intn(len(free))]
	g.hasReward = true
}

// isSnakeAt checks if the snake occupies the given cell.
func (g *Game) isSnakeAt(cell int) bool {
	for _, seg := range g.body {
		if seg == cell {
			return true
		}
	}
	return false
}

// Size returns the grid dimension.
func (g *Game) Size() int {
	return g.size
}

// BodyView returns the live body slice. Callers must copy it before the next
// Step.
func (g *Game) BodyView() []int {
	return g.body
}

// RewardCell returns the reward cell, if any.
func (g *Game) RewardCell() (int, bool) {
	return g.reward, g.hasReward
}

// Status returns the current status; false means none is set.
func (g *Game) Status() (core.Status, bool) {
	return g.status, g.hasStatus
}

// Score returns the number of rewards eaten.
func (g *Game) Score() int {
	return g.score
}

// SetStatus sets the status. core.StatusIdle clears it.
func (g *Game) SetStatus(s core.Status) {
	if s == core.StatusIdle {
		g.status, g.hasStatus = core.StatusIdle, false
		return
	}
	g.status, g.hasStatus = s, true
}

// SetDirection buffers a direction for the next move.
// Reversing onto the last moved direction is ignored.
func (g *Game) SetDirection(d core.Direction) {
	if d == g.moved.Opposite() {
		return
	}
	g.direction = d
}

// Step moves the snake one cell. It does nothing unless the game is running.
func (g *Game) Step() {
	if !g.hasStatus || g.status != core.StatusRunning || len(g.body) == 0 {
		return
	}
	g.tick++

	next, ok := g.nextCell(g.body[0], g.direction)
	if !ok {
		g.SetStatus(core.StatusLost)
		return
	}
	g.moved = g.direction

	// Shift the body forward, remembering the tail for growth
	tail := g.body[len(g.body)-1]
	copy(g.body[1:], g.body[:len(g.body)-1])
	g.body[0] = next

	for _, seg := range g.body[1:] {
		if seg == next {
			g.SetStatus(core.StatusLost)
			return
		}
	}

	if g.hasReward && next == g.reward {
		g.body = append(g.body, tail)
		g.score++
		g.spawnReward()
		if !g.hasReward {
			g.SetStatus(core.StatusWon)
		}
	}
}

// nextCell returns the cell one move from cell in direction d.
// In walls mode it reports false when the move leaves the grid.
func (g *Game) nextCell(cell int, d core.Direction) (int, bool) {
	n := g.size
	row, col := core.Cell(cell, n)

	switch d {
	case core.DirRight:
		col++
	case core.DirLeft:
		col--
	case core.DirUp:
		row--
	case core.DirDown:
		row++
	}

	if row < 0 || row >= n || col < 0 || col >= n {
		if g.mode == ModeWalls {
			return 0, false
		}
		row = (row + n) % n
		col = (col + n) % n
	}
	return core.Index(row, col, n), true
}

// Tick returns the number of moves made.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Direction returns the direction requested for the next move.
func (g *Game) Direction() core.Direction {
	return g.direction
}
