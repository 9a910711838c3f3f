package loop

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/input"
	"github.com/vovakirdan/gridsnake/internal/lifecycle"
	"github.com/vovakirdan/gridsnake/internal/render"
	"github.com/vovakirdan/gridsnake/internal/snapshot"
)

// DefaultInterval is the tick period used when none is configured.
const DefaultInterval = 250 * time.Millisecond

// commandBuffer bounds the number of queued direction commands.
const commandBuffer = 16

// Options wire a controller to its collaborators.
type Options struct {
	Interval  time.Duration // Tick period; DefaultInterval if zero
	Renderer  *render.Renderer
	Canvas    render.Canvas
	Panel     render.Panel
	Scheduler Scheduler
	Logger    *log.Logger // Discards output if nil
}

// Controller owns the engine, the live loop handle and the lifecycle phase.
// Its methods are meant to be called from a single goroutine; only Enqueue
// is safe to call concurrently.
type Controller struct {
	newEngine EngineFactory
	params    EngineParams
	builds    int64 // Engines built so far; offsets the seed on reset

	engine Engine
	reader *snapshot.Reader

	renderer *render.Renderer
	canvas   render.Canvas
	panel    render.Panel

	sched    Scheduler
	interval time.Duration
	loop     LoopHandle // Live handle, zero when stopped
	issued   LoopHandle // Last handle handed out

	phase    lifecycle.Phase
	commands chan core.Command
	last     core.Snapshot
	ticks    uint64
	logger   *log.Logger
}

// New creates a controller in the idle phase with a fresh engine and no
// running loop.
func New(factory EngineFactory, params EngineParams, opts Options) *Controller {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	c := &Controller{
		newEngine: factory,
		params:    params,
		renderer:  opts.Renderer,
		canvas:    opts.Canvas,
		panel:     opts.Panel,
		sched:     opts.Scheduler,
		interval:  opts.Interval,
		phase:     lifecycle.PhaseIdle,
		commands:  make(chan core.Command, commandBuffer),
		logger:    opts.Logger,
	}
	c.buildEngine()
	c.panel.SetButton(lifecycle.ButtonLabel(c.phase))
	return c
}

// buildEngine replaces the engine and its reader.
func (c *Controller) buildEngine() {
	p := c.params
	p.Seed += c.builds
	c.builds++

	c.engine = c.newEngine(p)
	c.reader = snapshot.NewReader(c.engine)
	c.last = c.reader.Read()
}

// SetSurface replaces the renderer and canvas used by later draws, for
// example after the terminal is resized.
func (c *Controller) SetSurface(r *render.Renderer, canvas render.Canvas) {
	c.renderer = r
	c.canvas = canvas
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() lifecycle.Phase {
	return c.phase
}

// Handle returns the live loop handle, or zero if no loop is running.
func (c *Controller) Handle() LoopHandle {
	return c.loop
}

// Live reports whether h is the live loop handle.
func (c *Controller) Live(h LoopHandle) bool {
	return h != 0 && h == c.loop
}

// Interval returns the tick period.
func (c *Controller) Interval() time.Duration {
	return c.interval
}

// Engine returns the current engine.
func (c *Controller) Engine() Engine {
	return c.engine
}

// Snapshot returns the snapshot most recently drawn.
func (c *Controller) Snapshot() core.Snapshot {
	return c.last
}

// Ticks returns the number of ticks processed since construction.
func (c *Controller) Ticks() uint64 {
	return c.ticks
}

// Press handles the control button. What it does depends on the phase:
// start when idle, stop when running, reset after a win or loss.
func (c *Controller) Press() lifecycle.Action {
	action := lifecycle.ControlAction(c.phase)
	switch action {
	case lifecycle.ActionStart:
		c.start()
	case lifecycle.ActionStop:
		c.stop()
	case lifecycle.ActionReset:
		c.Reset()
	}
	return action
}

// start moves Idle to Running and makes sure the loop is ticking.
func (c *Controller) start() {
	c.engine.SetStatus(core.StatusRunning)
	c.setPhase(lifecycle.PhaseRunning)
	c.startLoop()
}

// stop moves Running back to Idle. The loop keeps ticking so the idle
// frame stays on screen; only a win or loss cancels it.
func (c *Controller) stop() {
	c.engine.SetStatus(core.StatusIdle)
	c.setPhase(lifecycle.PhaseIdle)
}

// Reset discards the engine, builds a new one with the same parameters and
// replaces the loop with a fresh one. Commands queued for the old engine
// are dropped.
func (c *Controller) Reset() {
	c.cancelLoop()
	c.discardCommands()
	c.buildEngine()
	c.engine.SetStatus(core.StatusIdle)
	c.setPhase(lifecycle.PhaseIdle)
	c.startLoop()
}

// Enqueue queues a direction command for the engine. When the queue is full
// the oldest command is dropped.
func (c *Controller) Enqueue(d core.Direction) {
	cmd := core.Command{Dir: d}
	for {
		select {
		case c.commands <- cmd:
			return
		default:
		}
		select {
		case <-c.commands:
		default:
		}
	}
}

// HandleKey translates a key and applies the resulting direction at once.
func (c *Controller) HandleKey(key string) core.Direction {
	d := input.Translate(key)
	if !input.IsMovementKey(key) {
		c.logger.Debug("unbound key steers to fallback", "key", key, "dir", d)
	}
	c.Enqueue(d)
	c.drain()
	return d
}

// drain applies every queued command to the engine.
func (c *Controller) drain() {
	for {
		select {
		case cmd := <-c.commands:
			c.engine.SetDirection(cmd.Dir)
		default:
			return
		}
	}
}

// discardCommands empties the command queue without applying it.
func (c *Controller) discardCommands() {
	for {
		select {
		case <-c.commands:
		default:
			return
		}
	}
}

// Tick runs one loop iteration for handle h: apply queued input, read a
// snapshot, draw it, re-derive the phase and, unless the game just ended,
// step the engine. Ticks for a handle that is not live are ignored.
// Tick reports whether the tick ran.
func (c *Controller) Tick(h LoopHandle) bool {
	if !c.Live(h) {
		c.logger.Debug("ignoring stale tick", "handle", h, "live", c.loop)
		return false
	}
	c.ticks++

	c.drain()
	snap := c.Draw()
	c.observe(snap.Status)

	if !c.phase.Terminal() {
		c.engine.Step()
	}
	return true
}

// Draw renders the current engine state without advancing it and returns
// the snapshot that was drawn.
func (c *Controller) Draw() core.Snapshot {
	c.last = c.reader.Read()
	c.renderer.Render(c.canvas, c.panel, c.last)
	return c.last
}

// observe reconciles the phase with the engine status.
func (c *Controller) observe(s core.Status) {
	next := lifecycle.FromStatus(s)
	if next == c.phase {
		return
	}
	if next.Terminal() {
		c.cancelLoop()
	}
	c.setPhase(next)
}

// setPhase records a phase change and updates the button label.
func (c *Controller) setPhase(p lifecycle.Phase) {
	if p != c.phase {
		c.logger.Info("phase changed", "from", c.phase, "to", p, "score", c.engine.Score())
	}
	c.phase = p
	c.panel.SetButton(lifecycle.ButtonLabel(p))
}

// startLoop schedules a new loop unless one is already live.
func (c *Controller) startLoop() {
	if c.loop != 0 {
		return
	}
	c.issued++
	c.loop = c.issued
	c.sched.Start(c.loop, c.interval)
	c.logger.Debug("loop started", "handle", c.loop, "interval", c.interval)
}

// cancelLoop stops the live loop. It is a no-op when none is running.
func (c *Controller) cancelLoop() {
	if c.loop == 0 {
		return
	}
	c.sched.Stop(c.loop)
	c.logger.Debug("loop cancelled", "handle", c.loop)
	c.loop = 0
}
