// Package tui provides the Bubble Tea integration for gridsnake.
// It handles the terminal UI loop, key bindings, and drawing the raster frame
// into the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/loop"
)

// TickMsg is sent to trigger a loop tick. Handle identifies the loop that
// scheduled it so ticks from a cancelled loop can be dropped.
type TickMsg struct {
	Handle loop.LoopHandle
	Time   time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick message for h
// after interval.
func tickCmd(h loop.LoopHandle, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Handle: h, Time: t}
	})
}

// Scheduler is a loop.Scheduler on top of Bubble Tea timers. A tea.Tick
// fires once, so each live loop is re-armed after every tick it delivers.
// Commands queue up until Flush hands them to the program.
type Scheduler struct {
	every   map[loop.LoopHandle]time.Duration
	pending []tea.Cmd
}

var _ loop.Scheduler = (*Scheduler)(nil)

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{every: make(map[loop.LoopHandle]time.Duration)}
}

// Start schedules the first tick of loop h.
func (s *Scheduler) Start(h loop.LoopHandle, every time.Duration) {
	s.every[h] = every
	s.pending = append(s.pending, tickCmd(h, every))
}

// Stop forgets loop h. A tick already in flight still arrives and is
// ignored by the controller.
func (s *Scheduler) Stop(h loop.LoopHandle) {
	delete(s.every, h)
}

// Rearm schedules the next tick of h if it is still running.
func (s *Scheduler) Rearm(h loop.LoopHandle) {
	if every, ok := s.every[h]; ok {
		s.pending = append(s.pending, tickCmd(h, every))
	}
}

// Running reports whether h has not been stopped.
func (s *Scheduler) Running(h loop.LoopHandle) bool {
	_, ok := s.every[h]
	return ok
}

// Flush returns the queued commands as one, or nil if there are none.
func (s *Scheduler) Flush() tea.Cmd {
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
