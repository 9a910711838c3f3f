package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/gridsnake/internal/loop"
)

func TestSchedulerStartFlush(t *testing.T) {
	s := NewScheduler()
	h := loop.LoopHandle(3)

	if s.Flush() != nil {
		t.Fatal("empty scheduler should flush nil")
	}

	s.Start(h, time.Millisecond)
	if !s.Running(h) {
		t.Error("started loop should be running")
	}

	cmd := s.Flush()
	if cmd == nil {
		t.Fatal("Start should queue a tick")
	}
	msg, ok := cmd().(TickMsg)
	if !ok {
		t.Fatalf("expected TickMsg, got %T", msg)
	}
	if msg.Handle != h {
		t.Errorf("tick handle = %d, expected %d", msg.Handle, h)
	}

	if s.Flush() != nil {
		t.Error("Flush should drain the queue")
	}
}

func TestSchedulerRearm(t *testing.T) {
	s := NewScheduler()
	h := loop.LoopHandle(1)
	s.Start(h, time.Millisecond)
	s.Flush()

	s.Rearm(h)
	if s.Flush() == nil {
		t.Error("Rearm should queue a tick for a running loop")
	}

	s.Stop(h)
	s.Stop(h)
	s.Rearm(h)
	if s.Flush() != nil {
		t.Error("Rearm should do nothing after Stop")
	}
	if s.Running(h) {
		t.Error("stopped loop should not be running")
	}
}
