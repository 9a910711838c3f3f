package render

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpClear OpKind = iota
	OpLine
	OpFill
)

// Op is one recorded drawing operation.
type Op struct {
	Kind  OpKind
	Rect  core.Rect // Fill area, or line endpoints as (X, Y)-(W, H)
	Paint core.Paint
}

// String formats the operation for traces.
func (o Op) String() string {
	switch o.Kind {
	case OpClear:
		return "clear"
	case OpLine:
		return fmt.Sprintf("line %g,%g -> %g,%g", o.Rect.X, o.Rect.Y, o.Rect.W, o.Rect.H)
	default:
		return fmt.Sprintf("fill %s %g,%g %gx%g", o.Paint, o.Rect.X, o.Rect.Y, o.Rect.W, o.Rect.H)
	}
}

// Recorder is a Canvas and Panel that records what was drawn instead of
// rasterizing it. Clear does not drop earlier operations; use Reset.
type Recorder struct {
	Ops    []Op
	Status string
	Score  string
	Button string
}

// Clear records a clear operation.
func (r *Recorder) Clear() {
	r.Ops = append(r.Ops, Op{Kind: OpClear})
}

// StrokeLine records a line.
func (r *Recorder) StrokeLine(x0, y0, x1, y1 float64) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Rect: core.Rect{X: x0, Y: y0, W: x1, H: y1}, Paint: core.PaintGrid})
}

// FillRect records a fill.
func (r *Recorder) FillRect(rect core.Rect, p core.Paint) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Rect: rect, Paint: p})
}

// SetStatus records the status text.
func (r *Recorder) SetStatus(text string) { r.Status = text }

// SetScore records the score text.
func (r *Recorder) SetScore(text string) { r.Score = text }

// SetButton records the button label.
func (r *Recorder) SetButton(text string) { r.Button = text }

// Reset drops all recorded operations and text.
func (r *Recorder) Reset() {
	*r = Recorder{}
}

// Fills returns the recorded fills with the given paint.
func (r *Recorder) Fills(p core.Paint) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == OpFill && op.Paint == p {
			out = append(out, op)
		}
	}
	return out
}

// Count returns the number of recorded operations of kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Trace returns the recorded operations, one per line.
func (r *Recorder) Trace() string {
	var b strings.Builder
	for _, op := range r.Ops {
		b.WriteString(op.String())
		b.WriteByte('\n')
	}
	return b.String()
}
