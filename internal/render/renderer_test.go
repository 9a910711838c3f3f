package render

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/gridsnake/internal/core"
)

func testSnapshot() core.Snapshot {
	return core.Snapshot{
		Size:      10,
		Body:      []int{23, 22, 21},
		Reward:    57,
		HasReward: true,
		Status:    core.StatusRunning,
		Score:     7,
	}
}

func TestRenderOrder(t *testing.T) {
	r := New(DefaultOptions())
	rec := &Recorder{}

	r.Render(rec, rec, testSnapshot())

	// clear, 22 grid lines, 2 reward fills, 3 snake fills
	if len(rec.Ops) != 1+22+2+3 {
		t.Fatalf("expected 28 operations, got %d:\n%s", len(rec.Ops), rec.Trace())
	}
	if rec.Ops[0].Kind != OpClear {
		t.Errorf("first operation should be clear, got %v", rec.Ops[0])
	}
	for i := 1; i <= 22; i++ {
		if rec.Ops[i].Kind != OpLine {
			t.Errorf("operation %d should be a grid line, got %v", i, rec.Ops[i])
		}
	}
	if rec.Ops[23].Paint != core.PaintRewardHalo || rec.Ops[24].Paint != core.PaintReward {
		t.Errorf("reward should be halo then fill, got %v, %v", rec.Ops[23], rec.Ops[24])
	}
	if rec.Ops[25].Paint != core.PaintHead {
		t.Errorf("first snake fill should be the head, got %v", rec.Ops[25])
	}
}

func TestRenderGridLines(t *testing.T) {
	r := New(Options{CellSize: 75, RewardPadding: 0.35, RewardHalo: 0.15, ScoreDigits: 4})
	rec := &Recorder{}

	r.Render(rec, rec, core.Snapshot{Size: 10})

	if rec.Count(OpLine) != 22 {
		t.Fatalf("expected 22 grid lines, got %d", rec.Count(OpLine))
	}

	lines := rec.Ops[1:23]
	// Vertical lines first, 75px apart, spanning the full extent
	for i := 0; i <= 10; i++ {
		got := lines[i].Rect
		want := core.Rect{X: float64(75 * i), Y: 0, W: float64(75 * i), H: 750}
		if got != want {
			t.Errorf("vertical line %d = %+v, expected %+v", i, got, want)
		}
	}
	for i := 0; i <= 10; i++ {
		got := lines[11+i].Rect
		want := core.Rect{X: 0, Y: float64(75 * i), W: 750, H: float64(75 * i)}
		if got != want {
			t.Errorf("horizontal line %d = %+v, expected %+v", i, got, want)
		}
	}
}

func TestRenderHeadScenario(t *testing.T) {
	r := New(DefaultOptions())
	rec := &Recorder{}

	r.Render(rec, rec, testSnapshot())

	heads := rec.Fills(core.PaintHead)
	if len(heads) != 1 {
		t.Fatalf("expected exactly one head fill, got %d", len(heads))
	}
	// Cell 23 on a 10 grid is row 2, column 3
	want := core.NewRect(3*75, 2*75, 75, 75)
	if heads[0].Rect != want {
		t.Errorf("head drawn at %+v, expected %+v", heads[0].Rect, want)
	}

	body := rec.Fills(core.PaintBody)
	if len(body) != 2 {
		t.Fatalf("expected 2 body fills, got %d", len(body))
	}
	if body[0].Rect != core.NewRect(2*75, 2*75, 75, 75) {
		t.Errorf("first body cell drawn at %+v", body[0].Rect)
	}
}

func TestRenderRewardMarker(t *testing.T) {
	r := New(Options{CellSize: 100, RewardPadding: 0.35, RewardHalo: 0.15, ScoreDigits: 4})
	rec := &Recorder{}

	snap := core.Snapshot{Size: 10, Reward: 12, HasReward: true}
	r.Render(rec, rec, snap)

	halo := rec.Fills(core.PaintRewardHalo)
	fill := rec.Fills(core.PaintReward)
	if len(halo) != 1 || len(fill) != 1 {
		t.Fatalf("expected one halo and one fill, got %d and %d", len(halo), len(fill))
	}

	// Cell 12 is row 1, column 2: origin (200, 100); padding 35, size 30, halo 4.5
	wantInner := core.NewRect(235, 135, 30, 30)
	wantOuter := core.NewRect(230.5, 130.5, 39, 39)
	if !rectNear(fill[0].Rect, wantInner) {
		t.Errorf("inner reward = %+v, expected %+v", fill[0].Rect, wantInner)
	}
	if !rectNear(halo[0].Rect, wantOuter) {
		t.Errorf("outer reward = %+v, expected %+v", halo[0].Rect, wantOuter)
	}
}

func TestRenderAbsentReward(t *testing.T) {
	r := New(DefaultOptions())
	rec := &Recorder{}

	snap := testSnapshot()
	snap.HasReward = false
	r.Render(rec, rec, snap)

	if n := len(rec.Fills(core.PaintReward)) + len(rec.Fills(core.PaintRewardHalo)); n != 0 {
		t.Errorf("absent reward produced %d drawing operations", n)
	}
}

func TestRenderEmptyBody(t *testing.T) {
	r := New(DefaultOptions())
	rec := &Recorder{}

	r.Render(rec, rec, core.Snapshot{Size: 5})

	if n := len(rec.Fills(core.PaintHead)) + len(rec.Fills(core.PaintBody)); n != 0 {
		t.Errorf("empty body produced %d fills", n)
	}
}

func TestRenderIdempotent(t *testing.T) {
	r := New(DefaultOptions())
	snap := testSnapshot()
	bodyBefore := append([]int(nil), snap.Body...)

	first := &Recorder{}
	r.Render(first, first, snap)
	second := &Recorder{}
	r.Render(second, second, snap)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("rendering the same snapshot twice differed:\n%s\nvs\n%s", first.Trace(), second.Trace())
	}
	if !reflect.DeepEqual(snap.Body, bodyBefore) {
		t.Errorf("render mutated the snapshot body: %v", snap.Body)
	}
}

func TestRenderPanelText(t *testing.T) {
	tests := []struct {
		name   string
		status core.Status
		score  int
		text   string
		digits string
	}{
		{"idle", core.StatusIdle, 0, "waiting for player...", "0000"},
		{"running", core.StatusRunning, 7, "running", "0007"},
		{"won", core.StatusWon, 97, "won", "0097"},
		{"lost", core.StatusLost, 12345, "lost", "12345"},
	}

	r := New(DefaultOptions())
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := &Recorder{}
			r.Render(rec, rec, core.Snapshot{Size: 3, Status: tc.status, Score: tc.score})
			if rec.Status != tc.text {
				t.Errorf("status = %q, expected %q", rec.Status, tc.text)
			}
			if rec.Score != tc.digits {
				t.Errorf("score = %q, expected %q", rec.Score, tc.digits)
			}
		})
	}
}

func rectNear(a, b core.Rect) bool {
	const eps = 1e-9
	near := func(x, y float64) bool { return x-y < eps && y-x < eps }
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.W, b.W) && near(a.H, b.H)
}
