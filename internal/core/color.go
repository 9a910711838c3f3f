package core

// Paint names a fill or stroke role on the drawing surface.
// The palette that maps paints to concrete colors lives in the render layer.
type Paint uint8

const (
	PaintBackground Paint = iota
	PaintGrid
	PaintBody
	PaintHead
	PaintReward
	PaintRewardHalo
)

// String returns the paint name.
func (p Paint) String() string {
	switch p {
	case PaintBackground:
		return "background"
	case PaintGrid:
		return "grid"
	case PaintBody:
		return "body"
	case PaintHead:
		return "head"
	case PaintReward:
		return "reward"
	case PaintRewardHalo:
		return "reward_halo"
	default:
		return "unknown"
	}
}
