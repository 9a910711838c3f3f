// Package core provides fundamental types and utilities for gridsnake.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// controller and renderer pure and testable.
package core

// Cell converts a linear cell index into its row and column on an n×n grid.
//
//	row = i / n, col = i % n
func Cell(i, n int) (row, col int) {
	return i / n, i % n
}

// Index converts a row and column back into a linear cell index.
// It is the inverse of Cell for any in-grid coordinate.
func Index(row, col, n int) int {
	return row*n + col
}

// InGrid reports whether i is a valid cell index on an n×n grid.
func InGrid(i, n int) bool {
	return n > 0 && i >= 0 && i < n*n
}

// Rect is an axis-aligned rectangle in surface pixels.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CellRect returns the pixel rectangle covered by cell i on an n×n grid
// whose cells are size pixels wide.
func CellRect(i, n int, size float64) Rect {
	row, col := Cell(i, n)
	return Rect{
		X: float64(col) * size,
		Y: float64(row) * size,
		W: size,
		H: size,
	}
}

// Inset shrinks the rectangle by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Expand grows the rectangle by d on every side.
func (r Rect) Expand(d float64) Rect {
	return r.Inset(-d)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
