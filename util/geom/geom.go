// Package geom maps terminal coordinates to board cells and hit-tests the
// rectangles produced by the renderer.
package geom

// Rect is a rectangle in terminal cells. A zero Rect contains nothing.
type Rect struct {
	X, Y          int
	Width, Height int
}

func R(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains is the hit test shared by hover and click handling.
func (r Rect) Contains(col, row int) bool {
	if r.Empty() {
		return false
	}
	return col >= r.X && col < r.X+r.Width && row >= r.Y && row < r.Y+r.Height
}

// Inner strips a one-cell border.
func (r Rect) Inner() Rect {
	if r.Width < 2 || r.Height < 2 {
		return Rect{X: r.X + 1, Y: r.Y + 1}
	}
	return Rect{X: r.X + 1, Y: r.Y + 1, Width: r.Width - 2, Height: r.Height - 2}
}

// Center places a width x height rectangle in the middle of r. Sizes larger
// than r are kept, anchored at r's origin.
func Center(width, height int, r Rect) Rect {
	return Rect{
		X:      r.X + max(r.Width-width, 0)/2,
		Y:      r.Y + max(r.Height-height, 0)/2,
		Width:  width,
		Height: height,
	}
}

// BottomCenter places a width x height rectangle horizontally centred on
// the bottom edge of r.
func BottomCenter(width, height int, r Rect) Rect {
	return Rect{
		X:      r.X + max(r.Width-width, 0)/2,
		Y:      r.Y + max(r.Height-height, 0),
		Width:  width,
		Height: height,
	}
}

// CellAt resolves a terminal position to a board cell. origin is the
// top-left of the cell area (inside any border), each cell spans cellWidth
// columns and one row. ok is false outside a width x height board.
func CellAt(col, row int, origin Rect, cellWidth, width, height int) (x, y int, ok bool) {
	if cellWidth <= 0 || origin.Empty() || !origin.Contains(col, row) {
		return 0, 0, false
	}
	x = (col - origin.X) / cellWidth
	y = row - origin.Y
	if x >= width || y >= height {
		return 0, 0, false
	}
	return x, y, true
}
