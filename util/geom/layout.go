package geom

// CellWidth is the number of terminal columns a board cell occupies.
const CellWidth = 2

// Layout is the set of rectangles produced by the last completed draw. Input
// of the next frame is interpreted against it, so a resize can mis-hit for
// one frame.
type Layout struct {
	Screen Rect

	Menu      Rect
	MenuItems []Rect

	// Cells is the board's cell area, inside its border.
	Cells  Rect
	Status Rect
	Exit   Rect

	// Overlay geometry, empty when no overlay was drawn.
	Modal  Rect
	Button Rect
	Items  []Rect
	Fields []Rect
}

// IndexAt returns the index of the first rectangle containing the position.
func IndexAt(rects []Rect, col, row int) (int, bool) {
	for i, r := range rects {
		if r.Contains(col, row) {
			return i, true
		}
	}
	return -1, false
}
