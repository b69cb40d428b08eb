package geom

import "testing"

func TestRectContainsEdges(t *testing.T) {
	r := R(2, 3, 4, 2)
	cases := []struct {
		col, row int
		want     bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 3, false},
		{1, 3, false},
		{2, 5, false},
		{2, 2, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.col, c.row); got != c.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", c.col, c.row, got, c.want)
		}
	}
	if (Rect{}).Contains(0, 0) {
		t.Errorf("zero rect should contain nothing")
	}
}

func TestCellAt(t *testing.T) {
	origin := R(10, 5, 18, 9)
	cases := []struct {
		col, row int
		x, y     int
		ok       bool
	}{
		{10, 5, 0, 0, true},
		{11, 5, 0, 0, true},
		{12, 5, 1, 0, true},
		{27, 13, 8, 8, true},
		{9, 5, 0, 0, false},
		{28, 5, 0, 0, false},
		{10, 14, 0, 0, false},
		{10, 4, 0, 0, false},
	}
	for _, c := range cases {
		x, y, ok := CellAt(c.col, c.row, origin, CellWidth, 9, 9)
		if ok != c.ok || (ok && (x != c.x || y != c.y)) {
			t.Errorf("CellAt(%d, %d) = (%d, %d, %v), want (%d, %d, %v)", c.col, c.row, x, y, ok, c.x, c.y, c.ok)
		}
	}
}

func TestCellAtWideOriginNarrowBoard(t *testing.T) {
	// The cell area may be wider than the board when a trailing pad column
	// is drawn; that column maps to nothing.
	origin := R(0, 0, 19, 9)
	if _, _, ok := CellAt(18, 0, origin, CellWidth, 9, 9); ok {
		t.Fatalf("pad column should not map to a cell")
	}
}

func TestCenter(t *testing.T) {
	got := Center(40, 10, R(0, 0, 80, 24))
	if got != R(20, 7, 40, 10) {
		t.Fatalf("Center = %+v", got)
	}
	got = BottomCenter(40, 8, R(0, 0, 80, 24))
	if got != R(20, 16, 40, 8) {
		t.Fatalf("BottomCenter = %+v", got)
	}
}

func TestIndexAt(t *testing.T) {
	rects := []Rect{R(0, 0, 2, 1), R(3, 0, 2, 1)}
	if i, ok := IndexAt(rects, 4, 0); !ok || i != 1 {
		t.Fatalf("IndexAt = %d, %v", i, ok)
	}
	if _, ok := IndexAt(rects, 2, 0); ok {
		t.Fatalf("gap between rects should not hit")
	}
}
