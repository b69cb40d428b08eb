package game

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func countMines(board *Board) int {
	n := 0
	for _, cell := range board.cells {
		if cell.Mine {
			n++
		}
	}
	return n
}

func countRevealed(board *Board) int {
	n := 0
	for _, revealed := range board.revealed {
		if revealed {
			n++
		}
	}
	return n
}

// wall puts a mine in every row of column x.
func wall(x, height int) []Point {
	mines := make([]Point, 0, height)
	for y := 0; y < height; y++ {
		mines = append(mines, Point{X: x, Y: y})
	}
	return mines
}

func TestFirstRevealPlacesMinesAvoidingTarget(t *testing.T) {
	target := Point{X: 4, Y: 4}
	for seed := int64(1); seed <= 25; seed++ {
		board := NewBoard(BoardConfig{Width: 9, Height: 9, NumMines: 10, Seed: seed})
		if board.Started() || countMines(board) != 0 {
			t.Fatalf("seed %d: mines placed before the first reveal", seed)
		}

		board.Reveal(target)

		if got := countMines(board); got != 10 {
			t.Fatalf("seed %d: expected 10 mines, got %d", seed, got)
		}
		if cell, _ := board.CellAt(target); cell.Mine {
			t.Fatalf("seed %d: mine placed under the first reveal", seed)
		}
		if board.State() == Lost {
			t.Fatalf("seed %d: first reveal lost the game", seed)
		}

		for y := 0; y < board.Height(); y++ {
			for x := 0; x < board.Width(); x++ {
				p := Point{X: x, Y: y}
				live := 0
				for _, n := range board.Neighbors(p) {
					if c, _ := board.CellAt(n); c.Mine {
						live++
					}
				}
				if cell, _ := board.CellAt(p); int(cell.Adjacent) != live {
					t.Fatalf("seed %d: adjacency at %s is %d, want %d", seed, p, cell.Adjacent, live)
				}
			}
		}
	}
}

func TestMineCountClamped(t *testing.T) {
	board := NewBoard(BoardConfig{Width: 3, Height: 3, NumMines: 20, Seed: 7})
	if board.NumMines() != 8 {
		t.Fatalf("expected mines clamped to 8, got %d", board.NumMines())
	}

	board.Reveal(Point{X: 1, Y: 1})
	if got := countMines(board); got != 8 {
		t.Fatalf("expected 8 mines, got %d", got)
	}
	if board.State() != Won {
		t.Fatalf("revealing the only safe cell should win, got %s", board.State())
	}
	if board.RemainingMines() != 0 {
		t.Fatalf("expected all mines auto-flagged, remaining %d", board.RemainingMines())
	}
}

func TestNewBoardClampsSize(t *testing.T) {
	board := NewBoard(BoardConfig{Width: 0, Height: -3, NumMines: -1})
	if board.Width() != 1 || board.Height() != 1 || board.NumMines() != 0 {
		t.Fatalf("unexpected board %dx%d with %d mines", board.Width(), board.Height(), board.NumMines())
	}
}

func TestFloodFillRegionAndBorder(t *testing.T) {
	board := NewBoard(BoardConfig{Width: 9, Height: 9, NumMines: 9, Mines: wall(4, 9)})
	board.Reveal(Point{X: 0, Y: 0})

	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			p := Point{X: x, Y: y}
			want := x < 4
			if board.IsRevealed(p) != want {
				t.Fatalf("revealed at %s = %v, want %v", p, board.IsRevealed(p), want)
			}
		}
	}
	if board.State() != Ongoing {
		t.Fatalf("expected ongoing, got %s", board.State())
	}

	before := countRevealed(board)
	board.Reveal(Point{X: 0, Y: 0})
	board.Reveal(Point{X: 3, Y: 5})
	if after := countRevealed(board); after != before {
		t.Fatalf("repeated reveal changed the board: %d -> %d", before, after)
	}
	if board.safeRemaining != 36 {
		t.Fatalf("expected 36 safe cells left, got %d", board.safeRemaining)
	}
}

func TestFloodFillSkipsFlags(t *testing.T) {
	board := NewBoard(BoardConfig{Width: 9, Height: 9, NumMines: 9, Mines: wall(4, 9)})
	flagged := Point{X: 2, Y: 2}
	board.ToggleFlag(flagged, false)

	board.Reveal(Point{X: 0, Y: 0})

	if board.IsRevealed(flagged) || board.FlagAt(flagged) != Flag {
		t.Fatalf("flood fill touched a flagged cell")
	}
	if got := countRevealed(board); got != 35 {
		t.Fatalf("expected 35 revealed cells, got %d", got)
	}
}

func TestFloodFillRandomBoards(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		board := NewBoard(BoardConfig{Width: 16, Height: 16, NumMines: 40, Seed: seed})
		start := Point{X: 8, Y: 8}
		board.Reveal(start)

		for idx, revealed := range board.revealed {
			p := board.point(idx)
			cell := board.cells[idx]
			if revealed && cell.Adjacent == 0 {
				for _, n := range board.Neighbors(p) {
					if !board.IsRevealed(n) {
						t.Fatalf("seed %d: blank %s has closed neighbour %s", seed, p, n)
					}
				}
			}
			if revealed && p != start {
				touchesBlank := false
				for _, n := range board.Neighbors(p) {
					if c, _ := board.CellAt(n); board.IsRevealed(n) && c.Adjacent == 0 {
						touchesBlank = true
					}
				}
				if !touchesBlank {
					t.Fatalf("seed %d: %s revealed outside the opened region", seed, p)
				}
			}
		}
	}
}

func TestBeginnerBlankOpening(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		board := NewBoard(BoardConfig{Width: 9, Height: 9, NumMines: 10, Seed: seed})
		target := Point{X: 4, Y: 4}
		board.Reveal(target)
		if cell, _ := board.CellAt(target); cell.Adjacent != 0 {
			continue
		}

		if countRevealed(board) < 9 {
			t.Fatalf("seed %d: blank opening revealed only %d cells", seed, countRevealed(board))
		}
		if board.State() != Ongoing {
			t.Fatalf("seed %d: expected ongoing after the opening, got %s", seed, board.State())
		}
		return
	}
	t.Fatalf("no seed produced a blank first reveal")
}

func TestRemainingMinesFlagRoundTrip(t *testing.T) {
	board := NewBoard(BoardConfig{Width: 9, Height: 9, NumMines: 10, Seed: 3})
	p := Point{X: 2, Y: 3}

	board.ToggleFlag(p, false)
	if board.RemainingMines() != 9 {
		t.Fatalf("expected 9 after flagging, got %d", board.RemainingMines())
	}
	board.ToggleFlag(p, false)
	if board.RemainingMines() != 10 || board.FlagAt(p) != NoFlag {
		t.Fatalf("two-state toggle did not round trip")
	}

	for x := 0; x < 9; x++ {
		board.ToggleFlag(Point{X: x, Y: 0}, false)
		board.ToggleFlag(Point{X: x, Y: 1}, false)
	}
	if board.RemainingMines() != -8 {
		t.Fatalf("expected counter to go negative, got %d", board.RemainingMines())
	}
}

func TestToggleFlagWithQuestionMarks(t *testing.T) {
	board := NewBoard(BoardConfig{Width: 9, Height: 9, NumMines: 10, Seed: 3})
	p := Point{X: 5, Y: 5}

	expected := []FlagState{Flag, Question, NoFlag}
	remaining := []int{9, 10, 10}
	for i, want := range expected {
		board.ToggleFlag(p, true)
		if board.FlagAt(p) != want {
			t.Fatalf("step %d: expected flag %d, got %d", i, want, board.FlagAt(p))
		}
		if board.RemainingMines() != remaining[i] {
			t.Fatalf("step %d: expected remaining %d, got %d", i, remaining[i], board.RemainingMines())
		}
	}
}

func TestQuestionCellIsRevealable(t *testing.T) {
	board := NewBoard(BoardConfig{Width: 9, Height: 9, NumMines: 9, Mines: wall(4, 9)})
	p := Point{X: 0, Y: 0}
	board.ToggleFlag(p, true)
	board.ToggleFlag(p, true)
	if board.FlagAt(p) != Question {
		t.Fatalf("expected question mark")
	}

	board.Reveal(p)
	if !board.IsRevealed(p) || board.FlagAt(p) != NoFlag {
		t.Fatalf("question cell should reveal and clear its mark")
	}
}

func TestFlaggedCellIsNotRevealed(t *testing.T) {
	board := NewBoard(BoardConfig{Width: 9, Height: 9, NumMines: 10, Seed: 1})
	p := Point{X: 1, Y: 1}
	board.ToggleFlag(p, false)
	board.Reveal(p)
	if board.IsRevealed(p) || board.Started() {
		t.Fatalf("reveal on a flagged cell should be a no-op")
	}
}

func TestToggleFlagOnRevealedCell(t *testing.T) {
	board := NewBoard(BoardConfig{Width: 9, Height: 9, NumMines: 9, Mines: wall(4, 9)})
	p := Point{X: 3, Y: 3}
	board.Reveal(p)
	board.ToggleFlag(p, false)
	if board.FlagAt(p) != NoFlag || board.RemainingMines() != 9 {
		t.Fatalf("flagging a revealed cell should be a no-op")
	}
}

func TestWinIsTerminal(t *testing.T) {
	clock := newFakeClock()
	mine := Point{X: 0, Y: 0}
	board := NewBoard(BoardConfig{Width: 9, Height: 9, NumMines: 1, Mines: []Point{mine}, Now: clock.now})

	board.Reveal(Point{X: 8, Y: 8})
	clock.advance(42 * time.Second)
	board.Reveal(Point{X: 8, Y: 8})

	// (8, 8) was the first reveal and flooded everything
	if board.State() != Won {
		t.Fatalf("expected win, got %s", board.State())
	}
	if board.FlagAt(mine) != Flag || board.RemainingMines() != 0 {
		t.Fatalf("mines should be auto-flagged on a win")
	}
	if board.Elapsed() != 0 {
		t.Fatalf("timer should stop at the win, got %s", board.Elapsed())
	}

	board.ToggleFlag(mine, false)
	board.Reveal(mine)
	if board.FlagAt(mine) != Flag || board.IsRevealed(mine) || board.State() != Won {
		t.Fatalf("flag and reveal must be no-ops after a win")
	}
}

func TestRevealMineLoses(t *testing.T) {
	clock := newFakeClock()
	board := NewBoard(BoardConfig{
		Width: 9, Height: 9, NumMines: 2,
		Mines: []Point{{X: 5, Y: 5}, {X: 7, Y: 7}},
		Now:   clock.now,
	})

	board.Reveal(Point{X: 0, Y: 0})
	clock.advance(12 * time.Second)
	if board.Elapsed() != 12*time.Second {
		t.Fatalf("expected 12s elapsed, got %s", board.Elapsed())
	}

	board.Reveal(Point{X: 5, Y: 5})
	clock.advance(5 * time.Second)

	if board.State() != Lost {
		t.Fatalf("expected loss, got %s", board.State())
	}
	if p, ok := board.LosingMine(); !ok || p != (Point{X: 5, Y: 5}) {
		t.Fatalf("losing mine = %v, %v", p, ok)
	}
	if board.Elapsed() != 12*time.Second {
		t.Fatalf("timer should stop at the loss, got %s", board.Elapsed())
	}

	board.RevealAllMines()
	if !board.IsRevealed(Point{X: 7, Y: 7}) {
		t.Fatalf("expected all mines revealed")
	}
}

func TestRevealAllMinesClearsFlags(t *testing.T) {
	board := NewBoard(BoardConfig{Width: 9, Height: 9, NumMines: 2, Mines: []Point{{X: 5, Y: 5}, {X: 7, Y: 7}}})
	board.Reveal(Point{X: 0, Y: 0})
	board.ToggleFlag(Point{X: 7, Y: 7}, false)
	board.Reveal(Point{X: 5, Y: 5})
	board.RevealAllMines()

	for idx, revealed := range board.revealed {
		if revealed && board.flags[idx] == Flag {
			t.Fatalf("revealed cell %s still flagged", board.point(idx))
		}
	}
}

func TestStepCursorClamps(t *testing.T) {
	board := NewBoard(BoardConfig{Width: 9, Height: 9, NumMines: 10})
	board.StepCursor(-1, -1)
	if board.Cursor() != (Point{}) {
		t.Fatalf("cursor left the board: %s", board.Cursor())
	}
	board.SetCursor(Point{X: 20, Y: 3})
	board.StepCursor(0, 1)
	if board.Cursor() != (Point{X: 8, Y: 4}) {
		t.Fatalf("unexpected cursor %s", board.Cursor())
	}
}
