package game

import (
	"strings"
	"testing"
	"time"
)

func TestSnapshotOfLostBoard(t *testing.T) {
	clock := newFakeClock()
	board := NewBoard(BoardConfig{
		Width: 5, Height: 2, NumMines: 2, Seed: 11,
		Mines: []Point{{X: 3, Y: 0}, {X: 3, Y: 1}},
		Now:   clock.now,
	})
	board.Reveal(Point{X: 0, Y: 0})
	board.ToggleFlag(Point{X: 3, Y: 1}, false)
	clock.advance(9 * time.Second)
	board.Reveal(Point{X: 3, Y: 0})

	snapshot := board.Snapshot()
	if snapshot.SerializedBoard != "..2*#\n..2F#" {
		t.Fatalf("unexpected board %q", snapshot.SerializedBoard)
	}
	if snapshot.Outcome != "lost" || snapshot.Seconds != 9 || snapshot.Seed != 11 {
		t.Fatalf("unexpected snapshot %+v", snapshot)
	}

	out, err := snapshot.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"seed: 11", "outcome: lost", "width: 5", "mines: 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("serialized snapshot missing %q:\n%s", want, out)
		}
	}
}
