package game

import "time"

type ChordKind int

const (
	// ChordIgnored: the target is unrevealed, off the board or the game is over
	ChordIgnored ChordKind = iota
	// ChordFlash: flag count differs from the adjacency; board unchanged
	ChordFlash
	// ChordMisflag: flag count matched but a flag sits on a safe cell
	ChordMisflag
	// ChordOpened: unflagged neighbours were revealed
	ChordOpened
)

// Flash marks a cell for a short highlight after a rejected chord.
type Flash struct {
	Cell Point
	At   time.Time
}

// Active reports whether the flash is still visible at now.
func (flash Flash) Active(now time.Time) bool {
	return !flash.At.IsZero() && now.Sub(flash.At) < FlashDuration
}

type ChordResult struct {
	Kind  ChordKind
	Flash Flash
}

// ResolveChord opens the neighbours of a revealed number once exactly that
// many of them are flagged.
func ResolveChord(board *Board, p Point) ChordResult {
	if !board.CanPlay() || !board.IsRevealed(p) {
		return ChordResult{Kind: ChordIgnored}
	}
	cell, _ := board.CellAt(p)
	neighbors := board.Neighbors(p)

	flagged := 0
	misflagged := false
	for _, n := range neighbors {
		if board.FlagAt(n) != Flag {
			continue
		}
		flagged++
		if c, _ := board.CellAt(n); !c.Mine {
			misflagged = true
		}
	}

	if flagged != int(cell.Adjacent) {
		return ChordResult{Kind: ChordFlash, Flash: Flash{Cell: p, At: board.now()}}
	}

	if misflagged {
		board.RevealAllMines()
		board.stopTimer()
		board.state = Lost
		return ChordResult{Kind: ChordMisflag}
	}

	for _, n := range neighbors {
		if !board.CanPlay() {
			break
		}
		idx := board.index(n)
		if board.revealed[idx] || board.flags[idx] == Flag {
			continue
		}
		board.reveal(idx)
	}
	return ChordResult{Kind: ChordOpened}
}
