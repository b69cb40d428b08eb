package game

import "fmt"

// Cell is fixed once mines are placed.
type Cell struct {
	Mine     bool
	Adjacent uint8
}

type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

func (board *Board) index(p Point) int {
	return p.Y*board.width + p.X
}

func (board *Board) point(idx int) Point {
	return Point{X: idx % board.width, Y: idx / board.width}
}

func (board *Board) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < board.width && p.Y < board.height
}

// CellAt returns the cell at p, and false when p is off the board.
func (board *Board) CellAt(p Point) (Cell, bool) {
	if !board.InBounds(p) {
		return Cell{}, false
	}
	return board.cells[board.index(p)], true
}

func (board *Board) IsRevealed(p Point) bool {
	return board.InBounds(p) && board.revealed[board.index(p)]
}

func (board *Board) FlagAt(p Point) FlagState {
	if !board.InBounds(p) {
		return NoFlag
	}
	return board.flags[board.index(p)]
}

// Neighbors returns the up to eight in-bounds neighbours of p.
func (board *Board) Neighbors(p Point) []Point {
	neighbors := make([]Point, 0, len(neighborOffsets))
	for _, offset := range neighborOffsets {
		if n := p.Add(offset); board.InBounds(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

func (board *Board) neighborIndexes(idx int) []int {
	neighbors := board.Neighbors(board.point(idx))
	out := make([]int, len(neighbors))
	for i, n := range neighbors {
		out[i] = board.index(n)
	}
	return out
}

// serialize encodes one cell for board snapshots.
func (board *Board) serialize(idx int) byte {
	cell := board.cells[idx]
	flag := board.flags[idx]
	switch {
	case cell.Mine:
		switch {
		case board.losingMine == idx:
			return '*'
		case flag == Flag:
			return 'F'
		default:
			return 'O'
		}
	case flag == Flag:
		return 'f'
	case board.revealed[idx]:
		if cell.Adjacent == 0 {
			return '.'
		}
		return '0' + cell.Adjacent
	case flag == Question:
		return '?'
	default:
		return '#'
	}
}
