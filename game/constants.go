package game

import "time"

type FlagState uint8
type BoardState int

const (
	NoFlag FlagState = iota
	Flag
	Question
)

const (
	Ongoing BoardState = iota
	Won
	Lost
)

func (state BoardState) String() string {
	switch state {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "ongoing"
	}
}

// FlashDuration is how long a failed chord highlights its cell.
const FlashDuration = 350 * time.Millisecond

var neighborOffsets = [8]Point{
	{-1, -1},
	{0, -1},
	{1, -1},
	{1, 0},
	{1, 1},
	{0, 1},
	{-1, 1},
	{-1, 0},
}
