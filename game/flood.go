package game

import (
	"github.com/gammazero/deque"

	"github.com/they4kman/tsweep/util/collections"
)

// flood reveals start and, through zero-adjacency cells, the connected blank
// region plus its numbered border. start must not be a mine. Flagged cells
// are left closed.
func (board *Board) flood(start int) {
	var queue deque.Deque[int]
	visited := make(collections.Set[int])

	visited.Add(start)
	queue.PushBack(start)

	for queue.Len() > 0 {
		idx := queue.PopFront()
		board.markRevealed(idx)

		if board.cells[idx].Adjacent != 0 {
			continue
		}
		for _, neighbor := range board.neighborIndexes(idx) {
			if board.revealed[neighbor] || board.flags[neighbor] == Flag {
				continue
			}
			if visited.AddNew(neighbor) {
				queue.PushBack(neighbor)
			}
		}
	}
}
