package game

import (
	"math/rand"
	"time"
)

type BoardConfig struct {
	Width, Height int // in number of cells
	NumMines      int

	// Seed for mine placement; zero picks a time based seed
	Seed int64
	// Clock used for the game timer; defaults to time.Now
	Now func() time.Time

	// Fixed mine positions placed on the first reveal instead of a random
	// layout. The safe first click is not enforced for these.
	Mines []Point
}

type Board struct {
	width, height int
	numMines      int

	cells    []Cell
	revealed []bool
	flags    []FlagState
	cursor   Point

	state         BoardState
	numFlags      int
	safeRemaining int
	losingMine    int

	// started is set once mines are placed; timing while the clock runs
	started, timing bool
	startTime       time.Time
	elapsed         time.Duration

	seed  int64
	rand  *rand.Rand
	now   func() time.Time
	fixed []Point
}

func NewBoard(config BoardConfig) *Board {
	width := max(config.Width, 1)
	height := max(config.Height, 1)
	numCells := width * height

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	now := config.Now
	if now == nil {
		now = time.Now
	}

	return &Board{
		width:      width,
		height:     height,
		numMines:   min(max(config.NumMines, 0), numCells-1),
		cells:      make([]Cell, numCells),
		revealed:   make([]bool, numCells),
		flags:      make([]FlagState, numCells),
		state:      Ongoing,
		losingMine: -1,
		seed:       seed,
		rand:       rand.New(rand.NewSource(seed)),
		now:        now,
		fixed:      config.Mines,
	}
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) Height() int {
	return board.height
}

func (board *Board) NumCells() int {
	return board.width * board.height
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) Seed() int64 {
	return board.seed
}

// NextSeed derives the seed of the following game from this board's source.
func (board *Board) NextSeed() int64 {
	return board.rand.Int63()
}

func (board *Board) State() BoardState {
	return board.state
}

func (board *Board) Started() bool {
	return board.started
}

func (board *Board) CanPlay() bool {
	return board.state == Ongoing
}

func (board *Board) Cursor() Point {
	return board.cursor
}

// LosingMine is the mine that ended the game, if one was hit directly.
func (board *Board) LosingMine() (Point, bool) {
	if board.losingMine < 0 {
		return Point{}, false
	}
	return board.point(board.losingMine), true
}

// Elapsed is the running time while the game is in progress, the final time
// once it has ended and zero before the first reveal.
func (board *Board) Elapsed() time.Duration {
	if board.timing {
		return board.now().Sub(board.startTime)
	}
	return board.elapsed
}

// RemainingMines is the display counter; it goes negative with too many flags.
func (board *Board) RemainingMines() int {
	return board.numMines - board.numFlags
}

func (board *Board) SetCursor(p Point) {
	board.cursor = Point{
		X: min(max(p.X, 0), board.width-1),
		Y: min(max(p.Y, 0), board.height-1),
	}
}

func (board *Board) StepCursor(dx, dy int) {
	board.SetCursor(board.cursor.Add(Point{X: dx, Y: dy}))
}

// Reveal opens the cell at p. The first reveal of a board places the mines
// around it and starts the timer.
func (board *Board) Reveal(p Point) {
	if !board.CanPlay() || !board.InBounds(p) {
		return
	}
	idx := board.index(p)
	if board.revealed[idx] || board.flags[idx] == Flag {
		return
	}

	if !board.started {
		board.placeMines(idx)
		board.started = true
		board.timing = true
		board.startTime = board.now()
	}

	board.reveal(idx)
}

func (board *Board) reveal(idx int) {
	if board.cells[idx].Mine {
		board.revealed[idx] = true
		board.setFlag(idx, NoFlag)
		board.lose(idx)
		return
	}

	board.flood(idx)

	if board.safeRemaining == 0 {
		board.win()
	}
}

func (board *Board) markRevealed(idx int) {
	board.revealed[idx] = true
	board.setFlag(idx, NoFlag)
	if !board.cells[idx].Mine {
		board.safeRemaining--
	}
}

// ToggleFlag cycles the mark on an unrevealed cell: none and flag, or none,
// flag and question when question marks are enabled.
func (board *Board) ToggleFlag(p Point, useQuestionMarks bool) {
	if !board.CanPlay() || !board.InBounds(p) {
		return
	}
	idx := board.index(p)
	if board.revealed[idx] {
		return
	}

	next := NoFlag
	switch board.flags[idx] {
	case NoFlag:
		next = Flag
	case Flag:
		if useQuestionMarks {
			next = Question
		}
	}
	board.setFlag(idx, next)
}

func (board *Board) setFlag(idx int, flag FlagState) {
	if board.flags[idx] == Flag {
		board.numFlags--
	}
	if flag == Flag {
		board.numFlags++
	}
	board.flags[idx] = flag
}

// RevealAllMines exposes every mine for display after a loss.
func (board *Board) RevealAllMines() {
	for idx, cell := range board.cells {
		if cell.Mine && !board.revealed[idx] {
			board.revealed[idx] = true
			board.setFlag(idx, NoFlag)
		}
	}
}

// WrongFlags lists flagged cells that hold no mine.
func (board *Board) WrongFlags() []Point {
	var wrong []Point
	for idx, flag := range board.flags {
		if flag == Flag && !board.cells[idx].Mine {
			wrong = append(wrong, board.point(idx))
		}
	}
	return wrong
}

func (board *Board) placeMines(avoid int) {
	numCells := len(board.cells)

	if board.fixed != nil {
		for _, p := range board.fixed {
			if board.InBounds(p) {
				board.cells[board.index(p)].Mine = true
			}
		}
	} else {
		// Store cell indexes, to shuffle later and fill mines
		cellIndexes := make([]int, 0, numCells-1)
		for idx := 0; idx < numCells; idx++ {
			if idx != avoid {
				cellIndexes = append(cellIndexes, idx)
			}
		}
		board.rand.Shuffle(len(cellIndexes), func(i, j int) {
			cellIndexes[i], cellIndexes[j] = cellIndexes[j], cellIndexes[i]
		})
		for _, idx := range cellIndexes[:min(board.numMines, len(cellIndexes))] {
			board.cells[idx].Mine = true
		}
	}

	placed := 0
	for idx := range board.cells {
		if !board.cells[idx].Mine {
			continue
		}
		placed++
		for _, n := range board.neighborIndexes(idx) {
			board.cells[n].Adjacent++
		}
	}
	board.safeRemaining = numCells - placed
}

func (board *Board) stopTimer() {
	if board.timing {
		board.elapsed = board.now().Sub(board.startTime)
		board.timing = false
	}
}

func (board *Board) win() {
	for idx, cell := range board.cells {
		if cell.Mine {
			board.setFlag(idx, Flag)
		}
	}
	board.stopTimer()
	board.state = Won
}

func (board *Board) lose(idx int) {
	board.losingMine = idx
	board.stopTimer()
	board.state = Lost
}
