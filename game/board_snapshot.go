package game

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// BoardSnapshot is the exported record of a finished board.
type BoardSnapshot struct {
	Seed     int64  `yaml:"seed"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	NumMines int    `yaml:"mines"`
	Outcome  string `yaml:"outcome"`
	Seconds  uint64 `yaml:"seconds"`

	SerializedBoard string `yaml:"board"`
}

func (snapshot *BoardSnapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", errors.Wrap(err, "marshal board snapshot")
	}
	return string(out), nil
}

// Snapshot captures the board, one text row per board row:
//
//	F  flagged mine         O    unflagged mine
//	f  flag on a safe cell  *    the mine that was hit
//	.  revealed blank       1-8  revealed number
//	?  question mark        #    unrevealed safe cell
func (board *Board) Snapshot() *BoardSnapshot {
	rows := make([]string, board.height)
	row := make([]byte, board.width)
	for y := 0; y < board.height; y++ {
		for x := 0; x < board.width; x++ {
			row[x] = board.serialize(board.index(Point{X: x, Y: y}))
		}
		rows[y] = string(row)
	}

	return &BoardSnapshot{
		Seed:            board.seed,
		Width:           board.width,
		Height:          board.height,
		NumMines:        board.numMines,
		Outcome:         board.state.String(),
		Seconds:         uint64(board.Elapsed().Seconds()),
		SerializedBoard: strings.Join(rows, "\n"),
	}
}
