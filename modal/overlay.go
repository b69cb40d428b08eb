// Package modal holds the overlay dialogs. At most one overlay is active and
// while it is, it receives all input.
package modal

import (
	"time"

	"github.com/they4kman/tsweep/config"
)

// InvalidFlashDuration is how long a rejected custom field stays marked.
const InvalidFlashDuration = 600 * time.Millisecond

type Kind int

const (
	None Kind = iota
	Difficulty
	CustomInput
	Options
	Help
	Records
	About
	Win
	Loss
)

var kindNames = map[Kind]string{
	None:        "none",
	Difficulty:  "difficulty",
	CustomInput: "custom",
	Options:     "options",
	Help:        "help",
	Records:     "records",
	About:       "about",
	Win:         "win",
	Loss:        "loss",
}

func (kind Kind) String() string {
	return kindNames[kind]
}

// Settings are the toggles edited by the options overlay.
type Settings struct {
	ShowIndicator    bool
	UseQuestionMarks bool
	ASCIIIcons       bool
}

func (s Settings) get(i int) bool {
	switch i {
	case 0:
		return s.ShowIndicator
	case 1:
		return s.UseQuestionMarks
	default:
		return s.ASCIIIcons
	}
}

func (s *Settings) toggle(i int) {
	switch i {
	case 0:
		s.ShowIndicator = !s.ShowIndicator
	case 1:
		s.UseQuestionMarks = !s.UseQuestionMarks
	case 2:
		s.ASCIIIcons = !s.ASCIIIcons
	}
}

// Values lists the toggles in display order.
func (s Settings) Values() [3]bool {
	return [3]bool{s.get(0), s.get(1), s.get(2)}
}

// Result is the outcome shown by the win and loss banners.
type Result struct {
	Level     config.Level
	Seconds   uint64
	NewRecord bool
}

type overlay interface {
	kind() Kind
}

type difficultyOverlay struct {
	focus int
	// index to return to when leaving custom input
	current int
	custom  [3]int
}

type customOverlay struct {
	parent  *difficultyOverlay
	fields  [3]string
	focus   int
	invalid *invalidField
}

type invalidField struct {
	field config.CustomField
	at    time.Time
}

type optionsOverlay struct {
	focus    int
	settings Settings
}

type infoOverlay struct {
	which Kind
}

type resultOverlay struct {
	won    bool
	result Result
}

func (*difficultyOverlay) kind() Kind { return Difficulty }
func (*customOverlay) kind() Kind     { return CustomInput }
func (*optionsOverlay) kind() Kind    { return Options }
func (o *infoOverlay) kind() Kind     { return o.which }

func (o *resultOverlay) kind() Kind {
	if o.won {
		return Win
	}
	return Loss
}
