// Package input is the terminal-independent event model consumed by the
// session loop.
package input

import "time"

type Kind int

const (
	PointerMove Kind = iota
	ButtonDown
	ButtonUp
	KeyPress
	KeyRelease
	Resize
)

type Button int

const (
	NoButton Button = iota
	Primary
	Secondary
)

type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeySpace
	KeyEnter
	KeyEsc
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF1
	KeyF2
	KeyF4
	KeyF5
	KeyF7
	KeyF9
	KeyCtrlO
)

// Event is one input primitive. Col and Row are terminal cells and are set
// for pointer events; Rune is set for KeyRune.
type Event struct {
	Kind   Kind
	Col    int
	Row    int
	Button Button
	Key    Key
	Rune   rune
}

func Move(col, row int) Event {
	return Event{Kind: PointerMove, Col: col, Row: row}
}

func Down(button Button, col, row int) Event {
	return Event{Kind: ButtonDown, Button: button, Col: col, Row: row}
}

func Up(button Button, col, row int) Event {
	return Event{Kind: ButtonUp, Button: button, Col: col, Row: row}
}

func Press(key Key) Event {
	return Event{Kind: KeyPress, Key: key}
}

func Release(key Key) Event {
	return Event{Kind: KeyRelease, Key: key}
}

func Char(r rune) Event {
	if r == ' ' {
		return Press(KeySpace)
	}
	return Event{Kind: KeyPress, Key: KeyRune, Rune: r}
}

// IsKey reports a key press of k.
func (ev Event) IsKey(k Key) bool {
	return ev.Kind == KeyPress && ev.Key == k
}

// IsRune reports a key press of one of the given characters.
func (ev Event) IsRune(runes ...rune) bool {
	if ev.Kind != KeyPress || ev.Key != KeyRune {
		return false
	}
	for _, r := range runes {
		if ev.Rune == r {
			return true
		}
	}
	return false
}

// Source delivers events to the session loop.
type Source interface {
	// Poll blocks for at most timeout and returns the events received, in
	// order. An empty result means the timeout elapsed.
	Poll(timeout time.Duration) []Event
	// SupportsKeyRelease reports whether KeyRelease events are ever delivered.
	SupportsKeyRelease() bool
}
