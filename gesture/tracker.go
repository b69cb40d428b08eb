// Package gesture turns press, release and move primitives into board
// actions, emulating two-button chords with one pointer and one keyboard.
package gesture

import (
	"time"

	"github.com/they4kman/tsweep/game"
	"github.com/they4kman/tsweep/input"
	"github.com/they4kman/tsweep/util/geom"
)

// ReleaseDelay is how long after a key press the release is synthesised on
// terminals that never report key releases.
const ReleaseDelay = 100 * time.Millisecond

type IntentKind int

const (
	Reveal IntentKind = iota
	Chord
	Flag
	MoveCursor
	StepCursor
)

// Intent is a board action for the session to apply. Cell is set for all
// kinds but StepCursor, which carries DX and DY.
type Intent struct {
	Kind   IntentKind
	Cell   game.Point
	DX, DY int
}

// Context is what the tracker needs from the session for one event.
type Context struct {
	Layout        geom.Layout
	Width, Height int
	Cursor        game.Point
	Now           time.Time
}

func (ctx Context) cellAt(col, row int) (game.Point, bool) {
	x, y, ok := geom.CellAt(col, row, ctx.Layout.Cells, geom.CellWidth, ctx.Width, ctx.Height)
	return game.Point{X: x, Y: y}, ok
}

type press struct {
	cell game.Point
	ok   bool
}

func pressAt(cell game.Point) press {
	return press{cell: cell, ok: true}
}

func (p press) at(cell game.Point) bool {
	return p.ok && p.cell == cell
}

type Tracker struct {
	primary   press
	secondary press
	armed     press

	// releaseDriven is set when the source reports key releases, or once
	// the first one arrives.
	releaseDriven bool
	pendingKey    input.Key
	releaseAt     time.Time
}

func NewTracker(supportsKeyRelease bool) *Tracker {
	return &Tracker{releaseDriven: supportsKeyRelease}
}

// Reset drops any press in progress and the release timer.
func (t *Tracker) Reset() {
	t.primary = press{}
	t.secondary = press{}
	t.armed = press{}
	t.stopTimer()
}

// PressedCell is the origin of a pending single press.
func (t *Tracker) PressedCell() (game.Point, bool) {
	if t.armed.ok {
		return game.Point{}, false
	}
	return t.primary.cell, t.primary.ok
}

// ChordCell is the origin of an armed chord.
func (t *Tracker) ChordCell() (game.Point, bool) {
	return t.armed.cell, t.armed.ok
}

func (t *Tracker) TimerActive() bool {
	return !t.releaseAt.IsZero()
}

func (t *Tracker) Handle(ev input.Event, ctx Context) []Intent {
	switch ev.Kind {
	case input.PointerMove:
		if cell, ok := ctx.cellAt(ev.Col, ev.Row); ok {
			return []Intent{{Kind: MoveCursor, Cell: cell}}
		}

	case input.ButtonDown:
		cell, ok := ctx.cellAt(ev.Col, ev.Row)
		if !ok {
			return nil
		}
		switch ev.Button {
		case input.Primary:
			t.pressPrimary(cell)
		case input.Secondary:
			t.pressSecondary(cell)
		}

	case input.ButtonUp:
		if intent, ok := t.releaseChord(); ok {
			return []Intent{intent}
		}
		cell, ok := ctx.cellAt(ev.Col, ev.Row)
		switch ev.Button {
		case input.Primary:
			origin := t.primary
			t.primary = press{}
			if ok && origin.at(cell) {
				return []Intent{{Kind: Reveal, Cell: cell}}
			}
		case input.Secondary:
			origin := t.secondary
			t.secondary = press{}
			if ok && origin.at(cell) {
				return []Intent{{Kind: Flag, Cell: cell}}
			}
		}

	case input.KeyPress:
		return t.keyDown(ev, ctx)

	case input.KeyRelease:
		if ev.Key != input.KeySpace && ev.Key != input.KeyEnter {
			return nil
		}
		t.releaseDriven = true
		t.stopTimer()
		return t.keyRelease(ev.Key, ctx.Cursor)
	}
	return nil
}

// Tick synthesises the key release once the timer started by a key press
// has run out. The release lands on the current cursor.
func (t *Tracker) Tick(now time.Time, cursor game.Point) []Intent {
	if !t.TimerActive() || now.Before(t.releaseAt) {
		return nil
	}
	key := t.pendingKey
	t.stopTimer()
	return t.keyRelease(key, cursor)
}

func (t *Tracker) keyDown(ev input.Event, ctx Context) []Intent {
	switch {
	case ev.Key == input.KeySpace:
		t.pressPrimary(ctx.Cursor)
		t.startTimer(ev.Key, ctx.Now)
	case ev.Key == input.KeyEnter:
		t.armed = pressAt(ctx.Cursor)
		t.startTimer(ev.Key, ctx.Now)
	case ev.IsRune('f', 'F'):
		return []Intent{{Kind: Flag, Cell: ctx.Cursor}}
	case ev.Key == input.KeyUp:
		return []Intent{{Kind: StepCursor, DY: -1}}
	case ev.Key == input.KeyDown:
		return []Intent{{Kind: StepCursor, DY: 1}}
	case ev.Key == input.KeyLeft:
		return []Intent{{Kind: StepCursor, DX: -1}}
	case ev.Key == input.KeyRight:
		return []Intent{{Kind: StepCursor, DX: 1}}
	}
	return nil
}

func (t *Tracker) keyRelease(key input.Key, cursor game.Point) []Intent {
	if intent, ok := t.releaseChord(); ok {
		return []Intent{intent}
	}
	if key != input.KeySpace {
		return nil
	}
	origin := t.primary
	t.primary = press{}
	if origin.at(cursor) {
		return []Intent{{Kind: Reveal, Cell: cursor}}
	}
	return nil
}

func (t *Tracker) pressPrimary(cell game.Point) {
	t.primary = pressAt(cell)
	if t.secondary.at(cell) {
		t.armed = pressAt(cell)
	}
}

func (t *Tracker) pressSecondary(cell game.Point) {
	t.secondary = pressAt(cell)
	if t.primary.at(cell) {
		t.armed = pressAt(cell)
	}
}

// releaseChord fires an armed chord on any release, wherever it lands.
func (t *Tracker) releaseChord() (Intent, bool) {
	if !t.armed.ok {
		return Intent{}, false
	}
	cell := t.armed.cell
	t.primary = press{}
	t.secondary = press{}
	t.armed = press{}
	return Intent{Kind: Chord, Cell: cell}, true
}

func (t *Tracker) startTimer(key input.Key, now time.Time) {
	if t.releaseDriven {
		return
	}
	t.pendingKey = key
	t.releaseAt = now.Add(ReleaseDelay)
}

func (t *Tracker) stopTimer() {
	t.pendingKey = input.KeyNone
	t.releaseAt = time.Time{}
}
