// Package tui connects the session to a tcell terminal screen.
package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/they4kman/tsweep/input"
)

var keys = map[tcell.Key]input.Key{
	tcell.KeyEnter:      input.KeyEnter,
	tcell.KeyEscape:     input.KeyEsc,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyBacktab:    input.KeyBacktab,
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
	tcell.KeyUp:         input.KeyUp,
	tcell.KeyDown:       input.KeyDown,
	tcell.KeyLeft:       input.KeyLeft,
	tcell.KeyRight:      input.KeyRight,
	tcell.KeyF1:         input.KeyF1,
	tcell.KeyF2:         input.KeyF2,
	tcell.KeyF4:         input.KeyF4,
	tcell.KeyF5:         input.KeyF5,
	tcell.KeyF7:         input.KeyF7,
	tcell.KeyF9:         input.KeyF9,
	tcell.KeyCtrlO:      input.KeyCtrlO,
}

var buttons = []struct {
	mask   tcell.ButtonMask
	button input.Button
}{
	{tcell.Button1, input.Primary},
	{tcell.Button2, input.Secondary},
}

// Source reads events from a tcell screen. tcell reports key presses only,
// so key releases are left to the gesture tracker's timer.
type Source struct {
	screen tcell.Screen
	log    *logrus.Entry

	events   chan tcell.Event
	pollDone chan struct{}

	// button mask of the previous mouse event
	buttons tcell.ButtonMask
}

func NewSource(screen tcell.Screen, log *logrus.Entry) *Source {
	src := &Source{
		screen:   screen,
		log:      log,
		events:   make(chan tcell.Event, 64),
		pollDone: make(chan struct{}),
	}
	go src.pollEvents()
	return src
}

// pollEvents reads events until the screen is finalized, when PollEvent
// returns nil.
func (src *Source) pollEvents() {
	defer close(src.pollDone)
	for {
		ev := src.screen.PollEvent()
		if ev == nil {
			close(src.events)
			return
		}
		src.events <- ev
	}
}

// Done is closed once the screen has been finalized.
func (src *Source) Done() <-chan struct{} {
	return src.pollDone
}

func (src *Source) SupportsKeyRelease() bool {
	return false
}

// Poll waits up to timeout for an event, then drains whatever else is
// already queued.
func (src *Source) Poll(timeout time.Duration) []input.Event {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	var out []input.Event
	select {
	case ev, ok := <-src.events:
		if !ok {
			return nil
		}
		out = append(out, src.translate(ev)...)
	case <-timer.C:
		return nil
	}

	for {
		select {
		case ev, ok := <-src.events:
			if !ok {
				return out
			}
			out = append(out, src.translate(ev)...)
		default:
			return out
		}
	}
}

func (src *Source) translate(ev tcell.Event) []input.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			return []input.Event{input.Char(ev.Rune())}
		}
		if key, ok := keys[ev.Key()]; ok {
			return []input.Event{input.Press(key)}
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		return src.translateMouse(col, row, ev.Buttons())

	case *tcell.EventResize:
		src.screen.Sync()
		width, height := ev.Size()
		src.log.WithFields(logrus.Fields{"width": width, "height": height}).Debug("Resized")
		return []input.Event{{Kind: input.Resize}}
	}
	return nil
}

// translateMouse turns button mask changes into presses and releases; an
// event without changes is a move.
func (src *Source) translateMouse(col, row int, mask tcell.ButtonMask) []input.Event {
	prev := src.buttons
	src.buttons = mask

	var out []input.Event
	for _, b := range buttons {
		pressed := mask&b.mask != 0
		wasPressed := prev&b.mask != 0
		switch {
		case pressed && !wasPressed:
			out = append(out, input.Down(b.button, col, row))
		case !pressed && wasPressed:
			out = append(out, input.Up(b.button, col, row))
		}
	}
	if len(out) == 0 {
		out = append(out, input.Move(col, row))
	}
	return out
}
