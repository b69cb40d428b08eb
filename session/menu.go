package session

import (
	"time"

	"github.com/they4kman/tsweep/config"
	"github.com/they4kman/tsweep/input"
	"github.com/they4kman/tsweep/modal"
	"github.com/they4kman/tsweep/util/geom"
)

// MenuFeedback is how long a clicked menu item stays highlighted.
const MenuFeedback = 200 * time.Millisecond

type menuItem struct {
	label string
	keys  []input.Key
	open  func(s *Session)
}

var menu = []menuItem{
	{label: "F1 Help", keys: []input.Key{input.KeyF1}, open: func(s *Session) { s.openOverlay(func() { s.modal.OpenInfo(modal.Help) }) }},
	{label: "F2 New", keys: []input.Key{input.KeyF2}, open: func(s *Session) { s.newBoard() }},
	{label: "F4 Records", keys: []input.Key{input.KeyF4}, open: func(s *Session) { s.openOverlay(func() { s.modal.OpenInfo(modal.Records) }) }},
	{label: "F5 Difficulty", keys: []input.Key{input.KeyF5, input.KeyCtrlO}, open: func(s *Session) { s.openDifficulty() }},
	{label: "F7 Options", keys: []input.Key{input.KeyF7}, open: func(s *Session) { s.openOverlay(func() { s.modal.OpenOptions(s.settings()) }) }},
	{label: "F9 About", keys: []input.Key{input.KeyF9}, open: func(s *Session) { s.openOverlay(func() { s.modal.OpenInfo(modal.About) }) }},
}

// MenuLabels are the menu bar entries in drawing order.
func MenuLabels() []string {
	labels := make([]string, len(menu))
	for i, item := range menu {
		labels[i] = item.label
	}
	return labels
}

type menuState struct {
	hovered   int
	pressed   int
	pressedAt time.Time
}

type exitState struct {
	hovered, pressed bool
}

func menuIndexForKey(ev input.Event) (int, bool) {
	if ev.Kind != input.KeyPress {
		return -1, false
	}
	for i, item := range menu {
		for _, key := range item.keys {
			if ev.Key == key {
				return i, true
			}
		}
	}
	return -1, false
}

func (s *Session) openMenu(i int) {
	menu[i].open(s)
}

// openOverlay drops any press in progress before an overlay takes input.
func (s *Session) openOverlay(open func()) {
	s.tracker.Reset()
	s.exit = exitState{}
	open()
}

func (s *Session) openDifficulty() {
	c := s.config
	s.openOverlay(func() {
		s.modal.OpenDifficulty(c.Current(), config.CustomDifficulty(c.CustomW, c.CustomH, c.CustomN))
	})
}

// handleMenu consumes pointer moves and presses on the menu bar.
func (s *Session) handleMenu(ev input.Event, now time.Time) bool {
	if ev.Kind != input.PointerMove && ev.Kind != input.ButtonDown {
		return false
	}
	if !s.layout.Menu.Contains(ev.Col, ev.Row) {
		if ev.Kind == input.PointerMove {
			s.menu.hovered = -1
		}
		return false
	}

	i, ok := geom.IndexAt(s.layout.MenuItems, ev.Col, ev.Row)
	if !ok {
		i = -1
	}
	s.menu.hovered = i
	if ev.Kind == input.ButtonDown && ev.Button == input.Primary && ok {
		s.menu.pressed = i
		s.menu.pressedAt = now
		s.openMenu(i)
	}
	return true
}

// handleExit drives the status bar exit control: it needs a press and a
// release both on the control.
func (s *Session) handleExit(ev input.Event) bool {
	inside := s.layout.Exit.Contains(ev.Col, ev.Row)
	switch ev.Kind {
	case input.PointerMove:
		s.exit.hovered = inside
	case input.ButtonDown:
		if inside && ev.Button == input.Primary {
			s.exit.pressed = true
			return true
		}
	case input.ButtonUp:
		if s.exit.pressed {
			s.exit.pressed = false
			if inside {
				s.quit = true
			}
			return true
		}
	}
	return false
}

func (s *Session) menuPressed(now time.Time) int {
	if s.menu.pressed >= 0 && now.Sub(s.menu.pressedAt) < MenuFeedback {
		return s.menu.pressed
	}
	return -1
}
