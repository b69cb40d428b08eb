package session

import (
	"time"

	"github.com/they4kman/tsweep/config"
	"github.com/they4kman/tsweep/game"
	"github.com/they4kman/tsweep/modal"
)

// Frame is everything the renderer needs for one draw. Board must only be
// read.
type Frame struct {
	Now    time.Time
	Board  *game.Board
	Config config.Config
	Modal  modal.View

	Menu        []string
	MenuHovered int // -1 for none
	MenuPressed int // -1 for none
	ExitHovered bool
	ExitPressed bool

	// Cell highlights, nil when unset
	Flash   *game.Point
	Pressed *game.Point
	Chord   *game.Point
}

func (s *Session) Frame(now time.Time) Frame {
	frame := Frame{
		Now:         now,
		Board:       s.board,
		Config:      *s.config,
		Modal:       s.modal.View(now),
		Menu:        MenuLabels(),
		MenuHovered: s.menu.hovered,
		MenuPressed: s.menuPressed(now),
		ExitHovered: s.exit.hovered,
		ExitPressed: s.exit.pressed,
	}

	if s.flash.Active(now) {
		cell := s.flash.Cell
		frame.Flash = &cell
	}
	if cell, ok := s.tracker.PressedCell(); ok {
		frame.Pressed = &cell
	}
	if cell, ok := s.tracker.ChordCell(); ok {
		frame.Chord = &cell
	}
	return frame
}
