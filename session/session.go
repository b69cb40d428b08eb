// Package session runs the game: it draws a frame, polls input, routes each
// event to the overlay, the menu or the gesture tracker, and applies the
// resulting board actions.
package session

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/they4kman/tsweep/config"
	"github.com/they4kman/tsweep/game"
	"github.com/they4kman/tsweep/gesture"
	"github.com/they4kman/tsweep/input"
	"github.com/they4kman/tsweep/modal"
	"github.com/they4kman/tsweep/util/geom"
)

// PollTimeout bounds each wait for input, so the clock and release timer
// keep moving without events.
const PollTimeout = 200 * time.Millisecond

// Renderer draws a frame and returns the rectangles it drew; input of the
// next frame is hit-tested against them.
type Renderer interface {
	Draw(frame Frame) geom.Layout
}

type ConfigStore interface {
	LoadOrCreate() *config.Config
	Save(config *config.Config)
}

type Options struct {
	// Seed of the first board; zero picks a time based seed. Later boards
	// derive their seed from the previous one.
	Seed int64
	// Directory where finished boards are exported; empty disables export
	SnapshotsDir string
	// Clock; defaults to time.Now
	Now func() time.Time
}

type Session struct {
	log   *logrus.Entry
	store ConfigStore

	config  *config.Config
	board   *game.Board
	tracker *gesture.Tracker
	modal   *modal.Controller
	layout  geom.Layout

	flash game.Flash
	menu  menuState
	exit  exitState
	ended bool
	quit  bool

	snapshotsDir string
	now          func() time.Time
}

// New loads the configuration and creates the first board.
func New(store ConfigStore, log *logrus.Entry, opts Options) *Session {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	s := &Session{
		log:          log,
		store:        store,
		config:       store.LoadOrCreate(),
		tracker:      gesture.NewTracker(false),
		modal:        modal.NewController(),
		menu:         menuState{hovered: -1, pressed: -1},
		snapshotsDir: opts.SnapshotsDir,
		now:          now,
	}
	s.startBoard(opts.Seed)
	return s
}

func (s *Session) Config() *config.Config {
	return s.config
}

func (s *Session) Board() *game.Board {
	return s.board
}

// Run loops until the player exits or ctx is done. The configuration is
// saved once more on the way out.
func (s *Session) Run(ctx context.Context, src input.Source, renderer Renderer) error {
	s.tracker = gesture.NewTracker(src.SupportsKeyRelease())
	defer func() {
		s.store.Save(s.config)
		s.log.Info("Exiting")
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.layout = renderer.Draw(s.Frame(s.now()))

		events := src.Poll(PollTimeout)
		if !s.Step(events, s.now()) {
			return nil
		}
	}
}

// Step applies a batch of events in order, then the release timer. It
// returns false once the player asked to exit.
func (s *Session) Step(events []input.Event, now time.Time) bool {
	for _, ev := range events {
		s.handle(ev, now)
		if s.quit {
			return false
		}
	}

	if !s.modal.IsOpen() {
		s.apply(s.tracker.Tick(now, s.board.Cursor()), now)
	}
	return !s.quit
}

func (s *Session) handle(ev input.Event, now time.Time) {
	if ev.Kind == input.Resize {
		return
	}

	if s.modal.IsOpen() {
		s.applyAction(s.modal.Handle(ev, s.layout, now))
		return
	}

	if s.handleMenu(ev, now) || s.handleExit(ev) {
		return
	}

	if ev.IsKey(input.KeyEsc) {
		s.quit = true
		return
	}
	if i, ok := menuIndexForKey(ev); ok {
		s.openMenu(i)
		return
	}

	s.apply(s.tracker.Handle(ev, s.gestureContext(now)), now)
}

func (s *Session) gestureContext(now time.Time) gesture.Context {
	return gesture.Context{
		Layout: s.layout,
		Width:  s.board.Width(),
		Height: s.board.Height(),
		Cursor: s.board.Cursor(),
		Now:    now,
	}
}

func (s *Session) apply(intents []gesture.Intent, now time.Time) {
	for _, intent := range intents {
		switch intent.Kind {
		case gesture.Reveal:
			s.board.Reveal(intent.Cell)
		case gesture.Chord:
			if result := game.ResolveChord(s.board, intent.Cell); result.Kind == game.ChordFlash {
				s.flash = result.Flash
			}
		case gesture.Flag:
			s.board.ToggleFlag(intent.Cell, s.config.UseQuestionMarks)
		case gesture.MoveCursor:
			s.board.SetCursor(intent.Cell)
		case gesture.StepCursor:
			s.board.StepCursor(intent.DX, intent.DY)
		}
		s.checkEnd(now)
	}
}

func (s *Session) applyAction(action modal.Action) {
	switch action.Kind {
	case modal.ApplyDifficulty:
		s.config.SetDifficulty(action.Difficulty)
		s.store.Save(s.config)
		s.newBoard()
	case modal.ApplyOptions:
		s.config.ShowIndicator = action.Settings.ShowIndicator
		s.config.UseQuestionMarks = action.Settings.UseQuestionMarks
		s.config.ASCIIIcons = action.Settings.ASCIIIcons
		s.store.Save(s.config)
	case modal.NewGame:
		s.newBoard()
	}
}

// checkEnd opens the result banner once the board is decided, storing an
// improved best time first.
func (s *Session) checkEnd(now time.Time) {
	if s.ended || s.board.CanPlay() {
		return
	}
	s.ended = true
	s.tracker.Reset()

	level := s.config.Difficulty
	result := modal.Result{Level: level, Seconds: uint64(s.board.Elapsed().Seconds())}

	if s.board.State() == game.Won {
		result.NewRecord = s.config.SetRecord(level, result.Seconds, now)
		if result.NewRecord {
			s.store.Save(s.config)
		}
		s.modal.OpenWin(result)
	} else {
		s.board.RevealAllMines()
		s.modal.OpenLoss(result)
	}

	s.log.WithFields(logrus.Fields{
		"outcome":    s.board.State(),
		"difficulty": level,
		"seconds":    result.Seconds,
		"new_record": result.NewRecord,
	}).Info("Game over")

	s.saveSnapshot(now)
}

func (s *Session) newBoard() {
	s.startBoard(s.board.NextSeed())
}

func (s *Session) startBoard(seed int64) {
	width, height, numMines := s.config.Current().Params()
	s.board = game.NewBoard(game.BoardConfig{
		Width:    width,
		Height:   height,
		NumMines: numMines,
		Seed:     seed,
		Now:      s.now,
	})
	s.tracker.Reset()
	s.flash = game.Flash{}
	s.ended = false

	s.log.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
		"mines":  s.board.NumMines(),
		"seed":   s.board.Seed(),
	}).Debug("New board")
}

func (s *Session) settings() modal.Settings {
	return modal.Settings{
		ShowIndicator:    s.config.ShowIndicator,
		UseQuestionMarks: s.config.UseQuestionMarks,
		ASCIIIcons:       s.config.ASCIIIcons,
	}
}
