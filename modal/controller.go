package modal

import (
	"errors"
	"strconv"
	"time"

	"github.com/they4kman/tsweep/config"
	"github.com/they4kman/tsweep/input"
	"github.com/they4kman/tsweep/util/geom"
)

type ActionKind int

const (
	NoAction ActionKind = iota
	// ApplyDifficulty: replace the board with Action.Difficulty and persist it
	ApplyDifficulty
	// ApplyOptions: store Action.Settings and persist them
	ApplyOptions
	// NewGame: a result banner closed; start over at the current difficulty
	NewGame
	// Closed: the overlay closed without changes
	Closed
)

type Action struct {
	Kind       ActionKind
	Difficulty config.Difficulty
	Settings   Settings
}

type button struct {
	hovered, pressed bool
}

type Controller struct {
	active overlay
	button button
}

func NewController() *Controller {
	return &Controller{}
}

func (c *Controller) Active() Kind {
	if c.active == nil {
		return None
	}
	return c.active.kind()
}

func (c *Controller) IsOpen() bool {
	return c.active != nil
}

func (c *Controller) Close() {
	c.open(nil)
}

func (c *Controller) open(o overlay) {
	c.active = o
	c.button = button{}
}

// OpenDifficulty shows the difficulty list focused on the current level.
// custom prefills the custom input form.
func (c *Controller) OpenDifficulty(current, custom config.Difficulty) {
	c.open(&difficultyOverlay{
		focus:   current.Index(),
		current: current.Index(),
		custom:  [3]int{custom.Width, custom.Height, custom.NumMines},
	})
}

func (c *Controller) OpenOptions(settings Settings) {
	c.open(&optionsOverlay{settings: settings})
}

// OpenInfo shows one of the read-only overlays: Help, Records or About.
func (c *Controller) OpenInfo(which Kind) {
	switch which {
	case Help, Records, About:
		c.open(&infoOverlay{which: which})
	}
}

func (c *Controller) OpenWin(result Result) {
	c.open(&resultOverlay{won: true, result: result})
}

func (c *Controller) OpenLoss(result Result) {
	c.open(&resultOverlay{won: false, result: result})
}

// Handle routes one event to the active overlay. layout is the geometry of
// the last drawn frame.
func (c *Controller) Handle(ev input.Event, layout geom.Layout, now time.Time) Action {
	if c.active == nil {
		return Action{}
	}
	// Nothing was drawn, e.g. the terminal is too small
	if layout.Modal.Empty() && ev.Kind != input.KeyPress {
		return Action{}
	}

	switch ev.Kind {
	case input.PointerMove:
		c.hover(ev, layout)
	case input.ButtonDown:
		if ev.Button == input.Secondary {
			return c.cancel()
		}
		if ev.Button == input.Primary {
			return c.click(ev, layout)
		}
	case input.ButtonUp:
		if !c.button.pressed {
			return Action{}
		}
		c.button.pressed = false
		if layout.Button.Contains(ev.Col, ev.Row) {
			return c.commit(now)
		}
	case input.KeyPress:
		return c.key(ev, now)
	}
	return Action{}
}

func (c *Controller) hover(ev input.Event, layout geom.Layout) {
	c.button.hovered = layout.Button.Contains(ev.Col, ev.Row)

	i, ok := geom.IndexAt(layout.Items, ev.Col, ev.Row)
	if !ok {
		return
	}
	switch o := c.active.(type) {
	case *difficultyOverlay:
		o.focus = i
	case *optionsOverlay:
		o.focus = i
	}
}

func (c *Controller) click(ev input.Event, layout geom.Layout) Action {
	if !layout.Modal.Contains(ev.Col, ev.Row) {
		return c.cancel()
	}
	if layout.Button.Contains(ev.Col, ev.Row) {
		c.button.pressed = true
		return Action{}
	}

	switch o := c.active.(type) {
	case *difficultyOverlay:
		if i, ok := geom.IndexAt(layout.Items, ev.Col, ev.Row); ok {
			return c.selectDifficulty(o, i)
		}
	case *customOverlay:
		if i, ok := geom.IndexAt(layout.Fields, ev.Col, ev.Row); ok {
			o.focus = i
		}
	case *optionsOverlay:
		if i, ok := geom.IndexAt(layout.Items, ev.Col, ev.Row); ok {
			o.focus = i
			o.settings.toggle(i)
		}
	case *resultOverlay:
		c.Close()
		return Action{Kind: NewGame}
	}
	return Action{}
}

func (c *Controller) key(ev input.Event, now time.Time) Action {
	switch o := c.active.(type) {
	case *difficultyOverlay:
		switch {
		case ev.IsKey(input.KeyUp):
			o.focus = (o.focus + len(config.Levels) - 1) % len(config.Levels)
		case ev.IsKey(input.KeyDown):
			o.focus = (o.focus + 1) % len(config.Levels)
		case ev.IsRune('1', '2', '3', '4'):
			return c.selectDifficulty(o, int(ev.Rune-'1'))
		case ev.IsKey(input.KeyEnter), ev.IsKey(input.KeySpace):
			return c.selectDifficulty(o, o.focus)
		case ev.IsKey(input.KeyEsc):
			return c.cancel()
		}

	case *customOverlay:
		switch {
		case ev.Key == input.KeyRune && ev.Rune >= '0' && ev.Rune <= '9':
			field := &o.fields[o.focus]
			if len(*field) < config.CustomField(o.focus).MaxDigits() {
				*field += string(ev.Rune)
			}
		case ev.IsKey(input.KeyBackspace):
			field := &o.fields[o.focus]
			if len(*field) > 0 {
				*field = (*field)[:len(*field)-1]
			}
		case ev.IsKey(input.KeyTab), ev.IsKey(input.KeyDown):
			o.focus = (o.focus + 1) % len(o.fields)
		case ev.IsKey(input.KeyBacktab), ev.IsKey(input.KeyUp):
			o.focus = (o.focus + len(o.fields) - 1) % len(o.fields)
		case ev.IsKey(input.KeyEnter):
			return c.commit(now)
		case ev.IsKey(input.KeyEsc):
			return c.cancel()
		}

	case *optionsOverlay:
		switch {
		case ev.IsKey(input.KeyUp):
			o.focus = (o.focus + 2) % 3
		case ev.IsKey(input.KeyDown):
			o.focus = (o.focus + 1) % 3
		case ev.IsKey(input.KeySpace):
			o.settings.toggle(o.focus)
		case ev.IsKey(input.KeyEnter):
			return c.commit(now)
		case ev.IsKey(input.KeyEsc):
			return c.cancel()
		}

	case *infoOverlay:
		c.Close()
		return Action{Kind: Closed}

	case *resultOverlay:
		c.Close()
		return Action{Kind: NewGame}
	}
	return Action{}
}

func (c *Controller) selectDifficulty(o *difficultyOverlay, i int) Action {
	o.focus = i
	if config.Level(i) == config.Custom {
		custom := &customOverlay{parent: o}
		for f, value := range o.custom {
			custom.fields[f] = strconv.Itoa(value)
		}
		c.open(custom)
		return Action{}
	}

	c.Close()
	return Action{Kind: ApplyDifficulty, Difficulty: config.Preset(config.Level(i))}
}

// commit is the confirm button or Enter.
func (c *Controller) commit(now time.Time) Action {
	switch o := c.active.(type) {
	case *customOverlay:
		d, err := config.ParseCustom(o.fields)
		if err != nil {
			var fieldErr *config.FieldError
			if errors.As(err, &fieldErr) {
				o.invalid = &invalidField{field: fieldErr.Field, at: now}
			}
			return Action{}
		}
		c.Close()
		return Action{Kind: ApplyDifficulty, Difficulty: d}
	case *optionsOverlay:
		c.Close()
		return Action{Kind: ApplyOptions, Settings: o.settings}
	case *resultOverlay:
		c.Close()
		return Action{Kind: NewGame}
	}
	c.Close()
	return Action{Kind: Closed}
}

// cancel is Esc, a secondary click or a click outside the overlay. Custom
// input backs out to the difficulty list.
func (c *Controller) cancel() Action {
	switch o := c.active.(type) {
	case *customOverlay:
		o.parent.focus = o.parent.current
		c.open(o.parent)
		return Action{}
	case *resultOverlay:
		c.Close()
		return Action{Kind: NewGame}
	}
	c.Close()
	return Action{Kind: Closed}
}
