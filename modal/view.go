package modal

import "time"

// View is a read-only copy of the overlay state for drawing.
type View struct {
	Kind  Kind
	Focus int

	// CustomInput
	Fields       [3]string
	InvalidField int // -1 unless a rejected field is flashing

	// Options
	Settings Settings

	// Win and Loss
	Result Result

	ButtonHovered bool
	ButtonPressed bool
}

func (v View) Title() string {
	switch v.Kind {
	case Difficulty, CustomInput:
		return "Difficulty"
	case Options:
		return "Options"
	case Help:
		return "Help"
	case Records:
		return "Records"
	case About:
		return "About"
	case Win:
		return "Success"
	case Loss:
		return "Failure"
	}
	return ""
}

// ButtonLabel is the confirm button's text.
func (v View) ButtonLabel() string {
	switch v.Kind {
	case CustomInput, Options, Win, Loss:
		return " OK "
	}
	return " CLOSE "
}

func (c *Controller) View(now time.Time) View {
	view := View{
		Kind:          c.Active(),
		InvalidField:  -1,
		ButtonHovered: c.button.hovered,
		ButtonPressed: c.button.pressed,
	}

	switch o := c.active.(type) {
	case *difficultyOverlay:
		view.Focus = o.focus
	case *customOverlay:
		view.Focus = o.focus
		view.Fields = o.fields
		if o.invalid != nil && now.Sub(o.invalid.at) < InvalidFlashDuration {
			view.InvalidField = int(o.invalid.field)
		}
	case *optionsOverlay:
		view.Focus = o.focus
		view.Settings = o.settings
	case *resultOverlay:
		view.Result = o.result
	}
	return view
}
