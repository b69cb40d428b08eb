package modal

import (
	"testing"
	"time"

	"github.com/they4kman/tsweep/config"
	"github.com/they4kman/tsweep/input"
	"github.com/they4kman/tsweep/util/geom"
)

var now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// testLayout mimics a drawn overlay: rows 11-14 are list items, the fields
// sit on the same rows and the button on row 17.
func testLayout() geom.Layout {
	return geom.Layout{
		Modal:  geom.R(20, 10, 40, 9),
		Button: geom.R(35, 17, 9, 1),
		Items: []geom.Rect{
			geom.R(22, 11, 30, 1),
			geom.R(22, 12, 30, 1),
			geom.R(22, 13, 30, 1),
			geom.R(22, 14, 30, 1),
		},
		Fields: []geom.Rect{
			geom.R(40, 11, 4, 1),
			geom.R(40, 12, 4, 1),
			geom.R(40, 13, 4, 1),
		},
	}
}

func openCustom(t *testing.T) *Controller {
	t.Helper()
	c := NewController()
	c.OpenDifficulty(config.Preset(config.Intermediate), config.CustomDifficulty(36, 20, 150))
	c.Handle(input.Char('4'), testLayout(), now)
	if c.Active() != CustomInput {
		t.Fatalf("expected custom input, got %s", c.Active())
	}
	return c
}

func typeText(c *Controller, text string) {
	for _, r := range text {
		c.Handle(input.Char(r), testLayout(), now)
	}
}

func clearField(c *Controller) {
	for i := 0; i < 3; i++ {
		c.Handle(input.Press(input.KeyBackspace), testLayout(), now)
	}
}

func TestDifficultyKeysApplyPreset(t *testing.T) {
	c := NewController()
	c.OpenDifficulty(config.Preset(config.Beginner), config.CustomDifficulty(36, 20, 150))

	if v := c.View(now); v.Focus != 0 {
		t.Fatalf("focus should start on the current level, got %d", v.Focus)
	}
	c.Handle(input.Press(input.KeyUp), testLayout(), now)
	if v := c.View(now); v.Focus != 3 {
		t.Fatalf("focus should wrap to 3, got %d", v.Focus)
	}
	c.Handle(input.Press(input.KeyDown), testLayout(), now)
	c.Handle(input.Press(input.KeyDown), testLayout(), now)
	c.Handle(input.Press(input.KeyDown), testLayout(), now)

	action := c.Handle(input.Press(input.KeyEnter), testLayout(), now)
	if action.Kind != ApplyDifficulty || action.Difficulty != config.Preset(config.Expert) {
		t.Fatalf("unexpected action %+v", action)
	}
	if c.IsOpen() {
		t.Fatalf("overlay should close after applying")
	}
}

func TestDifficultyDigitSelects(t *testing.T) {
	c := NewController()
	c.OpenDifficulty(config.Preset(config.Beginner), config.CustomDifficulty(36, 20, 150))
	action := c.Handle(input.Char('2'), testLayout(), now)
	if action.Kind != ApplyDifficulty || action.Difficulty.Level != config.Intermediate {
		t.Fatalf("unexpected action %+v", action)
	}
}

func TestDifficultyHoverAndClick(t *testing.T) {
	c := NewController()
	c.OpenDifficulty(config.Preset(config.Beginner), config.CustomDifficulty(36, 20, 150))

	c.Handle(input.Move(25, 12), testLayout(), now)
	if v := c.View(now); v.Focus != 1 {
		t.Fatalf("hover should move focus, got %d", v.Focus)
	}
	action := c.Handle(input.Down(input.Primary, 25, 13), testLayout(), now)
	if action.Kind != ApplyDifficulty || action.Difficulty.Level != config.Expert {
		t.Fatalf("unexpected action %+v", action)
	}
}

func TestCustomPrefilledFromConfig(t *testing.T) {
	c := openCustom(t)
	if v := c.View(now); v.Fields != [3]string{"36", "20", "150"} || v.Focus != 0 {
		t.Fatalf("unexpected custom view %+v", v)
	}
}

func TestCustomRejectsWidth(t *testing.T) {
	c := openCustom(t)
	clearField(c)
	typeText(c, "40")
	c.Handle(input.Press(input.KeyTab), testLayout(), now)
	clearField(c)
	typeText(c, "10")
	c.Handle(input.Press(input.KeyTab), testLayout(), now)
	clearField(c)
	typeText(c, "50")

	action := c.Handle(input.Press(input.KeyEnter), testLayout(), now)

	if action.Kind != NoAction {
		t.Fatalf("invalid input must not apply, got %+v", action)
	}
	v := c.View(now.Add(100 * time.Millisecond))
	if v.Kind != CustomInput || v.InvalidField != int(config.FieldWidth) {
		t.Fatalf("expected width marked invalid, got %+v", v)
	}
	if v := c.View(now.Add(InvalidFlashDuration)); v.InvalidField != -1 {
		t.Fatalf("invalid marker should expire, got %d", v.InvalidField)
	}
}

func TestCustomFirstEmptyField(t *testing.T) {
	c := openCustom(t)
	clearField(c)
	typeText(c, "99")
	c.Handle(input.Press(input.KeyTab), testLayout(), now)
	clearField(c)

	c.Handle(input.Press(input.KeyEnter), testLayout(), now)
	if v := c.View(now); v.InvalidField != int(config.FieldHeight) {
		t.Fatalf("expected the empty height marked before the bad width, got %d", v.InvalidField)
	}
}

func TestCustomDigitLimits(t *testing.T) {
	c := openCustom(t)
	clearField(c)
	typeText(c, "1234")
	c.Handle(input.Press(input.KeyBacktab), testLayout(), now)
	clearField(c)
	typeText(c, "98765x")

	v := c.View(now)
	if v.Fields[0] != "12" || v.Fields[2] != "987" || v.Focus != 2 {
		t.Fatalf("unexpected fields %+v", v)
	}
}

func TestCustomApplyWithButton(t *testing.T) {
	c := openCustom(t)
	c.Handle(input.Down(input.Primary, 41, 13), testLayout(), now)
	if v := c.View(now); v.Focus != 2 {
		t.Fatalf("clicking a field should focus it, got %d", v.Focus)
	}
	clearField(c)
	typeText(c, "99")

	c.Handle(input.Down(input.Primary, 36, 17), testLayout(), now)
	if !c.View(now).ButtonPressed {
		t.Fatalf("button should be armed")
	}
	action := c.Handle(input.Up(input.Primary, 37, 17), testLayout(), now)
	want := config.CustomDifficulty(36, 20, 99)
	if action.Kind != ApplyDifficulty || action.Difficulty != want {
		t.Fatalf("unexpected action %+v", action)
	}
}

func TestCustomEscReturnsToList(t *testing.T) {
	c := openCustom(t)
	c.Handle(input.Press(input.KeyEsc), testLayout(), now)
	if c.Active() != Difficulty {
		t.Fatalf("expected difficulty list, got %s", c.Active())
	}
	if v := c.View(now); v.Focus != int(config.Intermediate) {
		t.Fatalf("focus should return to the current level, got %d", v.Focus)
	}

	c.Handle(input.Char('4'), testLayout(), now)
	c.Handle(input.Down(input.Secondary, 25, 12), testLayout(), now)
	if c.Active() != Difficulty {
		t.Fatalf("secondary click should back out of custom input, got %s", c.Active())
	}
}

func TestButtonReleaseOutsideDisarms(t *testing.T) {
	c := NewController()
	c.OpenInfo(About)
	c.Handle(input.Down(input.Primary, 36, 17), testLayout(), now)
	action := c.Handle(input.Up(input.Primary, 30, 15), testLayout(), now)
	if action.Kind != NoAction || c.Active() != About {
		t.Fatalf("release outside should keep the overlay open, got %+v", action)
	}
	if c.View(now).ButtonPressed {
		t.Fatalf("button should be disarmed")
	}
}

func TestOptionsToggleAndCommit(t *testing.T) {
	c := NewController()
	c.OpenOptions(Settings{ShowIndicator: true})

	c.Handle(input.Press(input.KeyDown), testLayout(), now)
	c.Handle(input.Press(input.KeySpace), testLayout(), now)
	c.Handle(input.Down(input.Primary, 25, 11), testLayout(), now)

	action := c.Handle(input.Press(input.KeyEnter), testLayout(), now)
	want := Settings{ShowIndicator: false, UseQuestionMarks: true}
	if action.Kind != ApplyOptions || action.Settings != want {
		t.Fatalf("unexpected action %+v", action)
	}
}

func TestOptionsEscDiscards(t *testing.T) {
	c := NewController()
	c.OpenOptions(Settings{})
	c.Handle(input.Press(input.KeySpace), testLayout(), now)
	action := c.Handle(input.Press(input.KeyEsc), testLayout(), now)
	if action.Kind != Closed || c.IsOpen() {
		t.Fatalf("unexpected action %+v", action)
	}
	c.OpenOptions(Settings{})
	if v := c.View(now); v.Focus != 0 || v.Settings != (Settings{}) {
		t.Fatalf("options should reopen from the given settings, got %+v", v)
	}
}

func TestInfoClosesOnAnyKey(t *testing.T) {
	c := NewController()
	c.OpenInfo(Help)
	if action := c.Handle(input.Char('x'), testLayout(), now); action.Kind != Closed {
		t.Fatalf("unexpected action %+v", action)
	}
}

func TestResultAlwaysStartsNewGame(t *testing.T) {
	events := []input.Event{
		input.Press(input.KeyEsc),
		input.Char('q'),
		input.Down(input.Primary, 30, 12),
		input.Down(input.Secondary, 30, 12),
		input.Down(input.Primary, 0, 0),
	}
	for _, ev := range events {
		c := NewController()
		c.OpenWin(Result{Level: config.Beginner, Seconds: 42, NewRecord: true})
		if action := c.Handle(ev, testLayout(), now); action.Kind != NewGame || c.IsOpen() {
			t.Fatalf("event %+v: unexpected action %+v", ev, action)
		}
	}
}

func TestOutsideClickCancels(t *testing.T) {
	c := NewController()
	c.OpenDifficulty(config.Preset(config.Beginner), config.CustomDifficulty(36, 20, 150))
	if action := c.Handle(input.Down(input.Primary, 2, 2), testLayout(), now); action.Kind != Closed {
		t.Fatalf("unexpected action %+v", action)
	}
}

func TestOpeningReplacesOverlay(t *testing.T) {
	c := NewController()
	c.OpenInfo(Records)
	c.OpenLoss(Result{Level: config.Expert})
	if c.Active() != Loss {
		t.Fatalf("expected loss, got %s", c.Active())
	}
	if v := c.View(now); v.ButtonLabel() != " OK " || v.Title() != "Failure" {
		t.Fatalf("unexpected view %+v", v)
	}
}
