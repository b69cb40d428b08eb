package tui

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/they4kman/tsweep/config"
	"github.com/they4kman/tsweep/modal"
	"github.com/they4kman/tsweep/session"
	"github.com/they4kman/tsweep/util/geom"
)

const (
	overlayMinWidth = 30
	fieldWidth      = 3
	labelWidth      = 20
)

type overlayLine struct {
	text  string
	style tcell.Style
	// item lines are hit targets for hover and click
	item bool
	// field is the custom form input drawn after the text, or -1
	field int
}

func textLine(text string) overlayLine {
	return overlayLine{text: text, style: styleModal, field: -1}
}

func itemLine(text string, focused bool) overlayLine {
	line := textLine(text)
	line.item = true
	if focused {
		line.style = styleFocus
	}
	return line
}

var helpLines = []string{
	" Controls:",
	"  Mouse | Arrows    - move cursor",
	"  L-Click | Space   - reveal",
	"  R-Click | F       - toggle flag",
	"  L+R-Click | Enter - chord (open neighbors)",
}

func overlayLines(frame session.Frame) []overlayLine {
	view := frame.Modal
	cfg := frame.Config
	var lines []overlayLine

	switch view.Kind {
	case modal.Difficulty:
		for i := range config.Levels {
			d := config.FromIndex(i, cfg.CustomW, cfg.CustomH, cfg.CustomN)
			width, height, numMines := d.Params()
			text := fmt.Sprintf(" %d) %-12s %2dx%-2d  %3d mines ", i+1, d.Name(), width, height, numMines)
			lines = append(lines, itemLine(text, i == view.Focus))
		}

	case modal.CustomInput:
		width, _ := strconv.Atoi(view.Fields[config.FieldWidth])
		height, _ := strconv.Atoi(view.Fields[config.FieldHeight])
		maxMines := 0
		if width > 0 && height > 0 {
			maxMines = config.MaxMines(width, height)
		}
		labels := [3]string{
			fmt.Sprintf("Width (%d-%d):", config.MinWidth, config.MaxWidth),
			fmt.Sprintf("Height (%d-%d):", config.MinHeight, config.MaxHeight),
			fmt.Sprintf("Mines (%d-%d):", config.MinMines, maxMines),
		}
		for i, label := range labels {
			if i > 0 {
				lines = append(lines, textLine(""))
			}
			line := textLine(fmt.Sprintf(" %-*s", labelWidth, label))
			line.field = i
			if view.InvalidField == i {
				line.style = styleInvalid
			}
			lines = append(lines, line)
		}

	case modal.Options:
		names := [3]string{"Show indicator", "Use ? marks", "ASCII icons"}
		for i, on := range view.Settings.Values() {
			box := "[ ]"
			if on {
				box = "[x]"
			}
			lines = append(lines, itemLine(fmt.Sprintf(" %s %s ", box, names[i]), i == view.Focus))
		}

	case modal.Help:
		for _, text := range helpLines {
			lines = append(lines, textLine(text))
		}

	case modal.Records:
		lines = append(lines, textLine(" Best time in seconds:"), textLine(""))
		for _, level := range config.Levels {
			if !level.IsPreset() {
				continue
			}
			secs, date := "-", ""
			if record, ok := cfg.GetRecordDetail(level); ok {
				secs, date = strconv.FormatUint(record.Secs, 10), record.Date
			}
			lines = append(lines, textLine(fmt.Sprintf("  %-13s %5s  %s", level.String()+":", secs, date)))
		}

	case modal.About:
		lines = append(lines, textLine(" A terminal-based classic Minesweeper game "))

	case modal.Win:
		result := view.Result
		elapsed := fmt.Sprintf(" Time: %d seconds ", result.Seconds)
		if result.NewRecord {
			elapsed = fmt.Sprintf(" Time: %d seconds (New Record!) ", result.Seconds)
		}
		lines = append(lines, textLine(" Mines cleared. You win! "), textLine(elapsed))

	case modal.Loss:
		lines = append(lines, textLine(" Mine exploded. You lose! "), textLine(" Better luck next time. "))
	}
	return lines
}

// drawOverlay draws the active overlay centred on the screen and records
// its hit targets in layout.
func drawOverlay(s tcell.Screen, frame session.Frame, layout *geom.Layout) {
	view := frame.Modal
	lines := overlayLines(frame)
	button := view.ButtonLabel()

	contentWidth := runewidth.StringWidth(view.Title()) + 4
	contentWidth = max(contentWidth, runewidth.StringWidth(button))
	for _, line := range lines {
		w := runewidth.StringWidth(line.text)
		if line.field >= 0 {
			w += fieldWidth + 1
		}
		contentWidth = max(contentWidth, w)
	}

	// border, blank, content, blank, button, border
	box := geom.Center(max(contentWidth+2, overlayMinWidth), len(lines)+5, layout.Screen)
	inner := box.Inner()
	fill(s, box.X, box.Y, box.Width, box.Height, styleModal)
	drawBox(s, box.X, box.Y, box.Width, box.Height, styleBorder, view.Title())

	row := inner.Y + 1
	for _, line := range lines {
		x := drawText(s, inner.X, row, line.style, line.text)
		if line.item {
			layout.Items = append(layout.Items, geom.R(inner.X, row, inner.Width, 1))
		}
		if line.field >= 0 {
			style := styleField
			if line.field == view.Focus {
				style = styleFieldOn
			}
			drawText(s, x, row, style, fmt.Sprintf("%-*s", fieldWidth, view.Fields[line.field]))
			layout.Fields = append(layout.Fields, geom.R(x, row, fieldWidth, 1))
		}
		row++
	}

	buttonRect := geom.BottomCenter(runewidth.StringWidth(button), 1, inner)
	style := styleButton
	switch {
	case view.ButtonPressed:
		style = styleButtonDn
	case view.ButtonHovered:
		style = styleButtonOn
	}
	drawText(s, buttonRect.X, buttonRect.Y, style, button)

	layout.Modal = box
	layout.Button = buttonRect
}
