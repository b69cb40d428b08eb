package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

type glyphs struct {
	unopened, mine, flag, question rune
}

var (
	unicodeGlyphs = glyphs{unopened: '■', mine: '☼', flag: '⚑', question: '?'}
	asciiGlyphs   = glyphs{unopened: '▪', mine: '*', flag: 'F', question: '?'}
)

const indicator = '▸'

func glyphSet(ascii bool) glyphs {
	if ascii {
		return asciiGlyphs
	}
	return unicodeGlyphs
}

// Adjacency colours, indexed by count - 1
var numberColors = [8]tcell.Color{
	tcell.ColorBlue,
	tcell.ColorGreen,
	tcell.ColorRed,
	tcell.ColorPurple,
	tcell.ColorMaroon,
	tcell.ColorTeal,
	tcell.ColorWhite,
	tcell.ColorGray,
}

var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)

	styleMenu        = styleDefault
	styleMenuKey     = styleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleMenuHover   = styleDefault.Background(tcell.ColorDarkCyan).Foreground(tcell.ColorBlack)
	styleMenuPressed = styleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack)

	styleBorder   = styleDefault.Foreground(tcell.ColorGray)
	styleBoard    = styleDefault.Background(tcell.ColorBlack)
	styleUnopened = styleBoard.Foreground(tcell.ColorSilver)
	styleFlag     = styleBoard.Foreground(tcell.ColorRed)
	styleQuestion = styleBoard.Foreground(tcell.ColorYellow)
	styleMine     = styleBoard.Foreground(tcell.ColorWhite).Bold(true)
	styleFlash    = styleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorWhite).Bold(true)

	// Backgrounds layered over a cell's own style
	colorCursor  = tcell.ColorDimGray
	colorPressed = tcell.ColorGray
	colorLosing  = tcell.ColorRed
	colorWrong   = tcell.ColorMaroon
	colorMarker  = tcell.ColorYellow

	styleStatus = styleDefault

	styleModal    = styleDefault
	styleFocus    = styleDefault.Background(tcell.ColorDarkCyan).Foreground(tcell.ColorBlack)
	styleField    = styleDefault.Background(tcell.ColorDimGray)
	styleFieldOn  = styleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)
	styleInvalid  = styleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleButton   = styleDefault.Background(tcell.ColorGray).Foreground(tcell.ColorBlack).Bold(true)
	styleButtonOn = styleDefault.Background(tcell.ColorSilver).Foreground(tcell.ColorBlack).Bold(true)
	styleButtonDn = styleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack).Bold(true)
	styleWarning  = styleDefault.Foreground(tcell.ColorYellow)
)

// drawText places text at the given position and returns the column after it
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
	return x
}

func fill(s tcell.Screen, x, y, width, height int, style tcell.Style) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			s.SetContent(col, row, ' ', nil, style)
		}
	}
}

// drawBox draws a single line border with an optional title centred on the
// top edge.
func drawBox(s tcell.Screen, x, y, width, height int, style tcell.Style, title string) {
	if width < 2 || height < 2 {
		return
	}
	right, bottom := x+width-1, y+height-1
	for col := x + 1; col < right; col++ {
		s.SetContent(col, y, tcell.RuneHLine, nil, style)
		s.SetContent(col, bottom, tcell.RuneHLine, nil, style)
	}
	for row := y + 1; row < bottom; row++ {
		s.SetContent(x, row, tcell.RuneVLine, nil, style)
		s.SetContent(right, row, tcell.RuneVLine, nil, style)
	}
	s.SetContent(x, y, tcell.RuneULCorner, nil, style)
	s.SetContent(right, y, tcell.RuneURCorner, nil, style)
	s.SetContent(x, bottom, tcell.RuneLLCorner, nil, style)
	s.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)

	if title != "" {
		title = " " + title + " "
		if w := runewidth.StringWidth(title); w <= width-2 {
			drawText(s, x+(width-w)/2, y, style, title)
		}
	}
}
