package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/they4kman/tsweep/game"
	"github.com/they4kman/tsweep/modal"
	"github.com/they4kman/tsweep/session"
	"github.com/they4kman/tsweep/util/collections"
	"github.com/they4kman/tsweep/util/geom"
)

const (
	minWidth  = 80
	minHeight = 24

	exitLabel = "Esc: Exit"
)

// MinSize is the smallest terminal that fits a board of the given height.
func MinSize(boardHeight int) (width, height int) {
	return minWidth, minHeight + max(0, boardHeight-16)
}

// Renderer draws session frames onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders one frame and returns the geometry input should be tested
// against until the next draw.
func (r *Renderer) Draw(frame session.Frame) geom.Layout {
	s := r.screen
	s.Clear()

	width, height := s.Size()
	layout := geom.Layout{Screen: geom.R(0, 0, width, height)}

	needWidth, needHeight := MinSize(frame.Board.Height())
	if width < needWidth || height < needHeight {
		drawTooSmall(s, layout.Screen, needWidth, needHeight)
		s.Show()
		return layout
	}

	layout.Menu, layout.MenuItems = drawMenu(s, frame, width)
	layout.Status, layout.Exit = drawStatus(s, frame, width, height-1)
	layout.Cells = drawBoard(s, frame, geom.R(0, 1, width, height-2))
	if frame.Modal.Kind != modal.None {
		drawOverlay(s, frame, &layout)
	}

	s.Show()
	return layout
}

func drawTooSmall(s tcell.Screen, screen geom.Rect, needWidth, needHeight int) {
	lines := []string{
		"Terminal too small",
		fmt.Sprintf("Need %dx%d, have %dx%d", needWidth, needHeight, screen.Width, screen.Height),
	}
	y := screen.Y + max(screen.Height-len(lines), 0)/2
	for i, line := range lines {
		x := screen.X + max(screen.Width-runewidth.StringWidth(line), 0)/2
		drawText(s, x, y+i, styleWarning, line)
	}
}

// drawLabel draws a "KEY rest" control, highlighting the key unless the
// whole control is styled by hover or press.
func drawLabel(s tcell.Screen, x, y int, label string, hovered, pressed bool) geom.Rect {
	rect := geom.R(x, y, runewidth.StringWidth(label), 1)
	switch {
	case pressed:
		drawText(s, x, y, styleMenuPressed, label)
	case hovered:
		drawText(s, x, y, styleMenuHover, label)
	default:
		key, rest, _ := strings.Cut(label, " ")
		x = drawText(s, x, y, styleMenuKey, key)
		if rest != "" {
			drawText(s, x, y, styleMenu, " "+rest)
		}
	}
	return rect
}

func drawMenu(s tcell.Screen, frame session.Frame, width int) (geom.Rect, []geom.Rect) {
	fill(s, 0, 0, width, 1, styleMenu)

	items := make([]geom.Rect, 0, len(frame.Menu))
	x := 1
	for i, label := range frame.Menu {
		rect := drawLabel(s, x, 0, label, frame.MenuHovered == i, frame.MenuPressed == i)
		items = append(items, rect)
		x += rect.Width + 2
	}
	return geom.R(0, 0, width, 1), items
}

func drawStatus(s tcell.Screen, frame session.Frame, width, row int) (geom.Rect, geom.Rect) {
	fill(s, 0, row, width, 1, styleStatus)

	board := frame.Board
	secs := int64(board.Elapsed() / time.Second)
	drawText(s, 0, row, styleStatus, fmt.Sprintf(" Mines: %d   Time: %d seconds ", board.RemainingMines(), secs))

	exitWidth := runewidth.StringWidth(exitLabel)
	exit := drawLabel(s, width-exitWidth-1, row, exitLabel, frame.ExitHovered, frame.ExitPressed)
	return geom.R(0, row, width, 1), exit
}

// drawBoard centres the bordered board in area and returns its cell area.
// Each cell is a lead column, holding the indicator, then the glyph.
func drawBoard(s tcell.Screen, frame session.Frame, area geom.Rect) geom.Rect {
	board := frame.Board
	width, height := board.Width(), board.Height()

	box := geom.Center(width*geom.CellWidth+3, height+2, area)
	inner := box.Inner()
	fill(s, inner.X, inner.Y, inner.Width, inner.Height, styleBoard)
	drawBox(s, box.X, box.Y, box.Width, box.Height, styleBorder, frame.Config.Current().Name())

	cells := geom.R(inner.X, inner.Y, width*geom.CellWidth, height)
	g := glyphSet(frame.Config.ASCIIIcons)
	cursor := board.Cursor()
	losing, hasLosing := board.LosingMine()

	wrong := make(collections.Set[game.Point])
	if board.State() == game.Lost {
		for _, p := range board.WrongFlags() {
			wrong.Add(p)
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := game.Point{X: x, Y: y}
			glyph, style := cellGlyph(board, p, g)

			if p == cursor {
				style = style.Background(colorCursor)
			}
			switch {
			case hasLosing && p == losing:
				style = style.Background(colorLosing)
			case wrong.Contains(p):
				style = style.Background(colorWrong)
			}
			if highlighted(frame, p) {
				style = style.Background(colorPressed).Foreground(colorPressed)
			}
			if frame.Flash != nil && *frame.Flash == p {
				style = styleFlash
			}

			lead, leadStyle := ' ', style
			if frame.Config.ShowIndicator && p == cursor {
				lead, leadStyle = indicator, style.Foreground(colorMarker).Bold(true)
			}

			col, row := cells.X+x*geom.CellWidth, cells.Y+y
			s.SetContent(col, row, lead, nil, leadStyle)
			s.SetContent(col+1, row, glyph, nil, style)
		}
	}
	return cells
}

func cellGlyph(board *game.Board, p game.Point, g glyphs) (rune, tcell.Style) {
	cell, _ := board.CellAt(p)
	if board.IsRevealed(p) {
		switch {
		case cell.Mine:
			return g.mine, styleMine
		case cell.Adjacent > 0:
			return rune('0' + cell.Adjacent), styleBoard.Foreground(numberColors[cell.Adjacent-1])
		}
		return ' ', styleBoard
	}

	switch board.FlagAt(p) {
	case game.Flag:
		return g.flag, styleFlag
	case game.Question:
		return g.question, styleQuestion
	}
	return g.unopened, styleUnopened
}

// highlighted is true for closed, unflagged cells under a held press or an
// armed chord.
func highlighted(frame session.Frame, p game.Point) bool {
	board := frame.Board
	if board.IsRevealed(p) || board.FlagAt(p) == game.Flag {
		return false
	}
	if frame.Pressed != nil && *frame.Pressed == p {
		return true
	}
	if c := frame.Chord; c != nil {
		dx, dy := p.X-c.X, p.Y-c.Y
		return dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
	}
	return false
}
