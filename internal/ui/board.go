// Package ui implements the terminal board widget for the local
// client.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/chesshall/chesshall/internal/config"
	"github.com/chesshall/chesshall/internal/engine"
)

var pieceGlyphs = map[engine.PieceType]rune{
	engine.King:   '♚',
	engine.Queen:  '♛',
	engine.Rook:   '♜',
	engine.Bishop: '♝',
	engine.Knight: '♞',
	engine.Pawn:   '♟',
}

// BoardUI draws an engine board into a tview.Box and turns key events
// into engine calls: select a piece of the side to move, pick a
// destination, undo with a single key.
type BoardUI struct {
	Box      *tview.Box
	board    *engine.Board
	cfg      *config.Config
	curX     int
	curY     int
	selected *engine.Position
	hints    []engine.Position
	status   string
}

func NewBoardUI(board *engine.Board, cfg *config.Config) *BoardUI {
	b := &BoardUI{
		Box:   tview.NewBox(),
		board: board,
		cfg:   cfg,
		curX:  4,
		curY:  6,
	}
	b.Box.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		b.draw(screen, x, y)
		return x, y, width, height
	})
	return b
}

// Status returns the message produced by the last interaction, plus
// the game-over banner once the game ends.
func (b *BoardUI) Status() string {
	if b.board.GameOver() {
		if winner, ok := b.board.Winner(); ok {
			if winner == engine.White {
				return "Checkmate! White wins!"
			}
			return "Checkmate! Black wins!"
		}
		return "Stalemate! Game ended in a draw."
	}
	return b.status
}

// Turn renders the side-to-move line.
func (b *BoardUI) Turn() string {
	if b.board.Turn() == engine.White {
		return "Turn: White"
	}
	return "Turn: Black"
}

func (b *BoardUI) MoveCursor(dx, dy int) {
	if !engine.InBounds(b.curX+dx, b.curY+dy) {
		return
	}
	b.curX += dx
	b.curY += dy
}

// Select handles the confirm key: pick up a piece of the side to
// move, or try to move the picked-up piece to the cursor square.
func (b *BoardUI) Select() {
	b.status = ""
	if b.board.GameOver() {
		return
	}
	cursor := engine.Position{X: b.curX, Y: b.curY}

	if b.selected == nil {
		b.trySelect(cursor)
		return
	}

	if cursor == *b.selected {
		b.clearSelection()
		return
	}

	switch result := b.board.MovePiece(*b.selected, cursor); result {
	case engine.Invalid:
		// Clicking another of your own pieces re-selects it.
		b.trySelect(cursor)
	case engine.Check:
		b.clearSelection()
		if b.board.Turn() == engine.White {
			b.status = "White is in check!"
		} else {
			b.status = "Black is in check!"
		}
	default:
		b.clearSelection()
	}
}

// Undo unwinds the most recent move.
func (b *BoardUI) Undo() {
	b.clearSelection()
	if b.board.UndoLastMove() {
		b.status = "Undo successful!"
	} else {
		b.status = "No moves to undo!"
	}
}

func (b *BoardUI) trySelect(pos engine.Position) {
	p, ok := b.board.PieceAt(pos)
	if !ok || p.Color != b.board.Turn() {
		b.clearSelection()
		return
	}
	b.selected = &pos
	b.hints = b.board.LegalMoves(pos)
}

func (b *BoardUI) clearSelection() {
	b.selected = nil
	b.hints = nil
}

// draw renders the board two screen cells per square so the squares
// come out roughly square in a terminal font.
func (b *BoardUI) draw(screen tcell.Screen, x, y int) {
	colors := b.cfg.Colors
	for boardY := 0; boardY < engine.BoardSize; boardY++ {
		for boardX := 0; boardX < engine.BoardSize; boardX++ {
			pos := engine.Position{X: boardX, Y: boardY}

			bg := tcell.PaletteColor(colors.BoardLight)
			if (boardX+boardY)%2 == 1 {
				bg = tcell.PaletteColor(colors.BoardDark)
			}
			switch {
			case boardX == b.curX && boardY == b.curY:
				bg = tcell.PaletteColor(colors.CursorBG)
			case b.selected != nil && pos == *b.selected:
				bg = tcell.PaletteColor(colors.SelectedBG)
			case b.hintAt(pos):
				bg = tcell.PaletteColor(colors.HintBG)
			}

			glyph := ' '
			fg := tcell.PaletteColor(colors.WhitePiece)
			if p, ok := b.board.PieceAt(pos); ok {
				glyph = pieceGlyphs[p.Type]
				if p.Color == engine.Black {
					fg = tcell.PaletteColor(colors.BlackPiece)
				}
			}

			style := tcell.StyleDefault.Background(bg).Foreground(fg)
			screen.SetContent(x+boardX*2, y+boardY, glyph, nil, style)
			screen.SetContent(x+boardX*2+1, y+boardY, ' ', nil, style)
		}
		// Rank label to the right of the board.
		label := fmt.Sprintf("%d", engine.BoardSize-boardY)
		screen.SetContent(x+engine.BoardSize*2+1, y+boardY, rune(label[0]), nil, tcell.StyleDefault)
	}
	for boardX := 0; boardX < engine.BoardSize; boardX++ {
		screen.SetContent(x+boardX*2, y+engine.BoardSize, rune('a'+boardX), nil, tcell.StyleDefault)
	}
}

func (b *BoardUI) hintAt(pos engine.Position) bool {
	for _, h := range b.hints {
		if h == pos {
			return true
		}
	}
	return false
}
