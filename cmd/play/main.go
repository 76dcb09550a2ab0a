package main

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/chesshall/chesshall/internal/config"
	"github.com/chesshall/chesshall/internal/engine"
	"github.com/chesshall/chesshall/internal/ui"
)

func main() {
	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatal(err)
	}

	board := engine.NewBoard()
	board.Initialize()

	app := tview.NewApplication()
	boardUI := ui.NewBoardUI(board, cfg)

	status := tview.NewTextView().SetDynamicColors(true)
	refreshStatus := func() {
		status.SetText(fmt.Sprintf(
			"%s\n%s\n[gray]arrows/hjkl move · enter select · u undo · q quit",
			boardUI.Turn(), boardUI.Status(),
		))
	}
	refreshStatus()

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(boardUI.Box, engine.BoardSize+1, 0, true).
		AddItem(status, 3, 0, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp:
			boardUI.MoveCursor(0, -1)
		case tcell.KeyDown:
			boardUI.MoveCursor(0, 1)
		case tcell.KeyLeft:
			boardUI.MoveCursor(-1, 0)
		case tcell.KeyRight:
			boardUI.MoveCursor(1, 0)
		case tcell.KeyEnter:
			boardUI.Select()
		case tcell.KeyEscape:
			app.Stop()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'k':
				boardUI.MoveCursor(0, -1)
			case 'j':
				boardUI.MoveCursor(0, 1)
			case 'h':
				boardUI.MoveCursor(-1, 0)
			case 'l':
				boardUI.MoveCursor(1, 0)
			case ' ':
				boardUI.Select()
			case 'u':
				boardUI.Undo()
			case 'q':
				app.Stop()
				return nil
			}
		}
		refreshStatus()
		return nil
	})

	if err := app.SetRoot(layout, true).Run(); err != nil {
		log.Fatal(err)
	}
}
