package model

import "github.com/chesshall/chesshall/internal/engine"

type Player struct {
	ID    string
	Color engine.Color
}

// ClientPlayer is the player view embedded in GameState. TimeLeft is
// in tenths of a second.
type ClientPlayer struct {
	ID       string       `json:"name"`
	Color    engine.Color `json:"color"`
	TimeLeft int          `json:"timeLeft"`
}

// Players holds both seats of a game.
type Players struct {
	White ClientPlayer `json:"white"`
	Black ClientPlayer `json:"black"`
}
