package model

import "github.com/chesshall/chesshall/internal/engine"

// WSMove is the move payload received over the websocket.
type WSMove struct {
	From engine.Position `json:"from"`
	To   engine.Position `json:"to"`
}

// Ply is one half-move as shown to clients.
type Ply struct {
	Piece     engine.Piece    `json:"piece"`
	From      engine.Position `json:"from"`
	To        engine.Position `json:"to"`
	Captured  *engine.Piece   `json:"capturedPiece"`
	Promotion bool            `json:"promotion"`
	Notation  string          `json:"notation"`
}

// Move pairs the white and black plies of one full move.
type Move struct {
	WhitePly *Ply `json:"whitePly"`
	BlackPly *Ply `json:"blackPly"`
}

// SimpleMove is a bare from/to pair.
type SimpleMove struct {
	From engine.Position `json:"from"`
	To   engine.Position `json:"to"`
}

// MatchFoundEvent tells a queued player which game they were paired
// into and which side they play.
type MatchFoundEvent struct {
	GameID string       `json:"gameId"`
	Color  engine.Color `json:"color"`
}
