package model

import "errors"

var (
	ErrGameFull      = errors.New("game is full")
	ErrNoPiece       = errors.New("no piece at from square")
	ErrNotYourTurn   = errors.New("not your turn")
	ErrInvalidMove   = errors.New("invalid move")
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNotAuthorized = errors.New("not authorized to join this game")
)
