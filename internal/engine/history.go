package engine

// HistoryEntry captures enough pre-move state to restore the board
// exactly. Only one kind of move exists, so a plain record suffices
// instead of a command hierarchy.
type HistoryEntry struct {
	From      Position
	To        Position
	Moved     Piece  // the mover as it was before the move
	Captured  *Piece // the captured piece, nil if none
	Promotion bool
	Turn      Color // side to move before the move
}

// MoveCount returns the number of committed moves.
func (b *Board) MoveCount() int {
	return len(b.history)
}

// LastMove returns a copy of the most recent history entry. ok is
// false when no move has been committed.
func (b *Board) LastMove() (HistoryEntry, bool) {
	if len(b.history) == 0 {
		return HistoryEntry{}, false
	}
	entry := b.history[len(b.history)-1]
	if entry.Captured != nil {
		c := *entry.Captured
		entry.Captured = &c
	}
	return entry, true
}

// UndoLastMove pops the most recent record and restores the board
// atomically: the mover returns to its source square with its pre-move
// flags, the captured piece (if any) returns to the destination, and
// turn and game-over state roll back together. Returns false when
// there is nothing to undo. The record mirrors a previously legal
// state, so nothing is re-validated.
func (b *Board) UndoLastMove() bool {
	if len(b.history) == 0 {
		return false
	}
	entry := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]

	moved := entry.Moved
	b.squares[entry.From.Y][entry.From.X] = &moved
	if entry.Captured != nil {
		captured := *entry.Captured
		b.squares[entry.To.Y][entry.To.X] = &captured
	} else {
		b.squares[entry.To.Y][entry.To.X] = nil
	}

	b.currentTurn = entry.Turn
	b.gameOver = false
	b.winner = ""
	return true
}
