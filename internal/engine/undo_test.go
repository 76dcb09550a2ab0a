package engine

import "testing"

func TestUndoEmptyHistory(t *testing.T) {
	b := NewBoard()
	b.Initialize()
	before := snapshot(b)

	if b.UndoLastMove() {
		t.Fatal("undo succeeded with empty history")
	}
	assertBoardsEqual(t, b, before)
}

func TestUndoIsInverse(t *testing.T) {
	b := NewBoard()
	b.Initialize()

	moves := []struct{ from, to Position }{
		{Position{X: 4, Y: 6}, Position{X: 4, Y: 4}}, // e4
		{Position{X: 3, Y: 1}, Position{X: 3, Y: 3}}, // d5
		{Position{X: 4, Y: 4}, Position{X: 3, Y: 3}}, // exd5, a capture
	}
	var snapshots []*Board
	for i, m := range moves {
		snapshots = append(snapshots, snapshot(b))
		if got := b.MovePiece(m.from, m.to); got == Invalid {
			t.Fatalf("move %d (%s-%s) rejected", i, m.from, m.to)
		}
	}

	for i := len(moves) - 1; i >= 0; i-- {
		if !b.UndoLastMove() {
			t.Fatalf("undo %d failed", i)
		}
		assertBoardsEqual(t, b, snapshots[i])
		if b.MoveCount() != i {
			t.Fatalf("history depth after undo: got %d, want %d", b.MoveCount(), i)
		}
	}
}

func TestUndoRestoresCapturedPiece(t *testing.T) {
	b := NewBoard()
	place(b, King, White, 7, 7)
	place(b, King, Black, 0, 0)
	place(b, Rook, White, 3, 3)
	victim := place(b, Knight, Black, 3, 0)
	victim.HasMoved = true

	if got := b.MovePiece(Position{X: 3, Y: 3}, Position{X: 3, Y: 0}); got == Invalid {
		t.Fatal("capture rejected")
	}
	entry, ok := b.LastMove()
	if !ok || entry.Captured == nil || entry.Captured.Type != Knight {
		t.Fatalf("history entry missing capture: %+v ok=%v", entry, ok)
	}
	if !b.UndoLastMove() {
		t.Fatal("undo failed")
	}
	restored, ok := b.PieceAt(Position{X: 3, Y: 0})
	if !ok || restored.Type != Knight || restored.Color != Black {
		t.Fatalf("captured knight not restored: %+v ok=%v", restored, ok)
	}
	if !restored.HasMoved {
		t.Fatal("restored knight lost its HasMoved flag")
	}
}

func TestPromotionAlwaysQueens(t *testing.T) {
	b := NewBoard()
	place(b, Pawn, White, 0, 1)
	place(b, King, White, 7, 7)
	place(b, King, Black, 6, 2)

	if got := b.MovePiece(Position{X: 0, Y: 1}, Position{X: 0, Y: 0}); got != Success {
		t.Fatalf("a8=Q: got %s, want %s", got, Success)
	}
	promoted, ok := b.PieceAt(Position{X: 0, Y: 0})
	if !ok || promoted.Type != Queen || promoted.Color != White {
		t.Fatalf("promotion: got %+v ok=%v, want white queen", promoted, ok)
	}
	entry, ok := b.LastMove()
	if !ok || !entry.Promotion {
		t.Fatalf("history entry not flagged as promotion: %+v", entry)
	}
}

func TestUndoPromotion(t *testing.T) {
	b := NewBoard()
	place(b, Pawn, White, 0, 1)
	place(b, King, White, 7, 7)
	place(b, King, Black, 6, 2)
	before := snapshot(b)

	if got := b.MovePiece(Position{X: 0, Y: 1}, Position{X: 0, Y: 0}); got != Success {
		t.Fatalf("a8=Q: got %s", got)
	}
	if !b.UndoLastMove() {
		t.Fatal("undo failed")
	}
	assertBoardsEqual(t, b, before)
	pawn, ok := b.PieceAt(Position{X: 0, Y: 1})
	if !ok || pawn.Type != Pawn || pawn.HasMoved {
		t.Fatalf("pawn not restored unmoved: %+v ok=%v", pawn, ok)
	}
}

func TestSelfCheckRollbackUndoesPromotion(t *testing.T) {
	b := NewBoard()
	place(b, King, White, 4, 7)
	place(b, Rook, Black, 4, 0) // holds the white king in check
	place(b, King, Black, 0, 0)
	place(b, Pawn, White, 0, 1)
	before := snapshot(b)

	// Promoting does nothing about the check, so the whole move,
	// including the queen swap, must roll back.
	if got := b.MovePiece(Position{X: 0, Y: 1}, Position{X: 0, Y: 0}); got != Invalid {
		t.Fatalf("promotion under check: got %s, want %s", got, Invalid)
	}
	assertBoardsEqual(t, b, before)
	if b.Turn() != White {
		t.Fatalf("turn changed on rejected move: %s", b.Turn())
	}
	if b.MoveCount() != 0 {
		t.Fatal("rejected promotion pushed history")
	}
}

func TestUndoAfterCheckmateResumesPlay(t *testing.T) {
	b := foolsMate(t)

	if !b.UndoLastMove() {
		t.Fatal("undo after checkmate failed")
	}
	if b.GameOver() {
		t.Fatal("gameOver not cleared by undo")
	}
	if _, ok := b.Winner(); ok {
		t.Fatal("winner not cleared by undo")
	}
	if b.Turn() != Black {
		t.Fatalf("turn after undoing the mate: got %s, want %s", b.Turn(), Black)
	}
	// The queen is back home and black can choose a different move.
	queen, ok := b.PieceAt(Position{X: 3, Y: 0})
	if !ok || queen.Type != Queen || queen.Color != Black {
		t.Fatalf("queen not restored to d8: %+v ok=%v", queen, ok)
	}
	if got := b.MovePiece(Position{X: 6, Y: 0}, Position{X: 5, Y: 2}); got != Success {
		t.Fatalf("play after undo: got %s, want %s", got, Success)
	}
}
