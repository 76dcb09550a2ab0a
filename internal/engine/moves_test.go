package engine

import (
	"sort"
	"testing"
)

func sortPositions(ps []Position) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Y != ps[j].Y {
			return ps[i].Y < ps[j].Y
		}
		return ps[i].X < ps[j].X
	})
}

func assertMoves(t *testing.T, got, want []Position) {
	t.Helper()
	sortPositions(got)
	sortPositions(want)
	if len(got) != len(want) {
		t.Fatalf("got %d moves %v, want %d moves %v", len(got), got, len(want), want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("move %d: got %s, want %s (all: got %v, want %v)", i, got[i], want[i], got, want)
		}
	}
}

func TestRookMoves(t *testing.T) {
	b := NewBoard()
	rook := place(b, Rook, White, 3, 3)
	place(b, Pawn, White, 3, 1)  // own piece blocks above, excluded
	place(b, Pawn, Black, 6, 3)  // capturable, ray stops on it
	place(b, King, White, 7, 7)  // out of the rook's lines
	place(b, King, Black, 7, 0)

	want := []Position{
		{X: 3, Y: 2}, // up, stops short of own pawn
		{X: 3, Y: 4}, {X: 3, Y: 5}, {X: 3, Y: 6}, {X: 3, Y: 7}, // down
		{X: 2, Y: 3}, {X: 1, Y: 3}, {X: 0, Y: 3}, // left
		{X: 4, Y: 3}, {X: 5, Y: 3}, {X: 6, Y: 3}, // right, capture inclusive
	}
	assertMoves(t, b.pseudoMoves(rook), want)
}

func TestBishopMoves(t *testing.T) {
	b := NewBoard()
	bishop := place(b, Bishop, Black, 2, 2)
	place(b, Pawn, White, 4, 4) // capturable
	place(b, Pawn, Black, 0, 0) // own piece

	want := []Position{
		{X: 3, Y: 3}, {X: 4, Y: 4}, // toward capture
		{X: 1, Y: 1}, // stops short of own pawn
		{X: 3, Y: 1}, {X: 4, Y: 0},
		{X: 1, Y: 3}, {X: 0, Y: 4},
	}
	assertMoves(t, b.pseudoMoves(bishop), want)
}

func TestQueenMovesAreRookPlusBishop(t *testing.T) {
	b := NewBoard()
	queen := place(b, Queen, White, 4, 4)

	rookView := *queen
	rookView.Type = Rook
	bishopView := *queen
	bishopView.Type = Bishop

	want := append(b.pseudoMoves(&rookView), b.pseudoMoves(&bishopView)...)
	assertMoves(t, b.pseudoMoves(queen), want)
}

func TestKnightMoves(t *testing.T) {
	b := NewBoard()
	b.Initialize()

	// b1 knight in the starting position: only a3 and c3.
	knight := b.squares[7][1]
	want := []Position{{X: 0, Y: 5}, {X: 2, Y: 5}}
	assertMoves(t, b.pseudoMoves(knight), want)

	// Corner knight on an empty board.
	b2 := NewBoard()
	corner := place(b2, Knight, Black, 0, 0)
	assertMoves(t, b2.pseudoMoves(corner), []Position{{X: 1, Y: 2}, {X: 2, Y: 1}})
}

func TestKingMoves(t *testing.T) {
	b := NewBoard()
	king := place(b, King, White, 0, 0)
	place(b, Pawn, White, 0, 1)
	place(b, Pawn, Black, 1, 1)

	want := []Position{{X: 1, Y: 0}, {X: 1, Y: 1}}
	assertMoves(t, b.pseudoMoves(king), want)
}

func TestPawnMoves(t *testing.T) {
	tests := []struct {
		name  string
		setup func(b *Board) *Piece
		want  []Position
	}{
		{
			name: "white on start rank",
			setup: func(b *Board) *Piece {
				return place(b, Pawn, White, 4, 6)
			},
			want: []Position{{X: 4, Y: 5}, {X: 4, Y: 4}},
		},
		{
			name: "black on start rank",
			setup: func(b *Board) *Piece {
				return place(b, Pawn, Black, 4, 1)
			},
			want: []Position{{X: 4, Y: 2}, {X: 4, Y: 3}},
		},
		{
			name: "no double step off the start rank",
			setup: func(b *Board) *Piece {
				return place(b, Pawn, White, 4, 5)
			},
			want: []Position{{X: 4, Y: 4}},
		},
		{
			name: "forward blocked, no capture straight ahead",
			setup: func(b *Board) *Piece {
				place(b, Pawn, Black, 4, 5)
				return place(b, Pawn, White, 4, 6)
			},
			want: nil,
		},
		{
			name: "double step blocked by the far square",
			setup: func(b *Board) *Piece {
				place(b, Knight, Black, 4, 4)
				return place(b, Pawn, White, 4, 6)
			},
			want: []Position{{X: 4, Y: 5}},
		},
		{
			name: "diagonal captures only onto opposing pieces",
			setup: func(b *Board) *Piece {
				place(b, Pawn, Black, 3, 5)
				place(b, Pawn, White, 5, 5)
				place(b, Pawn, Black, 4, 5) // blocks forward
				return place(b, Pawn, White, 4, 6)
			},
			want: []Position{{X: 3, Y: 5}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			pawn := tt.setup(b)
			assertMoves(t, b.pseudoMoves(pawn), tt.want)
		})
	}
}

func TestLegalMovesFiltersSelfCheck(t *testing.T) {
	b := NewBoard()
	place(b, King, White, 4, 7)
	rook := place(b, Rook, White, 4, 4)
	place(b, Queen, Black, 4, 0) // pins the rook to the king
	place(b, King, Black, 0, 0)

	// The pinned rook may only slide along the e-file.
	got := b.LegalMoves(rook.Position)
	for _, m := range got {
		if m.X != 4 {
			t.Fatalf("pinned rook may not leave the file, got %s", m)
		}
	}
	want := []Position{
		{X: 4, Y: 1}, {X: 4, Y: 2}, {X: 4, Y: 3},
		{X: 4, Y: 5}, {X: 4, Y: 6},
		{X: 4, Y: 0}, // capturing the pinning queen stays legal
	}
	assertMoves(t, got, want)
}

func TestLegalMovesEmptySquare(t *testing.T) {
	b := NewBoard()
	b.Initialize()
	if got := b.LegalMoves(Position{X: 4, Y: 4}); got != nil {
		t.Fatalf("empty square: got %v, want nil", got)
	}
	if got := b.LegalMoves(Position{X: 9, Y: 9}); got != nil {
		t.Fatalf("out of bounds: got %v, want nil", got)
	}
}
