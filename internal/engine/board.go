package engine

// MoveResult classifies the outcome of a MovePiece call. It is the
// sole contract surface of the engine: callers never need to re-derive
// game state from the board.
type MoveResult int

const (
	Invalid MoveResult = iota
	Success
	Check
	Checkmate
	Stalemate
)

func (r MoveResult) String() string {
	switch r {
	case Invalid:
		return "invalid"
	case Success:
		return "success"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "unknown"
}

// Board holds the full game state: the 8x8 grid, whose turn it is,
// whether the game has ended, and the undo history. A Board is not
// safe for concurrent use; callers serialize access.
type Board struct {
	squares     [BoardSize][BoardSize]*Piece
	currentTurn Color
	gameOver    bool
	winner      Color // empty until a side wins; stays empty on stalemate
	history     []HistoryEntry
}

// NewBoard returns an empty board with white to move. Call Initialize
// to place the standard starting pieces.
func NewBoard() *Board {
	return &Board{currentTurn: White}
}

// Initialize places the standard 32-piece starting layout and resets
// turn, game-over state, and history.
func (b *Board) Initialize() {
	b.squares = [BoardSize][BoardSize]*Piece{}
	b.currentTurn = White
	b.gameOver = false
	b.winner = ""
	b.history = nil

	backRank := [BoardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for x, t := range backRank {
		b.squares[0][x] = NewPiece(t, Black, Position{X: x, Y: 0})
		b.squares[BoardSize-1][x] = NewPiece(t, White, Position{X: x, Y: BoardSize - 1})
	}
	for x := 0; x < BoardSize; x++ {
		b.squares[1][x] = NewPiece(Pawn, Black, Position{X: x, Y: 1})
		b.squares[BoardSize-2][x] = NewPiece(Pawn, White, Position{X: x, Y: BoardSize - 2})
	}
}

// Turn returns the side to move.
func (b *Board) Turn() Color {
	return b.currentTurn
}

// GameOver reports whether the game has ended.
func (b *Board) GameOver() bool {
	return b.gameOver
}

// Winner returns the winning side. ok is false while the game is
// running and after a stalemate.
func (b *Board) Winner() (Color, bool) {
	if b.winner == "" {
		return "", false
	}
	return b.winner, true
}

// PieceAt returns a read-only view of the piece on pos. ok is false
// for empty squares and out-of-bounds positions.
func (b *Board) PieceAt(pos Position) (Piece, bool) {
	if !pos.InBounds() {
		return Piece{}, false
	}
	p := b.squares[pos.Y][pos.X]
	if p == nil {
		return Piece{}, false
	}
	return *p, true
}

// MovePiece attempts to move the piece on from to to and returns the
// result classification. The board is mutated only when the move
// commits; every rejection path leaves it untouched.
func (b *Board) MovePiece(from, to Position) MoveResult {
	if b.gameOver {
		return Invalid
	}
	if !from.InBounds() || !to.InBounds() {
		return Invalid
	}
	piece := b.squares[from.Y][from.X]
	if piece == nil || piece.Color != b.currentTurn {
		return Invalid
	}
	if !containsPosition(b.pseudoMoves(piece), to) {
		return Invalid
	}

	// Snapshot the pre-move state for history before anything mutates.
	movedCopy := *piece
	var capturedCopy *Piece
	if target := b.squares[to.Y][to.X]; target != nil {
		c := *target
		capturedCopy = &c
	}
	previousTurn := b.currentTurn

	originalTarget := b.squares[to.Y][to.X]
	piece.Position = to
	piece.HasMoved = true
	b.squares[to.Y][to.X] = piece
	b.squares[from.Y][from.X] = nil

	promoted := b.promoteIfNeeded(to)

	if b.IsInCheck(previousTurn) {
		// Illegal after the fact: restore the exact pre-move board,
		// including the promotion swap and the HasMoved flag.
		*piece = movedCopy
		b.squares[from.Y][from.X] = piece
		b.squares[to.Y][to.X] = originalTarget
		return Invalid
	}

	b.currentTurn = b.currentTurn.Opponent()
	b.history = append(b.history, HistoryEntry{
		From:      from,
		To:        to,
		Moved:     movedCopy,
		Captured:  capturedCopy,
		Promotion: promoted,
		Turn:      previousTurn,
	})

	inCheck := b.IsInCheck(b.currentTurn)
	hasMoves := b.HasLegalMoves(b.currentTurn)
	switch {
	case inCheck && !hasMoves:
		b.gameOver = true
		b.winner = previousTurn
		return Checkmate
	case !inCheck && !hasMoves:
		b.gameOver = true
		b.winner = ""
		return Stalemate
	case inCheck:
		return Check
	}
	return Success
}

// promoteIfNeeded swaps a pawn that landed on the far rank for a new
// queen of the same color. Promotion is always to a queen; there is no
// under-promotion choice.
func (b *Board) promoteIfNeeded(pos Position) bool {
	p := b.squares[pos.Y][pos.X]
	if p == nil || p.Type != Pawn {
		return false
	}
	if !isPromotionRank(p.Color, pos.Y) {
		return false
	}
	b.squares[pos.Y][pos.X] = NewPiece(Queen, p.Color, pos)
	return true
}

func isPromotionRank(c Color, y int) bool {
	return (c == White && y == 0) || (c == Black && y == BoardSize-1)
}
