package engine

// Color identifies a side.
type Color string

const (
	White Color = "white"
	Black Color = "black"
)

// Opponent returns the other side.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// PieceType is the closed set of piece kinds. There is no piece
// hierarchy; every per-type behavior is an exhaustive switch.
type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

// Notation returns the algebraic letter for the piece type. Pawns
// have none.
func (t PieceType) Notation() string {
	switch t {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	}
	return ""
}

// Piece is a single piece on the board. Each occupied square owns
// exactly one Piece; moving transfers it, never aliases it.
type Piece struct {
	Type     PieceType `json:"type"`
	Color    Color     `json:"color"`
	Position Position  `json:"position"`
	HasMoved bool      `json:"hasMoved"`
}

// NewPiece returns a freshly constructed, unmoved piece. Used for the
// starting layout and for promotion.
func NewPiece(t PieceType, c Color, pos Position) *Piece {
	return &Piece{Type: t, Color: c, Position: pos}
}
