package engine

import "fmt"

// BoardSize is the width and height of the board in squares.
const BoardSize = 8

// Position is a square on the board: X is the file (0 = a), Y is the
// rank counted from the black side (0 = rank 8). Positions compare by
// value.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// InBounds reports whether both coordinates lie in [0, BoardSize).
func InBounds(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}

// InBounds reports whether the position lies on the board.
func (p Position) InBounds() bool {
	return InBounds(p.X, p.Y)
}

// String returns the square in algebraic form, e.g. "e4".
func (p Position) String() string {
	return fmt.Sprintf("%c%d", 'a'+p.X, BoardSize-p.Y)
}

func containsPosition(moves []Position, pos Position) bool {
	for _, m := range moves {
		if m == pos {
			return true
		}
	}
	return false
}
