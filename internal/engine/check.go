package engine

// findKing scans the board for color's king. A missing king should not
// occur in normal play; checkmate ends the game before a king could be
// captured.
func (b *Board) findKing(color Color) (Position, bool) {
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			p := b.squares[y][x]
			if p != nil && p.Type == King && p.Color == color {
				return Position{X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}

// IsInCheck reports whether any opposing piece attacks color's king.
// Recomputed from scratch on demand; no attack maps are maintained.
func (b *Board) IsInCheck(color Color) bool {
	kingPos, ok := b.findKing(color)
	if !ok {
		return false
	}
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			p := b.squares[y][x]
			if p == nil || p.Color == color {
				continue
			}
			if containsPosition(b.pseudoMoves(p), kingPos) {
				return true
			}
		}
	}
	return false
}

// HasLegalMoves reports whether color has at least one pseudo-legal
// move that does not leave its own king in check.
func (b *Board) HasLegalMoves(color Color) bool {
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			p := b.squares[y][x]
			if p == nil || p.Color != color {
				continue
			}
			for _, move := range b.pseudoMoves(p) {
				if !b.leavesKingInCheck(p, move) {
					return true
				}
			}
		}
	}
	return false
}

// LegalMoves returns the pseudo-legal destinations of the piece on pos
// filtered by the self-check rule. Empty for empty squares and
// out-of-bounds positions.
func (b *Board) LegalMoves(pos Position) []Position {
	if !pos.InBounds() {
		return nil
	}
	p := b.squares[pos.Y][pos.X]
	if p == nil {
		return nil
	}
	var moves []Position
	for _, move := range b.pseudoMoves(p) {
		if !b.leavesKingInCheck(p, move) {
			moves = append(moves, move)
		}
	}
	return moves
}

// leavesKingInCheck applies the candidate move, tests the mover's king,
// and restores the board. Restoration is unconditional: the board is
// back in its exact pre-call state on every path.
func (b *Board) leavesKingInCheck(p *Piece, dest Position) bool {
	from := p.Position
	captured := b.squares[dest.Y][dest.X]

	p.Position = dest
	b.squares[dest.Y][dest.X] = p
	b.squares[from.Y][from.X] = nil

	inCheck := b.IsInCheck(p.Color)

	p.Position = from
	b.squares[from.Y][from.X] = p
	b.squares[dest.Y][dest.X] = captured

	return inCheck
}
