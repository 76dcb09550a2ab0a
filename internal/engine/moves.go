package engine

var (
	rookDirs   = []Position{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}
	bishopDirs = []Position{{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1}}
	queenDirs  = []Position{
		{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1},
		{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1},
	}
	kingDirs    = queenDirs
	knightJumps = []Position{
		{X: 1, Y: 2}, {X: 2, Y: 1}, {X: -1, Y: 2}, {X: -2, Y: 1},
		{X: 1, Y: -2}, {X: 2, Y: -1}, {X: -1, Y: -2}, {X: -2, Y: -1},
	}
)

// pseudoMoves enumerates the squares the piece could move to by its
// movement pattern and occupancy rules alone, ignoring whether the
// move would leave its own king in check. That filter is applied one
// layer up. The board is never mutated and the side to move is never
// consulted.
func (b *Board) pseudoMoves(p *Piece) []Position {
	switch p.Type {
	case Rook:
		return b.rayMoves(p, rookDirs)
	case Bishop:
		return b.rayMoves(p, bishopDirs)
	case Queen:
		return b.rayMoves(p, queenDirs)
	case Knight:
		return b.stepMoves(p, knightJumps)
	case King:
		return b.stepMoves(p, kingDirs)
	case Pawn:
		return b.pawnMoves(p)
	}
	return nil
}

// rayMoves walks each direction one square at a time. A ray stops at
// the board edge or at the first occupied square, which is included
// when it holds an opposing piece.
func (b *Board) rayMoves(p *Piece, dirs []Position) []Position {
	var moves []Position
	for _, d := range dirs {
		x, y := p.Position.X+d.X, p.Position.Y+d.Y
		for InBounds(x, y) {
			target := b.squares[y][x]
			if target == nil {
				moves = append(moves, Position{X: x, Y: y})
			} else {
				if target.Color != p.Color {
					moves = append(moves, Position{X: x, Y: y})
				}
				break
			}
			x += d.X
			y += d.Y
		}
	}
	return moves
}

// stepMoves checks each fixed offset independently.
func (b *Board) stepMoves(p *Piece, offsets []Position) []Position {
	var moves []Position
	for _, d := range offsets {
		x, y := p.Position.X+d.X, p.Position.Y+d.Y
		if !InBounds(x, y) {
			continue
		}
		if target := b.squares[y][x]; target == nil || target.Color != p.Color {
			moves = append(moves, Position{X: x, Y: y})
		}
	}
	return moves
}

// pawnMoves: one step forward onto an empty square, two from the
// starting rank when both squares are empty, and diagonal captures
// only onto occupied opposing squares. No en passant.
func (b *Board) pawnMoves(p *Piece) []Position {
	var moves []Position
	dir, startRank := 1, 1
	if p.Color == White {
		dir, startRank = -1, BoardSize-2
	}
	x, y := p.Position.X, p.Position.Y

	if InBounds(x, y+dir) && b.squares[y+dir][x] == nil {
		moves = append(moves, Position{X: x, Y: y + dir})
		if y == startRank && InBounds(x, y+2*dir) && b.squares[y+2*dir][x] == nil {
			moves = append(moves, Position{X: x, Y: y + 2*dir})
		}
	}
	for _, dx := range []int{-1, 1} {
		nx, ny := x+dx, y+dir
		if !InBounds(nx, ny) {
			continue
		}
		if target := b.squares[ny][nx]; target != nil && target.Color != p.Color {
			moves = append(moves, Position{X: nx, Y: ny})
		}
	}
	return moves
}
