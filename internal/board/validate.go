package board

// IsLegal returns true if moving the piece at from to to is legal for
// the side to move: both squares are on the board, from holds a piece of
// the mover's color, to is not a friendly piece, the piece-specific
// geometry accepts the move, and the mover's own king is not left
// attacked.
func (p *Position) IsLegal(from, to Square) bool {
	if !from.IsValid() || !to.IsValid() {
		return false
	}

	pc := p.Board.At(from)
	if pc.Type == NoPieceType || pc.Color != p.SideToMove {
		return false
	}

	if target := p.Board.At(to); target.Type != NoPieceType && target.Color == pc.Color {
		return false
	}

	if !p.pieceMoveOK(pc, from, to) {
		return false
	}

	// Simulate on a copy: no move may leave the mover's king attacked.
	// The promotion kind is irrelevant to the attack query.
	sim := p.Copy()
	sim.Apply(Move{From: from, To: to}, Queen)
	return !sim.IsInCheck(pc.Color)
}

// pieceMoveOK checks the piece-specific geometric predicate.
func (p *Position) pieceMoveOK(pc Piece, from, to Square) bool {
	dr := abs(to.Row() - from.Row())
	dc := abs(to.Col() - from.Col())

	switch pc.Type {
	case Pawn:
		return p.pawnMoveOK(pc, from, to)
	case Knight:
		return (dr == 1 && dc == 2) || (dr == 2 && dc == 1)
	case Bishop:
		return dr == dc && dr > 0 && p.pathClear(from, to)
	case Rook:
		return (dr == 0) != (dc == 0) && p.pathClear(from, to)
	case Queen:
		if dr == dc && dr > 0 {
			return p.pathClear(from, to)
		}
		return (dr == 0) != (dc == 0) && p.pathClear(from, to)
	case King:
		if dr <= 1 && dc <= 1 && dr+dc > 0 {
			return true
		}
		return p.castlingMoveOK(pc, from, to)
	}
	return false
}

// pawnMoveOK checks pawn pushes and captures, including en passant.
func (p *Position) pawnMoveOK(pc Piece, from, to Square) bool {
	dir := pc.Color.PawnDir()
	dr := to.Row() - from.Row()
	dc := to.Col() - from.Col()

	// Single push
	if dc == 0 && dr == dir {
		return p.Board.Empty(to)
	}

	// Two-square push by an unmoved pawn through an empty square
	if dc == 0 && dr == 2*dir && !pc.Moved {
		mid := NewSquare(from.Row()+dir, from.Col())
		return p.Board.Empty(mid) && p.Board.Empty(to)
	}

	// Diagonal capture. The en passant target square is empty; the
	// captured pawn sits beside the capturer.
	if dr == dir && (dc == 1 || dc == -1) {
		if target := p.Board.At(to); target.Type != NoPieceType {
			return target.Color != pc.Color
		}
		return to == p.EnPassant
	}

	return false
}

// castlingMoveOK checks a castling attempt, a king move of two columns
// along its home row: the matching right must be present, the squares
// between king and rook empty, the rook on its corner, and neither the
// king's home square nor the square it crosses attacked. The destination
// square is covered by the self-check simulation like any other move.
func (p *Position) castlingMoveOK(pc Piece, from, to Square) bool {
	homeRow := 7
	if pc.Color == Black {
		homeRow = 0
	}
	if from.Row() != homeRow || to.Row() != homeRow || from.Col() != 4 {
		return false
	}

	kingSide := to.Col() == 6
	if !kingSide && to.Col() != 2 {
		return false
	}
	if !p.Castling.CanCastle(pc.Color, kingSide) {
		return false
	}

	rookCol := 0
	if kingSide {
		rookCol = 7
	}
	if rook := p.Board.At(NewSquare(homeRow, rookCol)); rook.Type != Rook || rook.Color != pc.Color {
		return false
	}

	lo, hi := rookCol+1, 4 // b, c and d files on the queen side
	if kingSide {
		lo, hi = 5, rookCol // f and g files
	}
	for col := lo; col < hi; col++ {
		if !p.Board.Empty(NewSquare(homeRow, col)) {
			return false
		}
	}

	enemy := pc.Color.Other()
	crossed := NewSquare(homeRow, (from.Col()+to.Col())/2)
	if p.IsAttacked(from, enemy) || p.IsAttacked(crossed, enemy) {
		return false
	}

	return true
}

// pathClear returns true if every square strictly between from and to is
// empty. The line must be straight or diagonal.
func (p *Position) pathClear(from, to Square) bool {
	dr := sign(to.Row() - from.Row())
	dc := sign(to.Col() - from.Col())

	r, c := from.Row()+dr, from.Col()+dc
	for r != to.Row() || c != to.Col() {
		if !p.Board.Empty(NewSquare(r, c)) {
			return false
		}
		r += dr
		c += dc
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
