package board

// Offset tables in (row, col) deltas.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	bishopDirs    = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	rookDirs      = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// IsAttacked returns true if any piece of the given color attacks the
// square. Attack geometry is pseudo-legal only: it ignores whose turn it
// is and never consults the legality predicate, so check detection
// cannot recurse into itself.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	row, col := sq.Row(), sq.Col()

	// Pawns attack diagonally forward, so the attacking pawn stands one
	// row behind the square relative to its direction of travel.
	pawnRow := row - by.PawnDir()
	if pawnRow >= 0 && pawnRow < 8 {
		if col > 0 {
			if pc := p.Board.At(NewSquare(pawnRow, col-1)); pc.Type == Pawn && pc.Color == by {
				return true
			}
		}
		if col < 7 {
			if pc := p.Board.At(NewSquare(pawnRow, col+1)); pc.Type == Pawn && pc.Color == by {
				return true
			}
		}
	}

	for _, d := range knightOffsets {
		r, c := row+d[0], col+d[1]
		if OnBoard(r, c) {
			if pc := p.Board.At(NewSquare(r, c)); pc.Type == Knight && pc.Color == by {
				return true
			}
		}
	}

	for _, d := range kingOffsets {
		r, c := row+d[0], col+d[1]
		if OnBoard(r, c) {
			if pc := p.Board.At(NewSquare(r, c)); pc.Type == King && pc.Color == by {
				return true
			}
		}
	}

	for _, d := range bishopDirs {
		for r, c := row+d[0], col+d[1]; OnBoard(r, c); r, c = r+d[0], c+d[1] {
			pc := p.Board.At(NewSquare(r, c))
			if pc.Type == NoPieceType {
				continue
			}
			if pc.Color == by && (pc.Type == Bishop || pc.Type == Queen) {
				return true
			}
			break
		}
	}

	for _, d := range rookDirs {
		for r, c := row+d[0], col+d[1]; OnBoard(r, c); r, c = r+d[0], c+d[1] {
			pc := p.Board.At(NewSquare(r, c))
			if pc.Type == NoPieceType {
				continue
			}
			if pc.Color == by && (pc.Type == Rook || pc.Type == Queen) {
				return true
			}
			break
		}
	}

	return false
}

// IsInCheck returns true if the given color's king is attacked.
func (p *Position) IsInCheck(c Color) bool {
	ksq := p.KingSquare(c)
	if ksq == NoSquare {
		return false
	}
	return p.IsAttacked(ksq, c.Other())
}

// InCheck returns true if the side to move is in check.
func (p *Position) InCheck() bool {
	return p.IsInCheck(p.SideToMove)
}
