package board

// GenerateLegalMoves returns every legal move for the side to move. The
// scan order is stable: from-squares row by row starting at Black's back
// rank, destinations in the same order.
func (p *Position) GenerateLegalMoves() []Move {
	var moves []Move
	for from := A8; from <= H1; from++ {
		pc := p.Board.At(from)
		if pc.Type == NoPieceType || pc.Color != p.SideToMove {
			continue
		}
		for to := A8; to <= H1; to++ {
			if p.IsLegal(from, to) {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}
	return moves
}

// LegalMovesFrom returns the legal destinations for the piece at the
// given square, in the generation scan order.
func (p *Position) LegalMovesFrom(from Square) []Square {
	var targets []Square
	for to := A8; to <= H1; to++ {
		if p.IsLegal(from, to) {
			targets = append(targets, to)
		}
	}
	return targets
}

// HasLegalMoves returns true if the side to move has at least one legal
// move.
func (p *Position) HasLegalMoves() bool {
	for from := A8; from <= H1; from++ {
		pc := p.Board.At(from)
		if pc.Type == NoPieceType || pc.Color != p.SideToMove {
			continue
		}
		for to := A8; to <= H1; to++ {
			if p.IsLegal(from, to) {
				return true
			}
		}
	}
	return false
}
