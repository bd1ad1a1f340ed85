package board

// Apply executes a move in place and maintains every piece of derived
// state: capture resolution including en passant, castling rook
// relocation, promotion, castling-rights shrink, the en passant target,
// both move counters, and the side to move.
//
// The move must already have passed IsLegal. A pawn reaching its
// promotion row requires promotion to name queen, rook, bishop or
// knight; Apply panics otherwise.
func (p *Position) Apply(m Move, promotion PieceType) {
	from, to := m.From, m.To
	moving := p.Board.At(from)
	captured := p.Board.At(to)

	// En passant lands on the passed-over square; the victim sits beside
	// the capturer.
	if moving.Type == Pawn && to == p.EnPassant && captured.Type == NoPieceType && from.Col() != to.Col() {
		victim := NewSquare(from.Row(), to.Col())
		captured = p.Board.At(victim)
		p.Board.Clear(victim)
	}

	moving.Moved = true
	p.Board.SetPiece(to, moving)
	p.Board.Clear(from)

	// Castling brings the rook across to the square the king crossed.
	if moving.Type == King && abs(to.Col()-from.Col()) == 2 {
		rookFrom := NewSquare(from.Row(), 0)
		if to.Col() > from.Col() {
			rookFrom = NewSquare(from.Row(), 7)
		}
		rook := p.Board.At(rookFrom)
		rook.Moved = true
		p.Board.SetPiece(NewSquare(from.Row(), (from.Col()+to.Col())/2), rook)
		p.Board.Clear(rookFrom)
	}

	if moving.Type == Pawn && to.Row() == moving.Color.PromotionRow() {
		switch promotion {
		case Queen, Rook, Bishop, Knight:
		default:
			panic("board: promotion requires a piece choice")
		}
		p.Board.SetPiece(to, Piece{Type: promotion, Color: moving.Color, Moved: true})
	}

	p.updateCastlingRights(moving, from, to, captured)

	p.EnPassant = NoSquare
	if moving.Type == Pawn && abs(to.Row()-from.Row()) == 2 {
		p.EnPassant = NewSquare((from.Row()+to.Row())/2, from.Col())
	}

	if moving.Type == Pawn || captured.Type != NoPieceType {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}

	if p.SideToMove == Black {
		p.FullMoveNumber++
	}
	p.SideToMove = p.SideToMove.Other()
}

// updateCastlingRights shrinks the castling set: a king move drops both
// of the mover's rights, a rook leaving its home corner drops that
// corner's right, and so does capturing a rook on its home corner.
// Rights only ever shrink; nothing restores them.
func (p *Position) updateCastlingRights(moving Piece, from, to Square, captured Piece) {
	if moving.Type == King {
		if moving.Color == White {
			p.Castling &^= WhiteKingSide | WhiteQueenSide
		} else {
			p.Castling &^= BlackKingSide | BlackQueenSide
		}
	}
	if moving.Type == Rook {
		p.Castling &^= cornerRight(from)
	}
	if captured.Type == Rook {
		p.Castling &^= cornerRight(to)
	}
}

// cornerRight maps a rook home corner to its castling right.
func cornerRight(sq Square) CastlingRights {
	switch sq {
	case H1:
		return WhiteKingSide
	case A1:
		return WhiteQueenSide
	case H8:
		return BlackKingSide
	case A8:
		return BlackQueenSide
	}
	return NoCastling
}
