package board

// Board is the 8x8 piece grid, indexed by Square. Pieces are held by
// value, so copying a Board shares nothing with the original. The zero
// value is an empty board.
type Board [64]Piece

// At returns the piece at the given square.
func (b *Board) At(sq Square) Piece {
	return b[sq]
}

// SetPiece places a piece on a square.
func (b *Board) SetPiece(sq Square, p Piece) {
	b[sq] = p
}

// Clear empties a square.
func (b *Board) Clear(sq Square) {
	b[sq] = NoPiece
}

// Empty returns true if the square holds no piece.
func (b *Board) Empty(sq Square) bool {
	return b[sq].Type == NoPieceType
}

// StartingBoard returns the standard opening setup.
func StartingBoard() Board {
	var b Board
	back := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < 8; col++ {
		b.SetPiece(NewSquare(0, col), Piece{Type: back[col], Color: Black})
		b.SetPiece(NewSquare(1, col), Piece{Type: Pawn, Color: Black})
		b.SetPiece(NewSquare(6, col), Piece{Type: Pawn, Color: White})
		b.SetPiece(NewSquare(7, col), Piece{Type: back[col], Color: White})
	}
	return b
}
