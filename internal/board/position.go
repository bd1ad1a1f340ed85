package board

import "fmt"

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSide  CastlingRights = 1 << iota // K
	WhiteQueenSide                            // Q
	BlackKingSide                             // k
	BlackQueenSide                            // q
	NoCastling     CastlingRights = 0
	AllCastling    CastlingRights = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSide != 0 {
		s += "K"
	}
	if cr&WhiteQueenSide != 0 {
		s += "Q"
	}
	if cr&BlackKingSide != 0 {
		s += "k"
	}
	if cr&BlackQueenSide != 0 {
		s += "q"
	}
	return s
}

// CanCastle returns true if the given side can castle in the given direction.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	if c == White {
		if kingSide {
			return cr&WhiteKingSide != 0
		}
		return cr&WhiteQueenSide != 0
	}
	if kingSide {
		return cr&BlackKingSide != 0
	}
	return cr&BlackQueenSide != 0
}

// Position represents a complete chess position: the board plus the side
// to move, castling availability, the en passant target, and the move
// counters. Positions copy by value; Apply is the only mutator during
// play.
type Position struct {
	Board      Board
	SideToMove Color
	Castling   CastlingRights

	// EnPassant is the square passed over by the most recent two-square
	// pawn advance, or NoSquare.
	EnPassant Square

	HalfMoveClock  int // plies since the last capture or pawn move
	FullMoveNumber int // starts at 1, incremented after Black moves
}

// NewPosition creates the standard starting position.
func NewPosition() *Position {
	return &Position{
		Board:          StartingBoard(),
		SideToMove:     White,
		Castling:       AllCastling,
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
	}
}

// Copy creates an independent copy of the position.
func (p *Position) Copy() *Position {
	newPos := *p
	return &newPos
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (p *Position) PieceAt(sq Square) Piece {
	return p.Board.At(sq)
}

// IsEmpty returns true if the square is empty.
func (p *Position) IsEmpty(sq Square) bool {
	return p.Board.Empty(sq)
}

// KingSquare returns the square of the given color's king, or NoSquare
// if the board has none.
func (p *Position) KingSquare(c Color) Square {
	for sq := A8; sq <= H1; sq++ {
		pc := p.Board.At(sq)
		if pc.Type == King && pc.Color == c {
			return sq
		}
	}
	return NoSquare
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	s := "\n"
	for row := 0; row < 8; row++ {
		s += fmt.Sprintf("%d  ", 8-row)
		for col := 0; col < 8; col++ {
			piece := p.Board.At(NewSquare(row, col))
			if piece.Type == NoPieceType {
				s += ". "
			} else {
				s += piece.String() + " "
			}
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n\n"
	s += fmt.Sprintf("Side to move: %s\n", p.SideToMove)
	s += fmt.Sprintf("Castling: %s\n", p.Castling)
	s += fmt.Sprintf("En passant: %s\n", p.EnPassant)
	s += fmt.Sprintf("Half-move clock: %d\n", p.HalfMoveClock)
	s += fmt.Sprintf("Full move: %d\n", p.FullMoveNumber)
	return s
}

// Validate checks the position invariants.
func (p *Position) Validate() error {
	var kings [2]int
	for sq := A8; sq <= H1; sq++ {
		pc := p.Board.At(sq)
		switch pc.Type {
		case King:
			kings[pc.Color]++
		case Pawn:
			if sq.Row() == 0 || sq.Row() == 7 {
				return fmt.Errorf("pawn on back rank at %s", sq)
			}
		}
	}
	if kings[White] != 1 {
		return fmt.Errorf("white must have exactly one king, got %d", kings[White])
	}
	if kings[Black] != 1 {
		return fmt.Errorf("black must have exactly one king, got %d", kings[Black])
	}

	if p.EnPassant != NoSquare {
		if err := p.validateEnPassant(); err != nil {
			return err
		}
	}

	castles := []struct {
		flag CastlingRights
		c    Color
		king Square
		rook Square
	}{
		{WhiteKingSide, White, E1, H1},
		{WhiteQueenSide, White, E1, A1},
		{BlackKingSide, Black, E8, H8},
		{BlackQueenSide, Black, E8, A8},
	}
	for _, cs := range castles {
		if p.Castling&cs.flag == 0 {
			continue
		}
		if k := p.Board.At(cs.king); k.Type != King || k.Color != cs.c {
			return fmt.Errorf("castling right %s without king on %s", cs.flag.String(), cs.king)
		}
		if r := p.Board.At(cs.rook); r.Type != Rook || r.Color != cs.c {
			return fmt.Errorf("castling right %s without rook on %s", cs.flag.String(), cs.rook)
		}
	}

	if p.FullMoveNumber < 1 {
		return fmt.Errorf("full move number must be at least 1, got %d", p.FullMoveNumber)
	}
	if p.HalfMoveClock < 0 {
		return fmt.Errorf("half-move clock must not be negative, got %d", p.HalfMoveClock)
	}

	return nil
}

// validateEnPassant checks that the en passant target sits on the row
// passed over by a double advance of the side that just moved, with the
// advanced pawn behind it.
func (p *Position) validateEnPassant() error {
	sq := p.EnPassant
	var mover Color
	switch sq.Row() {
	case 5:
		mover = White // white pawn just advanced, black to move
	case 2:
		mover = Black
	default:
		return fmt.Errorf("en passant target %s not on a passed-over row", sq)
	}
	if p.SideToMove == mover {
		return fmt.Errorf("en passant target %s inconsistent with side to move", sq)
	}
	if !p.Board.Empty(sq) {
		return fmt.Errorf("en passant target %s is occupied", sq)
	}
	pawnSq := NewSquare(sq.Row()+mover.PawnDir(), sq.Col())
	if pc := p.Board.At(pawnSq); pc.Type != Pawn || pc.Color != mover {
		return fmt.Errorf("en passant target %s without pawn on %s", sq, pawnSq)
	}
	return nil
}
