package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PawnDir returns the row delta of the color's pawn pushes. White pawns
// move toward row 0, black pawns toward row 7.
func (c Color) PawnDir() int {
	if c == White {
		return -1
	}
	return 1
}

// PawnStartRow returns the row the color's pawns start on.
func (c Color) PawnStartRow() int {
	if c == White {
		return 6
	}
	return 1
}

// PromotionRow returns the row the color's pawns promote on.
func (c Color) PromotionRow() int {
	if c == White {
		return 0
	}
	return 7
}

// PieceType represents the type of a chess piece. The zero value marks an
// empty square.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the FEN character for the piece type (lowercase).
func (pt PieceType) Char() byte {
	chars := []byte{' ', 'p', 'n', 'b', 'r', 'q', 'k'}
	if pt > King {
		return ' '
	}
	return chars[pt]
}

// PieceTypeFromChar converts a promotion letter to a piece type.
func PieceTypeFromChar(c byte) PieceType {
	switch c {
	case 'q', 'Q':
		return Queen
	case 'r', 'R':
		return Rook
	case 'b', 'B':
		return Bishop
	case 'n', 'N':
		return Knight
	default:
		return NoPieceType
	}
}

// PieceValue is the material value of each piece type, indexed by
// PieceType, as used by the move chooser.
var PieceValue = [7]int{0, 1, 3, 3, 5, 9, 1000}

// Piece is a piece on the board together with its movement history.
// The zero value is the empty square.
type Piece struct {
	Type  PieceType
	Color Color
	Moved bool
}

// NoPiece is the empty square value.
var NoPiece = Piece{}

// NewPiece creates an unmoved Piece from PieceType and Color.
func NewPiece(pt PieceType, c Color) Piece {
	if pt == NoPieceType || pt > King || c >= NoColor {
		return NoPiece
	}
	return Piece{Type: pt, Color: c}
}

// String returns the FEN character for the piece.
// Uppercase for white, lowercase for black.
func (p Piece) String() string {
	if p.Type == NoPieceType {
		return " "
	}
	chars := "PNBRQKpnbrqk"
	i := int(p.Type) - 1
	if p.Color == Black {
		i += 6
	}
	return string(chars[i])
}

// PieceFromChar converts a FEN character to a Piece.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'P':
		return Piece{Type: Pawn, Color: White}
	case 'N':
		return Piece{Type: Knight, Color: White}
	case 'B':
		return Piece{Type: Bishop, Color: White}
	case 'R':
		return Piece{Type: Rook, Color: White}
	case 'Q':
		return Piece{Type: Queen, Color: White}
	case 'K':
		return Piece{Type: King, Color: White}
	case 'p':
		return Piece{Type: Pawn, Color: Black}
	case 'n':
		return Piece{Type: Knight, Color: Black}
	case 'b':
		return Piece{Type: Bishop, Color: Black}
	case 'r':
		return Piece{Type: Rook, Color: Black}
	case 'q':
		return Piece{Type: Queen, Color: Black}
	case 'k':
		return Piece{Type: King, Color: Black}
	default:
		return NoPiece
	}
}

// Value returns the material value of the piece.
func (p Piece) Value() int {
	return PieceValue[p.Type]
}
