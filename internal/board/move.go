package board

import "fmt"

// Move is a (from, to) pair. The promotion choice is not part of the
// move; the executor receives it separately.
type Move struct {
	From Square
	To   Square
}

// String returns the move in coordinate notation (e.g., "e2e4").
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove parses coordinate notation, optionally with a promotion
// suffix as in "e7e8q", into a move and a promotion piece type.
func ParseMove(s string) (Move, PieceType, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, NoPieceType, fmt.Errorf("invalid move: %s", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, NoPieceType, fmt.Errorf("invalid move: %s", s)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, NoPieceType, fmt.Errorf("invalid move: %s", s)
	}

	promo := NoPieceType
	if len(s) == 5 {
		promo = PieceTypeFromChar(s[4])
		if promo == NoPieceType {
			return Move{}, NoPieceType, fmt.Errorf("invalid promotion piece: %c", s[4])
		}
	}

	return Move{From: from, To: to}, promo, nil
}
