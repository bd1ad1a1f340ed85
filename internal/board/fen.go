package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFEN tags every FEN parse failure.
var ErrInvalidFEN = errors.New("invalid FEN")

// ParseFEN parses a FEN string and returns a Position.
//
// FEN carries no per-piece move history, so every piece parses as
// unmoved, except that pawns off their starting rank are marked moved to
// keep the two-square advance confined to the start rank. Castling
// legality reads the rights field only.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 6 {
		return nil, fmt.Errorf("need 6 fields, got %d: %w", len(parts), ErrInvalidFEN)
	}

	pos := &Position{
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
	}

	// Parse piece placement (field 0)
	if err := parsePiecePlacement(pos, parts[0]); err != nil {
		return nil, err
	}

	// Parse side to move (field 1)
	switch parts[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, fmt.Errorf("invalid side to move %q: %w", parts[1], ErrInvalidFEN)
	}

	// Parse castling rights (field 2)
	if err := parseCastlingRights(pos, parts[2]); err != nil {
		return nil, err
	}

	// Parse en passant square (field 3)
	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant square %q: %w", parts[3], ErrInvalidFEN)
		}
		pos.EnPassant = sq
	}

	// Parse half-move clock (field 4)
	hmc, err := strconv.Atoi(parts[4])
	if err != nil {
		return nil, fmt.Errorf("invalid half-move clock %q: %w", parts[4], ErrInvalidFEN)
	}
	pos.HalfMoveClock = hmc

	// Parse full-move number (field 5)
	fmn, err := strconv.Atoi(parts[5])
	if err != nil {
		return nil, fmt.Errorf("invalid full-move number %q: %w", parts[5], ErrInvalidFEN)
	}
	pos.FullMoveNumber = fmn

	return pos, nil
}

// parsePiecePlacement parses the piece placement section of a FEN string.
func parsePiecePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("piece placement needs 8 ranks, got %d: %w", len(ranks), ErrInvalidFEN)
	}

	for row, rankStr := range ranks {
		col := 0

		for _, c := range rankStr {
			if col > 7 {
				return fmt.Errorf("rank %d is too wide: %w", 8-row, ErrInvalidFEN)
			}

			if c >= '1' && c <= '8' {
				// Skip empty squares
				col += int(c - '0')
			} else {
				piece := PieceFromChar(byte(c))
				if piece == NoPiece {
					return fmt.Errorf("invalid piece character %q: %w", c, ErrInvalidFEN)
				}
				pos.Board.SetPiece(NewSquare(row, col), piece)
				col++
			}
		}

		if col != 8 {
			return fmt.Errorf("rank %d has %d squares, want 8: %w", 8-row, col, ErrInvalidFEN)
		}
	}

	for sq := A8; sq <= H1; sq++ {
		pc := pos.Board.At(sq)
		if pc.Type == Pawn && sq.Row() != pc.Color.PawnStartRow() {
			pc.Moved = true
			pos.Board.SetPiece(sq, pc)
		}
	}

	return nil
}

// parseCastlingRights parses the castling rights section of a FEN string.
func parseCastlingRights(pos *Position, castling string) error {
	if castling == "-" {
		pos.Castling = NoCastling
		return nil
	}

	for _, c := range castling {
		switch c {
		case 'K':
			pos.Castling |= WhiteKingSide
		case 'Q':
			pos.Castling |= WhiteQueenSide
		case 'k':
			pos.Castling |= BlackKingSide
		case 'q':
			pos.Castling |= BlackQueenSide
		default:
			return fmt.Errorf("invalid castling character %q: %w", c, ErrInvalidFEN)
		}
	}

	return nil
}

// ToFEN returns the FEN representation of the position.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	// Piece placement, rank 8 first
	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			piece := p.Board.At(NewSquare(row, col))
			if piece.Type == NoPieceType {
				empty++
			} else {
				if empty > 0 {
					sb.WriteString(strconv.Itoa(empty))
					empty = 0
				}
				sb.WriteString(piece.String())
			}
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}

	// Side to move
	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	// Castling rights
	sb.WriteByte(' ')
	sb.WriteString(p.Castling.String())

	// En passant
	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())

	// Half-move clock and full-move number
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMoveNumber))

	return sb.String()
}
