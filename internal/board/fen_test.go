package board

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseFENStartingPosition(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	if pos.SideToMove != White {
		t.Errorf("SideToMove = %v, want White", pos.SideToMove)
	}
	if pos.Castling != AllCastling {
		t.Errorf("Castling = %v, want KQkq", pos.Castling)
	}
	if pos.EnPassant != NoSquare {
		t.Errorf("EnPassant = %v, want none", pos.EnPassant)
	}
	if pos.HalfMoveClock != 0 || pos.FullMoveNumber != 1 {
		t.Errorf("clocks = %d/%d, want 0/1", pos.HalfMoveClock, pos.FullMoveNumber)
	}

	if diff := cmp.Diff(NewPosition(), pos); diff != "" {
		t.Errorf("parsed starting position differs from constructed (-want +got):\n%s", diff)
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/1pp1pppp/p2P4/8/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 4 10",
		"4k3/8/8/8/8/8/8/4K3 b - - 12 40",
	}

	for _, fen := range fens {
		t.Run("", func(t *testing.T) {
			pos, err := ParseFEN(fen)
			if err != nil {
				t.Fatal("Error parsing FEN:", err)
			}
			if got := pos.ToFEN(); got != fen {
				t.Errorf("ToFEN() = %q, want %q", got, fen)
			}
		})
	}
}

func TestParseFENIgnoresExtraFields(t *testing.T) {
	pos, err := ParseFEN(StartFEN + " moves e2e4")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}
	if got := pos.ToFEN(); got != StartFEN {
		t.Errorf("ToFEN() = %q, want %q", got, StartFEN)
	}
}

func TestParseFENErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"missing fields", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"},
		{"too few ranks", "8/8/8/8 w - - 0 1"},
		{"rank too wide", "rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"rank too narrow", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"unknown piece", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1"},
		{"bad side to move", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1"},
		{"bad castling", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KXkq - 0 1"},
		{"bad en passant", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9 0 1"},
		{"bad half-move clock", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1"},
		{"bad full-move number", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 y"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseFEN(tc.fen)
			if err == nil {
				t.Fatalf("ParseFEN(%q) succeeded, want error", tc.fen)
			}
			if !errors.Is(err, ErrInvalidFEN) {
				t.Errorf("error %v does not wrap ErrInvalidFEN", err)
			}
		})
	}
}

// Pawns placed off their starting rank must lose the two-square advance.
func TestParseFENPawnHistory(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/4P3/8/P7/4K3 w - - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	if pos.Board.At(E4).Moved != true {
		t.Error("pawn on e4 should be marked as moved")
	}
	if pos.Board.At(A2).Moved != false {
		t.Error("pawn on a2 should not be marked as moved")
	}
	if !pos.IsLegal(A2, A4) {
		t.Error("a2a4 should be legal")
	}
	if pos.IsLegal(E4, E6) {
		t.Error("e4 pawn kept its two-square advance after FEN load")
	}
}
