package engine

import (
	"testing"

	"github.com/justchess/justchess/internal/board"
)

func parseFEN(t *testing.T, fen string) *board.Position {
	t.Helper()
	pos, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}
	return pos
}

// TestChooseMoveTakesQueen tests that a hanging queen outweighs every
// quiet move.
func TestChooseMoveTakesQueen(t *testing.T) {
	pos := parseFEN(t, "k7/8/8/3q4/4P3/8/PP6/KN6 w - - 0 1")

	m, ok := NewEngine().ChooseMove(pos)
	if !ok {
		t.Fatal("expected a move")
	}
	if m.String() != "e4d5" {
		t.Log(pos)
		t.Errorf("ChooseMove = %s, want e4d5", m)
	}
}

// TestChooseMoveMoverMaterial tests the mover material term. With it the
// king's own value dominates every quiet move; without it the chooser
// develops the knight instead.
func TestChooseMoveMoverMaterial(t *testing.T) {
	e := NewEngine()
	if !e.MoverMaterial {
		t.Fatal("mover material should default on")
	}

	pos := parseFEN(t, "4k3/8/8/8/8/8/8/1N2K3 w - - 0 1")
	m, ok := e.ChooseMove(pos)
	if !ok {
		t.Fatal("expected a move")
	}
	if m.String() != "e1d2" {
		t.Errorf("ChooseMove = %s, want e1d2", m)
	}

	e.MoverMaterial = false
	m, ok = e.ChooseMove(pos)
	if !ok {
		t.Fatal("expected a move")
	}
	if m.String() != "b1a3" {
		t.Errorf("ChooseMove without mover material = %s, want b1a3", m)
	}
}

// TestChooseMoveDevelops tests that leaving the back row beats quiet
// moves of already developed pieces.
func TestChooseMoveDevelops(t *testing.T) {
	pos := parseFEN(t, "k7/8/8/8/3N4/8/5PPP/1N3BKR w - - 0 1")

	m, ok := NewEngine().ChooseMove(pos)
	if !ok {
		t.Fatal("expected a move")
	}
	if m.String() != "b1a3" {
		t.Log(pos)
		t.Errorf("ChooseMove = %s, want b1a3", m)
	}
}

// TestChooseMoveOpening pins down the deterministic reply to 1. e4.
func TestChooseMoveOpening(t *testing.T) {
	pos := board.NewPosition()
	pos.Apply(board.Move{From: board.E2, To: board.E4}, board.NoPieceType)

	m, ok := NewEngine().ChooseMove(pos)
	if !ok {
		t.Fatal("expected a move")
	}
	if m.String() != "b8a6" {
		t.Errorf("ChooseMove = %s, want b8a6", m)
	}
}

func TestChooseMoveNoMoves(t *testing.T) {
	pos := parseFEN(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")

	if _, ok := NewEngine().ChooseMove(pos); ok {
		t.Error("expected no move in a mated position")
	}
}

func TestPromotion(t *testing.T) {
	if got := NewEngine().Promotion(); got != board.Queen {
		t.Errorf("Promotion() = %v, want queen", got)
	}
}
