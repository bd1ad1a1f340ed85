// Package engine implements the computer opponent: a one-ply chooser
// that rates every legal move with a static score and plays the best.
package engine

import "github.com/justchess/justchess/internal/board"

// Engine picks moves for the computer side.
type Engine struct {
	// MoverMaterial adds the moving piece's own material value to every
	// candidate score. King moves then carry the full king value, so
	// the king only moves when nothing else scores at all.
	MoverMaterial bool
}

// NewEngine creates an engine with the default scoring.
func NewEngine() *Engine {
	return &Engine{MoverMaterial: true}
}

// ChooseMove rates all legal moves of the side to move and returns the
// highest scoring one. Ties keep the first move in generation order, so
// the choice is deterministic. The second return is false when no legal
// move exists.
func (e *Engine) ChooseMove(pos *board.Position) (board.Move, bool) {
	var best board.Move
	var bestScore int
	found := false

	for _, m := range pos.GenerateLegalMoves() {
		score := e.scoreMove(pos, m)
		if !found || score > bestScore {
			best = m
			bestScore = score
			found = true
		}
	}

	return best, found
}

// Promotion returns the piece the engine promotes to, always a queen.
func (e *Engine) Promotion() board.PieceType {
	return board.Queen
}
