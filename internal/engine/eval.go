package engine

import "github.com/justchess/justchess/internal/board"

// scoreMove rates a candidate move on the position as it stands, before
// the move is played.
func (e *Engine) scoreMove(pos *board.Position, m board.Move) int {
	moving := pos.PieceAt(m.From)

	score := pos.PieceAt(m.To).Value()
	if e.MoverMaterial {
		score += moving.Value()
	}
	if moving.Type == board.King {
		score -= 5
	}
	score += developmentBonus(moving, m)
	score += positionalValue(pos, moving, m)

	return score
}

// developmentBonus rewards minor pieces leaving a back row and pawns
// reaching the central rows.
func developmentBonus(moving board.Piece, m board.Move) int {
	switch moving.Type {
	case board.Knight, board.Bishop:
		if row := m.From.Row(); row == 0 || row == 7 {
			return 3
		}
	case board.Pawn:
		if row := m.To.Row(); row == 2 || row == 5 {
			return 1
		}
	}
	return 0
}

func positionalValue(pos *board.Position, moving board.Piece, m board.Move) int {
	row, col := m.To.Row(), m.To.Col()

	switch moving.Type {
	case board.Pawn:
		v := (row - m.From.Row()) * moving.Color.PawnDir()
		if col == 3 || col == 4 {
			v++
		}
		return v
	case board.Knight:
		if central(row, col) {
			return 2
		}
	case board.Bishop:
		if diagonalsOpen(pos, m.To) {
			return 2
		}
	case board.Rook:
		if fileEmpty(pos, col) {
			return 3
		}
	case board.Queen:
		if central(row, col) {
			return 1
		}
	case board.King:
		if pos.IsAttacked(m.To, moving.Color.Other()) {
			return -10
		}
	}
	return 0
}

func central(row, col int) bool {
	return (row == 3 || row == 4) && (col == 3 || col == 4)
}

// diagonalsOpen reports whether every square on all four diagonal rays
// from sq is empty out to the board edge.
func diagonalsOpen(pos *board.Position, sq board.Square) bool {
	row, col := sq.Row(), sq.Col()
	for _, d := range [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}} {
		for r, c := row+d[0], col+d[1]; board.OnBoard(r, c); r, c = r+d[0], c+d[1] {
			if !pos.IsEmpty(board.NewSquare(r, c)) {
				return false
			}
		}
	}
	return true
}

// fileEmpty reports whether no piece stands anywhere on the file.
func fileEmpty(pos *board.Position, col int) bool {
	for row := 0; row < 8; row++ {
		if !pos.IsEmpty(board.NewSquare(row, col)) {
			return false
		}
	}
	return true
}
