package board

// Status classifies a position for the side to move.
type Status uint8

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// IsCheckmate returns true if the side to move is checkmated.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// IsStalemate returns true if the side to move has no legal move but is
// not in check.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}

// Status classifies the position: checkmate or stalemate for the side to
// move, otherwise ongoing.
func (p *Position) Status() Status {
	if p.HasLegalMoves() {
		return Ongoing
	}
	if p.InCheck() {
		return Checkmate
	}
	return Stalemate
}

// Result returns the conventional result string: "1-0" or "0-1" after a
// checkmate, "1/2-1/2" after a stalemate, "*" while the game is ongoing.
func (p *Position) Result() string {
	switch p.Status() {
	case Checkmate:
		if p.SideToMove == White {
			return "0-1"
		}
		return "1-0"
	case Stalemate:
		return "1/2-1/2"
	}
	return "*"
}
