// Package game owns the state of a single chess game: the position, the
// user's selection, a pending promotion choice, and the computer
// opponent.
package game

import (
	"fmt"
	"log"

	"github.com/justchess/justchess/internal/board"
	"github.com/justchess/justchess/internal/engine"
	"github.com/justchess/justchess/internal/storage"
)

// Config configures a new session.
type Config struct {
	FEN       string         // starting position, the standard opening when empty
	Opponent  bool           // computer plays Black
	ShowHints bool           // highlight legal destinations of the selection
	Store     *storage.Store // optional stats sink
}

// Snapshot is a read-only view of the session for rendering.
type Snapshot struct {
	Board      board.Board
	SideToMove board.Color
	Selected   board.Square   // NoSquare when nothing is selected
	Highlights []board.Square // legal destinations of the selected piece
	Promotion  board.Square   // destination of a pending promotion, or NoSquare
	Status     board.Status
	ShowHints  bool
}

// Session is the state machine of one game. It accepts selections and
// move attempts while the game is ongoing, parks a move that needs a
// promotion choice until the choice arrives, and refuses all input once
// the game has ended.
type Session struct {
	// Core game state
	position *board.Position
	status   board.Status

	// Selection state
	selected   board.Square
	highlights []board.Square

	// Pending promotion
	promotionFrom board.Square
	promotionTo   board.Square

	// Settings
	opponent  *engine.Engine // nil in a two-player game
	showHints bool

	// Storage
	store    *storage.Store
	recorded bool
}

// New creates a session from the given configuration.
func New(cfg Config) (*Session, error) {
	pos := board.NewPosition()
	if cfg.FEN != "" {
		var err error
		pos, err = board.ParseFEN(cfg.FEN)
		if err != nil {
			return nil, err
		}
		if err := pos.Validate(); err != nil {
			return nil, fmt.Errorf("invalid position: %v", err)
		}
	}

	s := &Session{
		position:      pos,
		status:        pos.Status(),
		selected:      board.NoSquare,
		promotionFrom: board.NoSquare,
		promotionTo:   board.NoSquare,
		showHints:     cfg.ShowHints,
		store:         cfg.Store,
	}
	if cfg.Opponent {
		s.opponent = engine.NewEngine()
	}
	return s, nil
}

// Snapshot returns a read-only view of the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Board:      s.position.Board,
		SideToMove: s.position.SideToMove,
		Selected:   s.selected,
		Highlights: append([]board.Square(nil), s.highlights...),
		Promotion:  s.promotionTo,
		Status:     s.status,
		ShowHints:  s.showHints,
	}
}

// Select selects the piece at (row, col) and computes its legal
// destinations. Selecting the same square again clears the selection, as
// does any square that holds no piece of the side to move. Selections
// are ignored while a promotion choice or the end of the game pends.
func (s *Session) Select(row, col int) {
	if s.status != board.Ongoing || s.promotionPending() {
		return
	}
	if !board.OnBoard(row, col) {
		s.clearSelection()
		return
	}

	sq := board.NewSquare(row, col)
	if sq == s.selected {
		s.clearSelection()
		return
	}

	pc := s.position.PieceAt(sq)
	if pc == board.NoPiece || pc.Color != s.position.SideToMove {
		s.clearSelection()
		return
	}

	s.selected = sq
	s.highlights = s.position.LegalMovesFrom(sq)
}

// AttemptMove validates and plays the move from one square to another.
// An illegal move is silently rejected and only clears the selection. A
// legal move that needs a promotion choice does not change the board;
// the session waits for ChoosePromotion. Returns true if the move was
// accepted.
func (s *Session) AttemptMove(from, to board.Square) bool {
	if s.status != board.Ongoing || s.promotionPending() {
		return false
	}

	if !s.position.IsLegal(from, to) {
		s.clearSelection()
		return false
	}

	if pc := s.position.PieceAt(from); pc.Type == board.Pawn && to.Row() == pc.Color.PromotionRow() {
		s.promotionFrom = from
		s.promotionTo = to
		s.clearSelection()
		return true
	}

	s.position.Apply(board.Move{From: from, To: to}, board.NoPieceType)
	s.afterMove()
	return true
}

// ChoosePromotion completes a pending promotion with the chosen piece.
func (s *Session) ChoosePromotion(kind board.PieceType) error {
	if !s.promotionPending() {
		return fmt.Errorf("no promotion pending")
	}
	switch kind {
	case board.Knight, board.Bishop, board.Rook, board.Queen:
	default:
		return fmt.Errorf("invalid promotion piece: %v", kind)
	}

	m := board.Move{From: s.promotionFrom, To: s.promotionTo}
	s.promotionFrom = board.NoSquare
	s.promotionTo = board.NoSquare

	s.position.Apply(m, kind)
	s.afterMove()
	return nil
}

// PlayOpponent lets the computer play its move and returns it. It does
// nothing unless an opponent is configured, the game is ongoing, and it
// is Black's turn.
func (s *Session) PlayOpponent() (board.Move, bool) {
	if s.opponent == nil || s.status != board.Ongoing || s.promotionPending() {
		return board.Move{}, false
	}
	if s.position.SideToMove != board.Black {
		return board.Move{}, false
	}

	m, ok := s.opponent.ChooseMove(s.position)
	if !ok {
		return board.Move{}, false
	}

	promo := board.NoPieceType
	if pc := s.position.PieceAt(m.From); pc.Type == board.Pawn && m.To.Row() == pc.Color.PromotionRow() {
		promo = s.opponent.Promotion()
	}

	s.position.Apply(m, promo)
	s.afterMove()
	return m, true
}

// ToggleHints flips the hint visibility flag and returns the new value.
func (s *Session) ToggleHints() bool {
	s.showHints = !s.showHints
	return s.showHints
}

// Reset starts a new game from the standard opening.
func (s *Session) Reset() {
	s.position = board.NewPosition()
	s.status = board.Ongoing
	s.promotionFrom = board.NoSquare
	s.promotionTo = board.NoSquare
	s.recorded = false
	s.clearSelection()
}

// Position returns the current position.
func (s *Session) Position() *board.Position {
	return s.position
}

// Status returns the current game status.
func (s *Session) Status() board.Status {
	return s.status
}

// Outcome returns the result string: "1-0", "0-1", "1/2-1/2", or "*"
// while the game is still ongoing.
func (s *Session) Outcome() string {
	return s.position.Result()
}

// PromotionPending returns true while the session waits for a promotion
// choice.
func (s *Session) PromotionPending() bool {
	return s.promotionPending()
}

func (s *Session) promotionPending() bool {
	return s.promotionTo != board.NoSquare
}

func (s *Session) clearSelection() {
	s.selected = board.NoSquare
	s.highlights = nil
}

// afterMove runs after every applied move: it drops the selection,
// reclassifies the game, and records a finished game once.
func (s *Session) afterMove() {
	s.clearSelection()
	s.status = s.position.Status()

	if s.status == board.Ongoing || s.recorded {
		return
	}
	s.recorded = true
	if s.store == nil {
		return
	}
	if err := s.store.RecordResult(s.position.Result()); err != nil {
		log.Printf("Warning: Failed to record result: %v", err)
	}
}
