package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/justchess/justchess/internal/board"
	"github.com/justchess/justchess/internal/game"
)

// run drives a console session with scripted input and returns the
// session and everything it printed.
func run(t *testing.T, cfg game.Config, input string) (*game.Session, string) {
	t.Helper()
	s, err := game.New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var out bytes.Buffer
	New(s, strings.NewReader(input), &out).Run()
	return s, out.String()
}

func TestRunFoolsMate(t *testing.T) {
	_, out := run(t, game.Config{}, "f2f3\ne7e5\ng2g4\nd8h4\n")

	if !strings.Contains(out, "Black wins by checkmate!") {
		t.Errorf("output is missing the checkmate verdict:\n%s", out)
	}
	if !strings.Contains(out, "Result: 0-1") {
		t.Errorf("output is missing the result line:\n%s", out)
	}
}

func TestRunNewGame(t *testing.T) {
	_, out := run(t, game.Config{}, "f2f3\ne7e5\ng2g4\nd8h4\nnew\nfen\n")

	if !strings.Contains(out, board.StartFEN) {
		t.Errorf("output is missing the fresh position FEN:\n%s", out)
	}
}

func TestRunIllegalMove(t *testing.T) {
	s, out := run(t, game.Config{}, "e2e5\n")

	if !strings.Contains(out, "illegal move: e2e5") {
		t.Errorf("output is missing the rejection:\n%s", out)
	}
	if s.Position().SideToMove != board.White {
		t.Error("illegal move changed the position")
	}
}

func TestRunOpponentReplies(t *testing.T) {
	s, out := run(t, game.Config{Opponent: true}, "e2e4\n")

	if !strings.Contains(out, "opponent plays b8a6") {
		t.Errorf("output is missing the opponent move:\n%s", out)
	}
	if s.Position().SideToMove != board.White {
		t.Error("expected the move to be back with White")
	}
}

func TestRunPromotionLongForm(t *testing.T) {
	s, _ := run(t, game.Config{FEN: "4k3/P7/8/8/8/8/8/4K3 w - - 0 1"}, "a7a8q\n")

	if pc := s.Position().Board.At(board.A8); pc.Type != board.Queen {
		t.Errorf("a8 holds %v, want a queen", pc)
	}
}

func TestRunPromotionPrompt(t *testing.T) {
	s, out := run(t, game.Config{FEN: "4k3/P7/8/8/8/8/8/4K3 w - - 0 1"},
		"a7a8\ne1e2\npromote n\n")

	if !strings.Contains(out, "promote q|r|b|n") {
		t.Errorf("output is missing the promotion prompt:\n%s", out)
	}
	// The king move must be refused while the choice pends.
	if pc := s.Position().Board.At(board.A8); pc.Type != board.Knight {
		t.Errorf("a8 holds %v, want a knight", pc)
	}
	if s.Position().SideToMove != board.Black {
		t.Error("expected Black to move after the promotion")
	}
}

func TestRunCommands(t *testing.T) {
	_, out := run(t, game.Config{ShowHints: true},
		"select e2\nmoves\nhints\nfen\nbogus\nquit\n")

	if !strings.Contains(out, "e2: e4 e3") {
		t.Errorf("output is missing the selection hints:\n%s", out)
	}
	if !strings.Contains(out, "g1f3") {
		t.Errorf("output is missing the move list:\n%s", out)
	}
	if !strings.Contains(out, "hints off") {
		t.Errorf("output is missing the hints toggle:\n%s", out)
	}
	if !strings.Contains(out, board.StartFEN) {
		t.Errorf("output is missing the FEN dump:\n%s", out)
	}
	if !strings.Contains(out, "unknown command: bogus") {
		t.Errorf("output is missing the unknown command warning:\n%s", out)
	}
}

func TestRunCheckAnnounced(t *testing.T) {
	// 1. e4 e5 2. Qh5 Nc6 3. Qxf7+ is check but not mate (Ke7 escapes
	// after the king takes: Kxf7 is legal, so just check).
	_, out := run(t, game.Config{},
		"e2e4\ne7e5\nd1h5\nb8c6\nh5f7\n")

	if !strings.Contains(out, "Check!") {
		t.Errorf("output is missing the check notice:\n%s", out)
	}
}
