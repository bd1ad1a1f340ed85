// Package console implements the interactive text front end: a command
// loop that reads moves and commands, drives the game session, and
// prints the board.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/justchess/justchess/internal/board"
	"github.com/justchess/justchess/internal/game"
)

// Console runs a game session over a line-based text protocol.
type Console struct {
	session *game.Session
	in      io.Reader
	out     io.Writer
}

// New creates a console around the given session.
func New(s *game.Session, in io.Reader, out io.Writer) *Console {
	return &Console{session: s, in: in, out: out}
}

// Run starts the main loop and returns when the input ends or the user
// quits.
func (c *Console) Run() {
	c.printBoard()
	c.printStatus()

	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "board":
			c.printBoard()
		case "fen":
			fmt.Fprintln(c.out, c.session.Position().ToFEN())
		case "moves":
			c.handleMoves()
		case "select":
			c.handleSelect(args)
		case "promote":
			c.handlePromote(args)
		case "hints":
			if c.session.ToggleHints() {
				fmt.Fprintln(c.out, "hints on")
			} else {
				fmt.Fprintln(c.out, "hints off")
			}
		case "new":
			c.session.Reset()
			c.printBoard()
		case "help":
			c.printHelp()
		case "quit":
			return
		default:
			c.handleMove(cmd)
		}
	}
}

// handleMove plays a coordinate move like "e2e4" or "e7e8q". Anything
// that does not parse as a move is an unknown command.
func (c *Console) handleMove(s string) {
	m, promo, err := board.ParseMove(s)
	if err != nil {
		fmt.Fprintf(c.out, "unknown command: %s\n", s)
		return
	}

	if c.session.PromotionPending() {
		fmt.Fprintln(c.out, "promotion pending, use: promote q|r|b|n")
		return
	}

	if !c.session.AttemptMove(m.From, m.To) {
		fmt.Fprintf(c.out, "illegal move: %s\n", s)
		return
	}

	if c.session.PromotionPending() {
		if promo == board.NoPieceType {
			fmt.Fprintln(c.out, "promotion: choose with promote q|r|b|n")
			return
		}
		if err := c.session.ChoosePromotion(promo); err != nil {
			fmt.Fprintln(c.out, err)
			return
		}
	}

	c.finishTurn()
}

// finishTurn runs after a completed user move: the opponent replies if
// it is enabled, then the board and status print.
func (c *Console) finishTurn() {
	if m, ok := c.session.PlayOpponent(); ok {
		fmt.Fprintf(c.out, "opponent plays %s\n", m)
	}
	c.printBoard()
	c.printStatus()
}

func (c *Console) handleSelect(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "usage: select <square>")
		return
	}
	sq, err := board.ParseSquare(args[0])
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}

	c.session.Select(sq.Row(), sq.Col())

	snap := c.session.Snapshot()
	if snap.Selected == board.NoSquare {
		fmt.Fprintln(c.out, "nothing selected")
		return
	}
	if !snap.ShowHints {
		return
	}
	if len(snap.Highlights) == 0 {
		fmt.Fprintf(c.out, "no moves from %s\n", snap.Selected)
		return
	}

	targets := make([]string, len(snap.Highlights))
	for i, sq := range snap.Highlights {
		targets[i] = sq.String()
	}
	fmt.Fprintf(c.out, "%s: %s\n", snap.Selected, strings.Join(targets, " "))
}

func (c *Console) handlePromote(args []string) {
	if len(args) != 1 || len(args[0]) != 1 {
		fmt.Fprintln(c.out, "usage: promote q|r|b|n")
		return
	}

	kind := board.PieceTypeFromChar(args[0][0])
	if err := c.session.ChoosePromotion(kind); err != nil {
		fmt.Fprintln(c.out, err)
		return
	}
	c.finishTurn()
}

func (c *Console) handleMoves() {
	moves := c.session.Position().GenerateLegalMoves()
	if len(moves) == 0 {
		fmt.Fprintln(c.out, "no legal moves")
		return
	}

	strs := make([]string, len(moves))
	for i, m := range moves {
		strs[i] = m.String()
	}
	fmt.Fprintln(c.out, strings.Join(strs, " "))
}

func (c *Console) printBoard() {
	fmt.Fprintln(c.out, c.session.Position().String())
}

func (c *Console) printStatus() {
	pos := c.session.Position()

	switch c.session.Status() {
	case board.Checkmate:
		if pos.SideToMove == board.White {
			fmt.Fprintln(c.out, "Black wins by checkmate!")
		} else {
			fmt.Fprintln(c.out, "White wins by checkmate!")
		}
		fmt.Fprintf(c.out, "Result: %s\n", c.session.Outcome())
	case board.Stalemate:
		fmt.Fprintln(c.out, "Draw by stalemate")
		fmt.Fprintf(c.out, "Result: %s\n", c.session.Outcome())
	default:
		if pos.InCheck() {
			fmt.Fprintln(c.out, "Check!")
		}
	}
}

func (c *Console) printHelp() {
	fmt.Fprint(c.out, `Commands:
  e2e4        play a move (e7e8q to promote)
  select e2   show legal destinations
  promote q   choose the promotion piece (q, r, b, n)
  board       print the board
  fen         print the position as FEN
  moves       list all legal moves
  hints       toggle destination hints
  new         start a new game
  quit        exit
`)
}
