// justchess - a terminal chess game with an optional computer opponent
package main

import (
	"flag"
	"log"
	"os"

	"github.com/justchess/justchess/internal/console"
	"github.com/justchess/justchess/internal/game"
	"github.com/justchess/justchess/internal/storage"
)

var (
	fen       = flag.String("fen", "", "initial position in FEN; the standard opening when empty")
	boardSize = flag.Int("board-size", 0, "board size hint in pixels for graphical front ends")
	opponent  = flag.Bool("opponent", false, "play against the computer (computer plays Black)")
)

func main() {
	flag.Parse()

	// The store holds preferences and lifetime stats. Losing it is not
	// worth refusing to play.
	store, err := storage.Open("")
	if err != nil {
		log.Printf("Warning: storage unavailable, playing without persistence: %v", err)
		store = nil
	} else {
		defer store.Close()
	}

	prefs := storage.DefaultPreferences()
	if store != nil {
		if prefs, err = store.LoadPreferences(); err != nil {
			log.Printf("Warning: failed to load preferences: %v", err)
			prefs = storage.DefaultPreferences()
		}
	}

	// Flags passed on the command line win over stored preferences.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "opponent":
			prefs.Opponent = *opponent
		case "board-size":
			prefs.BoardSize = *boardSize
		}
	})

	session, err := game.New(game.Config{
		FEN:       *fen,
		Opponent:  prefs.Opponent,
		ShowHints: prefs.ShowHints,
		Store:     store,
	})
	if err != nil {
		log.Fatalf("invalid --fen: %v", err)
	}

	if store != nil {
		if err := store.SavePreferences(prefs); err != nil {
			log.Printf("Warning: failed to save preferences: %v", err)
		}
	}

	console.New(session, os.Stdin, os.Stdout).Run()
}
