// internal/game/types.go
//
// Core type definitions for a game session.
package game

import (
	"github.com/wordlehq/wordle/internal/lexicon"
)

// Game holds the state of a single session.
type Game struct {
	ID         string   // unique identifier (random hex string)
	Target     string   // the word being guessed (always lowercase)
	MaxGuesses int      // guess limit; 0 means unlimited (terminal play)
	Guesses    []string // valid guesses made so far
	Finished   bool     // true once the game is over
	Won        bool     // true if the game finished with the word found

	lex *lexicon.Lexicon // membership checks for incoming guesses
}

// NumGuesses reports how many valid guesses have been made.
func (g *Game) NumGuesses() int { return len(g.Guesses) }
