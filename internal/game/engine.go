// internal/game/engine.go
//
// Game engine for a single session.
// Responsibilities:
//   - Create games with a deterministically chosen target word.
//   - Validate and apply guesses (length, alphabetic, in the lexicon).
//   - Score guesses through the feedback package.
//   - Track state transitions: playing → won/lost.
//
// The lexicon must be sorted before it is handed to New; the engine only
// reads it.
package game

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/wordlehq/wordle/internal/feedback"
	"github.com/wordlehq/wordle/internal/lexicon"
)

var (
	ErrGameFinished = errors.New("game finished")
	ErrInvalidGuess = errors.New("invalid guess")
	ErrNotInLexicon = errors.New("not in word list")
)

// New constructs a game whose target is lex.Choose(seed).
// maxGuesses bounds the session; 0 means play until solved.
func New(lex *lexicon.Lexicon, seed int64, maxGuesses int) (*Game, error) {
	target, err := lex.Choose(seed)
	if err != nil {
		return nil, err
	}
	return &Game{
		ID:         randomID(),
		Target:     target,
		MaxGuesses: maxGuesses,
		Guesses:    []string{},
		lex:        lex,
	}, nil
}

// RandomSeed returns a crypto-random non-negative seed for New.
func RandomSeed() int64 {
	var b [8]byte
	_, _ = rand.Read(b[:])
	seed := int64(binary.BigEndian.Uint64(b[:]) >> 1)
	return seed
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns the per-letter marks and the new state string
// ("playing"/"won"/"lost").
//
// Validation rules:
//   - Game must not be finished.
//   - Guess must be exactly lexicon.WordLen letters a-z.
//   - Guess must be in the lexicon.
func (g *Game) ApplyGuess(guess string) ([]feedback.Mark, string, error) {
	if g.Finished {
		return nil, g.State(), ErrGameFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != lexicon.WordLen || !isAlpha(guess) {
		return nil, g.State(), ErrInvalidGuess
	}
	if !g.lex.Contains(guess) {
		return nil, g.State(), ErrNotInLexicon
	}

	marks := feedback.Classify(guess, g.Target)
	g.Guesses = append(g.Guesses, guess)

	if feedback.AllCorrect(marks) {
		g.Finished, g.Won = true, true
	} else if g.MaxGuesses > 0 && len(g.Guesses) >= g.MaxGuesses {
		g.Finished = true
	}
	return marks, g.State(), nil
}

// State reports a coarse string representation of the current game state.
func (g *Game) State() string {
	if g.Finished {
		if g.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// isAlpha checks that a string consists only of lowercase a-z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
