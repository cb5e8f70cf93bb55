// cmd/wordle/main.go
//
// Terminal word-guessing game.
//
//	usage: wordle [-daily] <word-list-file> [seed-number]
//
// The word list is one five-letter word per line. With a seed the target
// word is fully deterministic; without one the current time seeds the
// pick, unless -daily is set, in which case the UTC date (plus DAILY_SALT)
// derives the seed so everyone plays the same word that day.
//
// Guesses are read from stdin, one per line. "quit" or EOF reveals the
// word and exits. Wins are tallied in a scoreboard file (SCORES_FILE,
// default scores.txt) and the scoreboard is printed after each win.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wordlehq/wordle/internal/daily"
	"github.com/wordlehq/wordle/internal/game"
	"github.com/wordlehq/wordle/internal/history"
	"github.com/wordlehq/wordle/internal/lexicon"
	"github.com/wordlehq/wordle/internal/term"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: wordle [-daily] <word-list-file> [seed-number]")
	os.Exit(1)
}

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "warn")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	dailyMode := flag.Bool("daily", false, "play the word of the day")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 || flag.NArg() > 2 {
		usage()
	}

	lex := loadLexicon(flag.Arg(0))

	var seed int64
	switch {
	case flag.NArg() == 2:
		seed = parseSeed(flag.Arg(1))
	case *dailyMode:
		seed = daily.Seed(time.Now(), getEnv("DAILY_SALT", "local_dev_salt"))
	default:
		seed = time.Now().Unix()
	}

	g, err := game.New(lex, seed, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("start game")
	}

	play(g)
}

// loadLexicon reads, sorts, and duplicate-checks the word list.
// Any failure is fatal: a malformed lexicon must never be used for play.
func loadLexicon(path string) *lexicon.Lexicon {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("can't open the word list")
	}
	defer f.Close()

	lex, err := lexicon.Load(f)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("invalid word file")
	}
	if err := lex.Sort(); err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("invalid word file")
	}
	return lex
}

// parseSeed accepts only a string of digits that fits non-negatively in
// an int64; anything else is a usage error.
func parseSeed(s string) int64 {
	if s == "" {
		usage()
	}
	var seed int64
	for _, r := range s {
		if r < '0' || r > '9' {
			usage()
		}
		seed = seed*10 + int64(r-'0')
		if seed < 0 { // overflow
			usage()
		}
	}
	return seed
}

// play runs the interactive loop until the word is found or the player
// quits.
func play(g *game.Game) {
	in := bufio.NewReader(os.Stdin)
	for {
		line, err := in.ReadString('\n')
		word := strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if (err != nil && line == "") || word == "quit" {
			fmt.Printf("The word was %q\n", g.Target)
			return
		}

		marks, state, gerr := g.ApplyGuess(word)
		if gerr != nil {
			fmt.Println("Invalid guess")
			continue
		}
		if state == "won" {
			finish(g.NumGuesses())
			return
		}
		fmt.Println(term.Render(word, marks))

		if err != nil { // EOF after a final unterminated guess
			fmt.Printf("The word was %q\n", g.Target)
			return
		}
	}
}

// finish reports the win and updates the persisted scoreboard.
func finish(numGuesses int) {
	if numGuesses == 1 {
		fmt.Printf("Solved in %d guess\n", numGuesses)
	} else {
		fmt.Printf("Solved in %d guesses\n", numGuesses)
	}
	h, err := history.Update(getEnv("SCORES_FILE", "scores.txt"), numGuesses)
	if err != nil {
		log.Fatal().Err(err).Msg("update score history")
	}
	fmt.Print(h)
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
