// cmd/wordle-server/main.go
//
// HTTP server entrypoint. Loads the lexicon (WORDS_FILE, or the embedded
// default list), opens the SQLite result store, and serves the game API.
package main

import (
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wordlehq/wordle/assets"
	"github.com/wordlehq/wordle/internal/history"
	"github.com/wordlehq/wordle/internal/httpserver"
	"github.com/wordlehq/wordle/internal/lexicon"
	"github.com/wordlehq/wordle/internal/store"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	lex, err := loadLexicon()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	log.Info().Int("words", lex.Len()).Msg("lexicon ready")

	hist, err := history.OpenSQL(getEnv("DB_PATH", "./data/wordle.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open result store")
	}
	defer hist.Close()

	mem := store.NewMemoryStore()
	srv := httpserver.New(mem, hist, lex)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Msg("starting wordle-server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// loadLexicon reads WORDS_FILE if set, the embedded list otherwise, then
// sorts and duplicate-checks it. A malformed list refuses to start the
// server; there is no degraded mode.
func loadLexicon() (*lexicon.Lexicon, error) {
	var src io.Reader = assets.DefaultWords()
	if path := os.Getenv("WORDS_FILE"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		src = f
	}
	lex, err := lexicon.Load(src)
	if err != nil {
		return nil, err
	}
	if err := lex.Sort(); err != nil {
		return nil, err
	}
	return lex, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
