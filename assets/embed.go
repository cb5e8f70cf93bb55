// Package assets embeds a small default word list so the server can run
// without any files configured. Real deployments point WORDS_FILE at a
// full dictionary.
package assets

import (
	"bytes"
	_ "embed"
	"io"
)

//go:embed words.txt
var words []byte

// DefaultWords returns a reader over the embedded word list, in the same
// one-word-per-line format the lexicon loader expects.
func DefaultWords() io.Reader {
	return bytes.NewReader(words)
}
