// internal/lexicon/lexicon.go
//
// Word list management for the game engine.
// Responsibilities:
//   - Load a fixed-length word list from a reader with strict format checks.
//   - Sort the list and reject duplicates.
//   - Membership lookup (binary search) and deterministic word selection.
//
// Word list format:
//   - Each record is exactly WordLen lowercase ASCII letters followed by '\n'.
//   - The final record may omit the trailing '\n'.
//   - Anything else (wrong length, non a-z byte, '\r') fails the whole load.
//
// A Lexicon is an explicit value: callers own it, nothing here is global,
// and several independent lexicons can coexist in one process. After Sort
// succeeds the lexicon is never mutated again, so it is safe to share
// read-only across goroutines.
package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

const (
	// WordLen is the number of letters in every word.
	WordLen = 5

	// MaxWords caps how many words a source may supply.
	MaxWords = 100000

	// initialCapacity is the starting size of the word slice;
	// it doubles on overflow up to MaxWords.
	initialCapacity = 10

	// multiplier spreads the seed across the list in Choose.
	multiplier = 4611686018453
)

var (
	ErrInvalidWordFormat = errors.New("invalid word format")
	ErrDuplicateWord     = errors.New("duplicate word")
	ErrCapacityExceeded  = errors.New("word list capacity exceeded")
)

// Lexicon holds the word list for one session.
type Lexicon struct {
	words []string
}

// Load reads a word list from r. On any format violation it returns
// ErrInvalidWordFormat and no lexicon; there is no partial-success mode.
func Load(r io.Reader) (*Lexicon, error) {
	br := bufio.NewReader(r)
	words := make([]string, 0, initialCapacity)

	for {
		word, more, err := readRecord(br)
		if err != nil {
			return nil, err
		}
		if len(words) == MaxWords {
			return nil, fmt.Errorf("%w: more than %d words", ErrCapacityExceeded, MaxWords)
		}
		words = appendWord(words, word)
		if !more {
			break
		}
	}
	return &Lexicon{words: words}, nil
}

// readRecord reads one word plus its terminator. more reports whether
// another record follows.
func readRecord(br *bufio.Reader) (word string, more bool, err error) {
	var buf [WordLen]byte
	for i := 0; i < WordLen; i++ {
		b, err := br.ReadByte()
		if err != nil {
			return "", false, fmt.Errorf("%w: truncated record", ErrInvalidWordFormat)
		}
		if b < 'a' || b > 'z' {
			return "", false, fmt.Errorf("%w: byte %q in word", ErrInvalidWordFormat, b)
		}
		buf[i] = b
	}

	b, err := br.ReadByte()
	if err == io.EOF {
		return string(buf[:]), false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read word list: %w", err)
	}
	if b != '\n' {
		return "", false, fmt.Errorf("%w: record not terminated by line feed", ErrInvalidWordFormat)
	}

	// A trailing line feed at EOF ends the list without an empty record.
	if _, err := br.Peek(1); err == io.EOF {
		return string(buf[:]), false, nil
	}
	return string(buf[:]), true, nil
}

// appendWord grows the slice by doubling, capped at MaxWords, then appends.
func appendWord(words []string, w string) []string {
	if len(words) == cap(words) {
		next := cap(words) * 2
		if next > MaxWords {
			next = MaxWords
		}
		grown := make([]string, len(words), next)
		copy(grown, words)
		words = grown
	}
	return append(words, w)
}

// Len reports the number of words.
func (l *Lexicon) Len() int { return len(l.words) }

// Words exposes the underlying word list, in current order.
// Callers must not mutate it.
func (l *Lexicon) Words() []string { return l.words }

// Sort orders the words ascending and rejects duplicates. It must run
// before Contains or Choose. Sorting an already-sorted lexicon is a no-op
// in effect: the order is identical.
func (l *Lexicon) Sort() error {
	mergeSort(l.words)
	for i := 0; i+1 < len(l.words); i++ {
		if l.words[i] == l.words[i+1] {
			return fmt.Errorf("%w: %q", ErrDuplicateWord, l.words[i])
		}
	}
	return nil
}

// Contains reports whether word is in the lexicon. Requires Sort.
func (l *Lexicon) Contains(word string) bool {
	return binarySearch(l.words, word, 0, len(l.words)-1)
}

// binarySearch recursively halves [low, high] until word is found or the
// range is exhausted.
func binarySearch(words []string, word string, low, high int) bool {
	if low > high {
		return false
	}
	mid := (low + high) / 2
	switch {
	case words[mid] == word:
		return true
	case words[mid] > word:
		return binarySearch(words, word, low, mid-1)
	default:
		return binarySearch(words, word, mid+1, high)
	}
}

// Choose picks a word deterministically from the seed:
//
//	index = (seed mod n) * multiplier mod n
//
// The formula is preserved bit-exact so the same seed and word list select
// the same word everywhere; it is not a quality randomness source and is
// not meant to be. Seed must be non-negative.
func (l *Lexicon) Choose(seed int64) (string, error) {
	n := int64(len(l.words))
	if n == 0 {
		return "", errors.New("choose from empty lexicon")
	}
	index := (seed % n) * multiplier % n
	return l.words[index], nil
}
