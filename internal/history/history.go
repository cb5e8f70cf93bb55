// internal/history/history.go
//
// Guess-count scoreboard kept in a small side file.
//
// The file holds MaxTracked space-separated counters: counter i is the
// number of games solved in i+1 guesses, except the last, which lumps
// together every finish of MaxTracked or more guesses. A missing file
// reads as all zeroes.
package history

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// MaxTracked is the number of histogram buckets; finishes needing this
// many guesses or more share the final bucket.
const MaxTracked = 10

// Histogram is the per-guess-count scoreboard.
type Histogram struct {
	counts [MaxTracked]int
}

// Load reads a histogram from path. A missing file yields a zeroed
// histogram rather than an error.
func Load(path string) (*Histogram, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Histogram{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read score history: %w", err)
	}

	var h Histogram
	fields := strings.Fields(string(data))
	for i := 0; i < MaxTracked && i < len(fields); i++ {
		n, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, fmt.Errorf("parse score history %s: %w", path, err)
		}
		h.counts[i] = n
	}
	return &h, nil
}

// Record counts one solved game. guesses must be positive; counts of
// MaxTracked or more land in the final bucket.
func (h *Histogram) Record(guesses int) {
	if guesses < 1 {
		return
	}
	if guesses >= MaxTracked {
		h.counts[MaxTracked-1]++
		return
	}
	h.counts[guesses-1]++
}

// Count returns the counter for the given guess count (bucketed).
func (h *Histogram) Count(guesses int) int {
	if guesses < 1 {
		return 0
	}
	if guesses >= MaxTracked {
		return h.counts[MaxTracked-1]
	}
	return h.counts[guesses-1]
}

// Save writes the histogram back to path, space-separated.
func (h *Histogram) Save(path string) error {
	var b strings.Builder
	for i, c := range h.counts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(c))
	}
	b.WriteByte('\n')
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write score history: %w", err)
	}
	return nil
}

// String renders the scoreboard, one row per bucket, the last marked "+".
func (h *Histogram) String() string {
	var b strings.Builder
	for i := 0; i < MaxTracked-1; i++ {
		fmt.Fprintf(&b, "%2d  : %4d\n", i+1, h.counts[i])
	}
	fmt.Fprintf(&b, "%2d+ : %4d\n", MaxTracked, h.counts[MaxTracked-1])
	return b.String()
}

// Update is the whole round trip: load path, record guesses, save back.
func Update(path string, guesses int) (*Histogram, error) {
	h, err := Load(path)
	if err != nil {
		return nil, err
	}
	h.Record(guesses)
	if err := h.Save(path); err != nil {
		return nil, err
	}
	return h, nil
}
