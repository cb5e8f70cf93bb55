// internal/term/term.go
//
// ANSI rendering of per-letter feedback: correct letters in green, present
// letters in yellow, absent letters in the terminal default. Adjacent
// letters with the same classification share one escape sequence, and the
// line always ends back on the default color.
package term

import (
	"strings"

	"github.com/wordlehq/wordle/internal/feedback"
)

const (
	escGreen   = "\x1b[32m"
	escYellow  = "\x1b[33m"
	escDefault = "\x1b[0m"
)

// escFor maps a mark to its escape sequence.
func escFor(m feedback.Mark) string {
	switch m {
	case feedback.MarkCorrect:
		return escGreen
	case feedback.MarkPresent:
		return escYellow
	default:
		return escDefault
	}
}

// Render colors guess according to marks. len(marks) must equal len(guess).
func Render(guess string, marks []feedback.Mark) string {
	var b strings.Builder
	current := escDefault
	for i := 0; i < len(guess); i++ {
		if esc := escFor(marks[i]); esc != current {
			b.WriteString(esc)
			current = esc
		}
		b.WriteByte(guess[i])
	}
	if current != escDefault {
		b.WriteString(escDefault)
	}
	return b.String()
}
