package term

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wordlehq/wordle/internal/feedback"
)

func TestRenderCoalescesRuns(t *testing.T) {
	c, p, a := feedback.MarkCorrect, feedback.MarkPresent, feedback.MarkAbsent

	// "deeds" vs "speed": present, present, correct, absent, present.
	got := Render("deeds", []feedback.Mark{p, p, c, a, p})
	assert.Equal(t, "\x1b[33mde\x1b[32me\x1b[0md\x1b[33ms\x1b[0m", got)
}

func TestRenderAllAbsentHasNoEscapes(t *testing.T) {
	a := feedback.MarkAbsent
	got := Render("xyzzz", []feedback.Mark{a, a, a, a, a})
	assert.Equal(t, "xyzzz", got)
	assert.False(t, strings.Contains(got, "\x1b"))
}

func TestRenderEndsOnDefault(t *testing.T) {
	c := feedback.MarkCorrect
	got := Render("ab", []feedback.Mark{c, c})
	assert.Equal(t, "\x1b[32mab\x1b[0m", got)
	assert.True(t, strings.HasSuffix(got, "\x1b[0m"))
}
