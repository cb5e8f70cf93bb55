package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	c, p, a := MarkCorrect, MarkPresent, MarkAbsent

	cases := []struct {
		name   string
		guess  string
		target string
		want   []Mark
	}{
		{
			name:   "exact match",
			guess:  "abcde",
			target: "abcde",
			want:   []Mark{c, c, c, c, c},
		},
		{
			name:   "no overlap",
			guess:  "xyzzz",
			target: "aaaaa",
			want:   []Mark{a, a, a, a, a},
		},
		{
			// One-to-one claiming with doubled letters on both sides:
			// the exact 'e' claims position 2 first; the leading 'd'
			// claims the target's only remaining 'd' (position 4), so
			// the second 'd' has nothing left.
			name:   "deeds against speed",
			guess:  "deeds",
			target: "speed",
			want:   []Mark{p, p, c, a, p},
		},
		{
			// Three 'e's in the guess, three in the target, but two are
			// already fixed by exact matches; the middle 'e' claims the
			// lowest unclaimed target position.
			name:   "melee against eerie",
			guess:  "melee",
			target: "eerie",
			want:   []Mark{a, c, a, p, c},
		},
		{
			// The exact pass runs to completion first, so the leading
			// 'l' takes the unclaimed 'l' at the end, not the one the
			// second guess letter matches exactly; the trailing 'a'
			// finds its only target 'a' already fixed.
			name:   "exact claim beats earlier elsewhere claim",
			guess:  "llama",
			target: "flail",
			want:   []Mark{p, c, c, a, a},
		},
		{
			name:   "repeats in guess only",
			guess:  "geese",
			target: "crane",
			want:   []Mark{a, a, a, a, c},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.guess, tc.target))
		})
	}
}

func TestClassifyClaimsAreOneToOne(t *testing.T) {
	// The target "speed" has two 'e's; an all-'e' guess must get exactly
	// two non-absent marks, both at the exact positions.
	marks := Classify("eeeee", "speed")
	assert.Equal(t, []Mark{MarkAbsent, MarkAbsent, MarkCorrect, MarkCorrect, MarkAbsent}, marks)
}

func TestAllCorrect(t *testing.T) {
	assert.True(t, AllCorrect([]Mark{MarkCorrect, MarkCorrect}))
	assert.False(t, AllCorrect([]Mark{MarkCorrect, MarkPresent}))
	assert.True(t, AllCorrect(nil))
}
