package lexicon

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeSort(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{"empty", []string{}, []string{}},
		{"single", []string{"apple"}, []string{"apple"}},
		{"pair", []string{"baker", "apple"}, []string{"apple", "baker"}},
		{"odd length", []string{"candy", "apple", "baker"}, []string{"apple", "baker", "candy"}},
		{"already sorted", []string{"apple", "baker", "candy"}, []string{"apple", "baker", "candy"}},
		{"reverse", []string{"zebra", "slate", "candy", "baker", "apple"}, []string{"apple", "baker", "candy", "slate", "zebra"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mergeSort(tc.in)
			assert.Equal(t, tc.want, tc.in)
		})
	}
}

func TestMergeSortMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{10, 101, 1024} {
		words := make([]string, n)
		for i := range words {
			words[i] = synthWord(rng.Intn(26 * 26 * 26))
		}
		want := append([]string(nil), words...)
		sort.Strings(want)

		mergeSort(words)
		assert.Equal(t, want, words, "n=%d", n)
	}
}
