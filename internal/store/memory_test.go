package store

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordlehq/wordle/internal/game"
	"github.com/wordlehq/wordle/internal/lexicon"
)

func TestMemoryStore(t *testing.T) {
	lex, err := lexicon.Load(strings.NewReader("apple\nbaker\ncandy\n"))
	require.NoError(t, err)
	require.NoError(t, lex.Sort())

	g, err := game.New(lex, 0, 6)
	require.NoError(t, err)

	ctx := context.Background()
	st := NewMemoryStore()

	_, err = st.Get(ctx, g.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, st.Save(ctx, g))
	got, err := st.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Same(t, g, got)
}
