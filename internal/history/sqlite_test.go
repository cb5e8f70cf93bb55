package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLStore {
	t.Helper()
	s, err := OpenSQL(filepath.Join(t.TempDir(), "wordle.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRecordAndAggregate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, r := range []Result{
		{GameID: "g1", UserID: "u1", Won: true, Guesses: 3},
		{GameID: "g2", UserID: "u1", Won: true, Guesses: 3},
		{GameID: "g3", UserID: "u1", Won: true, Guesses: 12},
		{GameID: "g4", UserID: "u1", Won: false, Guesses: 6},
		{GameID: "g5", UserID: "u2", Won: true, Guesses: 1},
	} {
		require.NoError(t, s.RecordResult(ctx, r))
	}

	h, err := s.UserHistogram(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, h.Count(3))
	assert.Equal(t, 1, h.Count(MaxTracked), "12-guess win lands in the final bucket")
	assert.Zero(t, h.Count(6), "losses are not part of the histogram")

	results, err := s.RecentResults(ctx, "u1", 10)
	require.NoError(t, err)
	assert.Len(t, results, 4)
}

func TestClaimAnonResults(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.RecordResult(ctx, Result{GameID: "g1", AnonymousID: "anon1", Won: true, Guesses: 2}))
	require.NoError(t, s.ClaimAnonResults(ctx, "anon1", "u1"))

	results, err := s.RecentResults(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "g1", results[0].GameID)
	assert.Equal(t, "u1", results[0].UserID)
	assert.Empty(t, results[0].AnonymousID)
}

func TestClaimAnonResultsNoop(t *testing.T) {
	s := openTestStore(t)
	assert.NoError(t, s.ClaimAnonResults(context.Background(), "", "u1"))
	assert.NoError(t, s.ClaimAnonResults(context.Background(), "anon", ""))
}
