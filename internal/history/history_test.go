package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	h, err := Load(filepath.Join(t.TempDir(), "scores.txt"))
	require.NoError(t, err)
	for i := 1; i <= MaxTracked; i++ {
		assert.Zero(t, h.Count(i))
	}
}

func TestRecordBuckets(t *testing.T) {
	var h Histogram
	h.Record(1)
	h.Record(3)
	h.Record(3)
	h.Record(MaxTracked)
	h.Record(MaxTracked + 5)
	h.Record(0) // ignored

	assert.Equal(t, 1, h.Count(1))
	assert.Equal(t, 2, h.Count(3))
	assert.Equal(t, 0, h.Count(2))
	assert.Equal(t, 2, h.Count(MaxTracked), "10 and 15 share the final bucket")
	assert.Equal(t, 2, h.Count(MaxTracked+99), "queries past the cap read the final bucket")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")

	var h Histogram
	h.Record(2)
	h.Record(2)
	h.Record(7)
	require.NoError(t, h.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &h, loaded)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0 2 0 0 0 0 1 0 0 0\n", string(data))
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 2 three 4\n"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}

func TestString(t *testing.T) {
	var h Histogram
	h.Record(1)
	h.Record(12)

	s := h.String()
	assert.Contains(t, s, " 1  :    1\n")
	assert.Contains(t, s, " 2  :    0\n")
	assert.Contains(t, s, "10+ :    1\n")
}

func TestUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")

	h, err := Update(path, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, h.Count(4))

	h, err = Update(path, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, h.Count(4), "update accumulates across calls")
}
