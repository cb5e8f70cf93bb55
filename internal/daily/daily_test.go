package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKey(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	loc := time.FixedZone("UTC-5", -5*3600)
	ts := time.Date(2024, 3, 1, 23, 30, 0, 0, loc)
	assert.Equal(t, "2024-03-02", DateKey(ts))
}

func TestSeedDeterministic(t *testing.T) {
	morning := time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 2, 22, 0, 0, 0, time.UTC)
	nextDay := time.Date(2024, 3, 3, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, Seed(morning, "salt"), Seed(evening, "salt"), "same day, same seed")
	assert.NotEqual(t, Seed(morning, "salt"), Seed(nextDay, "salt"))
	assert.NotEqual(t, Seed(morning, "salt"), Seed(morning, "pepper"))
}

func TestSeedNonNegative(t *testing.T) {
	ts := time.Now()
	for _, salt := range []string{"", "a", "salt", "long-salt-value"} {
		assert.GreaterOrEqual(t, Seed(ts, salt), int64(0))
		ts = ts.AddDate(0, 0, 1)
	}
}
