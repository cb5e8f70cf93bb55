// internal/daily/daily.go
//
// Deterministic per-date seeds, so every player on the same salt gets the
// same word on the same UTC day.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed derives a non-negative seed from HMAC-SHA256(salt, DateKey(t)).
// Feed it to lexicon.Choose; the date, salt, and word list fully determine
// the selected word.
func Seed(t time.Time, salt string) int64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(t)))
	sum := h.Sum(nil)
	return int64(binary.BigEndian.Uint64(sum[:8]) >> 1)
}
