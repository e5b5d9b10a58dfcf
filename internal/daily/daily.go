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

// GridSeed returns a deterministic rand seed for a date using
// HMAC(salt, YYYY-MM-DD). Every player sees the same board for a given
// day and salt.
func GridSeed(date time.Time, salt string) int64 {
	dk := DateKey(date)
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(dk))
	sum := h.Sum(nil)
	// first 8 bytes as a non-negative seed
	n := binary.BigEndian.Uint64(sum[:8])
	return int64(n &^ (1 << 63))
}
