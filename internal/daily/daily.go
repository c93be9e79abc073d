// internal/daily/daily.go
//
// Daily puzzle: every player gets the same letters on the same UTC day.
// The letters come from a ChaCha source seeded with HMAC-SHA256(salt, YYYY-MM-DD),
// so the puzzle is reproducible without storing it.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"time"

	"lukechampine.com/frand"

	"github.com/robalobadob/letterpuzzle/internal/puzzle"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed derives the 32-byte seed for a date.
func Seed(date time.Time, salt string) []byte {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	return h.Sum(nil)
}

// Source returns a deterministic random source for the date.
func Source(date time.Time, salt string) *frand.RNG {
	return frand.NewCustom(Seed(date, salt), 1024, 12)
}

// Puzzle generates the day's session. Each call yields a fresh session
// (own ID and progress) over the same letters.
func Puzzle(dict puzzle.Dictionary, cfg puzzle.Config, date time.Time, salt string, opts ...puzzle.Option) (*puzzle.Session, error) {
	opts = append(opts, puzzle.WithSource(Source(date, salt)))
	g, err := puzzle.NewGenerator(dict, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return g.Generate(), nil
}
