// internal/puzzle/engine.go
//
// Letter arithmetic and session state for a single puzzle.
// Responsibilities:
//   - Decide whether a word can be spelled from a pool of letters (with multiplicity).
//   - Filter a dictionary down to the formable words.
//   - Track found words and score as the player submits.
//
// Notes:
//   - Comparison is exact: no case folding, no normalization.
//   - Invalid UTF-8 is never formable.
//   - Word length is measured in runes.
package puzzle

import (
	"encoding/hex"
	"unicode/utf8"

	"github.com/samber/lo"
	"lukechampine.com/frand"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// letterCounts maps each rune to its number of occurrences.
type letterCounts map[rune]int

func countLetters(s string) letterCounts {
	c := make(letterCounts, len(s))
	for _, r := range s {
		c[r]++
	}
	return c
}

// covers reports whether every rune of word fits within c.
// Invalid UTF-8 never fits: its bytes would all count as U+FFFD.
func (c letterCounts) covers(word string) bool {
	if !utf8.ValidString(word) {
		return false
	}
	for r, n := range countLetters(word) {
		if c[r] < n {
			return false
		}
	}
	return true
}

// CanForm reports whether word can be spelled using only the letters in pool,
// each letter used at most as many times as it appears there.
// Both strings must be valid UTF-8.
func CanForm(word, pool string) bool {
	if !utf8.ValidString(pool) {
		return false
	}
	return countLetters(pool).covers(word)
}

// Formable returns the words of dict, in order and with duplicates kept, that
// are at least minLen runes long and can be formed from letters.
func Formable(dict []string, letters string, minLen int) []string {
	if !utf8.ValidString(letters) {
		return []string{}
	}
	pool := countLetters(letters)
	return lo.Filter(dict, func(w string, _ int) bool {
		return utf8.RuneCountInString(w) >= minLen && pool.covers(w)
	})
}

// RandomLetters draws n letters uniformly from a–z.
func RandomLetters(src Source, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[src.Intn(len(alphabet))]
	}
	return string(b)
}

// Session is the state of one puzzle: its letters, the words that can be
// formed from them, and the player's progress. A Session is not safe for
// concurrent use; front-ends serialize access (see the store package).
type Session struct {
	id           string
	letters      string
	formable     []string
	formableSet  map[string]struct{}
	found        []string
	foundSet     map[string]struct{}
	score        int
	attempts     int
	inRange      bool
	allowRepeats bool
}

// NewSession builds a session for a fixed puzzle string.
func NewSession(letters string, dict []string, cfg Config) *Session {
	formable := Formable(dict, letters, cfg.MinWordLength)
	return newSession(letters, formable, cfg, 1)
}

func newSession(letters string, formable []string, cfg Config, attempts int) *Session {
	set := make(map[string]struct{}, len(formable))
	for _, w := range formable {
		set[w] = struct{}{}
	}
	return &Session{
		id:           randomID(),
		letters:      letters,
		formable:     formable,
		formableSet:  set,
		found:        []string{},
		foundSet:     make(map[string]struct{}),
		attempts:     attempts,
		inRange:      cfg.inRange(len(formable)),
		allowRepeats: cfg.AllowRepeats,
	}
}

// Submit checks word against the formable words.
// On acceptance the word is appended to the found list and the score goes up by one.
// Rejected and unscored repeated submissions leave the session unchanged.
func (s *Session) Submit(word string) Outcome {
	if _, ok := s.formableSet[word]; !ok {
		return OutcomeRejected
	}
	if _, seen := s.foundSet[word]; seen && !s.allowRepeats {
		return OutcomeRepeated
	}
	s.found = append(s.found, word)
	s.foundSet[word] = struct{}{}
	s.score++
	return OutcomeAccepted
}

func (s *Session) ID() string      { return s.id }
func (s *Session) Letters() string { return s.letters }
func (s *Session) Score() int      { return s.score }

// Attempts is how many generations initialization used.
func (s *Session) Attempts() int { return s.attempts }

// InRange reports whether the formable count satisfied the configured bounds.
func (s *Session) InRange() bool { return s.inRange }

// Formable returns a copy of the formable words in dictionary order.
func (s *Session) Formable() []string { return append([]string(nil), s.formable...) }

// Found returns a copy of the accepted submissions in order.
func (s *Session) Found() []string { return append([]string{}, s.found...) }

// Remaining returns the distinct formable words not found yet.
func (s *Session) Remaining() []string {
	return lo.Filter(lo.Uniq(s.formable), func(w string, _ int) bool {
		_, ok := s.foundSet[w]
		return !ok
	})
}

// Snapshot copies the session's visible state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:        s.id,
		Letters:   s.letters,
		Found:     s.Found(),
		Score:     s.score,
		Total:     len(s.formable),
		Remaining: len(s.Remaining()),
		Attempts:  s.attempts,
		InRange:   s.inRange,
	}
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	return hex.EncodeToString(frand.Bytes(8))
}
