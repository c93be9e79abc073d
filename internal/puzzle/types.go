// internal/puzzle/types.go
//
// Core type definitions for the letter puzzle.
// Defines:
//   - Config:  generation and scoring parameters.
//   - Outcome: result of submitting a word.
//   - Source:  random number source used to draw letters.
//   - Snapshot: read-only copy of a session for front-ends.

package puzzle

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) by Config.Validate.
var ErrInvalidConfig = errors.New("invalid puzzle config")

// Config holds the construction-time parameters of a puzzle.
type Config struct {
	Letters       int  // Length of the puzzle string (typically 7).
	MinWordLength int  // Shortest word that counts (typically 3).
	MinFormable   int  // Exclusive lower bound on the formable word count.
	MaxFormable   int  // Exclusive upper bound on the formable word count.
	MaxAttempts   int  // Generation attempts before accepting an out-of-range result.
	AllowRepeats  bool // Whether resubmitting a found word scores again.
}

// DefaultConfig returns the classic parameters: 7 letters, words of 3+,
// between 3 and 5 formable words (exclusive), 10 attempts, repeats scored.
func DefaultConfig() Config {
	return Config{
		Letters:       7,
		MinWordLength: 3,
		MinFormable:   3,
		MaxFormable:   5,
		MaxAttempts:   10,
		AllowRepeats:  true,
	}
}

// Validate rejects configs the generator cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Letters < 1:
		return fmt.Errorf("%w: letters must be >= 1, got %d", ErrInvalidConfig, c.Letters)
	case c.MinWordLength < 0:
		return fmt.Errorf("%w: min word length must be >= 0, got %d", ErrInvalidConfig, c.MinWordLength)
	case c.MaxAttempts < 1:
		return fmt.Errorf("%w: max attempts must be >= 1, got %d", ErrInvalidConfig, c.MaxAttempts)
	case c.MinFormable >= c.MaxFormable:
		return fmt.Errorf("%w: formable range (%d, %d) is empty", ErrInvalidConfig, c.MinFormable, c.MaxFormable)
	}
	return nil
}

// inRange reports whether n lies strictly between the formable bounds.
func (c Config) inRange(n int) bool {
	return c.MinFormable < n && n < c.MaxFormable
}

// Outcome is the evaluation of a submitted word.
type Outcome string

const (
	OutcomeAccepted Outcome = "accepted" // formable; scored
	OutcomeRepeated Outcome = "repeated" // already found and repeats are not scored
	OutcomeRejected Outcome = "rejected" // not a formable word
)

// Accepted reports whether the submission scored.
func (o Outcome) Accepted() bool { return o == OutcomeAccepted }

// Source draws random integers in [0, n).
// *frand.RNG satisfies it.
type Source interface {
	Intn(n int) int
}

// Snapshot is a point-in-time copy of a session, safe to hand to other goroutines.
type Snapshot struct {
	ID        string   `json:"gameId"`
	Letters   string   `json:"letters"`
	Found     []string `json:"found"`
	Score     int      `json:"score"`
	Total     int      `json:"total"`     // formable words, duplicates included
	Remaining int      `json:"remaining"` // distinct formable words not yet found
	Attempts  int      `json:"attempts"`
	InRange   bool     `json:"inRange"`
}
