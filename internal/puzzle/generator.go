// internal/puzzle/generator.go
//
// Puzzle generation.
// Responsibilities:
//   - Draw puzzle strings and filter the dictionary until the formable count is in range.
//   - Stop after MaxAttempts draws and keep the last one (no error).
//   - Run the ready hook once the session is assembled.
//
// A Generator may be shared by concurrent callers as long as its Source is safe
// for concurrent use; the default source is.

package puzzle

import (
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

// sharedSource draws from frand's package-level, goroutine-safe generator.
type sharedSource struct{}

func (sharedSource) Intn(n int) int { return frand.Intn(n) }

// Dictionary is the word source the generator filters. *words.Dictionary satisfies it.
type Dictionary interface {
	Words() []string
}

// Generator produces sessions whose formable word count falls inside the
// configured range, retrying a bounded number of times.
type Generator struct {
	cfg   Config
	words []string
	src   Source
	ready func(*Session)
}

// Option customizes a Generator.
type Option func(*Generator)

// WithSource replaces the default CSPRNG, e.g. with a seeded source.
// src must be safe for concurrent use if the Generator is shared; a
// *frand.RNG is not, so build one per Generator.
func WithSource(src Source) Option {
	return func(g *Generator) { g.src = src }
}

// WithReadyHook registers fn to run once per Generate call, after the
// session is assembled.
func WithReadyHook(fn func(*Session)) Option {
	return func(g *Generator) { g.ready = fn }
}

// NewGenerator validates cfg and snapshots the dictionary's words.
func NewGenerator(dict Dictionary, cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{cfg: cfg, words: dict.Words()}
	for _, opt := range opts {
		opt(g)
	}
	if g.src == nil {
		g.src = sharedSource{}
	}
	return g, nil
}

// Config returns the generator's parameters.
func (g *Generator) Config() Config { return g.cfg }

// Generate draws puzzle strings until the formable count is in range or
// MaxAttempts is reached; at the ceiling the last draw is kept as-is.
func (g *Generator) Generate() *Session {
	var (
		letters  string
		formable []string
		attempt  int
	)
	for attempt = 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		letters = RandomLetters(g.src, g.cfg.Letters)
		formable = Formable(g.words, letters, g.cfg.MinWordLength)
		log.Debug().Int("attempt", attempt).Str("letters", letters).Int("formable", len(formable)).Msg("puzzle draw")
		if g.cfg.inRange(len(formable)) {
			break
		}
	}
	if attempt > g.cfg.MaxAttempts {
		attempt = g.cfg.MaxAttempts
		log.Info().Int("attempts", attempt).Int("formable", len(formable)).Msg("puzzle range not met; keeping last draw")
	}

	s := newSession(letters, formable, g.cfg, attempt)
	if g.ready != nil {
		g.ready(s)
	}
	return s
}
