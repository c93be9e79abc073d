package puzzle

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/matryer/is"
	"lukechampine.com/frand"
)

func TestGenerateStopsWhenInRange(t *testing.T) {
	is := is.New(t)
	dict := wordList{"cab", "car", "art", "rat", "tar"}
	cfg := DefaultConfig()
	cfg.Letters = 5
	// "zzzzz" forms nothing, "cartz" forms 4 words (3 < 4 < 5).
	src := &scripted{draws: []string{"zzzzz", "zzzzz", "cartz"}}

	var hooked []*Session
	g, err := NewGenerator(dict, cfg, WithSource(src), WithReadyHook(func(s *Session) {
		hooked = append(hooked, s)
	}))
	is.NoErr(err)

	s := g.Generate()
	is.Equal(s.Letters(), "cartz")
	is.Equal(s.Attempts(), 3)
	is.True(s.InRange())
	is.Equal(s.Formable(), []string{"car", "art", "rat", "tar"})
	is.Equal(len(hooked), 1)
	is.True(hooked[0] == s)
}

func TestGenerateTerminatesAtCeiling(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	src := &scripted{draws: []string{"qqqqqqq"}}
	calls := 0
	g, err := NewGenerator(wordList{}, cfg, WithSource(src), WithReadyHook(func(*Session) { calls++ }))
	is.NoErr(err)

	s := g.Generate()
	is.Equal(s.Attempts(), cfg.MaxAttempts)
	is.True(!s.InRange())
	is.Equal(len(s.Formable()), 0)
	is.Equal(src.calls, cfg.MaxAttempts*cfg.Letters)
	is.Equal(calls, 1)
}

func TestGenerateWithRealSource(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	cfg.MaxAttempts = 3
	g, err := NewGenerator(wordList{"abc"}, cfg)
	is.NoErr(err)

	s := g.Generate()
	is.Equal(len(s.Letters()), cfg.Letters)
	for _, r := range s.Letters() {
		is.True(r >= 'a' && r <= 'z')
	}
	is.True(s.Attempts() >= 1 && s.Attempts() <= 3)
	is.True(s.ID() != "")
}

func TestGenerateSeededIsDeterministic(t *testing.T) {
	is := is.New(t)
	seed := make([]byte, 32)
	mk := func() *Session {
		g, err := NewGenerator(wordList{"cat"}, DefaultConfig(), WithSource(frand.NewCustom(seed, 1024, 12)))
		is.NoErr(err)
		return g.Generate()
	}
	a, b := mk(), mk()
	is.Equal(a.Letters(), b.Letters())
	is.Equal(a.Attempts(), b.Attempts())
}

func TestNewGeneratorRejectsBadConfig(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	cfg.MaxAttempts = 0
	_, err := NewGenerator(wordList{}, cfg)
	is.True(err != nil)
}

func TestGenerateConcurrentDefaultSource(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	cfg.MaxAttempts = 3
	var ready atomic.Int32
	g, err := NewGenerator(wordList{"cat", "car", "art"}, cfg, WithReadyHook(func(*Session) { ready.Add(1) }))
	is.NoErr(err)

	const n = 50
	sessions := make([]*Session, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sessions[i] = g.Generate()
		}(i)
	}
	wg.Wait()

	is.Equal(int(ready.Load()), n)
	ids := map[string]bool{}
	for _, s := range sessions {
		is.Equal(len(s.Letters()), cfg.Letters)
		for _, r := range s.Letters() {
			is.True(r >= 'a' && r <= 'z')
		}
		ids[s.ID()] = true
	}
	is.Equal(len(ids), n)
}
