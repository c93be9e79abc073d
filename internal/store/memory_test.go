package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/matryer/is"

	"github.com/robalobadob/letterpuzzle/internal/puzzle"
)

func newSession() *puzzle.Session {
	return puzzle.NewSession("cartx", []string{"cat", "car", "art"}, puzzle.DefaultConfig())
}

func TestSaveGetDelete(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	st := NewMemoryStore()
	s := newSession()

	is.NoErr(st.Save(ctx, s))
	snap, err := st.Get(ctx, s.ID())
	is.NoErr(err)
	is.Equal(snap.Letters, "cartx")

	is.NoErr(st.Delete(ctx, s.ID()))
	_, err = st.Get(ctx, s.ID())
	is.True(errors.Is(err, ErrNotFound))
	is.NoErr(st.Delete(ctx, "missing"))
}

func TestUpdateUnknown(t *testing.T) {
	is := is.New(t)
	err := NewMemoryStore().Update(context.Background(), "nope", func(*puzzle.Session) error { return nil })
	is.True(errors.Is(err, ErrNotFound))
}

func TestUpdateCancelledContext(t *testing.T) {
	is := is.New(t)
	st := NewMemoryStore()
	s := newSession()
	is.NoErr(st.Save(context.Background(), s))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := st.Update(ctx, s.ID(), func(*puzzle.Session) error { return nil })
	is.True(errors.Is(err, context.Canceled))
}

func TestConcurrentUpdatesSerialize(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	st := NewMemoryStore()
	s := newSession()
	is.NoErr(st.Save(ctx, s))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = st.Update(ctx, s.ID(), func(s *puzzle.Session) error {
				s.Submit("cat")
				return nil
			})
		}()
	}
	wg.Wait()

	snap, err := st.Get(ctx, s.ID())
	is.NoErr(err)
	is.Equal(snap.Score, 50)
	is.Equal(len(snap.Found), 50)
}
