// internal/store/memory.go
//
// In-memory registry of puzzle sessions for the front-ends.
//
// Characteristics:
//   - Stores *puzzle.Session objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex; Update holds the write lock while the
//     callback runs, so two submissions to one session never interleave.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/letterpuzzle/internal/puzzle"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("not found")

// Store defines the registry interface for puzzle sessions.
type Store interface {
	// Save adds or replaces a session.
	Save(ctx context.Context, s *puzzle.Session) error

	// Get returns a snapshot of the session's visible state.
	Get(ctx context.Context, id string) (puzzle.Snapshot, error)

	// Update runs fn with exclusive access to the session.
	Update(ctx context.Context, id string, fn func(*puzzle.Session) error) error

	// Delete forgets a session. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex               // guards sessions and their contents
	sessions map[string]*puzzle.Session // keyed by Session.ID()
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*puzzle.Session)}
}

func (m *memory) Save(ctx context.Context, s *puzzle.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID()] = s
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (puzzle.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s.Snapshot(), nil
	}
	return puzzle.Snapshot{}, ErrNotFound
}

func (m *memory) Update(ctx context.Context, id string, fn func(*puzzle.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	return fn(s)
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
