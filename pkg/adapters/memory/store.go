package memory

import (
	"context"
	"sync"

	"github.com/aretw0/tendril/pkg/domain"
)

// Store implements ports.RunStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Run
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Run),
	}
}

// Save persists the run in memory.
func (s *Store) Save(ctx context.Context, id string, run *domain.Run) error {
	// Copy on write so the caller can't mutate stored trace data later.
	cp := *run
	cp.Result.Trace = append([]domain.Configuration(nil), run.Result.Trace...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = &cp
	return nil
}

// Load retrieves the run from memory.
func (s *Store) Load(ctx context.Context, id string) (*domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.data[id]
	if !ok {
		return nil, domain.ErrRunNotFound
	}

	// Copy on read so the caller can't mutate store state by pointer.
	cp := *run
	cp.Result.Trace = append([]domain.Configuration(nil), run.Result.Trace...)
	return &cp, nil
}

// Delete removes the run.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns stored run IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}
