package middleware_test

import (
	"context"

	"github.com/aretw0/tendril/pkg/domain"
	"github.com/aretw0/tendril/pkg/ports"
)

// MockStore is a simple map-based store for testing middleware.
type MockStore struct {
	data map[string]*domain.Run
}

func NewMockStore() *MockStore {
	return &MockStore{
		data: make(map[string]*domain.Run),
	}
}

func (s *MockStore) Save(ctx context.Context, id string, run *domain.Run) error {
	s.data[id] = run
	return nil
}

func (s *MockStore) Load(ctx context.Context, id string) (*domain.Run, error) {
	run, ok := s.data[id]
	if !ok {
		return nil, domain.ErrRunNotFound
	}
	return run, nil
}

func (s *MockStore) Delete(ctx context.Context, id string) error {
	delete(s.data, id)
	return nil
}

func (s *MockStore) List(ctx context.Context) ([]string, error) {
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys, nil
}

var _ ports.RunStore = (*MockStore)(nil)
