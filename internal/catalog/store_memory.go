package catalog

import (
	"context"
	"sync"

	"MiniLibrary/internal/library"
)

// MemStore serialises access to a single Library.
type MemStore struct {
	mu  sync.RWMutex
	lib *library.Library
}

func NewMemStore(lib *library.Library) *MemStore {
	if lib == nil {
		lib = library.New()
	}
	return &MemStore{lib: lib}
}

func (s *MemStore) Ping(ctx context.Context) error { return ctx.Err() }

func (s *MemStore) Add(_ context.Context, req library.NewProductRequest) (library.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lib.AddProduct(req)
}

func (s *MemStore) Remove(_ context.Context, kind, title string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lib.RemoveProduct(kind, title)
}

func (s *MemStore) Sort(_ context.Context, key string) ([]library.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.lib.SortBy(key); err != nil {
		return nil, err
	}
	return s.lib.Snapshot(), nil
}

func (s *MemStore) List(_ context.Context) ([]library.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lib.Snapshot(), nil
}

func (s *MemStore) Stats(_ context.Context) (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{Count: s.lib.Count(), Genres: s.lib.GenreCount()}, nil
}
