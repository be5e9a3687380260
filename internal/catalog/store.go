package catalog

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// ErrFeatureNotFound is returned when a feature id is unknown to the store
var ErrFeatureNotFound = errors.New("feature not found")

// Store provides feature catalog lookup
type Store interface {
	Get(ctx context.Context, id string) (*Feature, error)
	List(ctx context.Context) ([]*Feature, error)
}

// MemoryStore is an in-memory feature catalog
type MemoryStore struct {
	mu       sync.RWMutex
	features map[string]*Feature
}

// NewMemoryStore creates a new in-memory catalog
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		features: make(map[string]*Feature),
	}
}

// Add registers a feature in the catalog
func (s *MemoryStore) Add(f *Feature) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.features[f.ID] = f
}

// Get looks up a feature by id
func (s *MemoryStore) Get(ctx context.Context, id string) (*Feature, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.features[id]
	if !ok {
		return nil, ErrFeatureNotFound
	}
	return f, nil
}

// List returns all features ordered by id. Analysis iterates this order,
// which keeps recommendation output deterministic.
func (s *MemoryStore) List(ctx context.Context) ([]*Feature, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Feature, 0, len(s.features))
	for _, f := range s.features {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
