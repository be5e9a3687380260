package customer

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
)

// ErrCustomerNotFound is returned when a customer id is unknown to the store
var ErrCustomerNotFound = errors.New("customer not found")

// Store provides customer lookup
type Store interface {
	Get(ctx context.Context, id string) (*Customer, error)
	ListIDs(ctx context.Context) ([]string, error)
	ListByAccountManager(ctx context.Context, manager string) ([]*Customer, error)
}

// MemoryStore is an in-memory customer store
type MemoryStore struct {
	mu        sync.RWMutex
	customers map[string]*Customer
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		customers: make(map[string]*Customer),
	}
}

// Add registers a customer in the store
func (s *MemoryStore) Add(c *Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers[c.ID] = c
}

// Get looks up a customer by id
func (s *MemoryStore) Get(ctx context.Context, id string) (*Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.customers[id]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	return c, nil
}

// ListIDs returns all customer ids, sorted
func (s *MemoryStore) ListIDs(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.customers))
	for id := range s.customers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// ListByAccountManager returns customers assigned to a manager, ordered by id
func (s *MemoryStore) ListByAccountManager(ctx context.Context, manager string) ([]*Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*Customer
	for _, c := range s.customers {
		if c.AccountManager == manager {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// SuggestIDs returns up to limit ids containing the partial string,
// case-insensitive. Used for not-found error responses.
func (s *MemoryStore) SuggestIDs(partial string, limit int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(partial)
	var matches []string
	for id := range s.customers {
		if strings.Contains(strings.ToLower(id), needle) {
			matches = append(matches, id)
		}
	}
	sort.Strings(matches)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
