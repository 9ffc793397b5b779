package products

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-memory Store implementation used in tests and as the
// default when no database is configured.
type MemoryStore struct {
	mu     sync.RWMutex
	items  map[int64]Product
	nextID int64
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items:  make(map[int64]Product),
		nextID: 1,
	}
}

func (s *MemoryStore) FetchByID(_ context.Context, id int64) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.items[id]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return p, nil
}

func (s *MemoryStore) FetchPage(_ context.Context, page, pageSize int) ([]Product, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	start := (page - 1) * pageSize
	if start >= len(ids) {
		return []Product{}, nil
	}
	end := min(start+pageSize, len(ids))

	out := make([]Product, 0, end-start)
	for _, id := range ids[start:end] {
		out = append(out, s.items[id])
	}
	return out, nil
}

func (s *MemoryStore) Create(_ context.Context, p Product) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextID
	s.nextID++
	s.items[p.ID] = p
	return p, nil
}
