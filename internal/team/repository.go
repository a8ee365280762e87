package team

import "sync"

type Repository interface {
	List() []Member
}

// InMemoryRepository backs the demo mode and the tests.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items []Member
}

func NewInMemoryRepository(seed []Member) *InMemoryRepository {
	r := &InMemoryRepository{items: make([]Member, 0, len(seed))}
	r.items = append(r.items, seed...)
	return r
}

func (r *InMemoryRepository) List() []Member {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Member, len(r.items))
	copy(out, r.items)
	return out
}
