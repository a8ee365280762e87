package cart

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("user not found")

// Repository is the persistence port for a user's cart. Every mutation in
// the service loads the whole productID -> quantity map, applies the change
// and saves it back, so the storage medium stays swappable.
type Repository interface {
	Get(userID int) (map[int]int, error)
	Save(userID int, items map[int]int, updatedAt string) error
}

// InMemoryRepository backs the demo mode and the tests. Carts are created
// lazily; validating that the user exists is the identity service's job.
type InMemoryRepository struct {
	mu    sync.RWMutex
	carts map[int]map[int]int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{carts: make(map[int]map[int]int)}
}

func (r *InMemoryRepository) Get(userID int) (map[int]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[int]int, len(r.carts[userID]))
	for pid, qty := range r.carts[userID] {
		out[pid] = qty
	}
	return out, nil
}

func (r *InMemoryRepository) Save(userID int, items map[int]int, updatedAt string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make(map[int]int, len(items))
	for pid, qty := range items {
		stored[pid] = qty
	}
	r.carts[userID] = stored
	return nil
}
