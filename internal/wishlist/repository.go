package wishlist

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("user not found")

// Repository is the persistence port for a user's wishlist. The service
// loads the full id list, applies the change and saves it back.
type Repository interface {
	Get(userID int) ([]int, error)
	Save(userID int, productIDs []int, updatedAt string) error
}

// InMemoryRepository backs the demo mode and the tests. Lists are created
// lazily; validating that the user exists is the identity service's job.
type InMemoryRepository struct {
	mu    sync.RWMutex
	lists map[int][]int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{lists: make(map[int][]int)}
}

func (r *InMemoryRepository) Get(userID int) ([]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.lists[userID]
	out := make([]int, len(ids))
	copy(out, ids)
	return out, nil
}

func (r *InMemoryRepository) Save(userID int, productIDs []int, updatedAt string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]int, len(productIDs))
	copy(stored, productIDs)
	r.lists[userID] = stored
	return nil
}
