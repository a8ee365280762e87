package notification

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("notification not found")

type Repository interface {
	List() []Notification
	MarkRead(id int) (Notification, error)
	MarkAllRead() int
	Delete(id int) error
}

// InMemoryRepository backs the demo mode and the tests.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items []Notification
}

func NewInMemoryRepository(seed []Notification) *InMemoryRepository {
	r := &InMemoryRepository{items: make([]Notification, 0, len(seed))}
	r.items = append(r.items, seed...)
	return r
}

func (r *InMemoryRepository) List() []Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

func (r *InMemoryRepository) MarkRead(id int) (Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, n := range r.items {
		if n.ID == id {
			n.Read = true
			r.items[i] = n
			return n, nil
		}
	}
	return Notification{}, ErrNotFound
}

func (r *InMemoryRepository) MarkAllRead() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for i, n := range r.items {
		if !n.Read {
			n.Read = true
			r.items[i] = n
			count++
		}
	}
	return count
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, n := range r.items {
		if n.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
