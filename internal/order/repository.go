package order

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("order not found")

type Repository interface {
	List() []Order
	GetByID(id int) (Order, error)
	UpdateStatus(id int, status, updatedAt string) (Order, error)
	Delete(id int) error
}

// InMemoryRepository backs the demo mode and the tests.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders []Order
}

func NewInMemoryRepository(seed []Order) *InMemoryRepository {
	r := &InMemoryRepository{orders: make([]Order, 0, len(seed))}
	r.orders = append(r.orders, seed...)
	return r
}

func (r *InMemoryRepository) List() []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, len(r.orders))
	copy(out, r.orders)
	return out
}

func (r *InMemoryRepository) GetByID(id int) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) UpdateStatus(id int, status, updatedAt string) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, o := range r.orders {
		if o.ID == id {
			o.Status = status
			o.UpdatedAt = updatedAt
			r.orders[i] = o
			return o, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, o := range r.orders {
		if o.ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
