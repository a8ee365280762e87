package subscriber

import (
	"errors"
	"sync"
)

var (
	ErrNotFound    = errors.New("subscriber not found")
	ErrEmailExists = errors.New("email already subscribed")
)

type Repository interface {
	List() []Subscriber
	GetByEmail(email string) (Subscriber, error)
	Create(sub Subscriber) (Subscriber, error)
	UpdateStatus(id, status string) (Subscriber, error)
	Delete(id string) error
}

// InMemoryRepository backs the demo mode and the tests.
type InMemoryRepository struct {
	mu   sync.RWMutex
	subs []Subscriber
}

func NewInMemoryRepository(seed []Subscriber) *InMemoryRepository {
	r := &InMemoryRepository{subs: make([]Subscriber, 0, len(seed))}
	r.subs = append(r.subs, seed...)
	return r
}

func (r *InMemoryRepository) List() []Subscriber {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Subscriber, len(r.subs))
	copy(out, r.subs)
	return out
}

func (r *InMemoryRepository) GetByEmail(email string) (Subscriber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.subs {
		if s.Email == email {
			return s, nil
		}
	}
	return Subscriber{}, ErrNotFound
}

func (r *InMemoryRepository) Create(sub Subscriber) (Subscriber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.subs {
		if s.Email == sub.Email {
			return Subscriber{}, ErrEmailExists
		}
	}
	r.subs = append(r.subs, sub)
	return sub, nil
}

func (r *InMemoryRepository) UpdateStatus(id, status string) (Subscriber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.subs {
		if s.ID == id {
			s.Status = status
			r.subs[i] = s
			return s, nil
		}
	}
	return Subscriber{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.subs {
		if s.ID == id {
			r.subs = append(r.subs[:i], r.subs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
