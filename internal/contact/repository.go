package contact

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("contact not found")

type Repository interface {
	List() []Contact
	Create(contact Contact) (Contact, error)
	Delete(id string) error
}

// InMemoryRepository backs the demo mode and the tests.
type InMemoryRepository struct {
	mu       sync.RWMutex
	contacts []Contact
}

func NewInMemoryRepository(seed []Contact) *InMemoryRepository {
	r := &InMemoryRepository{contacts: make([]Contact, 0, len(seed))}
	r.contacts = append(r.contacts, seed...)
	return r
}

func (r *InMemoryRepository) List() []Contact {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Contact, len(r.contacts))
	copy(out, r.contacts)
	return out
}

func (r *InMemoryRepository) Create(contact Contact) (Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.contacts = append(r.contacts, contact)
	return contact, nil
}

func (r *InMemoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.contacts {
		if c.ID == id {
			r.contacts = append(r.contacts[:i], r.contacts[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
