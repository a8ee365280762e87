package testimonial

import (
	"strings"
	"sync"
)

type Repository interface {
	List(category string) []Testimonial
}

// InMemoryRepository backs the demo mode and the tests.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items []Testimonial
}

func NewInMemoryRepository(seed []Testimonial) *InMemoryRepository {
	r := &InMemoryRepository{items: make([]Testimonial, 0, len(seed))}
	r.items = append(r.items, seed...)
	return r
}

// List returns testimonials, optionally filtered by category.
func (r *InMemoryRepository) List(category string) []Testimonial {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Testimonial, 0, len(r.items))
	for _, t := range r.items {
		if category != "" && !strings.EqualFold(t.Category, category) {
			continue
		}
		out = append(out, t)
	}
	return out
}
