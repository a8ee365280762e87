package faq

import (
	"strings"
	"sync"
)

type Repository interface {
	List(category, search string) []FAQ
}

// InMemoryRepository backs the demo mode and the tests.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items []FAQ
}

func NewInMemoryRepository(seed []FAQ) *InMemoryRepository {
	r := &InMemoryRepository{items: make([]FAQ, 0, len(seed))}
	r.items = append(r.items, seed...)
	return r
}

// List filters by category and by a case-insensitive text search over
// question and answer. Empty filters match everything.
func (r *InMemoryRepository) List(category, search string) []FAQ {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]FAQ, 0, len(r.items))
	for _, f := range r.items {
		if category != "" && !strings.EqualFold(f.Category, category) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(f.Question), search) &&
			!strings.Contains(strings.ToLower(f.Answer), search) {
			continue
		}
		out = append(out, f)
	}
	return out
}
