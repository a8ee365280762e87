package notification

import "strings"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List filters by category; an empty category matches everything.
func (s *Service) List(category string) []Notification {
	out := make([]Notification, 0)
	for _, n := range s.repo.List() {
		if category != "" && !strings.EqualFold(n.Category, category) {
			continue
		}
		out = append(out, n)
	}
	return out
}

func (s *Service) MarkRead(id int) (Notification, error) {
	return s.repo.MarkRead(id)
}

func (s *Service) MarkAllRead() int {
	return s.repo.MarkAllRead()
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
