package order

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidStatus = errors.New("invalid order status")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List filters by status and by free-text search over order id, customer
// name and email. Empty filters match everything.
func (s *Service) List(search, status string) []Order {
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]Order, 0)
	for _, o := range s.repo.List() {
		if status != "" && o.Status != status {
			continue
		}
		if search != "" &&
			!strings.Contains(strconv.Itoa(o.ID), search) &&
			!strings.Contains(strings.ToLower(o.Customer), search) &&
			!strings.Contains(strings.ToLower(o.Email), search) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func (s *Service) GetByID(id int) (Order, error) {
	return s.repo.GetByID(id)
}

func (s *Service) UpdateStatus(id int, status string) (Order, error) {
	if !ValidStatus(status) {
		return Order{}, ErrInvalidStatus
	}
	return s.repo.UpdateStatus(id, status, time.Now().UTC().Format(time.RFC3339))
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
