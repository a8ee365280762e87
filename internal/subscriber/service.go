package subscriber

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidEmail = errors.New("a valid email is required")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Subscribe creates an active subscription, deduplicating by email. A
// previously unsubscribed address is reactivated instead of duplicated.
func (s *Service) Subscribe(email, name string) (Subscriber, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return Subscriber{}, ErrInvalidEmail
	}

	if existing, err := s.repo.GetByEmail(email); err == nil {
		if existing.Status == StatusUnsubscribed {
			return s.repo.UpdateStatus(existing.ID, StatusActive)
		}
		return Subscriber{}, ErrEmailExists
	}

	return s.repo.Create(Subscriber{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		Status:       StatusActive,
		SubscribedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// List filters by free-text search (email or name) and by status. Empty
// filters match everything.
func (s *Service) List(search, status string) []Subscriber {
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]Subscriber, 0)
	for _, sub := range s.repo.List() {
		if status != "" && sub.Status != status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(sub.Email), search) &&
			!strings.Contains(strings.ToLower(sub.Name), search) {
			continue
		}
		out = append(out, sub)
	}
	return out
}

func (s *Service) UpdateStatus(id, status string) (Subscriber, error) {
	if status != StatusActive && status != StatusUnsubscribed {
		return Subscriber{}, errors.New("invalid status")
	}
	return s.repo.UpdateStatus(id, status)
}

func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}

// ExportCSV serializes the filtered subscriber list. encoding/csv handles
// quoting, so fields containing commas or quotes round-trip unchanged.
func (s *Service) ExportCSV(search, status string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "email", "name", "status", "subscribedAt"}); err != nil {
		return nil, err
	}
	for _, sub := range s.List(search, status) {
		if err := w.Write([]string{sub.ID, sub.Email, sub.Name, sub.Status, sub.SubscribedAt}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
