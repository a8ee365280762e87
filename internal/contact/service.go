package contact

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/oakratch/storefront-backend/internal/mailer"
)

var ErrMissingFields = errors.New("name, email and message are required")

type Service struct {
	repo   Repository
	mailer mailer.Mailer
}

func NewService(repo Repository, m mailer.Mailer) *Service {
	return &Service{repo: repo, mailer: m}
}

func (s *Service) List() []Contact {
	return s.repo.List()
}

// Submit records the contact message and forwards it by email. The record
// is kept even when SMTP is unconfigured so submissions are never lost in
// demo mode.
func (s *Service) Submit(name, email, subject, message string, attachment *mailer.Attachment) (Contact, error) {
	if name == "" || email == "" || message == "" {
		return Contact{}, ErrMissingFields
	}
	if subject == "" {
		subject = "New contact form message"
	}

	contact := Contact{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Subject:   subject,
		Message:   message,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	created, err := s.repo.Create(contact)
	if err != nil {
		return Contact{}, err
	}

	err = s.mailer.Send(mailer.Message{
		FromName:   name,
		ReplyTo:    email,
		Subject:    subject,
		Body:       fmt.Sprintf("From: %s <%s>\n\n%s", name, email, message),
		Attachment: attachment,
	})
	if err != nil {
		if errors.Is(err, mailer.ErrNotConfigured) {
			log.Printf("contact %s stored but not emailed: %v", created.ID, err)
			return created, nil
		}
		return Contact{}, err
	}

	return created, nil
}

func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}
