package contact

import (
	"strings"
	"testing"

	"github.com/oakratch/storefront-backend/internal/mailer"
)

// fakeMailer captures the last message instead of talking to SMTP.
type fakeMailer struct {
	sent []mailer.Message
	err  error
}

func (f *fakeMailer) Send(m mailer.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m)
	return nil
}

func TestSubmit_SendsEmail(t *testing.T) {
	fm := &fakeMailer{}
	s := NewService(NewInMemoryRepository(nil), fm)

	created, err := s.Submit("Jenny", "jenny@example.com", "Quote", "Hello there", nil)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a generated id")
	}

	if len(fm.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(fm.sent))
	}
	msg := fm.sent[0]
	if msg.ReplyTo != "jenny@example.com" || msg.Subject != "Quote" {
		t.Fatalf("unexpected message headers: %+v", msg)
	}
	if !strings.Contains(msg.Body, "Hello there") {
		t.Fatalf("expected message body to carry the text, got %q", msg.Body)
	}

	if got := len(s.List()); got != 1 {
		t.Fatalf("expected 1 stored contact, got %d", got)
	}
}

func TestSubmit_DefaultSubject(t *testing.T) {
	fm := &fakeMailer{}
	s := NewService(NewInMemoryRepository(nil), fm)

	created, err := s.Submit("Jenny", "jenny@example.com", "", "Hi", nil)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if created.Subject == "" {
		t.Fatal("expected a default subject")
	}
}

func TestSubmit_MissingFields(t *testing.T) {
	fm := &fakeMailer{}
	s := NewService(NewInMemoryRepository(nil), fm)

	if _, err := s.Submit("", "jenny@example.com", "x", "Hi", nil); err != ErrMissingFields {
		t.Fatalf("expected ErrMissingFields for missing name, got %v", err)
	}
	if _, err := s.Submit("Jenny", "jenny@example.com", "x", "", nil); err != ErrMissingFields {
		t.Fatalf("expected ErrMissingFields for missing message, got %v", err)
	}
	if len(fm.sent) != 0 {
		t.Fatal("expected no email for invalid submissions")
	}
}

func TestSubmit_KeepsRecordWhenSMTPUnconfigured(t *testing.T) {
	fm := &fakeMailer{err: mailer.ErrNotConfigured}
	s := NewService(NewInMemoryRepository(nil), fm)

	created, err := s.Submit("Jenny", "jenny@example.com", "x", "Hi", nil)
	if err != nil {
		t.Fatalf("expected submit to succeed without SMTP, got %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected the contact to be stored")
	}
	if got := len(s.List()); got != 1 {
		t.Fatalf("expected 1 stored contact, got %d", got)
	}
}

func TestSubmit_ForwardsAttachment(t *testing.T) {
	fm := &fakeMailer{}
	s := NewService(NewInMemoryRepository(nil), fm)

	att := &mailer.Attachment{Filename: "brief.pdf", Content: []byte("pdf-bytes")}
	if _, err := s.Submit("Jenny", "jenny@example.com", "x", "Hi", att); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if fm.sent[0].Attachment == nil || fm.sent[0].Attachment.Filename != "brief.pdf" {
		t.Fatalf("expected attachment to be forwarded, got %+v", fm.sent[0].Attachment)
	}
}
