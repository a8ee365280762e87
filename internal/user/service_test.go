package user

import (
	"testing"
)

func TestRegisterThenAuthenticate(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil))

	created, err := s.Register(User{Name: "Jenny", Email: "jenny@example.com", Password: "longenough"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if created.Password == "longenough" {
		t.Fatal("expected password to be hashed")
	}

	got, err := s.Authenticate("jenny@example.com", "longenough")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("expected user %d, got %d", created.ID, got.ID)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil))

	if _, err := s.Register(User{Name: "A", Email: "dup@example.com", Password: "longenough"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := s.Register(User{Name: "B", Email: "dup@example.com", Password: "alsolongenough"}); err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestRegister_Validation(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil))

	if _, err := s.Register(User{Email: "x@example.com", Password: "longenough"}); err != ErrMissingFields {
		t.Fatalf("expected ErrMissingFields for missing name, got %v", err)
	}
	if _, err := s.Register(User{Name: "X", Email: "x@example.com", Password: "short"}); err != ErrPasswordTooShort {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestAuthenticate_GenericFailure(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil))

	if _, err := s.Register(User{Name: "A", Email: "a@example.com", Password: "longenough"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// unknown email and wrong password fail identically
	if _, err := s.Authenticate("nobody@example.com", "longenough"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
	if _, err := s.Authenticate("a@example.com", "wrongpassword"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
}
