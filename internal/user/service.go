package user

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is enforced at registration.
const MinPasswordLength = 8

var (
	ErrMissingFields    = errors.New("name, email and password are required")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []User {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (User, error) {
	return s.repo.GetByID(id)
}

// Register validates the payload, hashes the password and creates the
// account. Duplicate emails are rejected before any write happens.
func (s *Service) Register(user User) (User, error) {
	if user.Name == "" || user.Email == "" || user.Password == "" {
		return User{}, ErrMissingFields
	}
	if len(user.Password) < MinPasswordLength {
		return User{}, ErrPasswordTooShort
	}

	if _, err := s.repo.GetByEmail(user.Email); err == nil {
		return User{}, ErrEmailExists
	} else if err != ErrNotFound {
		return User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	user.Password = string(hashed)
	if user.Role == "" {
		user.Role = "customer"
	}
	return s.repo.Create(user)
}

// Authenticate returns ErrInvalidCredentials for both an unknown email
// and a wrong password so responses cannot be used for enumeration.
func (s *Service) Authenticate(email, password string) (User, error) {
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		return User{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}

	return user, nil
}

func (s *Service) Update(id int, user User) (User, error) {
	return s.repo.Update(id, user)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}

// HashPassword is exposed for seeding demo accounts.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
