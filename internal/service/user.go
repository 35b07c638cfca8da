package service

import (
	"errors"
	"fmt"
	"strings"

	"shopbot/internal/domain"
	"shopbot/internal/repository"
)

// UserService handles registration and identity lookups
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Get resolves a Telegram id to a registered user.
// Returns domain.ErrNotRegistered when no record exists.
func (s *UserService) Get(telegramID int64) (*domain.User, error) {
	u, err := s.userRepo.GetByTelegramID(telegramID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrNotRegistered
	}
	return u, err
}

// Register creates a user after the registration flow collected a name
func (s *UserService) Register(telegramID int64, firstName, language string) (*domain.User, error) {
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		return nil, fmt.Errorf("first name cannot be empty")
	}
	if !domain.ValidLanguage(language) {
		language = domain.DefaultLanguage
	}
	return s.userRepo.Create(telegramID, firstName, language)
}

// UpdateLanguage changes the user's preferred language
func (s *UserService) UpdateLanguage(telegramID int64, language string) error {
	if !domain.ValidLanguage(language) {
		return fmt.Errorf("unsupported language %q", language)
	}
	return s.userRepo.UpdateLanguage(telegramID, language)
}

// List returns every registered user
func (s *UserService) List() ([]domain.User, error) {
	return s.userRepo.GetAll()
}
