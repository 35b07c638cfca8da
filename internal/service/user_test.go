package service

import (
	"testing"

	"shopbot/internal/domain"
	"shopbot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestUserService_Get(t *testing.T) {
	t.Run("existing user is returned", func(t *testing.T) {
		userRepo := new(testutil.MockUserRepository)
		userRepo.On("GetByTelegramID", int64(123)).
			Return(testutil.NewTestUser(1, 123, "Aziz", "uz"), nil)

		svc := NewUserService(userRepo)

		user, err := svc.Get(123)

		assert.NoError(t, err)
		assert.Equal(t, "Aziz", user.FirstName)
	})

	t.Run("missing user maps to not registered", func(t *testing.T) {
		userRepo := new(testutil.MockUserRepository)
		userRepo.On("GetByTelegramID", int64(456)).Return(nil, domain.ErrNotFound)

		svc := NewUserService(userRepo)

		_, err := svc.Get(456)

		assert.ErrorIs(t, err, domain.ErrNotRegistered)
	})
}

func TestUserService_Register(t *testing.T) {
	tests := []struct {
		name          string
		firstName     string
		language      string
		storedLang    string
		expectedError bool
	}{
		{
			name:       "valid registration",
			firstName:  "Aziz",
			language:   "ru",
			storedLang: "ru",
		},
		{
			name:       "name is trimmed",
			firstName:  "  Aziz  ",
			language:   "en",
			storedLang: "en",
		},
		{
			name:          "empty name rejected",
			firstName:     "   ",
			language:      "uz",
			expectedError: true,
		},
		{
			name:       "unknown language falls back to default",
			firstName:  "Aziz",
			language:   "de",
			storedLang: domain.DefaultLanguage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(testutil.MockUserRepository)
			if !tt.expectedError {
				userRepo.On("Create", int64(123), "Aziz", tt.storedLang).
					Return(testutil.NewTestUser(1, 123, "Aziz", tt.storedLang), nil)
			}

			svc := NewUserService(userRepo)

			user, err := svc.Register(123, tt.firstName, tt.language)

			if tt.expectedError {
				assert.Error(t, err)
				userRepo.AssertNotCalled(t, "Create")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.storedLang, user.Language)
				userRepo.AssertExpectations(t)
			}
		})
	}
}

func TestUserService_UpdateLanguage(t *testing.T) {
	t.Run("supported language", func(t *testing.T) {
		userRepo := new(testutil.MockUserRepository)
		userRepo.On("UpdateLanguage", int64(123), "en").Return(nil)

		svc := NewUserService(userRepo)

		assert.NoError(t, svc.UpdateLanguage(123, "en"))
	})

	t.Run("unsupported language rejected", func(t *testing.T) {
		userRepo := new(testutil.MockUserRepository)

		svc := NewUserService(userRepo)

		assert.Error(t, svc.UpdateLanguage(123, "fr"))
		userRepo.AssertNotCalled(t, "UpdateLanguage")
	})
}
