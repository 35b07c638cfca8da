package postgres

import (
	"database/sql"
	"testing"
	"time"

	"shopbot/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestUserRepo_GetByTelegramID(t *testing.T) {
	tests := []struct {
		name          string
		telegramID    int64
		mockRows      *sqlmock.Rows
		mockError     error
		expectedError error
	}{
		{
			name:       "existing user",
			telegramID: 123,
			mockRows: sqlmock.NewRows([]string{"id", "telegram_id", "first_name", "language", "created_at"}).
				AddRow(1, 123, "Aziz", "uz", time.Now()),
		},
		{
			name:          "missing user",
			telegramID:    456,
			mockError:     sql.ErrNoRows,
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewUserRepo(db)

			query := "SELECT id, telegram_id, first_name, language, created_at FROM users WHERE telegram_id = \\$1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.telegramID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.telegramID).WillReturnRows(tt.mockRows)
			}

			user, err := repo.GetByTelegramID(tt.telegramID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Aziz", user.FirstName)
				assert.Equal(t, tt.telegramID, user.TelegramID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(int64(123), "Aziz", "uz").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "telegram_id", "first_name", "language", "created_at"}).
				AddRow(7, 123, "Aziz", "uz", time.Now()),
		)

	user, err := repo.Create(123, "Aziz", "uz")

	assert.NoError(t, err)
	assert.Equal(t, 7, user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_UpdateLanguage(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := NewUserRepo(db)

		mock.ExpectExec("UPDATE users SET language").
			WithArgs(int64(123), "en").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateLanguage(123, "en"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing user", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := NewUserRepo(db)

		mock.ExpectExec("UPDATE users SET language").
			WithArgs(int64(456), "en").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdateLanguage(456, "en"), domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepo_GetAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	mock.ExpectQuery("SELECT id, telegram_id, first_name, language, created_at FROM users").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "telegram_id", "first_name", "language", "created_at"}).
				AddRow(1, 123, "Aziz", "uz", time.Now()).
				AddRow(2, 456, "Olga", "ru", time.Now()),
		)

	users, err := repo.GetAll()

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "Olga", users[1].FirstName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
