package postgres

import (
	"database/sql"

	"shopbot/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// GetByTelegramID returns the user for a Telegram id,
// or domain.ErrNotFound when no record exists.
func (r *UserRepo) GetByTelegramID(telegramID int64) (*domain.User, error) {
	var u domain.User
	query := `
		SELECT id, telegram_id, first_name, language, created_at
		FROM users
		WHERE telegram_id = $1
	`
	err := r.db.QueryRow(query, telegramID).Scan(
		&u.ID, &u.TelegramID, &u.FirstName, &u.Language, &u.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// Create inserts a new user and returns it with the generated id
func (r *UserRepo) Create(telegramID int64, firstName, language string) (*domain.User, error) {
	var u domain.User
	query := `
		INSERT INTO users (telegram_id, first_name, language)
		VALUES ($1, $2, $3)
		RETURNING id, telegram_id, first_name, language, created_at
	`
	err := r.db.QueryRow(query, telegramID, firstName, language).Scan(
		&u.ID, &u.TelegramID, &u.FirstName, &u.Language, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// UpdateLanguage changes the user's preferred language
func (r *UserRepo) UpdateLanguage(telegramID int64, language string) error {
	query := `UPDATE users SET language = $2 WHERE telegram_id = $1`
	res, err := r.db.Exec(query, telegramID, language)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// GetAll returns every registered user
func (r *UserRepo) GetAll() ([]domain.User, error) {
	query := `
		SELECT id, telegram_id, first_name, language, created_at
		FROM users
		ORDER BY created_at
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.TelegramID, &u.FirstName, &u.Language, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}
