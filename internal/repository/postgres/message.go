package postgres

import (
	"database/sql"

	"shopbot/internal/domain"
)

// MessageRepo implements repository.MessageRepository
type MessageRepo struct {
	db *sql.DB
}

// NewMessageRepo creates a new message repository
func NewMessageRepo(db *sql.DB) *MessageRepo {
	return &MessageRepo{db: db}
}

// Create stores a support message addressed to an admin
func (r *MessageRepo) Create(userID int, adminID int64, text string) error {
	query := `
		INSERT INTO messages (user_id, admin_id, text)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(query, userID, adminID, text)
	return err
}

// GetByUser returns the user's message history, oldest first
func (r *MessageRepo) GetByUser(userID int) ([]domain.Message, error) {
	query := `
		SELECT id, user_id, admin_id, text, created_at
		FROM messages
		WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.UserID, &m.AdminID, &m.Text, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}
