package domain

import "time"

// Message is a support or broadcast communication between a user and an admin.
type Message struct {
	ID        int
	UserID    int
	AdminID   int64
	Text      string
	CreatedAt time.Time
}
