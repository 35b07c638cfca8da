// Package session keeps per-user conversation state. Sessions are ephemeral:
// losing them aborts in-progress flows but never loses persisted data.
package session

import "shopbot/internal/domain"

// Store holds one session per Telegram user id.
type Store interface {
	// Get returns the user's session, creating a default one if absent.
	Get(userID int64) *domain.Session
	// Put replaces the user's session.
	Put(userID int64, s *domain.Session)
	// Reset clears the session back to idle, keeping the resolved language.
	Reset(userID int64)
}
