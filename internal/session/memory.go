package session

import (
	"sync"

	"shopbot/internal/domain"
)

// MemoryStore is the default in-process session store.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]*domain.Session
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[int64]*domain.Session)}
}

// Get returns a copy-free reference to the user's session, creating a
// default one on first access.
func (m *MemoryStore) Get(userID int64) *domain.Session {
	m.mu.RLock()
	s, ok := m.sessions[userID]
	m.mu.RUnlock()
	if ok {
		return s
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[userID]; ok {
		return s
	}
	s = domain.NewSession()
	m.sessions[userID] = s
	return s
}

// Put replaces the user's session
func (m *MemoryStore) Put(userID int64, s *domain.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[userID] = s
}

// Reset clears the session back to idle, keeping the language
func (m *MemoryStore) Reset(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[userID]; ok {
		s.Reset()
	}
}
