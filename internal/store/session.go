package store

import (
	"sync"

	"dashbot/internal/domain"
)

// SessionStore keeps one dialog session per user in process memory.
// Sessions are never deleted, only reset to idle.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]domain.DialogSession
}

// NewSessionStore creates an empty session store
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]domain.DialogSession)}
}

// GetOrCreate returns the user's session, creating an idle one on first use
func (s *SessionStore) GetOrCreate(userID int64) domain.DialogSession {
	s.mu.RLock()
	sess, ok := s.sessions[userID]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[userID]; ok {
		return sess
	}
	sess = domain.NewSession(userID)
	s.sessions[userID] = sess
	return sess
}

// Save upserts the session
func (s *SessionStore) Save(session domain.DialogSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.UserID] = session
}

// Clear resets the user's session to idle with empty scratch
func (s *SessionStore) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = domain.NewSession(userID)
}
