// Package storage provides in-memory per-chat state: the active study
// session and the chat's filter selection.
package storage

import (
	"sync"

	"github.com/dailyvocab/vocab-study-bot/internal/domain/entities"
)

// SessionStore keeps the active study session per chat ID. A chat has at
// most one session; starting a new one replaces the old.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*entities.StudySession
}

// NewSessionStore creates a new SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]*entities.StudySession),
	}
}

// Store saves the session for a chat, replacing any previous one.
func (s *SessionStore) Store(chatID int64, session *entities.StudySession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[chatID] = session
}

// Get retrieves the session for a chat, or nil.
func (s *SessionStore) Get(chatID int64) *entities.StudySession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[chatID]
}

// Delete removes the session for a chat.
func (s *SessionStore) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}
