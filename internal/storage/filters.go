package storage

import (
	"sync"

	"github.com/dailyvocab/vocab-study-bot/internal/domain/entities"
)

// FilterStore keeps each chat's filter selection for the session lifetime.
// Nothing here is persisted; a restart returns every chat to the defaults.
type FilterStore struct {
	mu             sync.RWMutex
	filters        map[int64]entities.FilterState
	awaitingCustom map[int64]bool
}

// NewFilterStore creates a new FilterStore.
func NewFilterStore() *FilterStore {
	return &FilterStore{
		filters:        make(map[int64]entities.FilterState),
		awaitingCustom: make(map[int64]bool),
	}
}

// Get returns the chat's filter state, falling back to the defaults.
func (s *FilterStore) Get(chatID int64) entities.FilterState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.filters[chatID]
	if !ok {
		return entities.DefaultFilterState()
	}
	return state
}

// Set replaces the chat's filter state.
func (s *FilterStore) Set(chatID int64, state entities.FilterState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters[chatID] = state
}

// SetAwaitingCustomRange marks whether the chat's next text message should be
// parsed as a custom date range.
func (s *FilterStore) SetAwaitingCustomRange(chatID int64, awaiting bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if awaiting {
		s.awaitingCustom[chatID] = true
	} else {
		delete(s.awaitingCustom, chatID)
	}
}

// AwaitingCustomRange reports whether the chat is expected to send a custom
// date range next.
func (s *FilterStore) AwaitingCustomRange(chatID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.awaitingCustom[chatID]
}
