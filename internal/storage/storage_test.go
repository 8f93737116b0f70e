package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailyvocab/vocab-study-bot/internal/domain/entities"
)

func TestSessionStoreReplaceAndDelete(t *testing.T) {
	store := NewSessionStore()
	assert.Nil(t, store.Get(1))

	first := entities.NewFlashcardSession(1, nil)
	store.Store(1, first)
	assert.Same(t, first, store.Get(1))

	second := entities.NewFlashcardSession(1, nil)
	store.Store(1, second)
	assert.Same(t, second, store.Get(1), "starting a new session replaces the old")

	store.Delete(1)
	assert.Nil(t, store.Get(1))
}

func TestFilterStoreDefaultsAndCustomRange(t *testing.T) {
	store := NewFilterStore()

	state := store.Get(42)
	assert.Equal(t, entities.DefaultFilterState(), state)

	state.TimeFilter = entities.TimeCustom
	state.CustomStart = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	state.CustomEnd = time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)
	store.Set(42, state)

	got := store.Get(42)
	require.Equal(t, entities.TimeCustom, got.TimeFilter)
	assert.Equal(t, state.CustomStart, got.CustomStart)

	assert.False(t, store.AwaitingCustomRange(42))
	store.SetAwaitingCustomRange(42, true)
	assert.True(t, store.AwaitingCustomRange(42))
	store.SetAwaitingCustomRange(42, false)
	assert.False(t, store.AwaitingCustomRange(42))
}
