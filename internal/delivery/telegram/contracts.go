package telegram

import (
	"context"

	"github.com/dailyvocab/vocab-study-bot/internal/domain/entities"
	"github.com/dailyvocab/vocab-study-bot/internal/service"
)

type ProgressService interface {
	RecordWrong(ctx context.Context, wordID string)
	RecordCorrect(ctx context.Context, wordID string)
	ToggleStar(ctx context.Context, wordID string) bool
	IsStarred(wordID string) bool
	WrongCount(wordID string) int
	TrackedCount() int
	StarredCount() int
	HardestWords(limit int) []service.WordDifficulty
}

type WordLoader interface {
	Load(ctx context.Context, dateKeys []string) []entities.WordEntry
}

type SessionStore interface {
	Store(chatID int64, session *entities.StudySession)
	Get(chatID int64) *entities.StudySession
	Delete(chatID int64)
}

type FilterStore interface {
	Get(chatID int64) entities.FilterState
	Set(chatID int64, state entities.FilterState)
	SetAwaitingCustomRange(chatID int64, awaiting bool)
	AwaitingCustomRange(chatID int64) bool
}
