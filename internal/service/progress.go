package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/dailyvocab/vocab-study-bot/internal/domain/entities"
)

// correctStreakToClear is the number of consecutive correct answers after
// which a word's wrong-attempt record is retired.
const correctStreakToClear = 3

// MasteryRepository is the persistence port for wrong-attempt records.
type MasteryRepository interface {
	GetAll(ctx context.Context) (map[string]entities.MasteryRecord, error)
	Upsert(ctx context.Context, wordID string, rec entities.MasteryRecord) error
	Delete(ctx context.Context, wordID string) error
}

// StarredRepository is the persistence port for starred word ids.
type StarredRepository interface {
	GetAll(ctx context.Context) (map[string]bool, error)
	Add(ctx context.Context, wordID string) error
	Delete(ctx context.Context, wordID string) error
}

// ProgressService owns the in-memory mastery records and starred set and
// writes every change through to the repositories. Memory is the source of
// truth for the session: a failed remote write is logged and tolerated, it is
// never rolled back, so storage can lag behind memory after transient errors.
type ProgressService struct {
	mastery MasteryRepository
	starred StarredRepository
	logger  *zap.Logger

	mu      sync.RWMutex
	records map[string]entities.MasteryRecord
	stars   map[string]bool
}

// NewProgressService creates a progress service over the two repositories.
func NewProgressService(mastery MasteryRepository, starred StarredRepository, logger *zap.Logger) *ProgressService {
	return &ProgressService{
		mastery: mastery,
		starred: starred,
		logger:  logger,
		records: make(map[string]entities.MasteryRecord),
		stars:   make(map[string]bool),
	}
}

// Init loads both collections into memory. Load failures leave the affected
// collection empty and are logged, not fatal: the session continues with
// whatever state was readable.
func (s *ProgressService) Init(ctx context.Context) {
	records, err := s.mastery.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to load wrong attempts", zap.Error(err))
	} else {
		s.mu.Lock()
		s.records = records
		s.mu.Unlock()
		s.logger.Info("wrong attempts loaded", zap.Int("count", len(records)))
	}

	stars, err := s.starred.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to load starred words", zap.Error(err))
	} else {
		s.mu.Lock()
		s.stars = stars
		s.mu.Unlock()
		s.logger.Info("starred words loaded", zap.Int("count", len(stars)))
	}
}

// RecordWrong registers a wrong answer: the record is created with count 1 on
// the first miss, otherwise count is incremented and the correct streak
// resets.
func (s *ProgressService) RecordWrong(ctx context.Context, wordID string) {
	s.mu.Lock()
	rec, ok := s.records[wordID]
	if !ok {
		rec = entities.MasteryRecord{Count: 1}
	} else {
		rec.Count++
		rec.CorrectStreak = 0
	}
	s.records[wordID] = rec
	s.mu.Unlock()

	if err := s.mastery.Upsert(ctx, wordID, rec); err != nil {
		s.logger.Error("failed to persist wrong attempt",
			zap.String("word_id", wordID),
			zap.Error(err),
		)
	}
}

// RecordCorrect registers a correct answer for a tracked word. Words that
// were never missed have no record and are a no-op. Three consecutive correct
// answers retire the record entirely.
func (s *ProgressService) RecordCorrect(ctx context.Context, wordID string) {
	s.mu.Lock()
	rec, ok := s.records[wordID]
	if !ok {
		s.mu.Unlock()
		return
	}

	rec.CorrectStreak++
	cleared := rec.CorrectStreak >= correctStreakToClear
	if cleared {
		delete(s.records, wordID)
	} else {
		s.records[wordID] = rec
	}
	s.mu.Unlock()

	if cleared {
		if err := s.mastery.Delete(ctx, wordID); err != nil {
			s.logger.Error("failed to delete mastered record",
				zap.String("word_id", wordID),
				zap.Error(err),
			)
		}
		return
	}

	if err := s.mastery.Upsert(ctx, wordID, rec); err != nil {
		s.logger.Error("failed to persist correct attempt",
			zap.String("word_id", wordID),
			zap.Error(err),
		)
	}
}

// ToggleStar flips the starred flag for a word and returns the new state.
func (s *ProgressService) ToggleStar(ctx context.Context, wordID string) bool {
	s.mu.Lock()
	wasStarred := s.stars[wordID]
	if wasStarred {
		delete(s.stars, wordID)
	} else {
		s.stars[wordID] = true
	}
	s.mu.Unlock()

	if wasStarred {
		if err := s.starred.Delete(ctx, wordID); err != nil {
			s.logger.Error("failed to unstar word",
				zap.String("word_id", wordID),
				zap.Error(err),
			)
		}
		return false
	}

	if err := s.starred.Add(ctx, wordID); err != nil {
		s.logger.Error("failed to star word",
			zap.String("word_id", wordID),
			zap.Error(err),
		)
	}
	return true
}

// IsStarred reports whether a word is starred.
func (s *ProgressService) IsStarred(wordID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stars[wordID]
}

// WrongCount returns the wrong-attempt count for a word, 0 when untracked.
func (s *ProgressService) WrongCount(wordID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records[wordID].Count
}

// TrackedCount returns how many words currently have a wrong-attempt record.
func (s *ProgressService) TrackedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// StarredCount returns how many words are starred.
func (s *ProgressService) StarredCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.stars)
}

// HardestWords returns up to limit tracked word ids ordered by descending
// wrong count.
func (s *ProgressService) HardestWords(limit int) []WordDifficulty {
	s.mu.RLock()
	all := make([]WordDifficulty, 0, len(s.records))
	for id, rec := range s.records {
		all = append(all, WordDifficulty{WordID: id, WrongCount: rec.Count})
	}
	s.mu.RUnlock()

	sortByWrongCountDesc(all)
	if len(all) > limit {
		all = all[:limit]
	}
	return all
}

// WordDifficulty pairs a word id with its wrong-attempt count.
type WordDifficulty struct {
	WordID     string
	WrongCount int
}
