package service

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/dailyvocab/vocab-study-bot/internal/daterange"
	"github.com/dailyvocab/vocab-study-bot/internal/domain/entities"
	"github.com/dailyvocab/vocab-study-bot/internal/wordlist"
)

// ReminderNotifier delivers the daily digest to a chat.
type ReminderNotifier interface {
	SendDigest(chatID int64, todayWords, trackedWrong, starred int)
}

// ReminderService sends a daily study digest: how many words today's list
// holds and how many words are still tracked as wrong.
type ReminderService struct {
	loader   *wordlist.Loader
	progress *ProgressService
	notifier ReminderNotifier
	logger   *zap.Logger

	cronSpec string
	chatID   int64
}

// NewReminderService creates a reminder service. A zero chatID disables it.
func NewReminderService(
	loader *wordlist.Loader,
	progress *ProgressService,
	cronSpec string,
	chatID int64,
	logger *zap.Logger,
) *ReminderService {
	return &ReminderService{
		loader:   loader,
		progress: progress,
		cronSpec: cronSpec,
		chatID:   chatID,
		logger:   logger,
	}
}

// SetNotifier sets the notifier (called after the handler is created).
func (s *ReminderService) SetNotifier(notifier ReminderNotifier) {
	s.notifier = notifier
}

// Start begins the reminder scheduling loop and blocks until ctx is done.
func (s *ReminderService) Start(ctx context.Context) {
	if s.chatID == 0 {
		s.logger.Info("reminders disabled: no chat configured")
		return
	}

	s.logger.Info("reminder service started", zap.String("cron", s.cronSpec))

	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(s.cronSpec, func() {
		s.logger.Info("cron triggered: sending daily digest")
		s.sendDigest(ctx)
	})
	if err != nil {
		s.logger.Error("failed to add cron job", zap.Error(err))
		return
	}

	c.Start()

	<-ctx.Done()

	c.Stop()
	s.logger.Info("reminder service stopped")
}

func (s *ReminderService) sendDigest(ctx context.Context) {
	if s.notifier == nil {
		s.logger.Warn("no notifier set, skipping digest")
		return
	}

	state := entities.DefaultFilterState()
	keys := daterange.Resolve(time.Now().UTC(), state)
	words := s.loader.Load(ctx, keys)

	s.notifier.SendDigest(s.chatID, len(words), s.progress.TrackedCount(), s.progress.StarredCount())
}
