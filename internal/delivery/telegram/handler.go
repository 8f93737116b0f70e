package telegram

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/dailyvocab/vocab-study-bot/internal/daterange"
	"github.com/dailyvocab/vocab-study-bot/internal/domain/entities"
	"github.com/dailyvocab/vocab-study-bot/internal/service"
)

// Handler wires Telegram updates to the study services. Each chat has its own
// filter selection and at most one active study session.
type Handler struct {
	bot      *tgbotapi.BotAPI
	logger   *zap.Logger
	progress ProgressService
	loader   WordLoader
	sessions SessionStore
	filters  FilterStore

	// wordNames caches id -> word text from the most recent load, so the
	// progress view can label ids even after the session is replaced.
	wordNames map[string]string
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	progress ProgressService,
	loader WordLoader,
	sessions SessionStore,
	filters FilterStore,
) *Handler {
	return &Handler{
		bot:       bot,
		logger:    logger,
		progress:  progress,
		loader:    loader,
		sessions:  sessions,
		filters:   filters,
		wordNames: make(map[string]string),
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID

	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case "start":
			h.send(newHTMLMessage(chatID, msgWelcome))

		case "help":
			h.send(newHTMLMessage(chatID, msgHelp))

		case "flashcards":
			h.handleFlashcardsCommand(ctx, chatID)

		case "quiz":
			h.handleQuizCommand(chatID)

		case "filters":
			h.handleFiltersCommand(chatID)

		case "progress":
			h.handleProgressCommand(chatID)

		default:
			h.send(newHTMLMessage(chatID, msgUnknownCommand))
		}

		return
	}

	if h.filters.AwaitingCustomRange(chatID) {
		h.handleCustomRangeInput(chatID, update.Message.Text)
		return
	}

	h.send(newHTMLMessage(chatID, msgUnknownCommand))
}

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		return
	}

	cd := decodeCallback(cb.Data)
	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID

	var toast string
	switch cd.Action {
	case actionFlashcard:
		toast = h.handleFlashcardCallback(ctx, chatID, messageID, cd)
	case actionQuiz:
		toast = h.handleQuizCallback(ctx, chatID, messageID, cd)
	case actionFilter:
		toast = h.handleFilterCallback(ctx, chatID, messageID, cd)
	default:
		return
	}

	// Remove the user's "clock"; toast shows validation errors as alerts.
	answer := tgbotapi.NewCallback(cb.ID, toast)
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Warn("callback answer error", zap.Error(err))
	}
}

// loadWorkingSet resolves the chat's date range, loads the word lists, and
// applies the word filter. An empty result is a normal outcome.
func (h *Handler) loadWorkingSet(ctx context.Context, chatID int64) []entities.WordEntry {
	state := h.filters.Get(chatID)
	keys := daterange.Resolve(time.Now(), state)
	words := h.loader.Load(ctx, keys)
	words = service.ApplyWordFilter(words, state.WordFilter, h.progress)

	for _, w := range words {
		h.wordNames[w.ID] = w.CorrectWord
	}
	return words
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("send message", zap.Error(err))
	}
}

// SendDigest implements service.ReminderNotifier.
func (h *Handler) SendDigest(chatID int64, todayWords, trackedWrong, starred int) {
	h.send(newHTMLMessage(chatID, formatDigest(todayWords, trackedWrong, starred)))
}
