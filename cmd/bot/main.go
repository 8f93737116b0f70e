package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/dailyvocab/vocab-study-bot/internal/config"
	"github.com/dailyvocab/vocab-study-bot/internal/delivery/telegram"
	"github.com/dailyvocab/vocab-study-bot/internal/infra/postgres"
	"github.com/dailyvocab/vocab-study-bot/internal/logger"
	"github.com/dailyvocab/vocab-study-bot/internal/repository"
	"github.com/dailyvocab/vocab-study-bot/internal/service"
	"github.com/dailyvocab/vocab-study-bot/internal/storage"
	"github.com/dailyvocab/vocab-study-bot/internal/wordlist"
)

func main() {
	// Load environment variables from .env file if present.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB.URL, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	masteryRepo := repository.NewMasteryRepository(pool)
	starredRepo := repository.NewStarredRepository(pool)

	progress := service.NewProgressService(masteryRepo, starredRepo, zapLogger)
	progress.Init(ctx)

	// Remote source wins when both are configured.
	var source wordlist.Source
	if cfg.WordList.BaseURL != "" {
		source = wordlist.NewHTTPSource(cfg.WordList.BaseURL, &http.Client{Timeout: 10 * time.Second})
		zapLogger.Info("using remote word lists", zap.String("base_url", cfg.WordList.BaseURL))
	} else {
		source = wordlist.NewDirSource(cfg.WordList.Dir)
		zapLogger.Info("using local word lists", zap.String("dir", cfg.WordList.Dir))
	}
	loader := wordlist.NewLoader(source, zapLogger)

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zapLogger.Fatal("failed to create telegram bot", zap.Error(err))
	}
	zapLogger.Info("authorized on telegram", zap.String("username", bot.Self.UserName))

	handler := telegram.NewHandler(
		bot,
		zapLogger,
		progress,
		loader,
		storage.NewSessionStore(),
		storage.NewFilterStore(),
	)

	reminders := service.NewReminderService(loader, progress, cfg.Reminder.Cron, cfg.Reminder.ChatID, zapLogger)
	reminders.SetNotifier(handler)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		reminders.Start(ctx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
			zapLogger.Error("telegram handler error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	zapLogger.Info("shutting down")
	wg.Wait()
}
