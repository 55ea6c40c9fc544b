package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mkarpich/teenspeak-bot/internal/analytics"
	"github.com/mkarpich/teenspeak-bot/internal/analyzer"
	"github.com/mkarpich/teenspeak-bot/internal/bot"
	"github.com/mkarpich/teenspeak-bot/internal/history"
	"github.com/mkarpich/teenspeak-bot/internal/llm"
	"github.com/mkarpich/teenspeak-bot/internal/ratelimit"
	"github.com/mkarpich/teenspeak-bot/internal/storage"
	"github.com/mkarpich/teenspeak-bot/pkg/config"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()

	// Load configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", "config.yaml"))
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid config", zap.Error(err))
	}
	if cfg.Environment == "development" {
		if dev, err := zap.NewDevelopment(); err == nil {
			logger = dev
		}
	}
	defer logger.Sync()

	// Initialize the analytics event store. The bot stays up without
	// persistence: a failed database connection degrades to in-memory.
	var store storage.EventStore
	if cfg.Database.UseInMemory {
		logger.Info("Using in-memory event store")
		store = storage.NewMemoryStore()
	} else {
		pgStore, err := storage.NewPostgresStore(storage.DatabaseConfig{
			Host:        cfg.Database.Host,
			Port:        cfg.Database.Port,
			User:        cfg.Database.User,
			Password:    cfg.Database.Password,
			DBName:      cfg.Database.DBName,
			SSLMode:     cfg.Database.SSLMode,
			UseInMemory: cfg.Database.UseInMemory,
		})
		if err != nil {
			logger.Warn("Failed to connect to PostgreSQL, falling back to in-memory event store", zap.Error(err))
			store = storage.NewMemoryStore()
		} else {
			logger.Info("Using PostgreSQL event store")
			store = pgStore
		}
	}
	defer store.Close()

	countCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if count, err := store.EventsCount(countCtx); err == nil {
		logger.Info("Event store ready", zap.Int64("events", count))
	}
	cancel()

	tracker := analytics.NewTracker(store, logger)

	// Initialize the completion provider
	completer, err := llm.New(llm.ProviderConfig{
		Provider:    cfg.LLM.Provider,
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: cfg.LLM.Temperature,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to create completion provider", zap.Error(err))
	}

	analyzerService := analyzer.NewService(completer, logger)
	historyLog := history.New(cfg.Analysis.HistorySize)
	limiter := ratelimit.New(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window())

	// Initialize bot
	b, err := bot.New(bot.Config{
		Token:          cfg.Telegram.Token,
		AgeRange:       cfg.Analysis.AgeRange,
		MinPhraseRunes: cfg.Analysis.MinPhraseLength,
		MaxPhraseRunes: cfg.Analysis.MaxPhraseLength,
	}, analyzerService, historyLog, limiter, tracker, logger)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	// Run until interrupted
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := b.Start(ctx); err != nil {
		logger.Fatal("Bot error", zap.Error(err))
	}
}
