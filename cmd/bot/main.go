package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dashbot/internal/catalog"
	"dashbot/internal/config"
	"dashbot/internal/dialog"
	"dashbot/internal/handler"
	"dashbot/internal/store"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Dash Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Load catalog
	cat, err := loadCatalog(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}

	// Initialize stores
	sessions := store.NewSessionStore()
	ledger := store.NewMemoryLedger(cfg.DefaultBalance)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:     cfg.BotToken,
		Poller:    &tele.LongPoller{Timeout: 10 * time.Second},
		ParseMode: tele.ModeHTML,
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize dialog engine and handlers
	engine := dialog.NewEngine(sessions, ledger, cat, logger)
	h := handler.NewHandler(bot, engine, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	bot.Stop()

	logger.Info("Bot stopped gracefully")
}

// loadCatalog reads the catalog file when configured, otherwise uses the
// built-in one
func loadCatalog(cfg *config.Config, logger *zap.Logger) (*catalog.Catalog, error) {
	if cfg.CatalogPath == "" {
		logger.Info("Using built-in catalog")
		return catalog.Default(), nil
	}

	cat, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	logger.Info("Catalog loaded",
		zap.String("path", cfg.CatalogPath),
		zap.Int("restaurants", len(cat.Restaurants)),
	)
	return cat, nil
}
