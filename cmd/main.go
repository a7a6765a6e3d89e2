package main

import (
	"complaintbox/backend/internal/analysis"
	"complaintbox/backend/internal/api/handler"
	"complaintbox/backend/internal/complaint"
	"complaintbox/backend/internal/config"
	"complaintbox/backend/internal/localization"
	"complaintbox/backend/internal/preferences"
	"complaintbox/backend/internal/storage"
	"complaintbox/backend/internal/telegram"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func newLogger(debug bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return logger
}

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("Invalid configuration", zap.Error(err))
	}

	logger := newLogger(cfg.Debug)
	defer func() { _ = logger.Sync() }()
	if envErr != nil {
		logger.Warn("Error loading .env file", zap.Error(envErr))
	}
	logger.Info("Starting Complaint Box backend...")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Storage
	kv, closeKV, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer closeKV()

	localizer, err := localization.NewEmbeddedLocalizer()
	if err != nil {
		logger.Fatal("Failed to load locales", zap.Error(err))
	}

	// 2. Optional integrations
	var classifier analysis.Classifier
	if cfg.SuggestionsEnabled() {
		gemini, err := analysis.NewGeminiClassifier(ctx, cfg.GeminiAPIKey, config.SuggestionModel)
		if err != nil {
			logger.Error("Gemini client unavailable, category suggestions disabled", zap.Error(err))
		} else {
			logger.Info("Category suggestions enabled", zap.String("classifier", gemini.Name()))
			classifier = gemini
		}
	} else {
		logger.Info("GEMINI_API_KEY not set, category suggestions disabled")
	}

	service := complaint.NewService(storage.NewComplaintStore(kv, logger), logger)

	if cfg.NotificationsEnabled() {
		bot, err := telegram.NewBotService(cfg.TelegramBotToken, cfg.TelegramFacultyChatID, service, logger)
		if err != nil {
			logger.Error("Failed to start Telegram bot, notifications disabled", zap.Error(err))
		} else {
			service.Notifier = telegram.NewNotifier(bot.Sender, cfg.TelegramFacultyChatID, localizer, logger)
			go bot.Run(ctx)
		}
	}

	// 3. HTTP
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	h := handler.NewHandler(handler.Handler{
		Complaints:         service,
		Suggester:          analysis.NewSuggester(classifier, logger),
		Themes:             preferences.NewThemeStore(kv, logger),
		Localizer:          localizer,
		Tokens:             handler.NewTokenIssuer(cfg.SessionSecret),
		SuggestionDebounce: cfg.SuggestionDebounce,
	}, logger)
	h.Register(r)

	server := &http.Server{
		Addr:           cfg.HTTPAddr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}
