package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"go-smartagro/config"
	"go-smartagro/lifecycle"
	"go-smartagro/routes"
	"go-smartagro/services"
	"go-smartagro/speech"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	db, err := config.InitDB(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	gemini, err := services.NewGeminiService(ctx, cfg.Gemini, logger)
	if err != nil {
		logger.Fatal("failed to initialize gemini service", zap.Error(err))
	}

	market := services.NewMarketService(cfg.Market, logger)
	weather := services.NewWeatherService(cfg.Weather, logger)
	notifier := services.LogNotifier{Logger: logger}

	session := speech.NewSessionManager(speech.RemoteRecognizer{}, speech.FallbackLang)
	runners := lifecycle.NewRegistry()
	defer runners.CloseAll()

	r := routes.SetupRouter(db, cfg, gemini, market, weather, notifier, session, runners, logger)

	logger.Info("starting server", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
