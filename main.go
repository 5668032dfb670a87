package main

import (
	"log"
	"time"

	"solar-marketplace/cmd"
	"solar-marketplace/internal/data/repository"
	"solar-marketplace/internal/usecase"
	"solar-marketplace/internal/wire"
	"solar-marketplace/pkg/database"
	"solar-marketplace/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Token issuer shared by login, verification and the auth middleware
	jwtUtil := utils.NewJWTUtil(config.JWT.Secret, config.JWT.ExpiryHours)

	// Background expiry sweep, disabled when the interval is zero
	if config.Listing.SweepMinutes > 0 {
		sweeper := usecase.NewSweeper(repos, time.Duration(config.Listing.SweepMinutes)*time.Minute, logger)
		sweeper.Start()
		defer sweeper.Stop()
	}

	// Wire all dependencies
	app := wire.Wiring(repos, config, jwtUtil, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
