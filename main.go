// main.go
package main

import (
	"context"
	"log"
	"time"

	"hire-nest/cmd"
	"hire-nest/internal/data/repository"
	"hire-nest/internal/wire"
	"hire-nest/pkg/database"
	"hire-nest/pkg/mailer"
	"hire-nest/pkg/token"
	"hire-nest/pkg/utils"

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

	// Initialize repositories, token issuer and mail gateway
	repos := repository.NewRepository(db, logger)
	issuer := token.NewIssuer(config.Token)
	sender := mailer.NewMailer(config.Email)

	// Purge expired OTP rows periodically. Reads already filter on expiry,
	// so the sweep only reclaims rows and frees the email key for reuse.
	go sweepExpiredOtps(repos.Otp, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, issuer, sender, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}

func sweepExpiredOtps(otpRepo repository.OtpRepository, logger *zap.Logger) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		purged, err := otpRepo.DeleteExpired(context.Background())
		if err != nil {
			logger.Error("OTP sweep failed", zap.Error(err))
			continue
		}
		if purged > 0 {
			logger.Info("Expired OTPs purged", zap.Int64("count", purged))
		}
	}
}
