package main

import (
	"photoshare/internal/app"
	"photoshare/internal/vision"
	"photoshare/pkg/cache"
	"photoshare/pkg/config"
	"photoshare/pkg/database"
	"photoshare/pkg/logger"
	"photoshare/pkg/queue"
	"photoshare/pkg/s3"
)

// @title           Photoshare API
// @version         1.0
// @description     Photo sharing platform: upload, browse, search, like, rate and comment on photos, with automatic tagging and content moderation.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// Migrations are handled by goose - see cmd/migrate/main.go

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	visionClient := vision.NewClient(cfg.VisionEndpoint, cfg.VisionAPIKey)
	if !visionClient.Enabled() {
		log.Warn("Vision API not configured, uploads will skip analysis and moderation")
	}

	// The queue is optional; without it, review tasks are only logged.
	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("Failed to connect to RabbitMQ, moderation review queue disabled: %v", err)
		queueClient = nil
	}

	app.Run(cfg, log, db, s3Client, visionClient, queueClient, redisClient)
}
