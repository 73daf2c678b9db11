package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"photoshare/internal/entity"
	"photoshare/internal/repo/persistent"
	"photoshare/pkg/config"
	"photoshare/pkg/database"
	"photoshare/pkg/logger"
	"photoshare/pkg/queue"
	"photoshare/pkg/s3"
)

// Moderation sidekick. Without flags it tails the review queue and logs each
// photo held for review. With -approve or -reject it resolves one photo.
func main() {
	var (
		approve = flag.String("approve", "", "photo ID to approve")
		reject  = flag.String("reject", "", "photo ID to reject (also deletes the stored image)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	photoRepo := persistent.NewPhotoRepository(db)

	switch {
	case *approve != "":
		resolve(photoRepo, nil, *approve, entity.StatusApproved, log)
	case *reject != "":
		s3Client, err := s3.NewClient(cfg)
		if err != nil {
			log.Error("Failed to create S3 client: %v", err)
			panic(err)
		}
		resolve(photoRepo, s3Client, *reject, entity.StatusRejected, log)
	default:
		listen(cfg, log)
	}
}

func resolve(photoRepo persistent.PhotoRepository, s3Client *s3.Client, photoID string, status entity.PhotoStatus, log *logger.Logger) {
	photo, err := photoRepo.GetByID(photoID)
	if err != nil {
		log.Error("Failed to load photo %s: %v", photoID, err)
		panic(err)
	}

	if photo.Status != entity.StatusPendingReview {
		log.Warn("Photo %s is %s, not pending review", photoID, photo.Status)
		return
	}

	if err := photoRepo.UpdateStatus(photoID, status); err != nil {
		log.Error("Failed to update photo %s: %v", photoID, err)
		panic(err)
	}

	if status == entity.StatusRejected && photo.BlobName != "" {
		if err := s3Client.DeleteFile(photo.BlobName); err != nil {
			log.Error("Failed to delete blob %s: %v", photo.BlobName, err)
		}
	}

	log.Info("Photo %s marked %s", photoID, status)
}

func listen(cfg *config.Config, log *logger.Logger) {
	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v", err)
		panic(err)
	}
	defer queueClient.Close()

	log.Info("Waiting for review tasks, resolve with -approve/-reject")

	err = queueClient.ConsumeReviewTasks(func(task map[string]interface{}) error {
		log.Info("Review requested: photo=%v creator=%v reason=%v", task["photo_id"], task["creator_id"], task["reason"])
		return nil
	})
	if err != nil {
		log.Error("Failed to start consumer: %v", err)
		panic(err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Moderator exiting")
}
