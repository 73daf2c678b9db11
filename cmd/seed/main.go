package main

import (
	"fmt"
	"net/http"
	"time"

	"photoshare/internal/entity"
	"photoshare/internal/repo/persistent"
	"photoshare/pkg/config"
	"photoshare/pkg/database"
	"photoshare/pkg/logger"
	"photoshare/pkg/s3"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a development database with demo accounts and a handful of photos
// pulled from picsum.photos.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	userRepo := persistent.NewUserRepository(db)
	photoRepo := persistent.NewPhotoRepository(db)
	interactionRepo := persistent.NewInteractionRepository(db)

	creators, consumers, err := seedUsers(userRepo, log)
	if err != nil {
		log.Error("Failed to seed users: %v", err)
		panic(err)
	}

	photos, err := seedPhotos(photoRepo, s3Client, creators, log)
	if err != nil {
		log.Error("Failed to seed photos: %v", err)
		panic(err)
	}

	seedInteractions(interactionRepo, photos, consumers, log)

	log.Info("Database seeded successfully!")
}

func seedUsers(userRepo persistent.UserRepository, log *logger.Logger) ([]*entity.User, []*entity.User, error) {
	seeds := []struct {
		name  string
		email string
		role  entity.UserRole
	}{
		{"Alice Lindqvist", "alice@example.com", entity.RoleCreator},
		{"Bruno Mendes", "bruno@example.com", entity.RoleCreator},
		{"Chloe Tan", "chloe@example.com", entity.RoleConsumer},
		{"Dmitri Volkov", "dmitri@example.com", entity.RoleConsumer},
		{"Esra Aydin", "esra@example.com", entity.RoleConsumer},
	}

	var creators, consumers []*entity.User
	for _, seed := range seeds {
		if existing, err := userRepo.GetByEmail(seed.email); err == nil {
			log.Info("User %s already exists, skipping", seed.email)
			appendByRole(&creators, &consumers, existing)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		if err != nil {
			return nil, nil, err
		}

		user := &entity.User{
			Name:     seed.name,
			Email:    seed.email,
			Password: string(hashed),
			Role:     seed.role,
			Avatar:   entity.DefaultAvatar(seed.name),
		}
		if err := userRepo.Create(user); err != nil {
			return nil, nil, err
		}

		log.Info("Created user %s (%s)", user.Email, user.Role)
		appendByRole(&creators, &consumers, user)
	}

	return creators, consumers, nil
}

func appendByRole(creators, consumers *[]*entity.User, user *entity.User) {
	if user.Role == entity.RoleCreator {
		*creators = append(*creators, user)
	} else {
		*consumers = append(*consumers, user)
	}
}

func seedPhotos(photoRepo persistent.PhotoRepository, s3Client *s3.Client, creators []*entity.User, log *logger.Logger) ([]*entity.Photo, error) {
	if len(creators) == 0 {
		return nil, fmt.Errorf("no creators to own seed photos")
	}

	seeds := []struct {
		title    string
		caption  string
		location string
		tags     []string
	}{
		{"Morning fog", "Fog rolling over the valley at sunrise", "Dolomites, Italy", []string{"nature", "mountains", "fog"}},
		{"Street corner", "Neon reflections after the rain", "Osaka, Japan", []string{"city", "night", "rain"}},
		{"Harbor blues", "Fishing boats waiting for the tide", "Porto, Portugal", []string{"sea", "boats", "harbor"}},
		{"Wildflowers", "A meadow in full bloom", "Provence, France", []string{"nature", "flowers", "summer"}},
		{"Old library", "Sunlight through the reading room", "Dublin, Ireland", []string{"architecture", "books", "light"}},
		{"Desert lines", "Dunes sculpted by the wind", "Merzouga, Morocco", []string{"desert", "sand", "minimal"}},
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}

	var photos []*entity.Photo
	for i, seed := range seeds {
		creator := creators[i%len(creators)]

		sourceURL := fmt.Sprintf("https://picsum.photos/seed/%s/1200/800", uuid.New().String()[:8])
		resp, err := httpClient.Get(sourceURL)
		if err != nil {
			log.Warn("Failed to download seed image: %v", err)
			continue
		}

		blobName := fmt.Sprintf("photos/%s/%s.jpg", creator.ID, uuid.New().String())
		imageURL, err := s3Client.UploadFile(blobName, resp.Body, "image/jpeg")
		resp.Body.Close()
		if err != nil {
			log.Warn("Failed to upload seed image: %v", err)
			continue
		}

		photo := &entity.Photo{
			Title:     seed.title,
			Caption:   seed.caption,
			Location:  seed.location,
			Tags:      entity.NormalizeTags(seed.tags),
			Category:  entity.CategoryFor(seed.tags),
			BlobName:  blobName,
			ImageURL:  imageURL,
			Status:    entity.StatusApproved,
			CreatorID: creator.ID,
			Creator:   creator.Snapshot(),
		}
		if err := photoRepo.Create(photo); err != nil {
			return nil, err
		}

		log.Info("Created photo %q by %s", photo.Title, creator.Name)
		photos = append(photos, photo)
	}

	return photos, nil
}

func seedInteractions(interactionRepo persistent.InteractionRepository, photos []*entity.Photo, consumers []*entity.User, log *logger.Logger) {
	for i, photo := range photos {
		for j, consumer := range consumers {
			if (i+j)%2 == 0 {
				if err := interactionRepo.Like(photo.ID, consumer.ID); err != nil {
					log.Warn("Failed to seed like: %v", err)
				}
			}
			value := 3 + (i+j)%3
			if _, err := interactionRepo.Rate(photo.ID, consumer.ID, value); err != nil {
				log.Warn("Failed to seed rating: %v", err)
			}
		}
	}
}
