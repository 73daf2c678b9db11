package usecase

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"photoshare/internal/entity"
	"photoshare/internal/repo/persistent"
	"photoshare/internal/vision"
	"photoshare/pkg/logger"
	"photoshare/pkg/queue"
	"photoshare/pkg/s3"

	"github.com/google/uuid"
)

// UploadInput carries the multipart fields of an upload request.
type UploadInput struct {
	Title    string
	Caption  string
	Location string
	People   []string
	Tags     []string
	File     *multipart.FileHeader

	// AutoTags merges analysis tags into the user's own tags.
	// ContentModeration enables the adult/gory/racy checks. Analysis is
	// skipped entirely when both are off.
	AutoTags          bool
	ContentModeration bool
}

// UpdateInput carries partial photo edits. Nil means "leave unchanged".
type UpdateInput struct {
	Title    *string
	Caption  *string
	Location *string
	People   []string
	Tags     []string
}

type PhotoUseCase interface {
	List(query entity.PhotoQuery, viewerID string) ([]*entity.Photo, int64, error)
	Get(photoID, viewerID string) (*entity.Photo, error)
	Upload(userID string, input UploadInput) (*entity.Photo, error)
	Update(photoID, userID string, input UpdateInput) (*entity.Photo, error)
	Delete(photoID, userID string) error
	Categories() ([]string, error)
}

type photoUseCase struct {
	photoRepo       persistent.PhotoRepository
	userRepo        persistent.UserRepository
	interactionRepo persistent.InteractionRepository
	s3Client        *s3.Client
	visionClient    *vision.Client
	queueClient     *queue.Client
	signedURLExpiry time.Duration
	logger          *logger.Logger
}

func NewPhotoUseCase(
	photoRepo persistent.PhotoRepository,
	userRepo persistent.UserRepository,
	interactionRepo persistent.InteractionRepository,
	s3Client *s3.Client,
	visionClient *vision.Client,
	queueClient *queue.Client,
	signedURLExpiry time.Duration,
	logger *logger.Logger,
) PhotoUseCase {
	return &photoUseCase{
		photoRepo:       photoRepo,
		userRepo:        userRepo,
		interactionRepo: interactionRepo,
		s3Client:        s3Client,
		visionClient:    visionClient,
		queueClient:     queueClient,
		signedURLExpiry: signedURLExpiry,
		logger:          logger,
	}
}

func (uc *photoUseCase) List(query entity.PhotoQuery, viewerID string) ([]*entity.Photo, int64, error) {
	query.Normalize()

	// Unmoderated photos are only visible to their own creator.
	if query.IncludeUnmoderated && query.CreatorID != viewerID {
		query.IncludeUnmoderated = false
	}

	photos, total, err := uc.photoRepo.List(query)
	if err != nil {
		return nil, 0, err
	}

	uc.enrich(photos, viewerID)
	return photos, total, nil
}

func (uc *photoUseCase) Get(photoID, viewerID string) (*entity.Photo, error) {
	photo, err := uc.photoRepo.GetByID(photoID)
	if err != nil {
		return nil, err
	}

	if photo.Status != entity.StatusApproved && photo.CreatorID != viewerID {
		return nil, entity.ErrNotFound
	}

	// View counting is best effort; a failed increment never fails the read.
	if err := uc.photoRepo.IncrementViews(photoID); err != nil {
		uc.logger.Warn("failed to increment views for photo %s: %v", photoID, err)
	} else {
		photo.Views++
	}

	uc.enrich([]*entity.Photo{photo}, viewerID)
	return photo, nil
}

func (uc *photoUseCase) Upload(userID string, input UploadInput) (*entity.Photo, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	src, err := input.File.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	blobName := fmt.Sprintf("photos/%s/%s%s", userID, uuid.New().String(), filepath.Ext(input.File.Filename))
	contentType := input.File.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	imageURL, err := uc.s3Client.UploadFile(blobName, src, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	photo := &entity.Photo{
		Title:     input.Title,
		Caption:   input.Caption,
		Location:  input.Location,
		People:    input.People,
		Tags:      entity.NormalizeTags(input.Tags),
		BlobName:  blobName,
		ImageURL:  imageURL,
		Status:    entity.StatusApproved,
		CreatorID: user.ID,
		Creator:   user.Snapshot(),
	}

	if err := uc.analyze(photo, input.AutoTags, input.ContentModeration); err != nil {
		if delErr := uc.s3Client.DeleteFile(blobName); delErr != nil {
			uc.logger.Error("failed to delete rejected blob %s: %v", blobName, delErr)
		}
		return nil, err
	}

	photo.Category = entity.CategoryFor(photo.Tags)

	if err := uc.photoRepo.Create(photo); err != nil {
		return nil, fmt.Errorf("failed to create photo: %w", err)
	}

	if photo.Status == entity.StatusPendingReview && uc.queueClient != nil {
		go uc.publishReviewTask(photo)
	}

	uc.enrich([]*entity.Photo{photo}, userID)
	return photo, nil
}

// analyze runs content analysis on the uploaded blob. With moderation on,
// adult or gory content is rejected outright and racy content is parked for
// human review. Analysis outages never block an upload.
func (uc *photoUseCase) analyze(photo *entity.Photo, autoTags, moderate bool) error {
	if uc.visionClient == nil || !uc.visionClient.Enabled() {
		return nil
	}
	if !autoTags && !moderate {
		return nil
	}

	// Analysis needs a URL the API can fetch, so presign a short-lived one.
	analysisURL, err := uc.s3Client.PresignURL(photo.BlobName, time.Hour)
	if err != nil {
		uc.logger.Warn("failed to presign analysis URL for %s: %v", photo.BlobName, err)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	analysis, err := uc.visionClient.AnalyzeURL(ctx, analysisURL)
	if err != nil {
		uc.logger.Warn("image analysis failed for %s, keeping photo without analysis: %v", photo.BlobName, err)
		return nil
	}
	if analysis == nil {
		return nil
	}

	if moderate {
		if analysis.Adult.IsAdultContent || analysis.Adult.IsGoryContent {
			return entity.ErrContentRejected
		}
		if analysis.Adult.IsRacyContent {
			photo.Status = entity.StatusPendingReview
		}
	}

	if autoTags {
		photo.Tags = entity.NormalizeTags(append(photo.Tags, analysis.Tags...))
	}
	photo.AIAnalysis = &entity.AIAnalysis{
		Tags:        analysis.Tags,
		Description: analysis.Description,
		Categories:  analysis.Categories,
	}

	return nil
}

func (uc *photoUseCase) publishReviewTask(photo *entity.Photo) {
	task := map[string]interface{}{
		"type":       "review_requested",
		"photo_id":   photo.ID,
		"creator_id": photo.CreatorID,
		"blob_name":  photo.BlobName,
		"reason":     "racy_content",
	}

	if err := uc.queueClient.PublishReviewTask(task); err != nil {
		uc.logger.Error("failed to publish review task for photo %s: %v", photo.ID, err)
	} else {
		uc.logger.Info("queued photo %s for moderation review", photo.ID)
	}
}

func (uc *photoUseCase) Update(photoID, userID string, input UpdateInput) (*entity.Photo, error) {
	photo, err := uc.photoRepo.GetByID(photoID)
	if err != nil {
		return nil, err
	}

	if photo.CreatorID != userID {
		return nil, entity.ErrForbidden
	}

	if input.Title != nil && *input.Title != "" {
		photo.Title = *input.Title
	}
	if input.Caption != nil {
		photo.Caption = *input.Caption
	}
	if input.Location != nil {
		photo.Location = *input.Location
	}
	if input.People != nil {
		photo.People = input.People
	}
	if input.Tags != nil {
		photo.Tags = entity.NormalizeTags(input.Tags)
		photo.Category = entity.CategoryFor(photo.Tags)
	}

	if err := uc.photoRepo.Update(photo); err != nil {
		return nil, err
	}

	uc.enrich([]*entity.Photo{photo}, userID)
	return photo, nil
}

func (uc *photoUseCase) Delete(photoID, userID string) error {
	photo, err := uc.photoRepo.GetByID(photoID)
	if err != nil {
		return err
	}

	if photo.CreatorID != userID {
		return entity.ErrForbidden
	}

	if err := uc.photoRepo.Delete(photo); err != nil {
		return err
	}

	if photo.BlobName != "" {
		if err := uc.s3Client.DeleteFile(photo.BlobName); err != nil {
			// The record is gone; an orphaned blob is only a storage leak.
			uc.logger.Error("failed to delete blob %s for photo %s: %v", photo.BlobName, photoID, err)
		}
	}

	return nil
}

func (uc *photoUseCase) Categories() ([]string, error) {
	return uc.photoRepo.DistinctCategories()
}

// enrich fills the caller-specific and derived fields of a photo page: fresh
// signed image URLs plus the viewer's like and rating flags, resolved with one
// query per concern rather than one per photo.
func (uc *photoUseCase) enrich(photos []*entity.Photo, viewerID string) {
	for _, photo := range photos {
		if photo.BlobName == "" {
			continue
		}
		signed, err := uc.s3Client.PresignURL(photo.BlobName, uc.signedURLExpiry)
		if err != nil {
			uc.logger.Warn("failed to presign URL for %s: %v", photo.BlobName, err)
			continue
		}
		photo.ImageURL = signed
	}

	if viewerID == "" {
		return
	}

	ids := make([]string, len(photos))
	for i, photo := range photos {
		ids[i] = photo.ID
	}

	liked, err := uc.interactionRepo.LikedPhotoIDs(viewerID, ids)
	if err != nil {
		uc.logger.Warn("failed to resolve likes for viewer %s: %v", viewerID, err)
	}
	ratings, err := uc.interactionRepo.RatingsFor(viewerID, ids)
	if err != nil {
		uc.logger.Warn("failed to resolve ratings for viewer %s: %v", viewerID, err)
	}

	for _, photo := range photos {
		photo.UserLiked = liked[photo.ID]
		photo.UserRating = ratings[photo.ID]
	}
}
