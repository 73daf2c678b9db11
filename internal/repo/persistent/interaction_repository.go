package persistent

import (
	"errors"

	"photoshare/internal/entity"
	"photoshare/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InteractionRepository interface {
	Like(photoID, userID string) error
	Unlike(photoID, userID string) error
	IsLiked(photoID, userID string) (bool, error)
	Rate(photoID, userID string, value int) (*entity.Photo, error)
	LikedPhotoIDs(userID string, photoIDs []string) (map[string]bool, error)
	RatingsFor(userID string, photoIDs []string) (map[string]int, error)
}

type interactionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

// Like records a like and bumps both the photo's counter and the creator's
// received total in one transaction. Liking twice is an error, not a no-op.
func (r *interactionRepository) Like(photoID, userID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var photoModel model.PhotoModel
		if err := tx.Where("id = ?", photoID).First(&photoModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entity.ErrNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&model.LikeModel{}).
			Where("photo_id = ? AND user_id = ?", photoID, userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return entity.ErrAlreadyLiked
		}

		likeModel := &model.LikeModel{
			ID:      uuid.New().String(),
			PhotoID: photoID,
			UserID:  userID,
		}
		if err := tx.Create(likeModel).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.PhotoModel{}).Where("id = ?", photoID).
			UpdateColumn("likes", clause.Expr{SQL: "likes + ?", Vars: []interface{}{1}}).Error; err != nil {
			return err
		}

		return tx.Model(&model.UserModel{}).Where("id = ?", photoModel.CreatorID).
			UpdateColumn("likes_received", clause.Expr{SQL: "likes_received + ?", Vars: []interface{}{1}}).Error
	})
}

func (r *interactionRepository) Unlike(photoID, userID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var photoModel model.PhotoModel
		if err := tx.Where("id = ?", photoID).First(&photoModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entity.ErrNotFound
			}
			return err
		}

		result := tx.Where("photo_id = ? AND user_id = ?", photoID, userID).Delete(&model.LikeModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return entity.ErrNotLiked
		}

		if err := tx.Model(&model.PhotoModel{}).Where("id = ?", photoID).
			UpdateColumn("likes", gorm.Expr("GREATEST(likes - 1, 0)")).Error; err != nil {
			return err
		}

		return tx.Model(&model.UserModel{}).Where("id = ?", photoModel.CreatorID).
			UpdateColumn("likes_received", gorm.Expr("GREATEST(likes_received - 1, 0)")).Error
	})
}

func (r *interactionRepository) IsLiked(photoID, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).
		Where("photo_id = ? AND user_id = ?", photoID, userID).
		Count(&count).Error
	return count > 0, err
}

// Rate upserts the caller's rating. A re-rate adjusts the sum by the delta and
// leaves the count alone, so one user never weighs in twice. Returns the photo
// with its recomputed average.
func (r *interactionRepository) Rate(photoID, userID string, value int) (*entity.Photo, error) {
	var photoModel model.PhotoModel

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", photoID).First(&photoModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entity.ErrNotFound
			}
			return err
		}

		var existing model.RatingModel
		err := tx.Where("photo_id = ? AND user_id = ?", photoID, userID).First(&existing).Error
		switch {
		case err == nil:
			delta := value - existing.Value
			if err := tx.Model(&existing).Update("value", value).Error; err != nil {
				return err
			}
			if err := tx.Model(&model.PhotoModel{}).Where("id = ?", photoID).
				UpdateColumn("rating_sum", clause.Expr{SQL: "rating_sum + ?", Vars: []interface{}{delta}}).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			ratingModel := &model.RatingModel{
				ID:      uuid.New().String(),
				PhotoID: photoID,
				UserID:  userID,
				Value:   value,
			}
			if err := tx.Create(ratingModel).Error; err != nil {
				return err
			}
			if err := tx.Model(&model.PhotoModel{}).Where("id = ?", photoID).
				UpdateColumns(map[string]interface{}{
					"rating_sum":   gorm.Expr("rating_sum + ?", value),
					"rating_count": gorm.Expr("rating_count + 1"),
				}).Error; err != nil {
				return err
			}
		default:
			return err
		}

		if err := tx.Model(&model.PhotoModel{}).Where("id = ?", photoID).
			UpdateColumn("rating", gorm.Expr("COALESCE(rating_sum::float / NULLIF(rating_count, 0), 0)")).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", photoID).First(&photoModel).Error
	})
	if err != nil {
		return nil, err
	}

	return ToPhotoEntity(&photoModel), nil
}

// LikedPhotoIDs resolves which of the given photos the user has liked in a
// single query, for annotating a listing page.
func (r *interactionRepository) LikedPhotoIDs(userID string, photoIDs []string) (map[string]bool, error) {
	liked := make(map[string]bool, len(photoIDs))
	if len(photoIDs) == 0 {
		return liked, nil
	}

	var ids []string
	err := r.db.Model(&model.LikeModel{}).
		Where("user_id = ? AND photo_id IN ?", userID, photoIDs).
		Pluck("photo_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

func (r *interactionRepository) RatingsFor(userID string, photoIDs []string) (map[string]int, error) {
	ratings := make(map[string]int, len(photoIDs))
	if len(photoIDs) == 0 {
		return ratings, nil
	}

	var ratingModels []model.RatingModel
	err := r.db.Where("user_id = ? AND photo_id IN ?", userID, photoIDs).Find(&ratingModels).Error
	if err != nil {
		return nil, err
	}

	for _, m := range ratingModels {
		ratings[m.PhotoID] = m.Value
	}
	return ratings, nil
}
