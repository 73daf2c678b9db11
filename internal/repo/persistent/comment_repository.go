package persistent

import (
	"errors"

	"photoshare/internal/entity"
	"photoshare/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepository interface {
	Create(comment *entity.Comment) error
	GetByID(id string) (*entity.Comment, error)
	ListByPhoto(photoID string) ([]*entity.Comment, error)
	Delete(comment *entity.Comment) error
	UpdateUserSnapshot(userID, name, avatar string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if commentModel.ID == "" {
		commentModel.ID = uuid.New().String()
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(commentModel).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.PhotoModel{}).Where("id = ?", commentModel.PhotoID).
			UpdateColumn("comments", clause.Expr{SQL: "comments + ?", Vars: []interface{}{1}}).Error; err != nil {
			return err
		}

		*comment = *ToCommentEntity(commentModel)
		return nil
	})
}

func (r *commentRepository) GetByID(id string) (*entity.Comment, error) {
	var commentModel model.CommentModel
	if err := r.db.Where("id = ?", id).First(&commentModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *commentRepository) ListByPhoto(photoID string) ([]*entity.Comment, error) {
	var commentModels []model.CommentModel
	err := r.db.Where("photo_id = ?", photoID).Order("created_at DESC").Find(&commentModels).Error
	if err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, nil
}

// Delete removes a comment and decrements the photo's counter, floored at zero.
func (r *commentRepository) Delete(comment *entity.Comment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.CommentModel{}, "id = ?", comment.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return entity.ErrNotFound
		}

		return tx.Model(&model.PhotoModel{}).Where("id = ?", comment.PhotoID).
			UpdateColumn("comments", gorm.Expr("GREATEST(comments - 1, 0)")).Error
	})
}

// UpdateUserSnapshot refreshes the denormalized author columns on the user's
// comments after a profile change.
func (r *commentRepository) UpdateUserSnapshot(userID, name, avatar string) error {
	return r.db.Model(&model.CommentModel{}).Where("user_id = ?", userID).
		UpdateColumns(map[string]interface{}{
			"user_name":   name,
			"user_avatar": avatar,
		}).Error
}
