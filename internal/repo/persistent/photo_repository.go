package persistent

import (
	"errors"
	"strings"

	"photoshare/internal/entity"
	"photoshare/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PhotoRepository interface {
	Create(photo *entity.Photo) error
	GetByID(id string) (*entity.Photo, error)
	List(query entity.PhotoQuery) ([]*entity.Photo, int64, error)
	Update(photo *entity.Photo) error
	UpdateStatus(id string, status entity.PhotoStatus) error
	Delete(photo *entity.Photo) error
	IncrementViews(id string) error
	UpdateCreatorSnapshot(creatorID, name, avatar string) error
	CountByStatus(status entity.PhotoStatus) (int64, error)
	TotalViews() (int64, error)
	DistinctCategories() ([]string, error)
}

type photoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) Create(photo *entity.Photo) error {
	photoModel := ToPhotoModel(photo)
	if photoModel.ID == "" {
		photoModel.ID = uuid.New().String()
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(photoModel).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.UserModel{}).Where("id = ?", photoModel.CreatorID).
			UpdateColumn("photos_count", clause.Expr{SQL: "photos_count + ?", Vars: []interface{}{1}}).Error; err != nil {
			return err
		}

		*photo = *ToPhotoEntity(photoModel)
		return nil
	})
}

func (r *photoRepository) GetByID(id string) (*entity.Photo, error) {
	var photoModel model.PhotoModel
	if err := r.db.Where("id = ?", id).First(&photoModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToPhotoEntity(&photoModel), nil
}

// compile turns a PhotoQuery into a gorm query. The count query reuses the
// same predicate so pagination totals always match the listed rows.
func (r *photoRepository) compile(query entity.PhotoQuery) *gorm.DB {
	db := r.db.Model(&model.PhotoModel{})

	if !query.IncludeUnmoderated {
		db = db.Where("status = ?", string(entity.StatusApproved))
	}
	if query.Filter != "" && query.Filter != entity.FilterAll {
		db = db.Where("category = ?", query.Filter)
	}
	if query.CreatorID != "" {
		db = db.Where("creator_id = ?", query.CreatorID)
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		term := strings.ToLower(query.Search)
		if query.SearchLocation {
			db = db.Where("title ILIKE ? OR caption ILIKE ? OR location ILIKE ? OR ? = ANY(tags)",
				pattern, pattern, pattern, term)
		} else {
			db = db.Where("title ILIKE ? OR caption ILIKE ? OR ? = ANY(tags)", pattern, pattern, term)
		}
	}

	return db
}

func orderFor(sort entity.PhotoSort) string {
	switch sort {
	case entity.SortOldest:
		return "created_at ASC"
	case entity.SortPopular:
		return "likes DESC, created_at DESC"
	case entity.SortRating:
		return "rating DESC, created_at DESC"
	default:
		return "created_at DESC"
	}
}

func (r *photoRepository) List(query entity.PhotoQuery) ([]*entity.Photo, int64, error) {
	var total int64
	if err := r.compile(query).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var photoModels []model.PhotoModel
	err := r.compile(query).
		Order(orderFor(query.Sort)).
		Limit(query.Limit).
		Offset(query.Offset()).
		Find(&photoModels).Error
	if err != nil {
		return nil, 0, err
	}

	photos := make([]*entity.Photo, len(photoModels))
	for i := range photoModels {
		photos[i] = ToPhotoEntity(&photoModels[i])
	}
	return photos, total, nil
}

// Update writes the editable metadata columns only. Counters move through
// their own expression updates and must never be overwritten with values the
// caller read earlier.
func (r *photoRepository) Update(photo *entity.Photo) error {
	photoModel := ToPhotoModel(photo)
	return r.db.Model(&model.PhotoModel{}).
		Where("id = ?", photoModel.ID).
		Select("title", "caption", "location", "people", "tags", "category", "updated_at").
		Updates(photoModel).Error
}

func (r *photoRepository) UpdateStatus(id string, status entity.PhotoStatus) error {
	res := r.db.Model(&model.PhotoModel{}).Where("id = ?", id).
		Update("status", string(status))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// Delete removes the photo and everything hanging off it. The creator's
// counters are wound back so they stay equal to what a recount would produce.
func (r *photoRepository) Delete(photo *entity.Photo) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("photo_id = ?", photo.ID).Delete(&model.LikeModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("photo_id = ?", photo.ID).Delete(&model.RatingModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("photo_id = ?", photo.ID).Delete(&model.CommentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.PhotoModel{}, "id = ?", photo.ID).Error; err != nil {
			return err
		}

		return tx.Model(&model.UserModel{}).Where("id = ?", photo.CreatorID).
			UpdateColumns(map[string]interface{}{
				"photos_count":   gorm.Expr("GREATEST(photos_count - 1, 0)"),
				"likes_received": gorm.Expr("GREATEST(likes_received - ?, 0)", photo.Likes),
			}).Error
	})
}

func (r *photoRepository) IncrementViews(id string) error {
	return r.db.Model(&model.PhotoModel{}).Where("id = ?", id).
		UpdateColumn("views", clause.Expr{SQL: "views + ?", Vars: []interface{}{1}}).Error
}

// UpdateCreatorSnapshot refreshes the denormalized author columns on every
// photo owned by the creator. Called when a profile changes.
func (r *photoRepository) UpdateCreatorSnapshot(creatorID, name, avatar string) error {
	return r.db.Model(&model.PhotoModel{}).Where("creator_id = ?", creatorID).
		UpdateColumns(map[string]interface{}{
			"creator_name":   name,
			"creator_avatar": avatar,
		}).Error
}

func (r *photoRepository) CountByStatus(status entity.PhotoStatus) (int64, error) {
	var count int64
	err := r.db.Model(&model.PhotoModel{}).Where("status = ?", string(status)).Count(&count).Error
	return count, err
}

func (r *photoRepository) TotalViews() (int64, error) {
	var total int64
	err := r.db.Model(&model.PhotoModel{}).
		Where("status = ?", string(entity.StatusApproved)).
		Select("COALESCE(SUM(views), 0)").
		Scan(&total).Error
	return total, err
}

func (r *photoRepository) DistinctCategories() ([]string, error) {
	var categories []string
	err := r.db.Model(&model.PhotoModel{}).
		Where("status = ?", string(entity.StatusApproved)).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}
