package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LikeModel struct {
	ID        string `gorm:"type:uuid;primary_key"`
	PhotoID   string `gorm:"type:uuid;not null;uniqueIndex:idx_likes_photo_user"`
	UserID    string `gorm:"type:uuid;not null;uniqueIndex:idx_likes_photo_user"`
	CreatedAt time.Time
}

func (LikeModel) TableName() string {
	return "likes"
}

func (l *LikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

type RatingModel struct {
	ID        string `gorm:"type:uuid;primary_key"`
	PhotoID   string `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_photo_user"`
	UserID    string `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_photo_user"`
	Value     int    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RatingModel) TableName() string {
	return "ratings"
}

func (r *RatingModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
