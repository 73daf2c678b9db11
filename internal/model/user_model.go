package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID            string `gorm:"type:uuid;primary_key"`
	Name          string `gorm:"type:varchar(100);not null"`
	Email         string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password      string `gorm:"type:varchar(255);not null"`
	Role          string `gorm:"type:varchar(20);not null;default:'consumer'"`
	Avatar        string `gorm:"type:varchar(500)"`
	Bio           string `gorm:"type:text"`
	PhotosCount   int    `gorm:"default:0"`
	LikesReceived int    `gorm:"default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
