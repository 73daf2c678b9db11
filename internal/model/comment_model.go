package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentModel struct {
	ID         string `gorm:"type:uuid;primary_key"`
	PhotoID    string `gorm:"type:uuid;not null;index"`
	UserID     string `gorm:"type:uuid;not null"`
	UserName   string `gorm:"type:varchar(100)"`
	UserAvatar string `gorm:"type:varchar(500)"`
	Text       string `gorm:"type:text;not null"`
	CreatedAt  time.Time
}

func (CommentModel) TableName() string {
	return "comments"
}

func (c *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
