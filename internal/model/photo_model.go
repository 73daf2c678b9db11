package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PhotoModel struct {
	ID            string         `gorm:"type:uuid;primary_key"`
	CreatorID     string         `gorm:"type:uuid;not null;index"`
	CreatorName   string         `gorm:"type:varchar(100)"`
	CreatorAvatar string         `gorm:"type:varchar(500)"`
	Title         string         `gorm:"type:varchar(255);not null"`
	Caption       string         `gorm:"type:text"`
	Location      string         `gorm:"type:varchar(255)"`
	People        pq.StringArray `gorm:"type:text[]"`
	Tags          pq.StringArray `gorm:"type:text[]"`
	Category      string         `gorm:"type:varchar(100);index"`
	BlobName      string         `gorm:"type:varchar(500)"`
	ImageURL      string         `gorm:"type:varchar(1000)"`
	AIAnalysis    datatypes.JSON `gorm:"type:jsonb"`
	Status        string         `gorm:"type:varchar(20);not null;default:'approved';index"`
	Likes         int            `gorm:"default:0"`
	RatingSum     int            `gorm:"default:0"`
	RatingCount   int            `gorm:"default:0"`
	Rating        float64        `gorm:"default:0"`
	Comments      int            `gorm:"default:0"`
	Views         int            `gorm:"default:0"`
	CreatedAt     time.Time      `gorm:"index"`
	UpdatedAt     time.Time
}

func (PhotoModel) TableName() string {
	return "photos"
}

func (p *PhotoModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
