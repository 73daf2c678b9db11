package entity

import "time"

// Like is a (photo, user) pair; at most one per pair.
type Like struct {
	ID        string    `json:"id"`
	PhotoID   string    `json:"photoId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Rating is an integer 1-5 per (photo, user) pair with upsert semantics.
type Rating struct {
	ID        string    `json:"id"`
	PhotoID   string    `json:"photoId"`
	UserID    string    `json:"userId"`
	Value     int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

const (
	MinRating = 1
	MaxRating = 5
)

func ValidRating(value int) bool {
	return value >= MinRating && value <= MaxRating
}
