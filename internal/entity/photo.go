package entity

import (
	"strings"
	"time"
)

type PhotoStatus string

const (
	StatusApproved      PhotoStatus = "approved"
	StatusPendingReview PhotoStatus = "pending_review"
	StatusRejected      PhotoStatus = "rejected"
)

const DefaultCategory = "general"

type Photo struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Caption     string       `json:"caption"`
	ImageURL    string       `json:"imageUrl"`
	BlobName    string       `json:"-"`
	Location    string       `json:"location"`
	People      []string     `json:"people"`
	Tags        []string     `json:"tags"`
	Category    string       `json:"category"`
	Status      PhotoStatus  `json:"status"`
	CreatorID   string       `json:"creatorId"`
	Creator     UserSnapshot `json:"creator"`
	AIAnalysis  *AIAnalysis  `json:"aiAnalysis,omitempty"`
	Likes       int          `json:"likes"`
	Rating      float64      `json:"rating"`
	RatingSum   int          `json:"ratingSum"`
	RatingCount int          `json:"ratingCount"`
	Comments    int          `json:"comments"`
	Views       int          `json:"views"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`

	// Transient, caller-specific fields set by enrichment. Never persisted.
	UserLiked  bool `json:"userLiked"`
	UserRating int  `json:"userRating"`
}

type AIAnalysis struct {
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
}

// NormalizeTags lowercases, trims and deduplicates a tag list, preserving
// first-seen order.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

// CategoryFor derives a photo's category: first tag, or the default.
func CategoryFor(tags []string) string {
	if len(tags) > 0 {
		return tags[0]
	}
	return DefaultCategory
}
