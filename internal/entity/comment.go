package entity

import "time"

type Comment struct {
	ID        string       `json:"id"`
	PhotoID   string       `json:"photoId"`
	User      UserSnapshot `json:"user"`
	Text      string       `json:"text"`
	CreatedAt time.Time    `json:"createdAt"`
}
