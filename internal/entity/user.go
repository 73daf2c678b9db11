package entity

import (
	"fmt"
	"net/url"
	"time"
)

type UserRole string

const (
	RoleCreator  UserRole = "creator"
	RoleConsumer UserRole = "consumer"
)

func ParseRole(s string) UserRole {
	if s == string(RoleCreator) {
		return RoleCreator
	}
	return RoleConsumer
}

type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Password      string    `json:"-"`
	Role          UserRole  `json:"role"`
	Avatar        string    `json:"avatar"`
	Bio           string    `json:"bio"`
	PhotosCount   int       `json:"photosCount"`
	LikesReceived int       `json:"likesReceived"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// UserSnapshot is the denormalized author projection embedded in photos and
// comments. It is a cached copy, refreshed only when the owning user edits
// their profile.
type UserSnapshot struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

func (u *User) Snapshot() UserSnapshot {
	return UserSnapshot{
		ID:     u.ID,
		Name:   u.Name,
		Avatar: u.Avatar,
	}
}

// DefaultAvatar returns the placeholder avatar URL used when a user has not
// uploaded one.
func DefaultAvatar(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=6366f1&color=fff", url.QueryEscape(name))
}
