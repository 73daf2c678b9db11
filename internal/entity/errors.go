package entity

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("not allowed")
	ErrAlreadyLiked       = errors.New("already liked")
	ErrNotLiked           = errors.New("not liked yet")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrEmptyComment       = errors.New("comment text is required")
	ErrContentRejected    = errors.New("image rejected due to inappropriate content")
)
