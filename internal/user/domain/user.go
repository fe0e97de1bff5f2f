package domain

import (
	"errors"
	"time"
)

// User is the core user entity. GUID is assigned at creation and never reused.
type User struct {
	GUID          string
	Email         string
	PhoneNumber   string
	FullName      string
	PasswordHash  string
	Role          string
	AvatarURL     string
	IsActive      bool // false until the verification email is confirmed
	IsDeleted     bool // soft-delete flag
	BidsAvailable int64
	// FavoriteCategories holds the denormalized category references this user follows.
	// Category update/delete events fan out across these rows.
	FavoriteCategories []FavoriteCategory
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// FavoriteCategory is a nested category reference owned by a user.
type FavoriteCategory struct {
	GUID        string
	Title       string
	Description string
	ParentGUID  string
}

// Validate validates the user for persistence. Returns an error describing the first validation failure.
func (u *User) Validate() error {
	if u.GUID == "" {
		return errors.New("guid is required")
	}
	if u.Email == "" {
		return errors.New("email is required")
	}
	if u.PhoneNumber == "" {
		return errors.New("phone number is required")
	}
	return nil
}
