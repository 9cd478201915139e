package models

import "time"

// User defines the user model based on the 'users' table.
// Passwords are stored and compared as plain text, matching the behavior of
// the data this service was built against. See DESIGN.md before changing it.
type User struct {
	ID              int64     `json:"id" db:"id"`
	Username        string    `json:"username" db:"username"`
	Password        string    `json:"-" db:"password"`
	Nickname        string    `json:"nickname" db:"nickname"`
	ProfileImageURL string    `json:"profileImageUrl" db:"profile_image_url"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}
