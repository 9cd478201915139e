package models

import "time"

// VolunteerPost represents a volunteer recruitment listing for an animal shelter
type VolunteerPost struct {
	ID                  int64     `json:"id" db:"id"`
	Title               string    `json:"title" db:"title"`
	Content             string    `json:"content" db:"content"`
	ShelterName         string    `json:"shelterName" db:"shelter_name"`
	ShelterLocation     string    `json:"shelterLocation" db:"shelter_location"`
	VolunteerDate       time.Time `json:"volunteerDate" db:"volunteer_date"`
	VolunteerTime       string    `json:"volunteerTime" db:"volunteer_time"`
	MaxParticipants     int       `json:"maxParticipants" db:"max_participants"`
	CurrentParticipants int       `json:"currentParticipants" db:"current_participants"`
	LikesCount          int       `json:"likesCount" db:"likes_count"`
	ImageURL            *string   `json:"imageUrl,omitempty" db:"image_url"`
	AuthorID            int64     `json:"authorId" db:"author_id"`
	CreatedAt           time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time `json:"updatedAt" db:"updated_at"`

	// Related entities
	Author *User `json:"author,omitempty"`
}

// VolunteerParticipant represents a user participating in a volunteer post
type VolunteerParticipant struct {
	ID              int64     `json:"id" db:"id"`
	VolunteerPostID int64     `json:"volunteerPostId" db:"volunteer_post_id"`
	UserID          int64     `json:"userId" db:"user_id"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`

	// Related entities
	User *User `json:"user,omitempty"`
}
