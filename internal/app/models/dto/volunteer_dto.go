package dto

import (
	"time"

	"github.com/petmily/petmily-api/internal/app/models"
)

// CreateVolunteerPostRequest is the payload for publishing a volunteer listing
type CreateVolunteerPostRequest struct {
	Title           string  `json:"title" binding:"required"`
	Content         string  `json:"content" binding:"required"`
	ShelterName     string  `json:"shelterName" binding:"required"`
	ShelterLocation string  `json:"shelterLocation" binding:"required"`
	VolunteerDate   string  `json:"volunteerDate" binding:"required"` // YYYY-MM-DD
	VolunteerTime   string  `json:"volunteerTime" binding:"required"` // HH:MM
	MaxParticipants int     `json:"maxParticipants"`
	ImageURL        *string `json:"imageUrl"`
}

// UpdateVolunteerPostRequest is the payload for editing a volunteer listing.
// The edit form submits the full record, so the fields mirror creation.
type UpdateVolunteerPostRequest struct {
	Title           string  `json:"title" binding:"required"`
	Content         string  `json:"content" binding:"required"`
	ShelterName     string  `json:"shelterName" binding:"required"`
	ShelterLocation string  `json:"shelterLocation" binding:"required"`
	VolunteerDate   string  `json:"volunteerDate" binding:"required"`
	VolunteerTime   string  `json:"volunteerTime" binding:"required"`
	MaxParticipants int     `json:"maxParticipants"`
	ImageURL        *string `json:"imageUrl"`
}

// VolunteerPostResponse is the listing view of a volunteer post
type VolunteerPostResponse struct {
	ID                  int64           `json:"id"`
	Title               string          `json:"title"`
	Content             string          `json:"content"`
	ShelterName         string          `json:"shelterName"`
	ShelterLocation     string          `json:"shelterLocation"`
	VolunteerDate       string          `json:"volunteerDate"`
	VolunteerTime       string          `json:"volunteerTime"`
	MaxParticipants     int             `json:"maxParticipants"`
	CurrentParticipants int             `json:"currentParticipants"`
	LikesCount          int             `json:"likesCount"`
	ImageURL            *string         `json:"imageUrl,omitempty"`
	AuthorID            int64           `json:"authorId"`
	Author              *AuthorResponse `json:"author,omitempty"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

// VolunteerParticipantResponse is one participant row on the detail view
type VolunteerParticipantResponse struct {
	ID       int64           `json:"id"`
	UserID   int64           `json:"userId"`
	JoinedAt time.Time       `json:"joinedAt"`
	User     *AuthorResponse `json:"user,omitempty"`
}

// VolunteerPostDetailResponse is the detail view: the post plus its
// participants and the requesting user's participation state.
type VolunteerPostDetailResponse struct {
	VolunteerPostResponse
	Participants    []VolunteerParticipantResponse `json:"participants"`
	IsParticipating bool                           `json:"isParticipating"`
}

// ParticipationResponse reports the counter after a join or cancel
type ParticipationResponse struct {
	CurrentParticipants int  `json:"currentParticipants"`
	IsParticipating     bool `json:"isParticipating"`
}

// NewVolunteerPostResponse maps a volunteer post model to its listing view
func NewVolunteerPostResponse(post *models.VolunteerPost) VolunteerPostResponse {
	return VolunteerPostResponse{
		ID:                  post.ID,
		Title:               post.Title,
		Content:             post.Content,
		ShelterName:         post.ShelterName,
		ShelterLocation:     post.ShelterLocation,
		VolunteerDate:       post.VolunteerDate.Format("2006-01-02"),
		VolunteerTime:       post.VolunteerTime,
		MaxParticipants:     post.MaxParticipants,
		CurrentParticipants: post.CurrentParticipants,
		LikesCount:          post.LikesCount,
		ImageURL:            post.ImageURL,
		AuthorID:            post.AuthorID,
		Author:              NewAuthorResponse(post.Author),
		CreatedAt:           post.CreatedAt,
		UpdatedAt:           post.UpdatedAt,
	}
}
