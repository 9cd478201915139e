package dto

import (
	"time"

	"github.com/petmily/petmily-api/internal/app/models"
)

// UserResponse is the public view of a user account
type UserResponse struct {
	ID              int64     `json:"id"`
	Username        string    `json:"username"`
	Nickname        string    `json:"nickname"`
	ProfileImageURL string    `json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
}

// AuthorResponse is the subset of user fields inlined into listings
type AuthorResponse struct {
	ID              int64  `json:"id"`
	Nickname        string `json:"nickname"`
	ProfileImageURL string `json:"profileImageUrl"`
}

// MyStatsResponse carries the my-page activity counters
type MyStatsResponse struct {
	AttendanceCount int64 `json:"attendanceCount"` // check-ins since the first of the month
	VolunteerCount  int64 `json:"volunteerCount"`  // volunteer posts joined
	PostCount       int64 `json:"postCount"`       // community posts authored
}

// NewUserResponse maps a user model to its public view
func NewUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:              user.ID,
		Username:        user.Username,
		Nickname:        user.Nickname,
		ProfileImageURL: user.ProfileImageURL,
		CreatedAt:       user.CreatedAt,
	}
}

// NewAuthorResponse maps a related user row to the inline author view
func NewAuthorResponse(user *models.User) *AuthorResponse {
	if user == nil {
		return nil
	}
	return &AuthorResponse{
		ID:              user.ID,
		Nickname:        user.Nickname,
		ProfileImageURL: user.ProfileImageURL,
	}
}
