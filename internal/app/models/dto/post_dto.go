package dto

import (
	"time"

	"github.com/petmily/petmily-api/internal/app/models"
)

// CreatePostRequest is the payload for publishing a community post
type CreatePostRequest struct {
	Title    *string  `json:"title"`
	Content  string   `json:"content" binding:"required"`
	Hashtags []string `json:"hashtags"`
	ImageURL *string  `json:"imageUrl"`
}

// PostResponse is the listing view of a community post
type PostResponse struct {
	ID         int64           `json:"id"`
	Title      *string         `json:"title,omitempty"`
	Content    string          `json:"content"`
	Hashtags   []string        `json:"hashtags"`
	Category   string          `json:"category"`
	LikesCount int             `json:"likesCount"`
	ImageURL   *string         `json:"imageUrl,omitempty"`
	AuthorID   int64           `json:"authorId"`
	Author     *AuthorResponse `json:"author,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// NewPostResponse maps a community post model to its listing view
func NewPostResponse(post *models.Post) PostResponse {
	hashtags := post.Hashtags
	if hashtags == nil {
		hashtags = []string{}
	}
	return PostResponse{
		ID:         post.ID,
		Title:      post.Title,
		Content:    post.Content,
		Hashtags:   hashtags,
		Category:   post.Category,
		LikesCount: post.LikesCount,
		ImageURL:   post.ImageURL,
		AuthorID:   post.AuthorID,
		Author:     NewAuthorResponse(post.Author),
		CreatedAt:  post.CreatedAt,
	}
}
