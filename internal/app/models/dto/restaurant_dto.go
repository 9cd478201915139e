package dto

import (
	"time"

	"github.com/petmily/petmily-api/internal/app/models"
)

// CreateRestaurantRequest is the payload for listing a pet-friendly restaurant
type CreateRestaurantRequest struct {
	Name     string  `json:"name" binding:"required"`
	Region   string  `json:"region" binding:"required"`
	Address  string  `json:"address" binding:"required"`
	Content  string  `json:"content" binding:"required"`
	ImageURL *string `json:"imageUrl"`
}

// RestaurantResponse is the listing view of a restaurant
type RestaurantResponse struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Region     string          `json:"region"`
	Address    string          `json:"address"`
	Content    string          `json:"content"`
	LikesCount int             `json:"likesCount"`
	ImageURL   *string         `json:"imageUrl,omitempty"`
	AuthorID   int64           `json:"authorId"`
	Author     *AuthorResponse `json:"author,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// NewRestaurantResponse maps a restaurant model to its listing view
func NewRestaurantResponse(r *models.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:         r.ID,
		Name:       r.Name,
		Region:     r.Region,
		Address:    r.Address,
		Content:    r.Content,
		LikesCount: r.LikesCount,
		ImageURL:   r.ImageURL,
		AuthorID:   r.AuthorID,
		Author:     NewAuthorResponse(r.Author),
		CreatedAt:  r.CreatedAt,
	}
}
