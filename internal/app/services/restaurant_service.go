package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/petmily/petmily-api/internal/app/models"
	"github.com/petmily/petmily-api/internal/app/models/dto"
	"github.com/petmily/petmily-api/internal/pkg/apperrors"
)

// restaurantStore is the slice of restaurant persistence the service needs
type restaurantStore interface {
	GetAll(ctx context.Context, region *string) ([]*models.Restaurant, error)
	GetByID(ctx context.Context, id int64) (*models.Restaurant, error)
	Create(ctx context.Context, rest *models.Restaurant) error
	Delete(ctx context.Context, id int64) error
	IncrementLikes(ctx context.Context, id int64) (int, error)
}

// RestaurantService defines the interface for restaurant listing operations
type RestaurantService interface {
	ListRestaurants(ctx context.Context, region *string) ([]dto.RestaurantResponse, error)
	CreateRestaurant(ctx context.Context, authorID int64, req *dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error)
	DeleteRestaurant(ctx context.Context, id, userID int64) error
	LikeRestaurant(ctx context.Context, id int64) (int, error)
	Regions() []string
}

// restaurantServiceImpl implements RestaurantService
type restaurantServiceImpl struct {
	restaurantRepo restaurantStore
	logger         zerolog.Logger
}

// NewRestaurantService creates a new RestaurantService
func NewRestaurantService(restaurantRepo restaurantStore, logger zerolog.Logger) RestaurantService {
	return &restaurantServiceImpl{
		restaurantRepo: restaurantRepo,
		logger:         logger,
	}
}

// ListRestaurants returns restaurant listings, optionally narrowed to a
// region. The "전체" filter value means every region.
func (s *restaurantServiceImpl) ListRestaurants(ctx context.Context, region *string) ([]dto.RestaurantResponse, error) {
	if region != nil && (*region == "" || *region == models.RegionAll) {
		region = nil
	}
	if region != nil && !models.IsValidRegion(*region) {
		return nil, apperrors.ErrInvalidRegion
	}

	restaurants, err := s.restaurantRepo.GetAll(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}

	responses := make([]dto.RestaurantResponse, 0, len(restaurants))
	for _, r := range restaurants {
		responses = append(responses, dto.NewRestaurantResponse(r))
	}

	return responses, nil
}

// CreateRestaurant publishes a new restaurant listing
func (s *restaurantServiceImpl) CreateRestaurant(ctx context.Context, authorID int64, req *dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error) {
	if !models.IsValidRegion(req.Region) {
		return nil, apperrors.ErrInvalidRegion
	}

	rest := &models.Restaurant{
		Name:     req.Name,
		Region:   req.Region,
		Address:  req.Address,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		AuthorID: authorID,
	}

	if err := s.restaurantRepo.Create(ctx, rest); err != nil {
		return nil, fmt.Errorf("failed to create restaurant: %w", err)
	}

	s.logger.Info().Int64("restaurantID", rest.ID).Int64("authorID", authorID).Msg("Restaurant listed")

	resp := dto.NewRestaurantResponse(rest)
	return &resp, nil
}

// DeleteRestaurant removes a restaurant listing. Only the author may delete.
func (s *restaurantServiceImpl) DeleteRestaurant(ctx context.Context, id, userID int64) error {
	rest, err := s.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if rest.AuthorID != userID {
		return apperrors.NewForbiddenError("only the author can delete this listing")
	}

	if err := s.restaurantRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete restaurant: %w", err)
	}

	s.logger.Info().Int64("restaurantID", id).Int64("userID", userID).Msg("Restaurant deleted")
	return nil
}

// LikeRestaurant bumps the like counter and returns the new value
func (s *restaurantServiceImpl) LikeRestaurant(ctx context.Context, id int64) (int, error) {
	return s.restaurantRepo.IncrementLikes(ctx, id)
}

// Regions returns the fixed set of region names
func (s *restaurantServiceImpl) Regions() []string {
	return models.Regions
}
