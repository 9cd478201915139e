package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/petmily/petmily-api/internal/app/models/dto"
	"github.com/petmily/petmily-api/internal/app/services"
	"github.com/petmily/petmily-api/internal/middleware"
)

// RestaurantController handles restaurant listing operations
type RestaurantController struct {
	restaurantService services.RestaurantService
	logger            zerolog.Logger
}

// NewRestaurantController creates a new RestaurantController
func NewRestaurantController(restaurantService services.RestaurantService, logger zerolog.Logger) *RestaurantController {
	return &RestaurantController{
		restaurantService: restaurantService,
		logger:            logger,
	}
}

// List returns restaurant listings
// @Summary List pet-friendly restaurants
// @Tags restaurants
// @Produce json
// @Param region query string false "Region name to filter by"
// @Success 200 {object} dto.APIResponse{data=[]dto.RestaurantResponse} "Restaurants, newest first"
// @Failure 400 {object} dto.ErrorResponse "Unknown region"
// @Router /restaurants [get]
func (c *RestaurantController) List(ctx *gin.Context) {
	var region *string
	if value := ctx.Query("region"); value != "" {
		region = &value
	}

	restaurants, err := c.restaurantService.ListRestaurants(ctx.Request.Context(), region)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(restaurants))
}

// Regions returns the fixed set of region names
// @Summary List region names
// @Tags restaurants
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string} "Regions"
// @Router /restaurants/regions [get]
func (c *RestaurantController) Regions(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.restaurantService.Regions()))
}

// Create publishes a new restaurant listing
// @Summary List a pet-friendly restaurant
// @Tags restaurants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRestaurantRequest true "Restaurant information"
// @Success 201 {object} dto.APIResponse{data=dto.RestaurantResponse} "Created listing"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or unknown region"
// @Router /restaurants [post]
func (c *RestaurantController) Create(ctx *gin.Context) {
	var req dto.CreateRestaurantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	userID := middleware.GetUserID(ctx)

	restaurant, err := c.restaurantService.CreateRestaurant(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(restaurant))
}

// Delete removes a restaurant listing
// @Summary Delete a restaurant listing
// @Description Only the author can delete a listing
// @Tags restaurants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Restaurant ID"
// @Success 200 {object} dto.APIResponse "Deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Restaurant not found"
// @Router /restaurants/{id} [delete]
func (c *RestaurantController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	userID := middleware.GetUserID(ctx)

	if err := c.restaurantService.DeleteRestaurant(ctx.Request.Context(), id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Restaurant deleted"))
}

// Like bumps a restaurant's like counter
// @Summary Like a restaurant
// @Tags restaurants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Restaurant ID"
// @Success 200 {object} dto.APIResponse "New like count"
// @Failure 404 {object} dto.ErrorResponse "Restaurant not found"
// @Router /restaurants/{id}/like [post]
func (c *RestaurantController) Like(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	likes, err := c.restaurantService.LikeRestaurant(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"likesCount": likes}))
}
