package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/petmily/petmily-api/internal/app/models/dto"
	"github.com/petmily/petmily-api/internal/app/services"
	"github.com/petmily/petmily-api/internal/middleware"
)

// VolunteerController handles volunteer post operations
type VolunteerController struct {
	volunteerService services.VolunteerService
	logger           zerolog.Logger
}

// NewVolunteerController creates a new VolunteerController
func NewVolunteerController(volunteerService services.VolunteerService, logger zerolog.Logger) *VolunteerController {
	return &VolunteerController{
		volunteerService: volunteerService,
		logger:           logger,
	}
}

// parseIDParam reads a numeric :id path parameter
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid id parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// List returns all volunteer posts
// @Summary List volunteer posts
// @Tags volunteer-posts
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.VolunteerPostResponse} "Posts, newest first"
// @Router /volunteer-posts [get]
func (c *VolunteerController) List(ctx *gin.Context) {
	posts, err := c.volunteerService.ListPosts(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(posts))
}

// Get returns one volunteer post with its participants
// @Summary Get a volunteer post
// @Tags volunteer-posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.VolunteerPostDetailResponse} "Post detail"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /volunteer-posts/{id} [get]
func (c *VolunteerController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	viewerID := middleware.GetUserID(ctx)

	post, err := c.volunteerService.GetPost(ctx.Request.Context(), id, viewerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(post))
}

// Create publishes a new volunteer post
// @Summary Create a volunteer post
// @Tags volunteer-posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateVolunteerPostRequest true "Post content"
// @Success 201 {object} dto.APIResponse{data=dto.VolunteerPostResponse} "Created post"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Router /volunteer-posts [post]
func (c *VolunteerController) Create(ctx *gin.Context) {
	var req dto.CreateVolunteerPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	userID := middleware.GetUserID(ctx)

	post, err := c.volunteerService.CreatePost(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(post))
}

// Update edits a volunteer post
// @Summary Update a volunteer post
// @Description Only the author can edit a post
// @Tags volunteer-posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body dto.UpdateVolunteerPostRequest true "Post content"
// @Success 200 {object} dto.APIResponse{data=dto.VolunteerPostResponse} "Updated post"
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /volunteer-posts/{id} [put]
func (c *VolunteerController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateVolunteerPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	userID := middleware.GetUserID(ctx)

	post, err := c.volunteerService.UpdatePost(ctx.Request.Context(), id, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(post))
}

// Delete removes a volunteer post
// @Summary Delete a volunteer post
// @Description Only the author can delete a post. Participant rows go with it.
// @Tags volunteer-posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse "Deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /volunteer-posts/{id} [delete]
func (c *VolunteerController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	userID := middleware.GetUserID(ctx)

	if err := c.volunteerService.DeletePost(ctx.Request.Context(), id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Post deleted"))
}

// Like bumps a volunteer post's like counter
// @Summary Like a volunteer post
// @Tags volunteer-posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse "New like count"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /volunteer-posts/{id}/like [post]
func (c *VolunteerController) Like(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	likes, err := c.volunteerService.LikePost(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"likesCount": likes}))
}

// Join adds the caller to a volunteer post
// @Summary Join a volunteer post
// @Tags volunteer-posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.ParticipationResponse} "Participation state"
// @Failure 409 {object} dto.ErrorResponse "Post full or already joined"
// @Router /volunteer-posts/{id}/participants [post]
func (c *VolunteerController) Join(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	userID := middleware.GetUserID(ctx)

	participation, err := c.volunteerService.Join(ctx.Request.Context(), id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(participation))
}

// Leave removes the caller from a volunteer post
// @Summary Cancel participation in a volunteer post
// @Tags volunteer-posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.ParticipationResponse} "Participation state"
// @Failure 409 {object} dto.ErrorResponse "Not participating"
// @Router /volunteer-posts/{id}/participants [delete]
func (c *VolunteerController) Leave(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	userID := middleware.GetUserID(ctx)

	participation, err := c.volunteerService.Leave(ctx.Request.Context(), id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(participation))
}

// Participants lists the participants of a volunteer post
// @Summary List participants of a volunteer post
// @Tags volunteer-posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.VolunteerParticipantResponse} "Participants"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /volunteer-posts/{id}/participants [get]
func (c *VolunteerController) Participants(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	participants, err := c.volunteerService.ListParticipants(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(participants))
}
