package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/petmily/petmily-api/internal/app/models/dto"
	"github.com/petmily/petmily-api/internal/app/services"
	"github.com/petmily/petmily-api/internal/middleware"
)

// UploadController handles image uploads
type UploadController struct {
	uploadService services.UploadService
	logger        zerolog.Logger
}

// NewUploadController creates a new UploadController
func NewUploadController(uploadService services.UploadService, logger zerolog.Logger) *UploadController {
	return &UploadController{
		uploadService: uploadService,
		logger:        logger,
	}
}

// UploadImage stores an image and returns its public URL
// @Summary Upload an image
// @Description Accepts an image up to the configured size limit and stores it under the given kind's folder
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file"
// @Param kind formData string true "Upload kind: volunteer, restaurants or posts"
// @Success 201 {object} dto.APIResponse{data=dto.UploadResponse} "Stored image URL"
// @Failure 400 {object} dto.ErrorResponse "Missing file, wrong type, too large or unknown kind"
// @Router /uploads/images [post]
func (c *UploadController) UploadImage(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Image file is required").
			WithField("image")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	kind := ctx.PostForm("kind")

	result, err := c.uploadService.SaveImage(fileHeader, kind)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(result))
}
