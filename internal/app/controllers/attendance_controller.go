package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/petmily/petmily-api/internal/app/models/dto"
	"github.com/petmily/petmily-api/internal/app/services"
	"github.com/petmily/petmily-api/internal/middleware"
)

// AttendanceController handles daily check-in operations
type AttendanceController struct {
	attendanceService services.AttendanceService
	logger            zerolog.Logger
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService, logger zerolog.Logger) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
		logger:            logger,
	}
}

// CheckIn records today's check-in for the caller
// @Summary Check in for today
// @Description Records today's attendance. A repeat check-in on the same day succeeds without creating a second row.
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CheckInResponse} "Check-in state"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Router /attendance [post]
func (c *AttendanceController) CheckIn(ctx *gin.Context) {
	userID := middleware.GetUserID(ctx)

	result, err := c.attendanceService.CheckIn(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}

// Today lists today's check-ins
// @Summary List today's check-ins
// @Description Returns today's check-ins in arrival order. When a token is present the viewer's checked-in flag and monthly count are filled in.
// @Tags attendance
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.AttendanceBoardResponse} "Today's board"
// @Router /attendance/today [get]
func (c *AttendanceController) Today(ctx *gin.Context) {
	viewerID := middleware.GetUserID(ctx)

	board, err := c.attendanceService.ListToday(ctx.Request.Context(), viewerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(board))
}
