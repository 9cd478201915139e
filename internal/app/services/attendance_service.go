package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/petmily/petmily-api/internal/app/models"
	"github.com/petmily/petmily-api/internal/app/models/dto"
	"github.com/petmily/petmily-api/internal/pkg/apperrors"
	"github.com/petmily/petmily-api/internal/pkg/helpers"
)

// attendanceStore is the slice of attendance persistence the service needs
type attendanceStore interface {
	ListByDate(ctx context.Context, date time.Time) ([]*models.Attendance, error)
	CheckIn(ctx context.Context, userID int64, date time.Time) (*models.Attendance, error)
	HasCheckedIn(ctx context.Context, userID int64, date time.Time) (bool, error)
	CountSince(ctx context.Context, userID int64, since time.Time) (int64, error)
}

// AttendanceService defines the interface for daily check-in operations
type AttendanceService interface {
	CheckIn(ctx context.Context, userID int64) (*dto.CheckInResponse, error)
	ListToday(ctx context.Context, viewerID int64) (*dto.AttendanceBoardResponse, error)
}

// attendanceServiceImpl implements AttendanceService
type attendanceServiceImpl struct {
	attendanceRepo attendanceStore
	logger         zerolog.Logger
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(attendanceRepo attendanceStore, logger zerolog.Logger) AttendanceService {
	return &attendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		logger:         logger,
	}
}

// CheckIn records today's check-in for the user. Checking in twice on the
// same day is not an error: the second attempt reports the existing state.
func (s *attendanceServiceImpl) CheckIn(ctx context.Context, userID int64) (*dto.CheckInResponse, error) {
	today := helpers.Today()

	_, err := s.attendanceRepo.CheckIn(ctx, userID, today)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.logger.Debug().Int64("userID", userID).Msg("User already checked in today")
			return &dto.CheckInResponse{
				CheckedIn:      true,
				AttendanceDate: today.Format("2006-01-02"),
			}, nil
		}
		return nil, fmt.Errorf("failed to check in: %w", err)
	}

	s.logger.Info().Int64("userID", userID).Msg("User checked in")

	return &dto.CheckInResponse{
		CheckedIn:      true,
		AttendanceDate: today.Format("2006-01-02"),
	}, nil
}

// ListToday returns today's check-ins in check-in order. A viewerID of 0
// means an anonymous viewer and leaves the viewer fields at their zero values.
func (s *attendanceServiceImpl) ListToday(ctx context.Context, viewerID int64) (*dto.AttendanceBoardResponse, error) {
	today := helpers.Today()

	records, err := s.attendanceRepo.ListByDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]dto.AttendanceResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, dto.NewAttendanceResponse(a))
	}

	board := &dto.AttendanceBoardResponse{Records: responses}

	if viewerID != 0 {
		checkedIn, err := s.attendanceRepo.HasCheckedIn(ctx, viewerID, today)
		if err != nil {
			return nil, fmt.Errorf("failed to check attendance state: %w", err)
		}
		monthly, err := s.attendanceRepo.CountSince(ctx, viewerID, helpers.StartOfMonth())
		if err != nil {
			return nil, fmt.Errorf("failed to count monthly attendance: %w", err)
		}
		board.CheckedIn = checkedIn
		board.MonthlyCount = monthly
	}

	return board, nil
}
