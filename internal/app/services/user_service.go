package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/petmily/petmily-api/internal/app/models/dto"
	"github.com/petmily/petmily-api/internal/pkg/helpers"
)

// participationCounter counts volunteer posts a user has joined
type participationCounter interface {
	CountByUser(ctx context.Context, userID int64) (int64, error)
}

// postCounter counts community posts a user has authored
type postCounter interface {
	CountByAuthor(ctx context.Context, authorID int64) (int64, error)
}

// attendanceCounter counts a user's check-ins from a given day
type attendanceCounter interface {
	CountSince(ctx context.Context, userID int64, since time.Time) (int64, error)
}

// UserService defines the interface for user profile operations
type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error)
	GetStats(ctx context.Context, userID int64) (*dto.MyStatsResponse, error)
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo        userStore
	participantRepo participationCounter
	postRepo        postCounter
	attendanceRepo  attendanceCounter
	logger          zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo userStore,
	participantRepo participationCounter,
	postRepo postCounter,
	attendanceRepo attendanceCounter,
	logger zerolog.Logger,
) UserService {
	return &userServiceImpl{
		userRepo:        userRepo,
		participantRepo: participantRepo,
		postRepo:        postRepo,
		attendanceRepo:  attendanceRepo,
		logger:          logger,
	}
}

// GetProfile returns the user's own profile
func (s *userServiceImpl) GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

// GetStats returns the my-page activity counters: check-ins this month,
// volunteer posts joined, and community posts written.
func (s *userServiceImpl) GetStats(ctx context.Context, userID int64) (*dto.MyStatsResponse, error) {
	attendanceCount, err := s.attendanceRepo.CountSince(ctx, userID, helpers.StartOfMonth())
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance: %w", err)
	}

	volunteerCount, err := s.participantRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count participations: %w", err)
	}

	postCount, err := s.postRepo.CountByAuthor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	return &dto.MyStatsResponse{
		AttendanceCount: attendanceCount,
		VolunteerCount:  volunteerCount,
		PostCount:       postCount,
	}, nil
}
