package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/petmily/petmily-api/internal/app/models"
	"github.com/petmily/petmily-api/internal/app/models/dto"
	"github.com/petmily/petmily-api/internal/pkg/apperrors"
)

const defaultMaxParticipants = 10

// volunteerStore is the slice of volunteer post persistence the service needs
type volunteerStore interface {
	GetAll(ctx context.Context) ([]*models.VolunteerPost, error)
	GetByID(ctx context.Context, id int64) (*models.VolunteerPost, error)
	Create(ctx context.Context, post *models.VolunteerPost) error
	Update(ctx context.Context, post *models.VolunteerPost) error
	Delete(ctx context.Context, id int64) error
	IncrementLikes(ctx context.Context, id int64) (int, error)
}

// participantStore is the slice of participation persistence the service needs
type participantStore interface {
	ListByPost(ctx context.Context, postID int64) ([]*models.VolunteerParticipant, error)
	IsParticipant(ctx context.Context, postID, userID int64) (bool, error)
	Join(ctx context.Context, postID, userID int64) (int, error)
	Leave(ctx context.Context, postID, userID int64) (int, error)
}

// VolunteerService defines the interface for volunteer post operations
type VolunteerService interface {
	ListPosts(ctx context.Context) ([]dto.VolunteerPostResponse, error)
	GetPost(ctx context.Context, id int64, viewerID int64) (*dto.VolunteerPostDetailResponse, error)
	CreatePost(ctx context.Context, authorID int64, req *dto.CreateVolunteerPostRequest) (*dto.VolunteerPostResponse, error)
	UpdatePost(ctx context.Context, id, userID int64, req *dto.UpdateVolunteerPostRequest) (*dto.VolunteerPostResponse, error)
	DeletePost(ctx context.Context, id, userID int64) error
	LikePost(ctx context.Context, id int64) (int, error)
	Join(ctx context.Context, postID, userID int64) (*dto.ParticipationResponse, error)
	Leave(ctx context.Context, postID, userID int64) (*dto.ParticipationResponse, error)
	ListParticipants(ctx context.Context, postID int64) ([]dto.VolunteerParticipantResponse, error)
}

// volunteerServiceImpl implements VolunteerService
type volunteerServiceImpl struct {
	postRepo        volunteerStore
	participantRepo participantStore
	logger          zerolog.Logger
}

// NewVolunteerService creates a new VolunteerService
func NewVolunteerService(postRepo volunteerStore, participantRepo participantStore, logger zerolog.Logger) VolunteerService {
	return &volunteerServiceImpl{
		postRepo:        postRepo,
		participantRepo: participantRepo,
		logger:          logger,
	}
}

// parseVolunteerDate parses the YYYY-MM-DD date carried by create and update
// requests.
func parseVolunteerDate(value string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, apperrors.NewBadRequestError("volunteerDate must be formatted as YYYY-MM-DD")
	}
	return date, nil
}

// ListPosts returns all volunteer posts, newest first
func (s *volunteerServiceImpl) ListPosts(ctx context.Context) ([]dto.VolunteerPostResponse, error) {
	posts, err := s.postRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list volunteer posts: %w", err)
	}

	responses := make([]dto.VolunteerPostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, dto.NewVolunteerPostResponse(post))
	}

	return responses, nil
}

// GetPost returns a volunteer post with its participants and the viewer's
// participation state. viewerID of 0 means an anonymous viewer.
func (s *volunteerServiceImpl) GetPost(ctx context.Context, id int64, viewerID int64) (*dto.VolunteerPostDetailResponse, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	participants, err := s.participantRepo.ListByPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	participantResponses := make([]dto.VolunteerParticipantResponse, 0, len(participants))
	for _, p := range participants {
		participantResponses = append(participantResponses, dto.VolunteerParticipantResponse{
			ID:       p.ID,
			UserID:   p.UserID,
			JoinedAt: p.CreatedAt,
			User:     dto.NewAuthorResponse(p.User),
		})
	}

	isParticipating := false
	if viewerID != 0 {
		isParticipating, err = s.participantRepo.IsParticipant(ctx, id, viewerID)
		if err != nil {
			return nil, fmt.Errorf("failed to check participation: %w", err)
		}
	}

	return &dto.VolunteerPostDetailResponse{
		VolunteerPostResponse: dto.NewVolunteerPostResponse(post),
		Participants:          participantResponses,
		IsParticipating:       isParticipating,
	}, nil
}

// CreatePost publishes a new volunteer post
func (s *volunteerServiceImpl) CreatePost(ctx context.Context, authorID int64, req *dto.CreateVolunteerPostRequest) (*dto.VolunteerPostResponse, error) {
	date, err := parseVolunteerDate(req.VolunteerDate)
	if err != nil {
		return nil, err
	}

	maxParticipants := req.MaxParticipants
	if maxParticipants <= 0 {
		maxParticipants = defaultMaxParticipants
	}

	post := &models.VolunteerPost{
		Title:           req.Title,
		Content:         req.Content,
		ShelterName:     req.ShelterName,
		ShelterLocation: req.ShelterLocation,
		VolunteerDate:   date,
		VolunteerTime:   req.VolunteerTime,
		MaxParticipants: maxParticipants,
		ImageURL:        req.ImageURL,
		AuthorID:        authorID,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create volunteer post: %w", err)
	}

	s.logger.Info().Int64("postID", post.ID).Int64("authorID", authorID).Msg("Volunteer post created")

	created, err := s.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		return nil, err
	}

	resp := dto.NewVolunteerPostResponse(created)
	return &resp, nil
}

// UpdatePost edits a volunteer post. Only the author may edit.
func (s *volunteerServiceImpl) UpdatePost(ctx context.Context, id, userID int64, req *dto.UpdateVolunteerPostRequest) (*dto.VolunteerPostResponse, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != userID {
		return nil, apperrors.NewForbiddenError("only the author can edit this post")
	}

	date, err := parseVolunteerDate(req.VolunteerDate)
	if err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Content = req.Content
	post.ShelterName = req.ShelterName
	post.ShelterLocation = req.ShelterLocation
	post.VolunteerDate = date
	post.VolunteerTime = req.VolunteerTime
	if req.MaxParticipants > 0 {
		post.MaxParticipants = req.MaxParticipants
	}
	post.ImageURL = req.ImageURL

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update volunteer post: %w", err)
	}

	updated, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.NewVolunteerPostResponse(updated)
	return &resp, nil
}

// DeletePost removes a volunteer post and its participant rows. Only the
// author may delete.
func (s *volunteerServiceImpl) DeletePost(ctx context.Context, id, userID int64) error {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if post.AuthorID != userID {
		return apperrors.NewForbiddenError("only the author can delete this post")
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete volunteer post: %w", err)
	}

	s.logger.Info().Int64("postID", id).Int64("userID", userID).Msg("Volunteer post deleted")
	return nil
}

// LikePost bumps the like counter and returns the new value
func (s *volunteerServiceImpl) LikePost(ctx context.Context, id int64) (int, error) {
	return s.postRepo.IncrementLikes(ctx, id)
}

// Join adds the user to the volunteer post
func (s *volunteerServiceImpl) Join(ctx context.Context, postID, userID int64) (*dto.ParticipationResponse, error) {
	count, err := s.participantRepo.Join(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("postID", postID).Int64("userID", userID).Msg("User joined volunteer post")

	return &dto.ParticipationResponse{
		CurrentParticipants: count,
		IsParticipating:     true,
	}, nil
}

// Leave removes the user from the volunteer post
func (s *volunteerServiceImpl) Leave(ctx context.Context, postID, userID int64) (*dto.ParticipationResponse, error) {
	count, err := s.participantRepo.Leave(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("postID", postID).Int64("userID", userID).Msg("User left volunteer post")

	return &dto.ParticipationResponse{
		CurrentParticipants: count,
		IsParticipating:     false,
	}, nil
}

// ListParticipants returns the participants of a volunteer post
func (s *volunteerServiceImpl) ListParticipants(ctx context.Context, postID int64) ([]dto.VolunteerParticipantResponse, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	participants, err := s.participantRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	responses := make([]dto.VolunteerParticipantResponse, 0, len(participants))
	for _, p := range participants {
		responses = append(responses, dto.VolunteerParticipantResponse{
			ID:       p.ID,
			UserID:   p.UserID,
			JoinedAt: p.CreatedAt,
			User:     dto.NewAuthorResponse(p.User),
		})
	}

	return responses, nil
}
