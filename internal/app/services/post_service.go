package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/petmily/petmily-api/internal/app/models"
	"github.com/petmily/petmily-api/internal/app/models/dto"
	"github.com/petmily/petmily-api/internal/pkg/apperrors"
)

// postStore is the slice of community post persistence the service needs
type postStore interface {
	GetAll(ctx context.Context, category *string) ([]*models.Post, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id int64) error
	IncrementLikes(ctx context.Context, id int64) (int, error)
}

// PostService defines the interface for community post operations
type PostService interface {
	ListPosts(ctx context.Context, category *string) ([]dto.PostResponse, error)
	CreatePost(ctx context.Context, authorID int64, req *dto.CreatePostRequest) (*dto.PostResponse, error)
	DeletePost(ctx context.Context, id, userID int64) error
	LikePost(ctx context.Context, id int64) (int, error)
}

// postServiceImpl implements PostService
type postServiceImpl struct {
	postRepo postStore
	logger   zerolog.Logger
}

// NewPostService creates a new PostService
func NewPostService(postRepo postStore, logger zerolog.Logger) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
		logger:   logger,
	}
}

// ListPosts returns community posts, optionally narrowed to a category
func (s *postServiceImpl) ListPosts(ctx context.Context, category *string) ([]dto.PostResponse, error) {
	posts, err := s.postRepo.GetAll(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	responses := make([]dto.PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, dto.NewPostResponse(post))
	}

	return responses, nil
}

// CreatePost publishes a new community post
func (s *postServiceImpl) CreatePost(ctx context.Context, authorID int64, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	hashtags := req.Hashtags
	if hashtags == nil {
		hashtags = []string{}
	}

	post := &models.Post{
		Title:    req.Title,
		Content:  req.Content,
		Hashtags: hashtags,
		Category: models.CategoryCommunity,
		ImageURL: req.ImageURL,
		AuthorID: authorID,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info().Int64("postID", post.ID).Int64("authorID", authorID).Msg("Community post created")

	resp := dto.NewPostResponse(post)
	return &resp, nil
}

// DeletePost removes a community post. Only the author may delete.
func (s *postServiceImpl) DeletePost(ctx context.Context, id, userID int64) error {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if post.AuthorID != userID {
		return apperrors.NewForbiddenError("only the author can delete this post")
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	s.logger.Info().Int64("postID", id).Int64("userID", userID).Msg("Community post deleted")
	return nil
}

// LikePost bumps the like counter and returns the new value
func (s *postServiceImpl) LikePost(ctx context.Context, id int64) (int, error) {
	return s.postRepo.IncrementLikes(ctx, id)
}
