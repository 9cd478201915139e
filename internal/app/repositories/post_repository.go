package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/petmily/petmily-api/internal/app/models"
	"github.com/petmily/petmily-api/internal/pkg/apperrors"
)

// PostRepository handles database operations for community posts
type PostRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves community posts with their authors, newest first. A
// non-nil category narrows the listing.
func (r *PostRepository) GetAll(ctx context.Context, category *string) ([]*models.Post, error) {
	builder := r.sb.Select(
		"p.id", "p.title", "p.content", "p.hashtags", "p.category",
		"p.likes_count", "p.image_url", "p.author_id", "p.created_at",
		"u.id", "u.nickname", "u.profile_image_url",
	).
		From("posts p").
		Join("users u ON u.id = p.author_id").
		OrderBy("p.created_at DESC")

	if category != nil && *category != "" {
		builder = builder.Where(squirrel.Eq{"p.category": *category})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list posts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	defer rows.Close()

	posts := []*models.Post{}
	for rows.Next() {
		var post models.Post
		var author models.User
		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Content,
			&post.Hashtags,
			&post.Category,
			&post.LikesCount,
			&post.ImageURL,
			&post.AuthorID,
			&post.CreatedAt,
			&author.ID,
			&author.Nickname,
			&author.ProfileImageURL,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning post: %w", err)
		}
		post.Author = &author
		posts = append(posts, &post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return posts, nil
}

// GetByID retrieves a single community post
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	sql, args, err := r.sb.Select(
		"id", "title", "content", "hashtags", "category",
		"likes_count", "image_url", "author_id", "created_at",
	).
		From("posts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get post query: %w", err)
	}

	var post models.Post
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.Hashtags,
		&post.Category,
		&post.LikesCount,
		&post.ImageURL,
		&post.AuthorID,
		&post.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("error getting post: %w", err)
	}

	return &post, nil
}

// Create inserts a new community post and fills in the generated fields
func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	sql, args, err := r.sb.Insert("posts").
		Columns("title", "content", "hashtags", "category", "likes_count", "image_url", "author_id", "created_at").
		Values(post.Title, post.Content, post.Hashtags, post.Category, 0, post.ImageURL, post.AuthorID, time.Now()).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create post query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating post: %w", err)
	}

	return nil
}

// Delete removes a community post
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("posts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete post query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}

	return nil
}

// IncrementLikes bumps the like counter atomically and returns the new value
func (r *PostRepository) IncrementLikes(ctx context.Context, id int64) (int, error) {
	var likes int
	err := r.db.QueryRow(ctx,
		`UPDATE posts SET likes_count = likes_count + 1 WHERE id = $1 RETURNING likes_count`,
		id,
	).Scan(&likes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrPostNotFound
		}
		return 0, fmt.Errorf("error incrementing likes: %w", err)
	}

	return likes, nil
}

// CountByAuthor counts community posts written by the user
func (r *PostRepository) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("posts").
		Where(squirrel.Eq{"author_id": authorID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build post count query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting posts: %w", err)
	}

	return count, nil
}
