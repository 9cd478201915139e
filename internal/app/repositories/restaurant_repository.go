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

// RestaurantRepository handles database operations for restaurant listings
type RestaurantRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRestaurantRepository creates a new RestaurantRepository
func NewRestaurantRepository(db *pgxpool.Pool) *RestaurantRepository {
	return &RestaurantRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves restaurants with their authors, newest first. A non-nil
// region narrows the listing to that region.
func (r *RestaurantRepository) GetAll(ctx context.Context, region *string) ([]*models.Restaurant, error) {
	builder := r.sb.Select(
		"r.id", "r.name", "r.region", "r.address", "r.content",
		"r.likes_count", "r.image_url", "r.author_id", "r.created_at",
		"u.id", "u.nickname", "u.profile_image_url",
	).
		From("restaurants r").
		Join("users u ON u.id = r.author_id").
		OrderBy("r.created_at DESC")

	if region != nil && *region != "" {
		builder = builder.Where(squirrel.Eq{"r.region": *region})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list restaurants query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing restaurants: %w", err)
	}
	defer rows.Close()

	restaurants := []*models.Restaurant{}
	for rows.Next() {
		var rest models.Restaurant
		var author models.User
		err := rows.Scan(
			&rest.ID,
			&rest.Name,
			&rest.Region,
			&rest.Address,
			&rest.Content,
			&rest.LikesCount,
			&rest.ImageURL,
			&rest.AuthorID,
			&rest.CreatedAt,
			&author.ID,
			&author.Nickname,
			&author.ProfileImageURL,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning restaurant: %w", err)
		}
		rest.Author = &author
		restaurants = append(restaurants, &rest)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating restaurants: %w", err)
	}

	return restaurants, nil
}

// GetByID retrieves a single restaurant listing
func (r *RestaurantRepository) GetByID(ctx context.Context, id int64) (*models.Restaurant, error) {
	sql, args, err := r.sb.Select(
		"id", "name", "region", "address", "content",
		"likes_count", "image_url", "author_id", "created_at",
	).
		From("restaurants").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get restaurant query: %w", err)
	}

	var rest models.Restaurant
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&rest.ID,
		&rest.Name,
		&rest.Region,
		&rest.Address,
		&rest.Content,
		&rest.LikesCount,
		&rest.ImageURL,
		&rest.AuthorID,
		&rest.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("error getting restaurant: %w", err)
	}

	return &rest, nil
}

// Create inserts a new restaurant listing and fills in the generated fields
func (r *RestaurantRepository) Create(ctx context.Context, rest *models.Restaurant) error {
	sql, args, err := r.sb.Insert("restaurants").
		Columns("name", "region", "address", "content", "likes_count", "image_url", "author_id", "created_at").
		Values(rest.Name, rest.Region, rest.Address, rest.Content, 0, rest.ImageURL, rest.AuthorID, time.Now()).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create restaurant query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&rest.ID, &rest.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating restaurant: %w", err)
	}

	return nil
}

// Delete removes a restaurant listing
func (r *RestaurantRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("restaurants").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete restaurant query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting restaurant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRestaurantNotFound
	}

	return nil
}

// IncrementLikes bumps the like counter atomically and returns the new value
func (r *RestaurantRepository) IncrementLikes(ctx context.Context, id int64) (int, error) {
	var likes int
	err := r.db.QueryRow(ctx,
		`UPDATE restaurants SET likes_count = likes_count + 1 WHERE id = $1 RETURNING likes_count`,
		id,
	).Scan(&likes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrRestaurantNotFound
		}
		return 0, fmt.Errorf("error incrementing likes: %w", err)
	}

	return likes, nil
}
