package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/petmily/petmily-api/internal/app/models"
	"github.com/petmily/petmily-api/internal/db"
	"github.com/petmily/petmily-api/internal/pkg/apperrors"
)

// volunteerPostColumns are the post columns selected together with the
// author's display fields.
const volunteerPostColumns = `
	vp.id, vp.title, vp.content, vp.shelter_name, vp.shelter_location,
	vp.volunteer_date, vp.volunteer_time, vp.max_participants,
	vp.current_participants, vp.likes_count, vp.image_url, vp.author_id,
	vp.created_at, vp.updated_at,
	u.id, u.nickname, u.profile_image_url`

// VolunteerRepository handles database operations for volunteer posts
type VolunteerRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewVolunteerRepository creates a new VolunteerRepository
func NewVolunteerRepository(database *db.PostgresDB) *VolunteerRepository {
	return &VolunteerRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanVolunteerPost(row pgx.Row) (*models.VolunteerPost, error) {
	var post models.VolunteerPost
	var author models.User
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.ShelterName,
		&post.ShelterLocation,
		&post.VolunteerDate,
		&post.VolunteerTime,
		&post.MaxParticipants,
		&post.CurrentParticipants,
		&post.LikesCount,
		&post.ImageURL,
		&post.AuthorID,
		&post.CreatedAt,
		&post.UpdatedAt,
		&author.ID,
		&author.Nickname,
		&author.ProfileImageURL,
	)
	if err != nil {
		return nil, err
	}
	post.Author = &author
	return &post, nil
}

// GetAll retrieves all volunteer posts with their authors, newest first
func (r *VolunteerRepository) GetAll(ctx context.Context) ([]*models.VolunteerPost, error) {
	query := `
		SELECT` + volunteerPostColumns + `
		FROM volunteer_posts vp
		JOIN users u ON u.id = vp.author_id
		ORDER BY vp.created_at DESC`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing volunteer posts: %w", err)
	}
	defer rows.Close()

	posts := []*models.VolunteerPost{}
	for rows.Next() {
		post, err := scanVolunteerPost(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning volunteer post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating volunteer posts: %w", err)
	}

	return posts, nil
}

// GetByID retrieves a single volunteer post with its author
func (r *VolunteerRepository) GetByID(ctx context.Context, id int64) (*models.VolunteerPost, error) {
	query := `
		SELECT` + volunteerPostColumns + `
		FROM volunteer_posts vp
		JOIN users u ON u.id = vp.author_id
		WHERE vp.id = $1`

	post, err := scanVolunteerPost(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrVolunteerPostNotFound
		}
		return nil, fmt.Errorf("error getting volunteer post: %w", err)
	}

	return post, nil
}

// Create inserts a new volunteer post and fills in the generated fields
func (r *VolunteerRepository) Create(ctx context.Context, post *models.VolunteerPost) error {
	now := time.Now()
	sql, args, err := r.sb.Insert("volunteer_posts").
		Columns(
			"title", "content", "shelter_name", "shelter_location",
			"volunteer_date", "volunteer_time", "max_participants",
			"current_participants", "likes_count", "image_url", "author_id",
			"created_at", "updated_at",
		).
		Values(
			post.Title, post.Content, post.ShelterName, post.ShelterLocation,
			post.VolunteerDate, post.VolunteerTime, post.MaxParticipants,
			0, 0, post.ImageURL, post.AuthorID,
			now, now,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create volunteer post query: %w", err)
	}

	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating volunteer post: %w", err)
	}

	return nil
}

// Update rewrites the editable fields of a volunteer post
func (r *VolunteerRepository) Update(ctx context.Context, post *models.VolunteerPost) error {
	sql, args, err := r.sb.Update("volunteer_posts").
		Set("title", post.Title).
		Set("content", post.Content).
		Set("shelter_name", post.ShelterName).
		Set("shelter_location", post.ShelterLocation).
		Set("volunteer_date", post.VolunteerDate).
		Set("volunteer_time", post.VolunteerTime).
		Set("max_participants", post.MaxParticipants).
		Set("image_url", post.ImageURL).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": post.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update volunteer post query: %w", err)
	}

	tag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating volunteer post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrVolunteerPostNotFound
	}

	return nil
}

// Delete removes a volunteer post together with its participant rows in a
// single transaction.
func (r *VolunteerRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM volunteer_participants WHERE volunteer_post_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting participants: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM volunteer_posts WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting volunteer post: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrVolunteerPostNotFound
		}

		return nil
	})
}

// IncrementLikes bumps the like counter atomically and returns the new value
func (r *VolunteerRepository) IncrementLikes(ctx context.Context, id int64) (int, error) {
	var likes int
	err := r.db.Pool.QueryRow(ctx,
		`UPDATE volunteer_posts SET likes_count = likes_count + 1 WHERE id = $1 RETURNING likes_count`,
		id,
	).Scan(&likes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrVolunteerPostNotFound
		}
		return 0, fmt.Errorf("error incrementing likes: %w", err)
	}

	return likes, nil
}
