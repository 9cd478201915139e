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
	"github.com/petmily/petmily-api/internal/pkg/dberrors"
)

// VolunteerParticipantRepository handles database operations for volunteer
// post participation.
type VolunteerParticipantRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewVolunteerParticipantRepository creates a new VolunteerParticipantRepository
func NewVolunteerParticipantRepository(database *db.PostgresDB) *VolunteerParticipantRepository {
	return &VolunteerParticipantRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListByPost retrieves the participants of a volunteer post with their user
// display fields, oldest first.
func (r *VolunteerParticipantRepository) ListByPost(ctx context.Context, postID int64) ([]*models.VolunteerParticipant, error) {
	query := `
		SELECT vp.id, vp.volunteer_post_id, vp.user_id, vp.created_at,
			u.id, u.nickname, u.profile_image_url
		FROM volunteer_participants vp
		JOIN users u ON u.id = vp.user_id
		WHERE vp.volunteer_post_id = $1
		ORDER BY vp.created_at ASC`

	rows, err := r.db.Pool.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("error listing participants: %w", err)
	}
	defer rows.Close()

	participants := []*models.VolunteerParticipant{}
	for rows.Next() {
		var p models.VolunteerParticipant
		var user models.User
		err := rows.Scan(
			&p.ID,
			&p.VolunteerPostID,
			&p.UserID,
			&p.CreatedAt,
			&user.ID,
			&user.Nickname,
			&user.ProfileImageURL,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning participant: %w", err)
		}
		p.User = &user
		participants = append(participants, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating participants: %w", err)
	}

	return participants, nil
}

// IsParticipant reports whether the user has joined the volunteer post
func (r *VolunteerParticipantRepository) IsParticipant(ctx context.Context, postID, userID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("volunteer_participants").
		Where(squirrel.Eq{"volunteer_post_id": postID, "user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build participant check query: %w", err)
	}

	var one int
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error checking participant: %w", err)
	}

	return true, nil
}

// CountByUser counts how many volunteer posts the user has joined
func (r *VolunteerParticipantRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("volunteer_participants").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build participation count query: %w", err)
	}

	var count int64
	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting participations: %w", err)
	}

	return count, nil
}

// Join adds the user to the volunteer post and bumps the participant counter
// in one transaction. The post row is locked first so the capacity check and
// the counter update cannot race with a concurrent join.
func (r *VolunteerParticipantRepository) Join(ctx context.Context, postID, userID int64) (int, error) {
	var newCount int
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var current, max int
		err := tx.QueryRow(ctx,
			`SELECT current_participants, max_participants FROM volunteer_posts WHERE id = $1 FOR UPDATE`,
			postID,
		).Scan(&current, &max)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrVolunteerPostNotFound
			}
			return fmt.Errorf("error locking volunteer post: %w", err)
		}

		if current >= max {
			return apperrors.ErrPostFull
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO volunteer_participants (volunteer_post_id, user_id, created_at) VALUES ($1, $2, $3)`,
			postID, userID, time.Now(),
		)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrAlreadyJoined
			}
			return fmt.Errorf("error inserting participant: %w", err)
		}

		err = tx.QueryRow(ctx,
			`UPDATE volunteer_posts SET current_participants = current_participants + 1 WHERE id = $1 RETURNING current_participants`,
			postID,
		).Scan(&newCount)
		if err != nil {
			return fmt.Errorf("error updating participant count: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return newCount, nil
}

// Leave removes the user from the volunteer post and decrements the counter
// in one transaction.
func (r *VolunteerParticipantRepository) Leave(ctx context.Context, postID, userID int64) (int, error) {
	var newCount int
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`DELETE FROM volunteer_participants WHERE volunteer_post_id = $1 AND user_id = $2`,
			postID, userID,
		)
		if err != nil {
			return fmt.Errorf("error deleting participant: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrNotParticipating
		}

		err = tx.QueryRow(ctx,
			`UPDATE volunteer_posts SET current_participants = GREATEST(current_participants - 1, 0) WHERE id = $1 RETURNING current_participants`,
			postID,
		).Scan(&newCount)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrVolunteerPostNotFound
			}
			return fmt.Errorf("error updating participant count: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return newCount, nil
}
