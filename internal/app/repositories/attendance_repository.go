package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/petmily/petmily-api/internal/app/models"
	"github.com/petmily/petmily-api/internal/pkg/apperrors"
	"github.com/petmily/petmily-api/internal/pkg/dberrors"
)

// AttendanceRepository handles database operations for daily check-ins
type AttendanceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListByDate retrieves the check-ins for a given day with their user display
// fields, in check-in order.
func (r *AttendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]*models.Attendance, error) {
	query := `
		SELECT a.id, a.user_id, a.attendance_date, a.created_at,
			u.id, u.nickname, u.profile_image_url
		FROM attendance a
		JOIN users u ON u.id = a.user_id
		WHERE a.attendance_date = $1
		ORDER BY a.created_at ASC`

	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("error listing attendance: %w", err)
	}
	defer rows.Close()

	records := []*models.Attendance{}
	for rows.Next() {
		var a models.Attendance
		var user models.User
		err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.AttendanceDate,
			&a.CreatedAt,
			&user.ID,
			&user.Nickname,
			&user.ProfileImageURL,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning attendance: %w", err)
		}
		a.User = &user
		records = append(records, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance: %w", err)
	}

	return records, nil
}

// CheckIn inserts a check-in row for the user on the given day. A second
// check-in on the same day hits the unique constraint and is reported as
// ErrConflict for the caller to absorb.
func (r *AttendanceRepository) CheckIn(ctx context.Context, userID int64, date time.Time) (*models.Attendance, error) {
	sql, args, err := r.sb.Insert("attendance").
		Columns("user_id", "attendance_date", "created_at").
		Values(userID, date, time.Now()).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build check-in query: %w", err)
	}

	a := &models.Attendance{UserID: userID, AttendanceDate: date}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrConflict
		}
		return nil, fmt.Errorf("error inserting check-in: %w", err)
	}

	return a, nil
}

// HasCheckedIn reports whether the user already checked in on the given day
func (r *AttendanceRepository) HasCheckedIn(ctx context.Context, userID int64, date time.Time) (bool, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("attendance").
		Where(squirrel.Eq{"user_id": userID, "attendance_date": date}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build check-in lookup query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("error checking attendance: %w", err)
	}

	return count > 0, nil
}

// CountSince counts the user's check-ins on or after the given day
func (r *AttendanceRepository) CountSince(ctx context.Context, userID int64, since time.Time) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("attendance").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"attendance_date": since}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build attendance count query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting attendance: %w", err)
	}

	return count, nil
}
