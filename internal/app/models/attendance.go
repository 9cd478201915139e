package models

import "time"

// Attendance represents a daily check-in row. At most one row exists per
// (user, attendance_date), enforced by a unique constraint.
type Attendance struct {
	ID             int64     `json:"id" db:"id"`
	UserID         int64     `json:"userId" db:"user_id"`
	AttendanceDate time.Time `json:"attendanceDate" db:"attendance_date"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`

	// Related entities
	User *User `json:"user,omitempty"`
}
