package dto

import (
	"time"

	"github.com/petmily/petmily-api/internal/app/models"
)

// AttendanceResponse is one check-in row on the daily board
type AttendanceResponse struct {
	ID             int64           `json:"id"`
	UserID         int64           `json:"userId"`
	AttendanceDate string          `json:"attendanceDate"`
	CheckedInAt    time.Time       `json:"checkedInAt"`
	User           *AuthorResponse `json:"user,omitempty"`
}

// AttendanceBoardResponse is today's board plus the viewer's own state.
// CheckedIn and MonthlyCount stay at their zero values for anonymous viewers.
type AttendanceBoardResponse struct {
	Records      []AttendanceResponse `json:"records"`
	CheckedIn    bool                 `json:"checkedIn"`
	MonthlyCount int64                `json:"monthlyCount"`
}

// CheckInResponse reports the outcome of a check-in attempt
type CheckInResponse struct {
	CheckedIn      bool   `json:"checkedIn"`
	AttendanceDate string `json:"attendanceDate"`
}

// NewAttendanceResponse maps an attendance model to its board view
func NewAttendanceResponse(a *models.Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:             a.ID,
		UserID:         a.UserID,
		AttendanceDate: a.AttendanceDate.Format("2006-01-02"),
		CheckedInAt:    a.CreatedAt,
		User:           NewAuthorResponse(a.User),
	}
}
