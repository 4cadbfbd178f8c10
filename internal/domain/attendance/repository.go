package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance.
type AttendanceRepository interface {
	Create(ctx context.Context, a Attendance) (Attendance, error)
	GetByUserDate(ctx context.Context, userID string, date time.Time) (Attendance, error)
	SetCheckOut(ctx context.Context, id string, checkOut time.Time, note *string) (Attendance, error)
	List(ctx context.Context, filter Filter) ([]Attendance, int64, error)
}
