package attendance

import "context"

// AttendanceService defines the attendance operations.
type AttendanceService interface {
	// CheckIn opens today's attendance; one per (user, day).
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)
	// CheckOut closes today's attendance.
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)
	ListAttendances(ctx context.Context, filter Filter) (ListAttendancesResponse, error)
}
