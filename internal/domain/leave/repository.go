package leave

import (
	"context"
	"time"
)

// LeaveRepository defines data access methods for leave requests.
type LeaveRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter Filter) ([]LeaveRequest, int64, error)
	UpdateStatus(ctx context.Context, id string, status Status, approvedBy string) (LeaveRequest, error)
	// GetApprovedRangesOverlapping returns the date ranges of approved leave
	// requests that overlap [from, to]. Consumed by the payroll deduction
	// scanner.
	GetApprovedRangesOverlapping(ctx context.Context, userID string, from, to time.Time) ([]DateRange, error)
	// HasOverlapping reports whether any pending or approved request of the
	// user overlaps [from, to].
	HasOverlapping(ctx context.Context, userID string, from, to time.Time) (bool, error)
}
