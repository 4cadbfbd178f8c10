package leave

import "time"

// Status enum
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// LeaveRequest entity
type LeaveRequest struct {
	ID         string
	UserID     string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     Status
	ApprovedBy *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	UserName  *string
	UserEmail *string
}

// DateRange - inclusive [Start, End] day range of an approved leave.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether day falls inside the range, comparing calendar
// days only.
func (r DateRange) Contains(day time.Time) bool {
	d := truncateToDay(day)
	return !d.Before(truncateToDay(r.Start)) && !d.After(truncateToDay(r.End))
}

// Overlaps reports whether two day ranges share at least one day.
func (r DateRange) Overlaps(other DateRange) bool {
	return !truncateToDay(r.Start).After(truncateToDay(other.End)) &&
		!truncateToDay(other.Start).After(truncateToDay(r.End))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
