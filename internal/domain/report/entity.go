package report

import "time"

// Status enum
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// DailyReport - one end-of-day activity report. The payroll deduction
// scanner treats a workday without one (and without approved leave) as
// unreported.
type DailyReport struct {
	ID        string
	UserID    string
	Email     string
	Title     string
	Content   string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	UserName *string
}
