package attendance

import "time"

// Attendance - one check-in/check-out pair per (user, date).
type Attendance struct {
	ID        string
	UserID    string
	Date      time.Time
	CheckIn   time.Time
	CheckOut  *time.Time
	Note      *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	UserName *string
}
