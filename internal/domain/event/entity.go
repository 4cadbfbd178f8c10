package event

import "time"

// EventReview - feedback a member leaves on a company event.
type EventReview struct {
	ID        string
	EventName string
	UserID    string
	Rating    int
	Comment   *string
	CreatedAt time.Time

	// Joined fields
	UserName *string
}
