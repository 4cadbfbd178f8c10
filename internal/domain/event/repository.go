package event

import "context"

// EventRepository defines data access methods for event reviews.
type EventRepository interface {
	Create(ctx context.Context, r EventReview) (EventReview, error)
	List(ctx context.Context, filter Filter) ([]EventReview, int64, error)
}
