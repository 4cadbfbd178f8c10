package event

import "context"

// EventService defines the event review operations.
type EventService interface {
	CreateReview(ctx context.Context, req CreateReviewRequest) (ReviewResponse, error)
	ListReviews(ctx context.Context, filter Filter) (ListReviewsResponse, error)
}
