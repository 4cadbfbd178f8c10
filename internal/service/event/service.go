package event

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/officemate-hq/officemate-backend-go/internal/domain/event"
)

type EventServiceImpl struct {
	eventRepo event.EventRepository
}

func NewEventService(eventRepo event.EventRepository) event.EventService {
	return &EventServiceImpl{eventRepo: eventRepo}
}

func (s *EventServiceImpl) CreateReview(ctx context.Context, req event.CreateReviewRequest) (event.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return event.ReviewResponse{}, err
	}

	created, err := s.eventRepo.Create(ctx, event.EventReview{
		ID:        uuid.NewString(),
		EventName: req.EventName,
		UserID:    req.UserID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return event.ReviewResponse{}, err
	}
	return mapToResponse(created), nil
}

func (s *EventServiceImpl) ListReviews(ctx context.Context, filter event.Filter) (event.ListReviewsResponse, error) {
	reviews, totalCount, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		return event.ListReviewsResponse{}, err
	}

	data := make([]event.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		data = append(data, mapToResponse(r))
	}
	return event.ListReviewsResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func mapToResponse(r event.EventReview) event.ReviewResponse {
	return event.ReviewResponse{
		ID:        r.ID,
		EventName: r.EventName,
		UserID:    r.UserID,
		UserName:  r.UserName,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}
